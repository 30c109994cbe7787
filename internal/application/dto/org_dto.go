package dto

import "time"

// CreateCompanyRequest entrada para crear una empresa.
type CreateCompanyRequest struct {
	Name     string `json:"name"`
	IsParent bool   `json:"is_parent"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	IsParent  bool      `json:"is_parent"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateSubsidiaryRequest entrada para crear una filial.
type CreateSubsidiaryRequest struct {
	Name      string `json:"name"`
	CompanyID int64  `json:"company_id"`
}

// SubsidiaryResponse salida de una filial.
type SubsidiaryResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	CompanyID   int64     `json:"company_id"`
	CompanyName string    `json:"company_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateClientRequest entrada para crear un cliente. Contact y Email son opcionales.
type CreateClientRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Email   string `json:"email"`
}

// ClientResponse salida de un cliente.
type ClientResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// BootstrapResponse resultado de POST /api/bootstrap.
type BootstrapResponse struct {
	Parent        CompanyResponse          `json:"parent"`
	ParentCreated bool                     `json:"parent_created"`
	Subsidiaries  []BootstrapSubsidiaryDTO `json:"subsidiaries"`
}

// BootstrapSubsidiaryDTO filial asegurada por el bootstrap y si se creó en esta llamada.
type BootstrapSubsidiaryDTO struct {
	SubsidiaryResponse
	Created bool `json:"created"`
}
