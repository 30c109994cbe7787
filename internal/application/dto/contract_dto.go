package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateContractRequest entrada para crear un contrato.
// Fechas en formato YYYY-MM-DD; vacío = sin fecha. PercentToSubsidiary ausente = 100.
type CreateContractRequest struct {
	Title               string           `json:"title"`
	SubsidiaryID        int64            `json:"subsidiary_id"`
	ClientID            int64            `json:"client_id"`
	ContractValue       decimal.Decimal  `json:"contract_value"`
	Retainer            decimal.Decimal  `json:"retainer"`
	PercentToSubsidiary *decimal.Decimal `json:"percent_to_subsidiary"`
	SignedDate          string           `json:"signed_date"`
	StartDate           string           `json:"start_date"`
	EndDate             string           `json:"end_date"`
	Status              string           `json:"status"` // vacío = prospect
	Notes               string           `json:"notes"`
}

// UpdateContractStatusRequest entrada de PATCH /api/contracts/:id/status.
type UpdateContractStatusRequest struct {
	Status string `json:"status"`
}

// ContractResponse salida de un contrato.
type ContractResponse struct {
	ID                  int64           `json:"id"`
	Title               string          `json:"title"`
	SubsidiaryID        int64           `json:"subsidiary_id"`
	ClientID            int64           `json:"client_id"`
	SignedDate          string          `json:"signed_date"`
	StartDate           string          `json:"start_date"`
	EndDate             string          `json:"end_date"`
	ContractValue       decimal.Decimal `json:"contract_value"`
	Retainer            decimal.Decimal `json:"retainer"`
	PercentToSubsidiary decimal.Decimal `json:"percent_to_subsidiary"`
	Status              string          `json:"status"`
	Notes               string          `json:"notes"`
	CreatedAt           time.Time       `json:"created_at"`
}

// ContractAggregate totales de un contrato. SubsidiaryShare = Profit × porcentaje / 100.
type ContractAggregate struct {
	Revenue         decimal.Decimal `json:"revenue"`
	Expenses        decimal.Decimal `json:"expenses"`
	Profit          decimal.Decimal `json:"profit"`
	SubsidiaryShare decimal.Decimal `json:"subsidiary_share"`
}

// ContractListItem fila del listado de contratos (más recientes primero).
type ContractListItem struct {
	ContractResponse
	SubsidiaryName string            `json:"subsidiary_name"`
	ClientName     string            `json:"client_name"`
	Aggregate      ContractAggregate `json:"aggregate"`
}

// ContractDetailResponse salida de GET /api/contracts/:id.
type ContractDetailResponse struct {
	Contract     ContractResponse      `json:"contract"`
	Subsidiary   SubsidiaryResponse    `json:"subsidiary"`
	Client       ClientResponse        `json:"client"`
	Aggregate    ContractAggregate     `json:"aggregate"`
	Revenues     []LedgerEntryResponse `json:"revenues"`
	Expenses     []LedgerEntryResponse `json:"expenses"`
	EquityAwards []EquityAwardResponse `json:"equity_awards"`
}

// RecordLedgerEntryRequest entrada para registrar un ingreso o un gasto. Date vacío = hoy.
type RecordLedgerEntryRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
}

// LedgerEntryResponse ingreso o gasto registrado.
type LedgerEntryResponse struct {
	ID          int64           `json:"id"`
	ContractID  int64           `json:"contract_id"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
}

// AwardEquityRequest entrada para otorgar participación. Date vacío = hoy.
type AwardEquityRequest struct {
	Recipient string          `json:"recipient"`
	Percent   decimal.Decimal `json:"percent"`
	Date      string          `json:"date"`
	Notes     string          `json:"notes"`
}

// EquityAwardResponse participación otorgada.
type EquityAwardResponse struct {
	ID         int64           `json:"id"`
	ContractID int64           `json:"contract_id"`
	Recipient  string          `json:"recipient"`
	Percent    decimal.Decimal `json:"percent"`
	Date       string          `json:"date"`
	Notes      string          `json:"notes"`
}
