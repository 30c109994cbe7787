package entity

import "time"

// Subsidiary representa una filial; pertenece a exactamente una Company.
type Subsidiary struct {
	ID        int64
	Name      string // único
	CompanyID int64
	CreatedAt time.Time
}
