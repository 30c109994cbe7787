package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// EquityAward representa participación accionaria otorgada en el marco de un contrato.
type EquityAward struct {
	ID         int64
	ContractID int64
	Recipient  string
	Percent    decimal.Decimal // 0–100
	Date       time.Time
	Notes      string
}
