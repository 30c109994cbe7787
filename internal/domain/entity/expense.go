package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense representa un costo incurrido para ejecutar un contrato.
type Expense struct {
	ID          int64
	ContractID  int64
	Amount      decimal.Decimal // >= 0, 2 decimales
	Date        time.Time
	Description string
}
