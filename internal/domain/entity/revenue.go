package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Revenue representa un ingreso (pago, retainer cobrado) asociado a un contrato.
type Revenue struct {
	ID          int64
	ContractID  int64
	Amount      decimal.Decimal // >= 0, 2 decimales
	Date        time.Time       // día calendario
	Description string
}
