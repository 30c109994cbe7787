package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un contrato. Cualquier estado puede seguir a cualquier otro.
const (
	ContractStatusProspect  = "prospect"
	ContractStatusSigned    = "signed"
	ContractStatusActive    = "active"
	ContractStatusCompleted = "completed"
	ContractStatusCancelled = "cancelled"
)

// ContractStatuses lista los estados válidos en el orden en que se muestran.
var ContractStatuses = []string{
	ContractStatusProspect,
	ContractStatusSigned,
	ContractStatusActive,
	ContractStatusCompleted,
	ContractStatusCancelled,
}

// IsValidContractStatus informa si s es uno de los estados conocidos.
func IsValidContractStatus(s string) bool {
	for _, st := range ContractStatuses {
		if st == s {
			return true
		}
	}
	return false
}

// Contract representa un acuerdo entre una filial y un cliente.
type Contract struct {
	ID                  int64
	Title               string
	SubsidiaryID        int64
	ClientID            int64
	SignedDate          *time.Time // nil = sin firmar
	StartDate           *time.Time
	EndDate             *time.Time
	ContractValue       decimal.Decimal // valor total pactado, 2 decimales
	Retainer            decimal.Decimal // se registra pero no entra en los agregados
	PercentToSubsidiary decimal.Decimal // 0–100, porcentaje del beneficio para la filial
	Status              string          // ver constantes ContractStatus*
	Notes               string
	CreatedAt           time.Time
}
