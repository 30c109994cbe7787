package dto

import "github.com/shopspring/decimal"

// SubsidiaryAggregate totales de una filial. Profit suma el beneficio bruto de cada contrato,
// no la parte de la filial.
type SubsidiaryAggregate struct {
	SubsidiaryID  int64           `json:"subsidiary_id"`
	Name          string          `json:"name"`
	Revenue       decimal.Decimal `json:"revenue"`
	Expenses      decimal.Decimal `json:"expenses"`
	Profit        decimal.Decimal `json:"profit"`
	ContractCount int             `json:"contract_count"`
}

// CompanyAggregate totales de una empresa sobre todas sus filiales.
type CompanyAggregate struct {
	CompanyID       int64           `json:"company_id"`
	Name            string          `json:"name"`
	IsParent        bool            `json:"is_parent"`
	Revenue         decimal.Decimal `json:"revenue"`
	Expenses        decimal.Decimal `json:"expenses"`
	Profit          decimal.Decimal `json:"profit"`
	SubsidiaryCount int             `json:"subsidiary_count"`
}

// ParentDrilldown detalle de la empresa matriz con el desglose por filial.
type ParentDrilldown struct {
	Company      CompanyAggregate      `json:"company"`
	Subsidiaries []SubsidiaryAggregate `json:"subsidiaries"`
}

// RevenuePoint total de ingresos de un día.
type RevenuePoint struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// DashboardResponse respuesta de GET /api/dashboard.
// Parent es null cuando no hay ninguna empresa matriz.
type DashboardResponse struct {
	Companies     []CompanyAggregate `json:"companies"`
	Parent        *ParentDrilldown   `json:"parent"`
	RevenueSeries []RevenuePoint     `json:"revenue_series"`
}
