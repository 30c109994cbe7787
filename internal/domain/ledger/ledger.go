// Package ledger contiene la aritmética de dominio de los agregados por contrato,
// filial y empresa. Son funciones puras sobre decimal.Decimal: no acceden a la
// persistencia y no redondean en punto flotante.
package ledger

import "github.com/shopspring/decimal"

// MoneyPlaces es la precisión fija (dígitos fraccionarios) de los montos.
const MoneyPlaces = 2

var (
	hundred = decimal.NewFromInt(100)

	// maxAmount cota exclusiva de NUMERIC(14,2): 12 dígitos enteros.
	maxAmount = decimal.New(1, 12)

	// DefaultPercentToSubsidiary es el porcentaje asignado cuando el contrato no indica uno.
	DefaultPercentToSubsidiary = hundred
)

// RoundMoney normaliza un monto a MoneyPlaces decimales (half away from zero),
// igual que una columna NUMERIC(14,2).
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// ValidAmount informa si el monto es no negativo y, ya redondeado, cabe en NUMERIC(14,2).
func ValidAmount(d decimal.Decimal) bool {
	return !d.IsNegative() && RoundMoney(d).LessThan(maxAmount)
}

// ValidPercent informa si p está en [0,100].
func ValidPercent(p decimal.Decimal) bool {
	return !p.IsNegative() && p.LessThanOrEqual(hundred)
}

// ContractTotals agregado de un contrato.
type ContractTotals struct {
	Revenue         decimal.Decimal
	Expenses        decimal.Decimal
	Profit          decimal.Decimal // Revenue - Expenses, puede ser negativo
	SubsidiaryShare decimal.Decimal // Profit * PercentToSubsidiary / 100
}

// ComputeContract calcula el agregado de un contrato a partir de las sumas de
// ingresos y gastos. La participación de la filial se aplica sobre el beneficio,
// no sobre el ingreso, y conserva su signo.
func ComputeContract(revenue, expenses, percentToSubsidiary decimal.Decimal) ContractTotals {
	profit := revenue.Sub(expenses)
	share := RoundMoney(profit.Mul(percentToSubsidiary).Div(hundred))
	return ContractTotals{
		Revenue:         revenue,
		Expenses:        expenses,
		Profit:          profit,
		SubsidiaryShare: share,
	}
}

// Totals acumulado de ingresos, gastos y beneficio para filiales y empresas.
type Totals struct {
	Revenue  decimal.Decimal
	Expenses decimal.Decimal
	Profit   decimal.Decimal
}

// AddContract suma el beneficio bruto del contrato (no SubsidiaryShare).
func (t Totals) AddContract(c ContractTotals) Totals {
	return Totals{
		Revenue:  t.Revenue.Add(c.Revenue),
		Expenses: t.Expenses.Add(c.Expenses),
		Profit:   t.Profit.Add(c.Profit),
	}
}

// Add suma otro acumulado.
func (t Totals) Add(o Totals) Totals {
	return Totals{
		Revenue:  t.Revenue.Add(o.Revenue),
		Expenses: t.Expenses.Add(o.Expenses),
		Profit:   t.Profit.Add(o.Profit),
	}
}
