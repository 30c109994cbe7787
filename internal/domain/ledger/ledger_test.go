package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/holding-tracker/internal/domain/ledger"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestComputeContract_EjemploReferencia(t *testing.T) {
	// Ingresos [500, 300], gastos [200], 50% a la filial.
	got := ledger.ComputeContract(d("800"), d("200"), d("50"))

	assert.True(t, got.Revenue.Equal(d("800")))
	assert.True(t, got.Expenses.Equal(d("200")))
	assert.True(t, got.Profit.Equal(d("600")))
	assert.True(t, got.SubsidiaryShare.Equal(d("300")))
}

func TestComputeContract_SinMovimientos(t *testing.T) {
	got := ledger.ComputeContract(decimal.Zero, decimal.Zero, d("100"))

	assert.True(t, got.Revenue.IsZero())
	assert.True(t, got.Expenses.IsZero())
	assert.True(t, got.Profit.IsZero())
	assert.True(t, got.SubsidiaryShare.IsZero())
}

func TestComputeContract_PerdidaConservaSigno(t *testing.T) {
	got := ledger.ComputeContract(d("100.00"), d("250.50"), d("40"))

	assert.Equal(t, "-150.5", got.Profit.String())
	assert.Equal(t, "-60.2", got.SubsidiaryShare.String())
	assert.True(t, got.SubsidiaryShare.IsNegative())
}

func TestComputeContract_SinDerivaDecimal(t *testing.T) {
	// 0.1 + 0.2 en float64 no es 0.3; en decimal debe serlo.
	rev := d("0.10").Add(d("0.20"))
	got := ledger.ComputeContract(rev, d("0.30"), d("33.33"))

	assert.True(t, got.Profit.IsZero(), "profit debe ser exactamente cero")
	assert.True(t, got.SubsidiaryShare.IsZero())
}

func TestComputeContract_RedondeaParticipacion(t *testing.T) {
	got := ledger.ComputeContract(d("10.00"), d("0"), d("33.33"))
	assert.Equal(t, "3.33", got.SubsidiaryShare.StringFixed(2))
}

func TestTotals_AddContractUsaBeneficioBruto(t *testing.T) {
	a := ledger.ComputeContract(d("1000"), d("400"), d("10"))
	b := ledger.ComputeContract(d("50"), d("80"), d("100"))

	total := ledger.Totals{}.AddContract(a).AddContract(b)

	assert.True(t, total.Revenue.Equal(d("1050")))
	assert.True(t, total.Expenses.Equal(d("480")))
	assert.True(t, total.Profit.Equal(d("570")), "se suma profit, no subsidiary share")
}

func TestValidPercent(t *testing.T) {
	assert.True(t, ledger.ValidPercent(d("0")))
	assert.True(t, ledger.ValidPercent(d("100")))
	assert.True(t, ledger.ValidPercent(d("42.5")))
	assert.False(t, ledger.ValidPercent(d("-0.01")))
	assert.False(t, ledger.ValidPercent(d("100.01")))
}

func TestValidAmount(t *testing.T) {
	assert.True(t, ledger.ValidAmount(decimal.Zero))
	assert.True(t, ledger.ValidAmount(d("12.34")))
	assert.False(t, ledger.ValidAmount(d("-1")))
	assert.True(t, ledger.ValidAmount(d("999999999999.99")))
	assert.False(t, ledger.ValidAmount(d("1000000000000")))
	assert.False(t, ledger.ValidAmount(d("999999999999.995")), "redondea a 10^12")
}

func TestRoundMoney(t *testing.T) {
	assert.Equal(t, "12.35", ledger.RoundMoney(d("12.345")).StringFixed(2))
	assert.Equal(t, "12.34", ledger.RoundMoney(d("12.344")).StringFixed(2))
}
