package analytics_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/holding-tracker/internal/application/analytics"
	"github.com/jhoicas/holding-tracker/internal/domain/entity"
)

func TestExportUseCase_SoloCabecera(t *testing.T) {
	w := newWorld(t)

	data, err := analytics.NewExportUseCase(w.store, analytics.NewRollupUseCase(w.store)).ContractsCSV(w.ctx)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(analytics.ContractsCSVHeader, ",")+"\n", string(data))
}

func TestExportUseCase_Filas(t *testing.T) {
	w := newWorld(t)
	sub := w.subsidiary("NexxusGovSec", w.company("H", true))
	client := w.client("Acme, Inc.")
	a := w.contract("Auditoría", sub, client, "50")
	b := w.contract("Soporte", sub, client, "100")
	w.revenue(a, "800", "2024-01-10")
	w.expense(a, "200", "2024-01-11")
	w.expense(b, "10.5", "2024-01-12")

	data, err := analytics.NewExportUseCase(w.store, analytics.NewRollupUseCase(w.store)).ContractsCSV(w.ctx)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, analytics.ContractsCSVHeader, records[0])

	assert.Equal(t, []string{
		"1", "Auditoría", "NexxusGovSec", "Acme, Inc.", entity.ContractStatusActive,
		"1000.00", "0.00", "", "800.00", "200.00", "600.00",
	}, records[1])
	assert.Equal(t, []string{
		"2", "Soporte", "NexxusGovSec", "Acme, Inc.", entity.ContractStatusActive,
		"1000.00", "0.00", "", "0.00", "10.50", "-10.50",
	}, records[2])
}

func TestExportUseCase_FechaFirma(t *testing.T) {
	w := newWorld(t)
	sub := w.subsidiary("S", w.company("H", true))
	signed := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)
	c := &entity.Contract{
		Title: "Firmado", SubsidiaryID: sub, ClientID: w.client("C"),
		PercentToSubsidiary: decimal.NewFromInt(100), Status: entity.ContractStatusSigned, SignedDate: &signed,
	}
	require.NoError(t, w.repos.Contracts.Create(w.ctx, c))

	data, err := analytics.NewExportUseCase(w.store, analytics.NewRollupUseCase(w.store)).ContractsCSV(w.ctx)
	require.NoError(t, err)
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "2023-12-31", records[1][7])
	assert.Equal(t, "0.00", records[1][5])
}
