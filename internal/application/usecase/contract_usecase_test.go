package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/holding-tracker/internal/application/dto"
	"github.com/jhoicas/holding-tracker/internal/domain"
	"github.com/jhoicas/holding-tracker/internal/domain/entity"
)

func TestContractUseCase_Create_Defaults(t *testing.T) {
	f := newFixture(t)
	company, err := f.companies.Create(f.ctx, dto.CreateCompanyRequest{Name: "H", IsParent: true})
	require.NoError(t, err)
	sub, err := f.subs.Create(f.ctx, dto.CreateSubsidiaryRequest{Name: "S", CompanyID: company.ID})
	require.NoError(t, err)
	client, err := f.clients.Create(f.ctx, dto.CreateClientRequest{Name: "C"})
	require.NoError(t, err)

	out, err := f.contracts.Create(f.ctx, dto.CreateContractRequest{
		Title:         "Mantenimiento",
		SubsidiaryID:  sub.ID,
		ClientID:      client.ID,
		ContractValue: decimal.RequireFromString("1234.567"),
		StartDate:     "2024-01-01",
		EndDate:       "2024-12-31",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ContractStatusProspect, out.Status)
	assertMoney(t, "100.00", out.PercentToSubsidiary)
	assertMoney(t, "1234.57", out.ContractValue)
	assertMoney(t, "0.00", out.Retainer)
	assert.Equal(t, "2024-01-01", out.StartDate)
	assert.Equal(t, "2024-12-31", out.EndDate)
	assert.Empty(t, out.SignedDate)
}

func TestContractUseCase_Create_Validaciones(t *testing.T) {
	f := newFixture(t)
	base := f.seedContract(t, "50")

	neg := decimal.NewFromInt(-1)
	over := decimal.RequireFromString("100.01")
	tests := []struct {
		name string
		in   dto.CreateContractRequest
	}{
		{"sin título", dto.CreateContractRequest{SubsidiaryID: base.SubsidiaryID, ClientID: base.ClientID}},
		{"sin filial", dto.CreateContractRequest{Title: "X", ClientID: base.ClientID}},
		{"sin cliente", dto.CreateContractRequest{Title: "X", SubsidiaryID: base.SubsidiaryID}},
		{"filial inexistente", dto.CreateContractRequest{Title: "X", SubsidiaryID: 99, ClientID: base.ClientID}},
		{"cliente inexistente", dto.CreateContractRequest{Title: "X", SubsidiaryID: base.SubsidiaryID, ClientID: 99}},
		{"valor negativo", dto.CreateContractRequest{Title: "X", SubsidiaryID: base.SubsidiaryID, ClientID: base.ClientID, ContractValue: neg}},
		{"valor fuera de rango", dto.CreateContractRequest{Title: "X", SubsidiaryID: base.SubsidiaryID, ClientID: base.ClientID, ContractValue: decimal.New(1, 12)}},
		{"retainer negativo", dto.CreateContractRequest{Title: "X", SubsidiaryID: base.SubsidiaryID, ClientID: base.ClientID, Retainer: neg}},
		{"porcentaje negativo", dto.CreateContractRequest{Title: "X", SubsidiaryID: base.SubsidiaryID, ClientID: base.ClientID, PercentToSubsidiary: &neg}},
		{"porcentaje mayor a 100", dto.CreateContractRequest{Title: "X", SubsidiaryID: base.SubsidiaryID, ClientID: base.ClientID, PercentToSubsidiary: &over}},
		{"estado desconocido", dto.CreateContractRequest{Title: "X", SubsidiaryID: base.SubsidiaryID, ClientID: base.ClientID, Status: "archived"}},
		{"fecha inválida", dto.CreateContractRequest{Title: "X", SubsidiaryID: base.SubsidiaryID, ClientID: base.ClientID, SignedDate: "31/12/2024"}},
		{"fin antes del inicio", dto.CreateContractRequest{Title: "X", SubsidiaryID: base.SubsidiaryID, ClientID: base.ClientID, StartDate: "2024-06-01", EndDate: "2024-05-31"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.contracts.Create(f.ctx, tt.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	list, err := f.contracts.List(f.ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1, "ningún contrato inválido se guarda")
}

func TestContractUseCase_Create_PorcentajesLimite(t *testing.T) {
	f := newFixture(t)
	base := f.seedContract(t, "0")
	assertMoney(t, "0.00", base.PercentToSubsidiary)

	hundred := decimal.NewFromInt(100)
	out, err := f.contracts.Create(f.ctx, dto.CreateContractRequest{
		Title: "Otro", SubsidiaryID: base.SubsidiaryID, ClientID: base.ClientID, PercentToSubsidiary: &hundred,
	})
	require.NoError(t, err)
	assertMoney(t, "100.00", out.PercentToSubsidiary)
}

func TestContractUseCase_UpdateStatus(t *testing.T) {
	f := newFixture(t)
	c := f.seedContract(t, "100")

	// Cualquier transición es válida, incluso volver atrás.
	for _, st := range []string{entity.ContractStatusCompleted, entity.ContractStatusProspect, entity.ContractStatusCancelled} {
		out, err := f.contracts.UpdateStatus(f.ctx, c.ID, dto.UpdateContractStatusRequest{Status: st})
		require.NoError(t, err)
		assert.Equal(t, st, out.Status)
	}

	_, err := f.contracts.UpdateStatus(f.ctx, c.ID, dto.UpdateContractStatusRequest{Status: "paused"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.contracts.UpdateStatus(f.ctx, 999, dto.UpdateContractStatusRequest{Status: entity.ContractStatusActive})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestContractUseCase_List_MasRecientesPrimero(t *testing.T) {
	f := newFixture(t)
	first := f.seedContract(t, "50")
	second, err := f.contracts.Create(f.ctx, dto.CreateContractRequest{
		Title: "Segundo", SubsidiaryID: first.SubsidiaryID, ClientID: first.ClientID,
	})
	require.NoError(t, err)

	_, err = f.ledger.RecordRevenue(f.ctx, first.ID, dto.RecordLedgerEntryRequest{Amount: decimal.NewFromInt(800)})
	require.NoError(t, err)
	_, err = f.ledger.RecordExpense(f.ctx, first.ID, dto.RecordLedgerEntryRequest{Amount: decimal.NewFromInt(200)})
	require.NoError(t, err)

	list, err := f.contracts.List(f.ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
	assert.Equal(t, "NexxusGovSec", list[1].SubsidiaryName)
	assert.Equal(t, "Acme", list[1].ClientName)
	assertMoney(t, "600.00", list[1].Aggregate.Profit)
	assertMoney(t, "300.00", list[1].Aggregate.SubsidiaryShare)
	assertMoney(t, "0.00", list[0].Aggregate.Revenue)
}

func TestContractUseCase_Detail(t *testing.T) {
	f := newFixture(t)
	c := f.seedContract(t, "50")

	_, err := f.ledger.RecordRevenue(f.ctx, c.ID, dto.RecordLedgerEntryRequest{Amount: decimal.NewFromInt(500), Date: "2024-03-01"})
	require.NoError(t, err)
	_, err = f.ledger.RecordRevenue(f.ctx, c.ID, dto.RecordLedgerEntryRequest{Amount: decimal.NewFromInt(300), Date: "2024-04-01"})
	require.NoError(t, err)
	_, err = f.ledger.RecordExpense(f.ctx, c.ID, dto.RecordLedgerEntryRequest{Amount: decimal.NewFromInt(200), Date: "2024-03-15"})
	require.NoError(t, err)
	_, err = f.ledger.AwardEquity(f.ctx, c.ID, dto.AwardEquityRequest{Recipient: "Socio", Percent: decimal.NewFromInt(5)})
	require.NoError(t, err)

	out, err := f.contracts.Detail(f.ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "NexxusGovSec", out.Subsidiary.Name)
	assert.Equal(t, "Black Bear Holdings", out.Subsidiary.CompanyName)
	assert.Equal(t, "Acme", out.Client.Name)
	assertMoney(t, "800.00", out.Aggregate.Revenue)
	assertMoney(t, "300.00", out.Aggregate.SubsidiaryShare)

	require.Len(t, out.Revenues, 2)
	assert.Equal(t, "2024-04-01", out.Revenues[0].Date, "más recientes primero")
	require.Len(t, out.Expenses, 1)
	require.Len(t, out.EquityAwards, 1)
	assert.Equal(t, "Socio", out.EquityAwards[0].Recipient)

	_, err = f.contracts.Detail(f.ctx, 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
