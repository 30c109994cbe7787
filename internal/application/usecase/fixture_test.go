package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/holding-tracker/internal/application/analytics"
	"github.com/jhoicas/holding-tracker/internal/application/dto"
	"github.com/jhoicas/holding-tracker/internal/application/usecase"
	"github.com/jhoicas/holding-tracker/internal/infrastructure/memory"
	"github.com/jhoicas/holding-tracker/pkg/logger"
)

// fixture agrupa los casos de uso sobre un store en memoria nuevo.
type fixture struct {
	store     *memory.Store
	companies *usecase.CompanyUseCase
	subs      *usecase.SubsidiaryUseCase
	clients   *usecase.ClientUseCase
	contracts *usecase.ContractUseCase
	ledger    *usecase.LedgerUseCase
	rollup    *analytics.RollupUseCase
	ctx       context.Context
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	log := logger.Nop()
	rollup := analytics.NewRollupUseCase(store)
	return &fixture{
		store:     store,
		companies: usecase.NewCompanyUseCase(store, log),
		subs:      usecase.NewSubsidiaryUseCase(store, log),
		clients:   usecase.NewClientUseCase(store, log),
		contracts: usecase.NewContractUseCase(store, rollup, log),
		ledger:    usecase.NewLedgerUseCase(store, log),
		rollup:    rollup,
		ctx:       context.Background(),
	}
}

// seedContract crea empresa, filial, cliente y un contrato con el porcentaje indicado.
func (f *fixture) seedContract(t *testing.T, percent string) *dto.ContractResponse {
	t.Helper()
	company, err := f.companies.Create(f.ctx, dto.CreateCompanyRequest{Name: "Black Bear Holdings", IsParent: true})
	require.NoError(t, err)
	sub, err := f.subs.Create(f.ctx, dto.CreateSubsidiaryRequest{Name: "NexxusGovSec", CompanyID: company.ID})
	require.NoError(t, err)
	client, err := f.clients.Create(f.ctx, dto.CreateClientRequest{Name: "Acme"})
	require.NoError(t, err)

	pct := decimal.RequireFromString(percent)
	contract, err := f.contracts.Create(f.ctx, dto.CreateContractRequest{
		Title:               "Auditoría",
		SubsidiaryID:        sub.ID,
		ClientID:            client.ID,
		ContractValue:       decimal.NewFromInt(1000),
		PercentToSubsidiary: &pct,
	})
	require.NoError(t, err)
	return contract
}

func assertMoney(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Equal(t, want, got.StringFixed(2))
}
