package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/holding-tracker/internal/domain/entity"
	"github.com/jhoicas/holding-tracker/internal/domain/repository"
	"github.com/jhoicas/holding-tracker/internal/infrastructure/memory"
)

// world arma filas directamente con los repositorios del store en memoria.
type world struct {
	t     *testing.T
	ctx   context.Context
	store *memory.Store
	repos repository.Repositories
}

func newWorld(t *testing.T) *world {
	t.Helper()
	store := memory.NewStore()
	return &world{t: t, ctx: context.Background(), store: store, repos: store.Repositories()}
}

func (w *world) company(name string, parent bool) int64 {
	w.t.Helper()
	c := &entity.Company{Name: name, IsParent: parent}
	require.NoError(w.t, w.repos.Companies.Create(w.ctx, c))
	return c.ID
}

func (w *world) subsidiary(name string, companyID int64) int64 {
	w.t.Helper()
	s := &entity.Subsidiary{Name: name, CompanyID: companyID}
	require.NoError(w.t, w.repos.Subsidiaries.Create(w.ctx, s))
	return s.ID
}

func (w *world) client(name string) int64 {
	w.t.Helper()
	c := &entity.Client{Name: name}
	require.NoError(w.t, w.repos.Clients.Create(w.ctx, c))
	return c.ID
}

func (w *world) contract(title string, subID, clientID int64, percent string) int64 {
	w.t.Helper()
	c := &entity.Contract{
		Title:               title,
		SubsidiaryID:        subID,
		ClientID:            clientID,
		ContractValue:       decimal.NewFromInt(1000),
		PercentToSubsidiary: decimal.RequireFromString(percent),
		Status:              entity.ContractStatusActive,
	}
	require.NoError(w.t, w.repos.Contracts.Create(w.ctx, c))
	return c.ID
}

func (w *world) revenue(contractID int64, amount, day string) {
	w.t.Helper()
	r := &entity.Revenue{ContractID: contractID, Amount: decimal.RequireFromString(amount), Date: mustDay(w.t, day)}
	require.NoError(w.t, w.repos.Revenues.Create(w.ctx, r))
}

func (w *world) expense(contractID int64, amount, day string) {
	w.t.Helper()
	e := &entity.Expense{ContractID: contractID, Amount: decimal.RequireFromString(amount), Date: mustDay(w.t, day)}
	require.NoError(w.t, w.repos.Expenses.Create(w.ctx, e))
}

func mustDay(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(entity.DateLayout, s)
	require.NoError(t, err)
	return d
}

func assertMoney(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Equal(t, want, got.StringFixed(2))
}
