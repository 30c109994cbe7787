package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/holding-tracker/internal/domain"
	"github.com/jhoicas/holding-tracker/internal/domain/entity"
	"github.com/jhoicas/holding-tracker/internal/domain/repository"
	"github.com/jhoicas/holding-tracker/internal/infrastructure/memory"
)

func TestStore_IDsAutoincrementales(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewStore().Repositories()

	a := &entity.Company{Name: "A"}
	b := &entity.Company{Name: "B"}
	require.NoError(t, repos.Companies.Create(ctx, a))
	require.NoError(t, repos.Companies.Create(ctx, b))

	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(2), b.ID)
}

func TestStore_NombreDuplicado(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewStore().Repositories()

	require.NoError(t, repos.Clients.Create(ctx, &entity.Client{Name: "Acme", Email: "a@acme.io"}))
	err := repos.Clients.Create(ctx, &entity.Client{Name: "Acme"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// Comparación exacta, sensible a mayúsculas.
	require.NoError(t, repos.Clients.Create(ctx, &entity.Client{Name: "acme"}))

	orig, err := repos.Clients.GetByName(ctx, "Acme")
	require.NoError(t, err)
	assert.Equal(t, "a@acme.io", orig.Email, "la fila original no cambia")
}

func TestStore_ClaveForanea(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewStore().Repositories()

	err := repos.Subsidiaries.Create(ctx, &entity.Subsidiary{Name: "X", CompanyID: 99})
	assert.ErrorIs(t, err, domain.ErrConstraint)

	err = repos.Revenues.Create(ctx, &entity.Revenue{ContractID: 7, Amount: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrConstraint)

	sum, err := repos.Revenues.SumByContract(ctx, 7)
	require.NoError(t, err)
	assert.True(t, sum.IsZero(), "no debe haberse insertado ninguna fila")
}

func TestStore_RunRevierteEnError(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	boom := errors.New("boom")

	err := store.Run(ctx, func(r repository.Repositories) error {
		if err := r.Companies.Create(ctx, &entity.Company{Name: "Parcial"}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	list, err := store.Repositories().Companies.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestStore_EnsureByNameIdempotente(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewStore().Repositories()

	first, created, err := repos.Companies.EnsureByName(ctx, "Holding", true)
	require.NoError(t, err)
	assert.True(t, created)

	again, created, err := repos.Companies.EnsureByName(ctx, "Holding", true)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, again.ID)
}

func TestStore_EnsureByNamePromueveSinDesmarcar(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewStore().Repositories()
	require.NoError(t, repos.Companies.Create(ctx, &entity.Company{Name: "Holding"}))

	promoted, created, err := repos.Companies.EnsureByName(ctx, "Holding", true)
	require.NoError(t, err)
	assert.False(t, created)
	assert.True(t, promoted.IsParent)

	kept, _, err := repos.Companies.EnsureByName(ctx, "Holding", false)
	require.NoError(t, err)
	assert.True(t, kept.IsParent, "una matriz no se desmarca")
}

func TestStore_AccionesOrdenadasPorFechaDesc(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewStore().Repositories()
	contractID := seedContract(t, repos)

	day := func(d int) time.Time { return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC) }
	for _, a := range []entity.EquityAward{
		{ContractID: contractID, Percent: decimal.NewFromInt(5), Date: day(1)},
		{ContractID: contractID, Percent: decimal.NewFromInt(10), Date: day(9)},
		{ContractID: contractID, Percent: decimal.NewFromInt(15), Date: day(9)},
	} {
		a := a
		require.NoError(t, repos.EquityAwards.Create(ctx, &a))
	}

	list, err := repos.EquityAwards.ListByContract(ctx, contractID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []int64{3, 2, 1}, []int64{list[0].ID, list[1].ID, list[2].ID})
}

func TestStore_SeriePorFecha(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repos := store.Repositories()
	contractID := seedContract(t, repos)

	day := func(d int) time.Time { return time.Date(2024, 3, d, 15, 0, 0, 0, time.UTC) }
	for _, rv := range []entity.Revenue{
		{ContractID: contractID, Amount: decimal.NewFromInt(100), Date: day(5)},
		{ContractID: contractID, Amount: decimal.NewFromInt(50), Date: day(1)},
		{ContractID: contractID, Amount: decimal.NewFromInt(25), Date: day(5)},
	} {
		rv := rv
		require.NoError(t, repos.Revenues.Create(ctx, &rv))
	}

	series, err := repos.Revenues.SeriesByDate(ctx)
	require.NoError(t, err)
	require.Len(t, series, 2)
	assert.Equal(t, "2024-03-01", series[0].Date.Format(entity.DateLayout))
	assert.Equal(t, "50", series[0].Amount.String())
	assert.Equal(t, "2024-03-05", series[1].Date.Format(entity.DateLayout))
	assert.Equal(t, "125", series[1].Amount.String())
}

func TestStore_WipeAllReiniciaSecuencias(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seedContract(t, store.Repositories())

	require.NoError(t, store.WipeAll(ctx))

	repos := store.Repositories()
	contracts, err := repos.Contracts.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, contracts)

	c := &entity.Company{Name: "Nueva"}
	require.NoError(t, repos.Companies.Create(ctx, c))
	assert.Equal(t, int64(1), c.ID)
}

func seedContract(t *testing.T, repos repository.Repositories) int64 {
	t.Helper()
	ctx := context.Background()
	co := &entity.Company{Name: "Co", IsParent: true}
	require.NoError(t, repos.Companies.Create(ctx, co))
	sub := &entity.Subsidiary{Name: "Sub", CompanyID: co.ID}
	require.NoError(t, repos.Subsidiaries.Create(ctx, sub))
	cl := &entity.Client{Name: "Cliente"}
	require.NoError(t, repos.Clients.Create(ctx, cl))
	ct := &entity.Contract{
		Title: "Contrato", SubsidiaryID: sub.ID, ClientID: cl.ID,
		PercentToSubsidiary: decimal.NewFromInt(100), Status: entity.ContractStatusProspect,
	}
	require.NoError(t, repos.Contracts.Create(ctx, ct))
	return ct.ID
}
