package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/holding-tracker/internal/domain"
	"github.com/jhoicas/holding-tracker/internal/domain/entity"
	"github.com/jhoicas/holding-tracker/internal/domain/repository"
)

var (
	_ repository.RevenueRepository     = (*RevenueRepo)(nil)
	_ repository.ExpenseRepository     = (*ExpenseRepo)(nil)
	_ repository.EquityAwardRepository = (*EquityAwardRepo)(nil)
)

// RevenueRepo implementación en memoria de RevenueRepository.
type RevenueRepo struct{ v view }

func (r *RevenueRepo) Create(_ context.Context, revenue *entity.Revenue) error {
	return r.v.write(func(t *tables) error {
		if t.contractByID(revenue.ContractID) == nil {
			return fmt.Errorf("%w: revenues.contract_id=%d", domain.ErrConstraint, revenue.ContractID)
		}
		t.seqRevenue++
		revenue.ID = t.seqRevenue
		revenue.Date = entity.DateOnly(revenue.Date)
		t.revenues = append(t.revenues, *revenue)
		return nil
	})
}

func (r *RevenueRepo) ListByContract(_ context.Context, contractID int64) ([]*entity.Revenue, error) {
	out := []*entity.Revenue{}
	r.v.read(func(t *tables) {
		for i := range t.revenues {
			if t.revenues[i].ContractID == contractID {
				rv := t.revenues[i]
				out = append(out, &rv)
			}
		}
	})
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *RevenueRepo) SumByContract(_ context.Context, contractID int64) (decimal.Decimal, error) {
	sum := decimal.Zero
	r.v.read(func(t *tables) {
		for i := range t.revenues {
			if t.revenues[i].ContractID == contractID {
				sum = sum.Add(t.revenues[i].Amount)
			}
		}
	})
	return sum, nil
}

func (r *RevenueRepo) SeriesByDate(_ context.Context) ([]repository.DateAmount, error) {
	byDate := map[string]*repository.DateAmount{}
	r.v.read(func(t *tables) {
		for i := range t.revenues {
			rv := t.revenues[i]
			key := rv.Date.Format(entity.DateLayout)
			p, ok := byDate[key]
			if !ok {
				p = &repository.DateAmount{Date: entity.DateOnly(rv.Date), Amount: decimal.Zero}
				byDate[key] = p
			}
			p.Amount = p.Amount.Add(rv.Amount)
		}
	})
	out := make([]repository.DateAmount, 0, len(byDate))
	for _, p := range byDate {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

// ExpenseRepo implementación en memoria de ExpenseRepository.
type ExpenseRepo struct{ v view }

func (r *ExpenseRepo) Create(_ context.Context, expense *entity.Expense) error {
	return r.v.write(func(t *tables) error {
		if t.contractByID(expense.ContractID) == nil {
			return fmt.Errorf("%w: expenses.contract_id=%d", domain.ErrConstraint, expense.ContractID)
		}
		t.seqExpense++
		expense.ID = t.seqExpense
		expense.Date = entity.DateOnly(expense.Date)
		t.expenses = append(t.expenses, *expense)
		return nil
	})
}

func (r *ExpenseRepo) ListByContract(_ context.Context, contractID int64) ([]*entity.Expense, error) {
	out := []*entity.Expense{}
	r.v.read(func(t *tables) {
		for i := range t.expenses {
			if t.expenses[i].ContractID == contractID {
				e := t.expenses[i]
				out = append(out, &e)
			}
		}
	})
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *ExpenseRepo) SumByContract(_ context.Context, contractID int64) (decimal.Decimal, error) {
	sum := decimal.Zero
	r.v.read(func(t *tables) {
		for i := range t.expenses {
			if t.expenses[i].ContractID == contractID {
				sum = sum.Add(t.expenses[i].Amount)
			}
		}
	})
	return sum, nil
}

// EquityAwardRepo implementación en memoria de EquityAwardRepository.
type EquityAwardRepo struct{ v view }

func (r *EquityAwardRepo) Create(_ context.Context, award *entity.EquityAward) error {
	return r.v.write(func(t *tables) error {
		if t.contractByID(award.ContractID) == nil {
			return fmt.Errorf("%w: equity_awards.contract_id=%d", domain.ErrConstraint, award.ContractID)
		}
		t.seqEquity++
		award.ID = t.seqEquity
		award.Date = entity.DateOnly(award.Date)
		t.equityAwards = append(t.equityAwards, *award)
		return nil
	})
}

func (r *EquityAwardRepo) ListByContract(_ context.Context, contractID int64) ([]*entity.EquityAward, error) {
	out := []*entity.EquityAward{}
	r.v.read(func(t *tables) {
		for i := range t.equityAwards {
			if t.equityAwards[i].ContractID == contractID {
				a := t.equityAwards[i]
				out = append(out, &a)
			}
		}
	})
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}
