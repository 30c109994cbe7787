package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/holding-tracker/internal/domain/entity"
	"github.com/jhoicas/holding-tracker/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var (
	_ repository.RevenueRepository     = (*RevenueRepo)(nil)
	_ repository.ExpenseRepository     = (*ExpenseRepo)(nil)
	_ repository.EquityAwardRepository = (*EquityAwardRepo)(nil)
)

// RevenueRepo implementación de RevenueRepository.
type RevenueRepo struct {
	q Querier
}

// NewRevenueRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRevenueRepository(q Querier) *RevenueRepo {
	return &RevenueRepo{q: q}
}

// Create registra un ingreso.
func (r *RevenueRepo) Create(ctx context.Context, rev *entity.Revenue) error {
	query := `
		INSERT INTO revenues (contract_id, amount, date, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, rev.ContractID, rev.Amount, entity.DateOnly(rev.Date), rev.Description).Scan(&rev.ID)
	if err != nil {
		return mapWriteError(err, "insert revenue")
	}
	return nil
}

// ListByContract devuelve los ingresos del contrato, más recientes primero.
func (r *RevenueRepo) ListByContract(ctx context.Context, contractID int64) ([]*entity.Revenue, error) {
	query := `
		SELECT id, contract_id, amount, date, description
		FROM revenues WHERE contract_id = $1
		ORDER BY date DESC, id DESC`
	rows, err := r.q.Query(ctx, query, contractID)
	if err != nil {
		return nil, fmt.Errorf("list revenues: %w", err)
	}
	defer rows.Close()

	list := []*entity.Revenue{}
	for rows.Next() {
		var rev entity.Revenue
		if err := rows.Scan(&rev.ID, &rev.ContractID, &rev.Amount, &rev.Date, &rev.Description); err != nil {
			return nil, fmt.Errorf("scan revenue: %w", err)
		}
		list = append(list, &rev)
	}
	return list, rows.Err()
}

// SumByContract suma los ingresos del contrato (0 si no hay).
func (r *RevenueRepo) SumByContract(ctx context.Context, contractID int64) (decimal.Decimal, error) {
	return sumAmount(ctx, r.q, `SELECT COALESCE(SUM(amount), 0) FROM revenues WHERE contract_id = $1`, contractID)
}

// SeriesByDate agrupa los ingresos por fecha exacta.
func (r *RevenueRepo) SeriesByDate(ctx context.Context) ([]repository.DateAmount, error) {
	query := `
		SELECT date, SUM(amount)
		FROM revenues
		GROUP BY date
		ORDER BY date`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("revenue series: %w", err)
	}
	defer rows.Close()

	series := []repository.DateAmount{}
	for rows.Next() {
		var p repository.DateAmount
		if err := rows.Scan(&p.Date, &p.Amount); err != nil {
			return nil, fmt.Errorf("scan revenue series: %w", err)
		}
		series = append(series, p)
	}
	return series, rows.Err()
}

// ExpenseRepo implementación de ExpenseRepository.
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

// Create registra un gasto.
func (r *ExpenseRepo) Create(ctx context.Context, exp *entity.Expense) error {
	query := `
		INSERT INTO expenses (contract_id, amount, date, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, exp.ContractID, exp.Amount, entity.DateOnly(exp.Date), exp.Description).Scan(&exp.ID)
	if err != nil {
		return mapWriteError(err, "insert expense")
	}
	return nil
}

// ListByContract devuelve los gastos del contrato, más recientes primero.
func (r *ExpenseRepo) ListByContract(ctx context.Context, contractID int64) ([]*entity.Expense, error) {
	query := `
		SELECT id, contract_id, amount, date, description
		FROM expenses WHERE contract_id = $1
		ORDER BY date DESC, id DESC`
	rows, err := r.q.Query(ctx, query, contractID)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	list := []*entity.Expense{}
	for rows.Next() {
		var exp entity.Expense
		if err := rows.Scan(&exp.ID, &exp.ContractID, &exp.Amount, &exp.Date, &exp.Description); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		list = append(list, &exp)
	}
	return list, rows.Err()
}

// SumByContract suma los gastos del contrato (0 si no hay).
func (r *ExpenseRepo) SumByContract(ctx context.Context, contractID int64) (decimal.Decimal, error) {
	return sumAmount(ctx, r.q, `SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE contract_id = $1`, contractID)
}

// EquityAwardRepo implementación de EquityAwardRepository.
type EquityAwardRepo struct {
	q Querier
}

// NewEquityAwardRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEquityAwardRepository(q Querier) *EquityAwardRepo {
	return &EquityAwardRepo{q: q}
}

// Create registra una participación otorgada.
func (r *EquityAwardRepo) Create(ctx context.Context, a *entity.EquityAward) error {
	query := `
		INSERT INTO equity_awards (contract_id, recipient, percent, date, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, a.ContractID, a.Recipient, a.Percent, entity.DateOnly(a.Date), a.Notes).Scan(&a.ID)
	if err != nil {
		return mapWriteError(err, "insert equity award")
	}
	return nil
}

// ListByContract devuelve las participaciones del contrato, más recientes primero.
func (r *EquityAwardRepo) ListByContract(ctx context.Context, contractID int64) ([]*entity.EquityAward, error) {
	query := `
		SELECT id, contract_id, recipient, percent, date, notes
		FROM equity_awards WHERE contract_id = $1
		ORDER BY date DESC, id DESC`
	rows, err := r.q.Query(ctx, query, contractID)
	if err != nil {
		return nil, fmt.Errorf("list equity awards: %w", err)
	}
	defer rows.Close()

	list := []*entity.EquityAward{}
	for rows.Next() {
		var a entity.EquityAward
		if err := rows.Scan(&a.ID, &a.ContractID, &a.Recipient, &a.Percent, &a.Date, &a.Notes); err != nil {
			return nil, fmt.Errorf("scan equity award: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

func sumAmount(ctx context.Context, q Querier, query string, args ...any) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("sum amount: %w", err)
	}
	return total, nil
}
