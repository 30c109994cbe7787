package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/holding-tracker/internal/domain/entity"
)

// RevenueRepository define el puerto de persistencia para ingresos.
type RevenueRepository interface {
	Create(ctx context.Context, revenue *entity.Revenue) error
	// ListByContract devuelve los ingresos del contrato, más recientes primero.
	ListByContract(ctx context.Context, contractID int64) ([]*entity.Revenue, error)
	// SumByContract devuelve la suma de montos; cero si no hay filas (COALESCE).
	SumByContract(ctx context.Context, contractID int64) (decimal.Decimal, error)
	// SeriesByDate agrupa todos los ingresos por fecha exacta, en orden cronológico.
	SeriesByDate(ctx context.Context) ([]DateAmount, error)
}

// ExpenseRepository define el puerto de persistencia para gastos.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	ListByContract(ctx context.Context, contractID int64) ([]*entity.Expense, error)
	SumByContract(ctx context.Context, contractID int64) (decimal.Decimal, error)
}

// EquityAwardRepository define el puerto de persistencia para participaciones otorgadas.
type EquityAwardRepository interface {
	Create(ctx context.Context, award *entity.EquityAward) error
	ListByContract(ctx context.Context, contractID int64) ([]*entity.EquityAward, error)
}

// DateAmount punto de una serie temporal: monto total de un día.
type DateAmount struct {
	Date   time.Time
	Amount decimal.Decimal
}
