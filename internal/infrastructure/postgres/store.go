package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/holding-tracker/internal/domain/repository"
)

var (
	_ repository.TxRunner = (*Store)(nil)
	_ repository.Wiper    = (*Store)(nil)
	_ repository.Store    = (*Store)(nil)
)

// Store agrupa los repositorios PostgreSQL sobre un pool y ejecuta transacciones.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore construye el store con el pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Repositories devuelve los repositorios atados al pool (fuera de transacción).
func (s *Store) Repositories() repository.Repositories {
	return newRepositories(s.pool)
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (s *Store) Run(ctx context.Context, fn func(repos repository.Repositories) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(newRepositories(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// WipeAll elimina todas las tablas y las recrea vacías con las migraciones.
func (s *Store) WipeAll(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := resetSchema(s.pool); err != nil {
		return err
	}
	// Las conexiones abiertas guardan sentencias preparadas contra las tablas anteriores.
	s.pool.Reset()
	return nil
}

func newRepositories(q Querier) repository.Repositories {
	return repository.Repositories{
		Companies:    NewCompanyRepository(q),
		Subsidiaries: NewSubsidiaryRepository(q),
		Clients:      NewClientRepository(q),
		Contracts:    NewContractRepository(q),
		Revenues:     NewRevenueRepository(q),
		Expenses:     NewExpenseRepository(q),
		EquityAwards: NewEquityAwardRepository(q),
	}
}
