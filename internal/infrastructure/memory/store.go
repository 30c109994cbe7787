// Package memory implementa los puertos de persistencia en memoria.
// Se usa en los tests (una instancia nueva por test) y con DB_DRIVER=memory en desarrollo.
// Replica las restricciones de la base: nombres únicos, claves foráneas e IDs autoincrementales.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/holding-tracker/internal/domain/entity"
	"github.com/jhoicas/holding-tracker/internal/domain/repository"
)

var (
	_ repository.TxRunner = (*Store)(nil)
	_ repository.Wiper    = (*Store)(nil)
	_ repository.Store    = (*Store)(nil)
)

// Store guarda las seis tablas en memoria, serializadas por un mutex.
type Store struct {
	mu   sync.Mutex
	data *tables
}

type tables struct {
	companies    []entity.Company
	subsidiaries []entity.Subsidiary
	clients      []entity.Client
	contracts    []entity.Contract
	revenues     []entity.Revenue
	expenses     []entity.Expense
	equityAwards []entity.EquityAward

	// Secuencias por tabla (equivalente a BIGSERIAL).
	seqCompany, seqSubsidiary, seqClient, seqContract, seqRevenue, seqExpense, seqEquity int64
}

// NewStore construye un store vacío.
func NewStore() *Store {
	return &Store{data: &tables{}}
}

// Repositories devuelve repositorios que toman el lock en cada operación.
func (s *Store) Repositories() repository.Repositories {
	return s.repos(false)
}

// Run ejecuta fn con el lock tomado durante toda la función. Si fn falla, se
// restaura la copia previa: ninguna escritura parcial sobrevive.
func (s *Store) Run(_ context.Context, fn func(repos repository.Repositories) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.data.clone()
	if err := fn(s.repos(true)); err != nil {
		s.data = snapshot
		return err
	}
	return nil
}

// WipeAll vacía todas las tablas y reinicia las secuencias.
func (s *Store) WipeAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = &tables{}
	return nil
}

func (s *Store) repos(inTx bool) repository.Repositories {
	v := view{s: s, inTx: inTx}
	return repository.Repositories{
		Companies:    &CompanyRepo{v: v},
		Subsidiaries: &SubsidiaryRepo{v: v},
		Clients:      &ClientRepo{v: v},
		Contracts:    &ContractRepo{v: v},
		Revenues:     &RevenueRepo{v: v},
		Expenses:     &ExpenseRepo{v: v},
		EquityAwards: &EquityAwardRepo{v: v},
	}
}

// view da acceso a las tablas; fuera de una transacción toma el lock por operación.
type view struct {
	s    *Store
	inTx bool
}

func (v view) read(fn func(t *tables)) {
	if !v.inTx {
		v.s.mu.Lock()
		defer v.s.mu.Unlock()
	}
	fn(v.s.data)
}

func (v view) write(fn func(t *tables) error) error {
	if !v.inTx {
		v.s.mu.Lock()
		defer v.s.mu.Unlock()
	}
	return fn(v.s.data)
}

func (t *tables) clone() *tables {
	c := *t
	c.companies = append([]entity.Company(nil), t.companies...)
	c.subsidiaries = append([]entity.Subsidiary(nil), t.subsidiaries...)
	c.clients = append([]entity.Client(nil), t.clients...)
	c.contracts = append([]entity.Contract(nil), t.contracts...)
	c.revenues = append([]entity.Revenue(nil), t.revenues...)
	c.expenses = append([]entity.Expense(nil), t.expenses...)
	c.equityAwards = append([]entity.EquityAward(nil), t.equityAwards...)
	return &c
}

func (t *tables) companyByID(id int64) *entity.Company {
	for i := range t.companies {
		if t.companies[i].ID == id {
			return &t.companies[i]
		}
	}
	return nil
}

func (t *tables) subsidiaryByID(id int64) *entity.Subsidiary {
	for i := range t.subsidiaries {
		if t.subsidiaries[i].ID == id {
			return &t.subsidiaries[i]
		}
	}
	return nil
}

func (t *tables) clientByID(id int64) *entity.Client {
	for i := range t.clients {
		if t.clients[i].ID == id {
			return &t.clients[i]
		}
	}
	return nil
}

func (t *tables) contractByID(id int64) *entity.Contract {
	for i := range t.contracts {
		if t.contracts[i].ID == id {
			return &t.contracts[i]
		}
	}
	return nil
}
