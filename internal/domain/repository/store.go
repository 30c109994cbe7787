package repository

import "context"

// Repositories agrupa los puertos de persistencia atados a una misma conexión o transacción.
type Repositories struct {
	Companies    CompanyRepository
	Subsidiaries SubsidiaryRepository
	Clients      ClientRepository
	Contracts    ContractRepository
	Revenues     RevenueRepository
	Expenses     ExpenseRepository
	EquityAwards EquityAwardRepository
}

// TxRunner ejecuta fn dentro de una transacción, pasando repositorios atados a ella.
// Si fn devuelve error se hace rollback; ninguna escritura parcial queda persistida.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos Repositories) error) error
}

// Wiper borra todas las filas de todas las tablas y recrea el esquema vacío.
// Es irreversible; el caso de uso exige confirmación en dos pasos antes de llamarlo.
type Wiper interface {
	WipeAll(ctx context.Context) error
}

// Store reúne el acceso fuera de transacción, las transacciones y el borrado total.
// Lo implementan los adaptadores postgres y memory.
type Store interface {
	Repositories() Repositories
	TxRunner
	Wiper
}
