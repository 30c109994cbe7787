package repository

import (
	"context"

	"github.com/jhoicas/holding-tracker/internal/domain/entity"
)

// ContractRepository define el puerto de persistencia para Contract.
type ContractRepository interface {
	Create(ctx context.Context, contract *entity.Contract) error
	GetByID(ctx context.Context, id int64) (*entity.Contract, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	// List devuelve todos los contratos ordenados por ID ascendente.
	List(ctx context.Context) ([]*entity.Contract, error)
	ListBySubsidiary(ctx context.Context, subsidiaryID int64) ([]*entity.Contract, error)
}
