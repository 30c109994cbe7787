package repository

import (
	"context"

	"github.com/jhoicas/holding-tracker/internal/domain/entity"
)

// SubsidiaryRepository define el puerto de persistencia para Subsidiary.
type SubsidiaryRepository interface {
	Create(ctx context.Context, sub *entity.Subsidiary) error
	EnsureByName(ctx context.Context, name string, companyID int64) (sub *entity.Subsidiary, created bool, err error)
	GetByID(ctx context.Context, id int64) (*entity.Subsidiary, error)
	GetByName(ctx context.Context, name string) (*entity.Subsidiary, error)
	List(ctx context.Context) ([]*entity.Subsidiary, error)
	// ListByCompany usa el índice sobre company_id.
	ListByCompany(ctx context.Context, companyID int64) ([]*entity.Subsidiary, error)
}
