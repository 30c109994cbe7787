package repository

import (
	"context"

	"github.com/jhoicas/holding-tracker/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	// Create persiste la empresa y asigna ID. Devuelve domain.ErrDuplicate si el nombre existe.
	Create(ctx context.Context, company *entity.Company) error
	// EnsureByName inserta la empresa si no existe otra con el mismo nombre (upsert atómico)
	// y devuelve la fila vigente. created indica si se insertó. Con isParent=true
	// una fila existente se marca como matriz; nunca se desmarca.
	EnsureByName(ctx context.Context, name string, isParent bool) (company *entity.Company, created bool, err error)
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Company, error)
	GetByName(ctx context.Context, name string) (*entity.Company, error)
	// FirstParent devuelve la empresa matriz de menor ID, o nil.
	FirstParent(ctx context.Context) (*entity.Company, error)
	// List devuelve todas las empresas ordenadas por ID.
	List(ctx context.Context) ([]*entity.Company, error)
}
