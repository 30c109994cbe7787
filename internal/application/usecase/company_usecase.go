package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/holding-tracker/internal/application/dto"
	"github.com/jhoicas/holding-tracker/internal/domain/entity"
	"github.com/jhoicas/holding-tracker/internal/domain/repository"
	"github.com/jhoicas/holding-tracker/pkg/logger"
)

// CompanyUseCase aplica reglas de negocio para empresas (casos de uso).
type CompanyUseCase struct {
	store repository.Store
	log   *logger.Logger
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(store repository.Store, log *logger.Logger) *CompanyUseCase {
	return &CompanyUseCase{store: store, log: log}
}

// Create crea una nueva empresa. Devuelve domain.ErrDuplicate si el nombre ya existe.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, invalid("el nombre de la empresa es obligatorio")
	}
	company := &entity.Company{Name: name, IsParent: in.IsParent}
	err := uc.store.Run(ctx, func(repos repository.Repositories) error {
		existing, err := repos.Companies.GetByName(ctx, name)
		if err != nil {
			return err
		}
		if existing != nil {
			return duplicate("empresa", name)
		}
		return repos.Companies.Create(ctx, company)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int64("company_id", company.ID).Str("name", company.Name).Bool("is_parent", company.IsParent).Msg("empresa creada")
	out := toCompanyResponse(company)
	return &out, nil
}

// GetByID obtiene una empresa por ID. Devuelve domain.ErrNotFound si no existe.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id int64) (*dto.CompanyResponse, error) {
	company, err := uc.store.Repositories().Companies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, notFound("empresa", id)
	}
	out := toCompanyResponse(company)
	return &out, nil
}

// List lista todas las empresas por ID.
func (uc *CompanyUseCase) List(ctx context.Context) ([]dto.CompanyResponse, error) {
	list, err := uc.store.Repositories().Companies.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, toCompanyResponse(c))
	}
	return items, nil
}
