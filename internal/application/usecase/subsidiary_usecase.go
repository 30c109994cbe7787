package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/holding-tracker/internal/application/dto"
	"github.com/jhoicas/holding-tracker/internal/domain/entity"
	"github.com/jhoicas/holding-tracker/internal/domain/repository"
	"github.com/jhoicas/holding-tracker/pkg/logger"
)

// SubsidiaryUseCase casos de uso para filiales.
type SubsidiaryUseCase struct {
	store repository.Store
	log   *logger.Logger
}

// NewSubsidiaryUseCase construye el caso de uso.
func NewSubsidiaryUseCase(store repository.Store, log *logger.Logger) *SubsidiaryUseCase {
	return &SubsidiaryUseCase{store: store, log: log}
}

// Create crea una filial bajo una empresa existente.
// Empresa inexistente → domain.ErrNotFound; nombre repetido → domain.ErrDuplicate.
func (uc *SubsidiaryUseCase) Create(ctx context.Context, in dto.CreateSubsidiaryRequest) (*dto.SubsidiaryResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, invalid("el nombre de la filial es obligatorio")
	}
	sub := &entity.Subsidiary{Name: name, CompanyID: in.CompanyID}
	var companyName string
	err := uc.store.Run(ctx, func(repos repository.Repositories) error {
		company, err := repos.Companies.GetByID(ctx, in.CompanyID)
		if err != nil {
			return err
		}
		if company == nil {
			return notFound("empresa", in.CompanyID)
		}
		companyName = company.Name
		existing, err := repos.Subsidiaries.GetByName(ctx, name)
		if err != nil {
			return err
		}
		if existing != nil {
			return duplicate("filial", name)
		}
		return repos.Subsidiaries.Create(ctx, sub)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int64("subsidiary_id", sub.ID).Int64("company_id", sub.CompanyID).Str("name", sub.Name).Msg("filial creada")
	out := toSubsidiaryResponse(sub, companyName)
	return &out, nil
}

// GetByID obtiene una filial por ID, con el nombre de su empresa.
func (uc *SubsidiaryUseCase) GetByID(ctx context.Context, id int64) (*dto.SubsidiaryResponse, error) {
	repos := uc.store.Repositories()
	sub, err := repos.Subsidiaries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, notFound("filial", id)
	}
	company, err := repos.Companies.GetByID(ctx, sub.CompanyID)
	if err != nil {
		return nil, err
	}
	var companyName string
	if company != nil {
		companyName = company.Name
	}
	out := toSubsidiaryResponse(sub, companyName)
	return &out, nil
}

// List lista las filiales; si companyID no es nil, solo las de esa empresa (que debe existir).
func (uc *SubsidiaryUseCase) List(ctx context.Context, companyID *int64) ([]dto.SubsidiaryResponse, error) {
	repos := uc.store.Repositories()
	companies, err := repos.Companies.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(companies))
	for _, c := range companies {
		names[c.ID] = c.Name
	}

	var subs []*entity.Subsidiary
	if companyID != nil {
		if _, ok := names[*companyID]; !ok {
			return nil, notFound("empresa", *companyID)
		}
		subs, err = repos.Subsidiaries.ListByCompany(ctx, *companyID)
	} else {
		subs, err = repos.Subsidiaries.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.SubsidiaryResponse, 0, len(subs))
	for _, s := range subs {
		items = append(items, toSubsidiaryResponse(s, names[s.CompanyID]))
	}
	return items, nil
}
