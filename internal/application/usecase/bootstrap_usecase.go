package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/holding-tracker/internal/application/dto"
	"github.com/jhoicas/holding-tracker/internal/domain/repository"
	"github.com/jhoicas/holding-tracker/pkg/logger"
)

// BootstrapNames nombres de la organización por defecto (BOOTSTRAP_PARENT_NAME, BOOTSTRAP_SUBSIDIARIES).
type BootstrapNames struct {
	Parent       string
	Subsidiaries []string
}

// DefaultBootstrapNames organización creada cuando no se configura otra.
func DefaultBootstrapNames() BootstrapNames {
	return BootstrapNames{
		Parent:       "Black Bear Holdings",
		Subsidiaries: []string{"NexxusGovSec", "3SixMedia"},
	}
}

// BootstrapUseCase asegura que exista la organización por defecto.
type BootstrapUseCase struct {
	store repository.Store
	names BootstrapNames
	log   *logger.Logger
}

// NewBootstrapUseCase construye el caso de uso.
func NewBootstrapUseCase(store repository.Store, names BootstrapNames, log *logger.Logger) *BootstrapUseCase {
	return &BootstrapUseCase{store: store, names: names, log: log}
}

// Run crea solo lo que falte: la matriz y cada filial se aseguran por nombre con un
// upsert atómico por paso. Si ya existe una empresa con el nombre de la matriz
// pero sin marcar, se marca como matriz. Un fallo a mitad deja intactas las filas anteriores y se
// puede reintentar; nunca devuelve domain.ErrDuplicate.
func (uc *BootstrapUseCase) Run(ctx context.Context) (*dto.BootstrapResponse, error) {
	parentName := strings.TrimSpace(uc.names.Parent)
	if parentName == "" {
		return nil, invalid("el nombre de la empresa matriz es obligatorio")
	}
	repos := uc.store.Repositories()

	parent, created, err := repos.Companies.EnsureByName(ctx, parentName, true)
	if err != nil {
		return nil, err
	}
	out := &dto.BootstrapResponse{
		Parent:        toCompanyResponse(parent),
		ParentCreated: created,
		Subsidiaries:  make([]dto.BootstrapSubsidiaryDTO, 0, len(uc.names.Subsidiaries)),
	}

	for _, raw := range uc.names.Subsidiaries {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		sub, created, err := repos.Subsidiaries.EnsureByName(ctx, name, parent.ID)
		if err != nil {
			return nil, err
		}
		out.Subsidiaries = append(out.Subsidiaries, dto.BootstrapSubsidiaryDTO{
			SubsidiaryResponse: toSubsidiaryResponse(sub, parent.Name),
			Created:            created,
		})
	}

	uc.log.Info().
		Int64("parent_id", parent.ID).
		Bool("parent_created", out.ParentCreated).
		Int("subsidiaries", len(out.Subsidiaries)).
		Msg("organización por defecto asegurada")
	return out, nil
}
