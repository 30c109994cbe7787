package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/holding-tracker/internal/application/dto"
	"github.com/jhoicas/holding-tracker/internal/domain/entity"
	"github.com/jhoicas/holding-tracker/internal/domain/repository"
	"github.com/jhoicas/holding-tracker/pkg/logger"
)

// ClientUseCase casos de uso para clientes.
type ClientUseCase struct {
	store repository.Store
	log   *logger.Logger
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(store repository.Store, log *logger.Logger) *ClientUseCase {
	return &ClientUseCase{store: store, log: log}
}

// Create crea un cliente. Contacto y email son opcionales.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, invalid("el nombre del cliente es obligatorio")
	}
	client := &entity.Client{
		Name:    name,
		Contact: strings.TrimSpace(in.Contact),
		Email:   strings.TrimSpace(in.Email),
	}
	err := uc.store.Run(ctx, func(repos repository.Repositories) error {
		existing, err := repos.Clients.GetByName(ctx, name)
		if err != nil {
			return err
		}
		if existing != nil {
			return duplicate("cliente", name)
		}
		return repos.Clients.Create(ctx, client)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int64("client_id", client.ID).Str("name", client.Name).Msg("cliente creado")
	out := toClientResponse(client)
	return &out, nil
}

// GetByID obtiene un cliente por ID.
func (uc *ClientUseCase) GetByID(ctx context.Context, id int64) (*dto.ClientResponse, error) {
	client, err := uc.store.Repositories().Clients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, notFound("cliente", id)
	}
	out := toClientResponse(client)
	return &out, nil
}

// List lista todos los clientes.
func (uc *ClientUseCase) List(ctx context.Context) ([]dto.ClientResponse, error) {
	list, err := uc.store.Repositories().Clients.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		items = append(items, toClientResponse(c))
	}
	return items, nil
}
