package repository

import (
	"context"

	"github.com/jhoicas/holding-tracker/internal/domain/entity"
)

// ClientRepository define el puerto de persistencia para Client.
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id int64) (*entity.Client, error)
	GetByName(ctx context.Context, name string) (*entity.Client, error)
	List(ctx context.Context) ([]*entity.Client, error)
}
