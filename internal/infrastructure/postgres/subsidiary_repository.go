package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/holding-tracker/internal/domain/entity"
	"github.com/jhoicas/holding-tracker/internal/domain/repository"
)

var _ repository.SubsidiaryRepository = (*SubsidiaryRepo)(nil)

// SubsidiaryRepo implementación de SubsidiaryRepository (usable con pool o tx).
type SubsidiaryRepo struct {
	q Querier
}

// NewSubsidiaryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSubsidiaryRepository(q Querier) *SubsidiaryRepo {
	return &SubsidiaryRepo{q: q}
}

const subsidiaryColumns = `id, name, company_id, created_at`

// Create persiste una nueva filial.
func (r *SubsidiaryRepo) Create(ctx context.Context, sub *entity.Subsidiary) error {
	query := `
		INSERT INTO subsidiaries (name, company_id)
		VALUES ($1, $2)
		RETURNING id, created_at`
	if err := r.q.QueryRow(ctx, query, sub.Name, sub.CompanyID).Scan(&sub.ID, &sub.CreatedAt); err != nil {
		return mapWriteError(err, "insert subsidiary")
	}
	return nil
}

// EnsureByName inserta la filial si el nombre no existe y devuelve la fila vigente.
func (r *SubsidiaryRepo) EnsureByName(ctx context.Context, name string, companyID int64) (*entity.Subsidiary, bool, error) {
	query := `
		WITH ins AS (
			INSERT INTO subsidiaries (name, company_id) VALUES ($1, $2)
			ON CONFLICT (name) DO NOTHING
			RETURNING ` + subsidiaryColumns + `
		)
		SELECT ` + subsidiaryColumns + `, TRUE  FROM ins
		UNION ALL
		SELECT ` + subsidiaryColumns + `, FALSE FROM subsidiaries WHERE name = $1
		LIMIT 1`
	var (
		s       entity.Subsidiary
		created bool
	)
	err := r.q.QueryRow(ctx, query, name, companyID).Scan(&s.ID, &s.Name, &s.CompanyID, &s.CreatedAt, &created)
	if err != nil {
		return nil, false, mapWriteError(err, "ensure subsidiary")
	}
	return &s, created, nil
}

// GetByID obtiene una filial por ID.
func (r *SubsidiaryRepo) GetByID(ctx context.Context, id int64) (*entity.Subsidiary, error) {
	return r.getOne(ctx, `SELECT `+subsidiaryColumns+` FROM subsidiaries WHERE id = $1`, id)
}

// GetByName obtiene una filial por nombre exacto.
func (r *SubsidiaryRepo) GetByName(ctx context.Context, name string) (*entity.Subsidiary, error) {
	return r.getOne(ctx, `SELECT `+subsidiaryColumns+` FROM subsidiaries WHERE name = $1`, name)
}

// List lista todas las filiales.
func (r *SubsidiaryRepo) List(ctx context.Context) ([]*entity.Subsidiary, error) {
	return r.list(ctx, `SELECT `+subsidiaryColumns+` FROM subsidiaries ORDER BY id`)
}

// ListByCompany lista las filiales de una empresa.
func (r *SubsidiaryRepo) ListByCompany(ctx context.Context, companyID int64) ([]*entity.Subsidiary, error) {
	return r.list(ctx, `SELECT `+subsidiaryColumns+` FROM subsidiaries WHERE company_id = $1 ORDER BY id`, companyID)
}

func (r *SubsidiaryRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Subsidiary, error) {
	var s entity.Subsidiary
	err := r.q.QueryRow(ctx, query, args...).Scan(&s.ID, &s.Name, &s.CompanyID, &s.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subsidiary: %w", err)
	}
	return &s, nil
}

func (r *SubsidiaryRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Subsidiary, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list subsidiaries: %w", err)
	}
	defer rows.Close()

	list := []*entity.Subsidiary{}
	for rows.Next() {
		var s entity.Subsidiary
		if err := rows.Scan(&s.ID, &s.Name, &s.CompanyID, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan subsidiary: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
