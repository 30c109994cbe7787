package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/holding-tracker/internal/domain/entity"
	"github.com/jhoicas/holding-tracker/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL (usable con pool o tx).
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

const companyColumns = `id, name, is_parent, created_at`

// Create persiste una nueva empresa y asigna ID.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	query := `
		INSERT INTO companies (name, is_parent)
		VALUES ($1, $2)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query, company.Name, company.IsParent).Scan(&company.ID, &company.CreatedAt)
	if err != nil {
		return mapWriteError(err, "insert company")
	}
	return nil
}

// EnsureByName inserta la empresa si el nombre no existe y devuelve la fila vigente
// en una sola sentencia. Con isParent, una fila existente no matriz se promueve.
// xmax = 0 solo en la fila recién insertada.
func (r *CompanyRepo) EnsureByName(ctx context.Context, name string, isParent bool) (*entity.Company, bool, error) {
	query := `
		INSERT INTO companies (name, is_parent) VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET is_parent = companies.is_parent OR EXCLUDED.is_parent
		RETURNING ` + companyColumns + `, (xmax = 0)`
	var (
		c       entity.Company
		created bool
	)
	err := r.q.QueryRow(ctx, query, name, isParent).Scan(&c.ID, &c.Name, &c.IsParent, &c.CreatedAt, &created)
	if err != nil {
		return nil, false, mapWriteError(err, "ensure company")
	}
	return &c, created, nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(ctx context.Context, id int64) (*entity.Company, error) {
	return r.getOne(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id)
}

// GetByName obtiene una empresa por nombre exacto.
func (r *CompanyRepo) GetByName(ctx context.Context, name string) (*entity.Company, error) {
	return r.getOne(ctx, `SELECT `+companyColumns+` FROM companies WHERE name = $1`, name)
}

// FirstParent devuelve la primera empresa matriz por ID.
func (r *CompanyRepo) FirstParent(ctx context.Context) (*entity.Company, error) {
	return r.getOne(ctx, `SELECT `+companyColumns+` FROM companies WHERE is_parent ORDER BY id LIMIT 1`)
}

// List devuelve todas las empresas.
func (r *CompanyRepo) List(ctx context.Context) ([]*entity.Company, error) {
	rows, err := r.q.Query(ctx, `SELECT `+companyColumns+` FROM companies ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	list := []*entity.Company{}
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.IsParent, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

func (r *CompanyRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Company, error) {
	var c entity.Company
	err := r.q.QueryRow(ctx, query, args...).Scan(&c.ID, &c.Name, &c.IsParent, &c.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}
