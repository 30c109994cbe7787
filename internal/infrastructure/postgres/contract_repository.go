package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/holding-tracker/internal/domain"
	"github.com/jhoicas/holding-tracker/internal/domain/entity"
	"github.com/jhoicas/holding-tracker/internal/domain/repository"
)

var _ repository.ContractRepository = (*ContractRepo)(nil)

// ContractRepo implementación de ContractRepository (usable con pool o tx).
type ContractRepo struct {
	q Querier
}

// NewContractRepository construye el adaptador. Pasar pool o tx (Querier).
func NewContractRepository(q Querier) *ContractRepo {
	return &ContractRepo{q: q}
}

const contractColumns = `id, title, subsidiary_id, client_id, signed_date, start_date, end_date,
	contract_value, retainer, percent_to_subsidiary, status, notes, created_at`

// Create persiste un nuevo contrato.
func (r *ContractRepo) Create(ctx context.Context, c *entity.Contract) error {
	query := `
		INSERT INTO contracts (title, subsidiary_id, client_id, signed_date, start_date, end_date,
			contract_value, retainer, percent_to_subsidiary, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query,
		c.Title, c.SubsidiaryID, c.ClientID, c.SignedDate, c.StartDate, c.EndDate,
		c.ContractValue, c.Retainer, c.PercentToSubsidiary, c.Status, c.Notes,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return mapWriteError(err, "insert contract")
	}
	return nil
}

// GetByID obtiene un contrato por ID.
func (r *ContractRepo) GetByID(ctx context.Context, id int64) (*entity.Contract, error) {
	var c entity.Contract
	err := r.q.QueryRow(ctx, `SELECT `+contractColumns+` FROM contracts WHERE id = $1`, id).Scan(
		&c.ID, &c.Title, &c.SubsidiaryID, &c.ClientID, &c.SignedDate, &c.StartDate, &c.EndDate,
		&c.ContractValue, &c.Retainer, &c.PercentToSubsidiary, &c.Status, &c.Notes, &c.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contract: %w", err)
	}
	return &c, nil
}

// UpdateStatus cambia el estado del contrato. Devuelve domain.ErrNotFound si no existe.
func (r *ContractRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	tag, err := r.q.Exec(ctx, `UPDATE contracts SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return mapWriteError(err, "update contract status")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: contrato %d", domain.ErrNotFound, id)
	}
	return nil
}

// List devuelve todos los contratos por ID ascendente.
func (r *ContractRepo) List(ctx context.Context) ([]*entity.Contract, error) {
	return r.list(ctx, `SELECT `+contractColumns+` FROM contracts ORDER BY id`)
}

// ListBySubsidiary devuelve los contratos de una filial.
func (r *ContractRepo) ListBySubsidiary(ctx context.Context, subsidiaryID int64) ([]*entity.Contract, error) {
	return r.list(ctx, `SELECT `+contractColumns+` FROM contracts WHERE subsidiary_id = $1 ORDER BY id`, subsidiaryID)
}

func (r *ContractRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Contract, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	defer rows.Close()

	list := []*entity.Contract{}
	for rows.Next() {
		var c entity.Contract
		if err := rows.Scan(
			&c.ID, &c.Title, &c.SubsidiaryID, &c.ClientID, &c.SignedDate, &c.StartDate, &c.EndDate,
			&c.ContractValue, &c.Retainer, &c.PercentToSubsidiary, &c.Status, &c.Notes, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan contract: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
