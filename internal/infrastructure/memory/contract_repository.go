package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/holding-tracker/internal/domain"
	"github.com/jhoicas/holding-tracker/internal/domain/entity"
	"github.com/jhoicas/holding-tracker/internal/domain/repository"
)

var _ repository.ContractRepository = (*ContractRepo)(nil)

// ContractRepo implementación en memoria de ContractRepository.
type ContractRepo struct{ v view }

func (r *ContractRepo) Create(_ context.Context, contract *entity.Contract) error {
	return r.v.write(func(t *tables) error {
		if t.subsidiaryByID(contract.SubsidiaryID) == nil {
			return fmt.Errorf("%w: contracts.subsidiary_id=%d", domain.ErrConstraint, contract.SubsidiaryID)
		}
		if t.clientByID(contract.ClientID) == nil {
			return fmt.Errorf("%w: contracts.client_id=%d", domain.ErrConstraint, contract.ClientID)
		}
		t.seqContract++
		contract.ID = t.seqContract
		if contract.CreatedAt.IsZero() {
			contract.CreatedAt = time.Now().UTC()
		}
		t.contracts = append(t.contracts, *contract)
		return nil
	})
}

func (r *ContractRepo) GetByID(_ context.Context, id int64) (*entity.Contract, error) {
	var out *entity.Contract
	r.v.read(func(t *tables) {
		if c := t.contractByID(id); c != nil {
			cp := *c
			out = &cp
		}
	})
	return out, nil
}

func (r *ContractRepo) UpdateStatus(_ context.Context, id int64, status string) error {
	return r.v.write(func(t *tables) error {
		c := t.contractByID(id)
		if c == nil {
			return domain.ErrNotFound
		}
		c.Status = status
		return nil
	})
}

func (r *ContractRepo) List(_ context.Context) ([]*entity.Contract, error) {
	return r.filter(func(*entity.Contract) bool { return true }), nil
}

func (r *ContractRepo) ListBySubsidiary(_ context.Context, subsidiaryID int64) ([]*entity.Contract, error) {
	return r.filter(func(c *entity.Contract) bool { return c.SubsidiaryID == subsidiaryID }), nil
}

func (r *ContractRepo) filter(keep func(*entity.Contract) bool) []*entity.Contract {
	out := []*entity.Contract{}
	r.v.read(func(t *tables) {
		for i := range t.contracts {
			c := t.contracts[i]
			if keep(&c) {
				out = append(out, &c)
			}
		}
	})
	return out
}
