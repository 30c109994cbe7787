package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/holding-tracker/internal/domain"
	"github.com/jhoicas/holding-tracker/internal/domain/entity"
	"github.com/jhoicas/holding-tracker/internal/domain/repository"
)

var (
	_ repository.CompanyRepository    = (*CompanyRepo)(nil)
	_ repository.SubsidiaryRepository = (*SubsidiaryRepo)(nil)
	_ repository.ClientRepository     = (*ClientRepo)(nil)
)

// CompanyRepo implementación en memoria de CompanyRepository.
type CompanyRepo struct{ v view }

func (r *CompanyRepo) Create(_ context.Context, company *entity.Company) error {
	return r.v.write(func(t *tables) error {
		return t.insertCompany(company)
	})
}

func (r *CompanyRepo) EnsureByName(_ context.Context, name string, isParent bool) (*entity.Company, bool, error) {
	var (
		out     *entity.Company
		created bool
	)
	err := r.v.write(func(t *tables) error {
		for i := range t.companies {
			if t.companies[i].Name == name {
				if isParent {
					t.companies[i].IsParent = true
				}
				c := t.companies[i]
				out = &c
				return nil
			}
		}
		c := &entity.Company{Name: name, IsParent: isParent}
		if err := t.insertCompany(c); err != nil {
			return err
		}
		out, created = c, true
		return nil
	})
	return out, created, err
}

func (r *CompanyRepo) GetByID(_ context.Context, id int64) (*entity.Company, error) {
	var out *entity.Company
	r.v.read(func(t *tables) {
		if c := t.companyByID(id); c != nil {
			cp := *c
			out = &cp
		}
	})
	return out, nil
}

func (r *CompanyRepo) GetByName(_ context.Context, name string) (*entity.Company, error) {
	var out *entity.Company
	r.v.read(func(t *tables) {
		for i := range t.companies {
			if t.companies[i].Name == name {
				c := t.companies[i]
				out = &c
				return
			}
		}
	})
	return out, nil
}

func (r *CompanyRepo) FirstParent(_ context.Context) (*entity.Company, error) {
	var out *entity.Company
	r.v.read(func(t *tables) {
		for i := range t.companies {
			if t.companies[i].IsParent {
				c := t.companies[i]
				out = &c
				return
			}
		}
	})
	return out, nil
}

func (r *CompanyRepo) List(_ context.Context) ([]*entity.Company, error) {
	var out []*entity.Company
	r.v.read(func(t *tables) {
		out = make([]*entity.Company, 0, len(t.companies))
		for i := range t.companies {
			c := t.companies[i]
			out = append(out, &c)
		}
	})
	return out, nil
}

func (t *tables) insertCompany(c *entity.Company) error {
	for i := range t.companies {
		if t.companies[i].Name == c.Name {
			return fmt.Errorf("%w: empresa %q", domain.ErrDuplicate, c.Name)
		}
	}
	t.seqCompany++
	c.ID = t.seqCompany
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	t.companies = append(t.companies, *c)
	return nil
}

// SubsidiaryRepo implementación en memoria de SubsidiaryRepository.
type SubsidiaryRepo struct{ v view }

func (r *SubsidiaryRepo) Create(_ context.Context, sub *entity.Subsidiary) error {
	return r.v.write(func(t *tables) error {
		return t.insertSubsidiary(sub)
	})
}

func (r *SubsidiaryRepo) EnsureByName(_ context.Context, name string, companyID int64) (*entity.Subsidiary, bool, error) {
	var (
		out     *entity.Subsidiary
		created bool
	)
	err := r.v.write(func(t *tables) error {
		for i := range t.subsidiaries {
			if t.subsidiaries[i].Name == name {
				s := t.subsidiaries[i]
				out = &s
				return nil
			}
		}
		s := &entity.Subsidiary{Name: name, CompanyID: companyID}
		if err := t.insertSubsidiary(s); err != nil {
			return err
		}
		out, created = s, true
		return nil
	})
	return out, created, err
}

func (r *SubsidiaryRepo) GetByID(_ context.Context, id int64) (*entity.Subsidiary, error) {
	var out *entity.Subsidiary
	r.v.read(func(t *tables) {
		if s := t.subsidiaryByID(id); s != nil {
			cp := *s
			out = &cp
		}
	})
	return out, nil
}

func (r *SubsidiaryRepo) GetByName(_ context.Context, name string) (*entity.Subsidiary, error) {
	var out *entity.Subsidiary
	r.v.read(func(t *tables) {
		for i := range t.subsidiaries {
			if t.subsidiaries[i].Name == name {
				s := t.subsidiaries[i]
				out = &s
				return
			}
		}
	})
	return out, nil
}

func (r *SubsidiaryRepo) List(_ context.Context) ([]*entity.Subsidiary, error) {
	return r.filter(func(*entity.Subsidiary) bool { return true }), nil
}

func (r *SubsidiaryRepo) ListByCompany(_ context.Context, companyID int64) ([]*entity.Subsidiary, error) {
	return r.filter(func(s *entity.Subsidiary) bool { return s.CompanyID == companyID }), nil
}

func (r *SubsidiaryRepo) filter(keep func(*entity.Subsidiary) bool) []*entity.Subsidiary {
	out := []*entity.Subsidiary{}
	r.v.read(func(t *tables) {
		for i := range t.subsidiaries {
			s := t.subsidiaries[i]
			if keep(&s) {
				out = append(out, &s)
			}
		}
	})
	return out
}

func (t *tables) insertSubsidiary(s *entity.Subsidiary) error {
	if t.companyByID(s.CompanyID) == nil {
		return fmt.Errorf("%w: subsidiaries.company_id=%d", domain.ErrConstraint, s.CompanyID)
	}
	for i := range t.subsidiaries {
		if t.subsidiaries[i].Name == s.Name {
			return fmt.Errorf("%w: filial %q", domain.ErrDuplicate, s.Name)
		}
	}
	t.seqSubsidiary++
	s.ID = t.seqSubsidiary
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	t.subsidiaries = append(t.subsidiaries, *s)
	return nil
}

// ClientRepo implementación en memoria de ClientRepository.
type ClientRepo struct{ v view }

func (r *ClientRepo) Create(_ context.Context, client *entity.Client) error {
	return r.v.write(func(t *tables) error {
		for i := range t.clients {
			if t.clients[i].Name == client.Name {
				return fmt.Errorf("%w: cliente %q", domain.ErrDuplicate, client.Name)
			}
		}
		t.seqClient++
		client.ID = t.seqClient
		if client.CreatedAt.IsZero() {
			client.CreatedAt = time.Now().UTC()
		}
		t.clients = append(t.clients, *client)
		return nil
	})
}

func (r *ClientRepo) GetByID(_ context.Context, id int64) (*entity.Client, error) {
	var out *entity.Client
	r.v.read(func(t *tables) {
		if c := t.clientByID(id); c != nil {
			cp := *c
			out = &cp
		}
	})
	return out, nil
}

func (r *ClientRepo) GetByName(_ context.Context, name string) (*entity.Client, error) {
	var out *entity.Client
	r.v.read(func(t *tables) {
		for i := range t.clients {
			if t.clients[i].Name == name {
				c := t.clients[i]
				out = &c
				return
			}
		}
	})
	return out, nil
}

func (r *ClientRepo) List(_ context.Context) ([]*entity.Client, error) {
	var out []*entity.Client
	r.v.read(func(t *tables) {
		out = make([]*entity.Client, 0, len(t.clients))
		for i := range t.clients {
			c := t.clients[i]
			out = append(out, &c)
		}
	})
	return out, nil
}
