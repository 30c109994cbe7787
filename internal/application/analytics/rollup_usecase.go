// Package analytics contiene el motor de agregados (contrato, filial, empresa),
// el dashboard y la exportación. Todo se recalcula en cada llamada, sin caché.
package analytics

import (
	"context"

	"github.com/jhoicas/holding-tracker/internal/application/dto"
	"github.com/jhoicas/holding-tracker/internal/domain/ledger"
	"github.com/jhoicas/holding-tracker/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// RepositoryProvider da acceso de solo lectura a los repositorios.
type RepositoryProvider interface {
	Repositories() repository.Repositories
}

// RollupUseCase calcula los agregados leyendo por los puertos de persistencia.
type RollupUseCase struct {
	store RepositoryProvider
}

// NewRollupUseCase construye el motor de agregados.
func NewRollupUseCase(store RepositoryProvider) *RollupUseCase {
	return &RollupUseCase{store: store}
}

// ContractAggregate devuelve ingresos, gastos, beneficio y parte de la filial.
// Un contrato inexistente da totales en cero, sin error.
func (uc *RollupUseCase) ContractAggregate(ctx context.Context, contractID int64) (dto.ContractAggregate, error) {
	totals, err := uc.contractTotals(ctx, uc.store.Repositories(), contractID)
	if err != nil {
		return dto.ContractAggregate{}, err
	}
	return dto.ContractAggregate{
		Revenue:         totals.Revenue,
		Expenses:        totals.Expenses,
		Profit:          totals.Profit,
		SubsidiaryShare: totals.SubsidiaryShare,
	}, nil
}

// SubsidiaryAggregate suma los contratos de la filial usando el beneficio bruto de cada uno.
func (uc *RollupUseCase) SubsidiaryAggregate(ctx context.Context, subsidiaryID int64) (dto.SubsidiaryAggregate, error) {
	repos := uc.store.Repositories()
	sub, err := repos.Subsidiaries.GetByID(ctx, subsidiaryID)
	if err != nil {
		return dto.SubsidiaryAggregate{}, err
	}
	totals, count, err := uc.subsidiaryTotals(ctx, repos, subsidiaryID)
	if err != nil {
		return dto.SubsidiaryAggregate{}, err
	}
	out := dto.SubsidiaryAggregate{
		SubsidiaryID:  subsidiaryID,
		Revenue:       totals.Revenue,
		Expenses:      totals.Expenses,
		Profit:        totals.Profit,
		ContractCount: count,
	}
	if sub != nil {
		out.Name = sub.Name
	}
	return out, nil
}

// CompanyAggregate suma los agregados de todas las filiales de la empresa.
func (uc *RollupUseCase) CompanyAggregate(ctx context.Context, companyID int64) (dto.CompanyAggregate, error) {
	agg, _, err := uc.companyBreakdown(ctx, uc.store.Repositories(), companyID)
	return agg, err
}

// companyBreakdown devuelve el agregado de la empresa y el de cada una de sus filiales.
func (uc *RollupUseCase) companyBreakdown(ctx context.Context, repos repository.Repositories, companyID int64) (dto.CompanyAggregate, []dto.SubsidiaryAggregate, error) {
	company, err := repos.Companies.GetByID(ctx, companyID)
	if err != nil {
		return dto.CompanyAggregate{}, nil, err
	}
	subs, err := repos.Subsidiaries.ListByCompany(ctx, companyID)
	if err != nil {
		return dto.CompanyAggregate{}, nil, err
	}

	var total ledger.Totals
	breakdown := make([]dto.SubsidiaryAggregate, 0, len(subs))
	for _, s := range subs {
		t, count, err := uc.subsidiaryTotals(ctx, repos, s.ID)
		if err != nil {
			return dto.CompanyAggregate{}, nil, err
		}
		total = total.Add(t)
		breakdown = append(breakdown, dto.SubsidiaryAggregate{
			SubsidiaryID:  s.ID,
			Name:          s.Name,
			Revenue:       t.Revenue,
			Expenses:      t.Expenses,
			Profit:        t.Profit,
			ContractCount: count,
		})
	}

	out := dto.CompanyAggregate{
		CompanyID:       companyID,
		Revenue:         total.Revenue,
		Expenses:        total.Expenses,
		Profit:          total.Profit,
		SubsidiaryCount: len(subs),
	}
	if company != nil {
		out.Name = company.Name
		out.IsParent = company.IsParent
	}
	return out, breakdown, nil
}

func (uc *RollupUseCase) subsidiaryTotals(ctx context.Context, repos repository.Repositories, subsidiaryID int64) (ledger.Totals, int, error) {
	contracts, err := repos.Contracts.ListBySubsidiary(ctx, subsidiaryID)
	if err != nil {
		return ledger.Totals{}, 0, err
	}
	var total ledger.Totals
	for _, c := range contracts {
		ct, err := uc.contractTotals(ctx, repos, c.ID)
		if err != nil {
			return ledger.Totals{}, 0, err
		}
		total = total.AddContract(ct)
	}
	return total, len(contracts), nil
}

func (uc *RollupUseCase) contractTotals(ctx context.Context, repos repository.Repositories, contractID int64) (ledger.ContractTotals, error) {
	contract, err := repos.Contracts.GetByID(ctx, contractID)
	if err != nil {
		return ledger.ContractTotals{}, err
	}
	if contract == nil {
		return ledger.ComputeContract(decimal.Zero, decimal.Zero, ledger.DefaultPercentToSubsidiary), nil
	}
	revenue, err := repos.Revenues.SumByContract(ctx, contractID)
	if err != nil {
		return ledger.ContractTotals{}, err
	}
	expenses, err := repos.Expenses.SumByContract(ctx, contractID)
	if err != nil {
		return ledger.ContractTotals{}, err
	}
	return ledger.ComputeContract(revenue, expenses, contract.PercentToSubsidiary), nil
}
