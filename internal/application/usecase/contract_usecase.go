package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/holding-tracker/internal/application/dto"
	"github.com/jhoicas/holding-tracker/internal/domain/entity"
	"github.com/jhoicas/holding-tracker/internal/domain/ledger"
	"github.com/jhoicas/holding-tracker/internal/domain/repository"
	"github.com/jhoicas/holding-tracker/pkg/logger"
)

// ContractAggregator calcula los totales de un contrato. Lo implementa analytics.RollupUseCase.
type ContractAggregator interface {
	ContractAggregate(ctx context.Context, contractID int64) (dto.ContractAggregate, error)
}

// ContractUseCase casos de uso para contratos.
type ContractUseCase struct {
	store      repository.Store
	aggregator ContractAggregator
	log        *logger.Logger
}

// NewContractUseCase construye el caso de uso.
func NewContractUseCase(store repository.Store, aggregator ContractAggregator, log *logger.Logger) *ContractUseCase {
	return &ContractUseCase{store: store, aggregator: aggregator, log: log}
}

// Create valida y crea un contrato.
// Filial o cliente ausentes o inexistentes, montos negativos, porcentaje fuera de [0,100],
// estado desconocido o fin anterior al inicio → domain.ErrInvalidInput.
func (uc *ContractUseCase) Create(ctx context.Context, in dto.CreateContractRequest) (*dto.ContractResponse, error) {
	contract, err := buildContract(in)
	if err != nil {
		return nil, err
	}
	err = uc.store.Run(ctx, func(repos repository.Repositories) error {
		sub, err := repos.Subsidiaries.GetByID(ctx, contract.SubsidiaryID)
		if err != nil {
			return err
		}
		if sub == nil {
			return invalid("la filial %d no existe", contract.SubsidiaryID)
		}
		client, err := repos.Clients.GetByID(ctx, contract.ClientID)
		if err != nil {
			return err
		}
		if client == nil {
			return invalid("el cliente %d no existe", contract.ClientID)
		}
		return repos.Contracts.Create(ctx, contract)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().
		Int64("contract_id", contract.ID).
		Int64("subsidiary_id", contract.SubsidiaryID).
		Int64("client_id", contract.ClientID).
		Str("status", contract.Status).
		Msg("contrato creado")
	out := toContractResponse(contract)
	return &out, nil
}

func buildContract(in dto.CreateContractRequest) (*entity.Contract, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, invalid("el título del contrato es obligatorio")
	}
	if in.SubsidiaryID <= 0 {
		return nil, invalid("la filial es obligatoria")
	}
	if in.ClientID <= 0 {
		return nil, invalid("el cliente es obligatorio")
	}
	if !ledger.ValidAmount(in.ContractValue) {
		return nil, invalid("el valor del contrato no puede ser negativo")
	}
	if !ledger.ValidAmount(in.Retainer) {
		return nil, invalid("el retainer no puede ser negativo")
	}
	percent := ledger.DefaultPercentToSubsidiary
	if in.PercentToSubsidiary != nil {
		percent = *in.PercentToSubsidiary
	}
	if !ledger.ValidPercent(percent) {
		return nil, invalid("el porcentaje para la filial debe estar entre 0 y 100")
	}
	status := strings.TrimSpace(in.Status)
	if status == "" {
		status = entity.ContractStatusProspect
	}
	if !entity.IsValidContractStatus(status) {
		return nil, invalid("estado de contrato desconocido %q", status)
	}
	signed, err := parseOptionalDate("signed_date", in.SignedDate)
	if err != nil {
		return nil, err
	}
	start, err := parseOptionalDate("start_date", in.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseOptionalDate("end_date", in.EndDate)
	if err != nil {
		return nil, err
	}
	if start != nil && end != nil && end.Before(*start) {
		return nil, invalid("end_date no puede ser anterior a start_date")
	}
	return &entity.Contract{
		Title:               title,
		SubsidiaryID:        in.SubsidiaryID,
		ClientID:            in.ClientID,
		SignedDate:          signed,
		StartDate:           start,
		EndDate:             end,
		ContractValue:       ledger.RoundMoney(in.ContractValue),
		Retainer:            ledger.RoundMoney(in.Retainer),
		PercentToSubsidiary: ledger.RoundMoney(percent),
		Status:              status,
		Notes:               strings.TrimSpace(in.Notes),
	}, nil
}

// UpdateStatus cambia el estado de un contrato. Cualquier estado puede seguir a cualquier otro.
func (uc *ContractUseCase) UpdateStatus(ctx context.Context, id int64, in dto.UpdateContractStatusRequest) (*dto.ContractResponse, error) {
	status := strings.TrimSpace(in.Status)
	if !entity.IsValidContractStatus(status) {
		return nil, invalid("estado de contrato desconocido %q", status)
	}
	var contract *entity.Contract
	err := uc.store.Run(ctx, func(repos repository.Repositories) error {
		if err := repos.Contracts.UpdateStatus(ctx, id, status); err != nil {
			return err
		}
		var err error
		contract, err = repos.Contracts.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int64("contract_id", id).Str("status", status).Msg("estado de contrato actualizado")
	out := toContractResponse(contract)
	return &out, nil
}

// GetByID obtiene un contrato por ID.
func (uc *ContractUseCase) GetByID(ctx context.Context, id int64) (*dto.ContractResponse, error) {
	contract, err := uc.store.Repositories().Contracts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, notFound("contrato", id)
	}
	out := toContractResponse(contract)
	return &out, nil
}

// List devuelve todos los contratos, más recientes primero, con nombres y totales.
func (uc *ContractUseCase) List(ctx context.Context) ([]dto.ContractListItem, error) {
	repos := uc.store.Repositories()
	contracts, err := repos.Contracts.List(ctx)
	if err != nil {
		return nil, err
	}
	subNames, clientNames, err := nameIndexes(ctx, repos)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ContractListItem, 0, len(contracts))
	for i := len(contracts) - 1; i >= 0; i-- {
		c := contracts[i]
		agg, err := uc.aggregator.ContractAggregate(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, dto.ContractListItem{
			ContractResponse: toContractResponse(c),
			SubsidiaryName:   subNames[c.SubsidiaryID],
			ClientName:       clientNames[c.ClientID],
			Aggregate:        agg,
		})
	}
	return items, nil
}

// Detail devuelve el contrato con su filial, cliente, totales y movimientos.
func (uc *ContractUseCase) Detail(ctx context.Context, id int64) (*dto.ContractDetailResponse, error) {
	repos := uc.store.Repositories()
	contract, err := repos.Contracts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, notFound("contrato", id)
	}

	out := &dto.ContractDetailResponse{Contract: toContractResponse(contract)}
	if sub, err := repos.Subsidiaries.GetByID(ctx, contract.SubsidiaryID); err != nil {
		return nil, err
	} else if sub != nil {
		var companyName string
		if company, err := repos.Companies.GetByID(ctx, sub.CompanyID); err != nil {
			return nil, err
		} else if company != nil {
			companyName = company.Name
		}
		out.Subsidiary = toSubsidiaryResponse(sub, companyName)
	}
	if client, err := repos.Clients.GetByID(ctx, contract.ClientID); err != nil {
		return nil, err
	} else if client != nil {
		out.Client = toClientResponse(client)
	}

	if out.Aggregate, err = uc.aggregator.ContractAggregate(ctx, id); err != nil {
		return nil, err
	}

	revenues, err := repos.Revenues.ListByContract(ctx, id)
	if err != nil {
		return nil, err
	}
	out.Revenues = make([]dto.LedgerEntryResponse, 0, len(revenues))
	for _, r := range revenues {
		out.Revenues = append(out.Revenues, toRevenueResponse(r))
	}

	expenses, err := repos.Expenses.ListByContract(ctx, id)
	if err != nil {
		return nil, err
	}
	out.Expenses = make([]dto.LedgerEntryResponse, 0, len(expenses))
	for _, e := range expenses {
		out.Expenses = append(out.Expenses, toExpenseResponse(e))
	}

	awards, err := repos.EquityAwards.ListByContract(ctx, id)
	if err != nil {
		return nil, err
	}
	out.EquityAwards = make([]dto.EquityAwardResponse, 0, len(awards))
	for _, a := range awards {
		out.EquityAwards = append(out.EquityAwards, toEquityAwardResponse(a))
	}
	return out, nil
}

// nameIndexes devuelve nombre por ID de filiales y de clientes.
func nameIndexes(ctx context.Context, repos repository.Repositories) (map[int64]string, map[int64]string, error) {
	subs, err := repos.Subsidiaries.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	clients, err := repos.Clients.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	subNames := make(map[int64]string, len(subs))
	for _, s := range subs {
		subNames[s.ID] = s.Name
	}
	clientNames := make(map[int64]string, len(clients))
	for _, c := range clients {
		clientNames[c.ID] = c.Name
	}
	return subNames, clientNames, nil
}
