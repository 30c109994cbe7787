package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/holding-tracker/internal/application/dto"
	"github.com/jhoicas/holding-tracker/internal/domain/entity"
	"github.com/jhoicas/holding-tracker/internal/domain/ledger"
	"github.com/jhoicas/holding-tracker/internal/domain/repository"
	"github.com/jhoicas/holding-tracker/pkg/logger"
	"github.com/shopspring/decimal"
)

// LedgerUseCase registra ingresos, gastos y participaciones de un contrato.
type LedgerUseCase struct {
	store repository.Store
	log   *logger.Logger
	now   func() time.Time
}

// NewLedgerUseCase construye el caso de uso. La fecha por defecto es el día actual.
func NewLedgerUseCase(store repository.Store, log *logger.Logger) *LedgerUseCase {
	return &LedgerUseCase{store: store, log: log, now: time.Now}
}

// RecordRevenue registra un ingreso. Contrato inexistente → domain.ErrNotFound y no se inserta nada.
func (uc *LedgerUseCase) RecordRevenue(ctx context.Context, contractID int64, in dto.RecordLedgerEntryRequest) (*dto.LedgerEntryResponse, error) {
	amount, date, err := uc.validateEntry(in)
	if err != nil {
		return nil, err
	}
	rev := &entity.Revenue{ContractID: contractID, Amount: amount, Date: date, Description: strings.TrimSpace(in.Description)}
	err = uc.store.Run(ctx, func(repos repository.Repositories) error {
		if err := requireContract(ctx, repos, contractID); err != nil {
			return err
		}
		return repos.Revenues.Create(ctx, rev)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int64("contract_id", contractID).Int64("revenue_id", rev.ID).Str("amount", money(rev.Amount)).Msg("ingreso registrado")
	out := toRevenueResponse(rev)
	return &out, nil
}

// RecordExpense registra un gasto. Contrato inexistente → domain.ErrNotFound y no se inserta nada.
func (uc *LedgerUseCase) RecordExpense(ctx context.Context, contractID int64, in dto.RecordLedgerEntryRequest) (*dto.LedgerEntryResponse, error) {
	amount, date, err := uc.validateEntry(in)
	if err != nil {
		return nil, err
	}
	exp := &entity.Expense{ContractID: contractID, Amount: amount, Date: date, Description: strings.TrimSpace(in.Description)}
	err = uc.store.Run(ctx, func(repos repository.Repositories) error {
		if err := requireContract(ctx, repos, contractID); err != nil {
			return err
		}
		return repos.Expenses.Create(ctx, exp)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int64("contract_id", contractID).Int64("expense_id", exp.ID).Str("amount", money(exp.Amount)).Msg("gasto registrado")
	out := toExpenseResponse(exp)
	return &out, nil
}

// AwardEquity registra una participación otorgada. Requiere beneficiario y porcentaje en [0,100].
func (uc *LedgerUseCase) AwardEquity(ctx context.Context, contractID int64, in dto.AwardEquityRequest) (*dto.EquityAwardResponse, error) {
	recipient := strings.TrimSpace(in.Recipient)
	if recipient == "" {
		return nil, invalid("el beneficiario es obligatorio")
	}
	if !ledger.ValidPercent(in.Percent) {
		return nil, invalid("el porcentaje debe estar entre 0 y 100")
	}
	date, err := parseDateOrToday("date", in.Date, uc.now())
	if err != nil {
		return nil, err
	}
	award := &entity.EquityAward{
		ContractID: contractID,
		Recipient:  recipient,
		Percent:    ledger.RoundMoney(in.Percent),
		Date:       date,
		Notes:      strings.TrimSpace(in.Notes),
	}
	err = uc.store.Run(ctx, func(repos repository.Repositories) error {
		if err := requireContract(ctx, repos, contractID); err != nil {
			return err
		}
		return repos.EquityAwards.Create(ctx, award)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int64("contract_id", contractID).Int64("equity_award_id", award.ID).Str("recipient", recipient).Msg("participación otorgada")
	out := toEquityAwardResponse(award)
	return &out, nil
}

func (uc *LedgerUseCase) validateEntry(in dto.RecordLedgerEntryRequest) (amount decimal.Decimal, date time.Time, err error) {
	if !ledger.ValidAmount(in.Amount) {
		return amount, date, invalid("el monto no puede ser negativo")
	}
	date, err = parseDateOrToday("date", in.Date, uc.now())
	if err != nil {
		return amount, date, err
	}
	return ledger.RoundMoney(in.Amount), date, nil
}

func requireContract(ctx context.Context, repos repository.Repositories, contractID int64) error {
	contract, err := repos.Contracts.GetByID(ctx, contractID)
	if err != nil {
		return err
	}
	if contract == nil {
		return notFound("contrato", contractID)
	}
	return nil
}
