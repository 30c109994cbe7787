package analytics

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/jhoicas/holding-tracker/internal/domain/entity"
	"github.com/jhoicas/holding-tracker/internal/domain/ledger"
)

// ContractsCSVFilename nombre sugerido para la descarga.
const ContractsCSVFilename = "contracts_export.csv"

// ContractsCSVHeader cabecera obligatoria del export de contratos.
var ContractsCSVHeader = []string{
	"contract_id", "title", "subsidiary", "client", "status",
	"contract_value", "retainer", "signed_date", "revenue", "expenses", "profit",
}

// ExportUseCase exporta los contratos con sus totales.
type ExportUseCase struct {
	store  RepositoryProvider
	rollup *RollupUseCase
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(store RepositoryProvider, rollup *RollupUseCase) *ExportUseCase {
	return &ExportUseCase{store: store, rollup: rollup}
}

// ContractsCSV genera el CSV (UTF-8): cabecera y una fila por contrato en orden de ID.
// Montos con 2 decimales; fechas ISO o vacías. Sin contratos solo se escribe la cabecera.
func (uc *ExportUseCase) ContractsCSV(ctx context.Context) ([]byte, error) {
	repos := uc.store.Repositories()
	contracts, err := repos.Contracts.List(ctx)
	if err != nil {
		return nil, err
	}
	subs, err := repos.Subsidiaries.List(ctx)
	if err != nil {
		return nil, err
	}
	clients, err := repos.Clients.List(ctx)
	if err != nil {
		return nil, err
	}
	subNames := make(map[int64]string, len(subs))
	for _, s := range subs {
		subNames[s.ID] = s.Name
	}
	clientNames := make(map[int64]string, len(clients))
	for _, c := range clients {
		clientNames[c.ID] = c.Name
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(ContractsCSVHeader); err != nil {
		return nil, fmt.Errorf("export: cabecera: %w", err)
	}
	for _, c := range contracts {
		totals, err := uc.rollup.contractTotals(ctx, repos, c.ID)
		if err != nil {
			return nil, err
		}
		record := []string{
			strconv.FormatInt(c.ID, 10),
			c.Title,
			subNames[c.SubsidiaryID],
			clientNames[c.ClientID],
			c.Status,
			c.ContractValue.StringFixed(ledger.MoneyPlaces),
			c.Retainer.StringFixed(ledger.MoneyPlaces),
			entity.FormatDate(c.SignedDate),
			totals.Revenue.StringFixed(ledger.MoneyPlaces),
			totals.Expenses.StringFixed(ledger.MoneyPlaces),
			totals.Profit.StringFixed(ledger.MoneyPlaces),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("export: contrato %d: %w", c.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	return buf.Bytes(), nil
}
