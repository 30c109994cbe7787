package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/holding-tracker/internal/application/dto"
	"github.com/jhoicas/holding-tracker/internal/domain/entity"
	"github.com/jhoicas/holding-tracker/internal/domain/repository"
)

// ReportRenderer genera la representación PDF del dashboard.
type ReportRenderer interface {
	RenderDashboard(ctx context.Context, report *dto.DashboardResponse, generatedAt time.Time) ([]byte, error)
}

// DashboardUseCase arma las tres vistas del dashboard: tabla por empresa,
// detalle de la matriz y serie de ingresos.
type DashboardUseCase struct {
	store    RepositoryProvider
	rollup   *RollupUseCase
	renderer ReportRenderer
}

// NewDashboardUseCase construye el caso de uso. renderer puede ser nil si no se sirve el PDF.
func NewDashboardUseCase(store RepositoryProvider, rollup *RollupUseCase, renderer ReportRenderer) *DashboardUseCase {
	return &DashboardUseCase{store: store, rollup: rollup, renderer: renderer}
}

// Summary construye el DashboardResponse.
//
// Tres lecturas en paralelo:
//  1. CompanyTable     → Companies
//  2. ParentDrilldown  → Parent (nil si no hay matriz)
//  3. RevenueSeries    → RevenueSeries
func (uc *DashboardUseCase) Summary(ctx context.Context) (*dto.DashboardResponse, error) {
	type tableResult struct {
		rows []dto.CompanyAggregate
		err  error
	}
	type parentResult struct {
		parent *dto.ParentDrilldown
		err    error
	}
	type seriesResult struct {
		points []dto.RevenuePoint
		err    error
	}

	tableCh := make(chan tableResult, 1)
	parentCh := make(chan parentResult, 1)
	seriesCh := make(chan seriesResult, 1)

	go func() {
		rows, err := uc.CompanyTable(ctx)
		tableCh <- tableResult{rows, err}
	}()
	go func() {
		parent, err := uc.ParentDrilldown(ctx)
		parentCh <- parentResult{parent, err}
	}()
	go func() {
		points, err := uc.RevenueSeries(ctx)
		seriesCh <- seriesResult{points, err}
	}()

	table := <-tableCh
	parent := <-parentCh
	series := <-seriesCh

	if table.err != nil {
		return nil, fmt.Errorf("dashboard: tabla de empresas: %w", table.err)
	}
	if parent.err != nil {
		return nil, fmt.Errorf("dashboard: detalle de la matriz: %w", parent.err)
	}
	if series.err != nil {
		return nil, fmt.Errorf("dashboard: serie de ingresos: %w", series.err)
	}

	return &dto.DashboardResponse{
		Companies:     table.rows,
		Parent:        parent.parent,
		RevenueSeries: series.points,
	}, nil
}

// CompanyTable una fila por empresa (orden por ID) con número de filiales y totales.
func (uc *DashboardUseCase) CompanyTable(ctx context.Context) ([]dto.CompanyAggregate, error) {
	companies, err := uc.store.Repositories().Companies.List(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.CompanyAggregate, 0, len(companies))
	for _, c := range companies {
		agg, err := uc.rollup.CompanyAggregate(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		rows = append(rows, agg)
	}
	return rows, nil
}

// ParentDrilldown agregado de la primera empresa matriz (menor ID) y el desglose por filial.
// Sin matriz devuelve nil, sin error.
func (uc *DashboardUseCase) ParentDrilldown(ctx context.Context) (*dto.ParentDrilldown, error) {
	repos := uc.store.Repositories()
	parent, err := repos.Companies.FirstParent(ctx)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, nil
	}
	agg, subs, err := uc.rollup.companyBreakdown(ctx, repos, parent.ID)
	if err != nil {
		return nil, err
	}
	return &dto.ParentDrilldown{Company: agg, Subsidiaries: subs}, nil
}

// RevenueSeries ingresos sumados por fecha exacta, en orden cronológico.
func (uc *DashboardUseCase) RevenueSeries(ctx context.Context) ([]dto.RevenuePoint, error) {
	series, err := uc.store.Repositories().Revenues.SeriesByDate(ctx)
	if err != nil {
		return nil, err
	}
	return toRevenuePoints(series), nil
}

// Report genera el PDF del dashboard.
func (uc *DashboardUseCase) Report(ctx context.Context) ([]byte, error) {
	if uc.renderer == nil {
		return nil, fmt.Errorf("dashboard: generador de PDF no configurado")
	}
	summary, err := uc.Summary(ctx)
	if err != nil {
		return nil, err
	}
	return uc.renderer.RenderDashboard(ctx, summary, time.Now())
}

func toRevenuePoints(series []repository.DateAmount) []dto.RevenuePoint {
	points := make([]dto.RevenuePoint, 0, len(series))
	for _, p := range series {
		points = append(points, dto.RevenuePoint{Date: p.Date.Format(entity.DateLayout), Amount: p.Amount})
	}
	return points
}
