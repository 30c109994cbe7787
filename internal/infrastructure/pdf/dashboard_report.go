// Package pdf genera el reporte PDF del dashboard con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Empresa | Filiales | Ingresos | Gastos | Beneficio  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  MATRIZ: totales + desglose por filial                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SERIE: Fecha | Ingresos                                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/holding-tracker/internal/application/analytics"
	"github.com/jhoicas/holding-tracker/internal/application/dto"
)

var _ analytics.ReportRenderer = (*DashboardReport)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// DashboardReport implementa analytics.ReportRenderer usando Maroto v2.
type DashboardReport struct {
	title   string
	printer *message.Printer
}

// NewDashboardReport construye el generador. title encabeza el documento (ej. nombre de la app).
func NewDashboardReport(title string) *DashboardReport {
	return &DashboardReport{title: title, printer: message.NewPrinter(language.English)}
}

// RenderDashboard genera el PDF y devuelve sus bytes.
func (g *DashboardReport) RenderDashboard(_ context.Context, report *dto.DashboardResponse, generatedAt time.Time) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("pdf: reporte vacío")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(g.title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionTitle("EMPRESAS"))
	m.AddRows(tableHeaderRow([]column{
		{"Empresa", 4, align.Left}, {"Filiales", 2, align.Center},
		{"Ingresos", 2, align.Right}, {"Gastos", 2, align.Right}, {"Beneficio", 2, align.Right},
	}))
	for _, c := range report.Companies {
		m.AddRows(dataRow([]cell{
			{c.Name, 4, align.Left}, {strconv.Itoa(c.SubsidiaryCount), 2, align.Center},
			{g.money(c.Revenue), 2, align.Right}, {g.money(c.Expenses), 2, align.Right}, {g.money(c.Profit), 2, align.Right},
		}))
	}

	m.AddRows(line.NewRow(4))
	if report.Parent != nil {
		p := report.Parent.Company
		m.AddRows(sectionTitle("MATRIZ: " + p.Name))
		m.AddRows(row.New(7).Add(col.New(12).Add(text.New(
			fmt.Sprintf("Ingresos %s   |   Gastos %s   |   Beneficio %s",
				g.money(p.Revenue), g.money(p.Expenses), g.money(p.Profit)),
			props.Text{Size: 9, Top: 1, Color: colorGray},
		))))
		m.AddRows(tableHeaderRow([]column{
			{"Filial", 4, align.Left}, {"Contratos", 2, align.Center},
			{"Ingresos", 2, align.Right}, {"Gastos", 2, align.Right}, {"Beneficio", 2, align.Right},
		}))
		for _, s := range report.Parent.Subsidiaries {
			m.AddRows(dataRow([]cell{
				{s.Name, 4, align.Left}, {strconv.Itoa(s.ContractCount), 2, align.Center},
				{g.money(s.Revenue), 2, align.Right}, {g.money(s.Expenses), 2, align.Right}, {g.money(s.Profit), 2, align.Right},
			}))
		}
	} else {
		m.AddRows(sectionTitle("MATRIZ"))
		m.AddRows(row.New(7).Add(col.New(12).Add(text.New(
			"No hay ninguna empresa marcada como matriz.", props.Text{Size: 9, Top: 1, Color: colorGray},
		))))
	}

	m.AddRows(line.NewRow(4))
	m.AddRows(sectionTitle("INGRESOS POR FECHA"))
	m.AddRows(tableHeaderRow([]column{{"Fecha", 6, align.Left}, {"Ingresos", 6, align.Right}}))
	for _, pt := range report.RevenueSeries {
		m.AddRows(dataRow([]cell{{pt.Date, 6, align.Left}, {g.money(pt.Amount), 6, align.Right}}))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *DashboardReport) headerRow(generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(g.title, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New("Resumen de empresas, filiales e ingresos", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt.Format("2006-01-02 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func sectionTitle(s string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2}),
	))
}

type column struct {
	label string
	size  int
	align align.Type
}

type cell = column

// tableHeaderRow cabecera con fondo del color primario.
func tableHeaderRow(cols []column) core.Row {
	r := row.New(7)
	for _, c := range cols {
		r.Add(col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align, Color: colorWhite, Top: 1.5, Left: 1, Right: 1,
		})))
	}
	return r.WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func dataRow(cells []cell) core.Row {
	r := row.New(6)
	for _, c := range cells {
		r.Add(col.New(c.size).Add(text.New(c.label, props.Text{
			Size: 8, Align: c.align, Top: 1, Left: 1, Right: 1,
		})))
	}
	return r
}

// ── helpers ───────────────────────────────────────────────────────────────────

// money formatea con separador de miles y 2 decimales: "$1,234.56".
func (g *DashboardReport) money(d decimal.Decimal) string {
	return FormatMoney(g.printer, d)
}

// FormatMoney formatea un monto como "$1,234.56" (negativos "-$1,234.56").
func FormatMoney(p *message.Printer, d decimal.Decimal) string {
	v := d.Round(2).InexactFloat64()
	if v < 0 {
		return p.Sprintf("-$%.2f", -v)
	}
	return p.Sprintf("$%.2f", v)
}
