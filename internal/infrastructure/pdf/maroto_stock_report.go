// Package pdf implementa el render del reporte de stock usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa  │  Fecha de generación                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Categoría | Cant | Mín | Precio | Ubic.  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: total de productos y valor de inventario          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
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

	"github.com/jcastro/almacen-api/internal/application/report"
	"github.com/jcastro/almacen-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 40, Blue: 40}
)

var _ report.StockPDFGenerator = (*MarotoStockReport)(nil)

// MarotoStockReport implementa report.StockPDFGenerator usando Maroto v2.
type MarotoStockReport struct{}

// NewMarotoStockReport construye el generador.
func NewMarotoStockReport() *MarotoStockReport { return &MarotoStockReport{} }

// GenerateStockPDF genera el PDF y devuelve sus bytes.
func (g *MarotoStockReport) GenerateStockPDF(_ context.Context, cfg entity.SystemConfig, products []*entity.Product) ([]byte, error) {
	mcfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Stock", true).
		WithAuthor(cfg.CompanyName, true).
		Build()

	m := maroto.New(mcfg)

	m.AddRows(headerRow(cfg))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(products, cfg) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRow(products, cfg))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: empresa (izq) y fecha de generación (der).
func headerRow(cfg entity.SystemConfig) core.Row {
	fecha := time.Now().Format("02/01/2006 15:04")
	return row.New(16).Add(
		col.New(7).Add(
			text.New(cfg.CompanyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de stock del almacén", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Moneda: "+cfg.Currency, props.Text{
				Size: 8, Align: align.Right, Top: 7, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 4, align.Left),
		h("Categoría", 2, align.Left),
		h("Cant.", 1, align.Right),
		h("Mín.", 1, align.Right),
		h("Precio", 2, align.Right),
		h("Ubicación", 2, align.Left),
	)
}

// tableRows: una fila por producto; los que están bajo mínimo van en rojo.
func tableRows(products []*entity.Product, cfg entity.SystemConfig) []core.Row {
	result := make([]core.Row, 0, len(products))
	for _, p := range products {
		qtyColor := colorGray
		if lowStock(p, cfg) {
			qtyColor = colorAlert
		}
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(p.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(p.Category, props.Text{Size: 8, Top: 1, Left: 1, Color: colorGray})),
			col.New(1).Add(text.New(p.Quantity.String(), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1, Color: qtyColor})),
			col.New(1).Add(text.New(p.MinStock.String(), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1, Color: colorGray})),
			col.New(2).Add(text.New(p.Price.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(p.Location, props.Text{Size: 8, Top: 1, Left: 1, Color: colorGray})),
		))
	}
	return result
}

// summaryRow: totales del inventario.
func summaryRow(products []*entity.Product, cfg entity.SystemConfig) core.Row {
	total := decimal.Zero
	low := 0
	for _, p := range products {
		total = total.Add(p.Quantity.Mul(p.Price))
		if lowStock(p, cfg) {
			low++
		}
	}
	return row.New(14).Add(
		col.New(6).Add(
			text.New(fmt.Sprintf("Productos: %d   |   Bajo mínimo: %d", len(products), low), props.Text{
				Size: 9, Top: 2, Color: colorGray,
			}),
		),
		col.New(6).Add(
			text.New(fmt.Sprintf("Valor de inventario: %s %s", total.StringFixed(2), cfg.Currency), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2, Color: colorPrimary,
			}),
		),
	)
}

func lowStock(p *entity.Product, cfg entity.SystemConfig) bool {
	limit := p.MinStock
	if limit.IsZero() {
		limit = decimal.NewFromInt(int64(cfg.LowStockThreshold))
	}
	return p.Quantity.LessThanOrEqual(limit)
}
