// Package pdf implementa los reportes descargables de la panadería con
// Maroto v2: asignación diaria de ingredientes, detalle de receta, foto
// del inventario e historial de producción.
//
// Todos comparten el mismo layout A4: cabecera con título y fecha, línea
// separadora, tabla y pie con la marca de generación.
package pdf

import (
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

	"github.com/dulcehorno/panaderia-api/internal/application/allocation"
	"github.com/dulcehorno/panaderia-api/internal/application/reports"
	"github.com/dulcehorno/panaderia-api/internal/domain/baking"
	"github.com/dulcehorno/panaderia-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 121, Green: 85, Blue: 61} // marrón panadería
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var (
	_ reports.PDFGenerator    = (*MarotoPDFGenerator)(nil)
	_ allocation.PDFGenerator = (*MarotoPDFGenerator)(nil)
)

// MarotoPDFGenerator implementa los puertos de PDF usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateAllocationPDF tabla de dos columnas (ingrediente, cantidad) con la
// fecha del plan en la cabecera.
func (g *MarotoPDFGenerator) GenerateAllocationPDF(date string, items []baking.IngredientTotal) ([]byte, error) {
	m := newDocument("Asignación diaria de ingredientes")

	m.AddRows(titleRow("Asignación diaria de ingredientes", "Fecha de producción: "+date))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow(
		headerCell("Ingrediente", 8, align.Left),
		headerCell("Cantidad total", 4, align.Right),
	))
	for _, it := range items {
		m.AddRows(row.New(6).Add(
			bodyCell(it.Name, 8, align.Left),
			bodyCell(it.Amount.StringFixed(2), 4, align.Right),
		))
	}
	if len(items) == 0 {
		m.AddRows(emptyRow("Sin plan de producción para la fecha"))
	}

	m.AddRows(footerRows()...)
	return generate(m)
}

// GenerateRecipePDF detalle de una receta: descripción, rendimiento y la
// tabla de ingredientes por pieza.
func (g *MarotoPDFGenerator) GenerateRecipePDF(recipe *entity.Recipe) ([]byte, error) {
	m := newDocument("Receta: " + recipe.Name)

	m.AddRows(titleRow("Receta: "+recipe.Name,
		fmt.Sprintf("Rinde %d piezas  |  Actualizada: %s",
			recipe.Pieces, recipe.LastUpdated.Format("02/01/2006"))))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if recipe.Description != "" {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New(recipe.Description, props.Text{Size: 9, Top: 2, Color: colorGray}),
		)))
	}

	m.AddRows(tableHeaderRow(
		headerCell("Ingrediente", 6, align.Left),
		headerCell("Cantidad por pieza", 3, align.Right),
		headerCell("Unidad", 3, align.Center),
	))
	for _, ing := range recipe.Ingredients {
		m.AddRows(row.New(6).Add(
			bodyCell(ing.Name, 6, align.Left),
			bodyCell(ing.Qty.StringFixed(2), 3, align.Right),
			bodyCell(ing.Unit, 3, align.Center),
		))
	}

	m.AddRows(footerRows()...)
	return generate(m)
}

// GenerateInventoryPDF foto actual del inventario de materias primas.
func (g *MarotoPDFGenerator) GenerateInventoryPDF(items []*entity.InventoryItem) ([]byte, error) {
	m := newDocument("Inventario de insumos")

	m.AddRows(titleRow("Inventario de insumos",
		"Generado: "+time.Now().Format("02/01/2006 15:04")))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow(
		headerCell("Insumo", 5, align.Left),
		headerCell("Cantidad", 3, align.Right),
		headerCell("Unidad", 2, align.Center),
		headerCell("Actualizado", 2, align.Right),
	))
	for _, it := range items {
		m.AddRows(row.New(6).Add(
			bodyCell(it.Name, 5, align.Left),
			bodyCell(it.Amount.StringFixed(2), 3, align.Right),
			bodyCell(it.Unit, 2, align.Center),
			bodyCell(it.LastUpdated.Format("02/01/2006"), 2, align.Right),
		))
	}
	if len(items) == 0 {
		m.AddRows(emptyRow("Inventario vacío"))
	}

	m.AddRows(footerRows()...)
	return generate(m)
}

// GenerateProductionPDF historial de producción: una sección por fecha con
// sus líneas de receta planificada.
func (g *MarotoPDFGenerator) GenerateProductionPDF(plans []*entity.ProductionPlan) ([]byte, error) {
	m := newDocument("Historial de producción")

	m.AddRows(titleRow("Historial de producción",
		"Generado: "+time.Now().Format("02/01/2006 15:04")))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	for _, plan := range plans {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New(plan.Date, props.Text{
				Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2,
			}),
		)))
		m.AddRows(tableHeaderRow(
			headerCell("Receta", 8, align.Left),
			headerCell("Cantidad planificada", 4, align.Right),
		))
		for _, l := range plan.Lines {
			m.AddRows(row.New(6).Add(
				bodyCell(l.Recipe, 8, align.Left),
				bodyCell(l.Amount.StringFixed(0), 4, align.Right),
			))
		}
	}
	if len(plans) == 0 {
		m.AddRows(emptyRow("Sin historial de producción"))
	}

	m.AddRows(footerRows()...)
	return generate(m)
}

// ── layout común ──────────────────────────────────────────────────────────────

func newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()
	return maroto.New(cfg)
}

func titleRow(title, subtitle string) core.Row {
	return row.New(16).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
		}),
		text.New(subtitle, props.Text{Size: 9, Top: 9, Color: colorGray}),
	))
}

func tableHeaderRow(cols ...core.Col) core.Row {
	return row.New(8).Add(cols...)
}

func headerCell(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a,
		Color: colorPrimary, Top: 2, Left: 1, Right: 1,
	}))
}

func bodyCell(value string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{
		Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
	}))
}

func emptyRow(msg string) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(msg, props.Text{
			Size: 9, Align: align.Center, Color: colorGray, Top: 3,
		}),
	))
}

func footerRows() []core.Row {
	return []core.Row{
		line.NewRow(3),
		line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}),
		row.New(6).Add(col.New(12).Add(
			text.New("Documento interno de operación | Dulce Horno", props.Text{
				Size: 6.5, Color: colorGray, Top: 1, Align: align.Center,
			}),
		)),
	}
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}
