// Package chart renderiza el tablero de estadísticas a PNG con go-chart:
// un gráfico de barras del inventario actual y un gráfico de líneas de la
// producción planificada por receta, apilados verticalmente en una imagen.
package chart

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/dulcehorno/panaderia-api/internal/application/dto"
	"github.com/dulcehorno/panaderia-api/internal/application/usecase"
)

var _ usecase.ChartRenderer = (*GoChartRenderer)(nil)

// GoChartRenderer implementa usecase.ChartRenderer usando go-chart/v2.
type GoChartRenderer struct{}

// NewGoChartRenderer construye el renderizador.
func NewGoChartRenderer() *GoChartRenderer { return &GoChartRenderer{} }

// RenderStatistics genera el PNG del tablero: barras de inventario arriba,
// líneas de producción abajo. Tablero sin datos produce igualmente una
// imagen válida con los ejes vacíos.
func (r *GoChartRenderer) RenderStatistics(summary *dto.StatisticsSummaryResponse) ([]byte, error) {
	inventory, err := renderInventoryBars(summary.Inventory)
	if err != nil {
		return nil, err
	}
	production, err := renderProductionLines(summary.Dates, summary.Production)
	if err != nil {
		return nil, err
	}
	return stackVertically(inventory, production)
}

func renderInventoryBars(items []dto.InventorySnapshotDTO) (image.Image, error) {
	bars := make([]chart.Value, 0, len(items))
	for _, it := range items {
		v, _ := it.Amount.Float64()
		bars = append(bars, chart.Value{Label: it.Name, Value: v})
	}
	if len(bars) == 0 {
		bars = append(bars, chart.Value{Label: "sin insumos", Value: 0})
	}

	graph := chart.BarChart{
		Title:    "Inventario actual",
		Width:    900,
		Height:   420,
		BarWidth: 40,
		Bars:     bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart: renderizar inventario: %w", err)
	}
	return decodePNG(buf.Bytes())
}

func renderProductionLines(dates []string, series []dto.ProductionSeriesDTO) (image.Image, error) {
	xs := make([]float64, len(dates))
	for i := range dates {
		xs[i] = float64(i)
	}

	chartSeries := make([]chart.Series, 0, len(series))
	// go-chart exige al menos dos puntos por serie
	if len(dates) >= 2 {
		for _, s := range series {
			ys := make([]float64, len(s.Amounts))
			for i, a := range s.Amounts {
				ys[i], _ = a.Float64()
			}
			chartSeries = append(chartSeries, chart.ContinuousSeries{
				Name:    s.Recipe,
				XValues: xs,
				YValues: ys,
			})
		}
	}
	if len(chartSeries) == 0 {
		chartSeries = append(chartSeries, chart.ContinuousSeries{
			Name:    "sin producción",
			XValues: []float64{0, 1},
			YValues: []float64{0, 0},
		})
	}

	ticks := make([]chart.Tick, 0, len(dates))
	for i, d := range dates {
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: d})
	}

	graph := chart.Chart{
		Title:  "Producción planificada por receta",
		Width:  900,
		Height: 420,
		XAxis:  chart.XAxis{Ticks: ticks},
		Series: chartSeries,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart: renderizar producción: %w", err)
	}
	return decodePNG(buf.Bytes())
}

func decodePNG(data []byte) (image.Image, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("chart: decodificar png: %w", err)
	}
	return img, nil
}

// stackVertically arma la imagen final con los dos gráficos uno sobre otro.
func stackVertically(top, bottom image.Image) ([]byte, error) {
	tb, bb := top.Bounds(), bottom.Bounds()
	width := tb.Dx()
	if bb.Dx() > width {
		width = bb.Dx()
	}
	canvas := image.NewRGBA(image.Rect(0, 0, width, tb.Dy()+bb.Dy()))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(canvas, image.Rect(0, 0, tb.Dx(), tb.Dy()), top, tb.Min, draw.Src)
	draw.Draw(canvas, image.Rect(0, tb.Dy(), bb.Dx(), tb.Dy()+bb.Dy()), bottom, bb.Min, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("chart: codificar png: %w", err)
	}
	return buf.Bytes(), nil
}
