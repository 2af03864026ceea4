package dto

import "github.com/shopspring/decimal"

// InventorySnapshotDTO punto del gráfico de barras de inventario.
type InventorySnapshotDTO struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Unit   string          `json:"unit"`
}

// ProductionSeriesDTO serie de producción de una receta a lo largo de las fechas.
type ProductionSeriesDTO struct {
	Recipe  string            `json:"recipe"`
	Amounts []decimal.Decimal `json:"amounts"` // alineado con StatisticsSummary.Dates
}

// StatisticsSummaryResponse datos crudos del tablero de estadísticas:
// inventario actual + historial de producción pivotado por receta.
type StatisticsSummaryResponse struct {
	Inventory  []InventorySnapshotDTO `json:"inventory"`
	Dates      []string               `json:"dates"`
	Production []ProductionSeriesDTO  `json:"production"`
}
