package dto

import "github.com/shopspring/decimal"

// PlanLineDTO línea (receta, cantidad) del plan de producción.
type PlanLineDTO struct {
	Recipe string          `json:"recipe"`
	Amount decimal.Decimal `json:"amount"`
}

// SavePlanRequest body para PUT /api/production/:date. Reemplaza todas las líneas de la fecha.
type SavePlanRequest struct {
	Lines []PlanLineDTO `json:"lines"`
}

// PlanResponse plan de producción de una fecha.
type PlanResponse struct {
	Date  string        `json:"date"`
	Lines []PlanLineDTO `json:"lines"`
}

// PlanHistoryResponse historial completo de producción.
type PlanHistoryResponse struct {
	Items []PlanResponse `json:"items"`
}
