package entity

import "github.com/shopspring/decimal"

// PlanLine una línea del plan de producción: receta y cantidad planificada.
type PlanLine struct {
	Recipe string          `json:"recipe"`
	Amount decimal.Decimal `json:"amount"`
}

// ProductionPlan plan de producción de un día calendario (clave: fecha YYYY-MM-DD).
// Guardar de nuevo reemplaza el conjunto completo de líneas de esa fecha.
// Las líneas referencian recetas por nombre sin integridad referencial:
// una receta borrada deja líneas huérfanas (caso documentado, se omiten con warning).
type ProductionPlan struct {
	Date  string // YYYY-MM-DD
	Lines []PlanLine
}
