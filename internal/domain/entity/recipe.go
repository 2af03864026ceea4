package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unidades válidas para ingredientes de receta.
const (
	UnitKg     = "Kg"
	UnitGrams  = "Grams"
	UnitMg     = "Mg"
	UnitLiter  = "Liter"
	UnitMl     = "ml"
	UnitPer    = "Per"
)

// RecipeIngredientUnits lista ordenada de unidades aceptadas en líneas de ingrediente.
var RecipeIngredientUnits = []string{UnitKg, UnitGrams, UnitMg, UnitLiter, UnitMl, UnitPer}

// IsValidIngredientUnit indica si la unidad pertenece al enum de ingredientes.
func IsValidIngredientUnit(u string) bool {
	for _, v := range RecipeIngredientUnits {
		if v == u {
			return true
		}
	}
	return false
}

// IngredientLine una línea de ingrediente de la receta.
// Qty está normalizada a "por una pieza": al crear la receta se divide la
// cantidad ingresada entre Pieces y se redondea a 2 decimales.
type IngredientLine struct {
	Name string          `json:"name"`
	Qty  decimal.Decimal `json:"qty"`
	Unit string          `json:"unit"`
}

// Recipe representa una receta del catálogo, identificada por nombre único.
type Recipe struct {
	Name        string
	Description string
	Pieces      int // rendimiento: piezas que produce la receta tal como fue ingresada
	Ingredients []IngredientLine
	LastUpdated time.Time
}
