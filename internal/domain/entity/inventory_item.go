package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItemUnits unidades aceptadas para insumos del inventario.
var InventoryItemUnits = []string{
	"pieces", "grams", "kilograms", "liters", "milliliters",
	"cups", "tablespoons", "teaspoons", "bottles",
}

// IsValidInventoryUnit indica si la unidad pertenece al enum de inventario.
func IsValidInventoryUnit(u string) bool {
	for _, v := range InventoryItemUnits {
		if v == u {
			return true
		}
	}
	return false
}

// InventoryItem insumo de materia prima identificado por nombre único.
// Amount se muta por restock (suma delta) o por corrección directa (asignación).
type InventoryItem struct {
	Name        string
	Amount      decimal.Decimal
	Unit        string
	LastUpdated time.Time
}
