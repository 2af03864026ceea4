package baking

import (
	"github.com/shopspring/decimal"

	"github.com/dulcehorno/panaderia-api/internal/domain"
	"github.com/dulcehorno/panaderia-api/internal/domain/entity"
)

// Scale escala la lista de ingredientes de una receta a N piezas:
// qtyEscalada = qtyAlmacenada × N, redondeada a 2 decimales para mostrar.
// Las cantidades almacenadas ya están normalizadas a una pieza.
// Función pura; N debe ser positivo.
func Scale(ingredients []entity.IngredientLine, n decimal.Decimal) ([]entity.IngredientLine, error) {
	if n.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	scaled := make([]entity.IngredientLine, 0, len(ingredients))
	for _, ing := range ingredients {
		scaled = append(scaled, entity.IngredientLine{
			Name: ing.Name,
			Qty:  ing.Qty.Mul(n).Round(2),
			Unit: ing.Unit,
		})
	}
	return scaled, nil
}

// NormalizePerPiece divide cada cantidad ingresada entre el rendimiento (piezas)
// y redondea a 2 decimales. Se aplica una sola vez, al crear o editar la receta:
// lo que se persiste ya está en unidades "por pieza".
func NormalizePerPiece(ingredients []entity.IngredientLine, pieces int) ([]entity.IngredientLine, error) {
	if pieces <= 0 {
		return nil, domain.ErrInvalidInput
	}
	div := decimal.NewFromInt(int64(pieces))
	normalized := make([]entity.IngredientLine, 0, len(ingredients))
	for _, ing := range ingredients {
		normalized = append(normalized, entity.IngredientLine{
			Name: ing.Name,
			Qty:  ing.Qty.Div(div).Round(2),
			Unit: ing.Unit,
		})
	}
	return normalized, nil
}
