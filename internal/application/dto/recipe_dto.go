package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// IngredientLineDTO línea de ingrediente en requests y respuestas.
// En la creación Qty es la cantidad para el total de piezas; se normaliza
// a "por pieza" antes de persistir.
type IngredientLineDTO struct {
	Name string          `json:"name"`
	Qty  decimal.Decimal `json:"qty"`
	Unit string          `json:"unit"`
}

// CreateRecipeRequest body para POST /api/recipes.
type CreateRecipeRequest struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Pieces      int                 `json:"pieces"`
	Ingredients []IngredientLineDTO `json:"ingredients"`
}

// UpdateRecipeRequest body para PUT /api/recipes/:name. Reemplaza el documento completo.
type UpdateRecipeRequest struct {
	Description string              `json:"description"`
	Pieces      int                 `json:"pieces"`
	Ingredients []IngredientLineDTO `json:"ingredients"`
}

// RecipeResponse receta con cantidades normalizadas a una pieza.
type RecipeResponse struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Pieces      int                 `json:"pieces"`
	Ingredients []IngredientLineDTO `json:"ingredients"`
	LastUpdated time.Time           `json:"last_updated"`
}

// RecipeListResponse listado del catálogo.
type RecipeListResponse struct {
	Items []RecipeResponse `json:"items"`
}

// ScaledRecipeResponse resultado de escalar una receta a N piezas.
type ScaledRecipeResponse struct {
	Name        string              `json:"name"`
	Pieces      decimal.Decimal     `json:"pieces"`
	Ingredients []IngredientLineDTO `json:"ingredients"`
}
