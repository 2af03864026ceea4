package dto

import "github.com/shopspring/decimal"

// IngredientTotalDTO total de un ingrediente para la fecha consultada.
type IngredientTotalDTO struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// AllocationWarningDTO línea omitida del cálculo y su causa.
type AllocationWarningDTO struct {
	Recipe     string `json:"recipe"`
	Ingredient string `json:"ingredient,omitempty"`
	Reason     string `json:"reason"`
}

// AllocationResponse demanda total de ingredientes de una fecha.
// Fecha sin plan → Items vacío, sin error.
type AllocationResponse struct {
	Date     string                 `json:"date"`
	Items    []IngredientTotalDTO   `json:"items"`
	Warnings []AllocationWarningDTO `json:"warnings,omitempty"`
}
