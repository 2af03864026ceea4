package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInventoryItemRequest body para POST /api/inventory.
type CreateInventoryItemRequest struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Unit   string          `json:"unit"`
}

// RestockRequest body para POST /api/inventory/:name/restock (amount += delta).
type RestockRequest struct {
	Delta decimal.Decimal `json:"delta"`
}

// CorrectAmountRequest body para PUT /api/inventory/:name/amount (amount := value).
type CorrectAmountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// InventoryItemResponse insumo del inventario.
type InventoryItemResponse struct {
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
	Unit        string          `json:"unit"`
	LastUpdated time.Time       `json:"last_updated"`
}

// InventoryListResponse listado del inventario.
type InventoryListResponse struct {
	Items []InventoryItemResponse `json:"items"`
}
