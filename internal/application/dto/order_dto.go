package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSubOrderRequest body para POST /api/orders.
type CreateSubOrderRequest struct {
	Phone       string          `json:"phone"`
	RecipeName  string          `json:"recipe_name"`
	DateAndTime string          `json:"date_and_time"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// SubOrderResponse pedido anticipado de cliente.
type SubOrderResponse struct {
	ID          string          `json:"id"`
	Phone       string          `json:"phone"`
	RecipeName  string          `json:"recipe_name"`
	DateAndTime string          `json:"date_and_time"`
	Quantity    decimal.Decimal `json:"quantity"`
	Amount      decimal.Decimal `json:"amount"`
	Total       decimal.Decimal `json:"total"`
	CreatedAt   time.Time       `json:"created_at"`
}

// SubOrderListResponse listado plano de subpedidos.
type SubOrderListResponse struct {
	Items []SubOrderResponse `json:"items"`
}

// DeleteSubOrderRequest body para DELETE /api/orders (por teléfono + receta).
type DeleteSubOrderRequest struct {
	Phone      string `json:"phone"`
	RecipeName string `json:"recipe_name"`
}
