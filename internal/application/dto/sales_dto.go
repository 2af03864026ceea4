package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePriceRequest body para POST /api/pos/prices.
type CreatePriceRequest struct {
	RecipeName string          `json:"recipe_name"`
	Price      decimal.Decimal `json:"price"`
}

// PriceResponse entrada de precio de una receta.
type PriceResponse struct {
	RecipeName string          `json:"recipe_name"`
	Price      decimal.Decimal `json:"price"`
}

// POSItemResponse receta vendible: precio y stock disponible.
type POSItemResponse struct {
	RecipeName string          `json:"recipe_name"`
	Price      decimal.Decimal `json:"price"`
	Quantity   decimal.Decimal `json:"quantity"`
}

// POSItemListResponse listado de artículos del punto de venta.
type POSItemListResponse struct {
	Items []POSItemResponse `json:"items"`
}

// AddLineRequest body para POST /api/pos/registers/:register/lines.
type AddLineRequest struct {
	RecipeName string `json:"recipe_name"`
	Quantity   int    `json:"quantity"`
}

// OrderLineDTO línea del pedido en curso (reserva local, aún sin persistir).
type OrderLineDTO struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Amount   decimal.Decimal `json:"amount"`
}

// OrderStateResponse estado del pedido en curso de una caja.
type OrderStateResponse struct {
	Register string          `json:"register"`
	Lines    []OrderLineDTO  `json:"lines"`
	Total    decimal.Decimal `json:"total"`
}

// BillResponse factura persistida.
type BillResponse struct {
	ID        string          `json:"id"`
	Lines     []OrderLineDTO  `json:"lines"`
	Total     decimal.Decimal `json:"total"`
	Timestamp time.Time       `json:"timestamp"`
}

// BillListResponse facturas históricas con total agregado (analítica de ventas).
type BillListResponse struct {
	Items      []BillResponse  `json:"items"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}
