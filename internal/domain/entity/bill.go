package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillLine línea de una factura de venta.
type BillLine struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Amount   decimal.Decimal `json:"amount"` // precio unitario al momento de la venta
}

// Total de la línea (cantidad × precio unitario).
func (l BillLine) Total() decimal.Decimal {
	return l.Amount.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Bill factura inmutable de una venta completada (registro append-only).
type Bill struct {
	ID        string
	Lines     []BillLine
	Total     decimal.Decimal
	Timestamp time.Time
}
