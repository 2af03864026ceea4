package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceEntry precio de venta por receta (clave: nombre de receta).
// El precio es inmutable dentro del flujo de ventas.
type PriceEntry struct {
	RecipeName string
	Price      decimal.Decimal
	CreatedAt  time.Time
}
