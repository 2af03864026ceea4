package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubOrder pedido anticipado de un cliente, agrupado por teléfono (documento padre)
// e identificado por un id generado. Se elimina por teléfono + nombre de receta.
type SubOrder struct {
	ID          string
	Phone       string // formato 0XXXXXXXXX (10 dígitos empezando en 0)
	RecipeName  string
	DateAndTime string // fecha/hora programada tal como la ingresó el operador
	Quantity    decimal.Decimal
	Amount      decimal.Decimal // precio unitario (entrada de precio o valor por defecto)
	Total       decimal.Decimal
	CreatedAt   time.Time
}
