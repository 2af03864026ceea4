package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockLevel cantidad vendible disponible de una receta (clave: nombre de receta).
// Independiente del inventario de materias primas. Al referenciarse por primera
// vez se siembra con el valor por defecto configurado (7).
// Solo la liquidación de ventas lo decrementa, dentro de una transacción.
type StockLevel struct {
	RecipeName string
	Quantity   decimal.Decimal
	UpdatedAt  time.Time
}
