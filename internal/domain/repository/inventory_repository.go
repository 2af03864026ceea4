package repository

import (
	"github.com/shopspring/decimal"

	"github.com/dulcehorno/panaderia-api/internal/domain/entity"
)

// InventoryRepository define el puerto de persistencia para InventoryItem.
// AddAmount aplica el restock (amount += delta) en una sola sentencia para no
// perder actualizaciones entre lectura y escritura; SetAmount es la corrección directa.
type InventoryRepository interface {
	Create(item *entity.InventoryItem) error
	GetByName(name string) (*entity.InventoryItem, error)
	List() ([]*entity.InventoryItem, error)
	AddAmount(name string, delta decimal.Decimal) error
	SetAmount(name string, amount decimal.Decimal) error
	Delete(name string) error
}
