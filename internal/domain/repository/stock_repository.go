package repository

import "github.com/dulcehorno/panaderia-api/internal/domain/entity"

// StockRepository define el puerto de persistencia para StockLevel.
// GetOrSeed devuelve el nivel actual, sembrándolo con seed si la receta no
// tiene registro. GetForUpdate bloquea la fila (SELECT FOR UPDATE) y solo
// tiene sentido dentro de una transacción: es la base de la liquidación
// atómica que impide ventas concurrentes sobre el mismo stock.
type StockRepository interface {
	GetOrSeed(recipeName string, seed int64) (*entity.StockLevel, error)
	GetForUpdate(recipeName string, seed int64) (*entity.StockLevel, error)
	Upsert(level *entity.StockLevel) error
	List() ([]*entity.StockLevel, error)
}
