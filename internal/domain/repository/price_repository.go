package repository

import "github.com/dulcehorno/panaderia-api/internal/domain/entity"

// PriceRepository define el puerto de persistencia para PriceEntry.
// El precio no se modifica desde el flujo de ventas (inmutable tras la creación).
type PriceRepository interface {
	Create(entry *entity.PriceEntry) error
	GetByRecipe(recipeName string) (*entity.PriceEntry, error)
	List() ([]*entity.PriceEntry, error)
}
