package repository

import "github.com/dulcehorno/panaderia-api/internal/domain/entity"

// RecipeRepository define el puerto de persistencia para Recipe.
// La clave natural es el nombre de la receta.
type RecipeRepository interface {
	Create(recipe *entity.Recipe) error
	GetByName(name string) (*entity.Recipe, error)
	List() ([]*entity.Recipe, error)
	ListNames() ([]string, error)
	Update(recipe *entity.Recipe) error
	Delete(name string) error
}
