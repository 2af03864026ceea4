package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dulcehorno/panaderia-api/internal/domain"
	"github.com/dulcehorno/panaderia-api/internal/domain/entity"
	"github.com/dulcehorno/panaderia-api/internal/domain/repository"
)

var _ repository.RecipeRepository = (*RecipeRepo)(nil)

// RecipeRepo implementación de RecipeRepository sobre PostgreSQL.
// Las líneas de ingrediente se guardan como JSONB en la fila de la receta,
// conservando la semántica de documento completo del modelo original.
type RecipeRepo struct {
	q Querier
}

// NewRecipeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRecipeRepository(q Querier) *RecipeRepo {
	return &RecipeRepo{q: q}
}

// Create persiste una receta nueva. El nombre es la clave primaria.
func (r *RecipeRepo) Create(recipe *entity.Recipe) error {
	ingredients, err := json.Marshal(recipe.Ingredients)
	if err != nil {
		return fmt.Errorf("marshal ingredients: %w", err)
	}
	query := `
		INSERT INTO recipes (name, description, pieces, ingredients, last_updated)
		VALUES ($1, $2, $3, $4, $5)`
	_, err = r.q.Exec(context.Background(), query,
		recipe.Name, recipe.Description, recipe.Pieces, ingredients, recipe.LastUpdated,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert recipe: %w", err)
	}
	return nil
}

// GetByName obtiene una receta por nombre. nil si no existe.
func (r *RecipeRepo) GetByName(name string) (*entity.Recipe, error) {
	query := `
		SELECT name, description, pieces, ingredients, last_updated
		FROM recipes WHERE name = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, name))
}

// List devuelve el catálogo completo ordenado por nombre.
func (r *RecipeRepo) List() ([]*entity.Recipe, error) {
	query := `
		SELECT name, description, pieces, ingredients, last_updated
		FROM recipes ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Recipe
	for rows.Next() {
		recipe, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, recipe)
	}
	return list, rows.Err()
}

// ListNames devuelve solo los nombres del catálogo, ordenados.
func (r *RecipeRepo) ListNames() ([]string, error) {
	rows, err := r.q.Query(context.Background(), `SELECT name FROM recipes ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list recipe names: %w", err)
	}
	defer rows.Close()
	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan recipe name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Update reemplaza el documento completo de la receta.
func (r *RecipeRepo) Update(recipe *entity.Recipe) error {
	ingredients, err := json.Marshal(recipe.Ingredients)
	if err != nil {
		return fmt.Errorf("marshal ingredients: %w", err)
	}
	query := `
		UPDATE recipes SET description = $2, pieces = $3, ingredients = $4, last_updated = $5
		WHERE name = $1`
	_, err = r.q.Exec(context.Background(), query,
		recipe.Name, recipe.Description, recipe.Pieces, ingredients, recipe.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("update recipe: %w", err)
	}
	return nil
}

// Delete elimina una receta por nombre.
func (r *RecipeRepo) Delete(name string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM recipes WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	return nil
}

func (r *RecipeRepo) scanOne(row pgx.Row) (*entity.Recipe, error) {
	recipe, err := scanRecipe(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get recipe: %w", err)
	}
	return recipe, nil
}

func (r *RecipeRepo) scanRow(rows pgx.Rows) (*entity.Recipe, error) {
	recipe, err := scanRecipe(rows.Scan)
	if err != nil {
		return nil, fmt.Errorf("scan recipe: %w", err)
	}
	return recipe, nil
}

func scanRecipe(scan func(...any) error) (*entity.Recipe, error) {
	var rec entity.Recipe
	var ingredients []byte
	if err := scan(&rec.Name, &rec.Description, &rec.Pieces, &ingredients, &rec.LastUpdated); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(ingredients, &rec.Ingredients); err != nil {
		return nil, fmt.Errorf("unmarshal ingredients: %w", err)
	}
	return &rec, nil
}
