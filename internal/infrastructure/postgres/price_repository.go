package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dulcehorno/panaderia-api/internal/domain"
	"github.com/dulcehorno/panaderia-api/internal/domain/entity"
	"github.com/dulcehorno/panaderia-api/internal/domain/repository"
)

var _ repository.PriceRepository = (*PriceRepo)(nil)

// PriceRepo implementación de PriceRepository sobre PostgreSQL.
type PriceRepo struct {
	q Querier
}

func NewPriceRepository(q Querier) *PriceRepo {
	return &PriceRepo{q: q}
}

// Create persiste la entrada de precio de una receta.
func (r *PriceRepo) Create(entry *entity.PriceEntry) error {
	query := `
		INSERT INTO price_entries (recipe_name, price, created_at)
		VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query,
		entry.RecipeName, entry.Price, entry.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert price entry: %w", err)
	}
	return nil
}

// GetByRecipe obtiene el precio de una receta. nil si no tiene entrada.
func (r *PriceRepo) GetByRecipe(recipeName string) (*entity.PriceEntry, error) {
	query := `SELECT recipe_name, price, created_at FROM price_entries WHERE recipe_name = $1`
	var e entity.PriceEntry
	err := r.q.QueryRow(context.Background(), query, recipeName).Scan(
		&e.RecipeName, &e.Price, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get price entry: %w", err)
	}
	return &e, nil
}

// List devuelve todas las entradas de precio ordenadas por receta.
func (r *PriceRepo) List() ([]*entity.PriceEntry, error) {
	query := `SELECT recipe_name, price, created_at FROM price_entries ORDER BY recipe_name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list price entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.PriceEntry
	for rows.Next() {
		var e entity.PriceEntry
		if err := rows.Scan(&e.RecipeName, &e.Price, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan price entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
