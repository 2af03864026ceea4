package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/dulcehorno/panaderia-api/internal/domain/entity"
	"github.com/dulcehorno/panaderia-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL.
// Para la liquidación de ventas se construye sobre la transacción (pgx.Tx)
// y GetForUpdate bloquea la fila con SELECT FOR UPDATE.
type StockRepo struct {
	q Querier
}

func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// GetOrSeed devuelve el nivel de stock de la receta, sembrándolo con seed
// si la receta nunca fue referenciada.
func (r *StockRepo) GetOrSeed(recipeName string, seed int64) (*entity.StockLevel, error) {
	return r.get(recipeName, seed, false)
}

// GetForUpdate siembra si hace falta y bloquea la fila. Solo dentro de una tx.
func (r *StockRepo) GetForUpdate(recipeName string, seed int64) (*entity.StockLevel, error) {
	return r.get(recipeName, seed, true)
}

func (r *StockRepo) get(recipeName string, seed int64, forUpdate bool) (*entity.StockLevel, error) {
	ctx := context.Background()
	_, err := r.q.Exec(ctx, `
		INSERT INTO stock_levels (recipe_name, quantity, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (recipe_name) DO NOTHING`,
		recipeName, decimal.NewFromInt(seed),
	)
	if err != nil {
		return nil, fmt.Errorf("seed stock level: %w", err)
	}

	query := `SELECT recipe_name, quantity, updated_at FROM stock_levels WHERE recipe_name = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var lvl entity.StockLevel
	err = r.q.QueryRow(ctx, query, recipeName).Scan(&lvl.RecipeName, &lvl.Quantity, &lvl.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("get stock level: %w", err)
	}
	return &lvl, nil
}

// Upsert escribe el nivel de stock (inserta o actualiza por receta).
func (r *StockRepo) Upsert(level *entity.StockLevel) error {
	query := `
		INSERT INTO stock_levels (recipe_name, quantity, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (recipe_name)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	if _, err := r.q.Exec(context.Background(), query, level.RecipeName, level.Quantity); err != nil {
		return fmt.Errorf("upsert stock level: %w", err)
	}
	return nil
}

// List devuelve todos los niveles de stock ordenados por receta.
func (r *StockRepo) List() ([]*entity.StockLevel, error) {
	query := `SELECT recipe_name, quantity, updated_at FROM stock_levels ORDER BY recipe_name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list stock levels: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockLevel
	for rows.Next() {
		var lvl entity.StockLevel
		if err := rows.Scan(&lvl.RecipeName, &lvl.Quantity, &lvl.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock level: %w", err)
		}
		list = append(list, &lvl)
	}
	return list, rows.Err()
}
