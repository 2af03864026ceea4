package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/dulcehorno/panaderia-api/internal/domain"
	"github.com/dulcehorno/panaderia-api/internal/domain/entity"
	"github.com/dulcehorno/panaderia-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create persiste un insumo nuevo.
func (r *InventoryRepo) Create(item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (name, amount, unit, last_updated)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		item.Name, item.Amount, item.Unit, item.LastUpdated,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

// GetByName obtiene un insumo por nombre. nil si no existe.
func (r *InventoryRepo) GetByName(name string) (*entity.InventoryItem, error) {
	query := `
		SELECT name, amount, unit, last_updated
		FROM inventory_items WHERE name = $1`
	var it entity.InventoryItem
	err := r.q.QueryRow(context.Background(), query, name).Scan(
		&it.Name, &it.Amount, &it.Unit, &it.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	return &it, nil
}

// List devuelve el inventario completo ordenado por nombre.
func (r *InventoryRepo) List() ([]*entity.InventoryItem, error) {
	query := `
		SELECT name, amount, unit, last_updated
		FROM inventory_items ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryItem
	for rows.Next() {
		var it entity.InventoryItem
		if err := rows.Scan(&it.Name, &it.Amount, &it.Unit, &it.LastUpdated); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// AddAmount aplica el restock en una sola sentencia (amount += delta).
func (r *InventoryRepo) AddAmount(name string, delta decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE inventory_items SET amount = amount + $2, last_updated = now() WHERE name = $1`,
		name, delta,
	)
	if err != nil {
		return fmt.Errorf("restock inventory item: %w", err)
	}
	return nil
}

// SetAmount fija la cantidad exacta (corrección directa).
func (r *InventoryRepo) SetAmount(name string, amount decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE inventory_items SET amount = $2, last_updated = now() WHERE name = $1`,
		name, amount,
	)
	if err != nil {
		return fmt.Errorf("set inventory amount: %w", err)
	}
	return nil
}

// Delete elimina un insumo por nombre.
func (r *InventoryRepo) Delete(name string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM inventory_items WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}
	return nil
}
