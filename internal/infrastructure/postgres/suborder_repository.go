package postgres

import (
	"context"
	"fmt"

	"github.com/dulcehorno/panaderia-api/internal/domain/entity"
	"github.com/dulcehorno/panaderia-api/internal/domain/repository"
)

var _ repository.SubOrderRepository = (*SubOrderRepo)(nil)

// SubOrderRepo implementación de SubOrderRepository sobre PostgreSQL.
type SubOrderRepo struct {
	q Querier
}

func NewSubOrderRepository(q Querier) *SubOrderRepo {
	return &SubOrderRepo{q: q}
}

// Create persiste un pedido anticipado.
func (r *SubOrderRepo) Create(order *entity.SubOrder) error {
	query := `
		INSERT INTO suborders (id, phone, recipe_name, date_and_time, quantity, amount, total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.Phone, order.RecipeName, order.DateAndTime,
		order.Quantity, order.Amount, order.Total, order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert suborder: %w", err)
	}
	return nil
}

// List devuelve todos los pedidos agrupados por teléfono (orden estable).
func (r *SubOrderRepo) List() ([]*entity.SubOrder, error) {
	return r.list(`SELECT id, phone, recipe_name, date_and_time, quantity, amount, total, created_at
		FROM suborders ORDER BY phone, created_at`)
}

// ListByPhone devuelve los pedidos de un teléfono.
func (r *SubOrderRepo) ListByPhone(phone string) ([]*entity.SubOrder, error) {
	return r.list(`SELECT id, phone, recipe_name, date_and_time, quantity, amount, total, created_at
		FROM suborders WHERE phone = $1 ORDER BY created_at`, phone)
}

// DeleteByPhoneAndRecipe elimina los pedidos del teléfono para esa receta
// y devuelve cuántas filas se eliminaron.
func (r *SubOrderRepo) DeleteByPhoneAndRecipe(phone, recipeName string) (int, error) {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM suborders WHERE phone = $1 AND recipe_name = $2`, phone, recipeName)
	if err != nil {
		return 0, fmt.Errorf("delete suborders: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func (r *SubOrderRepo) list(query string, args ...any) ([]*entity.SubOrder, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list suborders: %w", err)
	}
	defer rows.Close()
	var list []*entity.SubOrder
	for rows.Next() {
		var o entity.SubOrder
		if err := rows.Scan(&o.ID, &o.Phone, &o.RecipeName, &o.DateAndTime,
			&o.Quantity, &o.Amount, &o.Total, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan suborder: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
