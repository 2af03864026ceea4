package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dulcehorno/panaderia-api/internal/domain/entity"
	"github.com/dulcehorno/panaderia-api/internal/domain/repository"
)

var _ repository.BillRepository = (*BillRepo)(nil)

// BillRepo implementación de BillRepository sobre PostgreSQL.
// Las líneas se guardan como JSONB: la factura es un documento inmutable.
type BillRepo struct {
	q Querier
}

func NewBillRepository(q Querier) *BillRepo {
	return &BillRepo{q: q}
}

// Create inserta la factura. No existe update: el registro es append-only.
func (r *BillRepo) Create(bill *entity.Bill) error {
	lines, err := json.Marshal(bill.Lines)
	if err != nil {
		return fmt.Errorf("marshal bill lines: %w", err)
	}
	query := `
		INSERT INTO bills (id, lines, total, created_at)
		VALUES ($1, $2, $3, $4)`
	if _, err := r.q.Exec(context.Background(), query,
		bill.ID, lines, bill.Total, bill.Timestamp,
	); err != nil {
		return fmt.Errorf("insert bill: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por id. nil si no existe.
func (r *BillRepo) GetByID(id string) (*entity.Bill, error) {
	query := `SELECT id, lines, total, created_at FROM bills WHERE id = $1`
	bill, err := scanBill(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bill: %w", err)
	}
	return bill, nil
}

// List devuelve todas las facturas, la más reciente primero.
func (r *BillRepo) List() ([]*entity.Bill, error) {
	query := `SELECT id, lines, total, created_at FROM bills ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}
	defer rows.Close()
	var list []*entity.Bill
	for rows.Next() {
		bill, err := scanBill(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bill: %w", err)
		}
		list = append(list, bill)
	}
	return list, rows.Err()
}

func scanBill(row pgx.Row) (*entity.Bill, error) {
	var bill entity.Bill
	var lines []byte
	if err := row.Scan(&bill.ID, &lines, &bill.Total, &bill.Timestamp); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(lines, &bill.Lines); err != nil {
		return nil, fmt.Errorf("unmarshal bill lines: %w", err)
	}
	return &bill, nil
}
