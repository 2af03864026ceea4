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

var _ repository.ProductionPlanRepository = (*ProductionPlanRepo)(nil)

// ProductionPlanRepo implementación de ProductionPlanRepository sobre PostgreSQL.
// Las líneas del plan se guardan como JSONB: el plan de un día es un documento
// completo que se reemplaza al guardar.
type ProductionPlanRepo struct {
	q Querier
}

func NewProductionPlanRepository(q Querier) *ProductionPlanRepo {
	return &ProductionPlanRepo{q: q}
}

// Save reemplaza el plan completo de la fecha (upsert por fecha).
func (r *ProductionPlanRepo) Save(plan *entity.ProductionPlan) error {
	lines, err := json.Marshal(plan.Lines)
	if err != nil {
		return fmt.Errorf("marshal plan lines: %w", err)
	}
	query := `
		INSERT INTO production_plans (plan_date, lines, last_updated)
		VALUES ($1, $2, now())
		ON CONFLICT (plan_date)
		DO UPDATE SET lines = EXCLUDED.lines, last_updated = now()`
	if _, err := r.q.Exec(context.Background(), query, plan.Date, lines); err != nil {
		return fmt.Errorf("save production plan: %w", err)
	}
	return nil
}

// GetByDate obtiene el plan de la fecha. nil si no hay plan.
func (r *ProductionPlanRepo) GetByDate(date string) (*entity.ProductionPlan, error) {
	query := `SELECT plan_date, lines FROM production_plans WHERE plan_date = $1`
	plan, err := scanPlan(r.q.QueryRow(context.Background(), query, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get production plan: %w", err)
	}
	return plan, nil
}

// List devuelve todos los planes ordenados por fecha ascendente.
func (r *ProductionPlanRepo) List() ([]*entity.ProductionPlan, error) {
	query := `SELECT plan_date, lines FROM production_plans ORDER BY plan_date`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list production plans: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductionPlan
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan production plan: %w", err)
		}
		list = append(list, plan)
	}
	return list, rows.Err()
}

func scanPlan(row pgx.Row) (*entity.ProductionPlan, error) {
	var plan entity.ProductionPlan
	var lines []byte
	if err := row.Scan(&plan.Date, &lines); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(lines, &plan.Lines); err != nil {
		return nil, fmt.Errorf("unmarshal plan lines: %w", err)
	}
	return &plan, nil
}
