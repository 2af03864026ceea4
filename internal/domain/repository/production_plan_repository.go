package repository

import "github.com/dulcehorno/panaderia-api/internal/domain/entity"

// ProductionPlanRepository define el puerto de persistencia para ProductionPlan.
// Save reemplaza el conjunto completo de líneas de la fecha (semántica de
// documento completo, un plan por día).
type ProductionPlanRepository interface {
	Save(plan *entity.ProductionPlan) error
	GetByDate(date string) (*entity.ProductionPlan, error)
	List() ([]*entity.ProductionPlan, error)
}
