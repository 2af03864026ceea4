package usecase

import (
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/dulcehorno/panaderia-api/internal/application/dto"
	"github.com/dulcehorno/panaderia-api/internal/domain"
	"github.com/dulcehorno/panaderia-api/internal/domain/entity"
	"github.com/dulcehorno/panaderia-api/internal/domain/repository"
)

var dateKeyPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ProductionUseCase casos de uso del plan de producción diario:
// guardar (reemplazo completo por fecha), consultar por fecha e historial.
type ProductionUseCase struct {
	planRepo   repository.ProductionPlanRepository
	recipeRepo repository.RecipeRepository
}

// NewProductionUseCase construye el caso de uso.
func NewProductionUseCase(planRepo repository.ProductionPlanRepository, recipeRepo repository.RecipeRepository) *ProductionUseCase {
	return &ProductionUseCase{planRepo: planRepo, recipeRepo: recipeRepo}
}

// Save valida y persiste el plan de una fecha, reemplazando cualquier línea previa.
// Las recetas referenciadas deben existir al momento de guardar; si luego se
// borran, las líneas quedan huérfanas y la asignación las omite con warning.
func (uc *ProductionUseCase) Save(date string, in dto.SavePlanRequest) (*dto.PlanResponse, error) {
	if !dateKeyPattern.MatchString(date) {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	lines := make([]entity.PlanLine, 0, len(in.Lines))
	for _, l := range in.Lines {
		if l.Recipe == "" || l.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		recipe, err := uc.recipeRepo.GetByName(l.Recipe)
		if err != nil {
			return nil, err
		}
		if recipe == nil {
			return nil, domain.ErrNotFound
		}
		lines = append(lines, entity.PlanLine{Recipe: l.Recipe, Amount: l.Amount})
	}
	plan := &entity.ProductionPlan{Date: date, Lines: lines}
	if err := uc.planRepo.Save(plan); err != nil {
		return nil, err
	}
	return toPlanResponse(plan), nil
}

// GetByDate obtiene el plan de una fecha. Fecha sin plan → nil, sin error.
func (uc *ProductionUseCase) GetByDate(date string) (*dto.PlanResponse, error) {
	if !dateKeyPattern.MatchString(date) {
		return nil, domain.ErrInvalidInput
	}
	plan, err := uc.planRepo.GetByDate(date)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, nil
	}
	return toPlanResponse(plan), nil
}

// History lista todos los planes registrados, ordenados por fecha.
func (uc *ProductionUseCase) History() (*dto.PlanHistoryResponse, error) {
	plans, err := uc.planRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.PlanResponse, 0, len(plans))
	for _, p := range plans {
		items = append(items, *toPlanResponse(p))
	}
	return &dto.PlanHistoryResponse{Items: items}, nil
}

func toPlanResponse(p *entity.ProductionPlan) *dto.PlanResponse {
	if p == nil {
		return nil
	}
	lines := make([]dto.PlanLineDTO, 0, len(p.Lines))
	for _, l := range p.Lines {
		lines = append(lines, dto.PlanLineDTO{Recipe: l.Recipe, Amount: l.Amount})
	}
	return &dto.PlanResponse{Date: p.Date, Lines: lines}
}
