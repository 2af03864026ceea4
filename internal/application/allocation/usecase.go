package allocation

import (
	"github.com/dulcehorno/panaderia-api/internal/application/dto"
	"github.com/dulcehorno/panaderia-api/internal/domain/baking"
	"github.com/dulcehorno/panaderia-api/internal/domain/entity"
	"github.com/dulcehorno/panaderia-api/internal/domain/repository"
	"github.com/dulcehorno/panaderia-api/pkg/logger"
)

// UseCase calcula la asignación diaria de ingredientes: lee el plan de la
// fecha, resuelve cada receta referenciada y delega la suma al servicio de
// dominio baking.Allocate. Solo lectura, sin efectos secundarios.
type UseCase struct {
	planRepo   repository.ProductionPlanRepository
	recipeRepo repository.RecipeRepository
	pdf        PDFGenerator
	log        *logger.Logger
}

// PDFGenerator puerto de exportación: tabla de dos columnas (ingrediente, cantidad).
type PDFGenerator interface {
	GenerateAllocationPDF(date string, items []baking.IngredientTotal) ([]byte, error)
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	planRepo repository.ProductionPlanRepository,
	recipeRepo repository.RecipeRepository,
	pdf PDFGenerator,
	log *logger.Logger,
) *UseCase {
	return &UseCase{planRepo: planRepo, recipeRepo: recipeRepo, pdf: pdf, log: log}
}

// Calculate devuelve la demanda total de ingredientes de una fecha.
// Fecha sin plan → resultado vacío. Recetas ausentes o datos malformados se
// omiten con warning en el log y en la respuesta, sin abortar el cálculo.
func (uc *UseCase) Calculate(date string) (*dto.AllocationResponse, error) {
	plan, err := uc.planRepo.GetByDate(date)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return &dto.AllocationResponse{Date: date, Items: []dto.IngredientTotalDTO{}}, nil
	}

	recipes := make(map[string]*entity.Recipe, len(plan.Lines))
	for _, line := range plan.Lines {
		if _, seen := recipes[line.Recipe]; seen {
			continue
		}
		recipe, err := uc.recipeRepo.GetByName(line.Recipe)
		if err != nil {
			return nil, err
		}
		if recipe != nil {
			recipes[line.Recipe] = recipe
		}
	}

	totals, warnings := baking.Allocate(plan.Lines, recipes)
	for _, w := range warnings {
		uc.log.Warn().
			Str("date", date).
			Str("recipe", w.Recipe).
			Str("ingredient", w.Ingredient).
			Str("reason", w.Reason).
			Msg("línea omitida en la asignación de ingredientes")
	}

	return toAllocationResponse(date, totals, warnings), nil
}

// ExportPDF genera el PDF de dos columnas con la asignación de la fecha.
func (uc *UseCase) ExportPDF(date string) ([]byte, error) {
	resp, err := uc.Calculate(date)
	if err != nil {
		return nil, err
	}
	items := make([]baking.IngredientTotal, 0, len(resp.Items))
	for _, it := range resp.Items {
		items = append(items, baking.IngredientTotal{Name: it.Name, Amount: it.Amount})
	}
	return uc.pdf.GenerateAllocationPDF(date, items)
}

func toAllocationResponse(date string, totals []baking.IngredientTotal, warnings []baking.AllocationWarning) *dto.AllocationResponse {
	items := make([]dto.IngredientTotalDTO, 0, len(totals))
	for _, t := range totals {
		items = append(items, dto.IngredientTotalDTO{Name: t.Name, Amount: t.Amount})
	}
	warns := make([]dto.AllocationWarningDTO, 0, len(warnings))
	for _, w := range warnings {
		warns = append(warns, dto.AllocationWarningDTO{Recipe: w.Recipe, Ingredient: w.Ingredient, Reason: w.Reason})
	}
	if len(warns) == 0 {
		warns = nil
	}
	return &dto.AllocationResponse{Date: date, Items: items, Warnings: warns}
}
