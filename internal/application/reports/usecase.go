package reports

import (
	"github.com/dulcehorno/panaderia-api/internal/domain"
	"github.com/dulcehorno/panaderia-api/internal/domain/entity"
	"github.com/dulcehorno/panaderia-api/internal/domain/repository"
)

// PDFGenerator puerto de los reportes tabulares descargables.
type PDFGenerator interface {
	GenerateRecipePDF(recipe *entity.Recipe) ([]byte, error)
	GenerateInventoryPDF(items []*entity.InventoryItem) ([]byte, error)
	GenerateProductionPDF(plans []*entity.ProductionPlan) ([]byte, error)
}

// UseCase exportaciones PDF: detalle de receta, foto del inventario e
// historial de producción. Solo lectura, sin mutaciones.
type UseCase struct {
	recipeRepo repository.RecipeRepository
	invRepo    repository.InventoryRepository
	planRepo   repository.ProductionPlanRepository
	pdf        PDFGenerator
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	recipeRepo repository.RecipeRepository,
	invRepo repository.InventoryRepository,
	planRepo repository.ProductionPlanRepository,
	pdf PDFGenerator,
) *UseCase {
	return &UseCase{recipeRepo: recipeRepo, invRepo: invRepo, planRepo: planRepo, pdf: pdf}
}

// RecipePDF genera el PDF de detalle de una receta.
func (uc *UseCase) RecipePDF(name string) ([]byte, error) {
	recipe, err := uc.recipeRepo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, domain.ErrNotFound
	}
	return uc.pdf.GenerateRecipePDF(recipe)
}

// InventoryPDF genera la foto actual del inventario.
func (uc *UseCase) InventoryPDF() ([]byte, error) {
	items, err := uc.invRepo.List()
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateInventoryPDF(items)
}

// ProductionHistoryPDF genera el historial completo de producción.
func (uc *UseCase) ProductionHistoryPDF() ([]byte, error) {
	plans, err := uc.planRepo.List()
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateProductionPDF(plans)
}
