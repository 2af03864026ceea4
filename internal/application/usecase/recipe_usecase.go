package usecase

import (
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/dulcehorno/panaderia-api/internal/application/dto"
	"github.com/dulcehorno/panaderia-api/internal/domain"
	"github.com/dulcehorno/panaderia-api/internal/domain/baking"
	"github.com/dulcehorno/panaderia-api/internal/domain/entity"
	"github.com/dulcehorno/panaderia-api/internal/domain/repository"
)

// RecipeUseCase casos de uso CRUD del catálogo de recetas más el escalado a N piezas.
// Las cantidades de ingredientes se normalizan a "por pieza" al persistir.
type RecipeUseCase struct {
	repo repository.RecipeRepository
}

// NewRecipeUseCase construye el caso de uso.
func NewRecipeUseCase(repo repository.RecipeRepository) *RecipeUseCase {
	return &RecipeUseCase{repo: repo}
}

// Create valida y persiste una receta nueva. Las cantidades ingresadas son
// para el total de piezas; aquí se dividen entre Pieces antes de guardar.
func (uc *RecipeUseCase) Create(in dto.CreateRecipeRequest) (*dto.RecipeResponse, error) {
	if err := validateRecipeInput(in.Name, in.Description, in.Pieces, in.Ingredients); err != nil {
		return nil, err
	}
	existing, _ := uc.repo.GetByName(in.Name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	normalized, err := baking.NormalizePerPiece(toIngredientLines(in.Ingredients), in.Pieces)
	if err != nil {
		return nil, err
	}
	recipe := &entity.Recipe{
		Name:        in.Name,
		Description: in.Description,
		Pieces:      in.Pieces,
		Ingredients: normalized,
		LastUpdated: time.Now(),
	}
	if err := uc.repo.Create(recipe); err != nil {
		return nil, err
	}
	return toRecipeResponse(recipe), nil
}

// GetByName obtiene una receta por nombre.
func (uc *RecipeUseCase) GetByName(name string) (*dto.RecipeResponse, error) {
	recipe, err := uc.repo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, nil
	}
	return toRecipeResponse(recipe), nil
}

// List lista el catálogo completo.
func (uc *RecipeUseCase) List() (*dto.RecipeListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.RecipeResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toRecipeResponse(r))
	}
	return &dto.RecipeListResponse{Items: items}, nil
}

// Update reemplaza el documento completo de la receta (descripción, piezas e ingredientes).
func (uc *RecipeUseCase) Update(name string, in dto.UpdateRecipeRequest) (*dto.RecipeResponse, error) {
	recipe, err := uc.repo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, nil
	}
	if err := validateRecipeInput(name, in.Description, in.Pieces, in.Ingredients); err != nil {
		return nil, err
	}
	normalized, err := baking.NormalizePerPiece(toIngredientLines(in.Ingredients), in.Pieces)
	if err != nil {
		return nil, err
	}
	recipe.Description = in.Description
	recipe.Pieces = in.Pieces
	recipe.Ingredients = normalized
	recipe.LastUpdated = time.Now()
	if err := uc.repo.Update(recipe); err != nil {
		return nil, err
	}
	return toRecipeResponse(recipe), nil
}

// Delete elimina una receta por nombre. Las líneas de planes que la referencien
// quedan huérfanas: la asignación de ingredientes las omite con warning.
func (uc *RecipeUseCase) Delete(name string) error {
	return uc.repo.Delete(name)
}

// Scale devuelve la lista de ingredientes escalada a N piezas (qty × N, 2 decimales).
func (uc *RecipeUseCase) Scale(name string, n decimal.Decimal) (*dto.ScaledRecipeResponse, error) {
	recipe, err := uc.repo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, domain.ErrNotFound
	}
	scaled, err := baking.Scale(recipe.Ingredients, n)
	if err != nil {
		return nil, err
	}
	return &dto.ScaledRecipeResponse{
		Name:        recipe.Name,
		Pieces:      n,
		Ingredients: toIngredientDTOs(scaled),
	}, nil
}

// validateRecipeInput aplica las reglas del formulario original: campos completos,
// cantidades positivas, piezas positivas y nombres sin dígitos.
func validateRecipeInput(name, description string, pieces int, ingredients []dto.IngredientLineDTO) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(description) == "" {
		return domain.ErrInvalidInput
	}
	if pieces <= 0 {
		return domain.ErrInvalidInput
	}
	if containsDigit(name) {
		return domain.ErrInvalidInput
	}
	if len(ingredients) == 0 {
		return domain.ErrInvalidInput
	}
	for _, ing := range ingredients {
		if strings.TrimSpace(ing.Name) == "" || containsDigit(ing.Name) {
			return domain.ErrInvalidInput
		}
		if ing.Qty.LessThanOrEqual(decimal.Zero) {
			return domain.ErrInvalidInput
		}
		if !entity.IsValidIngredientUnit(ing.Unit) {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func toIngredientLines(in []dto.IngredientLineDTO) []entity.IngredientLine {
	lines := make([]entity.IngredientLine, 0, len(in))
	for _, i := range in {
		lines = append(lines, entity.IngredientLine{Name: i.Name, Qty: i.Qty, Unit: i.Unit})
	}
	return lines
}

func toIngredientDTOs(in []entity.IngredientLine) []dto.IngredientLineDTO {
	out := make([]dto.IngredientLineDTO, 0, len(in))
	for _, i := range in {
		out = append(out, dto.IngredientLineDTO{Name: i.Name, Qty: i.Qty, Unit: i.Unit})
	}
	return out
}

func toRecipeResponse(r *entity.Recipe) *dto.RecipeResponse {
	if r == nil {
		return nil
	}
	return &dto.RecipeResponse{
		Name:        r.Name,
		Description: r.Description,
		Pieces:      r.Pieces,
		Ingredients: toIngredientDTOs(r.Ingredients),
		LastUpdated: r.LastUpdated,
	}
}
