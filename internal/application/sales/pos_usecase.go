package sales

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dulcehorno/panaderia-api/internal/application/dto"
	"github.com/dulcehorno/panaderia-api/internal/domain"
	"github.com/dulcehorno/panaderia-api/internal/domain/entity"
	"github.com/dulcehorno/panaderia-api/internal/domain/repository"
	"github.com/dulcehorno/panaderia-api/pkg/logger"
)

// POSUseCase operaciones de consulta del punto de venta: artículos vendibles
// (recetas con precio y stock) y alta de precios. El precio es inmutable una
// vez creado dentro de este flujo.
type POSUseCase struct {
	recipeRepo repository.RecipeRepository
	priceRepo  repository.PriceRepository
	stockRepo  repository.StockRepository
	billRepo   repository.BillRepository
	stockSeed  int64
	log        *logger.Logger
}

// NewPOSUseCase construye el caso de uso.
func NewPOSUseCase(
	recipeRepo repository.RecipeRepository,
	priceRepo repository.PriceRepository,
	stockRepo repository.StockRepository,
	billRepo repository.BillRepository,
	stockSeed int64,
	log *logger.Logger,
) *POSUseCase {
	return &POSUseCase{
		recipeRepo: recipeRepo,
		priceRepo:  priceRepo,
		stockRepo:  stockRepo,
		billRepo:   billRepo,
		stockSeed:  stockSeed,
		log:        log,
	}
}

// CreatePrice da de alta el precio de venta de una receta. No hay edición:
// una entrada existente devuelve ErrDuplicate.
func (uc *POSUseCase) CreatePrice(in dto.CreatePriceRequest) (*dto.PriceResponse, error) {
	if in.RecipeName == "" || in.Price.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	recipe, err := uc.recipeRepo.GetByName(in.RecipeName)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, domain.ErrNotFound
	}
	existing, _ := uc.priceRepo.GetByRecipe(in.RecipeName)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	entry := &entity.PriceEntry{
		RecipeName: in.RecipeName,
		Price:      in.Price,
		CreatedAt:  time.Now(),
	}
	if err := uc.priceRepo.Create(entry); err != nil {
		return nil, err
	}
	return &dto.PriceResponse{RecipeName: entry.RecipeName, Price: entry.Price}, nil
}

// ListItems arma la vista de venta: por cada receta del catálogo, su precio
// y su stock disponible (sembrado al valor por defecto si no existe). Las
// recetas sin precio se omiten con warning, igual que en la pantalla original.
func (uc *POSUseCase) ListItems() (*dto.POSItemListResponse, error) {
	names, err := uc.recipeRepo.ListNames()
	if err != nil {
		return nil, err
	}
	items := make([]dto.POSItemResponse, 0, len(names))
	for _, name := range names {
		price, err := uc.priceRepo.GetByRecipe(name)
		if err != nil {
			return nil, err
		}
		if price == nil {
			uc.log.Warn().Str("recipe", name).Msg("receta sin entrada de precio, omitida del punto de venta")
			continue
		}
		level, err := uc.stockRepo.GetOrSeed(name, uc.stockSeed)
		if err != nil {
			return nil, err
		}
		items = append(items, dto.POSItemResponse{
			RecipeName: name,
			Price:      price.Price,
			Quantity:   level.Quantity,
		})
	}
	return &dto.POSItemListResponse{Items: items}, nil
}

// ListBills lista las facturas históricas con el total agregado de ventas.
func (uc *POSUseCase) ListBills() (*dto.BillListResponse, error) {
	bills, err := uc.billRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.BillResponse, 0, len(bills))
	grand := decimal.Zero
	for _, b := range bills {
		items = append(items, *toBillResponse(b))
		grand = grand.Add(b.Total)
	}
	return &dto.BillListResponse{Items: items, GrandTotal: grand}, nil
}
