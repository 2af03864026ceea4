package sales

import (
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dulcehorno/panaderia-api/internal/application/dto"
	"github.com/dulcehorno/panaderia-api/internal/domain"
	"github.com/dulcehorno/panaderia-api/internal/domain/entity"
	"github.com/dulcehorno/panaderia-api/internal/domain/repository"
)

// Formato local: 10 dígitos empezando en 0.
var phonePattern = regexp.MustCompile(`^0[0-9]{9}$`)

// SubOrderUseCase pedidos anticipados de clientes, agrupados por teléfono.
// El precio unitario sale de la entrada de precio de la receta o del valor
// por defecto configurado si no existe.
type SubOrderUseCase struct {
	orderRepo     repository.SubOrderRepository
	priceRepo     repository.PriceRepository
	recipeRepo    repository.RecipeRepository
	defaultAmount decimal.Decimal
}

// NewSubOrderUseCase construye el caso de uso.
func NewSubOrderUseCase(
	orderRepo repository.SubOrderRepository,
	priceRepo repository.PriceRepository,
	recipeRepo repository.RecipeRepository,
	defaultAmount int64,
) *SubOrderUseCase {
	return &SubOrderUseCase{
		orderRepo:     orderRepo,
		priceRepo:     priceRepo,
		recipeRepo:    recipeRepo,
		defaultAmount: decimal.NewFromInt(defaultAmount),
	}
}

// Create valida y guarda un pedido anticipado con id generado.
func (uc *SubOrderUseCase) Create(in dto.CreateSubOrderRequest) (*dto.SubOrderResponse, error) {
	if !phonePattern.MatchString(in.Phone) {
		return nil, domain.ErrInvalidPhone
	}
	if in.RecipeName == "" || in.DateAndTime == "" || in.Quantity.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	recipe, err := uc.recipeRepo.GetByName(in.RecipeName)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, domain.ErrNotFound
	}

	amount := uc.defaultAmount
	if price, _ := uc.priceRepo.GetByRecipe(in.RecipeName); price != nil {
		amount = price.Price
	}

	order := &entity.SubOrder{
		ID:          uuid.New().String(),
		Phone:       in.Phone,
		RecipeName:  in.RecipeName,
		DateAndTime: in.DateAndTime,
		Quantity:    in.Quantity,
		Amount:      amount,
		Total:       amount.Mul(in.Quantity).Round(2),
		CreatedAt:   time.Now(),
	}
	if err := uc.orderRepo.Create(order); err != nil {
		return nil, err
	}
	return toSubOrderResponse(order), nil
}

// List devuelve todos los subpedidos aplanados (todas las cajas de teléfono).
func (uc *SubOrderUseCase) List() (*dto.SubOrderListResponse, error) {
	orders, err := uc.orderRepo.List()
	if err != nil {
		return nil, err
	}
	return toSubOrderList(orders), nil
}

// ListByPhone devuelve los subpedidos de un teléfono.
func (uc *SubOrderUseCase) ListByPhone(phone string) (*dto.SubOrderListResponse, error) {
	if !phonePattern.MatchString(phone) {
		return nil, domain.ErrInvalidPhone
	}
	orders, err := uc.orderRepo.ListByPhone(phone)
	if err != nil {
		return nil, err
	}
	return toSubOrderList(orders), nil
}

// Delete elimina los pedidos que coincidan con teléfono + receta.
// Devuelve ErrNotFound si ninguno coincide.
func (uc *SubOrderUseCase) Delete(in dto.DeleteSubOrderRequest) error {
	if !phonePattern.MatchString(in.Phone) {
		return domain.ErrInvalidPhone
	}
	if in.RecipeName == "" {
		return domain.ErrInvalidInput
	}
	n, err := uc.orderRepo.DeleteByPhoneAndRecipe(in.Phone, in.RecipeName)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func toSubOrderList(orders []*entity.SubOrder) *dto.SubOrderListResponse {
	items := make([]dto.SubOrderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, *toSubOrderResponse(o))
	}
	return &dto.SubOrderListResponse{Items: items}
}

func toSubOrderResponse(o *entity.SubOrder) *dto.SubOrderResponse {
	if o == nil {
		return nil
	}
	return &dto.SubOrderResponse{
		ID:          o.ID,
		Phone:       o.Phone,
		RecipeName:  o.RecipeName,
		DateAndTime: o.DateAndTime,
		Quantity:    o.Quantity,
		Amount:      o.Amount,
		Total:       o.Total,
		CreatedAt:   o.CreatedAt,
	}
}
