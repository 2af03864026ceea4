package usecase

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dulcehorno/panaderia-api/internal/application/dto"
	"github.com/dulcehorno/panaderia-api/internal/domain"
	"github.com/dulcehorno/panaderia-api/internal/domain/entity"
	"github.com/dulcehorno/panaderia-api/internal/domain/repository"
)

// InventoryUseCase casos de uso del inventario de materias primas:
// alta, listado, restock (suma delta) y corrección directa.
type InventoryUseCase struct {
	repo repository.InventoryRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(repo repository.InventoryRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo}
}

// Create da de alta un insumo nuevo con cantidad inicial no negativa.
func (uc *InventoryUseCase) Create(in dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Amount.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if !entity.IsValidInventoryUnit(in.Unit) {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByName(in.Name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	item := &entity.InventoryItem{
		Name:        in.Name,
		Amount:      in.Amount,
		Unit:        in.Unit,
		LastUpdated: time.Now(),
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toInventoryResponse(item), nil
}

// List lista el inventario con sus timestamps de última actualización.
func (uc *InventoryUseCase) List() (*dto.InventoryListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.InventoryItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toInventoryResponse(it))
	}
	return &dto.InventoryListResponse{Items: items}, nil
}

// GetByName obtiene un insumo por nombre.
func (uc *InventoryUseCase) GetByName(name string) (*dto.InventoryItemResponse, error) {
	item, err := uc.repo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toInventoryResponse(item), nil
}

// Restock suma delta a la cantidad del insumo (amount += delta) en una sola
// sentencia, sin el ciclo leer-modificar-escribir.
func (uc *InventoryUseCase) Restock(name string, in dto.RestockRequest) (*dto.InventoryItemResponse, error) {
	if in.Delta.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.repo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.AddAmount(name, in.Delta); err != nil {
		return nil, err
	}
	return uc.GetByName(name)
}

// Correct fija la cantidad del insumo a un valor exacto (amount := value).
func (uc *InventoryUseCase) Correct(name string, in dto.CorrectAmountRequest) (*dto.InventoryItemResponse, error) {
	if in.Amount.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.repo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.SetAmount(name, in.Amount); err != nil {
		return nil, err
	}
	return uc.GetByName(name)
}

// Delete elimina un insumo por nombre.
func (uc *InventoryUseCase) Delete(name string) error {
	return uc.repo.Delete(name)
}

func toInventoryResponse(it *entity.InventoryItem) *dto.InventoryItemResponse {
	if it == nil {
		return nil
	}
	return &dto.InventoryItemResponse{
		Name:        it.Name,
		Amount:      it.Amount,
		Unit:        it.Unit,
		LastUpdated: it.LastUpdated,
	}
}
