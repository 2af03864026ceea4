package repository

import "github.com/dulcehorno/panaderia-api/internal/domain/entity"

// SubOrderRepository define el puerto de persistencia para SubOrder.
// Los pedidos se agrupan por teléfono y se eliminan por teléfono + receta.
type SubOrderRepository interface {
	Create(order *entity.SubOrder) error
	List() ([]*entity.SubOrder, error)
	ListByPhone(phone string) ([]*entity.SubOrder, error)
	DeleteByPhoneAndRecipe(phone, recipeName string) (int, error)
}
