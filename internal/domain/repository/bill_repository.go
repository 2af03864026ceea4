package repository

import "github.com/dulcehorno/panaderia-api/internal/domain/entity"

// BillRepository define el puerto de persistencia para Bill.
// Las facturas son inmutables: solo se insertan y se listan (registro append-only).
type BillRepository interface {
	Create(bill *entity.Bill) error
	GetByID(id string) (*entity.Bill, error)
	List() ([]*entity.Bill, error)
}
