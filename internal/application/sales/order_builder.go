package sales

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/dulcehorno/panaderia-api/internal/application/dto"
	"github.com/dulcehorno/panaderia-api/internal/domain"
	"github.com/dulcehorno/panaderia-api/internal/domain/entity"
	"github.com/dulcehorno/panaderia-api/internal/domain/repository"
)

// OrderBuilder acumula el pedido en curso de cada caja como reserva local,
// sin escribir stock: la liquidación es la única autoridad que decrementa.
// Las reservas cuentan de forma global por receta, así dos cajas no pueden
// comprometer entre ambas más unidades de las disponibles. El mutex
// serializa los agregados concurrentes contra la misma receta.
type OrderBuilder struct {
	mu        sync.Mutex
	orders    map[string][]entity.BillLine // líneas por caja
	reserved  map[string]int               // unidades reservadas por receta, todas las cajas
	priceRepo repository.PriceRepository
	stockRepo repository.StockRepository
	stockSeed int64
}

// NewOrderBuilder construye el acumulador de pedidos.
func NewOrderBuilder(priceRepo repository.PriceRepository, stockRepo repository.StockRepository, stockSeed int64) *OrderBuilder {
	return &OrderBuilder{
		orders:    make(map[string][]entity.BillLine),
		reserved:  make(map[string]int),
		priceRepo: priceRepo,
		stockRepo: stockRepo,
		stockSeed: stockSeed,
	}
}

// AddLine agrega una línea al pedido de la caja. La cantidad debe ser un
// entero positivo y no superar el stock disponible menos lo ya reservado;
// si no alcanza devuelve ErrInsufficientStock sin mutar nada.
func (b *OrderBuilder) AddLine(register string, in dto.AddLineRequest) (*dto.OrderStateResponse, error) {
	if register == "" || in.RecipeName == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	price, err := b.priceRepo.GetByRecipe(in.RecipeName)
	if err != nil {
		return nil, err
	}
	if price == nil {
		return nil, domain.ErrNotFound
	}

	level, err := b.stockRepo.GetOrSeed(in.RecipeName, b.stockSeed)
	if err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	available := level.Quantity.Sub(decimal.NewFromInt(int64(b.reserved[in.RecipeName])))
	if decimal.NewFromInt(int64(in.Quantity)).GreaterThan(available) {
		return nil, domain.ErrInsufficientStock
	}

	b.orders[register] = append(b.orders[register], entity.BillLine{
		Name:     in.RecipeName,
		Quantity: in.Quantity,
		Amount:   price.Price,
	})
	b.reserved[in.RecipeName] += in.Quantity

	return b.stateLocked(register), nil
}

// State devuelve el pedido en curso de una caja (líneas y total acumulado).
func (b *OrderBuilder) State(register string) *dto.OrderStateResponse {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.stateLocked(register)
}

// Clear descarta el pedido en curso de la caja y libera sus reservas.
func (b *OrderBuilder) Clear(register string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.releaseLocked(register)
}

// take extrae las líneas de la caja para liquidarlas, liberando reservas.
// Si la liquidación falla, el caller debe devolverlas con restore.
func (b *OrderBuilder) take(register string) []entity.BillLine {
	b.mu.Lock()
	defer b.mu.Unlock()
	lines := b.orders[register]
	b.releaseLocked(register)
	return lines
}

// restore reinstala las líneas de una liquidación fallida para permitir reintento.
func (b *OrderBuilder) restore(register string, lines []entity.BillLine) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.orders[register] = lines
	for _, l := range lines {
		b.reserved[l.Name] += l.Quantity
	}
}

func (b *OrderBuilder) releaseLocked(register string) {
	for _, l := range b.orders[register] {
		b.reserved[l.Name] -= l.Quantity
		if b.reserved[l.Name] <= 0 {
			delete(b.reserved, l.Name)
		}
	}
	delete(b.orders, register)
}

func (b *OrderBuilder) stateLocked(register string) *dto.OrderStateResponse {
	lines := b.orders[register]
	out := make([]dto.OrderLineDTO, 0, len(lines))
	total := decimal.Zero
	for _, l := range lines {
		out = append(out, dto.OrderLineDTO{Name: l.Name, Quantity: l.Quantity, Amount: l.Amount})
		total = total.Add(l.Total())
	}
	return &dto.OrderStateResponse{Register: register, Lines: out, Total: total}
}
