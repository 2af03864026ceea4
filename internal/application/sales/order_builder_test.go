package sales_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dulcehorno/panaderia-api/internal/application/dto"
	"github.com/dulcehorno/panaderia-api/internal/application/sales"
	"github.com/dulcehorno/panaderia-api/internal/domain"
	"github.com/dulcehorno/panaderia-api/internal/domain/entity"
	"github.com/dulcehorno/panaderia-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

type fakePriceRepo struct {
	prices map[string]decimal.Decimal
}

func newFakePriceRepo(prices map[string]string) *fakePriceRepo {
	m := make(map[string]decimal.Decimal, len(prices))
	for k, v := range prices {
		m[k] = dec(v)
	}
	return &fakePriceRepo{prices: m}
}

func (f *fakePriceRepo) Create(entry *entity.PriceEntry) error {
	if _, ok := f.prices[entry.RecipeName]; ok {
		return domain.ErrDuplicate
	}
	f.prices[entry.RecipeName] = entry.Price
	return nil
}

func (f *fakePriceRepo) GetByRecipe(recipeName string) (*entity.PriceEntry, error) {
	p, ok := f.prices[recipeName]
	if !ok {
		return nil, nil
	}
	return &entity.PriceEntry{RecipeName: recipeName, Price: p}, nil
}

func (f *fakePriceRepo) List() ([]*entity.PriceEntry, error) {
	var out []*entity.PriceEntry
	for name, p := range f.prices {
		out = append(out, &entity.PriceEntry{RecipeName: name, Price: p})
	}
	return out, nil
}

type fakeStockRepo struct {
	mu     sync.Mutex
	levels map[string]decimal.Decimal
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{levels: make(map[string]decimal.Decimal)}
}

func (f *fakeStockRepo) getOrSeed(name string, seed int64) *entity.StockLevel {
	if _, ok := f.levels[name]; !ok {
		f.levels[name] = decimal.NewFromInt(seed)
	}
	return &entity.StockLevel{RecipeName: name, Quantity: f.levels[name], UpdatedAt: time.Now()}
}

func (f *fakeStockRepo) GetOrSeed(name string, seed int64) (*entity.StockLevel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.getOrSeed(name, seed), nil
}

func (f *fakeStockRepo) GetForUpdate(name string, seed int64) (*entity.StockLevel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.getOrSeed(name, seed), nil
}

func (f *fakeStockRepo) Upsert(level *entity.StockLevel) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.levels[level.RecipeName] = level.Quantity
	return nil
}

func (f *fakeStockRepo) List() ([]*entity.StockLevel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.StockLevel
	for name, q := range f.levels {
		out = append(out, &entity.StockLevel{RecipeName: name, Quantity: q})
	}
	return out, nil
}

func (f *fakeStockRepo) quantity(name string) decimal.Decimal {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.levels[name]
}

type fakeBillRepo struct {
	mu        sync.Mutex
	bills     []*entity.Bill
	failError error
}

func (f *fakeBillRepo) Create(bill *entity.Bill) error {
	if f.failError != nil {
		return f.failError
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bills = append(f.bills, bill)
	return nil
}

func (f *fakeBillRepo) GetByID(id string) (*entity.Bill, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bills {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBillRepo) List() ([]*entity.Bill, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bills, nil
}

// fakeTxRunner simula la transacción: toma una foto del stock antes de
// ejecutar y la restaura si la función falla (rollback).
type fakeTxRunner struct {
	billRepo  *fakeBillRepo
	stockRepo *fakeStockRepo
}

func (f *fakeTxRunner) RunSettlement(_ context.Context, fn func(
	billRepo repository.BillRepository,
	stockRepo repository.StockRepository,
) error) error {
	snapshot := make(map[string]decimal.Decimal, len(f.stockRepo.levels))
	f.stockRepo.mu.Lock()
	for k, v := range f.stockRepo.levels {
		snapshot[k] = v
	}
	f.stockRepo.mu.Unlock()

	if err := fn(f.billRepo, f.stockRepo); err != nil {
		f.stockRepo.mu.Lock()
		f.stockRepo.levels = snapshot
		f.stockRepo.mu.Unlock()
		return err
	}
	return nil
}

type fakePublisher struct {
	mu       sync.Mutex
	received [][]string
	failWith error
}

func (f *fakePublisher) PublishStockChanged(_ context.Context, recipes []string) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.received = append(f.received, recipes)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests OrderBuilder
// ──────────────────────────────────────────────────────────────────────────────

const testStockSeed = 7

func newBuilder(prices map[string]string) (*sales.OrderBuilder, *fakeStockRepo) {
	stockRepo := newFakeStockRepo()
	return sales.NewOrderBuilder(newFakePriceRepo(prices), stockRepo, testStockSeed), stockRepo
}

// Agregar una línea acumula en el pedido de la caja sin tocar el stock.
func TestOrderBuilder_AddLineNoMutaStock(t *testing.T) {
	builder, stockRepo := newBuilder(map[string]string{"Pan": "3.00"})

	state, err := builder.AddLine("caja1", dto.AddLineRequest{RecipeName: "Pan", Quantity: 2})
	require.NoError(t, err)

	require.Len(t, state.Lines, 1)
	assert.Equal(t, 2, state.Lines[0].Quantity)
	assert.True(t, state.Total.Equal(dec("6.00")), "2 × 3.00 debe dar 6.00, se obtuvo %s", state.Total)
	assert.True(t, stockRepo.quantity("Pan").Equal(dec("7")),
		"agregar líneas no debe escribir stock; solo la liquidación decrementa")
}

// Receta sin precio de venta no puede agregarse.
func TestOrderBuilder_RecetaSinPrecio(t *testing.T) {
	builder, _ := newBuilder(map[string]string{})

	_, err := builder.AddLine("caja1", dto.AddLineRequest{RecipeName: "Pan", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Cantidad mayor al stock disponible se rechaza sin mutar el pedido.
func TestOrderBuilder_StockInsuficiente(t *testing.T) {
	builder, _ := newBuilder(map[string]string{"Pan": "3.00"})

	_, err := builder.AddLine("caja1", dto.AddLineRequest{RecipeName: "Pan", Quantity: 8})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	state := builder.State("caja1")
	assert.Empty(t, state.Lines, "el pedido debe quedar intacto tras el rechazo")
}

// Las reservas cuentan de forma global entre cajas: con stock 7, una caja que
// reservó 5 deja solo 2 disponibles para las demás.
func TestOrderBuilder_ReservaGlobalEntreCajas(t *testing.T) {
	builder, _ := newBuilder(map[string]string{"Pan": "3.00"})

	_, err := builder.AddLine("caja1", dto.AddLineRequest{RecipeName: "Pan", Quantity: 5})
	require.NoError(t, err)

	_, err = builder.AddLine("caja2", dto.AddLineRequest{RecipeName: "Pan", Quantity: 5})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock,
		"la segunda caja no puede reservar 5 cuando quedan 2 disponibles")

	_, err = builder.AddLine("caja2", dto.AddLineRequest{RecipeName: "Pan", Quantity: 2})
	assert.NoError(t, err, "reservar lo que queda sí debe funcionar")
}

// Dos cajas agregando en paralelo contra el mismo stock: exactamente una gana.
func TestOrderBuilder_AgregadosConcurrentes(t *testing.T) {
	builder, _ := newBuilder(map[string]string{"Pan": "3.00"})

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			register := "caja1"
			if idx == 1 {
				register = "caja2"
			}
			_, errs[idx] = builder.AddLine(register, dto.AddLineRequest{RecipeName: "Pan", Quantity: 5})
		}(i)
	}
	wg.Wait()

	failures := 0
	for _, err := range errs {
		if err != nil {
			assert.ErrorIs(t, err, domain.ErrInsufficientStock)
			failures++
		}
	}
	assert.Equal(t, 1, failures,
		"con stock 7 y dos agregados de 5, exactamente uno debe fallar")
}

// Vaciar el pedido libera las reservas para otras cajas.
func TestOrderBuilder_ClearLiberaReservas(t *testing.T) {
	builder, _ := newBuilder(map[string]string{"Pan": "3.00"})

	_, err := builder.AddLine("caja1", dto.AddLineRequest{RecipeName: "Pan", Quantity: 5})
	require.NoError(t, err)

	builder.Clear("caja1")

	_, err = builder.AddLine("caja2", dto.AddLineRequest{RecipeName: "Pan", Quantity: 5})
	assert.NoError(t, err, "tras vaciar caja1 sus reservas deben quedar liberadas")

	state := builder.State("caja1")
	assert.Empty(t, state.Lines)
}

// Cantidades no positivas y datos incompletos se rechazan.
func TestOrderBuilder_EntradaInvalida(t *testing.T) {
	builder, _ := newBuilder(map[string]string{"Pan": "3.00"})

	_, err := builder.AddLine("caja1", dto.AddLineRequest{RecipeName: "Pan", Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = builder.AddLine("caja1", dto.AddLineRequest{RecipeName: "", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = builder.AddLine("", dto.AddLineRequest{RecipeName: "Pan", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
