package sales_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dulcehorno/panaderia-api/internal/application/dto"
	"github.com/dulcehorno/panaderia-api/internal/application/sales"
	"github.com/dulcehorno/panaderia-api/internal/domain"
	"github.com/dulcehorno/panaderia-api/internal/domain/entity"
)

// fakeCatalog catálogo de recetas con orden estable para ListItems.
type fakeCatalog struct {
	names []string
}

func (f *fakeCatalog) Create(*entity.Recipe) error { return nil }
func (f *fakeCatalog) GetByName(name string) (*entity.Recipe, error) {
	for _, n := range f.names {
		if n == name {
			return &entity.Recipe{Name: name, Pieces: 1}, nil
		}
	}
	return nil, nil
}
func (f *fakeCatalog) List() ([]*entity.Recipe, error) { return nil, nil }
func (f *fakeCatalog) ListNames() ([]string, error)    { return f.names, nil }
func (f *fakeCatalog) Update(*entity.Recipe) error     { return nil }
func (f *fakeCatalog) Delete(string) error             { return nil }

func newPOSFixture(names []string, prices map[string]string) (*sales.POSUseCase, *fakeBillRepo) {
	billRepo := &fakeBillRepo{}
	uc := sales.NewPOSUseCase(
		&fakeCatalog{names: names},
		newFakePriceRepo(prices),
		newFakeStockRepo(),
		billRepo,
		testStockSeed,
		testLogger(),
	)
	return uc, billRepo
}

// Las recetas sin entrada de precio no aparecen en la vista de venta.
func TestPOSListItems_OmiteRecetasSinPrecio(t *testing.T) {
	uc, _ := newPOSFixture(
		[]string{"Galleta", "Pan", "Torta"},
		map[string]string{"Pan": "3.00", "Torta": "5.00"},
	)

	out, err := uc.ListItems()
	require.NoError(t, err)
	require.Len(t, out.Items, 2)

	assert.Equal(t, "Pan", out.Items[0].RecipeName)
	assert.True(t, out.Items[0].Price.Equal(dec("3.00")))
	assert.True(t, out.Items[0].Quantity.Equal(dec("7")), "stock sembrado al valor por defecto")
	assert.Equal(t, "Torta", out.Items[1].RecipeName)
}

func TestPOSCreatePrice_Duplicado(t *testing.T) {
	uc, _ := newPOSFixture([]string{"Pan"}, map[string]string{"Pan": "3.00"})

	_, err := uc.CreatePrice(dto.CreatePriceRequest{RecipeName: "Pan", Price: dec("4.00")})
	assert.Equal(t, domain.ErrDuplicate, err, "el precio es inmutable una vez creado")
}

func TestPOSCreatePrice_RecetaInexistente(t *testing.T) {
	uc, _ := newPOSFixture([]string{"Pan"}, map[string]string{})

	_, err := uc.CreatePrice(dto.CreatePriceRequest{RecipeName: "Croissant", Price: dec("2.50")})
	assert.Equal(t, domain.ErrNotFound, err)
}

func TestPOSCreatePrice_EntradaInvalida(t *testing.T) {
	uc, _ := newPOSFixture([]string{"Pan"}, map[string]string{})

	_, err := uc.CreatePrice(dto.CreatePriceRequest{RecipeName: "Pan", Price: dec("0")})
	assert.Equal(t, domain.ErrInvalidInput, err)

	_, err = uc.CreatePrice(dto.CreatePriceRequest{RecipeName: "", Price: dec("3.00")})
	assert.Equal(t, domain.ErrInvalidInput, err)
}

func TestPOSListBills_TotalAgregado(t *testing.T) {
	uc, billRepo := newPOSFixture([]string{"Pan"}, map[string]string{"Pan": "3.00"})
	billRepo.bills = []*entity.Bill{
		{ID: "b1", Total: dec("11.00"), Timestamp: time.Now()},
		{ID: "b2", Total: dec("4.50"), Timestamp: time.Now()},
	}

	out, err := uc.ListBills()
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
	assert.True(t, out.GrandTotal.Equal(dec("15.50")))
}
