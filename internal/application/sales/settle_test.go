package sales_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dulcehorno/panaderia-api/internal/application/dto"
	"github.com/dulcehorno/panaderia-api/internal/application/sales"
	"github.com/dulcehorno/panaderia-api/internal/domain"
	"github.com/dulcehorno/panaderia-api/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "error"})
}

type settleFixture struct {
	builder   *sales.OrderBuilder
	settle    *sales.SettleUseCase
	stockRepo *fakeStockRepo
	billRepo  *fakeBillRepo
	publisher *fakePublisher
}

func newSettleFixture(prices map[string]string) *settleFixture {
	stockRepo := newFakeStockRepo()
	billRepo := &fakeBillRepo{}
	publisher := &fakePublisher{}
	builder := sales.NewOrderBuilder(newFakePriceRepo(prices), stockRepo, testStockSeed)
	settle := sales.NewSettleUseCase(
		builder,
		&fakeTxRunner{billRepo: billRepo, stockRepo: stockRepo},
		publisher,
		testStockSeed,
		testLogger(),
	)
	return &settleFixture{
		builder:   builder,
		settle:    settle,
		stockRepo: stockRepo,
		billRepo:  billRepo,
		publisher: publisher,
	}
}

// Liquidación completa: factura con total correcto, stock decrementado,
// pedido vaciado y aviso publicado.
func TestSettle_LiquidacionCompleta(t *testing.T) {
	f := newSettleFixture(map[string]string{"Pan": "3.00", "Torta": "5.00"})

	_, err := f.builder.AddLine("caja1", dto.AddLineRequest{RecipeName: "Pan", Quantity: 2})
	require.NoError(t, err)
	_, err = f.builder.AddLine("caja1", dto.AddLineRequest{RecipeName: "Torta", Quantity: 1})
	require.NoError(t, err)

	bill, err := f.settle.Settle(context.Background(), "caja1")
	require.NoError(t, err)

	require.NotNil(t, bill)
	assert.NotEmpty(t, bill.ID)
	assert.True(t, bill.Total.Equal(dec("11.00")),
		"2×3.00 + 1×5.00 debe dar 11.00, se obtuvo %s", bill.Total)
	require.Len(t, bill.Lines, 2)

	// Stock decrementado una sola vez, por la liquidación.
	assert.True(t, f.stockRepo.quantity("Pan").Equal(dec("5")), "Pan: 7 − 2 = 5")
	assert.True(t, f.stockRepo.quantity("Torta").Equal(dec("6")), "Torta: 7 − 1 = 6")

	// La factura quedó persistida y el pedido en curso vacío.
	persisted, err := f.billRepo.GetByID(bill.ID)
	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.Empty(t, f.builder.State("caja1").Lines)

	// El aviso de cambio de stock salió con las recetas vendidas.
	require.Len(t, f.publisher.received, 1)
	assert.ElementsMatch(t, []string{"Pan", "Torta"}, f.publisher.received[0])
}

// Liquidar una caja sin pedido es un error y no persiste nada.
func TestSettle_PedidoVacio(t *testing.T) {
	f := newSettleFixture(map[string]string{"Pan": "3.00"})

	_, err := f.settle.Settle(context.Background(), "caja1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	bills, _ := f.billRepo.List()
	assert.Empty(t, bills)
}

// Si la persistencia falla, la transacción revierte el stock y el pedido
// se reinstala para reintentar.
func TestSettle_FallaRestauraPedido(t *testing.T) {
	f := newSettleFixture(map[string]string{"Pan": "3.00"})
	f.billRepo.failError = errors.New("base de datos caída")

	_, err := f.builder.AddLine("caja1", dto.AddLineRequest{RecipeName: "Pan", Quantity: 2})
	require.NoError(t, err)

	_, err = f.settle.Settle(context.Background(), "caja1")
	require.Error(t, err)

	// Stock intacto: el rollback revirtió los decrementos.
	assert.True(t, f.stockRepo.quantity("Pan").Equal(dec("7")))

	// El pedido sigue en la caja con sus reservas vigentes.
	state := f.builder.State("caja1")
	require.Len(t, state.Lines, 1)
	assert.Equal(t, 2, state.Lines[0].Quantity)

	_, err = f.builder.AddLine("caja2", dto.AddLineRequest{RecipeName: "Pan", Quantity: 6})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock,
		"las reservas reinstaladas deben seguir contando contra el stock")

	// Sin aviso publicado: la venta no se concretó.
	assert.Empty(t, f.publisher.received)
}

// Stock decrementado por otra vía entre la reserva y la liquidación:
// la transacción detecta el faltante y la venta no se persiste.
func TestSettle_StockInsuficienteEnTransaccion(t *testing.T) {
	f := newSettleFixture(map[string]string{"Pan": "3.00"})

	_, err := f.builder.AddLine("caja1", dto.AddLineRequest{RecipeName: "Pan", Quantity: 5})
	require.NoError(t, err)

	// Corrección externa deja el stock por debajo de lo reservado.
	level, err := f.stockRepo.GetOrSeed("Pan", testStockSeed)
	require.NoError(t, err)
	level.Quantity = dec("3")
	require.NoError(t, f.stockRepo.Upsert(level))

	_, err = f.settle.Settle(context.Background(), "caja1")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	bills, _ := f.billRepo.List()
	assert.Empty(t, bills)
	assert.True(t, f.stockRepo.quantity("Pan").Equal(dec("3")), "el stock corregido no debe cambiar")
}

// El fallo al publicar el aviso no tumba la venta ya persistida.
func TestSettle_FalloDePublicacionNoAfectaVenta(t *testing.T) {
	f := newSettleFixture(map[string]string{"Pan": "3.00"})
	f.publisher.failWith = errors.New("broker inalcanzable")

	_, err := f.builder.AddLine("caja1", dto.AddLineRequest{RecipeName: "Pan", Quantity: 1})
	require.NoError(t, err)

	bill, err := f.settle.Settle(context.Background(), "caja1")
	require.NoError(t, err, "la venta debe completarse aunque el aviso falle")
	require.NotNil(t, bill)

	assert.True(t, f.stockRepo.quantity("Pan").Equal(dec("6")))
	bills, _ := f.billRepo.List()
	assert.Len(t, bills, 1)
}
