package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dulcehorno/panaderia-api/internal/application/dto"
	"github.com/dulcehorno/panaderia-api/internal/domain"
	"github.com/dulcehorno/panaderia-api/internal/domain/entity"
	"github.com/dulcehorno/panaderia-api/internal/domain/repository"
	"github.com/dulcehorno/panaderia-api/pkg/logger"
)

// SettleUseCase liquida el pedido en curso de una caja: persiste la factura
// inmutable y decrementa el stock de cada línea en una sola transacción,
// bloqueando cada fila de stock (SELECT FOR UPDATE). Es la única escritura
// de stock en todo el flujo de ventas: el agregado de líneas solo reserva
// en memoria, así que ninguna venta se descuenta dos veces ni deja el
// stock en negativo.
type SettleUseCase struct {
	builder   *OrderBuilder
	txRunner  TxRunner
	publisher StockChangedPublisher
	stockSeed int64
	log       *logger.Logger
}

// NewSettleUseCase construye el caso de uso.
func NewSettleUseCase(
	builder *OrderBuilder,
	txRunner TxRunner,
	publisher StockChangedPublisher,
	stockSeed int64,
	log *logger.Logger,
) *SettleUseCase {
	return &SettleUseCase{
		builder:   builder,
		txRunner:  txRunner,
		publisher: publisher,
		stockSeed: stockSeed,
		log:       log,
	}
}

// Settle cobra el pedido de la caja. Si cualquier persistencia falla, el
// pedido en curso queda intacto para que el operador reintente.
func (uc *SettleUseCase) Settle(ctx context.Context, register string) (*dto.BillResponse, error) {
	lines := uc.builder.take(register)
	if len(lines) == 0 {
		return nil, domain.ErrInvalidInput
	}

	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Total())
	}
	bill := &entity.Bill{
		ID:        uuid.New().String(),
		Lines:     lines,
		Total:     total,
		Timestamp: time.Now(),
	}

	err := uc.txRunner.RunSettlement(ctx, func(
		billRepo repository.BillRepository,
		stockRepo repository.StockRepository,
	) error {
		for _, line := range lines {
			level, err := stockRepo.GetForUpdate(line.Name, uc.stockSeed)
			if err != nil {
				return err
			}
			qty := decimal.NewFromInt(int64(line.Quantity))
			if level.Quantity.LessThan(qty) {
				return domain.ErrInsufficientStock
			}
			level.Quantity = level.Quantity.Sub(qty)
			level.UpdatedAt = bill.Timestamp
			if err := stockRepo.Upsert(level); err != nil {
				return err
			}
		}
		return billRepo.Create(bill)
	})
	if err != nil {
		// Reinstalar el pedido: el operador puede corregir y reintentar.
		uc.builder.restore(register, lines)
		return nil, err
	}

	changed := make([]string, 0, len(lines))
	for _, l := range lines {
		changed = append(changed, l.Name)
	}
	if pubErr := uc.publisher.PublishStockChanged(ctx, changed); pubErr != nil {
		// El aviso de refresco no es parte de la venta: se registra y se sigue.
		uc.log.Warn().Err(pubErr).Strs("recipes", changed).Msg("no se pudo publicar stock.changed")
	}

	uc.log.Info().Str("bill_id", bill.ID).Str("register", register).
		Str("total", bill.Total.String()).Int("lines", len(bill.Lines)).
		Msg("venta liquidada")

	return toBillResponse(bill), nil
}

func toBillResponse(b *entity.Bill) *dto.BillResponse {
	if b == nil {
		return nil
	}
	lines := make([]dto.OrderLineDTO, 0, len(b.Lines))
	for _, l := range b.Lines {
		lines = append(lines, dto.OrderLineDTO{Name: l.Name, Quantity: l.Quantity, Amount: l.Amount})
	}
	return &dto.BillResponse{
		ID:        b.ID,
		Lines:     lines,
		Total:     b.Total,
		Timestamp: b.Timestamp,
	}
}
