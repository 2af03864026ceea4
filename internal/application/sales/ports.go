package sales

import (
	"context"

	"github.com/dulcehorno/panaderia-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. La liquidación factura y decrementa stock
// con atomicidad: o se persiste todo o no se persiste nada.
type TxRunner interface {
	RunSettlement(ctx context.Context, fn func(
		billRepo repository.BillRepository,
		stockRepo repository.StockRepository,
	) error) error
}

// StockChangedPublisher notifica qué recetas cambiaron de stock tras una
// liquidación, para que las vistas de artículos refresquen. Reemplaza al
// broadcast global implícito por un aviso explícito por recurso.
type StockChangedPublisher interface {
	PublishStockChanged(ctx context.Context, recipeNames []string) error
}
