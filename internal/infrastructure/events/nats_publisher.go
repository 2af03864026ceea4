// Package events publica los avisos de cambio de stock por NATS. Cada
// liquidación de venta emite un mensaje en pos.stock.changed con las recetas
// afectadas; las pantallas de venta suscritas refrescan solo esos artículos.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/dulcehorno/panaderia-api/internal/application/sales"
)

// SubjectStockChanged asunto NATS de los avisos de cambio de stock.
const SubjectStockChanged = "pos.stock.changed"

// StockChangedEvent carga útil del aviso.
type StockChangedEvent struct {
	Recipes    []string  `json:"recipes"`
	OccurredAt time.Time `json:"occurred_at"`
}

var _ sales.StockChangedPublisher = (*NATSPublisher)(nil)

// NATSPublisher implementa sales.StockChangedPublisher sobre una conexión NATS.
type NATSPublisher struct {
	conn *nats.Conn
}

// NewNATSPublisher conecta al servidor NATS.
func NewNATSPublisher(url string) (*NATSPublisher, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("conectar a NATS: %w", err)
	}
	return &NATSPublisher{conn: conn}, nil
}

// PublishStockChanged emite el aviso con las recetas cuyo stock cambió.
func (p *NATSPublisher) PublishStockChanged(_ context.Context, recipeNames []string) error {
	payload, err := json.Marshal(StockChangedEvent{
		Recipes:    recipeNames,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("serializar evento de stock: %w", err)
	}
	if err := p.conn.Publish(SubjectStockChanged, payload); err != nil {
		return fmt.Errorf("publicar evento de stock: %w", err)
	}
	return nil
}

// Close cierra la conexión.
func (p *NATSPublisher) Close() error {
	p.conn.Close()
	return nil
}

// NoopPublisher publicador nulo para despliegues sin NATS (NATS_URL vacío).
type NoopPublisher struct{}

var _ sales.StockChangedPublisher = (*NoopPublisher)(nil)

// PublishStockChanged no hace nada.
func (NoopPublisher) PublishStockChanged(context.Context, []string) error { return nil }
