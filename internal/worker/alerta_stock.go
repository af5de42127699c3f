package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/infra"

	"github.com/rs/zerolog/log"
)

// AlertaStockWorker emails the configured recipient when a product's stock
// falls to or below its minimum.
type AlertaStockWorker struct {
	mailer *infra.Mailer
	email  string
}

func NewAlertaStockWorker(mailer *infra.Mailer, email string) *AlertaStockWorker {
	return &AlertaStockWorker{mailer: mailer, email: email}
}

func (w *AlertaStockWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var p AlertaStockPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return fmt.Errorf("alerta_stock: payload: %w", err)
	}
	if w.email == "" {
		log.Warn().Str("producto", p.Codigo).Msg("ALERTAS_EMAIL no configurado, alerta descartada")
		return nil
	}

	subject := fmt.Sprintf("Stock bajo: %s (%s)", p.Nombre, p.Codigo)
	body := fmt.Sprintf(
		"El producto %s (%s) quedo con stock %d, por debajo del minimo %d.\n\nRevise el inventario y genere una orden de compra si corresponde.",
		p.Nombre, p.Codigo, p.Stock, p.StockMinimo,
	)
	if err := w.mailer.Send(w.email, subject, body); err != nil {
		return fmt.Errorf("alerta_stock: send: %w", err)
	}
	log.Info().Str("producto", p.Codigo).Int("stock", p.Stock).Msg("alerta de stock enviada")
	return nil
}
