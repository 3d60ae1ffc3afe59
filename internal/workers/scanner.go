// Package workers contiene los tres bucles de larga duración del sistema:
// el scanner de mercados, el fetcher de partidas en vivo y el processor de
// señales. Cada uno opera exclusivamente sobre el estado compartido de
// internal/state y se comunica con el siguiente a través del canal de
// updates o del propio estado compartido.
package workers

import (
	"context"
	"log/slog"
	"time"

	"github.com/alejandrodnm/esportsignal/internal/ports"
	"github.com/alejandrodnm/esportsignal/internal/state"
)

// MarketScanner barre periódicamente el proveedor de mercados y mantiene
// ActiveMarkets al día.
type MarketScanner struct {
	adapter      ports.MarketAdapter
	active       *state.ActiveMarkets
	scanInterval time.Duration
}

// NewMarketScanner crea un MarketScanner.
func NewMarketScanner(adapter ports.MarketAdapter, active *state.ActiveMarkets, scanInterval time.Duration) *MarketScanner {
	return &MarketScanner{adapter: adapter, active: active, scanInterval: scanInterval}
}

// Run ejecuta un scan inmediato y luego uno por cada tick, hasta que ctx se
// cancele. Un ticker de tasa fija coalesce los ticks perdidos: nunca hay más
// de un scan en vuelo a la vez.
func (s *MarketScanner) Run(ctx context.Context) error {
	s.scanOnce(ctx)

	ticker := time.NewTicker(s.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.scanOnce(ctx)
		}
	}
}

func (s *MarketScanner) scanOnce(ctx context.Context) {
	markets, err := s.adapter.FetchDota2Markets(ctx)
	if err != nil {
		slog.Warn("market scanner: fetch failed, keeping previous set", "error", err)
		return
	}

	s.active.ReplaceAll(markets)
	slog.Info("market scanner: refreshed active markets", "count", len(markets))
}
