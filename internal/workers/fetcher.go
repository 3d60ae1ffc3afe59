package workers

import (
	"context"
	"log/slog"
	"time"

	"github.com/alejandrodnm/esportsignal/internal/domain"
	"github.com/alejandrodnm/esportsignal/internal/matching"
	"github.com/alejandrodnm/esportsignal/internal/ports"
	"github.com/alejandrodnm/esportsignal/internal/state"
)

// updateQueueCapacity es la capacidad del canal acotado entre el fetcher y
// el processor.
const updateQueueCapacity = 100

// LiveFetcher sondea periódicamente el proveedor de datos en vivo, lo
// empareja contra los mercados activos, y encola un MatchUpdate por cada
// coincidencia.
type LiveFetcher struct {
	adapter      ports.LiveDataAdapter
	active       *state.ActiveMarkets
	cache        *state.LiveMatchCache
	resolver     *matching.TeamResolver
	pollInterval time.Duration
	updates      chan domain.MatchUpdate
}

// NewLiveFetcher crea un LiveFetcher con su propio canal de updates, de
// capacidad fija.
func NewLiveFetcher(adapter ports.LiveDataAdapter, active *state.ActiveMarkets, cache *state.LiveMatchCache, resolver *matching.TeamResolver, pollInterval time.Duration) *LiveFetcher {
	return &LiveFetcher{
		adapter:      adapter,
		active:       active,
		cache:        cache,
		resolver:     resolver,
		pollInterval: pollInterval,
		updates:      make(chan domain.MatchUpdate, updateQueueCapacity),
	}
}

// Updates expone el canal de lectura consumido por el signal processor.
func (f *LiveFetcher) Updates() <-chan domain.MatchUpdate {
	return f.updates
}

// Run sondea en cada tick hasta que ctx se cancele, y cierra el canal de
// updates al salir para que el processor termine su propio bucle.
func (f *LiveFetcher) Run(ctx context.Context) error {
	defer close(f.updates)

	ticker := time.NewTicker(f.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			f.pollOnce(ctx)
		}
	}
}

func (f *LiveFetcher) pollOnce(ctx context.Context) {
	if f.active.Len() == 0 {
		return
	}

	liveMatches, err := f.adapter.FetchLiveMatches(ctx)
	if err != nil {
		slog.Warn("live fetcher: fetch failed, skipping tick", "error", err)
		return
	}
	if len(liveMatches) == 0 {
		return
	}

	f.active.WithRLock(func(markets map[string]domain.PolymarketMarket) {
		for conditionID, market := range markets {
			result := f.resolver.MatchMarketToLive(market, liveMatches)
			if result == nil {
				continue
			}

			previous, hadPrevious := f.cache.Get(result.Live.MatchID)
			f.cache.Set(result.Live.MatchID, result.Live)

			update := domain.MatchUpdate{
				MarketConditionID: conditionID,
				State:             result.Live,
			}
			if hadPrevious {
				update.PreviousState = &previous
			}

			// El envío puede bloquear si el processor va retrasado; eso es
			// esperado. Solo la cancelación del contexto cuenta como un
			// envío fallido, y no se reintenta: el próximo tick vuelve a
			// diferenciar contra el cache ya actualizado.
			select {
			case f.updates <- update:
			case <-ctx.Done():
				slog.Warn("live fetcher: shutdown while enqueuing update",
					"market", conditionID, "match_id", result.Live.MatchID)
			}
		}
	})
}
