// Package supervisor levanta y coordina los tres workers de esportsignal:
// el market scanner, el live fetcher y el signal processor.
package supervisor

import (
	"context"
	"log/slog"

	"github.com/alejandrodnm/esportsignal/internal/config"
	"github.com/alejandrodnm/esportsignal/internal/matching"
	"github.com/alejandrodnm/esportsignal/internal/ports"
	"github.com/alejandrodnm/esportsignal/internal/state"
	"github.com/alejandrodnm/esportsignal/internal/workers"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Supervisor conecta los adaptadores con el estado compartido y arranca los
// tres workers bajo un mismo errgroup: la salida inesperada de cualquiera
// de ellos cancela a los demás.
type Supervisor struct {
	cfg           *config.Config
	marketAdapter ports.MarketAdapter
	liveAdapter   ports.LiveDataAdapter
	store         ports.SignalStore
	resolver      *matching.TeamResolver
	active        *state.ActiveMarkets
	cache         *state.LiveMatchCache
	runID         string
}

// New construye un supervisor listo para correr. El runID es un
// identificador de correlación único por ejecución, adjunto a las líneas de
// log que emite el propio supervisor; las de los workers no lo llevan.
func New(cfg *config.Config, marketAdapter ports.MarketAdapter, liveAdapter ports.LiveDataAdapter, store ports.SignalStore, resolver *matching.TeamResolver) *Supervisor {
	return &Supervisor{
		cfg:           cfg,
		marketAdapter: marketAdapter,
		liveAdapter:   liveAdapter,
		store:         store,
		resolver:      resolver,
		active:        state.NewActiveMarkets(),
		cache:         state.NewLiveMatchCache(),
		runID:         uuid.NewString(),
	}
}

// Run arranca los tres workers y bloquea hasta que uno de ellos falle o el
// contexto se cancele. Devuelve el primer error no nulo entre los tres, si
// lo hay.
func (s *Supervisor) Run(ctx context.Context) error {
	logger := slog.With("run_id", s.runID)
	logger.Info("supervisor arrancando", "scan_interval", s.cfg.PolymarketScanInterval, "poll_interval", s.cfg.LiveMatchPollInterval)

	scanner := workers.NewMarketScanner(s.marketAdapter, s.active, s.cfg.PolymarketScanInterval)
	fetcher := workers.NewLiveFetcher(s.liveAdapter, s.active, s.cache, s.resolver, s.cfg.LiveMatchPollInterval)
	processor := workers.NewSignalProcessor(s.active, s.store, fetcher.Updates())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := scanner.Run(gctx)
		if err != nil {
			logger.Error("market scanner terminó con error", "err", err)
		}
		return err
	})
	g.Go(func() error {
		err := fetcher.Run(gctx)
		if err != nil {
			logger.Error("live fetcher terminó con error", "err", err)
		}
		return err
	})
	g.Go(func() error {
		err := processor.Run(gctx)
		if err != nil {
			logger.Error("signal processor terminó con error", "err", err)
		}
		return err
	})

	err := g.Wait()
	logger.Info("supervisor detenido", "err", err)
	return err
}
