package workers

import (
	"context"
	"log/slog"

	"github.com/alejandrodnm/esportsignal/internal/domain"
	"github.com/alejandrodnm/esportsignal/internal/ports"
	"github.com/alejandrodnm/esportsignal/internal/state"
)

// SignalProcessor consume los MatchUpdate encolados por el fetcher, los
// clasifica y puntúa, y persiste el resultado en el signal store.
type SignalProcessor struct {
	active  *state.ActiveMarkets
	store   ports.SignalStore
	updates <-chan domain.MatchUpdate
}

// NewSignalProcessor crea un SignalProcessor que lee de updates.
func NewSignalProcessor(active *state.ActiveMarkets, store ports.SignalStore, updates <-chan domain.MatchUpdate) *SignalProcessor {
	return &SignalProcessor{active: active, store: store, updates: updates}
}

// Run recibe una actualización por vez y la procesa de forma sincrónica.
// Termina cuando el canal de updates se cierra, o cuando ctx se cancela.
func (p *SignalProcessor) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-p.updates:
			if !ok {
				return nil
			}
			p.process(ctx, update)
		}
	}
}

func (p *SignalProcessor) process(ctx context.Context, update domain.MatchUpdate) {
	market, ok := p.active.Get(update.MarketConditionID)
	if !ok {
		slog.Warn("signal processor: market evicted before processing, dropping update",
			"market", update.MarketConditionID)
		return
	}

	signalType := domain.ClassifySignalType(update.State, update.PreviousState)
	winProb := domain.WinProbability(update.State)
	confidence := domain.Confidence(update.State)
	edge := domain.Edge(winProb, market.TeamAOdds)
	strength := domain.ClassifyStrength(edge)
	reason := domain.BuildReason(signalType, market, update.State, edge)

	snapshot, err := marshalSnapshot(update.State)
	if err != nil {
		slog.Warn("signal processor: failed to marshal snapshot, dropping update",
			"market", update.MarketConditionID, "match_id", update.State.MatchID, "error", err)
		return
	}

	signal := domain.Signal{
		MarketConditionID: update.MarketConditionID,
		MatchID:           update.State.MatchID,
		SignalType:        signalType,
		TeamAWinProb:      winProb,
		MarketTeamAOdds:   market.TeamAOdds,
		Edge:              edge,
		Confidence:        confidence,
		Strength:          strength,
		Reason:            reason,
		MatchSnapshot:     snapshot,
	}

	id, err := p.store.InsertSignal(ctx, signal)
	if err != nil {
		slog.Warn("signal processor: persistence failed, dropping update",
			"market", update.MarketConditionID, "match_id", update.State.MatchID, "error", err)
		return
	}

	slog.Info("signal processor: signal persisted",
		"id", id, "market", update.MarketConditionID, "match_id", update.State.MatchID,
		"signal_type", signalType, "strength", strength, "edge", edge)
}
