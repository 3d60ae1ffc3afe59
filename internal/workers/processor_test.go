package workers

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/alejandrodnm/esportsignal/internal/domain"
	"github.com/alejandrodnm/esportsignal/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSignalStore struct {
	mu      sync.Mutex
	signals []domain.Signal
	nextID  int64
	err     error
}

func (f *fakeSignalStore) InsertSignal(ctx context.Context, signal domain.Signal) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	signal.ID = f.nextID
	f.signals = append(f.signals, signal)
	return f.nextID, nil
}

func (f *fakeSignalStore) GetSignalsForMarket(ctx context.Context, marketConditionID string, limit int) ([]domain.Signal, error) {
	return nil, nil
}

func (f *fakeSignalStore) GetSignalsForMatch(ctx context.Context, matchID int64, limit int) ([]domain.Signal, error) {
	return nil, nil
}

func (f *fakeSignalStore) GetSignalCount(ctx context.Context) (int64, error) {
	return 0, nil
}

func (f *fakeSignalStore) Close() error { return nil }

func TestSignalProcessor_DropsUpdateWhenMarketEvicted(t *testing.T) {
	active := state.NewActiveMarkets() // market "0x1" nunca fue insertado
	store := &fakeSignalStore{}
	updates := make(chan domain.MatchUpdate, 1)
	updates <- domain.MatchUpdate{MarketConditionID: "0x1", State: domain.LiveMatchState{MatchID: 1}}
	close(updates)

	p := NewSignalProcessor(active, store, updates)
	require.NoError(t, p.Run(context.Background()))

	assert.Empty(t, store.signals)
}

func TestSignalProcessor_PersistsClassifiedSignal(t *testing.T) {
	active := state.NewActiveMarkets()
	active.ReplaceAll([]domain.PolymarketMarket{{ConditionID: "0x1", TeamA: "Team Spirit", TeamB: "OG", TeamAOdds: 0.5}})
	store := &fakeSignalStore{}
	updates := make(chan domain.MatchUpdate, 1)
	updates <- domain.MatchUpdate{
		MarketConditionID: "0x1",
		State:             domain.LiveMatchState{MatchID: 7, GameTime: 0},
		PreviousState:     nil,
	}
	close(updates)

	p := NewSignalProcessor(active, store, updates)
	require.NoError(t, p.Run(context.Background()))

	require.Len(t, store.signals, 1)
	sig := store.signals[0]
	assert.Equal(t, domain.SignalGameStart, sig.SignalType)
	assert.InDelta(t, 0.5, sig.TeamAWinProb, 1e-9)
	assert.Equal(t, int64(7), sig.MatchID)
	assert.NotEmpty(t, sig.MatchSnapshot)
}

func TestSignalProcessor_DropsUpdateOnPersistenceFailure(t *testing.T) {
	active := state.NewActiveMarkets()
	active.ReplaceAll([]domain.PolymarketMarket{{ConditionID: "0x1", TeamA: "A", TeamB: "B"}})
	store := &fakeSignalStore{err: errors.New("disk full")}
	updates := make(chan domain.MatchUpdate, 1)
	updates <- domain.MatchUpdate{MarketConditionID: "0x1", State: domain.LiveMatchState{MatchID: 1}}
	close(updates)

	p := NewSignalProcessor(active, store, updates)
	require.NoError(t, p.Run(context.Background()))

	assert.Empty(t, store.signals)
}
