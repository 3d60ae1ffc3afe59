package matching

import (
	"testing"

	"github.com/alejandrodnm/esportsignal/internal/domain"
	"github.com/stretchr/testify/assert"
)

func newTestResolver() *TeamResolver {
	r := NewTeamResolver(nil)
	r.AddAlias("ts", "team spirit")
	r.AddAlias("team spirit", "team spirit")
	r.AddAlias("og", "og")
	return r
}

func TestNormalize_UnknownNameIsOwnCanonical(t *testing.T) {
	r := NewTeamResolver(nil)
	assert.Equal(t, "nouns", r.normalize("  Nouns  "))
}

func TestNormalize_KnownAlias(t *testing.T) {
	r := newTestResolver()
	assert.Equal(t, "team spirit", r.normalize("TS"))
}

// Normalizing an already-normalized name must be a no-op.
func TestNormalize_Idempotent(t *testing.T) {
	r := newTestResolver()
	for _, s := range []string{"TS", "  OG ", "Unknown Team", ""} {
		once := r.normalize(s)
		twice := r.normalize(once)
		assert.Equal(t, once, twice)
	}
}

func TestNamesMatch(t *testing.T) {
	r := newTestResolver()
	assert.True(t, r.NamesMatch("TS", "Team Spirit"))
	assert.False(t, r.NamesMatch("TS", "OG"))
}

func TestMatchMarketToLive_DirectOrientation(t *testing.T) {
	r := newTestResolver()
	market := domain.PolymarketMarket{TeamA: "Team Spirit", TeamB: "OG"}
	live := []domain.LiveMatchState{
		{MatchID: 7, Radiant: domain.TeamState{Name: "TS"}, Dire: domain.TeamState{Name: "og"}},
	}

	result := r.MatchMarketToLive(market, live)
	if assert.NotNil(t, result) {
		assert.True(t, result.MarketTeamAIsRadiant)
		assert.Equal(t, int64(7), result.Live.MatchID)
	}
}

// Matching is symmetric — swapping team_a/team_b flips the orientation flag
// but still matches the same live match.
func TestMatchMarketToLive_SwappedOrientation(t *testing.T) {
	r := newTestResolver()
	market := domain.PolymarketMarket{TeamA: "OG", TeamB: "Team Spirit"}
	live := []domain.LiveMatchState{
		{MatchID: 7, Radiant: domain.TeamState{Name: "TS"}, Dire: domain.TeamState{Name: "og"}},
	}

	result := r.MatchMarketToLive(market, live)
	if assert.NotNil(t, result) {
		assert.False(t, result.MarketTeamAIsRadiant)
		assert.Equal(t, int64(7), result.Live.MatchID)
	}
}

func TestMatchMarketToLive_NoMatch(t *testing.T) {
	r := newTestResolver()
	market := domain.PolymarketMarket{TeamA: "Nouns", TeamB: "Gladiators"}
	live := []domain.LiveMatchState{
		{MatchID: 7, Radiant: domain.TeamState{Name: "TS"}, Dire: domain.TeamState{Name: "og"}},
	}

	assert.Nil(t, r.MatchMarketToLive(market, live))
}

func TestMatchMarketToLive_FirstMatchWinsOnTies(t *testing.T) {
	r := newTestResolver()
	market := domain.PolymarketMarket{TeamA: "Team Spirit", TeamB: "OG"}
	live := []domain.LiveMatchState{
		{MatchID: 1, Radiant: domain.TeamState{Name: "TS"}, Dire: domain.TeamState{Name: "og"}},
		{MatchID: 2, Radiant: domain.TeamState{Name: "TS"}, Dire: domain.TeamState{Name: "og"}},
	}

	result := r.MatchMarketToLive(market, live)
	if assert.NotNil(t, result) {
		assert.Equal(t, int64(1), result.Live.MatchID)
	}
}
