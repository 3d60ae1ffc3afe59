package opendota

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsProMatch(t *testing.T) {
	radiant := "Team Liquid"
	empty := ""

	tests := []struct {
		name string
		m    liveMatch
		want bool
	}{
		{name: "league id positive", m: liveMatch{LeagueID: 15000}, want: true},
		{name: "named radiant team", m: liveMatch{TeamNameRadiant: &radiant}, want: true},
		{name: "empty radiant name and no league", m: liveMatch{TeamNameRadiant: &empty}, want: false},
		{name: "neither", m: liveMatch{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isProMatch(tt.m))
		})
	}
}

func TestConvertMatch_Defaults(t *testing.T) {
	m := liveMatch{MatchID: "123"}
	got := convertMatch(m)

	assert.Equal(t, int64(123), got.MatchID)
	assert.Equal(t, "Radiant", got.Radiant.Name)
	assert.Equal(t, "Dire", got.Dire.Name)
	assert.Zero(t, got.Radiant.Kills)
	assert.Zero(t, got.GoldLead)
	assert.Zero(t, got.GameTime)
	assert.True(t, got.IsLive)
	assert.Zero(t, got.Radiant.TowersKilled)
	assert.Zero(t, got.Dire.BarracksKilled)
}

func TestConvertMatch_MalformedMatchIDFallsBackToZero(t *testing.T) {
	m := liveMatch{MatchID: "not-a-number"}
	got := convertMatch(m)
	assert.Zero(t, got.MatchID)
}

func TestConvertMatch_BuildingStateCrossedAssignment(t *testing.T) {
	// radiant towers all alive (0x7FF), everything else destroyed -> radiant
	// side reports 11 towers killed (all dire towers, crossed) and dire 0.
	state := int64(0x7FF)
	m := liveMatch{MatchID: "1", BuildingState: &state}
	got := convertMatch(m)

	assert.Equal(t, 0, got.Dire.TowersKilled)
	assert.Equal(t, 11, got.Radiant.TowersKilled)
}

func TestConvertMatch_NamesAndScoresPropagate(t *testing.T) {
	radiant := "OG"
	dire := "Secret"
	radiantID := int64(111)
	kills := int32(20)
	lead := int64(-4500)
	gameTime := int32(1800)

	m := liveMatch{
		MatchID:         "55",
		TeamNameRadiant: &radiant,
		TeamNameDire:    &dire,
		TeamIDRadiant:   &radiantID,
		RadiantScore:    &kills,
		RadiantLead:     &lead,
		GameTime:        &gameTime,
	}
	got := convertMatch(m)

	assert.Equal(t, "OG", got.Radiant.Name)
	assert.Equal(t, "Secret", got.Dire.Name)
	assert.Equal(t, int64(111), *got.Radiant.TeamID)
	assert.Equal(t, 20, got.Radiant.Kills)
	assert.Equal(t, int64(-4500), got.GoldLead)
	assert.Equal(t, int32(1800), got.GameTime)
}
