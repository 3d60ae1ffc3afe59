package opendota

import (
	"strconv"
	"time"

	"github.com/alejandrodnm/esportsignal/internal/domain"
)

// isProMatch implementa el filtro "professional" del adaptador: league_id
// positivo, o un nombre de equipo radiant no vacío.
func isProMatch(m liveMatch) bool {
	if m.LeagueID > 0 {
		return true
	}
	return m.TeamNameRadiant != nil && *m.TeamNameRadiant != ""
}

// convertMatch traduce un liveMatch crudo de OpenDota a domain.LiveMatchState,
// aplicando los valores por defecto documentados y la asignación cruzada de
// edificios derribados.
func convertMatch(m liveMatch) domain.LiveMatchState {
	matchID, _ := strconv.ParseInt(m.MatchID, 10, 64)

	buildings := domain.DefaultBuildingCounts()
	if m.BuildingState != nil {
		buildings = domain.DecodeBuildingState(uint64(*m.BuildingState))
	}

	return domain.LiveMatchState{
		MatchID: matchID,
		Radiant: domain.TeamState{
			Name:           stringOrDefault(m.TeamNameRadiant, "Radiant"),
			TeamID:         m.TeamIDRadiant,
			Kills:          int(int32Value(m.RadiantScore)),
			TowersKilled:   buildings.RadiantTowersKilled,
			BarracksKilled: buildings.RadiantBarracksKilled,
		},
		Dire: domain.TeamState{
			Name:           stringOrDefault(m.TeamNameDire, "Dire"),
			TeamID:         m.TeamIDDire,
			Kills:          int(int32Value(m.DireScore)),
			TowersKilled:   buildings.DireTowersKilled,
			BarracksKilled: buildings.DireBarracksKilled,
		},
		GoldLead:  int64Value(m.RadiantLead),
		GameTime:  int32Value(m.GameTime),
		IsLive:    true,
		UpdatedAt: time.Now().UTC(),
	}
}

func stringOrDefault(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}

func int32Value(v *int32) int32 {
	if v == nil {
		return 0
	}
	return *v
}

func int64Value(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
