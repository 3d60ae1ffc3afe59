package ports

import (
	"context"

	"github.com/alejandrodnm/esportsignal/internal/domain"
)

// LiveDataAdapter obtiene el estado de los partidos profesionales
// actualmente en vivo.
type LiveDataAdapter interface {
	// FetchLiveMatches devuelve los partidos "pro" (league_id > 0 o nombre
	// de radiant no vacío), con el building_state ya decodificado.
	FetchLiveMatches(ctx context.Context) ([]domain.LiveMatchState, error)
}
