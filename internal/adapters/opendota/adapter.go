package opendota

import (
	"context"
	"fmt"

	"github.com/alejandrodnm/esportsignal/internal/domain"
)

// Adapter implementa ports.LiveDataAdapter contra la API pública de
// OpenDota.
type Adapter struct {
	client *client
}

// NewAdapter crea un Adapter. baseURL vacío usa el host de producción.
func NewAdapter(baseURL string) *Adapter {
	return &Adapter{client: newClient(baseURL)}
}

// FetchLiveMatches obtiene todas las partidas en vivo y las filtra a las
// que se consideran profesionales.
func (a *Adapter) FetchLiveMatches(ctx context.Context) ([]domain.LiveMatchState, error) {
	var raw []liveMatch
	url := fmt.Sprintf("%s/live", a.client.base)
	if err := a.client.get(ctx, url, &raw); err != nil {
		return nil, fmt.Errorf("fetch live matches: %w", err)
	}

	matches := make([]domain.LiveMatchState, 0, len(raw))
	for _, m := range raw {
		if !isProMatch(m) {
			continue
		}
		matches = append(matches, convertMatch(m))
	}

	return matches, nil
}
