package workers

import (
	"encoding/json"
	"fmt"

	"github.com/alejandrodnm/esportsignal/internal/domain"
)

// marshalSnapshot serializa el estado observado a JSON, para guardarlo como
// match_snapshot junto con la señal derivada.
func marshalSnapshot(state domain.LiveMatchState) (string, error) {
	b, err := json.Marshal(state)
	if err != nil {
		return "", fmt.Errorf("marshal live match state: %w", err)
	}
	return string(b), nil
}
