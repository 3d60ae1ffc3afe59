package state

import (
	"sync"

	"github.com/alejandrodnm/esportsignal/internal/domain"
)

// LiveMatchCache es el mapa match_id → última observación, escrito
// únicamente por el fetcher. No se poda nunca: las entradas viven hasta que
// el proceso termina.
type LiveMatchCache struct {
	mu    sync.RWMutex
	cache map[int64]domain.LiveMatchState
}

// NewLiveMatchCache crea un cache vacío.
func NewLiveMatchCache() *LiveMatchCache {
	return &LiveMatchCache{cache: make(map[int64]domain.LiveMatchState)}
}

// Get devuelve la última observación conocida del partido, si existe.
func (c *LiveMatchCache) Get(matchID int64) (domain.LiveMatchState, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s, ok := c.cache[matchID]
	return s, ok
}

// Set sobreescribe la entrada del partido con el nuevo estado.
func (c *LiveMatchCache) Set(matchID int64, state domain.LiveMatchState) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache[matchID] = state
}

// Len devuelve el número de partidos en cache.
func (c *LiveMatchCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.cache)
}
