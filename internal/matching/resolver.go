// Package matching resuelve el join difuso entre los nombres de equipo del
// proveedor de mercados y los del proveedor de datos en vivo.
package matching

import (
	"strings"

	"github.com/alejandrodnm/esportsignal/internal/domain"
)

// MatchResult es el resultado de emparejar un mercado con un partido en
// vivo. MarketTeamAIsRadiant indica qué lado del mercado corresponde a
// radiant; el signal processor no la consulta todavía.
type MatchResult struct {
	Live                  domain.LiveMatchState
	MarketTeamAIsRadiant bool
}

// TeamResolver normaliza nombres de equipo vía una tabla de alias e decide
// si un mercado y un partido en vivo se refieren al mismo enfrentamiento.
// Es inmutable tras la construcción, salvo AddAlias, que solo usan los tests.
type TeamResolver struct {
	aliases map[string]string // alias.lower() -> canonical.lower()
}

// NewTeamResolver crea un resolver a partir de las entradas de alias dadas.
// Un resolver vacío (aliases == nil) es válido: solo hará match por igualdad
// exacta de nombres normalizados.
func NewTeamResolver(entries []AliasEntry) *TeamResolver {
	r := &TeamResolver{aliases: make(map[string]string)}
	for _, e := range entries {
		canonical := normalizeRaw(e.Canonical)
		r.aliases[canonical] = canonical
		for _, alias := range e.Aliases {
			r.aliases[normalizeRaw(alias)] = canonical
		}
	}
	return r
}

// AddAlias registra un alias adicional. Solo para uso en tests.
func (r *TeamResolver) AddAlias(alias, canonical string) {
	r.aliases[normalizeRaw(alias)] = normalizeRaw(canonical)
}

// normalize devuelve la forma canónica de name si está en la tabla de
// alias; de lo contrario, devuelve el propio nombre normalizado (un nombre
// desconocido es su propio canónico).
func (r *TeamResolver) normalize(name string) string {
	n := normalizeRaw(name)
	if canonical, ok := r.aliases[n]; ok {
		return canonical
	}
	return n
}

// normalizeRaw aplica trim + lowercase, sin consultar la tabla de alias.
func normalizeRaw(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NamesMatch compara dos nombres por su forma normalizada.
func (r *TeamResolver) NamesMatch(a, b string) bool {
	return r.normalize(a) == r.normalize(b)
}

// MatchMarketToLive busca, en orden, el primer partido en vivo cuyos equipos
// coincidan (en cualquier orientación) con los del mercado. Devuelve nil si
// no hay coincidencia.
func (r *TeamResolver) MatchMarketToLive(market domain.PolymarketMarket, liveMatches []domain.LiveMatchState) *MatchResult {
	a := r.normalize(market.TeamA)
	b := r.normalize(market.TeamB)

	for _, live := range liveMatches {
		radiant := r.normalize(live.Radiant.Name)
		dire := r.normalize(live.Dire.Name)

		switch {
		case a == radiant && b == dire:
			return &MatchResult{Live: live, MarketTeamAIsRadiant: true}
		case a == dire && b == radiant:
			return &MatchResult{Live: live, MarketTeamAIsRadiant: false}
		}
	}
	return nil
}
