package domain

import "time"

// PolymarketMarket es un mercado moneyline de dos resultados sobre un partido
// profesional. Se crea y se reemplaza en bloque en cada pasada del scanner;
// nunca se muta en sitio.
type PolymarketMarket struct {
	ConditionID string
	TeamA       string
	TeamB       string
	TeamAOdds   float64 // probabilidad implícita en [0,1], no decimal odds
	TeamBOdds   float64
	Liquidity   float64
	EndDate     *time.Time
	Active      bool
}
