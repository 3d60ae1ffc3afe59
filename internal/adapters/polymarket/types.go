package polymarket

import "encoding/json"

// DTOs crudos de la API Gamma. Solo se usan dentro de este paquete; la
// conversión a domain entities se hace en mapping.go.

// seriesResponse es la respuesta de GET /series/{id}.
type seriesResponse struct {
	Events []seriesEvent `json:"events"`
}

// seriesEvent es la referencia ligera a un evento dentro de una serie.
type seriesEvent struct {
	ID     string `json:"id"`
	Active bool   `json:"active"`
	Closed bool   `json:"closed"`
}

// eventResponse es la respuesta de GET /events/{id}.
type eventResponse struct {
	ID     string       `json:"id"`
	Title  string       `json:"title"`
	Active bool         `json:"active"`
	Closed bool         `json:"closed"`
	Markets []rawMarket `json:"markets"`
}

// rawMarket es un mercado tal como lo devuelve Gamma dentro de un evento.
// outcomes y outcomePrices llegan como strings que contienen, a su vez, un
// array JSON — de ahí string en vez de []string; mapping.go los decodifica.
type rawMarket struct {
	ConditionID      string      `json:"conditionId"`
	Question         string      `json:"question"`
	Outcomes         string      `json:"outcomes"`
	OutcomePrices    string      `json:"outcomePrices"`
	Liquidity        string      `json:"liquidity"`
	LiquidityNum     json.Number `json:"liquidityNum"`
	Active           bool        `json:"active"`
	Closed           bool        `json:"closed"`
	EndDateISO       string      `json:"endDateIso"`
	SportsMarketType string      `json:"sportsMarketType"`
}
