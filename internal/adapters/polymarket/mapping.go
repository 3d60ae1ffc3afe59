package polymarket

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// endDateLayouts son los formatos probados en orden: RFC3339 primero, y
// YYYY-MM-DD a medianoche UTC como fallback.
var endDateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

// convertMarket decodifica un rawMarket en un marketFields intermedio, o un
// error si faltan datos imprescindibles (outcomes/outcomePrices inválidos).
// liquidity y end_date se degradan silenciosamente en vez de fallar.
type marketFields struct {
	conditionID string
	teamA       string
	teamB       string
	teamAOdds   float64
	teamBOdds   float64
	liquidity   float64
	endDate     *time.Time
	active      bool
}

func convertMarket(raw rawMarket) (marketFields, error) {
	outcomes, err := decodeStringArray(raw.Outcomes)
	if err != nil {
		return marketFields{}, fmt.Errorf("decode outcomes: %w", err)
	}
	if len(outcomes) != 2 {
		return marketFields{}, fmt.Errorf("expected exactly 2 outcomes, got %d", len(outcomes))
	}

	prices, err := decodeStringArray(raw.OutcomePrices)
	if err != nil {
		return marketFields{}, fmt.Errorf("decode outcome prices: %w", err)
	}
	if len(prices) != 2 {
		return marketFields{}, fmt.Errorf("expected exactly 2 outcome prices, got %d", len(prices))
	}

	teamAOdds, err := parseProbability(prices[0])
	if err != nil {
		return marketFields{}, fmt.Errorf("parse team a odds: %w", err)
	}
	teamBOdds, err := parseProbability(prices[1])
	if err != nil {
		return marketFields{}, fmt.Errorf("parse team b odds: %w", err)
	}

	return marketFields{
		conditionID: raw.ConditionID,
		teamA:       strings.TrimSpace(outcomes[0]),
		teamB:       strings.TrimSpace(outcomes[1]),
		teamAOdds:   teamAOdds,
		teamBOdds:   teamBOdds,
		liquidity:   decodeLiquidity(raw),
		endDate:     decodeEndDate(raw.EndDateISO),
		active:      raw.Active && !raw.Closed,
	}, nil
}

// decodeStringArray parsea un campo que llega como un string conteniendo un
// array JSON de strings (p.ej. `"[\"Team A\",\"Team B\"]"`).
func decodeStringArray(encoded string) ([]string, error) {
	if encoded == "" {
		return nil, fmt.Errorf("empty field")
	}
	var values []string
	if err := json.Unmarshal([]byte(encoded), &values); err != nil {
		return nil, err
	}
	return values, nil
}

// parseProbability interpreta un precio como una probabilidad en [0,1].
func parseProbability(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > 1 {
		return 0, fmt.Errorf("value %v out of range [0,1]", v)
	}
	return v, nil
}

// decodeLiquidity prefiere liquidityNum; si no está presente, intenta
// parsear el campo liquidity como string; si ambos fallan, 0.
func decodeLiquidity(raw rawMarket) float64 {
	if v, err := raw.LiquidityNum.Float64(); err == nil && raw.LiquidityNum != "" {
		return v
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(raw.Liquidity), 64); err == nil {
		return v
	}
	return 0
}

// decodeEndDate prueba RFC3339 y luego YYYY-MM-DD a medianoche UTC; si
// ambos fallan, o el campo está vacío, devuelve nil.
func decodeEndDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	for _, layout := range endDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}
