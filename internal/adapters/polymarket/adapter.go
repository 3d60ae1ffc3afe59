package polymarket

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alejandrodnm/esportsignal/internal/domain"
)

// dota2SeriesID es la serie fija de Dota2 en Gamma, usada como punto de
// entrada del pipeline series → events → markets.
const dota2SeriesID = "10309"

const sportsMarketTypeMoneyline = "moneyline"

// Adapter implementa ports.MarketAdapter contra la API Gamma.
type Adapter struct {
	client *client
}

// NewAdapter crea un Adapter. baseURL vacío usa el host de producción.
func NewAdapter(baseURL string) *Adapter {
	return &Adapter{client: newClient(baseURL)}
}

// FetchDota2Markets recorre la serie de Dota2, filtra eventos y mercados
// activos de tipo moneyline, y devuelve los mercados decodificados. Errores
// al procesar un evento individual se loguean y se saltan; no abortan el
// resto del barrido. Un fallo al obtener la serie en sí también se loguea y
// devuelve un resultado vacío sin error; el Market Scanner Worker lo trata
// como un barrido exitoso y deja ActiveMarkets vacío.
func (a *Adapter) FetchDota2Markets(ctx context.Context) ([]domain.PolymarketMarket, error) {
	var series seriesResponse
	seriesURL := fmt.Sprintf("%s/series/%s", a.client.base, dota2SeriesID)
	if err := a.client.get(ctx, seriesURL, &series); err != nil {
		slog.Warn("polymarket: failed to fetch series", "series_id", dota2SeriesID, "error", err)
		return nil, nil
	}

	var markets []domain.PolymarketMarket
	for _, ev := range series.Events {
		if !ev.Active || ev.Closed {
			continue
		}

		var event eventResponse
		eventURL := fmt.Sprintf("%s/events/%s", a.client.base, ev.ID)
		if err := a.client.get(ctx, eventURL, &event); err != nil {
			slog.Warn("polymarket: skipping event after fetch error", "event_id", ev.ID, "error", err)
			continue
		}

		for _, raw := range event.Markets {
			if raw.SportsMarketType != sportsMarketTypeMoneyline || !raw.Active || raw.Closed {
				continue
			}

			fields, err := convertMarket(raw)
			if err != nil {
				slog.Warn("polymarket: skipping market after decode error", "condition_id", raw.ConditionID, "error", err)
				continue
			}

			markets = append(markets, domain.PolymarketMarket{
				ConditionID: fields.conditionID,
				TeamA:       fields.teamA,
				TeamB:       fields.teamB,
				TeamAOdds:   fields.teamAOdds,
				TeamBOdds:   fields.teamBOdds,
				Liquidity:   fields.liquidity,
				EndDate:     fields.endDate,
				Active:      fields.active,
			})
		}
	}

	return markets, nil
}
