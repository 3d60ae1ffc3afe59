package ports

import (
	"context"

	"github.com/alejandrodnm/esportsignal/internal/domain"
)

// MarketAdapter obtiene el conjunto de mercados moneyline de Dota2
// actualmente activos en el proveedor de cuotas.
type MarketAdapter interface {
	// FetchDota2Markets ejecuta el pipeline series → events → markets. Los
	// errores de red o de parseo en un evento individual se absorben
	// internamente (se loguean y ese evento se salta); solo un fallo en el
	// fetch de la serie misma se refleja devolviendo un slice vacío.
	FetchDota2Markets(ctx context.Context) ([]domain.PolymarketMarket, error)
}
