package ports

import (
	"context"

	"github.com/alejandrodnm/esportsignal/internal/domain"
)

// SignalStore persiste y recupera las señales producidas por el signal
// processor. Es de solo-inserción: no hay operación de actualización.
type SignalStore interface {
	// InsertSignal escribe una fila y devuelve su id autoincremental.
	InsertSignal(ctx context.Context, signal domain.Signal) (int64, error)

	// GetSignalsForMarket devuelve las últimas limit señales de un mercado,
	// más recientes primero.
	GetSignalsForMarket(ctx context.Context, marketConditionID string, limit int) ([]domain.Signal, error)

	// GetSignalsForMatch devuelve las últimas limit señales de un partido,
	// más recientes primero.
	GetSignalsForMatch(ctx context.Context, matchID int64, limit int) ([]domain.Signal, error)

	// GetSignalCount devuelve el número total de señales persistidas.
	GetSignalCount(ctx context.Context) (int64, error)

	// Close cierra la conexión a la base de datos limpiamente.
	Close() error
}
