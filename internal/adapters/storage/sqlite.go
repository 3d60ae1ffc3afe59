// Package storage implementa ports.SignalStore usando SQLite (pure Go,
// sin CGo).
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alejandrodnm/esportsignal/internal/domain"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS signals (
    id                  INTEGER PRIMARY KEY AUTOINCREMENT,
    market_condition_id TEXT NOT NULL,
    match_id            INTEGER NOT NULL,
    signal_type         TEXT NOT NULL,
    team_a_win_prob     REAL NOT NULL,
    market_team_a_odds  REAL NOT NULL,
    edge                REAL NOT NULL,
    confidence          REAL NOT NULL,
    strength            TEXT NOT NULL,
    reason              TEXT NOT NULL,
    match_snapshot      TEXT NOT NULL,
    created_at          TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_signals_market  ON signals(market_condition_id);
CREATE INDEX IF NOT EXISTS idx_signals_match   ON signals(match_id);
CREATE INDEX IF NOT EXISTS idx_signals_created ON signals(created_at);
`

// minOpenConns es el tamaño mínimo del pool de conexiones exigido para que
// el processor (escritor) y el CLI de inspección (lector) puedan operar
// concurrentemente sin esperarse entre sí.
const minOpenConns = 5

// SQLiteStorage implementa ports.SignalStore.
type SQLiteStorage struct {
	db *sql.DB
}

// NewSQLiteStorage abre (o crea) la base de datos en path y aplica el
// schema de forma idempotente.
func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage.NewSQLiteStorage: open %q: %w", path, err)
	}
	db.SetMaxOpenConns(minOpenConns)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage.NewSQLiteStorage: apply schema: %w", err)
	}

	return &SQLiteStorage{db: db}, nil
}

// InsertSignal escribe una fila nueva y devuelve su id. No hay
// deduplicación: dos señales idénticas back-to-back producen dos filas.
func (s *SQLiteStorage) InsertSignal(ctx context.Context, signal domain.Signal) (int64, error) {
	createdAt := signal.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO signals
			(market_condition_id, match_id, signal_type, team_a_win_prob,
			 market_team_a_odds, edge, confidence, strength, reason,
			 match_snapshot, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		signal.MarketConditionID,
		signal.MatchID,
		string(signal.SignalType),
		signal.TeamAWinProb,
		signal.MarketTeamAOdds,
		signal.Edge,
		signal.Confidence,
		string(signal.Strength),
		signal.Reason,
		signal.MatchSnapshot,
		createdAt.Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("storage.InsertSignal: insert: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage.InsertSignal: last insert id: %w", err)
	}
	return id, nil
}

// GetSignalsForMarket devuelve las señales más recientes de un mercado.
func (s *SQLiteStorage) GetSignalsForMarket(ctx context.Context, marketConditionID string, limit int) ([]domain.Signal, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, market_condition_id, match_id, signal_type, team_a_win_prob,
		       market_team_a_odds, edge, confidence, strength, reason,
		       match_snapshot, created_at
		FROM signals
		WHERE market_condition_id = ?
		ORDER BY created_at DESC
		LIMIT ?
	`, marketConditionID, limit)
	if err != nil {
		return nil, fmt.Errorf("storage.GetSignalsForMarket: query: %w", err)
	}
	defer rows.Close()
	return scanSignals(rows)
}

// GetSignalsForMatch devuelve las señales más recientes de una partida.
func (s *SQLiteStorage) GetSignalsForMatch(ctx context.Context, matchID int64, limit int) ([]domain.Signal, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, market_condition_id, match_id, signal_type, team_a_win_prob,
		       market_team_a_odds, edge, confidence, strength, reason,
		       match_snapshot, created_at
		FROM signals
		WHERE match_id = ?
		ORDER BY created_at DESC
		LIMIT ?
	`, matchID, limit)
	if err != nil {
		return nil, fmt.Errorf("storage.GetSignalsForMatch: query: %w", err)
	}
	defer rows.Close()
	return scanSignals(rows)
}

// GetSignalCount devuelve el número total de señales persistidas.
func (s *SQLiteStorage) GetSignalCount(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM signals`).Scan(&count); err != nil {
		return 0, fmt.Errorf("storage.GetSignalCount: query: %w", err)
	}
	return count, nil
}

// Close cierra la base de datos subyacente.
func (s *SQLiteStorage) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("storage.Close: %w", err)
	}
	return nil
}

func scanSignals(rows *sql.Rows) ([]domain.Signal, error) {
	var signals []domain.Signal
	for rows.Next() {
		var sig domain.Signal
		var signalType, strength, createdAt, snapshot string

		if err := rows.Scan(
			&sig.ID,
			&sig.MarketConditionID,
			&sig.MatchID,
			&signalType,
			&sig.TeamAWinProb,
			&sig.MarketTeamAOdds,
			&sig.Edge,
			&sig.Confidence,
			&strength,
			&sig.Reason,
			&snapshot,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage.scanSignals: scan row: %w", err)
		}

		sig.SignalType = domain.ParseSignalType(signalType)
		sig.Strength = domain.ParseStrength(strength)
		sig.MatchSnapshot = snapshot
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			sig.CreatedAt = t
		}

		signals = append(signals, sig)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage.scanSignals: iterate rows: %w", err)
	}
	return signals, nil
}
