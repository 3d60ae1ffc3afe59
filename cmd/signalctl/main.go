// signalctl es una herramienta de solo lectura para inspeccionar las
// señales persistidas por esportsignal, sin tocar los workers en vivo.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/alejandrodnm/esportsignal/internal/adapters/storage"
	"github.com/alejandrodnm/esportsignal/internal/config"
	"github.com/alejandrodnm/esportsignal/internal/domain"
	"github.com/olekukonko/tablewriter"
)

func main() {
	market := flag.String("market", "", "condition_id del mercado a consultar")
	matchID := flag.Int64("match", 0, "match_id del partido a consultar")
	limit := flag.Int("limit", 20, "número máximo de señales a mostrar")
	countOnly := flag.Bool("count", false, "solo imprimir el total de señales persistidas")
	flag.Parse()

	cfg := config.Load()

	store, err := storage.NewSQLiteStorage(cfg.DatabasePath)
	if err != nil {
		slog.Error("failed to open storage", "err", err, "path", cfg.DatabasePath)
		os.Exit(1)
	}
	defer store.Close()

	ctx := context.Background()

	if *countOnly {
		count, err := store.GetSignalCount(ctx)
		if err != nil {
			slog.Error("failed to count signals", "err", err)
			os.Exit(1)
		}
		fmt.Printf("total signals: %d\n", count)
		return
	}

	var signals []domain.Signal
	switch {
	case *market != "":
		signals, err = store.GetSignalsForMarket(ctx, *market, *limit)
	case *matchID != 0:
		signals, err = store.GetSignalsForMatch(ctx, *matchID, *limit)
	default:
		fmt.Fprintln(os.Stderr, "usage: signalctl -market <condition_id> | -match <match_id> | -count")
		os.Exit(2)
	}
	if err != nil {
		slog.Error("failed to fetch signals", "err", err)
		os.Exit(1)
	}

	printSignals(signals)
}

func printSignals(signals []domain.Signal) {
	if len(signals) == 0 {
		fmt.Println("no signals found")
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Match", "Type", "WinProb A", "Odds A", "Edge", "Confidence", "Strength", "Reason")

	for _, s := range signals {
		table.Append(
			fmt.Sprintf("%d", s.ID),
			fmt.Sprintf("%d", s.MatchID),
			string(s.SignalType),
			fmt.Sprintf("%.3f", s.TeamAWinProb),
			fmt.Sprintf("%.3f", s.MarketTeamAOdds),
			fmt.Sprintf("%+.3f", s.Edge),
			fmt.Sprintf("%.3f", s.Confidence),
			string(s.Strength),
			s.Reason,
		)
	}

	table.Render()
}
