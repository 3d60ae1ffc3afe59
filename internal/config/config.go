// Package config carga la configuración del proceso, puramente desde
// variables de entorno (sin archivo YAML).
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config es la configuración completa del supervisor.
type Config struct {
	PolymarketAPIURL       string
	PolymarketScanInterval time.Duration
	LiveMatchPollInterval  time.Duration
	DatabasePath           string
	TeamAliasesPath        string
	Log                    LogConfig
}

// LogConfig controla el formato y nivel del logger estructurado.
type LogConfig struct {
	Level  string // debug | info | warn | error
	Format string // text | json
}

const (
	defaultPolymarketAPIURL       = "https://gamma-api.polymarket.com"
	defaultPolymarketScanInterval = 300 * time.Second
	defaultLiveMatchPollInterval  = 5 * time.Second
	defaultDatabaseURL            = "sqlite:data/signals.db"
	defaultTeamAliasesPath        = "data/team_aliases.json"
)

// Load carga la configuración desde variables de entorno. Un archivo .env
// en el directorio de trabajo se carga primero, si existe, y puebla el
// entorno del proceso antes de leer estas variables.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		PolymarketAPIURL:       envOrDefault("POLYMARKET_API_URL", defaultPolymarketAPIURL),
		PolymarketScanInterval: envDurationSeconds("POLYMARKET_SCAN_INTERVAL", defaultPolymarketScanInterval),
		LiveMatchPollInterval:  envDurationSeconds("LIVE_MATCH_POLL_INTERVAL", defaultLiveMatchPollInterval),
		DatabasePath:           stripSQLitePrefix(envOrDefault("DATABASE_URL", defaultDatabaseURL)),
		TeamAliasesPath:        defaultTeamAliasesPath,
		Log: LogConfig{
			Level:  envOrDefault("LOG_LEVEL", "info"),
			Format: envOrDefault("LOG_FORMAT", "text"),
		},
	}

	return cfg
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDurationSeconds(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	seconds, err := strconv.Atoi(v)
	if err != nil || seconds <= 0 {
		return def
	}
	return time.Duration(seconds) * time.Second
}

// stripSQLitePrefix elimina el prefijo "sqlite:" de una DATABASE_URL, ya que
// modernc.org/sqlite espera una ruta de archivo simple.
func stripSQLitePrefix(url string) string {
	const prefix = "sqlite:"
	if len(url) > len(prefix) && url[:len(prefix)] == prefix {
		return url[len(prefix):]
	}
	return url
}
