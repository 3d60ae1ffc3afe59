package domain

import (
	"fmt"
	"math"
)

// lateGameThresholdSeconds es el umbral de game_time que separa
// "mid game" de "late game" (35 minutos).
const lateGameThresholdSeconds = 2100

// gameDurationSaturationSeconds es el tiempo de juego a partir del cual el
// factor de progreso satura en 1.0 (40 minutos).
const gameDurationSaturationSeconds = 2400

// ClassifySignalType decide el tipo de evento de un update; la primera
// regla que aplica, en orden, gana.
func ClassifySignalType(current LiveMatchState, previous *LiveMatchState) SignalType {
	if previous == nil {
		return SignalGameStart
	}

	barracksDelta := (current.Radiant.BarracksKilled - previous.Radiant.BarracksKilled) +
		(current.Dire.BarracksKilled - previous.Dire.BarracksKilled)
	if barracksDelta > 0 {
		return SignalBarracksKill
	}

	towersDelta := (current.Radiant.TowersKilled - previous.Radiant.TowersKilled) +
		(current.Dire.TowersKilled - previous.Dire.TowersKilled)
	if towersDelta > 0 {
		return SignalTowerKill
	}

	killsDelta := (current.Radiant.Kills - previous.Radiant.Kills) +
		(current.Dire.Kills - previous.Dire.Kills)
	if killsDelta >= 5 {
		return SignalKillSpree
	}

	if absInt64(current.GoldLead-previous.GoldLead) >= 5000 {
		return SignalGoldSwing
	}

	if previous.GameTime <= lateGameThresholdSeconds && current.GameTime > lateGameThresholdSeconds {
		return SignalLateGame
	}

	return SignalPeriodicUpdate
}

// gameProgress satura en 1.0 a los 40 minutos y nunca baja de 0, incluso con
// un game_time negativo durante el draft.
func gameProgress(gameTime int32) float64 {
	progress := float64(gameTime) / gameDurationSaturationSeconds
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// WinProbability calcula la probabilidad de victoria de radiant a partir del
// estado actual. El nombre es literal: el modelo nunca rota según la
// orientación team_a/team_b del mercado, a propósito.
func WinProbability(state LiveMatchState) float64 {
	p := 0.5
	p += 0.005 * float64(state.Radiant.Kills-state.Dire.Kills)
	p += 0.01 * (float64(state.GoldLead) / 1000)
	p += 0.03 * float64(state.Radiant.TowersKilled-state.Dire.TowersKilled)
	p += 0.08 * float64(state.Radiant.BarracksKilled-state.Dire.BarracksKilled)

	progress := gameProgress(state.GameTime)
	deviation := p - 0.5
	amplified := 0.5 + deviation*(1+0.5*progress)

	return clamp(amplified, 0.05, 0.95)
}

// Confidence calcula la confianza del modelo.
func Confidence(state LiveMatchState) float64 {
	progress := gameProgress(state.GameTime)
	killDiff := state.Radiant.Kills - state.Dire.Kills

	confidence := 0.5 + 0.3*progress
	if absInt(killDiff) >= 10 || absInt64(state.GoldLead) >= 10000 {
		confidence += 0.15
	}

	return clamp(confidence, 0.3, 0.95)
}

// Edge es el modelo menos el mercado, para team A (ver nota de orientación
// en WinProbability).
func Edge(teamAWinProb, marketTeamAOdds float64) float64 {
	return teamAWinProb - marketTeamAOdds
}

// ClassifyStrength deriva la fuerza de la señal a partir de |edge|.
// Las comparaciones son estrictas: un edge exactamente en un umbral cae en
// el bucket superior, no en el inferior.
func ClassifyStrength(edge float64) Strength {
	abs := math.Abs(edge)
	switch {
	case abs < 0.03:
		return StrengthWeak
	case abs < 0.07:
		return StrengthModerate
	case abs < 0.12:
		return StrengthStrong
	default:
		return StrengthVeryStrong
	}
}

// BuildReason arma el texto legible por humanos, plantillado por tipo de
// señal, conteniendo nombres de equipo, contadores y el edge redondeado al
// entero más cercano.
func BuildReason(signalType SignalType, market PolymarketMarket, current LiveMatchState, edge float64) string {
	edgePct := int(math.Round(edge * 100))

	switch signalType {
	case SignalGameStart:
		return fmt.Sprintf("Game started: %s vs %s (market implies %.0f%% for %s)",
			market.TeamA, market.TeamB, market.TeamAOdds*100, market.TeamA)
	case SignalBarracksKill:
		return fmt.Sprintf("Barracks destroyed: radiant %d / dire %d rax down, edge %+d%%",
			current.Radiant.BarracksKilled, current.Dire.BarracksKilled, edgePct)
	case SignalTowerKill:
		return fmt.Sprintf("Tower destroyed: radiant %d / dire %d towers down, edge %+d%%",
			current.Radiant.TowersKilled, current.Dire.TowersKilled, edgePct)
	case SignalKillSpree:
		return fmt.Sprintf("Kill spree: %s %d kills, %s %d kills, edge %+d%%",
			current.Radiant.Name, current.Radiant.Kills, current.Dire.Name, current.Dire.Kills, edgePct)
	case SignalGoldSwing:
		return fmt.Sprintf("Gold swing to %s%dk, edge %+d%%", goldSign(current.GoldLead), absInt64(current.GoldLead)/1000, edgePct)
	case SignalLateGame:
		return fmt.Sprintf("Late game: %d:%02d elapsed, edge %+d%%", current.GameTime/60, current.GameTime%60, edgePct)
	default:
		return fmt.Sprintf("Periodic update: %s vs %s, edge %+d%%", market.TeamA, market.TeamB, edgePct)
	}
}

func goldSign(goldLead int64) string {
	if goldLead < 0 {
		return "-"
	}
	return ""
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
