// Package stats turns raw team statistics into a single bounded strength score.
package stats

import (
	"github.com/yourusername/siggys-picks/internal/config"
	"github.com/yourusername/siggys-picks/internal/models"
	"github.com/yourusername/siggys-picks/internal/odds"
)

// Normalize01 scales value linearly into [0,1] over b. A zero-width range yields 0.5.
func Normalize01(value float64, b config.Bounds) float64 {
	if b.Max == b.Min {
		return 0.5
	}
	return odds.Clamp01((value - b.Min) / (b.Max - b.Min))
}

// Resolved is a TeamStats with every default applied
type Resolved struct {
	GoalsForPerGame     float64
	GoalsAgainstPerGame float64
	PowerPlayPct        float64
	PenaltyKillPct      float64
}

// Resolve substitutes each missing statistic with its configured default, independently.
func Resolve(d config.StatsDefaults, s *models.TeamStats) Resolved {
	r := Resolved{
		GoalsForPerGame:     d.GoalsForPerGame,
		GoalsAgainstPerGame: d.GoalsAgainstPerGame,
		PowerPlayPct:        d.PowerPlayPct,
		PenaltyKillPct:      d.PenaltyKillPct,
	}
	if s == nil {
		return r
	}
	if s.GoalsForPerGame != nil {
		r.GoalsForPerGame = *s.GoalsForPerGame
	}
	if s.GoalsAgainstPerGame != nil {
		r.GoalsAgainstPerGame = *s.GoalsAgainstPerGame
	}
	if s.PowerPlayPct != nil {
		r.PowerPlayPct = *s.PowerPlayPct
	}
	if s.PenaltyKillPct != nil {
		r.PenaltyKillPct = *s.PenaltyKillPct
	}
	return r
}

// Strength scores a team in [0,1]. Goals against is inverted since fewer is better.
func Strength(cfg config.PicksConfig, s *models.TeamStats) float64 {
	r := Resolve(cfg.StatsDefaults, s)
	b := cfg.StatsBounds
	w := cfg.StatWeights

	gf := Normalize01(r.GoalsForPerGame, b.GFPerGame)
	ga := 1 - Normalize01(r.GoalsAgainstPerGame, b.GAPerGame)
	pp := Normalize01(r.PowerPlayPct, b.PPPct)
	pk := Normalize01(r.PenaltyKillPct, b.PKPct)

	return odds.Clamp01(w.GF*gf + w.GA*ga + w.PP*pp + w.PK*pk)
}

// SideProbability converts a pair of strengths into the home side's share.
// Two zero strengths give an even split.
func SideProbability(sHome, sAway float64) float64 {
	total := sHome + sAway
	if total <= 0 {
		return 0.5
	}
	return sHome / total
}
