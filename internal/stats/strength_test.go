package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/siggys-picks/internal/config"
	"github.com/yourusername/siggys-picks/internal/models"
)

func f(v float64) *float64 { return &v }

func TestNormalize01(t *testing.T) {
	b := config.Bounds{Min: 2.0, Max: 4.0}

	assert.Equal(t, 0.0, Normalize01(1.5, b))
	assert.Equal(t, 0.0, Normalize01(2.0, b))
	assert.InDelta(t, 0.5, Normalize01(3.0, b), 1e-12)
	assert.Equal(t, 1.0, Normalize01(4.0, b))
	assert.Equal(t, 1.0, Normalize01(6.0, b))
}

func TestNormalize01DegenerateBounds(t *testing.T) {
	b := config.Bounds{Min: 2.2, Max: 2.2}
	for _, v := range []float64{-10, 0, 2.2, 3.1, 99} {
		assert.Equal(t, 0.5, Normalize01(v, b))
	}
}

func TestStrengthDefaults(t *testing.T) {
	cfg := config.DefaultPicksConfig()

	// gf 0.4444, ga 0.5, pp 0.4444, pk 0.4444 under the default bounds
	want := 0.68*(0.8/1.8) + 0.32*0.5
	assert.InDelta(t, want, Strength(cfg, nil), 1e-9)
	assert.InDelta(t, want, Strength(cfg, &models.TeamStats{}), 1e-9)
}

func TestStrengthPartialStatsUseOwnDefaults(t *testing.T) {
	cfg := config.DefaultPicksConfig()

	only := &models.TeamStats{GoalsForPerGame: f(4.0)}
	r := Resolve(cfg.StatsDefaults, only)
	assert.Equal(t, 4.0, r.GoalsForPerGame)
	assert.Equal(t, 3.0, r.GoalsAgainstPerGame)
	assert.Equal(t, 20.0, r.PowerPlayPct)
	assert.Equal(t, 78.0, r.PenaltyKillPct)

	assert.Greater(t, Strength(cfg, only), Strength(cfg, nil))
}

func TestStrengthStrongTeam(t *testing.T) {
	cfg := config.DefaultPicksConfig()
	s := &models.TeamStats{
		GoalsForPerGame:     f(3.8),
		GoalsAgainstPerGame: f(2.4),
		PowerPlayPct:        f(26),
		PenaltyKillPct:      f(85),
	}

	want := 0.38*(1.6/1.8) + 0.32*0.8 + 0.18*(14.0/18.0) + 0.12*(15.0/18.0)
	assert.InDelta(t, want, Strength(cfg, s), 1e-9)
}

func TestStrengthClampedToUnit(t *testing.T) {
	cfg := config.DefaultPicksConfig()
	cfg.StatWeights = config.StatWeights{GF: 1, GA: 1, PP: 1, PK: 1}

	best := &models.TeamStats{
		GoalsForPerGame:     f(5),
		GoalsAgainstPerGame: f(1),
		PowerPlayPct:        f(35),
		PenaltyKillPct:      f(95),
	}
	assert.Equal(t, 1.0, Strength(cfg, best))
}

func TestStrengthMonotonic(t *testing.T) {
	cfg := config.DefaultPicksConfig()
	base := func() *models.TeamStats {
		return &models.TeamStats{
			GoalsForPerGame:     f(3.0),
			GoalsAgainstPerGame: f(3.0),
			PowerPlayPct:        f(20),
			PenaltyKillPct:      f(78),
		}
	}

	tests := []struct {
		name       string
		lo, hi     float64
		step       float64
		set        func(s *models.TeamStats, v float64)
		increasing bool
	}{
		{"goals for", 2.2, 4.0, 0.1, func(s *models.TeamStats, v float64) { s.GoalsForPerGame = f(v) }, true},
		{"goals against", 2.0, 4.0, 0.1, func(s *models.TeamStats, v float64) { s.GoalsAgainstPerGame = f(v) }, false},
		{"power play", 12, 30, 1, func(s *models.TeamStats, v float64) { s.PowerPlayPct = f(v) }, true},
		{"penalty kill", 70, 88, 1, func(s *models.TeamStats, v float64) { s.PenaltyKillPct = f(v) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := -1.0
			if !tt.increasing {
				prev = 2.0
			}
			for v := tt.lo; v <= tt.hi+1e-9; v += tt.step {
				s := base()
				tt.set(s, v)
				got := Strength(cfg, s)
				if tt.increasing {
					assert.GreaterOrEqual(t, got, prev, "value %v", v)
				} else {
					assert.LessOrEqual(t, got, prev, "value %v", v)
				}
				prev = got
			}
		})
	}
}

func TestSideProbability(t *testing.T) {
	assert.Equal(t, 0.5, SideProbability(0, 0))
	assert.InDelta(t, 0.5, SideProbability(0.46, 0.46), 1e-12)
	assert.InDelta(t, 0.75, SideProbability(0.6, 0.2), 1e-12)
}
