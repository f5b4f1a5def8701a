// Package picks blends market and statistics signals into a moneyline pick and an
// optional underdog puckline recommendation.
package picks

import (
	"fmt"
	"math"

	"github.com/yourusername/siggys-picks/internal/config"
	"github.com/yourusername/siggys-picks/internal/models"
	"github.com/yourusername/siggys-picks/internal/odds"
	"github.com/yourusername/siggys-picks/internal/stats"
)

// Evaluation is a PickResult together with the intermediate values that produced it
type Evaluation struct {
	Result          models.PickResult
	MarketAvailable bool
	PHomeMarket     float64
	PAwayMarket     float64
	StrengthHome    float64
	StrengthAway    float64
	PHome           float64
	PAway           float64
	// Underdog is empty when there is no market or both prices are equal
	Underdog    models.Side
	StatsClose  bool
	BumpApplied bool
}

// SuggestPick computes the recommendation for a match. It is a pure function of
// its arguments.
func SuggestPick(match models.MatchInput, cfg config.PicksConfig) models.PickResult {
	return Evaluate(match, cfg).Result
}

// Evaluate runs the pick pipeline and keeps the intermediate values for logging and metrics.
func Evaluate(match models.MatchInput, cfg config.PicksConfig) Evaluation {
	ev := Evaluation{PHomeMarket: 0.5, PAwayMarket: 0.5}
	var rationale []string

	// Market read
	ev.MarketAvailable = match.HasMarket()
	if ev.MarketAvailable {
		ev.PHomeMarket, ev.PAwayMarket = odds.DevigTwoWay(
			odds.MoneylineToProbability(*match.Home.Moneyline),
			odds.MoneylineToProbability(*match.Away.Moneyline),
		)
		rationale = append(rationale, fmt.Sprintf("Market says Home %d%%, Away %d%%.",
			percent(ev.PHomeMarket), percent(ev.PAwayMarket)))
	} else {
		rationale = append(rationale, "Moneylines missing; falling back to stats only.")
	}

	// Stats read
	ev.StrengthHome = stats.Strength(cfg, match.Home.Stats)
	ev.StrengthAway = stats.Strength(cfg, match.Away.Stats)
	rationale = append(rationale, fmt.Sprintf("Stats strength Home %d%%, Away %d%%.",
		percent(ev.StrengthHome), percent(ev.StrengthAway)))

	// Blend
	w := cfg.MarketWeight
	statsSide := stats.SideProbability(ev.StrengthHome, ev.StrengthAway)
	pHome := odds.Clamp01(w*ev.PHomeMarket + (1-w)*statsSide)
	pAway := odds.Clamp01(1 - pHome)

	// Underdog bump
	ev.StatsClose = math.Abs(ev.StrengthHome-ev.StrengthAway) <= cfg.Siggy.StatsCloseThreshold
	ev.Underdog = underdog(match)
	if ev.StatsClose && ev.Underdog != "" {
		dogML, _ := match.Moneyline(ev.Underdog)
		if dogML >= cfg.Siggy.JuicyUnderdogMinML {
			bump := cfg.Siggy.UnderdogBump
			if ev.Underdog == models.SideHome {
				pHome, pAway = pHome+bump, pAway-bump
			} else {
				pHome, pAway = pHome-bump, pAway+bump
			}
			ev.BumpApplied = true
			rationale = append(rationale, fmt.Sprintf("Siggy bump: %s dog close on stats.", sideWord(ev.Underdog)))
		}
		pHome, pAway = odds.Clamp01(pHome), odds.Clamp01(pAway)
	}
	ev.PHome, ev.PAway = pHome, pAway

	// Moneyline decision, ties go to the home side
	side := models.SideHome
	if pHome < pAway {
		side = models.SideAway
	}
	confidence := clampInt(roundHalfUp(100*math.Abs(pHome-pAway)), 0, 100)
	rationale = append(rationale, fmt.Sprintf("ML lean: %s (conf %d).", side, confidence))

	// Underdog puckline
	pick, note := underdogPuckline(match, cfg, ev)
	if pick != nil {
		rationale = append(rationale, note)
	}

	ev.Result = models.PickResult{
		MoneylinePick:       side,
		MoneylineConfidence: confidence,
		WinLean:             side,
		WinConfidence:       confidence,
		UnderdogPuckline:    pick,
		Rationale:           rationale,
	}
	return ev
}

// underdog compares raw moneylines: the strictly larger price is the dog.
// Implied probabilities are not consulted.
func underdog(match models.MatchInput) models.Side {
	if !match.HasMarket() {
		return ""
	}
	home, away := *match.Home.Moneyline, *match.Away.Moneyline
	switch {
	case home > away:
		return models.SideHome
	case away > home:
		return models.SideAway
	default:
		return ""
	}
}

func sideWord(s models.Side) string {
	if s == models.SideHome {
		return "home"
	}
	return "away"
}

func percent(p float64) int {
	return roundHalfUp(p * 100)
}

// roundHalfUp rounds .5 towards positive infinity
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
