package picks

import (
	"fmt"

	"github.com/yourusername/siggys-picks/internal/config"
	"github.com/yourusername/siggys-picks/internal/models"
	"github.com/yourusername/siggys-picks/internal/odds"
)

// spreadLine returns a side's spread: the supplied value if present, otherwise the
// standard line signed by dog/favourite when the config allows assuming it.
func spreadLine(match models.MatchInput, side, dog models.Side, pl config.PucklineConfig) (float64, bool) {
	supplied := match.AwayPointSpread
	if side == models.SideHome {
		supplied = match.HomePointSpread
	}
	if supplied != nil {
		return *supplied, true
	}
	if !pl.AssumeStandardIfMissing {
		return 0, false
	}
	if side == dog {
		return pl.StandardLine, true
	}
	return -pl.StandardLine, true
}

// underdogPuckline recommends the dog at +standardLine when it is cheap enough in the
// market or close on stats. Returns nil when nothing qualifies.
func underdogPuckline(match models.MatchInput, cfg config.PicksConfig, ev Evaluation) (*models.PucklinePick, string) {
	if !ev.MarketAvailable || ev.Underdog == "" {
		return nil, ""
	}
	pl := cfg.Puckline
	dog := ev.Underdog

	// An alternate line on the dog is not the bet this heuristic prices.
	if line, known := spreadLine(match, dog, dog, pl); known && line != pl.StandardLine {
		return nil, ""
	}

	dogMarket := ev.PAwayMarket
	if dog == models.SideHome {
		dogMarket = ev.PHomeMarket
	}
	if dogMarket > pl.DogViableMarketProbMax && !ev.StatsClose {
		return nil, ""
	}

	bonus := 0.0
	if ev.StatsClose {
		bonus = pl.ExtraConfIfStatsClose
	}
	conf := roundHalfUp((pl.DogTargetProb - dogMarket + bonus) * pl.ConfScale)
	if conf > 100 {
		conf = 100
	}
	if conf < pl.MinConfidence {
		conf = pl.MinConfidence
	}

	article := "a"
	if dog == models.SideAway {
		article = "an"
	}
	note := fmt.Sprintf("Siggy likes %s %s dog %s.", article, sideWord(dog), odds.FormatLine(pl.StandardLine))

	return &models.PucklinePick{Side: dog, Line: pl.StandardLine, Confidence: conf}, note
}
