package models

// TeamStats holds the four per-team statistics the engine scores.
// A nil field means the value is unknown and the configured default applies.
type TeamStats struct {
	GoalsForPerGame     *float64 `json:"goalsForPerGame" validate:"omitempty,gte=0"`
	GoalsAgainstPerGame *float64 `json:"goalsAgainstPerGame" validate:"omitempty,gte=0"`
	PowerPlayPct        *float64 `json:"powerPlayPct" validate:"omitempty,gte=0,lte=100"`
	PenaltyKillPct      *float64 `json:"penaltyKillPct" validate:"omitempty,gte=0,lte=100"`
}

// TeamInput is one side of a match as seen by the engine
type TeamInput struct {
	Name      string     `json:"name,omitempty"`
	Stats     *TeamStats `json:"stats,omitempty" validate:"omitempty"`
	Moneyline *int       `json:"moneyline,omitempty" validate:"omitempty,ne=0"` // American odds, e.g. -120, +150
}

// HasMoneyline reports whether the side carries a usable American price.
// Zero is not a valid American price and is treated as missing.
func (t TeamInput) HasMoneyline() bool {
	return t.Moneyline != nil && *t.Moneyline != 0
}

// MatchInput is a two-team contest with optional point spreads
type MatchInput struct {
	ID              string    `json:"id,omitempty"`
	Home            TeamInput `json:"home"`
	Away            TeamInput `json:"away"`
	HomePointSpread *float64  `json:"homePointSpread,omitempty"`
	AwayPointSpread *float64  `json:"awayPointSpread,omitempty"`
}

// HasMarket reports whether both moneylines are usable
func (m MatchInput) HasMarket() bool {
	return m.Home.HasMoneyline() && m.Away.HasMoneyline()
}

// TeamName returns the display name for a side, falling back to "Home"/"Away".
func (m MatchInput) TeamName(side Side) string {
	if side == SideHome {
		if m.Home.Name != "" {
			return m.Home.Name
		}
		return "Home"
	}
	if m.Away.Name != "" {
		return m.Away.Name
	}
	return "Away"
}

// Moneyline returns the price for a side, if any
func (m MatchInput) Moneyline(side Side) (int, bool) {
	team := m.Away
	if side == SideHome {
		team = m.Home
	}
	if !team.HasMoneyline() {
		return 0, false
	}
	return *team.Moneyline, true
}
