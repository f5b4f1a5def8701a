package models

import (
	"time"

	"github.com/google/uuid"
)

// Side identifies one of the two teams in a match
type Side string

const (
	SideHome Side = "HOME"
	SideAway Side = "AWAY"
)

// Opposite returns the other side
func (s Side) Opposite() Side {
	if s == SideHome {
		return SideAway
	}
	return SideHome
}

// PucklinePick is an underdog point-spread recommendation
type PucklinePick struct {
	Side       Side    `json:"side"`
	Line       float64 `json:"line"`
	Confidence int     `json:"confidence"`
}

// PickResult is the engine's recommendation for one match.
// Field names are consumed verbatim by the UI layer.
type PickResult struct {
	MoneylinePick       Side          `json:"moneylinePick"`
	MoneylineConfidence int           `json:"moneylineConfidence"`
	WinLean             Side          `json:"winLean"`
	WinConfidence       int           `json:"winConfidence"`
	UnderdogPuckline    *PucklinePick `json:"underdogPuckline,omitempty"`
	Rationale           []string      `json:"rationale"`
}

// HasPuckline reports whether an underdog spread was recommended
func (p *PickResult) HasPuckline() bool {
	return p.UnderdogPuckline != nil
}

// PickRecord wraps a PickResult with identifiers for batch and HTTP output
type PickRecord struct {
	ID          uuid.UUID  `json:"id"`
	MatchID     string     `json:"match_id,omitempty"`
	GeneratedAt time.Time  `json:"generated_at"`
	Pick        PickResult `json:"pick"`
	Summary     string     `json:"summary,omitempty"`
}

// NewPickRecord stamps a result with a fresh ID and timestamp
func NewPickRecord(matchID string, pick PickResult, generatedAt time.Time) PickRecord {
	return PickRecord{
		ID:          uuid.New(),
		MatchID:     matchID,
		GeneratedAt: generatedAt,
		Pick:        pick,
	}
}
