package config

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"

	"github.com/mitchellh/mapstructure"

	"github.com/yourusername/siggys-picks/internal/models"
)

// BoundsOverrides replaces either end of a Bounds pair
type BoundsOverrides struct {
	Min *float64 `mapstructure:"min" json:"min,omitempty"`
	Max *float64 `mapstructure:"max" json:"max,omitempty"`
}

// StatsDefaultsOverrides is a partial StatsDefaults
type StatsDefaultsOverrides struct {
	GoalsForPerGame     *float64 `mapstructure:"goalsForPerGame" json:"goalsForPerGame,omitempty"`
	GoalsAgainstPerGame *float64 `mapstructure:"goalsAgainstPerGame" json:"goalsAgainstPerGame,omitempty"`
	PowerPlayPct        *float64 `mapstructure:"powerPlayPct" json:"powerPlayPct,omitempty"`
	PenaltyKillPct      *float64 `mapstructure:"penaltyKillPct" json:"penaltyKillPct,omitempty"`
}

// StatsBoundsOverrides is a partial StatsBounds
type StatsBoundsOverrides struct {
	GFPerGame *BoundsOverrides `mapstructure:"gfPerGame" json:"gfPerGame,omitempty"`
	GAPerGame *BoundsOverrides `mapstructure:"gaPerGame" json:"gaPerGame,omitempty"`
	PPPct     *BoundsOverrides `mapstructure:"ppPct" json:"ppPct,omitempty"`
	PKPct     *BoundsOverrides `mapstructure:"pkPct" json:"pkPct,omitempty"`
}

// StatWeightsOverrides is a partial StatWeights
type StatWeightsOverrides struct {
	GF *float64 `mapstructure:"gf" json:"gf,omitempty"`
	GA *float64 `mapstructure:"ga" json:"ga,omitempty"`
	PP *float64 `mapstructure:"pp" json:"pp,omitempty"`
	PK *float64 `mapstructure:"pk" json:"pk,omitempty"`
}

// SiggyOverrides is a partial SiggyConfig
type SiggyOverrides struct {
	StatsCloseThreshold *float64 `mapstructure:"statsCloseThreshold" json:"statsCloseThreshold,omitempty"`
	JuicyUnderdogMinML  *int     `mapstructure:"juicyUnderdogMinML" json:"juicyUnderdogMinML,omitempty"`
	UnderdogBump        *float64 `mapstructure:"underdogBump" json:"underdogBump,omitempty"`
}

// PucklineOverrides is a partial PucklineConfig
type PucklineOverrides struct {
	AssumeStandardIfMissing *bool    `mapstructure:"assumeStandardIfMissing" json:"assumeStandardIfMissing,omitempty"`
	StandardLine            *float64 `mapstructure:"standardLine" json:"standardLine,omitempty"`
	DogViableMarketProbMax  *float64 `mapstructure:"dogViableMarketProbMax" json:"dogViableMarketProbMax,omitempty"`
	MinConfidence           *int     `mapstructure:"minConfidence" json:"minConfidence,omitempty"`
	ExtraConfIfStatsClose   *float64 `mapstructure:"extraConfIfStatsClose" json:"extraConfIfStatsClose,omitempty"`
	ConfScale               *float64 `mapstructure:"confScale" json:"confScale,omitempty"`
	DogTargetProb           *float64 `mapstructure:"dogTargetProb" json:"dogTargetProb,omitempty"`
}

// PicksOverrides mirrors PicksConfig with every leaf optional.
// A nil field keeps the default.
type PicksOverrides struct {
	MarketWeight  *float64                `mapstructure:"marketWeight" json:"marketWeight,omitempty"`
	StatsDefaults *StatsDefaultsOverrides `mapstructure:"statsDefaults" json:"statsDefaults,omitempty"`
	StatsBounds   *StatsBoundsOverrides   `mapstructure:"statsBounds" json:"statsBounds,omitempty"`
	StatWeights   *StatWeightsOverrides   `mapstructure:"statWeights" json:"statWeights,omitempty"`
	Siggy         *SiggyOverrides         `mapstructure:"siggy" json:"siggy,omitempty"`
	Puckline      *PucklineOverrides      `mapstructure:"puckline" json:"puckline,omitempty"`
}

// Resolve merges overrides onto the defaults field by field.
// Nested sections are merged individually, so a partial bound pair keeps its other end.
func Resolve(o *PicksOverrides) PicksConfig {
	cfg := DefaultPicksConfig()
	if o == nil {
		return cfg
	}

	overlay(&cfg.MarketWeight, o.MarketWeight)

	if d := o.StatsDefaults; d != nil {
		overlay(&cfg.StatsDefaults.GoalsForPerGame, d.GoalsForPerGame)
		overlay(&cfg.StatsDefaults.GoalsAgainstPerGame, d.GoalsAgainstPerGame)
		overlay(&cfg.StatsDefaults.PowerPlayPct, d.PowerPlayPct)
		overlay(&cfg.StatsDefaults.PenaltyKillPct, d.PenaltyKillPct)
	}

	if b := o.StatsBounds; b != nil {
		b.GFPerGame.applyTo(&cfg.StatsBounds.GFPerGame)
		b.GAPerGame.applyTo(&cfg.StatsBounds.GAPerGame)
		b.PPPct.applyTo(&cfg.StatsBounds.PPPct)
		b.PKPct.applyTo(&cfg.StatsBounds.PKPct)
	}

	if w := o.StatWeights; w != nil {
		overlay(&cfg.StatWeights.GF, w.GF)
		overlay(&cfg.StatWeights.GA, w.GA)
		overlay(&cfg.StatWeights.PP, w.PP)
		overlay(&cfg.StatWeights.PK, w.PK)
	}

	if s := o.Siggy; s != nil {
		overlay(&cfg.Siggy.StatsCloseThreshold, s.StatsCloseThreshold)
		overlay(&cfg.Siggy.JuicyUnderdogMinML, s.JuicyUnderdogMinML)
		overlay(&cfg.Siggy.UnderdogBump, s.UnderdogBump)
	}

	if p := o.Puckline; p != nil {
		overlay(&cfg.Puckline.AssumeStandardIfMissing, p.AssumeStandardIfMissing)
		overlay(&cfg.Puckline.StandardLine, p.StandardLine)
		overlay(&cfg.Puckline.DogViableMarketProbMax, p.DogViableMarketProbMax)
		overlay(&cfg.Puckline.MinConfidence, p.MinConfidence)
		overlay(&cfg.Puckline.ExtraConfIfStatsClose, p.ExtraConfIfStatsClose)
		overlay(&cfg.Puckline.ConfScale, p.ConfScale)
		overlay(&cfg.Puckline.DogTargetProb, p.DogTargetProb)
	}

	return cfg
}

// ResolveChecked merges and validates. An invalid result is discarded in favour
// of the defaults; the returned error says why.
func ResolveChecked(o *PicksOverrides) (PicksConfig, error) {
	cfg := Resolve(o)
	if err := ValidatePicks(&cfg); err != nil {
		return DefaultPicksConfig(), fmt.Errorf("%w: %v", models.ErrInvalidOverrides, err)
	}
	return cfg, nil
}

// ResolvePayload resolves an untyped override payload, typically decoded JSON or YAML.
// Anything that is not a well-typed mapping is dropped as a whole and the defaults are returned.
func ResolvePayload(raw any) (PicksConfig, error) {
	if raw == nil {
		return DefaultPicksConfig(), nil
	}

	overrides, err := DecodeOverrides(raw)
	if err != nil {
		return DefaultPicksConfig(), err
	}
	return ResolveChecked(overrides)
}

// ResolveJSON is ResolvePayload for a raw JSON document
func ResolveJSON(data []byte) (PicksConfig, error) {
	if len(data) == 0 {
		return DefaultPicksConfig(), nil
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return DefaultPicksConfig(), fmt.Errorf("%w: %v", models.ErrInvalidOverrides, err)
	}
	return ResolvePayload(raw)
}

// DecodeOverrides converts an untyped payload into PicksOverrides.
// Unknown keys are ignored; mistyped values are an error.
func DecodeOverrides(raw any) (*PicksOverrides, error) {
	overrides := &PicksOverrides{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     overrides,
		TagName:    "mapstructure",
		DecodeHook: rejectFractionalInts,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build overrides decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidOverrides, err)
	}
	return overrides, nil
}

// rejectFractionalInts stops mapstructure from truncating 149.9 into an int field.
func rejectFractionalInts(from, to reflect.Kind, data interface{}) (interface{}, error) {
	switch to {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
	default:
		return data, nil
	}
	if from != reflect.Float32 && from != reflect.Float64 {
		return data, nil
	}
	f := reflect.ValueOf(data).Float()
	if f != math.Trunc(f) {
		return nil, fmt.Errorf("expected a whole number, got %v", data)
	}
	return data, nil
}

func (b *BoundsOverrides) applyTo(dst *Bounds) {
	if b == nil {
		return
	}
	overlay(&dst.Min, b.Min)
	overlay(&dst.Max, b.Max)
}

func overlay[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
