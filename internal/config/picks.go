package config

// Bounds is the raw range a statistic is scaled over
type Bounds struct {
	Min float64 `mapstructure:"min" json:"min"`
	Max float64 `mapstructure:"max" json:"max"`
}

// StatsDefaults are used in place of unknown team statistics
type StatsDefaults struct {
	GoalsForPerGame     float64 `mapstructure:"goalsForPerGame" json:"goalsForPerGame" validate:"gte=0"`
	GoalsAgainstPerGame float64 `mapstructure:"goalsAgainstPerGame" json:"goalsAgainstPerGame" validate:"gte=0"`
	PowerPlayPct        float64 `mapstructure:"powerPlayPct" json:"powerPlayPct" validate:"gte=0,lte=100"`
	PenaltyKillPct      float64 `mapstructure:"penaltyKillPct" json:"penaltyKillPct" validate:"gte=0,lte=100"`
}

// StatsBounds holds the normalisation range per statistic
type StatsBounds struct {
	GFPerGame Bounds `mapstructure:"gfPerGame" json:"gfPerGame"`
	GAPerGame Bounds `mapstructure:"gaPerGame" json:"gaPerGame"`
	PPPct     Bounds `mapstructure:"ppPct" json:"ppPct"`
	PKPct     Bounds `mapstructure:"pkPct" json:"pkPct"`
}

// StatWeights weights the four normalised statistics
type StatWeights struct {
	GF float64 `mapstructure:"gf" json:"gf" validate:"gte=0"`
	GA float64 `mapstructure:"ga" json:"ga" validate:"gte=0"`
	PP float64 `mapstructure:"pp" json:"pp" validate:"gte=0"`
	PK float64 `mapstructure:"pk" json:"pk" validate:"gte=0"`
}

// SiggyConfig tunes the close-on-stats underdog heuristic
type SiggyConfig struct {
	StatsCloseThreshold float64 `mapstructure:"statsCloseThreshold" json:"statsCloseThreshold" validate:"gte=0,lte=1"`
	JuicyUnderdogMinML  int     `mapstructure:"juicyUnderdogMinML" json:"juicyUnderdogMinML"`
	UnderdogBump        float64 `mapstructure:"underdogBump" json:"underdogBump" validate:"gte=0,lte=1"`
}

// PucklineConfig tunes the underdog spread recommendation
type PucklineConfig struct {
	AssumeStandardIfMissing bool    `mapstructure:"assumeStandardIfMissing" json:"assumeStandardIfMissing"`
	StandardLine            float64 `mapstructure:"standardLine" json:"standardLine" validate:"gt=0"`
	DogViableMarketProbMax  float64 `mapstructure:"dogViableMarketProbMax" json:"dogViableMarketProbMax" validate:"gte=0,lte=1"`
	MinConfidence           int     `mapstructure:"minConfidence" json:"minConfidence" validate:"gte=0,lte=100"`
	ExtraConfIfStatsClose   float64 `mapstructure:"extraConfIfStatsClose" json:"extraConfIfStatsClose" validate:"gte=0,lte=1"`
	ConfScale               float64 `mapstructure:"confScale" json:"confScale" validate:"gte=0"`
	DogTargetProb           float64 `mapstructure:"dogTargetProb" json:"dogTargetProb" validate:"gte=0,lte=1"`
}

// PicksConfig is the effective set of constants used by the pick engine.
// It is a plain value; each resolve produces a fresh copy.
type PicksConfig struct {
	MarketWeight  float64        `mapstructure:"marketWeight" json:"marketWeight" validate:"gte=0,lte=1"`
	StatsDefaults StatsDefaults  `mapstructure:"statsDefaults" json:"statsDefaults"`
	StatsBounds   StatsBounds    `mapstructure:"statsBounds" json:"statsBounds"`
	StatWeights   StatWeights    `mapstructure:"statWeights" json:"statWeights"`
	Siggy         SiggyConfig    `mapstructure:"siggy" json:"siggy"`
	Puckline      PucklineConfig `mapstructure:"puckline" json:"puckline"`
}

// DefaultPicksConfig returns the built-in engine constants
func DefaultPicksConfig() PicksConfig {
	return PicksConfig{
		MarketWeight: 0.62,
		StatsDefaults: StatsDefaults{
			GoalsForPerGame:     3.0,
			GoalsAgainstPerGame: 3.0,
			PowerPlayPct:        20.0,
			PenaltyKillPct:      78.0,
		},
		StatsBounds: StatsBounds{
			GFPerGame: Bounds{Min: 2.2, Max: 4.0},
			GAPerGame: Bounds{Min: 2.0, Max: 4.0},
			PPPct:     Bounds{Min: 12.0, Max: 30.0},
			PKPct:     Bounds{Min: 70.0, Max: 88.0},
		},
		StatWeights: StatWeights{GF: 0.38, GA: 0.32, PP: 0.18, PK: 0.12},
		Siggy: SiggyConfig{
			StatsCloseThreshold: 0.07,
			JuicyUnderdogMinML:  150,
			UnderdogBump:        0.018,
		},
		Puckline: PucklineConfig{
			AssumeStandardIfMissing: true,
			StandardLine:            1.5,
			DogViableMarketProbMax:  0.45,
			MinConfidence:           40,
			ExtraConfIfStatsClose:   0.03,
			ConfScale:               200,
			DogTargetProb:           0.55,
		},
	}
}
