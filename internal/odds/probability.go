// Package odds converts American moneylines into probabilities and strips bookmaker margin.
package odds

import "math"

// Clamp01 limits p to [0,1]. NaN maps to 0.
func Clamp01(p float64) float64 {
	if math.IsNaN(p) || p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// MoneylineToProbability converts an American price to its implied probability.
// Example: -150 -> 0.6, +150 -> 0.4. Zero is not a valid price and returns 0.
func MoneylineToProbability(ml int) float64 {
	switch {
	case ml > 0:
		// Underdog: 100 / (odds + 100)
		return 100.0 / (float64(ml) + 100.0)
	case ml < 0:
		// Favorite: |odds| / (|odds| + 100)
		abs := -float64(ml)
		return abs / (abs + 100.0)
	default:
		return 0
	}
}

// DevigTwoWay removes the overround from a two-outcome market by proportional scaling.
// An unusable market (sum <= 0) is treated as a coin flip.
func DevigTwoWay(pHome, pAway float64) (float64, float64) {
	k := pHome + pAway
	if k <= 0 || math.IsNaN(k) {
		return 0.5, 0.5
	}
	return Clamp01(pHome / k), Clamp01(pAway / k)
}

// Overround returns the bookmaker margin carried by a two-way market, e.g. 0.035 for 103.5%.
func Overround(homeML, awayML int) float64 {
	return MoneylineToProbability(homeML) + MoneylineToProbability(awayML) - 1.0
}
