// Package factors implements the independent, bounded scoring heuristics
// that feed the spread prediction. Every score is signed toward the home
// team and every calculator degrades to a zero score when its inputs are
// missing.
package factors

// Weights is the named, versioned tuning table for the whole ensemble.
// All hand-tuned constants live here so the tuning can be audited and
// swapped without touching control flow.
type Weights struct {
	Version string

	// Conference strength
	ConferencePower    map[string]float64
	MajorConferences   map[string]bool
	ConferenceScale    float64
	MajorMismatchBonus float64

	// Weather
	DomeBonus           float64
	FreezingPenalty     float64
	ColdPenalty         float64
	HeatPenalty         float64
	HighWindPenalty     float64
	ModerateWindPenalty float64
	PrecipPenalty       float64

	// Home field
	HomeFieldPoints float64

	// Market-line divergence
	DivergenceThreshold float64
	DivergenceScale     float64
	DivergenceCap       float64

	// Large-favorite risk (market-relative, all <= 0)
	BlowoutFavoritePenalty   float64
	DoubleDigitHomePenalty   float64
	DoubleDigitAwayPenalty   float64
	SolidFavoritePenalty     float64

	// Seasonal pattern by week band
	EarlySeasonBoost float64
	MidSeasonBoost   float64
	LateSeasonFade   float64

	// Weather x market interaction
	FreezingSmallFavorite float64
	FreezingLargeFavorite float64
	ColdLargeFavorite     float64
	HotLargeFavorite      float64

	// Strength rating factor
	StrengthCap float64

	// Roster-derived signal clamps
	PlayerEfficiencyCap float64
	TeamEfficiencyCap   float64
	MomentumCap         float64
}

// conferencePowerRatings carries the fixed per-conference point ratings from
// the historical plus/minus study. Unknown conferences rate 0.
func conferencePowerRatings() map[string]float64 {
	return map[string]float64{
		"SEC":               5.7,
		"Big Ten":           4.1,
		"Big 12":            3.0,
		"ACC":               2.9,
		"Pac-12":            0.5,
		"Mountain West":     -0.2,
		"American Athletic": -0.8,
		"Sun Belt":          1.2,
		"Conference USA":    1.5,
		"Mid-American":      -1.1,
		"FBS Independents":  -4.5,
	}
}

func majorConferences() map[string]bool {
	return map[string]bool{
		"SEC":     true,
		"Big Ten": true,
		"Big 12":  true,
		"ACC":     true,
		"Pac-12":  true,
	}
}

// EnhancedWeights is the full ensemble: the original four factors plus the
// market-relative, seasonal, interaction, strength, and roster signals.
func EnhancedWeights() Weights {
	return Weights{
		Version: "enhanced-v2",

		ConferencePower:    conferencePowerRatings(),
		MajorConferences:   majorConferences(),
		ConferenceScale:    0.3,
		MajorMismatchBonus: 1.5,

		DomeBonus:           4.0,
		FreezingPenalty:     -2.5,
		ColdPenalty:         -1.0,
		HeatPenalty:         -0.5,
		HighWindPenalty:     -2.0,
		ModerateWindPenalty: -1.0,
		PrecipPenalty:       -1.5,

		HomeFieldPoints: 2.0,

		DivergenceThreshold: 3.0,
		DivergenceScale:     0.5,
		DivergenceCap:       4.0,

		BlowoutFavoritePenalty: -2.0,
		DoubleDigitHomePenalty: -1.5,
		DoubleDigitAwayPenalty: -1.0,
		SolidFavoritePenalty:   -0.5,

		EarlySeasonBoost: 1.0,
		MidSeasonBoost:   0.5,
		LateSeasonFade:   -0.5,

		FreezingSmallFavorite: 1.5,
		FreezingLargeFavorite: 0.8,
		ColdLargeFavorite:     -1.2,
		HotLargeFavorite:      0.5,

		StrengthCap: 6.0,

		PlayerEfficiencyCap: 4.5,
		TeamEfficiencyCap:   4.0,
		MomentumCap:         3.0,
	}
}

// LegacyWeights reproduces the original four-factor model. The newer factor
// families are zeroed rather than branched around, so both tunings run
// through the same pipeline.
func LegacyWeights() Weights {
	w := EnhancedWeights()
	w.Version = "legacy-v1"

	w.BlowoutFavoritePenalty = 0
	w.DoubleDigitHomePenalty = 0
	w.DoubleDigitAwayPenalty = 0
	w.SolidFavoritePenalty = 0

	w.EarlySeasonBoost = 0
	w.MidSeasonBoost = 0
	w.LateSeasonFade = 0

	w.FreezingSmallFavorite = 0
	w.FreezingLargeFavorite = 0
	w.ColdLargeFavorite = 0
	w.HotLargeFavorite = 0

	w.StrengthCap = 0

	w.PlayerEfficiencyCap = 0
	w.TeamEfficiencyCap = 0
	w.MomentumCap = 0

	return w
}

// ByVersion resolves a named weights preset, defaulting to enhanced
func ByVersion(version string) Weights {
	if version == "legacy-v1" || version == "legacy" {
		return LegacyWeights()
	}
	return EnhancedWeights()
}
