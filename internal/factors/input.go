package factors

import (
	"github.com/yourusername/gridiron-edge/internal/models"
)

// Factor names used in prediction breakdowns
const (
	NameWeather        = "weather"
	NameConference     = "conference"
	NameHomeField      = "home_field"
	NameMarketValue    = "market_value"
	NameLargeFavorite  = "large_favorite_risk"
	NameSeasonal       = "seasonal"
	NameWeatherMarket  = "weather_market"
	NameTeamStrength   = "team_strength"
	NameRoster         = "roster"
)

// Input carries everything a calculator may consult for one matchup.
// MarketSpread keeps the away-positive book convention. ProvisionalSpread
// and RatingGapPoints are home-favoring and are filled in by the aggregator
// before the market-aware factors run.
type Input struct {
	HomeConference string
	AwayConference string
	Weather        models.WeatherConditions
	MarketSpread   *float64
	IsNeutralSite  bool
	Week           int

	ProvisionalSpread float64
	RatingGapPoints   float64
	Roster            *models.RosterSignals
}

// Set evaluates factors against one tuning table. A Set is stateless and
// safe for concurrent use.
type Set struct {
	w Weights
}

// NewSet creates a factor set for the given weights
func NewSet(w Weights) *Set {
	return &Set{w: w}
}

// Weights returns the tuning table backing this set
func (s *Set) Weights() Weights {
	return s.w
}

// scored builds a single-detail factor score, collapsing to a silent zero
// when the tuned value is zeroed out (legacy weights disable whole factor
// families this way).
func scored(value float64, detail string) models.FactorScore {
	if value == 0 {
		return models.FactorScore{}
	}
	return models.FactorScore{Score: value, Details: []string{detail}}
}

func clamp(v, bound float64) float64 {
	if bound <= 0 {
		return 0
	}
	if v > bound {
		return bound
	}
	if v < -bound {
		return -bound
	}
	return v
}
