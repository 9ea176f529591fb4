package models

import (
	"time"

	"github.com/google/uuid"
)

// Game represents a single matchup. Spread follows the sportsbook convention:
// positive values favor the away team, so a home favorite carries a negative
// spread. Scores and market fields stay nil until the game completes or a
// line is posted.
type Game struct {
	ID            uuid.UUID         `db:"id" json:"id" validate:"required,uuid4"`
	HomeTeamID    uuid.UUID         `db:"home_team_id" json:"home_team_id" validate:"required,uuid4"`
	AwayTeamID    uuid.UUID         `db:"away_team_id" json:"away_team_id" validate:"required,uuid4"`
	Season        int               `db:"season" json:"season" validate:"required,gte=1869"`
	Week          int               `db:"week" json:"week" validate:"gte=0"`
	StartDate     time.Time         `db:"start_date" json:"start_date" validate:"required"`
	Completed     bool              `db:"completed" json:"completed"`
	HomeScore     *int              `db:"home_score" json:"home_score"`
	AwayScore     *int              `db:"away_score" json:"away_score"`
	Spread        *float64          `db:"spread" json:"spread"`
	OverUnder     *float64          `db:"over_under" json:"over_under"`
	Weather       WeatherConditions `db:"-" json:"weather"`
	IsNeutralSite bool              `db:"is_neutral_site" json:"is_neutral_site"`
	ProviderID    int               `db:"provider_id" json:"provider_id"`
	CreatedAt     time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time         `db:"updated_at" json:"updated_at"`
}

// WeatherConditions is a value object describing kickoff conditions. Every
// field is optional; a fully empty value means the weather is unknown and
// must suppress weather scoring rather than assume clear skies.
type WeatherConditions struct {
	Temperature   *float64 `db:"temperature" json:"temperature"`
	WindSpeed     *float64 `db:"wind_speed" json:"wind_speed"`
	Precipitation *float64 `db:"precipitation" json:"precipitation"`
	IsDome        bool     `db:"is_dome" json:"is_dome"`
	Condition     *string  `db:"weather_condition" json:"condition"`
}

// IsUnknown reports whether no outdoor weather data is available
func (w WeatherConditions) IsUnknown() bool {
	return !w.IsDome && w.Temperature == nil && w.WindSpeed == nil &&
		w.Precipitation == nil && w.Condition == nil
}

// HasScores reports whether both final scores are present
func (g *Game) HasScores() bool {
	return g.HomeScore != nil && g.AwayScore != nil
}

// HomeMargin returns home score minus away score. Only meaningful when
// HasScores is true.
func (g *Game) HomeMargin() int {
	if !g.HasScores() {
		return 0
	}
	return *g.HomeScore - *g.AwayScore
}

// HomeWon reports whether the home team won outright
func (g *Game) HomeWon() bool {
	return g.HasScores() && *g.HomeScore > *g.AwayScore
}

// MarketHomeSpread converts the away-positive market line into a
// home-team-perspective expected margin. A -7 spread (home favored by 7)
// becomes +7.
func (g *Game) MarketHomeSpread() (float64, bool) {
	if g.Spread == nil {
		return 0, false
	}
	return -*g.Spread, true
}

// IsGradeable reports whether the game can be scored against the spread:
// completed, both scores present, and a market line on record.
func (g *Game) IsGradeable() bool {
	return g.Completed && g.HasScores() && g.Spread != nil
}
