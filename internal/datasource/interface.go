package datasource

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// GameSource defines the interface for fetching college football data from
// external providers
type GameSource interface {
	// FetchTeams retrieves the FBS team list for a season
	FetchTeams(ctx context.Context, season int) ([]TeamData, error)

	// FetchGames retrieves games for a season, optionally limited to one week
	FetchGames(ctx context.Context, season int, week *int) ([]GameData, error)

	// FetchLines retrieves betting lines for a season and week
	FetchLines(ctx context.Context, season, week int) ([]LineData, error)

	// Name returns the name of the data source
	Name() string

	// IsEnabled returns whether this data source is currently enabled
	IsEnabled() bool
}

// TeamData represents normalized team data from any provider
type TeamData struct {
	SourceID   string  `json:"source_id"`  // Provider's unique team ID
	School     string  `json:"school"`     // Team name (e.g., "Alabama")
	Conference *string `json:"conference"` // Conference name if assigned
	Mascot     *string `json:"mascot"`
}

// GameData represents normalized game data from any provider
type GameData struct {
	SourceID      string     `json:"source_id"` // Provider's unique game ID
	Season        int        `json:"season"`
	Week          int        `json:"week"`
	StartDate     time.Time  `json:"start_date"` // Kickoff time UTC
	HomeTeam      string     `json:"home_team"`
	AwayTeam      string     `json:"away_team"`
	HomeScore     *int       `json:"home_score"`
	AwayScore     *int       `json:"away_score"`
	Completed     bool       `json:"completed"`
	NeutralSite   bool       `json:"neutral_site"`
	Venue         *string    `json:"venue"`
	Temperature   *float64   `json:"temperature"`    // Fahrenheit at kickoff
	WindSpeed     *float64   `json:"wind_speed"`     // mph
	Precipitation *float64   `json:"precipitation"`  // inches
	Dome          bool       `json:"dome"`
	FetchedAt     time.Time  `json:"fetched_at"`
}

// LineData represents a normalized betting line for a single game.
// Spread follows the provider convention: positive when the away team
// is favored. Half-point lines are exact, never rounded.
type LineData struct {
	GameSourceID string           `json:"game_source_id"`
	Provider     string           `json:"provider"` // sportsbook name
	Spread       *decimal.Decimal `json:"spread"`
	OverUnder    *decimal.Decimal `json:"over_under"`
}

// SourceError represents errors from data source operations
type SourceError struct {
	Source  string // Data source name
	Code    string // Error code (e.g., "rate_limit_exceeded")
	Message string // Error message
	Err     error  // Underlying error
}

func (e SourceError) Error() string {
	if e.Err != nil {
		return e.Source + ": " + e.Code + ": " + e.Message + " (" + e.Err.Error() + ")"
	}
	return e.Source + ": " + e.Code + ": " + e.Message
}

func (e SourceError) Unwrap() error { return e.Err }

// Common error codes
const (
	ErrCodeRateLimitExceeded    = "rate_limit_exceeded"
	ErrCodeAuthenticationFailed = "authentication_failed"
	ErrCodeNotFound             = "not_found"
	ErrCodeInvalidData          = "invalid_data"
	ErrCodeNetworkError         = "network_error"
	ErrCodeServerError          = "server_error"
)

// Sentinel errors for callers that only care about the class of failure
var (
	ErrRateLimitExceeded    = errors.New("rate limit exceeded")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrNotFound             = errors.New("data not found")
	ErrInvalidData          = errors.New("invalid data format")
)

// NewSourceError creates a new data source error
func NewSourceError(source, code, message string, err error) SourceError {
	return SourceError{
		Source:  source,
		Code:    code,
		Message: message,
		Err:     err,
	}
}
