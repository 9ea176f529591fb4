package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

const sourceDisabledMsg = "data source is disabled"

// CFBDClient implements GameSource for the CollegeFootballData API
type CFBDClient struct {
	httpClient *RateLimitedHTTPClient
	baseURL    string
	apiKey     string
	enabled    bool
	logger     *log.Logger
}

// cfbdTeam represents a team record from the CFBD API
type cfbdTeam struct {
	ID         int     `json:"id"`
	School     string  `json:"school"`
	Mascot     *string `json:"mascot"`
	Conference *string `json:"conference"`
}

// cfbdGame represents a game record from the CFBD API
type cfbdGame struct {
	ID            int      `json:"id"`
	Season        int      `json:"season"`
	Week          int      `json:"week"`
	StartDate     string   `json:"start_date"`
	HomeTeam      string   `json:"home_team"`
	AwayTeam      string   `json:"away_team"`
	HomePoints    *int     `json:"home_points"`
	AwayPoints    *int     `json:"away_points"`
	Completed     bool     `json:"completed"`
	NeutralSite   bool     `json:"neutral_site"`
	Venue         *string  `json:"venue"`
	VenueDome     *bool    `json:"dome"`
	Temperature   *float64 `json:"temperature"`
	WindSpeed     *float64 `json:"wind_speed"`
	Precipitation *float64 `json:"precipitation"`
}

// cfbdGameLines represents the per-game line listing from the CFBD API.
// Spread and over/under come back as strings so half points survive intact.
type cfbdGameLines struct {
	GameID int `json:"id"`
	Lines  []struct {
		Provider  string  `json:"provider"`
		Spread    *string `json:"formattedSpread,omitempty"`
		SpreadRaw *string `json:"spread"`
		OverUnder *string `json:"overUnder"`
	} `json:"lines"`
}

// NewCFBDClient creates a new CollegeFootballData API client
func NewCFBDClient(httpClient *RateLimitedHTTPClient, baseURL, apiKey string, enabled bool, logger *log.Logger) *CFBDClient {
	if baseURL == "" {
		baseURL = "https://api.collegefootballdata.com"
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &CFBDClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
		enabled:    enabled,
		logger:     logger,
	}
}

// FetchTeams retrieves the FBS team list for a season
func (c *CFBDClient) FetchTeams(ctx context.Context, season int) ([]TeamData, error) {
	if !c.enabled {
		return nil, NewSourceError(c.Name(), ErrCodeNetworkError, sourceDisabledMsg, nil)
	}

	url := fmt.Sprintf("%s/teams/fbs?year=%d", c.baseURL, season)

	var raw []cfbdTeam
	if err := c.getJSON(ctx, url, &raw); err != nil {
		return nil, err
	}

	teams := make([]TeamData, len(raw))
	for i, t := range raw {
		teams[i] = TeamData{
			SourceID:   fmt.Sprintf("%d", t.ID),
			School:     t.School,
			Conference: t.Conference,
			Mascot:     t.Mascot,
		}
	}
	return teams, nil
}

// FetchGames retrieves games for a season, optionally limited to one week
func (c *CFBDClient) FetchGames(ctx context.Context, season int, week *int) ([]GameData, error) {
	if !c.enabled {
		return nil, NewSourceError(c.Name(), ErrCodeNetworkError, sourceDisabledMsg, nil)
	}

	url := fmt.Sprintf("%s/games?year=%d", c.baseURL, season)
	if week != nil {
		url = fmt.Sprintf("%s&week=%d", url, *week)
	}

	var raw []cfbdGame
	if err := c.getJSON(ctx, url, &raw); err != nil {
		return nil, err
	}

	games := make([]GameData, 0, len(raw))
	for i := range raw {
		game, err := c.convertGame(&raw[i])
		if err != nil {
			c.logger.Printf("Failed to convert game %d: %v", raw[i].ID, err)
			continue
		}
		games = append(games, *game)
	}
	return games, nil
}

// FetchLines retrieves betting lines for a season and week
func (c *CFBDClient) FetchLines(ctx context.Context, season, week int) ([]LineData, error) {
	if !c.enabled {
		return nil, NewSourceError(c.Name(), ErrCodeNetworkError, sourceDisabledMsg, nil)
	}

	url := fmt.Sprintf("%s/lines?year=%d&week=%d", c.baseURL, season, week)

	var raw []cfbdGameLines
	if err := c.getJSON(ctx, url, &raw); err != nil {
		return nil, err
	}

	var lines []LineData
	for _, gl := range raw {
		for _, l := range gl.Lines {
			line := LineData{
				GameSourceID: fmt.Sprintf("%d", gl.GameID),
				Provider:     l.Provider,
				Spread:       parseDecimal(l.SpreadRaw),
				OverUnder:    parseDecimal(l.OverUnder),
			}
			if line.Spread == nil && line.OverUnder == nil {
				continue
			}
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// Name returns the data source name
func (c *CFBDClient) Name() string {
	return "cfbd"
}

// IsEnabled returns whether this data source is enabled
func (c *CFBDClient) IsEnabled() bool {
	return c.enabled
}

// getJSON performs an authenticated GET and decodes the JSON response
func (c *CFBDClient) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return NewSourceError(c.Name(), ErrCodeNetworkError, "failed to create request", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return NewSourceError(c.Name(), ErrCodeNetworkError, "request failed", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return NewSourceError(c.Name(), ErrCodeAuthenticationFailed, "invalid API key", nil)
	case resp.StatusCode == http.StatusTooManyRequests:
		return NewSourceError(c.Name(), ErrCodeRateLimitExceeded, "rate limit exceeded", nil)
	case resp.StatusCode == http.StatusNotFound:
		return NewSourceError(c.Name(), ErrCodeNotFound, "resource not found", nil)
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(resp.Body)
		return NewSourceError(c.Name(), ErrCodeServerError, fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, string(body)), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return NewSourceError(c.Name(), ErrCodeInvalidData, "failed to parse response", err)
	}
	return nil
}

// convertGame converts the CFBD game format to GameData
func (c *CFBDClient) convertGame(g *cfbdGame) (*GameData, error) {
	startDate, err := time.Parse(time.RFC3339, g.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", g.StartDate, err)
	}

	game := &GameData{
		SourceID:      fmt.Sprintf("%d", g.ID),
		Season:        g.Season,
		Week:          g.Week,
		StartDate:     startDate,
		HomeTeam:      g.HomeTeam,
		AwayTeam:      g.AwayTeam,
		HomeScore:     g.HomePoints,
		AwayScore:     g.AwayPoints,
		Completed:     g.Completed,
		NeutralSite:   g.NeutralSite,
		Venue:         g.Venue,
		Temperature:   g.Temperature,
		WindSpeed:     g.WindSpeed,
		Precipitation: g.Precipitation,
		FetchedAt:     time.Now().UTC(),
	}
	if g.VenueDome != nil {
		game.Dome = *g.VenueDome
	}
	return game, nil
}

// parseDecimal parses a string to decimal.Decimal, returning nil if missing
// or invalid
func parseDecimal(s *string) *decimal.Decimal {
	if s == nil || *s == "" {
		return nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return nil
	}
	return &d
}
