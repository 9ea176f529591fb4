package roster

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/gridiron-edge/internal/config"
	"github.com/yourusername/gridiron-edge/internal/metrics"
	"github.com/yourusername/gridiron-edge/internal/models"
)

// Client fetches matchup roster signals from the analytics collaborator.
// Lookups degrade gracefully: any failure yields nil signals and the
// prediction proceeds without the roster factor.
type Client struct {
	httpClient *http.Client
	baseURL    string
	enabled    bool
	cache      *SignalsCache
	logger     *logrus.Logger
}

// matchupResponse mirrors the collaborator's JSON payload
type matchupResponse struct {
	PlayerEfficiencyAdj float64  `json:"player_efficiency_adj"`
	TeamEfficiencyAdj   float64  `json:"team_efficiency_adj"`
	MomentumAdj         float64  `json:"momentum_adj"`
	Confidence          float64  `json:"confidence"`
	KeyInsights         []string `json:"key_insights"`
}

// NewClient creates a new roster-analytics client
func NewClient(cfg *config.RosterConfig, logger *logrus.Logger) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("roster config is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		baseURL: cfg.URL,
		enabled: cfg.Enabled,
		cache:   NewSignalsCache(time.Duration(cfg.CacheTTLSeconds) * time.Second),
		logger:  logger,
	}, nil
}

// Signals returns roster signals for a matchup, or nil when the collaborator
// is disabled or unreachable
func (c *Client) Signals(ctx context.Context, homeTeam, awayTeam string, season, week int) *models.RosterSignals {
	if !c.enabled {
		return nil
	}

	key := CacheKey{HomeTeam: homeTeam, AwayTeam: awayTeam, Season: season, Week: week}
	if cached := c.cache.Get(key); cached != nil {
		c.logger.WithField("cache_key", key.String()).Debug("Cache hit for roster signals")
		metrics.RosterLookupsTotal.WithLabelValues("cache_hit").Inc()
		return cached
	}

	signals, err := c.fetch(ctx, homeTeam, awayTeam, season, week)
	if err != nil {
		c.logger.WithFields(logrus.Fields{
			"home_team": homeTeam,
			"away_team": awayTeam,
			"error":     err,
		}).Warn("Roster lookup failed, continuing without roster signals")
		metrics.RosterLookupsTotal.WithLabelValues("error").Inc()
		return nil
	}

	c.cache.Set(key, signals)
	metrics.RosterLookupsTotal.WithLabelValues("fetched").Inc()
	return signals
}

func (c *Client) fetch(ctx context.Context, homeTeam, awayTeam string, season, week int) (*models.RosterSignals, error) {
	url := fmt.Sprintf("%s/matchup?home=%s&away=%s&season=%d&week=%d",
		c.baseURL, homeTeam, awayTeam, season, week)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var payload matchupResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &models.RosterSignals{
		PlayerEfficiencyAdj: payload.PlayerEfficiencyAdj,
		TeamEfficiencyAdj:   payload.TeamEfficiencyAdj,
		MomentumAdj:         payload.MomentumAdj,
		Confidence:          payload.Confidence,
		KeyInsights:         payload.KeyInsights,
	}, nil
}
