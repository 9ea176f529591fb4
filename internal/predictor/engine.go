// Package predictor aggregates the factor ensemble into a spread
// prediction, a confidence tier, and a betting recommendation.
package predictor

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/yourusername/gridiron-edge/internal/factors"
	"github.com/yourusername/gridiron-edge/internal/metrics"
	"github.com/yourusername/gridiron-edge/internal/models"
	"github.com/yourusername/gridiron-edge/internal/ratings"
)

// MinimumEdge is the smallest model-vs-market disagreement, in points, that
// produces a recommendation.
const MinimumEdge = 2.0

// pipelineOrder fixes the order factors are summed and explained in.
// Iterating the breakdown map instead would randomize float addition order
// and make the spread wobble in the last bits between identical calls.
var pipelineOrder = []string{
	factors.NameWeather,
	factors.NameConference,
	factors.NameHomeField,
	factors.NameLargeFavorite,
	factors.NameSeasonal,
	factors.NameWeatherMarket,
	factors.NameTeamStrength,
	factors.NameRoster,
	factors.NameMarketValue,
}

// Request carries everything needed to predict one matchup. MarketSpread
// keeps the book's away-positive convention; a nil value disables the
// market-dependent factors and recommendation but not the spread itself.
type Request struct {
	HomeTeam       string
	AwayTeam       string
	HomeTeamID     uuid.UUID
	AwayTeamID     uuid.UUID
	HomeConference string
	AwayConference string
	Weather        models.WeatherConditions
	MarketSpread   *float64
	OverUnder      *float64
	IsNeutralSite  bool
	Week           int
	Roster         *models.RosterSignals
	GameID         *uuid.UUID
}

// Engine is a pure function of its inputs over a fixed ratings snapshot and
// tuning table; concurrent predictions need no locking.
type Engine struct {
	set      *factors.Set
	snapshot *ratings.Snapshot
	logger   *logrus.Logger
}

// NewEngine creates a prediction engine over a ratings snapshot
func NewEngine(w factors.Weights, snapshot *ratings.Snapshot, logger *logrus.Logger) *Engine {
	if logger == nil {
		logger = logrus.New()
	}
	return &Engine{
		set:      factors.NewSet(w),
		snapshot: snapshot,
		logger:   logger,
	}
}

// WeightsVersion returns the name of the tuning table in use
func (e *Engine) WeightsVersion() string {
	return e.set.Weights().Version
}

// Predict runs the full factor ensemble for one matchup
func (e *Engine) Predict(ctx context.Context, req Request) models.PredictionResult {
	_ = ctx

	in := factors.Input{
		HomeConference: req.HomeConference,
		AwayConference: req.AwayConference,
		Weather:        req.Weather,
		MarketSpread:   req.MarketSpread,
		IsNeutralSite:  req.IsNeutralSite,
		Week:           req.Week,
		Roster:         req.Roster,
	}
	if e.snapshot != nil {
		in.RatingGapPoints = e.snapshot.SpreadPoints(req.HomeTeamID, req.AwayTeamID)
	}

	breakdown := map[string]models.FactorScore{}

	// Base factors form the provisional spread the market-aware factors
	// consult.
	breakdown[factors.NameWeather] = e.set.Weather(in)
	breakdown[factors.NameConference] = e.set.Conference(in)
	breakdown[factors.NameHomeField] = e.set.HomeField(in)

	in.ProvisionalSpread = sumInOrder(breakdown)

	breakdown[factors.NameLargeFavorite] = e.set.LargeFavoriteRisk(in)
	breakdown[factors.NameSeasonal] = e.set.Seasonal(in)
	breakdown[factors.NameWeatherMarket] = e.set.WeatherMarketInteraction(in)
	breakdown[factors.NameTeamStrength] = e.set.TeamStrength(in)
	breakdown[factors.NameRoster] = e.set.Roster(in)

	preMarket := sumInOrder(breakdown)
	in.ProvisionalSpread = preMarket

	breakdown[factors.NameMarketValue] = e.set.MarketValue(in)
	spread := preMarket + breakdown[factors.NameMarketValue].Score

	result := models.PredictionResult{
		ID:          uuid.New(),
		GameID:      req.GameID,
		HomeTeam:    req.HomeTeam,
		AwayTeam:    req.AwayTeam,
		Spread:      spread,
		Confidence:  e.confidence(spread, breakdown, req.Roster),
		KeyFactors:  orderedDetails(breakdown),
		MarketLine:  req.MarketSpread,
		Breakdown:   flattenBreakdown(breakdown),
		PredictedAt: time.Now().UTC(),
	}

	if req.MarketSpread != nil {
		edge, recommendation := e.recommend(spread, *req.MarketSpread, req.HomeTeam, req.AwayTeam)
		result.Edge = &edge
		result.RecommendedBet = recommendation
		if recommendation != nil {
			metrics.RecommendationsEmittedTotal.Inc()
		}
	}

	e.applyTotalLean(&result, breakdown, req.OverUnder)

	metrics.PredictionsGeneratedTotal.Inc()
	e.logger.WithFields(logrus.Fields{
		"home":       req.HomeTeam,
		"away":       req.AwayTeam,
		"spread":     result.Spread,
		"confidence": result.Confidence,
	}).Debug("Prediction generated")

	return result
}

// confidence derives the tier from prediction size and the number of
// factors that actually fired; strong roster confidence counts extra.
func (e *Engine) confidence(spread float64, breakdown map[string]models.FactorScore, roster *models.RosterSignals) models.Confidence {
	active := 0
	for _, f := range breakdown {
		if !f.IsZero() {
			active++
		}
	}
	if roster != nil {
		switch {
		case roster.Confidence >= 0.8:
			active += 2
		case roster.Confidence >= 0.6:
			active++
		}
	}

	magnitude := abs(spread)
	switch {
	case magnitude > 6 && active >= 4:
		return models.ConfidenceHigh
	case magnitude > 3 && active >= 2:
		return models.ConfidenceMedium
	default:
		return models.ConfidenceLow
	}
}

func flattenBreakdown(breakdown map[string]models.FactorScore) map[string]float64 {
	out := make(map[string]float64, len(breakdown))
	for name, f := range breakdown {
		out[name] = f.Score
	}
	return out
}

// sumInOrder totals the scores computed so far, always in pipeline order.
func sumInOrder(breakdown map[string]models.FactorScore) float64 {
	total := 0.0
	for _, name := range pipelineOrder {
		if f, ok := breakdown[name]; ok {
			total += f.Score
		}
	}
	return total
}

// orderedDetails flattens explanations in pipeline order so output is
// stable across runs.
func orderedDetails(breakdown map[string]models.FactorScore) []string {
	var details []string
	for _, name := range pipelineOrder {
		details = append(details, breakdown[name].Details...)
	}
	return details
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
