package predictor

import (
	"fmt"

	"github.com/yourusername/gridiron-edge/internal/factors"
	"github.com/yourusername/gridiron-edge/internal/models"
)

// recommend computes the edge between the model spread (home-favoring) and
// the market line (away-positive) and, when the edge clears MinimumEdge,
// names the side worth betting.
//
// With S home-favoring and M away-positive, the two imply opposite
// favorites exactly when they share a sign. Opposite-favorite edges add;
// same-favorite edges are the difference in conviction.
func (e *Engine) recommend(spread, market float64, homeTeam, awayTeam string) (float64, *string) {
	marketHome := -market

	var edge float64
	opposite := spread*market > 0
	if opposite {
		edge = abs(spread) + abs(market)
	} else {
		edge = abs(abs(spread) - abs(marketHome))
	}

	if edge < MinimumEdge {
		return edge, nil
	}

	var pick string
	switch {
	case opposite && spread > 0:
		// Model likes the home side while the book favors the visitors:
		// back the home team and pocket the points.
		pick = fmt.Sprintf("Take %s +%.1f", homeTeam, abs(market))
	case opposite:
		pick = fmt.Sprintf("Take %s +%.1f", awayTeam, abs(market))
	case marketHome > 0 && spread > marketHome:
		// Both favor home, model more strongly: lay the line.
		pick = fmt.Sprintf("Take %s -%.1f", homeTeam, abs(market))
	case marketHome > 0:
		// Both favor home, market more strongly: the dog is getting more
		// points than it should.
		pick = fmt.Sprintf("Take %s +%.1f", awayTeam, abs(market))
	case marketHome < 0 && spread < marketHome:
		// Both favor away, model more strongly.
		pick = fmt.Sprintf("Take %s -%.1f", awayTeam, abs(market))
	case marketHome < 0:
		pick = fmt.Sprintf("Take %s +%.1f", homeTeam, abs(market))
	default:
		// Pick'em line: lean with the model's side at the number.
		side := homeTeam
		if spread < 0 {
			side = awayTeam
		}
		pick = fmt.Sprintf("Take %s at the line", side)
	}

	return edge, &pick
}

// applyTotalLean derives an over/under lean from the weather score plus
// half the conference adjustment when the book posts a total. The lean only
// becomes a pick past three points of adjustment.
func (e *Engine) applyTotalLean(result *models.PredictionResult, breakdown map[string]models.FactorScore, overUnder *float64) {
	if overUnder == nil {
		return
	}

	lean := breakdown[factors.NameWeather].Score + breakdown[factors.NameConference].Score*0.5
	result.TotalLean = &lean

	if abs(lean) < 3.0 {
		return
	}
	var pick string
	if lean > 0 {
		pick = fmt.Sprintf("Over %.1f", *overUnder)
	} else {
		pick = fmt.Sprintf("Under %.1f", *overUnder)
	}
	result.TotalPick = &pick
}
