package factors

import (
	"fmt"

	"github.com/yourusername/gridiron-edge/internal/models"
)

// MarketValue compares the model's pre-market spread with the posted line
// and credits the side the model favors more strongly when they diverge by
// at least the threshold. Bounded by DivergenceCap. No line, no score.
func (s *Set) MarketValue(in Input) models.FactorScore {
	if in.MarketSpread == nil {
		return models.FactorScore{}
	}

	// Convert the away-positive book line to a home-perspective margin
	marketHome := -*in.MarketSpread
	diff := in.ProvisionalSpread - marketHome
	if abs(diff) < s.w.DivergenceThreshold {
		return models.FactorScore{}
	}

	magnitude := min(abs(diff)*s.w.DivergenceScale, s.w.DivergenceCap)
	if diff > 0 {
		return scored(magnitude,
			fmt.Sprintf("Market undervaluing the home side by %.1f points (%+.1f)", abs(diff), magnitude))
	}
	return scored(-magnitude,
		fmt.Sprintf("Market overvaluing the home side by %.1f points (%+.1f)", abs(diff), -magnitude))
}

// LargeFavoriteRisk penalizes big favorites off the market line alone;
// empirically they underperform against the spread. The tier values are
// fixed home-favoring constants, never sign-flipped. Range [-2, 0].
func (s *Set) LargeFavoriteRisk(in Input) models.FactorScore {
	if in.MarketSpread == nil {
		return models.FactorScore{}
	}

	spread := *in.MarketSpread
	size := abs(spread)
	homeFavored := spread < 0

	switch {
	case size > 14:
		return s.favoriteRisk(s.w.BlowoutFavoritePenalty, homeFavored, size)
	case size >= 10:
		if homeFavored {
			return s.favoriteRisk(s.w.DoubleDigitHomePenalty, homeFavored, size)
		}
		return s.favoriteRisk(s.w.DoubleDigitAwayPenalty, homeFavored, size)
	case size >= 7:
		return s.favoriteRisk(s.w.SolidFavoritePenalty, homeFavored, size)
	}

	return models.FactorScore{}
}

func (s *Set) favoriteRisk(penalty float64, homeFavored bool, size float64) models.FactorScore {
	side := "away"
	if homeFavored {
		side = "home"
	}
	return scored(penalty,
		fmt.Sprintf("Large %s favorite (%.1f-point line): ATS underperformance risk (%+.1f)", side, size, penalty))
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
