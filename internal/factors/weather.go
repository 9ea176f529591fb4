package factors

import (
	"fmt"

	"github.com/yourusername/gridiron-edge/internal/models"
)

// Weather scores kickoff conditions. Dome games take a flat bonus for the
// controlled climate; outdoors, only the axes with actual readings score.
// With no data on any axis the score is exactly zero, never an assumed
// "clear" value. Range roughly [-6, +4].
func (s *Set) Weather(in Input) models.FactorScore {
	if in.Weather.IsDome {
		return models.FactorScore{
			Score:   s.w.DomeBonus,
			Details: []string{fmt.Sprintf("Dome: controlled climate favors offense (%+.1f)", s.w.DomeBonus)},
		}
	}

	var score models.FactorScore
	w := in.Weather

	if w.Temperature != nil {
		t := *w.Temperature
		switch {
		case t < 32:
			score.Score += s.w.FreezingPenalty
			score.Details = append(score.Details,
				fmt.Sprintf("Freezing temps (%.0f°F): reduced offensive efficiency (%+.1f)", t, s.w.FreezingPenalty))
		case t < 40:
			score.Score += s.w.ColdPenalty
			score.Details = append(score.Details,
				fmt.Sprintf("Cold weather (%.0f°F): limited offensive impact (%+.1f)", t, s.w.ColdPenalty))
		case t > 85:
			score.Score += s.w.HeatPenalty
			score.Details = append(score.Details,
				fmt.Sprintf("Hot weather (%.0f°F): fatigue factor (%+.1f)", t, s.w.HeatPenalty))
		}
	}

	if w.WindSpeed != nil {
		ws := *w.WindSpeed
		switch {
		case ws > 20:
			score.Score += s.w.HighWindPenalty
			score.Details = append(score.Details,
				fmt.Sprintf("High winds (%.0f mph): passing game disrupted (%+.1f)", ws, s.w.HighWindPenalty))
		case ws > 15:
			score.Score += s.w.ModerateWindPenalty
			score.Details = append(score.Details,
				fmt.Sprintf("Moderate winds (%.0f mph): some passing difficulty (%+.1f)", ws, s.w.ModerateWindPenalty))
		}
	}

	if w.Precipitation != nil && *w.Precipitation > 0 {
		score.Score += s.w.PrecipPenalty
		score.Details = append(score.Details,
			fmt.Sprintf("Precipitation: ball handling challenges (%+.1f)", s.w.PrecipPenalty))
	}

	return score
}

// WeatherMarketInteraction combines temperature band with favorite size.
// Only active outdoors with a posted line. Range roughly [-1.2, +1.5].
func (s *Set) WeatherMarketInteraction(in Input) models.FactorScore {
	if in.Weather.IsDome || in.MarketSpread == nil || in.Weather.Temperature == nil {
		return models.FactorScore{}
	}

	temp := *in.Weather.Temperature
	favoriteSize := abs(*in.MarketSpread)
	largeFavorite := favoriteSize >= 7

	switch {
	case temp < 32 && !largeFavorite:
		return scored(s.w.FreezingSmallFavorite,
			fmt.Sprintf("Freezing game with a short line: coin-flip conditions (%+.1f)", s.w.FreezingSmallFavorite))
	case temp < 32 && largeFavorite:
		return scored(s.w.FreezingLargeFavorite,
			fmt.Sprintf("Freezing game, big favorite: grind-it-out script (%+.1f)", s.w.FreezingLargeFavorite))
	case temp < 50 && largeFavorite:
		return scored(s.w.ColdLargeFavorite,
			fmt.Sprintf("Cold game, big favorite: covers come harder (%+.1f)", s.w.ColdLargeFavorite))
	case temp > 80 && largeFavorite:
		return scored(s.w.HotLargeFavorite,
			fmt.Sprintf("Hot game, big favorite: depth advantage shows late (%+.1f)", s.w.HotLargeFavorite))
	}

	return models.FactorScore{}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
