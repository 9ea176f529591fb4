package factors

import (
	"fmt"

	"github.com/yourusername/gridiron-edge/internal/models"
)

// TeamStrength converts the pre-computed rating gap (home minus away, in
// scoreboard points) into a bounded factor. Home-field advantage is scored
// separately, so the gap deliberately excludes it.
func (s *Set) TeamStrength(in Input) models.FactorScore {
	if in.RatingGapPoints == 0 {
		return models.FactorScore{}
	}
	bounded := clamp(in.RatingGapPoints, s.w.StrengthCap)
	return scored(bounded,
		fmt.Sprintf("Strength rating gap worth %.1f points (%+.1f)", abs(in.RatingGapPoints), bounded))
}

// Roster clamps and sums the externally supplied roster-analytics
// adjustments (player efficiency, team efficiency, momentum). Missing
// signals score nothing.
func (s *Set) Roster(in Input) models.FactorScore {
	if in.Roster == nil {
		return models.FactorScore{}
	}

	var score models.FactorScore
	r := in.Roster

	if v := clamp(r.PlayerEfficiencyAdj, s.w.PlayerEfficiencyCap); v != 0 {
		score.Score += v
		score.Details = append(score.Details,
			fmt.Sprintf("Player efficiency edge (%+.1f)", v))
	}
	if v := clamp(r.TeamEfficiencyAdj, s.w.TeamEfficiencyCap); v != 0 {
		score.Score += v
		score.Details = append(score.Details,
			fmt.Sprintf("Team efficiency edge (%+.1f)", v))
	}
	if v := clamp(r.MomentumAdj, s.w.MomentumCap); v != 0 {
		score.Score += v
		score.Details = append(score.Details,
			fmt.Sprintf("Momentum edge (%+.1f)", v))
	}

	if score.Score == 0 {
		return models.FactorScore{}
	}
	score.Details = append(score.Details, r.KeyInsights...)
	return score
}
