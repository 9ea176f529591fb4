package factors

import (
	"fmt"

	"github.com/yourusername/gridiron-edge/internal/models"
)

// Conference scores the power gap between the two conferences plus a fixed
// bonus when a major-conference side meets a non-major one. Unknown
// conferences rate neutral, never an error.
func (s *Set) Conference(in Input) models.FactorScore {
	homeRating := s.w.ConferencePower[in.HomeConference]
	awayRating := s.w.ConferencePower[in.AwayConference]

	differential := homeRating - awayRating
	var score models.FactorScore
	score.Score = differential * s.w.ConferenceScale

	switch {
	case abs(differential) > 3:
		score.Details = append(score.Details,
			fmt.Sprintf("Major conference mismatch: %s vs %s (%+.1f)", in.HomeConference, in.AwayConference, differential))
	case abs(differential) > 1:
		score.Details = append(score.Details,
			fmt.Sprintf("Conference advantage: %s vs %s (%+.1f)", in.HomeConference, in.AwayConference, differential))
	}

	homeMajor := s.w.MajorConferences[in.HomeConference]
	awayMajor := s.w.MajorConferences[in.AwayConference]
	if homeMajor && !awayMajor {
		score.Score += s.w.MajorMismatchBonus
		score.Details = append(score.Details,
			fmt.Sprintf("Power conference hosting a Group of 5 side (%+.1f)", s.w.MajorMismatchBonus))
	} else if awayMajor && !homeMajor {
		score.Score -= s.w.MajorMismatchBonus
		score.Details = append(score.Details,
			fmt.Sprintf("Group of 5 hosting a power conference side (%+.1f)", -s.w.MajorMismatchBonus))
	}

	return score
}

// HomeField is a flat bonus for the hosting side, suppressed entirely at
// neutral sites.
func (s *Set) HomeField(in Input) models.FactorScore {
	if in.IsNeutralSite {
		return models.FactorScore{}
	}
	return scored(s.w.HomeFieldPoints,
		fmt.Sprintf("Home field advantage (%+.1f)", s.w.HomeFieldPoints))
}

// Seasonal keys on the week number only: fade favorites early while the
// market is still calibrating, lean toward them late.
func (s *Set) Seasonal(in Input) models.FactorScore {
	switch {
	case in.Week >= 1 && in.Week <= 4:
		return scored(s.w.EarlySeasonBoost,
			fmt.Sprintf("Weeks 1-4: market still calibrating (%+.1f)", s.w.EarlySeasonBoost))
	case in.Week >= 5 && in.Week <= 10:
		return scored(s.w.MidSeasonBoost,
			fmt.Sprintf("Mid-season week %d (%+.1f)", in.Week, s.w.MidSeasonBoost))
	case in.Week >= 11 && in.Week <= 12:
		return scored(s.w.LateSeasonFade,
			fmt.Sprintf("Late-season week %d: favorites close stronger (%+.1f)", in.Week, s.w.LateSeasonFade))
	}
	return models.FactorScore{}
}
