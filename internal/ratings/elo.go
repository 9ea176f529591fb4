// Package ratings maintains chronological ELO-style strength ratings for
// teams, rebuilt from scratch over the full completed-game history.
package ratings

import (
	"math"
	"sort"

	"github.com/google/uuid"
	"github.com/yourusername/gridiron-edge/internal/models"
)

// Tuned update parameters. A 100 rating-point home edge corresponds to
// roughly a field goal and change on the scoreboard.
const (
	baseKFactor    = 32.0
	homeFieldElo   = 100.0
	logisticScale  = 400.0
	ratingPerPoint = 25.0
)

// Snapshot is an immutable team-to-rating map built by one chronological
// pass over completed games. Build it once per batch and share it read-only.
type Snapshot struct {
	ratings map[uuid.UUID]float64
	teams   map[uuid.UUID]*models.Team
	games   int
}

// BuildSnapshot replays every completed game in ascending (season, week)
// order and returns the resulting ratings. The pass is path-dependent, so
// ordering is load-bearing; rebuilding from the same history always yields
// the same snapshot. Games without final scores are skipped.
func BuildSnapshot(games []*models.Game) *Snapshot {
	return BuildSnapshotWithTeams(games, nil)
}

// BuildSnapshotWithTeams replays the same pass and additionally maintains
// each known team's rating and season win/loss record in place. Ratings and
// counters are reset before the replay, so rebuilding from the same history
// leaves the teams in the same state.
func BuildSnapshotWithTeams(games []*models.Game, teams map[uuid.UUID]*models.Team) *Snapshot {
	for _, t := range teams {
		t.Rating = models.InitialRating
		t.Wins = 0
		t.Losses = 0
	}
	ordered := make([]*models.Game, 0, len(games))
	for _, g := range games {
		if g == nil || !g.Completed || !g.HasScores() {
			continue
		}
		ordered = append(ordered, g)
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Season != ordered[j].Season {
			return ordered[i].Season < ordered[j].Season
		}
		if ordered[i].Week != ordered[j].Week {
			return ordered[i].Week < ordered[j].Week
		}
		return ordered[i].StartDate.Before(ordered[j].StartDate)
	})

	snap := &Snapshot{ratings: make(map[uuid.UUID]float64), teams: teams}
	for _, g := range ordered {
		snap.applyGame(g)
		snap.games++
	}
	return snap
}

func (s *Snapshot) applyGame(g *models.Game) {
	home := s.seeded(g.HomeTeamID)
	away := s.seeded(g.AwayTeamID)

	expected := expectedHomeWin(home, away)
	actual := 0.0
	if g.HomeWon() {
		actual = 1.0
	}

	shift := kFactor(g.HomeMargin(), expected) * (actual - expected)
	s.ratings[g.HomeTeamID] = home + shift
	s.ratings[g.AwayTeamID] = away - shift
	s.syncTeam(g.HomeTeamID, g.HomeWon())
	s.syncTeam(g.AwayTeamID, !g.HomeWon())
}

func (s *Snapshot) syncTeam(teamID uuid.UUID, won bool) {
	t, ok := s.teams[teamID]
	if !ok {
		return
	}
	t.Rating = s.ratings[teamID]
	t.RecordResult(won)
}

func (s *Snapshot) seeded(teamID uuid.UUID) float64 {
	if r, ok := s.ratings[teamID]; ok {
		return r
	}
	s.ratings[teamID] = models.InitialRating
	return models.InitialRating
}

// expectedHomeWin is the logistic win probability for the home side with the
// home-field rating bonus applied.
func expectedHomeWin(homeRating, awayRating float64) float64 {
	return 1.0 / (1.0 + math.Pow(10, (awayRating-homeRating-homeFieldElo)/logisticScale))
}

// kFactor scales the base K by a margin-of-victory multiplier that inflates
// updates for upsets and blowouts and dampens ones the ratings already
// expected.
func kFactor(margin int, expected float64) float64 {
	mov := math.Log(math.Abs(float64(margin))+1) * 2.2 / (expected*(1-expected) + 0.1)
	return baseKFactor * mov
}

// Rating returns the team's rating and whether the team has been seen.
// Unseen teams report the initial rating.
func (s *Snapshot) Rating(teamID uuid.UUID) (float64, bool) {
	if r, ok := s.ratings[teamID]; ok {
		return r, true
	}
	return models.InitialRating, false
}

// SpreadPoints converts the rating gap between two teams into expected
// scoreboard points from the home perspective, before home-field advantage.
func (s *Snapshot) SpreadPoints(homeID, awayID uuid.UUID) float64 {
	home, _ := s.Rating(homeID)
	away, _ := s.Rating(awayID)
	return (home - away) / ratingPerPoint
}

// GamesProcessed returns how many completed games fed the snapshot
func (s *Snapshot) GamesProcessed() int {
	return s.games
}

// Ratings returns a copy of the full team-to-rating map
func (s *Snapshot) Ratings() map[uuid.UUID]float64 {
	out := make(map[uuid.UUID]float64, len(s.ratings))
	for id, r := range s.ratings {
		out[id] = r
	}
	return out
}
