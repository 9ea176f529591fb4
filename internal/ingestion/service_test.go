package ingestion

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/gridiron-edge/internal/datasource"
	"github.com/yourusername/gridiron-edge/internal/models"
)

// fakeSource serves canned provider data
type fakeSource struct {
	teams    []datasource.TeamData
	games    []datasource.GameData
	lines    []datasource.LineData
	linesErr error
}

func (f *fakeSource) FetchTeams(_ context.Context, _ int) ([]datasource.TeamData, error) {
	return f.teams, nil
}

func (f *fakeSource) FetchGames(_ context.Context, _ int, _ *int) ([]datasource.GameData, error) {
	return f.games, nil
}

func (f *fakeSource) FetchLines(_ context.Context, _, _ int) ([]datasource.LineData, error) {
	if f.linesErr != nil {
		return nil, f.linesErr
	}
	return f.lines, nil
}

func (f *fakeSource) Name() string    { return "fake" }
func (f *fakeSource) IsEnabled() bool { return true }

// memTeamRepo is an in-memory TeamRepository
type memTeamRepo struct {
	byName map[string]*models.Team
}

func newMemTeamRepo() *memTeamRepo {
	return &memTeamRepo{byName: make(map[string]*models.Team)}
}

func (r *memTeamRepo) Create(_ context.Context, team *models.Team) error {
	r.byName[team.Name] = team
	return nil
}

func (r *memTeamRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Team, error) {
	for _, t := range r.byName {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *memTeamRepo) GetByName(_ context.Context, name string) (*models.Team, error) {
	if t, ok := r.byName[name]; ok {
		return t, nil
	}
	return nil, models.ErrNotFound
}

func (r *memTeamRepo) GetAll(_ context.Context) ([]*models.Team, error) {
	out := make([]*models.Team, 0, len(r.byName))
	for _, t := range r.byName {
		out = append(out, t)
	}
	return out, nil
}

func (r *memTeamRepo) Upsert(_ context.Context, team *models.Team) error {
	r.byName[team.Name] = team
	return nil
}

func (r *memTeamRepo) UpdateRating(_ context.Context, _ *models.Team) error { return nil }

// memGameRepo is an in-memory GameRepository
type memGameRepo struct {
	byProviderID map[int]*models.Game
}

func newMemGameRepo() *memGameRepo {
	return &memGameRepo{byProviderID: make(map[int]*models.Game)}
}

func (r *memGameRepo) Create(_ context.Context, game *models.Game) error {
	r.byProviderID[game.ProviderID] = game
	return nil
}

func (r *memGameRepo) GetByID(_ context.Context, _ uuid.UUID) (*models.Game, error) {
	return nil, models.ErrNotFound
}

func (r *memGameRepo) GetCompletedBySeasons(_ context.Context, _ []int) ([]*models.Game, error) {
	return nil, nil
}

func (r *memGameRepo) GetUpcoming(_ context.Context, _ int) ([]*models.Game, error) {
	return nil, nil
}

// Upsert mirrors the postgres repository's coalescing update: a nil
// incoming line never clears one already stored.
func (r *memGameRepo) Upsert(_ context.Context, game *models.Game) error {
	if prev, ok := r.byProviderID[game.ProviderID]; ok {
		if game.Spread == nil {
			game.Spread = prev.Spread
		}
		if game.OverUnder == nil {
			game.OverUnder = prev.OverUnder
		}
	}
	r.byProviderID[game.ProviderID] = game
	return nil
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return l
}

func strPtr(s string) *string { return &s }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func fixtureSource() *fakeSource {
	home, away := 21, 17
	return &fakeSource{
		teams: []datasource.TeamData{
			{SourceID: "1", School: "Alabama", Conference: strPtr("SEC")},
			{SourceID: "2", School: "Auburn", Conference: strPtr("SEC")},
		},
		games: []datasource.GameData{
			{
				SourceID:  "100",
				Season:    2023,
				Week:      13,
				StartDate: time.Date(2023, 11, 25, 20, 30, 0, 0, time.UTC),
				HomeTeam:  "Auburn",
				AwayTeam:  "Alabama",
				HomeScore: &home,
				AwayScore: &away,
				Completed: true,
			},
			{
				SourceID:  "101",
				Season:    2023,
				Week:      13,
				StartDate: time.Date(2023, 11, 25, 23, 0, 0, 0, time.UTC),
				HomeTeam:  "Alabama",
				AwayTeam:  "Unknown FCS School",
				Completed: false,
			},
		},
		lines: []datasource.LineData{
			{GameSourceID: "100", Provider: "consensus", Spread: decPtr("2.5"), OverUnder: decPtr("49.5")},
		},
	}
}

func TestSyncSeasonUpsertsTeamsGamesAndLines(t *testing.T) {
	teams := newMemTeamRepo()
	games := newMemGameRepo()
	svc, err := NewService(fixtureSource(), teams, games, quietLogger())
	require.NoError(t, err)

	summary, err := svc.SyncSeason(context.Background(), 2023)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.TeamsUpserted)
	assert.Equal(t, 1, summary.GamesUpserted)
	assert.Equal(t, 1, summary.LinesMatched)
	assert.Equal(t, 1, summary.Skipped, "the game with an unknown team is skipped")

	stored, ok := games.byProviderID[100]
	require.True(t, ok)
	assert.Equal(t, 2023, stored.Season)
	require.NotNil(t, stored.Spread)
	assert.Equal(t, 2.5, *stored.Spread)
	require.NotNil(t, stored.OverUnder)
	assert.Equal(t, 49.5, *stored.OverUnder)

	auburn, err := teams.GetByName(context.Background(), "Auburn")
	require.NoError(t, err)
	assert.Equal(t, stored.HomeTeamID, auburn.ID)
	assert.Equal(t, "SEC", auburn.Conference)
	assert.Equal(t, 2, auburn.ProviderID)
}

func TestSyncSeasonKeepsExistingTeamIdentity(t *testing.T) {
	teams := newMemTeamRepo()
	existing := models.NewTeam("Alabama", "Independent")
	require.NoError(t, teams.Upsert(context.Background(), existing))

	svc, err := NewService(fixtureSource(), teams, newMemGameRepo(), quietLogger())
	require.NoError(t, err)

	_, err = svc.SyncSeason(context.Background(), 2023)
	require.NoError(t, err)

	updated, err := teams.GetByName(context.Background(), "Alabama")
	require.NoError(t, err)
	assert.Equal(t, existing.ID, updated.ID, "resync must not mint a new identity")
	assert.Equal(t, "SEC", updated.Conference, "conference assignment refreshes")
}

func TestSyncSeasonSurvivesLineFetchFailure(t *testing.T) {
	source := fixtureSource()
	source.linesErr = fmt.Errorf("provider timeout")

	games := newMemGameRepo()
	svc, err := NewService(source, newMemTeamRepo(), games, quietLogger())
	require.NoError(t, err)

	summary, err := svc.SyncSeason(context.Background(), 2023)
	require.NoError(t, err, "lines are enrichment, not a hard dependency")

	assert.Equal(t, 1, summary.GamesUpserted)
	assert.Equal(t, 0, summary.LinesMatched)

	stored := games.byProviderID[100]
	require.NotNil(t, stored)
	assert.Nil(t, stored.Spread)
}

func TestResyncAfterLineFailureKeepsStoredLines(t *testing.T) {
	source := fixtureSource()
	teams := newMemTeamRepo()
	games := newMemGameRepo()
	svc, err := NewService(source, teams, games, quietLogger())
	require.NoError(t, err)

	_, err = svc.SyncSeason(context.Background(), 2023)
	require.NoError(t, err)
	require.NotNil(t, games.byProviderID[100].Spread)

	// The nightly re-sync hits a provider outage on the lines endpoint.
	source.linesErr = fmt.Errorf("provider timeout")
	summary, err := svc.SyncSeason(context.Background(), 2023)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.LinesMatched)

	stored := games.byProviderID[100]
	require.NotNil(t, stored.Spread, "a failed line fetch must not wipe a stored line")
	assert.Equal(t, 2.5, *stored.Spread)
	require.NotNil(t, stored.OverUnder)
	assert.Equal(t, 49.5, *stored.OverUnder)
}

func TestNewServiceValidatesArguments(t *testing.T) {
	_, err := NewService(nil, newMemTeamRepo(), newMemGameRepo(), quietLogger())
	assert.Error(t, err)

	_, err = NewService(&fakeSource{}, nil, nil, quietLogger())
	assert.Error(t, err)

	_, err = NewService(&fakeSource{}, newMemTeamRepo(), newMemGameRepo(), nil)
	assert.Error(t, err)
}
