package factors

import (
	"math"
	"testing"
)

func TestConferencePowerGap(t *testing.T) {
	s := NewSet(EnhancedWeights())

	score := s.Conference(Input{HomeConference: "SEC", AwayConference: "Sun Belt"})
	// (5.7 - 1.2) * 0.3 plus the power-vs-G5 bonus
	want := 4.5*0.3 + 1.5
	if math.Abs(score.Score-want) > 1e-9 {
		t.Fatalf("expected %.2f, got %.2f", want, score.Score)
	}
	if len(score.Details) != 2 {
		t.Fatalf("expected mismatch and bonus details, got %v", score.Details)
	}
}

func TestConferenceMismatchBonusFlipsForVisitingPower(t *testing.T) {
	s := NewSet(EnhancedWeights())

	home := s.Conference(Input{HomeConference: "Big Ten", AwayConference: "Mid-American"})
	away := s.Conference(Input{HomeConference: "Mid-American", AwayConference: "Big Ten"})

	if home.Score <= 0 {
		t.Fatalf("hosting power side should be positive, got %.2f", home.Score)
	}
	if away.Score >= 0 {
		t.Fatalf("visiting power side should be negative, got %.2f", away.Score)
	}
	if math.Abs(home.Score+away.Score) > 1e-9 {
		t.Fatalf("the matchup should mirror: %.2f vs %.2f", home.Score, away.Score)
	}
}

func TestConferenceUnknownRatesNeutral(t *testing.T) {
	s := NewSet(EnhancedWeights())

	score := s.Conference(Input{HomeConference: "Big Sky", AwayConference: "Pioneer"})
	if score.Score != 0 {
		t.Fatalf("unknown conferences must rate neutral, got %.2f", score.Score)
	}
}

func TestHomeFieldSuppressedAtNeutralSite(t *testing.T) {
	s := NewSet(EnhancedWeights())

	if got := s.HomeField(Input{}); got.Score != 2.0 {
		t.Fatalf("expected home field 2.0, got %.2f", got.Score)
	}
	if got := s.HomeField(Input{IsNeutralSite: true}); !got.IsZero() {
		t.Fatalf("neutral site must score zero, got %.2f", got.Score)
	}
}

func TestSeasonalWeekBands(t *testing.T) {
	s := NewSet(EnhancedWeights())

	tests := []struct {
		week int
		want float64
	}{
		{1, 1.0},
		{4, 1.0},
		{5, 0.5},
		{10, 0.5},
		{11, -0.5},
		{12, -0.5},
		{13, 0},
		{15, 0},
	}
	for _, tc := range tests {
		if got := s.Seasonal(Input{Week: tc.week}).Score; got != tc.want {
			t.Fatalf("week %d: expected %.1f, got %.1f", tc.week, tc.want, got)
		}
	}
}

func TestSeasonalDisabledByLegacyWeights(t *testing.T) {
	s := NewSet(LegacyWeights())

	for week := 1; week <= 15; week++ {
		if got := s.Seasonal(Input{Week: week}); !got.IsZero() || len(got.Details) != 0 {
			t.Fatalf("week %d: legacy weights must silence the seasonal factor, got %+v", week, got)
		}
	}
}
