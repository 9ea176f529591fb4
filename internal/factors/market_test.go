package factors

import (
	"math"
	"strings"
	"testing"
)

func TestMarketValueRequiresALine(t *testing.T) {
	s := NewSet(EnhancedWeights())

	if got := s.MarketValue(Input{ProvisionalSpread: 10}); !got.IsZero() {
		t.Fatalf("no line means no market factor, got %.2f", got.Score)
	}
}

func TestMarketValueBelowThresholdIsSilent(t *testing.T) {
	s := NewSet(EnhancedWeights())

	// Model home -2.5 vs market home 0 stays under the 3-point threshold.
	in := Input{ProvisionalSpread: 2.5, MarketSpread: f64(0)}
	if got := s.MarketValue(in); !got.IsZero() {
		t.Fatalf("sub-threshold divergence must score zero, got %.2f", got.Score)
	}
}

func TestMarketValueCreditsTheStrongerSide(t *testing.T) {
	s := NewSet(EnhancedWeights())

	// Market has the home side -4 while the model sees a pick'em: fade home.
	in := Input{ProvisionalSpread: 0, MarketSpread: f64(-4)}
	got := s.MarketValue(in)
	want := -math.Min(4*0.5, 4.0)
	if math.Abs(got.Score-want) > 1e-9 {
		t.Fatalf("expected %.2f, got %.2f", want, got.Score)
	}
	if len(got.Details) != 1 || !strings.Contains(got.Details[0], "overvaluing") {
		t.Fatalf("expected an overvaluing explanation, got %v", got.Details)
	}
}

func TestMarketValueCapped(t *testing.T) {
	s := NewSet(EnhancedWeights())

	// A 20-point divergence would scale to 10; the cap holds it at 4.
	in := Input{ProvisionalSpread: 20, MarketSpread: f64(0)}
	if got := s.MarketValue(in).Score; got != 4.0 {
		t.Fatalf("expected capped 4.0, got %.2f", got)
	}
}

func TestLargeFavoriteRiskTiers(t *testing.T) {
	s := NewSet(EnhancedWeights())

	tests := []struct {
		name   string
		spread float64
		want   float64
	}{
		{"blowout home favorite", -15, -2.0},
		{"blowout away favorite", 15, -2.0},
		{"double digit home favorite", -10, -1.5},
		{"double digit away favorite", 10, -1.0},
		{"solid home favorite", -7, -0.5},
		{"solid away favorite", 8.5, -0.5},
		{"short line", -3, 0},
	}
	for _, tc := range tests {
		got := s.LargeFavoriteRisk(Input{MarketSpread: f64(tc.spread)}).Score
		if got != tc.want {
			t.Fatalf("%s: expected %.1f, got %.1f", tc.name, tc.want, got)
		}
	}
}

// The blowout tier opens strictly above 14 points: a 14-point line is still
// a double-digit favorite, a 14.5-point line is a blowout. This follows the
// historical cover-rate buckets, which split on spreads greater than 14.
func TestLargeFavoriteRiskBlowoutBoundary(t *testing.T) {
	s := NewSet(EnhancedWeights())

	if got := s.LargeFavoriteRisk(Input{MarketSpread: f64(-14)}).Score; got != -1.5 {
		t.Fatalf("a 14-point home favorite stays in the double-digit tier, got %.1f", got)
	}
	if got := s.LargeFavoriteRisk(Input{MarketSpread: f64(-14.5)}).Score; got != -2.0 {
		t.Fatalf("a 14.5-point home favorite is a blowout, got %.1f", got)
	}
	if got := s.LargeFavoriteRisk(Input{MarketSpread: f64(14.5)}).Score; got != -2.0 {
		t.Fatalf("a 14.5-point away favorite is a blowout, got %.1f", got)
	}
}

// The tier constants are home-favoring by construction and must never be
// sign-flipped for away favorites; only the explanation names the side.
func TestLargeFavoriteRiskNeverPositive(t *testing.T) {
	s := NewSet(EnhancedWeights())

	for _, spread := range []float64{-21, -10.5, -7, 7, 10.5, 21} {
		got := s.LargeFavoriteRisk(Input{MarketSpread: f64(spread)})
		if got.Score > 0 || got.Score < -2.0 {
			t.Fatalf("spread %.1f: score %.2f out of [-2, 0]", spread, got.Score)
		}
	}

	home := s.LargeFavoriteRisk(Input{MarketSpread: f64(-15)})
	away := s.LargeFavoriteRisk(Input{MarketSpread: f64(15)})
	if !strings.Contains(home.Details[0], "home") || !strings.Contains(away.Details[0], "away") {
		t.Fatalf("details must name the favored side: %v / %v", home.Details, away.Details)
	}
}

func TestLargeFavoriteRiskDisabledByLegacyWeights(t *testing.T) {
	s := NewSet(LegacyWeights())

	got := s.LargeFavoriteRisk(Input{MarketSpread: f64(-15)})
	if !got.IsZero() || len(got.Details) != 0 {
		t.Fatalf("legacy weights must silence the favorite risk factor, got %+v", got)
	}
}
