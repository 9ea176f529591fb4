package factors

import (
	"math"
	"testing"

	"github.com/yourusername/gridiron-edge/internal/models"
)

func f64(v float64) *float64 { return &v }

func TestWeatherUnknownScoresNothing(t *testing.T) {
	s := NewSet(EnhancedWeights())

	score := s.Weather(Input{Weather: models.WeatherConditions{}})
	if score.Score != 0 {
		t.Fatalf("unknown weather must score zero, got %.2f", score.Score)
	}
	if len(score.Details) != 0 {
		t.Fatalf("zero score must carry no explanation, got %v", score.Details)
	}
}

func TestWeatherDomeBonus(t *testing.T) {
	s := NewSet(EnhancedWeights())

	// Outdoor readings are irrelevant once the roof is closed.
	score := s.Weather(Input{Weather: models.WeatherConditions{
		IsDome:      true,
		Temperature: f64(20),
		WindSpeed:   f64(30),
	}})
	if score.Score != 4.0 {
		t.Fatalf("expected dome bonus 4.0, got %.2f", score.Score)
	}
	if len(score.Details) != 1 {
		t.Fatalf("expected a single dome detail, got %v", score.Details)
	}
}

func TestWeatherPenaltiesStackToFloor(t *testing.T) {
	s := NewSet(EnhancedWeights())

	score := s.Weather(Input{Weather: models.WeatherConditions{
		Temperature:   f64(28),
		WindSpeed:     f64(25),
		Precipitation: f64(0.3),
	}})
	if score.Score != -6.0 {
		t.Fatalf("expected stacked penalty -6.0, got %.2f", score.Score)
	}
	if len(score.Details) != 3 {
		t.Fatalf("expected one detail per axis, got %v", score.Details)
	}
}

func TestWeatherBands(t *testing.T) {
	s := NewSet(EnhancedWeights())

	tests := []struct {
		name    string
		weather models.WeatherConditions
		want    float64
	}{
		{"cold", models.WeatherConditions{Temperature: f64(36)}, -1.0},
		{"hot", models.WeatherConditions{Temperature: f64(92)}, -0.5},
		{"mild", models.WeatherConditions{Temperature: f64(65)}, 0},
		{"moderate wind", models.WeatherConditions{WindSpeed: f64(17)}, -1.0},
		{"high wind", models.WeatherConditions{WindSpeed: f64(22)}, -2.0},
		{"calm", models.WeatherConditions{WindSpeed: f64(8)}, 0},
		{"dry", models.WeatherConditions{Precipitation: f64(0)}, 0},
		{"wet", models.WeatherConditions{Precipitation: f64(0.1)}, -1.5},
	}
	for _, tc := range tests {
		if got := s.Weather(Input{Weather: tc.weather}).Score; got != tc.want {
			t.Fatalf("%s: expected %.1f, got %.1f", tc.name, tc.want, got)
		}
	}
}

func TestWeatherStaysInRange(t *testing.T) {
	s := NewSet(EnhancedWeights())

	extremes := []models.WeatherConditions{
		{IsDome: true},
		{Temperature: f64(-10), WindSpeed: f64(60), Precipitation: f64(2.0)},
		{Temperature: f64(110)},
	}
	for _, w := range extremes {
		score := s.Weather(Input{Weather: w}).Score
		if score < -6.0 || score > 4.0 {
			t.Fatalf("weather score %.2f out of [-6, +4]", score)
		}
	}
}

func TestWeatherMarketInteractionBands(t *testing.T) {
	s := NewSet(EnhancedWeights())

	tests := []struct {
		name   string
		temp   float64
		spread float64
		want   float64
	}{
		{"freezing short line", 28, -3.5, 1.5},
		{"freezing big favorite", 28, -10, 0.8},
		{"cold big favorite", 45, 9, -1.2},
		{"hot big favorite", 85, -7, 0.5},
		{"mild big favorite", 65, -10, 0},
		{"cold short line", 45, -3, 0},
	}
	for _, tc := range tests {
		in := Input{
			Weather:      models.WeatherConditions{Temperature: f64(tc.temp)},
			MarketSpread: f64(tc.spread),
		}
		got := s.WeatherMarketInteraction(in).Score
		if math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("%s: expected %.1f, got %.1f", tc.name, tc.want, got)
		}
	}
}

func TestWeatherMarketInteractionRequiresInputs(t *testing.T) {
	s := NewSet(EnhancedWeights())

	cases := []Input{
		{Weather: models.WeatherConditions{IsDome: true, Temperature: f64(28)}, MarketSpread: f64(-3)},
		{Weather: models.WeatherConditions{Temperature: f64(28)}},
		{MarketSpread: f64(-3)},
	}
	for i, in := range cases {
		if got := s.WeatherMarketInteraction(in); !got.IsZero() {
			t.Fatalf("case %d: expected zero score, got %.2f", i, got.Score)
		}
	}
}

func TestWeatherMarketInteractionDisabledByLegacyWeights(t *testing.T) {
	s := NewSet(LegacyWeights())

	in := Input{
		Weather:      models.WeatherConditions{Temperature: f64(28)},
		MarketSpread: f64(-3.5),
	}
	got := s.WeatherMarketInteraction(in)
	if !got.IsZero() || len(got.Details) != 0 {
		t.Fatalf("legacy weights must silence the interaction factor, got %+v", got)
	}
}
