package factors

import "testing"

func TestByVersion(t *testing.T) {
	tests := []struct {
		version string
		want    string
	}{
		{"legacy", "legacy-v1"},
		{"legacy-v1", "legacy-v1"},
		{"enhanced", "enhanced-v2"},
		{"enhanced-v2", "enhanced-v2"},
		{"", "enhanced-v2"},
	}
	for _, tc := range tests {
		if got := ByVersion(tc.version).Version; got != tc.want {
			t.Fatalf("%q: expected %s, got %s", tc.version, tc.want, got)
		}
	}
}

func TestLegacyWeightsZeroTheNewerFamilies(t *testing.T) {
	w := LegacyWeights()

	zeroed := map[string]float64{
		"blowout favorite":        w.BlowoutFavoritePenalty,
		"double digit home":       w.DoubleDigitHomePenalty,
		"double digit away":       w.DoubleDigitAwayPenalty,
		"solid favorite":          w.SolidFavoritePenalty,
		"early season":            w.EarlySeasonBoost,
		"mid season":              w.MidSeasonBoost,
		"late season":             w.LateSeasonFade,
		"freezing small favorite": w.FreezingSmallFavorite,
		"freezing large favorite": w.FreezingLargeFavorite,
		"cold large favorite":     w.ColdLargeFavorite,
		"hot large favorite":      w.HotLargeFavorite,
		"strength cap":            w.StrengthCap,
		"player efficiency cap":   w.PlayerEfficiencyCap,
		"team efficiency cap":     w.TeamEfficiencyCap,
		"momentum cap":            w.MomentumCap,
	}
	for name, v := range zeroed {
		if v != 0 {
			t.Fatalf("%s must be zeroed in the legacy tuning, got %.2f", name, v)
		}
	}

	// The original four factors survive untouched.
	if w.DomeBonus != 4.0 || w.HomeFieldPoints != 2.0 || w.ConferenceScale != 0.3 || w.DivergenceCap != 4.0 {
		t.Fatalf("legacy tuning must keep the original factor constants")
	}
}

func TestConferencePowerTableCoversFBS(t *testing.T) {
	w := EnhancedWeights()

	if w.ConferencePower["SEC"] != 5.7 {
		t.Fatalf("expected SEC at 5.7, got %.1f", w.ConferencePower["SEC"])
	}
	if !w.MajorConferences["SEC"] || w.MajorConferences["Sun Belt"] {
		t.Fatalf("major conference table misclassifies")
	}
	if _, ok := w.ConferencePower["FBS Independents"]; !ok {
		t.Fatalf("independents need a rating")
	}
}
