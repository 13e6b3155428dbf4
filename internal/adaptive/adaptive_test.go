package adaptive

import "testing"

func TestNextLevel(t *testing.T) {
	cases := []struct {
		name   string
		recent []bool
		want   Level
	}{
		{"NoHistory", nil, LevelMedium},
		{"OneCorrect", []bool{true}, LevelHard},
		{"OneIncorrect", []bool{false}, LevelEasy},
		{"TwoCorrect", []bool{true, true}, LevelHard},
		{"TwoIncorrect", []bool{false, false}, LevelEasy},
		{"MixedNewestCorrect", []bool{true, false}, LevelMedium},
		{"MixedNewestIncorrect", []bool{false, true}, LevelMedium},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NextLevel(tc.recent); got != tc.want {
				t.Errorf("NextLevel(%v) = %d, want %d", tc.recent, got, tc.want)
			}
		})
	}
}

func TestNextLevelIgnoresOlderHistory(t *testing.T) {
	// Only the two most recent answers count.
	got := NextLevel([]bool{true, true, false, false})
	if got != LevelHard {
		t.Errorf("NextLevel with long history = %d, want %d", got, LevelHard)
	}
}

func TestLevelLabel(t *testing.T) {
	cases := []struct {
		level Level
		want  string
	}{
		{LevelEasy, "easy"},
		{LevelMedium, "medium"},
		{LevelHard, "hard"},
		{Level(7), "medium"},
	}

	for _, tc := range cases {
		if got := tc.level.Label(); got != tc.want {
			t.Errorf("Level(%d).Label() = %q, want %q", tc.level, got, tc.want)
		}
	}
}
