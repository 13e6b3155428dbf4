package adaptive

// Level is a question difficulty: 0 easy, 1 medium, 2 hard.
type Level int

const (
	LevelEasy Level = iota
	LevelMedium
	LevelHard
)

var labels = [...]string{"easy", "medium", "hard"}

func (l Level) Label() string {
	if l < LevelEasy || l > LevelHard {
		return labels[LevelMedium]
	}
	return labels[l]
}
