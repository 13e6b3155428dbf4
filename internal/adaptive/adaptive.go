package adaptive

// NextLevel maps the correctness of the most recent answers to the difficulty
// of the next question. recent is ordered newest-first and only its first two
// entries are considered.
//
// Two answers: both correct -> hard, both incorrect -> easy, mixed -> medium.
// One answer: correct -> hard, incorrect -> easy.
// No answers yet: medium.
func NextLevel(recent []bool) Level {
	if len(recent) > 2 {
		recent = recent[:2]
	}

	switch len(recent) {
	case 2:
		switch {
		case recent[0] && recent[1]:
			return LevelHard
		case !recent[0] && !recent[1]:
			return LevelEasy
		default:
			return LevelMedium
		}
	case 1:
		if recent[0] {
			return LevelHard
		}
		return LevelEasy
	default:
		return LevelMedium
	}
}
