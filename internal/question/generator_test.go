package question

import (
	"context"
	"errors"
	"testing"

	"github.com/ChaitanyaJadhav9322/AdaptiveQuizeWeb/internal/adaptive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCandidate = `{"question": "What is 2+2?", "options": ["3", "4", "5", "6"], "answer": "4", "difficulty": "medium"}`

// scriptedProvider replays canned responses and counts calls.
type scriptedProvider struct {
	responses []string
	errs      []error
	calls     int
}

func (p *scriptedProvider) Complete(ctx context.Context, prompt string) (string, error) {
	i := p.calls
	p.calls++
	if i >= len(p.responses) {
		return "", errors.New("out of scripted responses")
	}
	return p.responses[i], p.errs[i]
}

func script(responses ...string) *scriptedProvider {
	errs := make([]error, len(responses))
	for i, r := range responses {
		if r == "" {
			errs[i] = errors.New("provider error")
		}
	}
	return &scriptedProvider{responses: responses, errs: errs}
}

func TestGenerateReturnsFirstValidCandidate(t *testing.T) {
	p := script("Here you go:\n```json\n" + validCandidate + "\n```")
	g := NewGenerator(p)

	q := g.Generate(context.Background(), "Mathematics", adaptive.LevelMedium)

	assert.Equal(t, "What is 2+2?", q.Question)
	assert.Equal(t, "4", q.Answer)
	assert.Equal(t, "medium", q.Difficulty)
	assert.Equal(t, 1, p.calls, "a valid candidate must short-circuit the retry loop")
}

func TestGenerateSkipsInvalidCandidates(t *testing.T) {
	p := script(
		`{"question": "Q?", "options": ["a", "b", "c", "d"], "difficulty": "easy"}`,               // missing answer
		`{"question": "Q?", "options": ["a", "b", "c", "d"], "answer": "e", "difficulty": "easy"}`, // answer not an option
		`{"question": "Q?", "options": ["a", "b", "c"], "answer": "a", "difficulty": "easy"}`,      // 3 options
		`{"question": "Q?", "options": ["a", "b", "c", "d", "e"], "answer": "a", "difficulty": "easy"}`, // 5 options
		validCandidate,
	)
	g := NewGenerator(p)

	q := g.Generate(context.Background(), "Mathematics", adaptive.LevelMedium)

	assert.Equal(t, "4", q.Answer, "invalid candidates must not short-circuit the retry loop")
	assert.Equal(t, 5, p.calls)
}

func TestGenerateFallsBackAfterExhaustion(t *testing.T) {
	p := script("", "", "", "", "")
	g := NewGenerator(p)

	q := g.Generate(context.Background(), "Mathematics", adaptive.LevelHard)

	assert.Equal(t, 5, p.calls, "retry budget is five attempts")
	assert.Equal(t, "Which of these is a key concept in Mathematics?", q.Question)
	assert.Equal(t, "hard", q.Difficulty)
	assert.Contains(t, q.Options, q.Answer)
}

func TestParseCandidateValidation(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"MissingQuestion", `{"options": ["a", "b", "c", "d"], "answer": "a", "difficulty": "easy"}`},
		{"MissingOptions", `{"question": "Q?", "answer": "a", "difficulty": "easy"}`},
		{"MissingAnswer", `{"question": "Q?", "options": ["a", "b", "c", "d"], "difficulty": "easy"}`},
		{"MissingDifficulty", `{"question": "Q?", "options": ["a", "b", "c", "d"], "answer": "a"}`},
		{"AnswerNotAnOption", `{"question": "Q?", "options": ["a", "b", "c", "d"], "answer": "z", "difficulty": "easy"}`},
		{"TooFewOptions", `{"question": "Q?", "options": ["a", "b", "c"], "answer": "a", "difficulty": "easy"}`},
		{"TooManyOptions", `{"question": "Q?", "options": ["a", "b", "c", "d", "e"], "answer": "a", "difficulty": "easy"}`},
		{"NotJSON", `no object here`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseCandidate(tc.raw)
			require.Error(t, err)
		})
	}
}
