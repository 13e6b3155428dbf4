package question

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ChaitanyaJadhav9322/AdaptiveQuizeWeb/internal/adaptive"
	"github.com/ChaitanyaJadhav9322/AdaptiveQuizeWeb/internal/ai"
	"github.com/ChaitanyaJadhav9322/AdaptiveQuizeWeb/internal/config"
)

const maxAttempts = 5

// Generator produces validated multiple-choice questions from the
// text-completion provider, degrading to a canned question when the provider
// keeps failing.
type Generator struct {
	provider ai.Provider
}

func NewGenerator(provider ai.Provider) *Generator {
	return &Generator{provider: provider}
}

// Generate returns a question for the topic at the requested difficulty.
// Provider errors, unparsable output, and invalid candidates all count as a
// failed attempt; after maxAttempts the fallback question is returned, so
// Generate never fails.
func (g *Generator) Generate(ctx context.Context, topic string, level adaptive.Level) Question {
	log := config.WithContext(ctx)
	prompt := buildPrompt(topic, level.Label())

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		raw, err := g.provider.Complete(ctx, prompt)
		if err != nil {
			log.WithError(err).Warnf("Question generation attempt %d/%d failed", attempt, maxAttempts)
			continue
		}

		q, err := parseCandidate(raw)
		if err != nil {
			log.WithError(err).Warnf("Question generation attempt %d/%d produced an invalid candidate", attempt, maxAttempts)
			continue
		}
		return q
	}

	log.Warnf("All %d generation attempts failed, using fallback question", maxAttempts)
	return Fallback(topic, level)
}

// parseCandidate extracts and validates one question from raw model output.
func parseCandidate(raw string) (Question, error) {
	obj, err := ai.ExtractJSONObject(raw)
	if err != nil {
		return Question{}, err
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal([]byte(obj), &keys); err != nil {
		return Question{}, fmt.Errorf("invalid JSON object: %w", err)
	}
	for _, key := range []string{"question", "options", "answer", "difficulty"} {
		if _, ok := keys[key]; !ok {
			return Question{}, fmt.Errorf("candidate is missing key %q", key)
		}
	}

	var q Question
	if err := json.Unmarshal([]byte(obj), &q); err != nil {
		return Question{}, fmt.Errorf("invalid candidate shape: %w", err)
	}
	if len(q.Options) != 4 {
		return Question{}, fmt.Errorf("candidate has %d options, want 4", len(q.Options))
	}
	if !containsOption(q.Options, q.Answer) {
		return Question{}, errors.New("candidate answer is not one of its options")
	}

	return q, nil
}

func containsOption(options []string, answer string) bool {
	for _, opt := range options {
		if opt == answer {
			return true
		}
	}
	return false
}
