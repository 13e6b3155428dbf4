package question

import (
	"sort"
	"testing"

	"github.com/ChaitanyaJadhav9322/AdaptiveQuizeWeb/internal/adaptive"
	"github.com/stretchr/testify/assert"
)

func TestFallbackKnownTopic(t *testing.T) {
	want := []string{"Algebra", "Calculus", "Geometry", "Statistics"}

	for i := 0; i < 50; i++ {
		q := Fallback("Mathematics", adaptive.LevelMedium)

		got := append([]string(nil), q.Options...)
		sort.Strings(got)
		assert.Equal(t, want, got, "options must be a permutation of the Mathematics concepts")
		assert.Equal(t, q.Options[0], q.Answer, "the first post-shuffle option is the answer")
		assert.Equal(t, "medium", q.Difficulty)
		assert.Equal(t, "Which of these is a key concept in Mathematics?", q.Question)
	}
}

func TestFallbackUnknownTopic(t *testing.T) {
	q := Fallback("Underwater Basket Weaving", adaptive.LevelEasy)

	assert.Len(t, q.Options, 4)
	assert.Contains(t, q.Options, q.Answer)
	assert.Equal(t, "easy", q.Difficulty)

	got := append([]string(nil), q.Options...)
	sort.Strings(got)
	assert.Equal(t, []string{"Concept A", "Concept B", "Concept C", "Concept D"}, got)
}

func TestFallbackDoesNotMutateConceptTable(t *testing.T) {
	before := append([]string(nil), topicConcepts["Physics"]...)
	for i := 0; i < 20; i++ {
		Fallback("Physics", adaptive.LevelHard)
	}
	assert.Equal(t, before, topicConcepts["Physics"])
}
