package question

import (
	"fmt"
	"math/rand/v2"

	"github.com/ChaitanyaJadhav9322/AdaptiveQuizeWeb/internal/adaptive"
)

// topicConcepts backs the network-free fallback question for well-known topics.
var topicConcepts = map[string][]string{
	"Data Structures and Algorithms": {"Array", "Linked List", "Stack", "Queue"},
	"Mathematics":                    {"Algebra", "Geometry", "Calculus", "Statistics"},
	"Physics":                        {"Force", "Energy", "Motion", "Gravity"},
	"Chemistry":                      {"Atomic Structure", "Chemical Bonding", "Stoichiometry", "Thermodynamics"},
}

var genericConcepts = []string{"Concept A", "Concept B", "Concept C", "Concept D"}

// Fallback builds a deterministic question when generation is exhausted.
// It never fails and never touches the network. The first post-shuffle option
// is designated the answer.
func Fallback(topic string, level adaptive.Level) Question {
	concepts, ok := topicConcepts[topic]
	if !ok {
		concepts = genericConcepts
	}

	options := make([]string, len(concepts))
	copy(options, concepts)
	rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return Question{
		Question:   fmt.Sprintf("Which of these is a key concept in %s?", topic),
		Options:    options,
		Answer:     options[0],
		Difficulty: level.Label(),
	}
}
