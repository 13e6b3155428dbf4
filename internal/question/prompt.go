package question

import "fmt"

func buildPrompt(topic, difficulty string) string {
	return fmt.Sprintf(`Generate a single, multiple-choice aptitude test question in JSON format about the topic: %s.
The question must be of '%s' difficulty.

The JSON object must have the following keys:
- "question": The main question text.
- "options": A list containing exactly 4 detailed, relevant, and plausible options.
- "answer": The correct option from the list.
- "difficulty": "%s"

Output ONLY the valid JSON object. Do not include any other text or code block markers.`,
		topic, difficulty, difficulty)
}
