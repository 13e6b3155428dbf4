package quiz

import (
	"encoding/json"
	"fmt"
)

type questionResult struct {
	QuestionText  string `json:"question_text"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	IsCorrect     bool   `json:"is_correct"`
	Difficulty    string `json:"difficulty"`
}

func buildAnalysisPrompt(q *Quiz, score int, records []*QuestionRecord) string {
	results := make([]questionResult, 0, len(records))
	for _, rec := range records {
		results = append(results, questionResult{
			QuestionText:  rec.QuestionText,
			UserAnswer:    rec.UserAnswer,
			CorrectAnswer: rec.CorrectAnswer,
			IsCorrect:     rec.IsCorrect,
			Difficulty:    rec.Difficulty,
		})
	}
	resultsJSON, _ := json.Marshal(results)

	return fmt.Sprintf(`Analyze the quiz performance for user '%s' on the topic '%s'.
The user's final score was %d out of %d.
Here are the results of each question: %s.
Provide a detailed, professional analysis in two distinct sections.
1. A **Performance Summary**: Begin with an overall evaluation of the user's performance. Mention their score and highlight specific strengths and weaknesses (e.g., "The user demonstrated strong knowledge in X but struggled with Y, particularly in 'hard' difficulty questions.").
2. **Actionable Recommendations & Resources**: Based on the weaknesses identified, provide a clear, step-by-step plan for improvement. Suggest specific concepts to review and provide an example search query for each. Recommend a variety of learning resources, such as textbooks, online courses, and YouTube channels. Be encouraging and concise.
The response should be a valid JSON object with keys "performance_summary" and "recommendations".`,
		q.UserName, q.Topic, score, q.TotalQuestions, resultsJSON)
}
