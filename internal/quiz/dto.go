package quiz

import (
	"time"

	"github.com/ChaitanyaJadhav9322/AdaptiveQuizeWeb/internal/question"
	"github.com/google/uuid"
)

const (
	StatusSuccess      = "success"
	StatusQuizFinished = "quiz_finished"
)

type StartQuizRequest struct {
	Username     string `json:"username"`
	Topic        string `json:"topic"`
	NumQuestions int    `json:"num_questions"`
}

type StartQuizResponse struct {
	QuizID        uuid.UUID         `json:"quiz_id"`
	Question      question.Question `json:"question"`
	QuestionIndex int               `json:"question_index"`
}

// SubmitRequest carries the question the user just answered. Pointer fields
// distinguish absent from zero-valued input.
type SubmitRequest struct {
	QuizID        string             `json:"quiz_id"`
	Question      *question.Question `json:"question"`
	UserAnswer    *string            `json:"user_answer"`
	QuestionIndex *int               `json:"question_index"`
}

type SubmitResponse struct {
	Status        string             `json:"status"`
	Question      *question.Question `json:"question,omitempty"`
	QuestionIndex *int               `json:"question_index,omitempty"`
}

// Analysis is the AI performance summary persisted on the quiz once analysis
// succeeds.
type Analysis struct {
	PerformanceSummary string `json:"performance_summary"`
	Recommendations    string `json:"recommendations"`
}

type QuizSummary struct {
	ID             uuid.UUID `json:"id"`
	UserName       string    `json:"user_name"`
	Topic          string    `json:"topic"`
	StartTime      time.Time `json:"start_time"`
	Score          *int      `json:"score,omitempty"`
	TotalQuestions int       `json:"total_questions"`
}
