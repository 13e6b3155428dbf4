package report

import (
	"time"

	"github.com/ChaitanyaJadhav9322/AdaptiveQuizeWeb/internal/quiz"
)

// ReportModel is the layout-neutral report document. Rendering (PDF today)
// consumes it without touching the store.
type ReportModel struct {
	Header   Header        `json:"header"`
	Analysis quiz.Analysis `json:"analysis"`
	Rows     []QuestionRow `json:"rows"`
}

type Header struct {
	UserName       string    `json:"user_name"`
	Topic          string    `json:"topic"`
	Date           time.Time `json:"date"`
	ScoreDisplay   string    `json:"score_display"`
	TotalQuestions int       `json:"total_questions"`
}

type QuestionRow struct {
	Number        int    `json:"number"`
	Question      string `json:"question"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	Correct       bool   `json:"correct"`
}
