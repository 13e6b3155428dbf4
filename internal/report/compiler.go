package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/ChaitanyaJadhav9322/AdaptiveQuizeWeb/internal/config"
	"github.com/ChaitanyaJadhav9322/AdaptiveQuizeWeb/internal/quiz"
	"github.com/google/uuid"
)

var ErrReportNotFound = errors.New("report or quiz not found")

const noRecommendations = "No recommendations available."

// Compiler assembles a ReportModel from persisted quiz records.
type Compiler struct {
	repo quiz.Repository
}

func NewCompiler(repo quiz.Repository) *Compiler {
	return &Compiler{repo: repo}
}

func (c *Compiler) Compile(ctx context.Context, quizID uuid.UUID) (*ReportModel, error) {
	log := config.WithContext(ctx)

	q, err := c.repo.GetQuiz(quizID)
	if err != nil {
		log.WithError(err).Error("Failed to load quiz for report")
		return nil, fmt.Errorf("failed to load quiz: %w", err)
	}
	if q == nil {
		return nil, ErrReportNotFound
	}

	records, err := c.repo.ListQuestionRecords(quizID)
	if err != nil {
		log.WithError(err).Error("Failed to load question records for report")
		return nil, fmt.Errorf("failed to load question records: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrReportNotFound
	}

	scoreDisplay := "N/A"
	if q.Score != nil {
		scoreDisplay = strconv.Itoa(*q.Score)
	}

	rows := make([]QuestionRow, 0, len(records))
	for i, rec := range records {
		rows = append(rows, QuestionRow{
			Number:        i + 1,
			Question:      rec.QuestionText,
			UserAnswer:    rec.UserAnswer,
			CorrectAnswer: rec.CorrectAnswer,
			Correct:       rec.IsCorrect,
		})
	}

	return &ReportModel{
		Header: Header{
			UserName:       q.UserName,
			Topic:          q.Topic,
			Date:           q.StartTime,
			ScoreDisplay:   scoreDisplay,
			TotalQuestions: q.TotalQuestions,
		},
		Analysis: aiSection(q.AISummary, scoreDisplay, q.TotalQuestions),
		Rows:     rows,
	}, nil
}

// aiSection resolves the stored summary into a displayable analysis.
// A stored JSON object with both keys is used verbatim; any other stored text
// is wrapped as the performance summary; an absent summary is synthesized
// from the score.
func aiSection(summary *string, scoreDisplay string, total int) quiz.Analysis {
	if summary == nil || *summary == "" {
		return quiz.Analysis{
			PerformanceSummary: fmt.Sprintf("Could not generate a detailed analysis. Your final score was %s/%d.", scoreDisplay, total),
			Recommendations:    noRecommendations,
		}
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal([]byte(*summary), &keys); err == nil {
		_, hasSummary := keys["performance_summary"]
		_, hasRecs := keys["recommendations"]
		if hasSummary && hasRecs {
			var analysis quiz.Analysis
			if err := json.Unmarshal([]byte(*summary), &analysis); err == nil {
				return analysis
			}
		}
	}

	return quiz.Analysis{
		PerformanceSummary: *summary,
		Recommendations:    noRecommendations,
	}
}
