package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ChaitanyaJadhav9322/AdaptiveQuizeWeb/internal/adaptive"
	"github.com/ChaitanyaJadhav9322/AdaptiveQuizeWeb/internal/ai"
	"github.com/ChaitanyaJadhav9322/AdaptiveQuizeWeb/internal/config"
	"github.com/ChaitanyaJadhav9322/AdaptiveQuizeWeb/internal/question"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

var (
	ErrMissingFields = errors.New("missing required fields")
	ErrQuizNotFound  = errors.New("quiz not found")
)

const defaultTotalQuestions = 10

type Service interface {
	Start(ctx context.Context, req StartQuizRequest) (*StartQuizResponse, error)
	SubmitAndAdvance(ctx context.Context, req SubmitRequest) (*SubmitResponse, error)
	Analyze(ctx context.Context, quizID string) (*Analysis, error)
	History(ctx context.Context) ([]QuizSummary, error)
}

type service struct {
	repo      Repository
	generator *question.Generator
	provider  ai.Provider
	locks     quizLocks
}

func NewService(repo Repository, generator *question.Generator, provider ai.Provider) Service {
	return &service{
		repo:      repo,
		generator: generator,
		provider:  provider,
	}
}

// Start creates a new quiz and returns its first question at medium
// difficulty. Validation happens before anything is persisted.
func (s *service) Start(ctx context.Context, req StartQuizRequest) (*StartQuizResponse, error) {
	log := config.WithContext(ctx)

	if req.Username == "" || req.Topic == "" {
		return nil, fmt.Errorf("%w: username and topic are required", ErrMissingFields)
	}

	total := req.NumQuestions
	if total <= 0 {
		total = defaultTotalQuestions
	}

	q := &Quiz{
		ID:             uuid.New(),
		UserName:       req.Username,
		Topic:          req.Topic,
		TotalQuestions: total,
		StartTime:      time.Now().UTC(),
	}
	if err := s.repo.CreateQuiz(q); err != nil {
		log.WithError(err).Error("Failed to create quiz")
		return nil, fmt.Errorf("failed to create quiz: %w", err)
	}

	first := s.generator.Generate(ctx, req.Topic, adaptive.LevelMedium)

	log.WithField("quiz_id", q.ID.String()).Info("Quiz started")
	return &StartQuizResponse{
		QuizID:        q.ID,
		Question:      first,
		QuestionIndex: 0,
	}, nil
}

// SubmitAndAdvance grades the submitted answer, persists the record, and
// either finishes the quiz or returns the next question at the adapted
// difficulty. Re-submissions against a finished quiz are answered with
// quiz_finished and cause no writes.
func (s *service) SubmitAndAdvance(ctx context.Context, req SubmitRequest) (*SubmitResponse, error) {
	log := config.WithContext(ctx)

	if req.QuizID == "" || req.Question == nil || req.UserAnswer == nil || req.QuestionIndex == nil {
		return nil, ErrMissingFields
	}
	quizID, err := uuid.Parse(req.QuizID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid quiz_id", ErrMissingFields)
	}

	unlock := s.locks.lock(req.QuizID)
	defer unlock()

	q, err := s.repo.GetQuiz(quizID)
	if err != nil {
		log.WithError(err).Error("Failed to load quiz")
		return nil, fmt.Errorf("failed to load quiz: %w", err)
	}
	if q == nil || q.CurrentQuestionIndex >= q.TotalQuestions {
		return &SubmitResponse{Status: StatusQuizFinished}, nil
	}

	isCorrect := *req.UserAnswer == req.Question.Answer

	optionsJSON, err := json.Marshal(req.Question.Options)
	if err != nil {
		return nil, fmt.Errorf("failed to encode options: %w", err)
	}
	rec := &QuestionRecord{
		QuizID:        quizID,
		QuestionText:  req.Question.Question,
		Options:       datatypes.JSON(optionsJSON),
		UserAnswer:    *req.UserAnswer,
		CorrectAnswer: req.Question.Answer,
		IsCorrect:     isCorrect,
		Difficulty:    req.Question.Difficulty,
	}
	if err := s.repo.InsertQuestionRecord(rec); err != nil {
		log.WithError(err).Error("Failed to persist question record")
		return nil, fmt.Errorf("failed to persist question record: %w", err)
	}

	newIndex := *req.QuestionIndex + 1
	if newIndex >= q.TotalQuestions {
		if err := s.repo.FinishQuiz(quizID, newIndex, time.Now().UTC()); err != nil {
			log.WithError(err).Error("Failed to finish quiz")
			return nil, fmt.Errorf("failed to finish quiz: %w", err)
		}
		log.WithField("quiz_id", req.QuizID).Info("Quiz finished")
		return &SubmitResponse{Status: StatusQuizFinished}, nil
	}

	recent, err := s.repo.LastCorrectness(quizID, 2)
	if err != nil {
		log.WithError(err).Error("Failed to load recent answers")
		return nil, fmt.Errorf("failed to load recent answers: %w", err)
	}
	level := adaptive.NextLevel(recent)

	next := s.generator.Generate(ctx, q.Topic, level)

	if err := s.repo.UpdateProgress(quizID, newIndex); err != nil {
		log.WithError(err).Error("Failed to advance quiz")
		return nil, fmt.Errorf("failed to advance quiz: %w", err)
	}

	return &SubmitResponse{
		Status:        StatusSuccess,
		Question:      &next,
		QuestionIndex: &newIndex,
	}, nil
}

// Analyze scores the quiz and asks the model for a performance summary. On
// any analysis failure a generic summary is returned but not persisted, so a
// later retry can still succeed.
func (s *service) Analyze(ctx context.Context, quizID string) (*Analysis, error) {
	log := config.WithContext(ctx)

	if quizID == "" {
		return nil, fmt.Errorf("%w: quiz_id is required", ErrMissingFields)
	}
	id, err := uuid.Parse(quizID)
	if err != nil {
		return nil, ErrQuizNotFound
	}

	q, err := s.repo.GetQuiz(id)
	if err != nil {
		log.WithError(err).Error("Failed to load quiz")
		return nil, fmt.Errorf("failed to load quiz: %w", err)
	}
	if q == nil {
		return nil, ErrQuizNotFound
	}

	records, err := s.repo.ListQuestionRecords(id)
	if err != nil {
		log.WithError(err).Error("Failed to load question records")
		return nil, fmt.Errorf("failed to load question records: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrQuizNotFound
	}

	score := 0
	for _, rec := range records {
		if rec.IsCorrect {
			score++
		}
	}
	if err := s.repo.SetScoreAndEnd(id, score, time.Now().UTC()); err != nil {
		log.WithError(err).Error("Failed to persist score")
		return nil, fmt.Errorf("failed to persist score: %w", err)
	}

	analysis, err := s.requestAnalysis(ctx, q, score, records)
	if err != nil {
		log.WithError(err).Warn("AI analysis failed, returning generic summary")
		return fallbackAnalysis(score, len(records)), nil
	}

	serialized, err := json.Marshal(analysis)
	if err != nil {
		return nil, fmt.Errorf("failed to encode analysis: %w", err)
	}
	if err := s.repo.SetSummary(id, string(serialized)); err != nil {
		log.WithError(err).Error("Failed to persist analysis")
		return nil, fmt.Errorf("failed to persist analysis: %w", err)
	}

	log.WithField("quiz_id", quizID).Info("Quiz analyzed")
	return analysis, nil
}

func (s *service) requestAnalysis(ctx context.Context, q *Quiz, score int, records []*QuestionRecord) (*Analysis, error) {
	raw, err := s.provider.Complete(ctx, buildAnalysisPrompt(q, score, records))
	if err != nil {
		return nil, err
	}

	obj, err := ai.ExtractJSONObject(raw)
	if err != nil {
		return nil, err
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal([]byte(obj), &keys); err != nil {
		return nil, fmt.Errorf("invalid analysis JSON: %w", err)
	}
	if _, ok := keys["performance_summary"]; !ok {
		return nil, errors.New("analysis is missing performance_summary")
	}
	if _, ok := keys["recommendations"]; !ok {
		return nil, errors.New("analysis is missing recommendations")
	}

	var analysis Analysis
	if err := json.Unmarshal([]byte(obj), &analysis); err != nil {
		return nil, fmt.Errorf("invalid analysis shape: %w", err)
	}
	return &analysis, nil
}

func fallbackAnalysis(score, total int) *Analysis {
	return &Analysis{
		PerformanceSummary: fmt.Sprintf("Could not generate a detailed analysis. Your final score was %d/%d.", score, total),
		Recommendations:    "Please try again later or focus on the topics you found difficult.",
	}
}

func (s *service) History(ctx context.Context) ([]QuizSummary, error) {
	log := config.WithContext(ctx)

	summaries, err := s.repo.ListSummaries()
	if err != nil {
		log.WithError(err).Error("Failed to list quiz history")
		return nil, fmt.Errorf("failed to list quiz history: %w", err)
	}
	return summaries, nil
}
