package quiz

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository is the persistence gateway consumed by the session service and
// the report compiler.
type Repository interface {
	CreateQuiz(q *Quiz) error
	// GetQuiz returns (nil, nil) when the quiz does not exist.
	GetQuiz(id uuid.UUID) (*Quiz, error)
	UpdateProgress(id uuid.UUID, index int) error
	FinishQuiz(id uuid.UUID, index int, endTime time.Time) error
	SetScoreAndEnd(id uuid.UUID, score int, endTime time.Time) error
	SetSummary(id uuid.UUID, summary string) error
	ListSummaries() ([]QuizSummary, error)

	InsertQuestionRecord(rec *QuestionRecord) error
	ListQuestionRecords(quizID uuid.UUID) ([]*QuestionRecord, error)
	// LastCorrectness returns the correctness flags of the n most recently
	// persisted records for the quiz, newest first.
	LastCorrectness(quizID uuid.UUID, n int) ([]bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateQuiz(q *Quiz) error {
	return r.db.Create(q).Error
}

func (r *repository) GetQuiz(id uuid.UUID) (*Quiz, error) {
	var quiz Quiz
	if err := r.db.First(&quiz, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &quiz, nil
}

func (r *repository) UpdateProgress(id uuid.UUID, index int) error {
	return r.db.Model(&Quiz{}).
		Where("id = ?", id).
		Update("current_question_index", index).Error
}

func (r *repository) FinishQuiz(id uuid.UUID, index int, endTime time.Time) error {
	return r.db.Model(&Quiz{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"current_question_index": index,
			"end_time":               endTime,
		}).Error
}

func (r *repository) SetScoreAndEnd(id uuid.UUID, score int, endTime time.Time) error {
	return r.db.Model(&Quiz{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"score":    score,
			"end_time": endTime,
		}).Error
}

func (r *repository) SetSummary(id uuid.UUID, summary string) error {
	return r.db.Model(&Quiz{}).
		Where("id = ?", id).
		Update("ai_summary", summary).Error
}

func (r *repository) ListSummaries() ([]QuizSummary, error) {
	summaries := make([]QuizSummary, 0)
	if err := r.db.Model(&Quiz{}).
		Select("id, user_name, topic, start_time, score, total_questions").
		Order("start_time DESC").
		Find(&summaries).Error; err != nil {
		return nil, err
	}
	return summaries, nil
}

func (r *repository) InsertQuestionRecord(rec *QuestionRecord) error {
	return r.db.Create(rec).Error
}

func (r *repository) ListQuestionRecords(quizID uuid.UUID) ([]*QuestionRecord, error) {
	var records []*QuestionRecord
	if err := r.db.
		Where("quiz_id = ?", quizID).
		Order("id ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *repository) LastCorrectness(quizID uuid.UUID, n int) ([]bool, error) {
	var flags []bool
	if err := r.db.Model(&QuestionRecord{}).
		Where("quiz_id = ?", quizID).
		Order("id DESC").
		Limit(n).
		Pluck("is_correct", &flags).Error; err != nil {
		return nil, err
	}
	return flags, nil
}
