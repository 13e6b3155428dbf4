package quiz

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Quiz is one user's adaptive session. The ID doubles as the session token:
// anyone who knows it can act on the quiz.
type Quiz struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserName             string     `gorm:"type:text;not null" json:"user_name"`
	Topic                string     `gorm:"type:text;not null" json:"topic"`
	TotalQuestions       int        `gorm:"not null;default:0" json:"total_questions"`
	StartTime            time.Time  `gorm:"not null" json:"start_time"`
	EndTime              *time.Time `json:"end_time,omitempty"`
	Score                *int       `json:"score,omitempty"`
	CurrentQuestionIndex int        `gorm:"not null;default:0" json:"current_question_index"`
	AISummary            *string    `gorm:"type:text" json:"ai_summary,omitempty"`

	Questions []QuestionRecord `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

// QuestionRecord is one answered question. Written once at submission time and
// immutable afterwards.
type QuestionRecord struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	QuizID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"quiz_id"`
	QuestionText  string         `gorm:"type:text;not null" json:"question_text"`
	Options       datatypes.JSON `gorm:"type:jsonb;not null" json:"options"`
	UserAnswer    string         `gorm:"type:text" json:"user_answer"`
	CorrectAnswer string         `gorm:"type:text" json:"correct_answer"`
	IsCorrect     bool           `json:"is_correct"`
	Difficulty    string         `gorm:"type:text" json:"difficulty"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
}
