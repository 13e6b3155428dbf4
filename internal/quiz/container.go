package quiz

import (
	"github.com/ChaitanyaJadhav9322/AdaptiveQuizeWeb/internal/ai"
	"github.com/ChaitanyaJadhav9322/AdaptiveQuizeWeb/internal/question"
	"gorm.io/gorm"
)

type QuizContainer struct {
	Handler *Handler
	Service Service
	Repo    Repository
}

func NewQuizContainer(db *gorm.DB, provider ai.Provider) *QuizContainer {
	repo := NewRepository(db)
	generator := question.NewGenerator(provider)
	service := NewService(repo, generator, provider)
	handler := NewHandler(service)

	return &QuizContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
