package container

import (
	"context"
	"log"
	"os"

	"github.com/ChaitanyaJadhav9322/AdaptiveQuizeWeb/internal/ai"
	"github.com/ChaitanyaJadhav9322/AdaptiveQuizeWeb/internal/config"
	"github.com/ChaitanyaJadhav9322/AdaptiveQuizeWeb/internal/quiz"
	"github.com/ChaitanyaJadhav9322/AdaptiveQuizeWeb/internal/report"
)

type Container struct {
	QuizContainer   *quiz.QuizContainer
	ReportContainer *report.ReportContainer
}

func New() *Container {
	config.Init()

	ctx := context.Background()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(ctx, dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	if err := config.DB.AutoMigrate(&quiz.Quiz{}, &quiz.QuestionRecord{}); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	provider, err := ai.NewGeminiProvider(ctx)
	if err != nil {
		log.Fatalf("failed to create AI provider: %v", err)
	}

	quizContainer := quiz.NewQuizContainer(config.DB, provider)
	reportContainer := report.NewReportContainer(quizContainer.Repo)

	return &Container{
		QuizContainer:   quizContainer,
		ReportContainer: reportContainer,
	}
}
