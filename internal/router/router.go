package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/ChaitanyaJadhav9322/AdaptiveQuizeWeb/internal/middlewares"
	"github.com/ChaitanyaJadhav9322/AdaptiveQuizeWeb/internal/quiz"
	"github.com/ChaitanyaJadhav9322/AdaptiveQuizeWeb/internal/report"
)

type RouterConfig struct {
	QuizHandler   *quiz.Handler
	ReportHandler *report.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Get("/download_report/{quizID}", cfg.ReportHandler.DownloadReport)
	r.Mount("/", quiz.Routes(cfg.QuizHandler))

	return r
}
