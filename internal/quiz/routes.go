package quiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/start_quiz", h.StartQuiz)
	r.Post("/submit_and_next", h.SubmitAndNext)
	r.Post("/analyze_quiz", h.AnalyzeQuiz)
	r.Get("/get_history", h.GetHistory)
	return r
}
