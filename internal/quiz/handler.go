package quiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ChaitanyaJadhav9322/AdaptiveQuizeWeb/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// StartQuiz godoc
// @Summary Start a new adaptive quiz
// @Accept json
// @Produce json
// @Router /start_quiz [post]
func (h *Handler) StartQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req StartQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Invalid request body for start_quiz")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Start(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrMissingFields) {
			http.Error(w, "username and topic are required", http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("Failed to start quiz")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

// SubmitAndNext godoc
// @Summary Submit an answer and fetch the next question
// @Accept json
// @Produce json
// @Router /submit_and_next [post]
func (h *Handler) SubmitAndNext(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Invalid request body for submit_and_next")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.SubmitAndAdvance(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrMissingFields) {
			http.Error(w, "missing required fields", http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("Failed to submit answer")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

// AnalyzeQuiz godoc
// @Summary Score a finished quiz and produce an AI performance summary
// @Accept json
// @Produce json
// @Router /analyze_quiz [post]
func (h *Handler) AnalyzeQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req struct {
		QuizID string `json:"quiz_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Invalid request body for analyze_quiz")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	analysis, err := h.service.Analyze(r.Context(), req.QuizID)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			http.Error(w, "quiz id required", http.StatusBadRequest)
		case errors.Is(err, ErrQuizNotFound):
			http.Error(w, "quiz not found", http.StatusNotFound)
		default:
			log.WithError(err).Error("Failed to analyze quiz")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, map[string]*Analysis{"analysis": analysis})
}

// GetHistory godoc
// @Summary List past quizzes, newest first
// @Produce json
// @Router /get_history [get]
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	summaries, err := h.service.History(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to load quiz history")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, summaries)
}
