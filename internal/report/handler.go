package report

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/ChaitanyaJadhav9322/AdaptiveQuizeWeb/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type Handler struct {
	compiler *Compiler
}

func NewHandler(c *Compiler) *Handler {
	return &Handler{compiler: c}
}

// DownloadReport godoc
// @Summary Download the PDF report for a finished quiz
// @Produce application/pdf
// @Router /download_report/{quizID} [get]
func (h *Handler) DownloadReport(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	idStr := chi.URLParam(r, "quizID")
	id, err := uuid.Parse(idStr)
	if err != nil {
		http.Error(w, "report or quiz not found", http.StatusNotFound)
		return
	}

	model, err := h.compiler.Compile(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrReportNotFound) {
			http.Error(w, "report or quiz not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to compile report")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := RenderPDF(model, &buf); err != nil {
		log.WithError(err).Error("Failed to render report PDF")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=quiz_report_%s.pdf", idStr))
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.WithError(err).Error("Failed to write report PDF")
	}
}
