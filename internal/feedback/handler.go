package feedback

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/promptquest/backend/internal/models"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetFeedback handles POST /api/feedback.
func (h *Handler) GetFeedback(w http.ResponseWriter, r *http.Request) {
	var req models.FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if strings.TrimSpace(req.UserPrompt) == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "userPrompt is required"})
		return
	}

	writeJSON(w, http.StatusOK, h.service.Evaluate(r.Context(), req))
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
