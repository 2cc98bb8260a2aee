package player

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/promptquest/backend/internal/models"
)

// maxSnapshotBytes bounds the PUT progress body. Snapshots are small;
// anything near this size is not a legitimate client.
const maxSnapshotBytes = 1 << 20

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetProgress handles GET /api/players/{key}/progress.
func (h *Handler) GetProgress(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	progress, err := h.service.GetProgress(r.Context(), key)
	if err != nil {
		log.Printf("[player] get progress: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load progress"})
		return
	}
	writeJSON(w, http.StatusOK, progress)
}

// PutProgress handles PUT /api/players/{key}/progress. The body is a
// full snapshot; invalid fields are replaced with defaults rather than
// rejected.
func (h *Handler) PutProgress(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxSnapshotBytes))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	progress, err := h.service.SaveProgress(r.Context(), key, raw)
	if err != nil {
		log.Printf("[player] save progress: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to save progress"})
		return
	}
	writeJSON(w, http.StatusOK, progress)
}

// SubmitQuest handles POST /api/players/{key}/submissions.
func (h *Handler) SubmitQuest(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	var req models.SubmitQuestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "prompt is required"})
		return
	}

	resp, err := h.service.SubmitQuest(r.Context(), key, req)
	if err != nil {
		if errors.Is(err, ErrQuestNotFound) {
			writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Quest not found"})
			return
		}
		log.Printf("[player] submit quest: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to submit quest"})
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// ListSubmissions handles GET /api/players/{key}/submissions.
func (h *Handler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}

	subs, err := h.service.ListSubmissions(r.Context(), key, limit)
	if err != nil {
		log.Printf("[player] list submissions: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load submissions"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"submissions": subs})
}

// GetLeaderboard handles GET /api/leaderboard?player=key.
func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("player")
	board, err := h.service.Leaderboard(r.Context(), key)
	if err != nil {
		log.Printf("[player] leaderboard: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load leaderboard"})
		return
	}
	writeJSON(w, http.StatusOK, board)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
