package quests

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/promptquest/backend/internal/models"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) ListQuests(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"quests": Catalog})
}

func (h *Handler) GetDailyQuest(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Daily(time.Now().UTC()))
}

func (h *Handler) GetQuest(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	quest, ok := Resolve(id, time.Now().UTC())
	if !ok {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Quest not found"})
		return
	}
	writeJSON(w, http.StatusOK, quest)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
