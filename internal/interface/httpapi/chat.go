package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"airport-ops-service/internal/domain/entity"
)

func (s *Server) handleChatMessage(w http.ResponseWriter, r *http.Request) {
	body, err := readValidated(r, chatMessageLoader)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var msg entity.ChatMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	resp, err := s.chat.SendMessage(r.Context(), msg)
	if err != nil {
		s.writeServiceError(w, r, "chat message", err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleChatHistory(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 100)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	logs, err := s.chat.History(r.Context(), chi.URLParam(r, "sessionID"), limit)
	if err != nil {
		s.writeServiceError(w, r, "chat history", err)
		return
	}

	history := make([]chatHistoryEntry, 0, len(logs))
	for _, l := range logs {
		history = append(history, chatHistoryEntry{
			Message:    l.Message,
			Response:   l.Response,
			Source:     l.Source,
			Confidence: l.Confidence,
			CreatedAt:  l.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, history)
}

type chatHistoryEntry struct {
	Message    string    `json:"message"`
	Response   string    `json:"response"`
	Source     string    `json:"source"`
	Confidence float64   `json:"confidence"`
	CreatedAt  time.Time `json:"created_at"`
}
