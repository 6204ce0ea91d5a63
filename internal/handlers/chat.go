package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"campusbuddy-backend/internal/models"
	"campusbuddy-backend/internal/services"
)

type generator interface {
	Chat(ctx context.Context, message string, history []models.ChatMessage) (string, error)
}

type ChatHandler struct {
	gemini generator
}

func NewChatHandler(gemini generator) *ChatHandler {
	return &ChatHandler{gemini: gemini}
}

func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Message is required"})
		return
	}

	reply, err := h.gemini.Chat(r.Context(), req.Message, req.ConversationHistory)
	if err != nil {
		if errors.Is(err, services.ErrEmptyMessage) {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Message is required"})
			return
		}
		log.Printf("chat relay failed (request %s): %v", r.Header.Get("X-Request-ID"), err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Internal server error",
			Details: err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, models.ChatResponse{Response: reply})
}

// Shared helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
