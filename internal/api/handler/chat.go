package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/amoghpatel/careerisk/internal/api/response"
	"github.com/amoghpatel/careerisk/internal/chat"
)

// Chatter defines the interface the chat handler depends on.
type Chatter interface {
	Answer(ctx context.Context, req chat.Request) (string, error)
}

// NewChatHandler returns the handler for POST /chat.
func NewChatHandler(svc Chatter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req chat.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		answer, err := svc.Answer(r.Context(), req)
		if err != nil {
			if errors.Is(err, chat.ErrNoQuestion) {
				response.Error(w, http.StatusBadRequest, "question is required")
				return
			}
			response.Error(w, http.StatusInternalServerError, "an unexpected error occurred")
			return
		}

		response.JSON(w, map[string]string{"answer": answer})
	}
}
