package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"oceanquery/internal/errors"
)

// chatRequest is the inbound chat payload.
type chatRequest struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

// handleChat runs the full query pipeline for one chat message.
func (a *App) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.respondError(w, http.StatusBadRequest, errors.InvalidInput("request body must be valid JSON"))
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		a.respondError(w, http.StatusBadRequest, errors.InvalidInput("message must not be empty"))
		return
	}

	resp, err := a.chat.HandleQuery(r.Context(), req.Message, req.UserID)
	if err != nil {
		a.respondError(w, statusForError(err), err)
		return
	}

	a.respondJSON(w, http.StatusOK, resp)
}
