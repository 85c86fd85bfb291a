package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"oceanquery/internal/errors"
)

// handleDashboard serves the dashboard overview.
func (a *App) handleDashboard(w http.ResponseWriter, r *http.Request) {
	a.respondJSON(w, http.StatusOK, a.dashboard.Overview(r.Context()))
}

// handleAnalytics serves the intent distribution over the query log.
func (a *App) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	counts, err := a.dashboard.Analytics(r.Context())
	if err != nil {
		a.respondError(w, statusForError(err), err)
		return
	}
	a.respondJSON(w, http.StatusOK, map[string]interface{}{
		"intent_distribution": counts,
	})
}

// saveQueryRequest is the inbound bookmark payload.
type saveQueryRequest struct {
	UserID string `json:"user_id"`
	Query  string `json:"query"`
}

// handleSaveQuery bookmarks a query for later reference.
func (a *App) handleSaveQuery(w http.ResponseWriter, r *http.Request) {
	var req saveQueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.respondError(w, http.StatusBadRequest, errors.InvalidInput("request body must be valid JSON"))
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		a.respondError(w, http.StatusBadRequest, errors.InvalidInput("query must not be empty"))
		return
	}

	saved, err := a.dashboard.SaveQuery(r.Context(), req.UserID, req.Query)
	if err != nil {
		a.respondError(w, statusForError(err), err)
		return
	}

	a.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"id":      saved.ID,
		"message": "Query saved successfully",
	})
}

// handleSavedQueries lists a user's bookmarks.
func (a *App) handleSavedQueries(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")

	saved, err := a.dashboard.SavedQueries(r.Context(), userID)
	if err != nil {
		a.respondError(w, statusForError(err), err)
		return
	}

	a.respondJSON(w, http.StatusOK, map[string]interface{}{
		"queries": saved,
	})
}
