package api

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"oceanquery/app"
	"oceanquery/internal/analysis"
	"oceanquery/internal/errors"
	"oceanquery/internal/visualize"
	"oceanquery/ports"
)

// App is the HTTP surface over the chat, data and dashboard services.
type App struct {
	router       *chi.Mux
	chat         *app.ChatService
	dashboard    *app.DashboardService
	source       ports.DataSource
	engine       *analysis.Engine
	builder      *visualize.Builder
	fetchTimeout time.Duration
}

// NewApp wires the router.
func NewApp(
	chat *app.ChatService,
	dashboard *app.DashboardService,
	source ports.DataSource,
	engine *analysis.Engine,
	builder *visualize.Builder,
	fetchTimeout time.Duration,
) *App {
	a := &App{
		router:       chi.NewRouter(),
		chat:         chat,
		dashboard:    dashboard,
		source:       source,
		engine:       engine,
		builder:      builder,
		fetchTimeout: fetchTimeout,
	}

	a.setupMiddleware()
	a.setupRoutes()

	return a
}

// Router returns the configured handler.
func (a *App) Router() http.Handler {
	return a.router
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/health", a.handleHealth)

	a.router.Route("/api", func(r chi.Router) {
		r.Post("/chat", a.handleChat)

		r.Route("/data", func(r chi.Router) {
			r.Get("/floats", a.handleFloats)
			r.Get("/analysis/{type}", a.handleAnalysis)
			r.Get("/visualizations/{type}", a.handleVisualizations)
			r.Get("/export", a.handleExport)
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/", a.handleDashboard)
			r.Get("/analytics", a.handleAnalytics)
			r.Post("/save-query", a.handleSaveQuery)
			r.Get("/saved-queries", a.handleSavedQueries)
		})
	})
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	a.respondJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "oceanquery",
	})
}

func (a *App) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func (a *App) respondError(w http.ResponseWriter, status int, err error) {
	a.respondJSON(w, status, map[string]interface{}{
		"error":   true,
		"code":    errors.GetCode(err),
		"message": err.Error(),
	})
}

// statusForError maps the error taxonomy onto HTTP statuses: invalid input
// is the client's fault, a fetch failure is an upstream fault, everything
// else is internal.
func statusForError(err error) int {
	switch errors.GetCode(err) {
	case errors.CodeInvalidInput:
		return http.StatusBadRequest
	case errors.CodeFetchFailed:
		return http.StatusBadGateway
	case errors.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
