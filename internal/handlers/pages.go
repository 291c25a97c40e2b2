package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/jjanuszczak/Genetic-Insights/internal/components"
	"github.com/jjanuszczak/Genetic-Insights/internal/registration"
	"github.com/jjanuszczak/Genetic-Insights/internal/version"
	"github.com/jjanuszczak/Genetic-Insights/pkg/apperror"
	"github.com/jjanuszczak/Genetic-Insights/pkg/logger"
)

// Handler serves the landing page, the registration endpoint, and health.
type Handler struct {
	svc     *registration.Service
	log     *slog.Logger
	now     func() time.Time
	startAt time.Time
}

// NewHandler creates the site handler
func NewHandler(svc *registration.Service, log *slog.Logger) *Handler {
	return &Handler{
		svc:     svc,
		log:     log.With(logger.Scope("handlers")),
		now:     time.Now,
		startAt: time.Now(),
	}
}

func (h *Handler) LandingPage(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, http.StatusOK, components.FormState{})
}

func (h *Handler) renderPage(w http.ResponseWriter, status int, state components.FormState) {
	page := components.LandingPage(state, h.now().Year())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := page.Render(w); err != nil {
		h.log.Error("render landing page", logger.Error(err))
	}
}

// NotFound answers unknown routes, with the JSON envelope when asked for it.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	if WantsJSON(r) {
		apperror.WriteJSON(w, r, h.log, apperror.ErrNotFound)
		return
	}
	http.NotFound(w, r)
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Uptime    string `json:"uptime"`
	Version   string `json:"version"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: h.now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.startAt).Round(time.Second).String(),
		Version:   version.Version,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
