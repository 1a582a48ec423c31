package httpadapter

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"campaign-manager/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP
// serving both the server-rendered campaign page and a JSON API over the
// same CampaignUseCase. Routes are registered on a chi.Router.
type Handler struct {
	svc    port.CampaignUseCase
	logger *slog.Logger
	pages  *template.Template
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.CampaignUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger, pages: pageTemplates}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(accessLog(logger))

	r.Get("/", h.handleIndex)
	r.Post("/campaigns", h.handleCreateCampaign)
	r.Post("/campaigns/{id}/delete", h.handleDeleteCampaign)
	r.Get("/healthz", h.handleHealthz)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/campaigns", h.handleListCampaigns)
		r.Post("/campaigns", h.handleAPICreateCampaign)
		r.Delete("/campaigns/{id}", h.handleAPIDeleteCampaign)
		r.Get("/stats/overview", h.handleStatsOverview)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
