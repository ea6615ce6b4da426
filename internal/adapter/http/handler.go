package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"adcustody/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// Write endpoints translate requests into program instructions and submit
// them through CampaignUseCase.Execute, so HTTP clients go through the same
// account and signer checks as raw instructions.
//
// Signer flags are taken from the request as declared: a client naming any
// funder, advertiser or closer is treated as holding its key. Serve the API
// only behind a host that authenticates callers and verifies signatures.
type Handler struct {
	svc    port.CampaignUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.CampaignUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/campaigns", h.handleInitializeCampaign)
		r.Route("/campaigns/{id}", func(r chi.Router) {
			r.Get("/", h.handleGetCampaign)
			r.Patch("/", h.handleUpdateCampaign)
			r.Delete("/", h.handleCloseCampaign)
			r.Delete("/vault", h.handleCloseVault)
			r.Post("/payouts", h.handlePayPublisher)
			r.Post("/commission", h.handlePayCommission)
			r.Get("/stats", h.handleStats)
		})
		r.Get("/accounts/{address}", h.handleGetAccount)
		r.Post("/instructions", h.handleInstruction)
	})
	r.Handle("/metrics", promhttp.Handler())
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
