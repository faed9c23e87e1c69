package system

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/georgemunganga/cellar-backend/internal/httpx"
	"github.com/georgemunganga/cellar-backend/internal/logger"
)

const welcomeMessage = "Wine Admin Panel API"

// Handler serves the service banner and liveness probe.
type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Get("/", h.root)         // GET /
	r.Get("/health", h.health) // GET /health
}

func (h *Handler) root(w http.ResponseWriter, _ *http.Request) {
	httpx.Respond(w, http.StatusOK, map[string]string{"message": welcomeMessage})
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if _, err := w.Write([]byte("SERVING")); err != nil {
		logger.Error(r.Context(), "health check", logger.ErrorF(err))
	}
}
