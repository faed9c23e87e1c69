package report

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/georgemunganga/cellar-backend/internal/httpx"
)

// Handler exposes reporting HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/reports", func(r chi.Router) {
		r.Get("/sales-by-vintage", h.salesByVintage)           // GET /reports/sales-by-vintage
		r.Get("/inventory-by-location", h.inventoryByLocation) // GET /reports/inventory-by-location
	})
}

func (h *Handler) salesByVintage(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.SalesByVintage(r.Context())
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.Respond(w, http.StatusOK, rows)
}

func (h *Handler) inventoryByLocation(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.InventoryByLocation(r.Context())
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.Respond(w, http.StatusOK, rows)
}
