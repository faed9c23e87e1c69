package sales

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/georgemunganga/cellar-backend/internal/httpx"
)

// Handler exposes sales HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/sales", func(r chi.Router) {
		r.Get("/", h.listSales)   // GET  /sales?wine_id=
		r.Post("/", h.createSale) // POST /sales
	})
}

func (h *Handler) listSales(w http.ResponseWriter, r *http.Request) {
	sales, err := h.service.ListSales(r.Context(), r.URL.Query().Get("wine_id"))
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.Respond(w, http.StatusOK, sales)
}

func (h *Handler) createSale(w http.ResponseWriter, r *http.Request) {
	var req CreateSaleRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, r, err)
		return
	}
	sale, err := h.service.CreateSale(r.Context(), req)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.Respond(w, http.StatusCreated, sale)
}
