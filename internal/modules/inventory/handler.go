package inventory

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/georgemunganga/cellar-backend/internal/httpx"
)

// Handler exposes inventory HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/inventory", func(r chi.Router) {
		r.Get("/", h.listInventory)           // GET /inventory?location=
		r.Get("/{wineId}", h.getInventory)    // GET /inventory/{wineId}?location=
		r.Put("/{wineId}", h.updateInventory) // PUT /inventory/{wineId}?location=
	})
}

func (h *Handler) listInventory(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListInventory(r.Context(), r.URL.Query().Get("location"))
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.Respond(w, http.StatusOK, items)
}

func (h *Handler) getInventory(w http.ResponseWriter, r *http.Request) {
	wineID := chi.URLParam(r, "wineId")
	item, err := h.service.GetInventory(r.Context(), wineID, r.URL.Query().Get("location"))
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.Respond(w, http.StatusOK, item)
}

func (h *Handler) updateInventory(w http.ResponseWriter, r *http.Request) {
	wineID := chi.URLParam(r, "wineId")
	var req UpdateInventoryRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, r, err)
		return
	}
	req.Location = r.URL.Query().Get("location")

	item, err := h.service.UpdateInventory(r.Context(), wineID, req)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.Respond(w, http.StatusOK, item)
}
