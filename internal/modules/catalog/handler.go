package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/georgemunganga/cellar-backend/internal/httpx"
)

// Handler exposes catalog HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/wines", func(r chi.Router) {
		r.Get("/", h.listWines)         // GET    /wines
		r.Post("/", h.createWine)       // POST   /wines
		r.Get("/{id}", h.getWine)       // GET    /wines/{id}
		r.Put("/{id}", h.updateWine)    // PUT    /wines/{id}
		r.Delete("/{id}", h.deleteWine) // DELETE /wines/{id}
	})
}

func (h *Handler) listWines(w http.ResponseWriter, r *http.Request) {
	wines, err := h.service.ListWines(r.Context())
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.Respond(w, http.StatusOK, wines)
}

func (h *Handler) createWine(w http.ResponseWriter, r *http.Request) {
	var req CreateWineRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, r, err)
		return
	}
	wine, err := h.service.CreateWine(r.Context(), req)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.Respond(w, http.StatusCreated, wine)
}

func (h *Handler) getWine(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	wine, err := h.service.GetWine(r.Context(), id)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.Respond(w, http.StatusOK, wine)
}

func (h *Handler) updateWine(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req UpdateWineRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, r, err)
		return
	}
	wine, err := h.service.UpdateWine(r.Context(), id, req)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.Respond(w, http.StatusOK, wine)
}

func (h *Handler) deleteWine(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.service.DeleteWine(r.Context(), id); err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.Respond(w, http.StatusOK, DeleteResponse{Message: "Wine deleted successfully"})
}
