package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/georgemunganga/cellar-backend/internal/logger"
	"github.com/georgemunganga/cellar-backend/internal/modules/catalog"
	"github.com/georgemunganga/cellar-backend/internal/modules/inventory"
	"github.com/georgemunganga/cellar-backend/internal/modules/report"
	"github.com/georgemunganga/cellar-backend/internal/modules/sales"
	"github.com/georgemunganga/cellar-backend/internal/modules/system"
	"github.com/georgemunganga/cellar-backend/internal/store"
)

type routeRegistrar interface {
	RegisterRoutes(r *chi.Mux)
}

// NewRouter wires every module against st and mounts them on one router.
func NewRouter(st *store.Store, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		logger.Middleware,
		middleware.Recoverer,
		cors.Handler(cors.Options{
			AllowedOrigins:   allowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: true,
		}),
	)

	handlers := []routeRegistrar{
		system.NewHandler(),
		catalog.NewHandler(catalog.NewService(catalog.NewMemoryRepository(st))),
		inventory.NewHandler(inventory.NewService(inventory.NewMemoryRepository(st))),
		sales.NewHandler(sales.NewService(sales.NewMemoryRepository(st))),
		report.NewHandler(report.NewService(report.NewMemoryRepository(st))),
	}
	for _, h := range handlers {
		h.RegisterRoutes(r)
	}

	return r
}
