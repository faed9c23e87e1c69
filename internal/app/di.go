package app

import (
	"context"

	"github.com/go-chi/chi/v5"

	"github.com/georgemunganga/cellar-backend/internal/config"
	"github.com/georgemunganga/cellar-backend/internal/store"
)

type di struct {
	store  *store.Store
	router *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) Store(_ context.Context) *store.Store {
	if d.store == nil {
		d.store = store.New()
	}

	return d.store
}

func (d *di) Router(ctx context.Context) *chi.Mux {
	if d.router == nil {
		d.router = NewRouter(d.Store(ctx), config.C().CORS.AllowedOrigins())
	}

	return d.router
}
