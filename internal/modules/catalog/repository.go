package catalog

import (
	"context"

	"github.com/georgemunganga/cellar-backend/internal/model"
)

// Repository defines the interface for wine catalog storage.
type Repository interface {
	// CreateWine stores a wine together with its seeded inventory record atomically.
	CreateWine(ctx context.Context, w *model.Wine, seed *model.InventoryItem) error
	GetWineByID(ctx context.Context, id string) (*model.Wine, error)
	ListWines(ctx context.Context) ([]*model.Wine, error)
	// UpdateWine applies mutate to the stored wine under an exclusive lock.
	UpdateWine(ctx context.Context, id string, mutate func(w *model.Wine)) (*model.Wine, error)
	// DeleteWine removes the wine and every inventory and sale record that references it.
	DeleteWine(ctx context.Context, id string) (model.CascadeResult, error)
}
