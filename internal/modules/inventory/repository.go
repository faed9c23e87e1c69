package inventory

import (
	"context"
	"time"

	"github.com/georgemunganga/cellar-backend/internal/model"
)

// Repository defines inventory record storage. An empty location selects
// the first record of the wine in store order.
type Repository interface {
	ListInventory(ctx context.Context, location string) ([]*model.InventoryItem, error)
	GetInventory(ctx context.Context, wineID, location string) (*model.InventoryItem, error)
	// SetBottles overwrites the bottle count of an existing record.
	SetBottles(ctx context.Context, wineID, location string, count int, at time.Time) (*model.InventoryItem, error)
	// PutBottles is SetBottles at an explicit location, creating the record
	// when the wine exists but has no stock there yet.
	PutBottles(ctx context.Context, wineID, location string, count int, at time.Time) (*model.InventoryItem, error)
}
