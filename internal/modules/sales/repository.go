package sales

import (
	"context"

	"github.com/georgemunganga/cellar-backend/internal/model"
)

// Tx is the view of the store a sale needs while holding exclusive access.
type Tx interface {
	Wine(id string) (model.Wine, bool)
	InventoryAt(wineID, location string) (model.InventoryItem, bool)
	SaveInventory(item model.InventoryItem) bool
	AppendSale(s model.Sale)
}

// Repository defines data access for sales.
type Repository interface {
	// ListSales returns all sales in recording order, only those of wineID when set.
	ListSales(ctx context.Context, wineID string) ([]*model.Sale, error)
	// WithinTx runs fn with exclusive access to wines, inventory and sales,
	// so the stock check and the decrement cannot interleave with another sale.
	WithinTx(ctx context.Context, fn func(tx Tx) error) error
}
