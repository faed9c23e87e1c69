package sales

import (
	"context"

	"github.com/samber/lo"

	"github.com/georgemunganga/cellar-backend/internal/model"
	"github.com/georgemunganga/cellar-backend/internal/store"
)

type memoryRepo struct{ store *store.Store }

func NewMemoryRepository(s *store.Store) Repository { return &memoryRepo{store: s} }

func (r *memoryRepo) ListSales(ctx context.Context, wineID string) ([]*model.Sale, error) {
	var out []*model.Sale
	err := r.store.View(ctx, func(tx *store.ReadTx) error {
		sales := tx.Sales()
		if wineID != "" {
			sales = lo.Filter(sales, func(s model.Sale, _ int) bool { return s.WineID == wineID })
		}
		out = lo.ToSlicePtr(sales)
		return nil
	})
	return out, err
}

func (r *memoryRepo) WithinTx(ctx context.Context, fn func(tx Tx) error) error {
	return r.store.Update(ctx, func(tx *store.Tx) error {
		return fn(tx)
	})
}
