package report

import (
	"context"

	"github.com/georgemunganga/cellar-backend/internal/store"
)

type memoryRepo struct{ store *store.Store }

func NewMemoryRepository(s *store.Store) Repository { return &memoryRepo{store: s} }

func (r *memoryRepo) Load(ctx context.Context) (*Dataset, error) {
	var ds Dataset
	err := r.store.View(ctx, func(tx *store.ReadTx) error {
		ds = Dataset{
			Wines:     tx.Wines(),
			Inventory: tx.Inventory(),
			Sales:     tx.Sales(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ds, nil
}
