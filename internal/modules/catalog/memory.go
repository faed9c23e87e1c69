package catalog

import (
	"context"

	"github.com/samber/lo"

	"github.com/georgemunganga/cellar-backend/internal/model"
	"github.com/georgemunganga/cellar-backend/internal/store"
)

type memoryRepo struct{ store *store.Store }

func NewMemoryRepository(s *store.Store) Repository { return &memoryRepo{store: s} }

func (r *memoryRepo) CreateWine(ctx context.Context, w *model.Wine, seed *model.InventoryItem) error {
	return r.store.Update(ctx, func(tx *store.Tx) error {
		tx.InsertWine(*w)
		tx.InsertInventory(*seed)
		return nil
	})
}

func (r *memoryRepo) GetWineByID(ctx context.Context, id string) (*model.Wine, error) {
	var out *model.Wine
	err := r.store.View(ctx, func(tx *store.ReadTx) error {
		w, ok := tx.Wine(id)
		if !ok {
			return model.ErrWineNotFound
		}
		out = &w
		return nil
	})
	return out, err
}

func (r *memoryRepo) ListWines(ctx context.Context) ([]*model.Wine, error) {
	var out []*model.Wine
	err := r.store.View(ctx, func(tx *store.ReadTx) error {
		out = lo.ToSlicePtr(tx.Wines())
		return nil
	})
	return out, err
}

func (r *memoryRepo) UpdateWine(ctx context.Context, id string, mutate func(w *model.Wine)) (*model.Wine, error) {
	var out *model.Wine
	err := r.store.Update(ctx, func(tx *store.Tx) error {
		w, ok := tx.Wine(id)
		if !ok {
			return model.ErrWineNotFound
		}
		mutate(&w)
		w.ID = id
		tx.SaveWine(w)
		out = &w
		return nil
	})
	return out, err
}

func (r *memoryRepo) DeleteWine(ctx context.Context, id string) (model.CascadeResult, error) {
	var res model.CascadeResult
	err := r.store.Update(ctx, func(tx *store.Tx) error {
		res = tx.RemoveWine(id)
		return nil
	})
	return res, err
}
