package inventory

import (
	"context"
	"time"

	"github.com/samber/lo"

	"github.com/georgemunganga/cellar-backend/internal/model"
	"github.com/georgemunganga/cellar-backend/internal/store"
)

type memoryRepo struct{ store *store.Store }

func NewMemoryRepository(s *store.Store) Repository { return &memoryRepo{store: s} }

func (r *memoryRepo) ListInventory(ctx context.Context, location string) ([]*model.InventoryItem, error) {
	var out []*model.InventoryItem
	err := r.store.View(ctx, func(tx *store.ReadTx) error {
		items := tx.Inventory()
		if location != "" {
			items = lo.Filter(items, func(i model.InventoryItem, _ int) bool { return i.Location == location })
		}
		out = lo.ToSlicePtr(items)
		return nil
	})
	return out, err
}

func (r *memoryRepo) GetInventory(ctx context.Context, wineID, location string) (*model.InventoryItem, error) {
	var out *model.InventoryItem
	err := r.store.View(ctx, func(tx *store.ReadTx) error {
		item, ok := lookup(tx, wineID, location)
		if !ok {
			return model.ErrInventoryNotFound
		}
		out = &item
		return nil
	})
	return out, err
}

func (r *memoryRepo) SetBottles(ctx context.Context, wineID, location string, count int, at time.Time) (*model.InventoryItem, error) {
	var out *model.InventoryItem
	err := r.store.Update(ctx, func(tx *store.Tx) error {
		item, ok := lookup(&tx.ReadTx, wineID, location)
		if !ok {
			return model.ErrInventoryNotFound
		}
		item.BottlesCount = count
		item.UpdatedAt = at
		tx.SaveInventory(item)
		out = &item
		return nil
	})
	return out, err
}

func (r *memoryRepo) PutBottles(ctx context.Context, wineID, location string, count int, at time.Time) (*model.InventoryItem, error) {
	var out *model.InventoryItem
	err := r.store.Update(ctx, func(tx *store.Tx) error {
		item, ok := tx.InventoryAt(wineID, location)
		if ok {
			item.BottlesCount = count
			item.UpdatedAt = at
			tx.SaveInventory(item)
			out = &item
			return nil
		}

		if _, ok := tx.Wine(wineID); !ok {
			return model.ErrWineNotFound
		}
		item = model.InventoryItem{
			WineID:       wineID,
			BottlesCount: count,
			Location:     location,
			CreatedAt:    at,
			UpdatedAt:    at,
		}
		tx.InsertInventory(item)
		out = &item
		return nil
	})
	return out, err
}

func lookup(tx *store.ReadTx, wineID, location string) (model.InventoryItem, bool) {
	if location == "" {
		return tx.FirstInventory(wineID)
	}
	return tx.InventoryAt(wineID, location)
}
