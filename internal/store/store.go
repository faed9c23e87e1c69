// Package store owns the in-memory wine, inventory and sales collections.
//
// All collections are plain slices scanned linearly in insertion order. A
// single RWMutex guards them: View callbacks run under the read lock and
// Update callbacks under the write lock, so a compound mutation such as a
// sale's check-then-decrement is never interleaved with another writer.
// Update callbacks must validate before they mutate; there is no rollback.
package store

import (
	"context"
	"sync"

	"github.com/samber/lo"

	"github.com/georgemunganga/cellar-backend/internal/model"
)

type state struct {
	wines     []model.Wine
	inventory []model.InventoryItem
	sales     []model.Sale
}

// Store is constructed once at process start and shared by every repository.
type Store struct {
	mu    sync.RWMutex
	state state
}

func New() *Store {
	return &Store{
		state: state{
			wines:     []model.Wine{},
			inventory: []model.InventoryItem{},
			sales:     []model.Sale{},
		},
	}
}

// View runs fn with shared read access.
func (s *Store) View(ctx context.Context, fn func(tx *ReadTx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&ReadTx{st: &s.state})
}

// Update runs fn with exclusive access.
func (s *Store) Update(ctx context.Context, fn func(tx *Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&Tx{ReadTx: ReadTx{st: &s.state}})
}

// ReadTx exposes read-only lookups. Every returned value is a copy.
type ReadTx struct {
	st *state
}

func (tx *ReadTx) Wines() []model.Wine {
	return append(make([]model.Wine, 0, len(tx.st.wines)), tx.st.wines...)
}

func (tx *ReadTx) Wine(id string) (model.Wine, bool) {
	return lo.Find(tx.st.wines, func(w model.Wine) bool { return w.ID == id })
}

func (tx *ReadTx) Inventory() []model.InventoryItem {
	return append(make([]model.InventoryItem, 0, len(tx.st.inventory)), tx.st.inventory...)
}

// FirstInventory returns the first record for wineID in store order,
// whatever its location.
func (tx *ReadTx) FirstInventory(wineID string) (model.InventoryItem, bool) {
	return lo.Find(tx.st.inventory, func(i model.InventoryItem) bool { return i.WineID == wineID })
}

func (tx *ReadTx) InventoryAt(wineID, location string) (model.InventoryItem, bool) {
	return lo.Find(tx.st.inventory, func(i model.InventoryItem) bool { return i.Matches(wineID, location) })
}

func (tx *ReadTx) Sales() []model.Sale {
	return append(make([]model.Sale, 0, len(tx.st.sales)), tx.st.sales...)
}

// Tx adds mutations to ReadTx. Only valid inside Store.Update.
type Tx struct {
	ReadTx
}

func (tx *Tx) InsertWine(w model.Wine) {
	tx.st.wines = append(tx.st.wines, w)
}

// SaveWine replaces the wine with the same ID. It reports false when absent.
func (tx *Tx) SaveWine(w model.Wine) bool {
	_, idx, ok := lo.FindIndexOf(tx.st.wines, func(cur model.Wine) bool { return cur.ID == w.ID })
	if !ok {
		return false
	}
	tx.st.wines[idx] = w
	return true
}

// RemoveWine deletes the wine and every inventory and sale record that
// references it. Removing an unknown id is a no-op.
func (tx *Tx) RemoveWine(id string) model.CascadeResult {
	var res model.CascadeResult

	wines := lo.Reject(tx.st.wines, func(w model.Wine, _ int) bool { return w.ID == id })
	res.Wines = len(tx.st.wines) - len(wines)
	tx.st.wines = wines

	inventory := lo.Reject(tx.st.inventory, func(i model.InventoryItem, _ int) bool { return i.WineID == id })
	res.InventoryItems = len(tx.st.inventory) - len(inventory)
	tx.st.inventory = inventory

	sales := lo.Reject(tx.st.sales, func(s model.Sale, _ int) bool { return s.WineID == id })
	res.Sales = len(tx.st.sales) - len(sales)
	tx.st.sales = sales

	return res
}

func (tx *Tx) InsertInventory(item model.InventoryItem) {
	tx.st.inventory = append(tx.st.inventory, item)
}

// SaveInventory replaces the record keyed by (WineID, Location). It reports
// false when no such record exists.
func (tx *Tx) SaveInventory(item model.InventoryItem) bool {
	_, idx, ok := lo.FindIndexOf(tx.st.inventory, func(cur model.InventoryItem) bool {
		return cur.Matches(item.WineID, item.Location)
	})
	if !ok {
		return false
	}
	tx.st.inventory[idx] = item
	return true
}

func (tx *Tx) AppendSale(s model.Sale) {
	tx.st.sales = append(tx.st.sales, s)
}
