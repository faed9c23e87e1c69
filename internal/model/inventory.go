package model

import "time"

// DefaultLocation is where every new wine gets its seeded, empty stock record.
const DefaultLocation = "warehouse"

// InventoryItem is the bottle count of one wine at one location.
type InventoryItem struct {
	WineID       string    `json:"wine_id"`
	BottlesCount int       `json:"bottles_count"`
	Location     string    `json:"location"` // warehouse, bar, restaurant
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Matches reports whether the record belongs to wineID at location.
func (i InventoryItem) Matches(wineID, location string) bool {
	return i.WineID == wineID && i.Location == location
}

// NewSeedInventory builds the zero-stock warehouse record created alongside a wine.
func NewSeedInventory(wineID string, at time.Time) InventoryItem {
	return InventoryItem{
		WineID:       wineID,
		BottlesCount: 0,
		Location:     DefaultLocation,
		CreatedAt:    at,
		UpdatedAt:    at,
	}
}
