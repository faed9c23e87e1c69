package report

import (
	"bytes"
	"encoding/json"

	"github.com/georgemunganga/cellar-backend/internal/model"
)

// Dataset is a consistent snapshot of everything the reports join over.
type Dataset struct {
	Wines     []model.Wine
	Inventory []model.InventoryItem
	Sales     []model.Sale
}

// LocationGroup is the stock held at one location.
type LocationGroup struct {
	Location string
	Stock    []*model.LocationStock
}

// InventoryByLocation lists locations in the order their first inventory
// record was stored. It encodes as a JSON object keyed by location.
type InventoryByLocation []LocationGroup

// Get returns the stock at location and whether the location is listed.
func (r InventoryByLocation) Get(location string) ([]*model.LocationStock, bool) {
	for _, g := range r {
		if g.Location == location {
			return g.Stock, true
		}
	}
	return nil, false
}

func (r InventoryByLocation) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, g := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(g.Location)
		if err != nil {
			return nil, err
		}
		stock := g.Stock
		if stock == nil {
			stock = []*model.LocationStock{}
		}
		val, err := json.Marshal(stock)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
