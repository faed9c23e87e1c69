package model

import "time"

// WineType classifies a wine in the catalog.
type WineType string

const (
	WineStill     WineType = "still"
	WineSparkling WineType = "sparkling"
	WineRose      WineType = "rose"
	WineDessert   WineType = "dessert"
)

// Valid reports whether t is one of the known wine types.
func (t WineType) Valid() bool {
	switch t {
	case WineStill, WineSparkling, WineRose, WineDessert:
		return true
	}
	return false
}

// Wine is a sellable catalog entry. Bottle and glass sales share one record.
type Wine struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Producer         string    `json:"producer"`
	Country          string    `json:"country"`
	Region           string    `json:"region"`
	VintageYear      int       `json:"vintage_year"`
	BottleSizeML     int       `json:"bottle_size_ml"`
	GlassesPerBottle int       `json:"glasses_per_bottle"`
	WineType         WineType  `json:"wine_type"`
	AlcoholContent   float64   `json:"alcohol_content"`
	Description      *string   `json:"description"`
	PriceBottle      float64   `json:"price_bottle"`
	PriceGlass       float64   `json:"price_glass"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// UnitPrice returns the current price of one unit of the given product type.
func (w Wine) UnitPrice(pt ProductType) float64 {
	if pt == ProductBottle {
		return w.PriceBottle
	}
	return w.PriceGlass
}
