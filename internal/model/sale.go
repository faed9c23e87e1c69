package model

import "time"

// ProductType is the unit a sale is made in.
type ProductType string

const (
	ProductBottle ProductType = "bottle"
	ProductGlass  ProductType = "glass"
)

func (p ProductType) Valid() bool {
	return p == ProductBottle || p == ProductGlass
}

// Sale is an append-only record of one transaction. UnitPrice is captured
// from the wine at sale time and never re-derived.
type Sale struct {
	ID           string      `json:"id"`
	WineID       string      `json:"wine_id"`
	ProductType  ProductType `json:"product_type"`
	Quantity     int         `json:"quantity"`
	UnitPrice    float64     `json:"unit_price"`
	TotalAmount  float64     `json:"total_amount"`
	Location     string      `json:"location"`
	SaleDate     time.Time   `json:"sale_date"`
	CustomerName *string     `json:"customer_name"`
}
