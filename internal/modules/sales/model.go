package sales

import (
	"strings"

	"github.com/georgemunganga/cellar-backend/internal/model"
)

// CreateSaleRequest is the payload for recording a sale at the counter.
type CreateSaleRequest struct {
	WineID       *string            `json:"wine_id"`
	ProductType  *model.ProductType `json:"product_type"`
	Quantity     *int               `json:"quantity"`
	Location     *string            `json:"location"`
	CustomerName *string            `json:"customer_name,omitempty"`
}

func (r CreateSaleRequest) Validate() error {
	var missing []string
	if r.WineID == nil {
		missing = append(missing, "wine_id")
	}
	if r.ProductType == nil {
		missing = append(missing, "product_type")
	}
	if r.Quantity == nil {
		missing = append(missing, "quantity")
	}
	if r.Location == nil {
		missing = append(missing, "location")
	}
	if len(missing) > 0 {
		return model.Validationf("missing required fields: %s", strings.Join(missing, ", "))
	}

	if !r.ProductType.Valid() {
		return model.Validationf("invalid product_type %q (allowed: bottle, glass)", *r.ProductType)
	}
	if *r.Quantity < 1 {
		return model.Validationf("quantity must be at least 1")
	}
	return nil
}
