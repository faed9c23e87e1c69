package inventory

import "github.com/georgemunganga/cellar-backend/internal/model"

// UpdateInventoryRequest sets the absolute bottle count of a wine.
// Location comes from the ?location= query parameter; empty means the
// wine's first record in store order.
type UpdateInventoryRequest struct {
	BottlesCount *int   `json:"bottles_count"`
	Location     string `json:"-"`
}

func (r UpdateInventoryRequest) Validate() error {
	if r.BottlesCount == nil {
		return model.Validationf("missing required fields: bottles_count")
	}
	return nil
}
