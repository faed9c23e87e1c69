package report

import "context"

// Repository defines read access for reporting.
type Repository interface {
	// Load returns wines, inventory and sales read under one lock.
	Load(ctx context.Context) (*Dataset, error)
}
