package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/georgemunganga/cellar-backend/internal/logger"
	"github.com/georgemunganga/cellar-backend/internal/model"
)

// Service defines inventory business logic. The only mutation path besides
// sales is an explicit absolute update of a bottle count.
type Service interface {
	// ListInventory returns every record, or only those at location when it is set.
	ListInventory(ctx context.Context, location string) ([]*model.InventoryItem, error)
	// GetInventory returns the wine's record at location, or its first record
	// in store order when location is empty.
	GetInventory(ctx context.Context, wineID, location string) (*model.InventoryItem, error)
	// UpdateInventory replaces the bottle count (not a delta). With a location
	// it may introduce a new record for an existing wine.
	UpdateInventory(ctx context.Context, wineID string, req UpdateInventoryRequest) (*model.InventoryItem, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new inventory service.
func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) ListInventory(ctx context.Context, location string) ([]*model.InventoryItem, error) {
	const op = "inventory.service.ListInventory"

	items, err := s.repo.ListInventory(ctx, strings.TrimSpace(location))
	if err != nil {
		logger.Error(ctx, "repository list inventory", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

func (s *service) GetInventory(ctx context.Context, wineID, location string) (*model.InventoryItem, error) {
	const op = "inventory.service.GetInventory"
	location = strings.TrimSpace(location)
	log := logger.With(
		logger.String("wine_id", wineID),
		logger.String("location", location),
	)

	item, err := s.repo.GetInventory(ctx, wineID, location)
	if err != nil {
		if errors.Is(err, model.ErrInventoryNotFound) {
			log.Warn(ctx, "inventory item not found")
		} else {
			log.Error(ctx, "repository get inventory", logger.ErrorF(err))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return item, nil
}

func (s *service) UpdateInventory(ctx context.Context, wineID string, req UpdateInventoryRequest) (*model.InventoryItem, error) {
	const op = "inventory.service.UpdateInventory"
	location := strings.TrimSpace(req.Location)
	log := logger.With(
		logger.String("wine_id", wineID),
		logger.String("location", location),
	)

	if err := req.Validate(); err != nil {
		log.Warn(ctx, "validation: update inventory", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var (
		item *model.InventoryItem
		err  error
	)
	if location == "" {
		item, err = s.repo.SetBottles(ctx, wineID, "", *req.BottlesCount, s.now())
	} else {
		item, err = s.repo.PutBottles(ctx, wineID, location, *req.BottlesCount, s.now())
	}
	if err != nil {
		if errors.Is(err, model.ErrInventoryNotFound) || errors.Is(err, model.ErrWineNotFound) {
			log.Warn(ctx, "inventory update target not found", logger.ErrorF(err))
		} else {
			log.Error(ctx, "repository update inventory", logger.ErrorF(err))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info(ctx, "inventory updated",
		logger.String("record_location", item.Location),
		logger.Int("bottles_count", item.BottlesCount),
	)
	return item, nil
}
