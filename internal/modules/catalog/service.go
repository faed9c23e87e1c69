package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/georgemunganga/cellar-backend/internal/logger"
	"github.com/georgemunganga/cellar-backend/internal/model"
)

// Service defines wine catalog business logic.
type Service interface {
	ListWines(ctx context.Context) ([]*model.Wine, error)
	// CreateWine stores a new wine and seeds an empty warehouse inventory record for it.
	CreateWine(ctx context.Context, req CreateWineRequest) (*model.Wine, error)
	GetWine(ctx context.Context, id string) (*model.Wine, error)
	// UpdateWine applies only the fields present in req and refreshes updated_at.
	UpdateWine(ctx context.Context, id string, req UpdateWineRequest) (*model.Wine, error)
	// DeleteWine removes a wine with its inventory and sales. Unknown ids succeed.
	DeleteWine(ctx context.Context, id string) error
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) ListWines(ctx context.Context) ([]*model.Wine, error) {
	const op = "catalog.service.ListWines"

	wines, err := s.repo.ListWines(ctx)
	if err != nil {
		logger.Error(ctx, "repository list wines", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return wines, nil
}

func (s *service) CreateWine(ctx context.Context, req CreateWineRequest) (*model.Wine, error) {
	const op = "catalog.service.CreateWine"

	if err := req.Validate(); err != nil {
		logger.Warn(ctx, "validation: create wine", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := s.now()
	w := req.toWine()
	w.ID = uuid.NewString()
	w.CreatedAt = now
	w.UpdatedAt = now
	seed := model.NewSeedInventory(w.ID, now)

	if err := s.repo.CreateWine(ctx, &w, &seed); err != nil {
		logger.Error(ctx, "repository create wine", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	logger.Info(ctx, "wine created",
		logger.String("wine_id", w.ID),
		logger.String("name", w.Name),
		logger.Int("vintage_year", w.VintageYear),
	)
	return &w, nil
}

func (s *service) GetWine(ctx context.Context, id string) (*model.Wine, error) {
	const op = "catalog.service.GetWine"

	w, err := s.repo.GetWineByID(ctx, id)
	if err != nil {
		s.logLookupFailure(ctx, id, err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return w, nil
}

func (s *service) UpdateWine(ctx context.Context, id string, req UpdateWineRequest) (*model.Wine, error) {
	const op = "catalog.service.UpdateWine"

	if err := req.Validate(); err != nil {
		logger.Warn(ctx, "validation: update wine", logger.String("wine_id", id), logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := s.now()
	w, err := s.repo.UpdateWine(ctx, id, func(w *model.Wine) {
		req.apply(w)
		w.UpdatedAt = now
	})
	if err != nil {
		s.logLookupFailure(ctx, id, err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return w, nil
}

func (s *service) DeleteWine(ctx context.Context, id string) error {
	const op = "catalog.service.DeleteWine"
	log := logger.With(logger.String("wine_id", id))

	res, err := s.repo.DeleteWine(ctx, id)
	if err != nil {
		log.Error(ctx, "repository delete wine", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.Wines == 0 {
		log.Info(ctx, "delete of unknown wine ignored")
		return nil
	}
	log.Info(ctx, "wine deleted",
		logger.Int("inventory_items", res.InventoryItems),
		logger.Int("sales", res.Sales),
	)
	return nil
}

func (s *service) logLookupFailure(ctx context.Context, id string, err error) {
	if errors.Is(err, model.ErrWineNotFound) {
		logger.Warn(ctx, "wine not found", logger.String("wine_id", id))
		return
	}
	logger.Error(ctx, "repository wine lookup", logger.String("wine_id", id), logger.ErrorF(err))
}
