package sales

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/georgemunganga/cellar-backend/internal/logger"
	"github.com/georgemunganga/cellar-backend/internal/model"
)

// Service defines point-of-sale business logic.
type Service interface {
	// CreateSale validates a sale against the catalog and, for bottles, the
	// stock at the sale location; then decrements that stock and records the sale.
	CreateSale(ctx context.Context, req CreateSaleRequest) (*model.Sale, error)
	ListSales(ctx context.Context, wineID string) ([]*model.Sale, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) CreateSale(ctx context.Context, req CreateSaleRequest) (*model.Sale, error) {
	const op = "sales.service.CreateSale"

	if err := req.Validate(); err != nil {
		logger.Warn(ctx, "validation: create sale", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	wineID := *req.WineID
	productType := *req.ProductType
	quantity := *req.Quantity
	location := *req.Location
	log := logger.With(
		logger.String("wine_id", wineID),
		logger.String("product_type", string(productType)),
		logger.Int("quantity", quantity),
		logger.String("location", location),
	)

	var sale model.Sale
	err := s.repo.WithinTx(ctx, func(tx Tx) error {
		wine, ok := tx.Wine(wineID)
		if !ok {
			return model.ErrWineNotFound
		}

		now := s.now()

		// Glass sales are poured from open bottles and never touch stock.
		if productType == model.ProductBottle {
			item, ok := tx.InventoryAt(wineID, location)
			if !ok || item.BottlesCount < quantity {
				return model.ErrInsufficientInventory
			}
			item.BottlesCount -= quantity
			item.UpdatedAt = now
			tx.SaveInventory(item)
		}

		unitPrice := wine.UnitPrice(productType)
		sale = model.Sale{
			ID:           uuid.NewString(),
			WineID:       wineID,
			ProductType:  productType,
			Quantity:     quantity,
			UnitPrice:    unitPrice,
			TotalAmount:  unitPrice * float64(quantity),
			Location:     location,
			SaleDate:     now,
			CustomerName: req.CustomerName,
		}
		tx.AppendSale(sale)
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, model.ErrWineNotFound):
			log.Warn(ctx, "sale rejected: wine not found")
		case errors.Is(err, model.ErrInsufficientInventory):
			log.Warn(ctx, "sale rejected: not enough bottles")
		default:
			log.Error(ctx, "repository create sale", logger.ErrorF(err))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info(ctx, "sale recorded",
		logger.String("sale_id", sale.ID),
		logger.Float64("total_amount", sale.TotalAmount),
	)
	return &sale, nil
}

func (s *service) ListSales(ctx context.Context, wineID string) ([]*model.Sale, error) {
	const op = "sales.service.ListSales"

	sales, err := s.repo.ListSales(ctx, strings.TrimSpace(wineID))
	if err != nil {
		logger.Error(ctx, "repository list sales", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return sales, nil
}
