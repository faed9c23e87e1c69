package report

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/georgemunganga/cellar-backend/internal/logger"
	"github.com/georgemunganga/cellar-backend/internal/model"
)

// Service derives read-only aggregate views over the catalog.
type Service interface {
	// SalesByVintage groups sales by wine name and vintage year, in the order
	// each group's first sale was recorded.
	SalesByVintage(ctx context.Context) ([]*model.VintageSales, error)
	InventoryByLocation(ctx context.Context) (InventoryByLocation, error)
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) SalesByVintage(ctx context.Context) ([]*model.VintageSales, error) {
	const op = "report.service.SalesByVintage"

	ds, err := s.repo.Load(ctx)
	if err != nil {
		logger.Error(ctx, "repository load report data", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	wines := lo.KeyBy(ds.Wines, func(w model.Wine) string { return w.ID })
	groups := make(map[string]*model.VintageSales)
	out := make([]*model.VintageSales, 0)

	for _, sale := range ds.Sales {
		wine, ok := wines[sale.WineID]
		if !ok {
			continue
		}
		key := fmt.Sprintf("%s %d", wine.Name, wine.VintageYear)
		g, ok := groups[key]
		if !ok {
			g = &model.VintageSales{WineName: wine.Name, VintageYear: wine.VintageYear}
			groups[key] = g
			out = append(out, g)
		}
		if sale.ProductType == model.ProductBottle {
			g.BottlesSold += sale.Quantity
		} else {
			g.GlassesSold += sale.Quantity
		}
		g.TotalRevenue += sale.TotalAmount
	}
	return out, nil
}

func (s *service) InventoryByLocation(ctx context.Context) (InventoryByLocation, error) {
	const op = "report.service.InventoryByLocation"

	ds, err := s.repo.Load(ctx)
	if err != nil {
		logger.Error(ctx, "repository load report data", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	wines := lo.KeyBy(ds.Wines, func(w model.Wine) string { return w.ID })
	index := make(map[string]int)
	out := make(InventoryByLocation, 0)

	for _, item := range ds.Inventory {
		// A location is listed once it holds any record, even an orphaned one.
		pos, ok := index[item.Location]
		if !ok {
			pos = len(out)
			index[item.Location] = pos
			out = append(out, LocationGroup{Location: item.Location, Stock: make([]*model.LocationStock, 0)})
		}
		wine, ok := wines[item.WineID]
		if !ok {
			continue
		}
		out[pos].Stock = append(out[pos].Stock, &model.LocationStock{
			WineName:         wine.Name,
			VintageYear:      wine.VintageYear,
			Producer:         wine.Producer,
			BottlesCount:     item.BottlesCount,
			GlassesAvailable: item.BottlesCount * wine.GlassesPerBottle,
		})
	}
	return out, nil
}
