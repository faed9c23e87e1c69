package sales_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/georgemunganga/cellar-backend/internal/model"
	"github.com/georgemunganga/cellar-backend/internal/modules/sales"
	"github.com/georgemunganga/cellar-backend/internal/modules/sales/mocks"
)

func request(wineID string, pt model.ProductType, qty int, location string) sales.CreateSaleRequest {
	return sales.CreateSaleRequest{
		WineID:      &wineID,
		ProductType: &pt,
		Quantity:    &qty,
		Location:    &location,
	}
}

func TestGlassSaleNeverTouchesInventory(t *testing.T) {
	t.Parallel()

	tx := mocks.NewMockTx(t)
	repo := mocks.NewMockRepository(t)
	repo.On("WithinTx", mock.Anything, mock.Anything).Return(tx, nil).Once()
	tx.On("Wine", "w-1").Return(model.Wine{ID: "w-1", PriceGlass: 12.5}, true).Once()

	var appended model.Sale
	tx.On("AppendSale", mock.AnythingOfType("model.Sale")).
		Run(func(args mock.Arguments) { appended = args.Get(0).(model.Sale) }).
		Once()

	sale, err := sales.NewService(repo).CreateSale(context.Background(), request("w-1", model.ProductGlass, 4, "terrace"))
	require.NoError(t, err)

	tx.AssertNotCalled(t, "InventoryAt", mock.Anything, mock.Anything)
	tx.AssertNotCalled(t, "SaveInventory", mock.Anything)
	assert.Equal(t, *sale, appended)
	assert.Equal(t, 12.5, sale.UnitPrice)
	assert.Equal(t, 50.0, sale.TotalAmount)
	assert.Equal(t, "terrace", sale.Location)
}

func TestBottleSaleDecrementsStockAtLocation(t *testing.T) {
	t.Parallel()

	tx := mocks.NewMockTx(t)
	repo := mocks.NewMockRepository(t)
	repo.On("WithinTx", mock.Anything, mock.Anything).Return(tx, nil).Once()
	tx.On("Wine", "w-1").Return(model.Wine{ID: "w-1", PriceBottle: 80}, true).Once()
	tx.On("InventoryAt", "w-1", "bar").
		Return(model.InventoryItem{WineID: "w-1", Location: "bar", BottlesCount: 5}, true).
		Once()
	tx.On("SaveInventory", mock.MatchedBy(func(item model.InventoryItem) bool {
		return item.WineID == "w-1" && item.Location == "bar" && item.BottlesCount == 3
	})).Return(true).Once()
	tx.On("AppendSale", mock.AnythingOfType("model.Sale")).Once()

	sale, err := sales.NewService(repo).CreateSale(context.Background(), request("w-1", model.ProductBottle, 2, "bar"))
	require.NoError(t, err)
	assert.Equal(t, 160.0, sale.TotalAmount)
}

func TestBottleSaleShortStockWritesNothing(t *testing.T) {
	t.Parallel()

	tx := mocks.NewMockTx(t)
	repo := mocks.NewMockRepository(t)
	repo.On("WithinTx", mock.Anything, mock.Anything).Return(tx, nil).Once()
	tx.On("Wine", "w-1").Return(model.Wine{ID: "w-1", PriceBottle: 80}, true).Once()
	tx.On("InventoryAt", "w-1", "bar").
		Return(model.InventoryItem{WineID: "w-1", Location: "bar", BottlesCount: 1}, true).
		Once()

	sale, err := sales.NewService(repo).CreateSale(context.Background(), request("w-1", model.ProductBottle, 2, "bar"))
	require.Error(t, err)
	assert.Nil(t, sale)
	assert.ErrorIs(t, err, model.ErrInsufficientInventory)
	tx.AssertNotCalled(t, "SaveInventory", mock.Anything)
	tx.AssertNotCalled(t, "AppendSale", mock.Anything)
}

func TestSaleRepositoryFailure(t *testing.T) {
	t.Parallel()

	dbErr := errors.New("store unavailable")
	repo := mocks.NewMockRepository(t)
	repo.On("WithinTx", mock.Anything, mock.Anything).Return(nil, dbErr).Once()
	repo.On("ListSales", mock.Anything, "w-1").Return(nil, dbErr).Once()
	svc := sales.NewService(repo)

	_, err := svc.CreateSale(context.Background(), request("w-1", model.ProductGlass, 1, "bar"))
	assert.ErrorIs(t, err, dbErr)
	assert.ErrorContains(t, err, "sales.service.CreateSale")

	_, err = svc.ListSales(context.Background(), " w-1 ")
	assert.ErrorIs(t, err, dbErr)
}

func TestSaleValidationSkipsRepository(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockRepository(t)

	_, err := sales.NewService(repo).CreateSale(context.Background(), request("w-1", model.ProductBottle, 0, "bar"))
	assert.ErrorIs(t, err, model.ErrValidation)
	repo.AssertNotCalled(t, "WithinTx", mock.Anything, mock.Anything)
}
