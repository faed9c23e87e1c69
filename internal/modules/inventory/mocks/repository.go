package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/georgemunganga/cellar-backend/internal/model"
)

// MockRepository is a testify mock of inventory.Repository.
type MockRepository struct {
	mock.Mock
}

func NewMockRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRepository {
	m := &MockRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockRepository) ListInventory(ctx context.Context, location string) ([]*model.InventoryItem, error) {
	args := m.Called(ctx, location)
	items, _ := args.Get(0).([]*model.InventoryItem)
	return items, args.Error(1)
}

func (m *MockRepository) GetInventory(ctx context.Context, wineID, location string) (*model.InventoryItem, error) {
	args := m.Called(ctx, wineID, location)
	item, _ := args.Get(0).(*model.InventoryItem)
	return item, args.Error(1)
}

func (m *MockRepository) SetBottles(ctx context.Context, wineID, location string, count int, at time.Time) (*model.InventoryItem, error) {
	args := m.Called(ctx, wineID, location, count, at)
	item, _ := args.Get(0).(*model.InventoryItem)
	return item, args.Error(1)
}

func (m *MockRepository) PutBottles(ctx context.Context, wineID, location string, count int, at time.Time) (*model.InventoryItem, error) {
	args := m.Called(ctx, wineID, location, count, at)
	item, _ := args.Get(0).(*model.InventoryItem)
	return item, args.Error(1)
}
