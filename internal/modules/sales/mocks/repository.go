package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/georgemunganga/cellar-backend/internal/model"
	"github.com/georgemunganga/cellar-backend/internal/modules/sales"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockRepository is a testify mock of sales.Repository.
type MockRepository struct {
	mock.Mock
}

func NewMockRepository(t testingT) *MockRepository {
	m := &MockRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockRepository) ListSales(ctx context.Context, wineID string) ([]*model.Sale, error) {
	args := m.Called(ctx, wineID)
	ss, _ := args.Get(0).([]*model.Sale)
	return ss, args.Error(1)
}

// WithinTx runs fn against the sales.Tx given as the first return value.
// When that value is nil the second return value is returned instead.
func (m *MockRepository) WithinTx(ctx context.Context, fn func(tx sales.Tx) error) error {
	args := m.Called(ctx, fn)
	if tx, ok := args.Get(0).(sales.Tx); ok {
		return fn(tx)
	}
	return args.Error(1)
}

// MockTx is a testify mock of sales.Tx.
type MockTx struct {
	mock.Mock
}

func NewMockTx(t testingT) *MockTx {
	m := &MockTx{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTx) Wine(id string) (model.Wine, bool) {
	args := m.Called(id)
	w, _ := args.Get(0).(model.Wine)
	return w, args.Bool(1)
}

func (m *MockTx) InventoryAt(wineID, location string) (model.InventoryItem, bool) {
	args := m.Called(wineID, location)
	item, _ := args.Get(0).(model.InventoryItem)
	return item, args.Bool(1)
}

func (m *MockTx) SaveInventory(item model.InventoryItem) bool {
	args := m.Called(item)
	return args.Bool(0)
}

func (m *MockTx) AppendSale(s model.Sale) {
	m.Called(s)
}
