package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/georgemunganga/cellar-backend/internal/model"
)

// MockRepository is a testify mock of catalog.Repository.
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

func (m *MockRepository) CreateWine(ctx context.Context, w *model.Wine, seed *model.InventoryItem) error {
	args := m.Called(ctx, w, seed)
	return args.Error(0)
}

func (m *MockRepository) GetWineByID(ctx context.Context, id string) (*model.Wine, error) {
	args := m.Called(ctx, id)
	w, _ := args.Get(0).(*model.Wine)
	return w, args.Error(1)
}

func (m *MockRepository) ListWines(ctx context.Context) ([]*model.Wine, error) {
	args := m.Called(ctx)
	ws, _ := args.Get(0).([]*model.Wine)
	return ws, args.Error(1)
}

func (m *MockRepository) UpdateWine(ctx context.Context, id string, mutate func(w *model.Wine)) (*model.Wine, error) {
	args := m.Called(ctx, id, mutate)
	w, _ := args.Get(0).(*model.Wine)
	return w, args.Error(1)
}

func (m *MockRepository) DeleteWine(ctx context.Context, id string) (model.CascadeResult, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(model.CascadeResult)
	return res, args.Error(1)
}
