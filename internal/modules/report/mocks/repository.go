package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/georgemunganga/cellar-backend/internal/modules/report"
)

// MockRepository is a testify mock of report.Repository.
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

func (m *MockRepository) Load(ctx context.Context) (*report.Dataset, error) {
	args := m.Called(ctx)
	ds, _ := args.Get(0).(*report.Dataset)
	return ds, args.Error(1)
}
