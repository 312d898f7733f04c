// filepath: internal/services/mocks/clean_mock.go
package mocks

import (
	"context"
	"solarapi/internal/models"
	"solarapi/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockCleanService is a mock implementation of services.CleanService
type MockCleanService struct {
	mock.Mock
}

var _ services.CleanService = (*MockCleanService)(nil)

func (m *MockCleanService) RequestCleaning(ctx context.Context, payload models.CleanRequestPayload) (*models.CleanRequest, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CleanRequest), args.Error(1)
}

func (m *MockCleanService) GetCleanRequests(ctx context.Context, limit int) ([]models.CleanRequest, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CleanRequest), args.Error(1)
}
