// filepath: internal/services/mocks/summary_mock.go
package mocks

import (
	"context"
	"encoding/json"
	"solarapi/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockSummaryService is a mock implementation of services.SummaryService
type MockSummaryService struct {
	mock.Mock
}

var _ services.SummaryService = (*MockSummaryService)(nil)

func (m *MockSummaryService) GetSummary(ctx context.Context) (json.RawMessage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}
