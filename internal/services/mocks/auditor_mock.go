// filepath: internal/services/mocks/auditor_mock.go
package mocks

import (
	"context"
	"solarapi/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockAuditor is a mock implementation of services.Auditor
type MockAuditor struct {
	mock.Mock
}

var _ services.Auditor = (*MockAuditor)(nil)

func (m *MockAuditor) Log(ctx context.Context, action string, actor string, resource string, details map[string]interface{}) {
	m.Called(ctx, action, actor, resource, details)
}
