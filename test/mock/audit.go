// console/test/mock/audit.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dev-mohitbeniwal/aptmgr/console/audit"
)

// MockAuditService is a mock implementation of audit.Service
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) LogActivity(ctx context.Context, activity audit.Activity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *MockAuditService) QueryActivities(ctx context.Context, q audit.ActivityQuery) ([]audit.Activity, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]audit.Activity), args.Error(1)
}
