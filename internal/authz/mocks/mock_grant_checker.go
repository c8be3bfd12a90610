package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockGrantChecker is a mock implementation of authz.GrantChecker.
type MockGrantChecker struct {
	mock.Mock
}

func (m *MockGrantChecker) HasGrant(ctx context.Context, userID int64, objectType string, objectID int64, codename string) (bool, error) {
	args := m.Called(ctx, userID, objectType, objectID, codename)
	return args.Bool(0), args.Error(1)
}
