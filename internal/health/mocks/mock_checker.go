package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockChecker struct {
	mock.Mock
}

func (m *MockChecker) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockChecker) Check(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
