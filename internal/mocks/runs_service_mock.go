// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/stockops/allocation-service/internal/repository"
)

type MockRunsService struct {
	mock.Mock
}

// NewMockRunsService creates a mock bound to the test's lifecycle.
func NewMockRunsService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRunsService {
	m := &MockRunsService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockRunsService) Record(ctx context.Context, record repository.RunRecord) (*repository.RunRecord, error) {
	args := m.Called(ctx, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.RunRecord), args.Error(1)
}

func (m *MockRunsService) Get(ctx context.Context, id primitive.ObjectID) (*repository.RunRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.RunRecord), args.Error(1)
}

func (m *MockRunsService) List(ctx context.Context, limit int) ([]repository.RunRecord, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.RunRecord), args.Error(1)
}
