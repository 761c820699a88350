// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"github.com/stockops/allocation-service/internal/repository"
)

type MockRunsRepositoryInterface struct {
	mock.Mock
}

func (m *MockRunsRepositoryInterface) Create(ctx context.Context, record repository.RunRecord) (*repository.RunRecord, error) {
	args := m.Called(ctx, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.RunRecord), args.Error(1)
}

func (m *MockRunsRepositoryInterface) GetByID(ctx context.Context, id primitive.ObjectID) (*repository.RunRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.RunRecord), args.Error(1)
}

func (m *MockRunsRepositoryInterface) List(ctx context.Context, limit int) ([]repository.RunRecord, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.RunRecord), args.Error(1)
}
