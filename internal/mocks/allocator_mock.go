// Code generated manually. DO NOT EDIT.

package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/stockops/allocation-service/internal/domain/model"
)

type MockAllocator struct {
	mock.Mock
}

func (m *MockAllocator) Allocate(requests []model.AdjustmentRequest, lots []model.InventoryLot) (model.AllocationResult, error) {
	args := m.Called(requests, lots)
	return args.Get(0).(model.AllocationResult), args.Error(1)
}
