// Package app provides service initialization.
package app

import (
	"github.com/stockops/allocation-service/config"
	"github.com/stockops/allocation-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Allocator service.Allocator
}

// InitializeServices initializes business logic services.
func InitializeServices(cfg config.AllocatorConfig) *ServiceComponents {
	var opts []service.Option

	if cfg.ExclusionPattern != "" {
		opts = append(opts, service.WithExclusionPattern(cfg.ExclusionPattern))
	}

	allocator := service.NewAllocatorService(opts...)

	return &ServiceComponents{
		Allocator: allocator,
	}
}
