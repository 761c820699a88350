package http

import (
	"github.com/gin-gonic/gin"
	"github.com/stockops/allocation-service/internal/service"
)

// AllocationRoutes handles allocation-related route registration.
type AllocationRoutes struct {
	handler     *Handler
	runsHandler *RunsHandler
}

// NewAllocationRoutes creates a new AllocationRoutes instance.
func NewAllocationRoutes(allocator service.Allocator, runsService service.RunsService, opts ...HandlerOption) *AllocationRoutes {
	handler := NewHandler(allocator, runsService, opts...)

	var runsHandler *RunsHandler
	if runsService != nil {
		runsHandler = NewRunsHandler(runsService)
	}

	return &AllocationRoutes{
		handler:     handler,
		runsHandler: runsHandler,
	}
}

// RegisterPublicRoutes registers public allocation routes (when auth is disabled).
func (r *AllocationRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/allocations", r.handler.Allocate)
	rg.POST("/allocations/export", r.handler.Export)

	if r.runsHandler != nil {
		rg.GET("/runs", r.runsHandler.ListRuns)
		rg.GET("/runs/:id", r.runsHandler.GetRun)
	}
}

// RegisterProtectedRoutes registers protected allocation routes (when auth is enabled).
func (r *AllocationRoutes) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.POST("/allocations", r.handler.Allocate)
	protected.POST("/allocations/export", r.handler.Export)

	if r.runsHandler != nil {
		protected.GET("/runs", r.runsHandler.ListRuns)
		protected.GET("/runs/:id", r.runsHandler.GetRun)
	}
}

// GetHandler returns the underlying allocation handler.
func (r *AllocationRoutes) GetHandler() *Handler {
	return r.handler
}
