package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/stockops/allocation-service/internal/domain/dto"
	"github.com/stockops/allocation-service/internal/service"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RunsHandler provides HTTP handlers for run history routes.
type RunsHandler struct {
	runsService service.RunsService
}

// NewRunsHandler creates a new RunsHandler instance.
func NewRunsHandler(runsService service.RunsService) *RunsHandler {
	return &RunsHandler{
		runsService: runsService,
	}
}

// ListRuns handles GET /api/runs requests.
//
// @Summary      List allocation runs
// @Description  Returns the stored allocation run history, newest first
// @Tags         Runs
// @Accept       json
// @Produce      json
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Param        limit query int false "Limit number of results"
// @Success      200 {object} dto.SuccessResponse "Allocation run history"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/runs [get]
func (h *RunsHandler) ListRuns(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := parseInt(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	runs, err := h.runsService.List(c.Request.Context(), limit)
	if err != nil {
		builder.Error(http.StatusInternalServerError, dto.ErrCodeInternal, err)
		return
	}

	builder.SuccessOK(runs)
}

// GetRun handles GET /api/runs/:id requests.
//
// @Summary      Get an allocation run
// @Description  Returns a single stored allocation run by its identifier
// @Tags         Runs
// @Accept       json
// @Produce      json
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Param        id path string true "Run ID"
// @Success      200 {object} dto.SuccessResponse "Allocation run"
// @Failure      400 {object} dto.ErrorResponse "Invalid run ID"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      404 {object} dto.ErrorResponse "Run not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/runs/{id} [get]
func (h *RunsHandler) GetRun(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, dto.ErrCodeInvalidRequest, err)
		return
	}

	run, err := h.runsService.Get(c.Request.Context(), id)
	if err != nil {
		builder.Error(http.StatusInternalServerError, dto.ErrCodeInternal, err)
		return
	}

	if run == nil {
		builder.Error(http.StatusNotFound, dto.ErrCodeNotFound, nil)
		return
	}

	builder.SuccessOK(run)
}

func parseInt(s string) (int, error) {
	return strconv.Atoi(s)
}
