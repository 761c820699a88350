package http

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stockops/allocation-service/internal/domain/dto"
	"github.com/stockops/allocation-service/internal/domain/model"
	"github.com/stockops/allocation-service/internal/i18n"
	"github.com/stockops/allocation-service/internal/loader"
	"github.com/stockops/allocation-service/internal/metrics"
	"github.com/stockops/allocation-service/internal/middleware"
	"github.com/stockops/allocation-service/internal/repository"
	"github.com/stockops/allocation-service/internal/service"
)

const (
	// csvExportFilename is the attachment name for CSV exports.
	csvExportFilename = "Allocation_Result.csv"
	// xlsxExportFilename is the attachment name for XLSX exports.
	xlsxExportFilename = "Allocation_Result.xlsx"

	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Handler provides HTTP handlers for allocation routes.
type Handler struct {
	allocator   service.Allocator
	runsService service.RunsService
	maxFileSize int64
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithMaxFileSize sets the per-file upload size limit in bytes.
func WithMaxFileSize(limit int64) HandlerOption {
	return func(h *Handler) {
		h.maxFileSize = limit
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(allocator service.Allocator, runsService service.RunsService, opts ...HandlerOption) *Handler {
	h := &Handler{
		allocator:   allocator,
		runsService: runsService,
		maxFileSize: 32 << 20, // Default 32 MiB per file
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// uploadedTables holds the parsed contents of both uploaded files.
type uploadedTables struct {
	requests []model.AdjustmentRequest
	lots     []model.InventoryLot
}

// upload is a single validated multipart file with its detected format.
type upload struct {
	file   multipart.File
	format loader.Format
	size   int64
}

// readTables extracts and parses the adjustment and inventory uploads.
// It aborts the request with an error response and returns false on failure.
func (h *Handler) readTables(c *gin.Context, builder *ResponseBuilder) (uploadedTables, bool) {
	var tables uploadedTables

	adjustments, err := h.openUpload(c, builder, dto.FieldAdjustments, dto.ErrMissingAdjustmentsFile)
	if err != nil {
		return tables, false
	}
	defer func() {
		_ = adjustments.file.Close()
	}()

	inventory, err := h.openUpload(c, builder, dto.FieldInventory, dto.ErrMissingInventoryFile)
	if err != nil {
		return tables, false
	}
	defer func() {
		_ = inventory.file.Close()
	}()

	tables.requests, err = loader.ReadAdjustments(adjustments.file, adjustments.format)
	if err != nil {
		builder.Error(http.StatusUnprocessableEntity, i18n.ErrKeyInvalidFile, err)
		return tables, false
	}

	tables.lots, err = loader.ReadInventory(inventory.file, inventory.format)
	if err != nil {
		builder.Error(http.StatusUnprocessableEntity, i18n.ErrKeyInvalidFile, err)
		return tables, false
	}

	metrics.RecordUpload(dto.FieldAdjustments, adjustments.size)
	metrics.RecordUpload(dto.FieldInventory, inventory.size)

	return tables, true
}

func (h *Handler) openUpload(c *gin.Context, builder *ResponseBuilder, field string, missing *dto.ValidationError) (upload, error) {
	header, err := c.FormFile(field)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyFilesRequired, missing)
		return upload{}, missing
	}

	if h.maxFileSize > 0 && header.Size > h.maxFileSize {
		err := errors.New(field + ": file exceeds size limit")
		builder.Error(http.StatusRequestEntityTooLarge, i18n.ErrKeyFileTooLarge, err)
		return upload{}, err
	}

	format, err := loader.DetectFormat(header.Filename)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyUnsupportedFormat, err)
		return upload{}, err
	}

	file, err := header.Open()
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidFile, err)
		return upload{}, err
	}

	return upload{file: file, format: format, size: header.Size}, nil
}

// runAllocation executes the allocation and records run metrics and history.
// On failure it aborts the request and returns false.
func (h *Handler) runAllocation(c *gin.Context, builder *ResponseBuilder, tables uploadedTables) (model.AllocationResult, bool) {
	start := time.Now()

	result, err := h.allocator.Allocate(tables.requests, tables.lots)
	duration := time.Since(start)

	status := "success"
	if err != nil {
		status = "error"
	}
	metrics.RecordAllocationRun(duration, status, result.TotalRows)
	h.recordRun(c, tables, result, status, duration)

	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return result, false
	}

	// Audit log (async)
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "allocate", "Allocation run completed", map[string]interface{}{
				"request_count": len(tables.requests),
				"lot_count":     len(tables.lots),
				"row_count":     result.TotalRows,
			})
		}
	}

	return result, true
}

// recordRun persists a run summary when run history is configured.
func (h *Handler) recordRun(c *gin.Context, tables uploadedTables, result model.AllocationResult, status string, duration time.Duration) {
	if h.runsService == nil {
		return
	}

	record := repository.RunRecord{
		RequestID:    middleware.GetRequestID(c),
		RequestCount: len(tables.requests),
		LotCount:     len(tables.lots),
		RowCount:     result.TotalRows,
		Status:       status,
		DurationMs:   duration.Milliseconds(),
	}

	// Persist outside the request lifecycle; history is non-critical.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_, _ = h.runsService.Record(ctx, record)
	}()
}

// Allocate handles POST /api/allocations requests.
//
// @Summary      Run an inventory allocation
// @Description  Uploads an adjustment requests table and an inventory lots table (CSV or XLSX), allocates each adjustment target across that item's inventory smallest-lot-first, and returns the resulting rows. Rows for production locations are always returned unallocated. The response can be truncated to a preview with the preview_limit query parameter; total_rows always reflects the full result.
// @Tags         Allocations
// @Accept       multipart/form-data
// @Produce      json
// @Param        adjustments formData file true "Adjustment requests table (CSV or XLSX)"
// @Param        inventory formData file true "Inventory lots table (CSV or XLSX)"
// @Param        preview_limit query int false "Maximum number of rows to return (0 = all)"
// @Success      200 {object} dto.SuccessResponse "Allocation result"
// @Failure      400 {object} dto.ErrorResponse "Bad request - missing file or unsupported format"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      413 {object} dto.ErrorResponse "Upload exceeds size limit"
// @Failure      422 {object} dto.ErrorResponse "Unprocessable file - missing columns or unreadable table"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/allocations [post]
func (h *Handler) Allocate(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.AllocateRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	tables, ok := h.readTables(c, builder)
	if !ok {
		return
	}

	result, ok := h.runAllocation(c, builder, tables)
	if !ok {
		return
	}

	response := dto.AllocationResponse{
		TotalRows: result.TotalRows,
		Rows:      result.Rows,
	}
	if req.PreviewLimit > 0 && len(result.Rows) > req.PreviewLimit {
		response.Rows = result.Rows[:req.PreviewLimit]
		response.Truncated = true
	}

	builder.SuccessOK(response)
}
