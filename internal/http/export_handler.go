package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stockops/allocation-service/internal/domain/dto"
	"github.com/stockops/allocation-service/internal/export"
	"github.com/stockops/allocation-service/internal/i18n"
	"github.com/stockops/allocation-service/internal/metrics"
)

// Export handles POST /api/allocations/export requests.
//
// @Summary      Export an allocation result
// @Description  Runs the same allocation as the allocation endpoint and streams the full result back as a downloadable artifact. The format query parameter selects CSV (default) or XLSX; the XLSX workbook contains a single "Allocation" sheet.
// @Tags         Allocations
// @Accept       multipart/form-data
// @Produce      text/csv
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        adjustments formData file true "Adjustment requests table (CSV or XLSX)"
// @Param        inventory formData file true "Inventory lots table (CSV or XLSX)"
// @Param        format query string false "Export format: csv (default) or xlsx"
// @Success      200 {file} file "Exported allocation result"
// @Failure      400 {object} dto.ErrorResponse "Bad request - missing file or unsupported format"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      413 {object} dto.ErrorResponse "Upload exceeds size limit"
// @Failure      422 {object} dto.ErrorResponse "Unprocessable file - missing columns or unreadable table"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/allocations/export [post]
func (h *Handler) Export(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.ExportRequest
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

	switch req.Format {
	case "xlsx":
		c.Header("Content-Disposition", `attachment; filename="`+xlsxExportFilename+`"`)
		c.Header("Content-Type", xlsxContentType)
		c.Status(http.StatusOK)
		if err := export.WriteXLSX(c.Writer, result); err != nil {
			_ = c.Error(err)
			return
		}
		metrics.RecordExport("xlsx")
	default:
		c.Header("Content-Disposition", `attachment; filename="`+csvExportFilename+`"`)
		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Status(http.StatusOK)
		if err := export.WriteCSV(c.Writer, result); err != nil {
			_ = c.Error(err)
			return
		}
		metrics.RecordExport("csv")
	}
}
