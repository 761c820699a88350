// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"github.com/stockops/allocation-service/internal/domain/model"
)

// Multipart form field names for allocation uploads.
const (
	// FieldAdjustments is the multipart field carrying the adjustment requests file.
	FieldAdjustments = "adjustments"
	// FieldInventory is the multipart field carrying the inventory lots file.
	FieldInventory = "inventory"
)

// AllocateRequest represents the query parameters accepted by the allocation endpoints.
//
// Both endpoints receive the adjustment and inventory tables as multipart file
// uploads; these parameters only shape the response.
//
// @Description Parameters for an allocation run
type AllocateRequest struct {
	// PreviewLimit caps the number of rows returned in the JSON response.
	// Zero means no cap. Has no effect on exports.
	PreviewLimit int `form:"preview_limit" example:"100" minimum:"0"`
} // @name AllocateRequest

// ExportRequest represents the query parameters for the export endpoint.
//
// @Description Parameters for exporting an allocation result
type ExportRequest struct {
	// Format selects the export artifact: "csv" (default) or "xlsx".
	Format string `form:"format" example:"csv" enums:"csv,xlsx"`
} // @name ExportRequest

// AllocationResponse represents the JSON response body for the allocation endpoint.
//
// @Description Result of an allocation run, optionally truncated to a preview
type AllocationResponse struct {
	// TotalRows is the full size of the result, before any preview truncation.
	TotalRows int `json:"total_rows" example:"42"`
	// Truncated indicates whether Rows was capped by preview_limit.
	Truncated bool `json:"truncated" example:"false"`
	// Rows contains the allocation result rows in final presentation order.
	Rows []model.AllocationRow `json:"rows"`
} // @name AllocationResponse

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

var (
	// ErrMissingAdjustmentsFile is returned when the adjustments upload is absent.
	ErrMissingAdjustmentsFile = &ValidationError{
		Field:   FieldAdjustments,
		Message: "adjustments file is required",
	}

	// ErrMissingInventoryFile is returned when the inventory upload is absent.
	ErrMissingInventoryFile = &ValidationError{
		Field:   FieldInventory,
		Message: "inventory file is required",
	}

	// ErrInvalidPreviewLimit is returned when preview_limit is negative.
	ErrInvalidPreviewLimit = &ValidationError{
		Field:   "preview_limit",
		Message: "must be zero or a positive integer",
	}

	// ErrInvalidExportFormat is returned when the export format is unknown.
	ErrInvalidExportFormat = &ValidationError{
		Field:   "format",
		Message: "must be one of: csv, xlsx",
	}
)

// Validate performs custom validation on the allocation request.
// Returns an error if validation fails, nil otherwise.
func (r *AllocateRequest) Validate() error {
	if r.PreviewLimit < 0 {
		return ErrInvalidPreviewLimit
	}
	return nil
}

// Validate performs custom validation on the export request.
// An empty format defaults to CSV and is valid.
func (r *ExportRequest) Validate() error {
	switch r.Format {
	case "", "csv", "xlsx":
		return nil
	default:
		return ErrInvalidExportFormat
	}
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
