// Package loader parses uploaded tabular files (CSV or XLSX) into the
// normalized in-memory records the allocator consumes. All defensive
// handling of raw input lives here: free-form column names, header rows
// that are not on the first line, and quantity cells that fail to parse
// (coerced to zero).
package loader

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/stockops/allocation-service/internal/domain/model"
)

// Format identifies a supported input file format.
type Format string

const (
	// FormatCSV is comma-separated values.
	FormatCSV Format = "csv"
	// FormatXLSX is an Excel workbook.
	FormatXLSX Format = "xlsx"
)

// headerScanLimit bounds how many leading rows are scanned for the header
// row. The inventory export carries a title row above the real headers.
const headerScanLimit = 5

var (
	// ErrUnsupportedFormat is returned for file extensions other than .csv/.xlsx.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrMissingColumn is returned when a required logical column cannot be
	// resolved from the header row.
	ErrMissingColumn = errors.New("required column not found")
	// ErrEmptyTable is returned when the input contains no header row.
	ErrEmptyTable = errors.New("input table is empty")
)

// Column aliases, matched after trimming, casefolding and collapsing
// whitespace. The canonical names come from the upstream warehouse exports.
var (
	itemAliases     = []string{"item number", "item", "item id", "item_id"}
	targetAliases   = []string{"adjustment", "adjustment quantity", "target", "target quantity"}
	locationAliases = []string{"location", "warehouse", "site"}
	batchAliases    = []string{"batch number", "batch", "batch id", "lot"}
	onHandAliases   = []string{"sum of physical inventory", "physical inventory", "on hand", "on-hand quantity", "quantity"}
)

// DetectFormat maps a filename to its Format by extension.
func DetectFormat(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(filename))
	}
}

// ReadAdjustments parses the adjustment requests table.
func ReadAdjustments(r io.Reader, format Format) ([]model.AdjustmentRequest, error) {
	rows, err := readRows(r, format)
	if err != nil {
		return nil, err
	}

	header, body, err := locateHeader(rows)
	if err != nil {
		return nil, err
	}

	itemCol, err := resolveColumn(header, itemAliases)
	if err != nil {
		return nil, fmt.Errorf("adjustments: %w", err)
	}
	targetCol, err := resolveColumn(header, targetAliases)
	if err != nil {
		return nil, fmt.Errorf("adjustments: %w", err)
	}

	requests := make([]model.AdjustmentRequest, 0, len(body))
	for _, row := range body {
		item := strings.TrimSpace(cell(row, itemCol))
		if item == "" {
			continue
		}
		requests = append(requests, model.AdjustmentRequest{
			ItemID:         item,
			TargetQuantity: coerceQuantity(cell(row, targetCol)),
		})
	}

	return requests, nil
}

// ReadInventory parses the inventory lots table.
func ReadInventory(r io.Reader, format Format) ([]model.InventoryLot, error) {
	rows, err := readRows(r, format)
	if err != nil {
		return nil, err
	}

	header, body, err := locateHeader(rows)
	if err != nil {
		return nil, err
	}

	itemCol, err := resolveColumn(header, itemAliases)
	if err != nil {
		return nil, fmt.Errorf("inventory: %w", err)
	}
	onHandCol, err := resolveColumn(header, onHandAliases)
	if err != nil {
		return nil, fmt.Errorf("inventory: %w", err)
	}
	// Location and batch are optional; absent columns yield blank fields.
	locationCol, _ := resolveColumn(header, locationAliases)
	batchCol, _ := resolveColumn(header, batchAliases)

	lots := make([]model.InventoryLot, 0, len(body))
	for _, row := range body {
		item := strings.TrimSpace(cell(row, itemCol))
		if item == "" {
			continue
		}
		lots = append(lots, model.InventoryLot{
			ItemID:         item,
			Location:       strings.TrimSpace(cell(row, locationCol)),
			BatchID:        strings.TrimSpace(cell(row, batchCol)),
			OnHandQuantity: coerceQuantity(cell(row, onHandCol)),
		})
	}

	return lots, nil
}

// locateHeader finds the header row within the first few rows and returns
// it together with the remaining body rows. The inventory export places a
// title row above the headers, so the first row resolving the item column
// wins.
func locateHeader(rows [][]string) (header []string, body [][]string, err error) {
	if len(rows) == 0 {
		return nil, nil, ErrEmptyTable
	}

	limit := headerScanLimit
	if len(rows) < limit {
		limit = len(rows)
	}

	for i := 0; i < limit; i++ {
		if _, err := resolveColumn(rows[i], itemAliases); err == nil {
			return rows[i], rows[i+1:], nil
		}
	}

	return nil, nil, fmt.Errorf("%w: item column", ErrMissingColumn)
}

// resolveColumn returns the index of the first header matching any alias.
func resolveColumn(header []string, aliases []string) (int, error) {
	for i, name := range header {
		normalized := normalizeHeader(name)
		for _, alias := range aliases {
			if normalized == alias {
				return i, nil
			}
		}
	}
	return -1, fmt.Errorf("%w: one of %q", ErrMissingColumn, aliases)
}

// normalizeHeader trims, casefolds, and collapses internal whitespace.
func normalizeHeader(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(name))), " ")
}

// cell returns the value at index i, or "" when the row is short or the
// column was not resolved.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// coerceQuantity converts a raw cell to a quantity. Thousands separators
// are stripped; anything unparseable becomes zero so it never reaches the
// allocator as a fault.
func coerceQuantity(raw string) float64 {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if cleaned == "" {
		return 0
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}
