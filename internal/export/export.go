// Package export renders a finished allocation result to downloadable
// artifacts. It performs no numeric transformation: rows are written in the
// order the assembler produced them.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/stockops/allocation-service/internal/domain/model"
)

// SheetName is the worksheet that carries the result in XLSX exports.
const SheetName = "Allocation"

// resultHeader matches the column layout of the upstream warehouse tooling.
var resultHeader = []string{
	"Item number",
	"Location",
	"Batch number",
	"Original Quantity",
	"Indicator",
	"Allocated Quantity",
}

// WriteCSV renders the result set as CSV.
func WriteCSV(w io.Writer, result model.AllocationResult) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(resultHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, row := range result.Rows {
		record := []string{
			row.ItemID,
			row.Location,
			row.BatchID,
			formatQuantity(row.OriginalQuantity),
			strconv.Itoa(int(row.Indicator)),
			formatQuantity(row.AllocatedQuantity),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteXLSX renders the result set as an Excel workbook with a single
// "Allocation" sheet.
func WriteXLSX(w io.Writer, result model.AllocationResult) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, len(resultHeader))
	for i, name := range resultHeader {
		header[i] = name
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, row := range result.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{
			row.ItemID,
			row.Location,
			row.BatchID,
			row.OriginalQuantity,
			int(row.Indicator),
			row.AllocatedQuantity,
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// formatQuantity renders a quantity with the fewest digits that round-trip.
func formatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
