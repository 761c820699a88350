// Package model defines the core domain entities for the allocation service.
package model

// Indicator describes how far a lot was consumed by an allocation run.
type Indicator int

const (
	// IndicatorNone means the lot was not touched by the allocation.
	IndicatorNone Indicator = 0
	// IndicatorFull means the lot was fully consumed.
	IndicatorFull Indicator = 1
	// IndicatorPartial means the lot was partially consumed.
	IndicatorPartial Indicator = 2
)

// AdjustmentRequest is one requested draw-down for an item.
//
// @Description Adjustment target for a single item
// @Example {"item_id": "A1", "target_quantity": 15}
type AdjustmentRequest struct {
	// ItemID identifies the item to adjust.
	ItemID string `json:"item_id" example:"A1"`
	// TargetQuantity is the quantity to draw down. Non-positive targets
	// allocate nothing.
	TargetQuantity float64 `json:"target_quantity" example:"15"`
}

// InventoryLot is one physical inventory row for an item.
//
// @Description One inventory lot (item, location, batch, on-hand quantity)
// @Example {"item_id": "A1", "location": "WH1", "batch_id": "B001", "on_hand_quantity": 5}
type InventoryLot struct {
	// ItemID identifies the item this lot belongs to.
	ItemID string `json:"item_id" example:"A1"`
	// Location is the stock location. May be blank.
	Location string `json:"location,omitempty" example:"WH1"`
	// BatchID is the batch identifier. May be blank.
	BatchID string `json:"batch_id,omitempty" example:"B001"`
	// OnHandQuantity is the physical quantity in this lot.
	OnHandQuantity float64 `json:"on_hand_quantity" example:"5"`
}

// AllocationRow is the allocation decision for a single inventory lot.
//
// @Description Per-lot allocation decision
// @Example {"item_id": "A1", "location": "WH1", "batch_id": "B001", "original_quantity": 5, "indicator": 1, "allocated_quantity": 5}
type AllocationRow struct {
	// ItemID identifies the item.
	ItemID string `json:"item_id" example:"A1"`
	// Location is the lot's stock location.
	Location string `json:"location,omitempty" example:"WH1"`
	// BatchID is the lot's batch identifier.
	BatchID string `json:"batch_id,omitempty" example:"B001"`
	// OriginalQuantity is the lot's on-hand quantity before allocation.
	OriginalQuantity float64 `json:"original_quantity" example:"5"`
	// Indicator is 0 (untouched), 1 (fully consumed) or 2 (partially consumed).
	Indicator Indicator `json:"indicator" example:"1"`
	// AllocatedQuantity is the quantity drawn from this lot.
	AllocatedQuantity float64 `json:"allocated_quantity" example:"5"`
}

// AllocationResult is the complete result of one allocation run.
//
// @Description Complete allocation result with total row count
type AllocationResult struct {
	// Rows holds one decision per inventory lot of every requested item,
	// in final presentation order.
	Rows []AllocationRow `json:"rows"`
	// TotalRows is the number of rows generated.
	TotalRows int `json:"total_rows" example:"6"`
}

// EmptyResult returns an AllocationResult with no rows.
func EmptyResult() AllocationResult {
	return AllocationResult{Rows: []AllocationRow{}, TotalRows: 0}
}
