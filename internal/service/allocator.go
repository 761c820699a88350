package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/stockops/allocation-service/internal/domain/model"
)

const (
	// Epsilon is the numeric tolerance shared by every quantity comparison
	// in the greedy pass. Comparing against a single named tolerance keeps
	// the classification of "exhausted" and "fits fully" consistent when
	// float accumulation error creeps in.
	Epsilon = 1e-6

	// DefaultExclusionPattern marks production locations. The match is
	// case-insensitive and unanchored: any location whose upper-cased name
	// contains the pattern is excluded from allocation.
	DefaultExclusionPattern = "PRD"
)

// ErrInvariantViolation is returned when the greedy pass produces a result
// that breaks its own contract (e.g. a negative allocated quantity). It is
// a programming fault and must abort the run.
var ErrInvariantViolation = errors.New("allocation invariant violation")

// Allocator defines the interface for allocation operations.
type Allocator interface {
	// Allocate computes per-lot allocation decisions for every item that has
	// both an adjustment request and at least one inventory lot.
	Allocate(requests []model.AdjustmentRequest, lots []model.InventoryLot) (model.AllocationResult, error)
}

// Option configures an AllocatorService.
type Option func(*AllocatorService)

// AllocatorService implements Allocator using a smallest-first greedy pass.
//
// For each item the eligible lots are consumed in ascending quantity order,
// which maximizes the number of fully-closed lots for a fixed target: any
// larger lot consumed early would leave smaller lots only partially usable
// or unused.
type AllocatorService struct {
	exclusionPattern string
}

// NewAllocatorService creates a new AllocatorService with the given options.
func NewAllocatorService(opts ...Option) *AllocatorService {
	s := &AllocatorService{
		exclusionPattern: DefaultExclusionPattern,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithExclusionPattern overrides the location substring that marks a lot as
// excluded. An empty pattern is ignored.
func WithExclusionPattern(pattern string) Option {
	return func(s *AllocatorService) {
		if pattern != "" {
			s.exclusionPattern = strings.ToUpper(pattern)
		}
	}
}

// Allocate computes one AllocationRow per inventory lot of every requested
// item. Items with no matching lots are skipped; duplicate requests are
// honored first-seen-wins. The returned rows are in final presentation
// order: item ascending, indicator descending, original quantity ascending.
func (s *AllocatorService) Allocate(requests []model.AdjustmentRequest, lots []model.InventoryLot) (model.AllocationResult, error) {
	lotsByItem := groupLotsByItem(lots)

	rows := make([]model.AllocationRow, 0, len(lots))
	seen := make(map[string]bool, len(requests))

	for _, req := range requests {
		if seen[req.ItemID] {
			continue
		}
		seen[req.ItemID] = true

		itemLots, ok := lotsByItem[req.ItemID]
		if !ok {
			continue
		}

		excluded, eligible := s.partitionLots(itemLots)
		orderLots(eligible)
		rows = append(rows, allocateEligible(req.TargetQuantity, eligible)...)

		// Production lots are never allocated against, regardless of target.
		for _, lot := range excluded {
			rows = append(rows, model.AllocationRow{
				ItemID:            lot.ItemID,
				Location:          lot.Location,
				BatchID:           lot.BatchID,
				OriginalQuantity:  lot.OnHandQuantity,
				Indicator:         model.IndicatorNone,
				AllocatedQuantity: 0,
			})
		}
	}

	sortRows(rows)

	if err := checkInvariants(rows); err != nil {
		return model.EmptyResult(), err
	}

	return model.AllocationResult{Rows: rows, TotalRows: len(rows)}, nil
}

// groupLotsByItem builds the per-item lot index once up front, preserving
// input row order within each item.
func groupLotsByItem(lots []model.InventoryLot) map[string][]model.InventoryLot {
	grouped := make(map[string][]model.InventoryLot)
	for _, lot := range lots {
		grouped[lot.ItemID] = append(grouped[lot.ItemID], lot)
	}
	return grouped
}

// partitionLots splits an item's lots into excluded (production) and
// eligible sets. The partition is total and preserves input order within
// each subset.
func (s *AllocatorService) partitionLots(lots []model.InventoryLot) (excluded, eligible []model.InventoryLot) {
	for _, lot := range lots {
		if s.isExcluded(lot.Location) {
			excluded = append(excluded, lot)
		} else {
			eligible = append(eligible, lot)
		}
	}
	return excluded, eligible
}

// isExcluded reports whether a location is a production location. A blank
// location is never excluded.
func (s *AllocatorService) isExcluded(location string) bool {
	if location == "" {
		return false
	}
	return strings.Contains(strings.ToUpper(location), s.exclusionPattern)
}

// orderLots imposes the smallest-first allocation order. The sort is stable:
// lots with equal quantity keep their original relative order, so output is
// reproducible for identical input.
func orderLots(eligible []model.InventoryLot) {
	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].OnHandQuantity < eligible[j].OnHandQuantity
	})
}

// allocateEligible runs the greedy consumption loop over lots already in
// ascending-quantity order. At most one lot receives IndicatorPartial: the
// first one whose quantity exceeds the then-remaining target while the
// target is still positive.
func allocateEligible(target float64, eligible []model.InventoryLot) []model.AllocationRow {
	remaining := target
	if remaining < 0 {
		remaining = 0
	}

	rows := make([]model.AllocationRow, 0, len(eligible))
	for _, lot := range eligible {
		row := model.AllocationRow{
			ItemID:           lot.ItemID,
			Location:         lot.Location,
			BatchID:          lot.BatchID,
			OriginalQuantity: lot.OnHandQuantity,
		}

		switch {
		case remaining <= Epsilon:
			row.Indicator = model.IndicatorNone
			row.AllocatedQuantity = 0
		case lot.OnHandQuantity <= remaining+Epsilon:
			row.Indicator = model.IndicatorFull
			row.AllocatedQuantity = lot.OnHandQuantity
			remaining -= lot.OnHandQuantity
		default:
			row.Indicator = model.IndicatorPartial
			row.AllocatedQuantity = remaining
			remaining = 0
		}

		rows = append(rows, row)
	}

	return rows
}

// sortRows imposes the final presentation order: item ascending, indicator
// descending, original quantity ascending. The sort is stable, so applying
// it to already-sorted rows is a no-op.
func sortRows(rows []model.AllocationRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].ItemID != rows[j].ItemID {
			return rows[i].ItemID < rows[j].ItemID
		}
		if rows[i].Indicator != rows[j].Indicator {
			return rows[i].Indicator > rows[j].Indicator
		}
		return rows[i].OriginalQuantity < rows[j].OriginalQuantity
	})
}

// checkInvariants is a defensive pass over the finished result. A negative
// allocation can only come from a logic fault upstream and would corrupt
// downstream accounting, so it is fatal rather than silently dropped.
func checkInvariants(rows []model.AllocationRow) error {
	for _, row := range rows {
		if row.AllocatedQuantity < 0 {
			return fmt.Errorf("%w: negative allocated quantity %.6f for item %s",
				ErrInvariantViolation, row.AllocatedQuantity, row.ItemID)
		}
	}
	return nil
}
