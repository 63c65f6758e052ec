package sim

import "fmt"

// CellStateKind enumerates the logical occupancy of a page.
type CellStateKind int

const (
	// StateEmpty means the page is erased and may be programmed.
	StateEmpty CellStateKind = iota
	// StateSet means the page holds live data written at a known density.
	StateSet
	// StateResetPending means the page data is stale and waits for its block to be erased.
	StateResetPending
)

// CellState is the logical occupancy metadata of a page, tracked apart from the analog
// levels the device stores. CellType is meaningful only when Kind is StateSet.
type CellState struct {
	Kind     CellStateKind
	CellType CellType
}

// EmptyState returns the state of an erased page.
func EmptyState() CellState {
	return CellState{Kind: StateEmpty}
}

// SetState returns the state of a page programmed at density ct.
func SetState(ct CellType) CellState {
	return CellState{Kind: StateSet, CellType: ct}
}

// ResetPendingState returns the state of a page awaiting erase.
func ResetPendingState() CellState {
	return CellState{Kind: StateResetPending}
}

func (s CellState) String() string {
	switch s.Kind {
	case StateEmpty:
		return "empty"
	case StateSet:
		return fmt.Sprintf("set(%s)", s.CellType)
	case StateResetPending:
		return "reset-pending"
	}
	return "unknown"
}
