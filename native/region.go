package native

import "fmt"

// PageSize is the allocation granularity assumed by partial frees. Sizes
// handed to the native free primitive are rounded up to this boundary.
const PageSize = 0x1000

// FreeMode selects how a region is returned to the system.
type FreeMode uint32

const (
	// FreeDecommit removes backing storage but keeps the address range
	// reserved.
	FreeDecommit FreeMode = 0x4000
	// FreeRelease returns the address range to the system entirely.
	FreeRelease FreeMode = 0x8000
)

func (m FreeMode) String() string {
	switch m {
	case FreeDecommit:
		return "FreeDecommit"
	case FreeRelease:
		return "FreeRelease"
	}

	return fmt.Sprintf("FreeMode(0x%X)", uint32(m))
}

// RegionState describes the commit state of a queried region.
type RegionState uint32

const (
	StateCommit  RegionState = 0x1000
	StateReserve RegionState = 0x2000
	StateFree    RegionState = 0x10000
)

func (s RegionState) String() string {
	switch s {
	case StateCommit:
		return "StateCommit"
	case StateReserve:
		return "StateReserve"
	case StateFree:
		return "StateFree"
	}

	return fmt.Sprintf("RegionState(0x%X)", uint32(s))
}

// RegionInfo is a snapshot of one region of a foreign address space, in
// the MEMORY_BASIC_INFORMATION shape.
type RegionInfo struct {
	BaseAddress       uintptr
	AllocationBase    uintptr
	AllocationProtect Protection
	RegionSize        uintptr
	State             RegionState
	Protect           Protection
	Type              uint32
}
