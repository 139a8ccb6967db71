package remotemem

import (
	"github.com/farcall/remotemem/native"
)

// Accessor performs primitive memory operations against a single target
// process. Implementations wrap whatever user-mode API the platform
// offers for manipulating another process's address space. An Accessor
// may be shared by any number of blocks; synchronizing its internals is
// the implementation's responsibility.
type Accessor interface {
	// Query retrieves a snapshot of the region containing address.
	Query(address uintptr) (native.RegionInfo, native.Status, error)
	// Allocate commits size bytes at the given address with the given
	// protection and returns the base of the committed region. An address
	// of 0 lets the target OS choose the base. The protection passed here
	// is the concrete native value to request, already translated.
	Allocate(address uintptr, size uintptr, prot native.Protection) (uintptr, native.Status, error)
	// Protect changes the protection of size bytes at address and returns
	// the protection the range had before the call.
	Protect(address uintptr, size uintptr, prot native.Protection) (native.Protection, native.Status, error)
	// Free decommits or releases size bytes at address depending on mode.
	// A size of 0 with FreeRelease returns the whole region to the system.
	Free(address uintptr, size uintptr, mode native.FreeMode) (native.Status, error)
	// Read copies len(buffer) bytes at address out of the target process.
	// When handleHoles is set the implementation reads every committed
	// page in the range and tolerates uncommitted gaps; otherwise a single
	// uncommitted page fails the whole call. How a tolerated gap is
	// surfaced in the buffer is implementation-defined.
	Read(address uintptr, buffer []byte, handleHoles bool) (native.Status, error)
	// Write copies data into the target process at address. There is no
	// partial-write tolerance.
	Write(address uintptr, data []byte) (native.Status, error)

	// DEPEnabled reports whether the target process enforces DEP.
	DEPEnabled() bool
	// ProcessID identifies the target process.
	ProcessID() uint32
}

// PrivilegedChannel mirrors the mutating half of Accessor but routes
// through a privileged driver path. It services blocks backed by physical
// memory, which ordinary user-mode APIs cannot manage. The channel is
// process-agnostic, so every call carries the target pid.
type PrivilegedChannel interface {
	ProtectMemory(pid uint32, address uintptr, size uintptr, prot native.Protection) (native.Status, error)
	FreeMemory(pid uint32, address uintptr, size uintptr, mode native.FreeMode) (native.Status, error)
}

// ProtectionTranslator maps a logical protection request plus the target
// process's DEP policy onto the concrete native protection to ask for.
type ProtectionTranslator func(prot native.Protection, depEnabled bool) native.Protection
