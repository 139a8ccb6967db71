package remotemem

import (
	"fmt"

	"github.com/farcall/remotemem/native"
)

// Backing identifies which collaborator services a block's mutating
// operations. It is fixed when the block is constructed and never changes
// for the life of the handle.
type Backing uint32

const (
	// BackingVirtual routes operations through the block's Accessor.
	BackingVirtual Backing = iota
	// BackingPhysical routes protect and free through a PrivilegedChannel.
	BackingPhysical
)

var backingMapping = make(map[Backing]string)

func init() {
	backingMapping[BackingVirtual] = "BackingVirtual"
	backingMapping[BackingPhysical] = "BackingPhysical"
}

func (b Backing) String() string {
	str, ok := backingMapping[b]
	if !ok {
		return fmt.Sprintf("Backing(%d)", uint32(b))
	}
	return str
}

// backing is the capability a Block dispatches protect and free through.
// It is resolved once at construction.
type backing interface {
	Kind() Backing
	Protect(address uintptr, size uintptr, prot native.Protection) (native.Protection, native.Status, error)
	Free(address uintptr, size uintptr, mode native.FreeMode) (native.Status, error)
}

type virtualBacking struct {
	mem Accessor
}

func (v virtualBacking) Kind() Backing {
	return BackingVirtual
}

func (v virtualBacking) Protect(address uintptr, size uintptr, prot native.Protection) (native.Protection, native.Status, error) {
	return v.mem.Protect(address, size, prot)
}

func (v virtualBacking) Free(address uintptr, size uintptr, mode native.FreeMode) (native.Status, error) {
	return v.mem.Free(address, size, mode)
}

type physicalBacking struct {
	channel PrivilegedChannel
	pid     uint32
}

func (p physicalBacking) Kind() Backing {
	return BackingPhysical
}

// The driver path does not report the previous protection, so callers
// always see 0 there.
func (p physicalBacking) Protect(address uintptr, size uintptr, prot native.Protection) (native.Protection, native.Status, error) {
	status, err := p.channel.ProtectMemory(p.pid, address, size, prot)
	return 0, status, err
}

func (p physicalBacking) Free(address uintptr, size uintptr, mode native.FreeMode) (native.Status, error) {
	return p.channel.FreeMemory(p.pid, address, size, mode)
}
