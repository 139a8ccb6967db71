package remotemem

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/farcall/remotemem/memutils"
	"github.com/farcall/remotemem/native"
	"golang.org/x/exp/slog"
)

// Block is a handle to a contiguous region of memory inside a foreign
// process's address space. An address of 0 marks the empty handle, which
// holds no memory and is the zero value of the type.
//
// A Block is not safe for concurrent mutation; callers sharing one across
// goroutines must synchronize externally. The Accessor behind it may be
// shared freely between blocks.
type Block struct {
	mem       Accessor
	backing   backing
	translate ProtectionTranslator
	logger    *slog.Logger

	address    uintptr
	size       uintptr
	protection native.Protection
	owns       bool
	lastStatus native.Status
}

func newBlock(mem Accessor, opts []Option) *Block {
	cfg := blockConfig{
		logger:    slog.Default(),
		translate: native.TranslateProtection,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	b := &Block{
		mem:       mem,
		translate: cfg.translate,
		logger:    cfg.logger,
	}

	if cfg.channel != nil {
		b.backing = physicalBacking{channel: cfg.channel, pid: mem.ProcessID()}
	} else {
		b.backing = virtualBacking{mem: mem}
	}

	return b
}

// Allocate commits a new region of size bytes in the target process and
// returns an owning handle to it. The region is requested at desired
// first; if the target OS refuses that base the allocation is retried
// once at an OS-chosen address, and the returned status (and LastStatus)
// is native.StatusImageNotAtBase so callers can observe the relocation.
// Callers must not assume the block's address matches desired.
//
// If both attempts fail the returned block is invalid (Address() == 0),
// the failing status is recorded, and a non-nil error is returned.
func Allocate(mem Accessor, size uintptr, desired uintptr, prot native.Protection, opts ...Option) (*Block, native.Status, error) {
	b := newBlock(mem, opts)
	nativeProt := b.translate(prot, mem.DEPEnabled())

	address, relocated, status, err := negotiateAddress(desired, func(at uintptr) (uintptr, native.Status, error) {
		return mem.Allocate(at, size, nativeProt)
	})
	if err != nil {
		b.lastStatus = status
		return b, status, errors.Wrapf(err, "allocating %d bytes in process %d failed with %s", size, mem.ProcessID(), status)
	}

	b.address = address
	b.size = size
	b.protection = prot
	b.owns = true

	if relocated {
		status = native.StatusImageNotAtBase
	}
	b.lastStatus = status

	return b, status, nil
}

// OpenBlock wraps an already-allocated region at address, taking the
// region's current size and protection as a snapshot from the accessor.
// The snapshot is not re-verified afterwards. Ownership is the caller's
// choice: an owning handle releases the region on Close, a non-owning one
// leaves it intact.
func OpenBlock(mem Accessor, address uintptr, owns bool, opts ...Option) (*Block, error) {
	b := newBlock(mem, opts)

	info, status, err := mem.Query(address)
	if err != nil {
		return nil, errors.Wrapf(err, "querying region at 0x%X in process %d failed with %s", address, mem.ProcessID(), status)
	}

	b.address = address
	b.size = info.RegionSize
	b.protection = info.Protect
	b.owns = owns
	b.lastStatus = status

	return b, nil
}

// NewBlock wraps a region whose descriptor the caller already knows,
// without querying the accessor.
func NewBlock(mem Accessor, address uintptr, size uintptr, prot native.Protection, owns bool, opts ...Option) *Block {
	b := newBlock(mem, opts)

	b.address = address
	b.size = size
	b.protection = prot
	b.owns = owns

	return b
}

// Realloc replaces the held region with a fresh allocation of size bytes,
// following the same desired-base retry policy as Allocate. On success
// the previous region is fully released first and the block adopts the
// new address, size, and protection; the new base is returned. On failure
// the block's existing state is left untouched, 0 is returned, and the
// failing status is recorded.
func (b *Block) Realloc(size uintptr, desired uintptr, prot native.Protection) (uintptr, native.Status, error) {
	nativeProt := b.translate(prot, b.mem.DEPEnabled())

	address, relocated, status, err := negotiateAddress(desired, func(at uintptr) (uintptr, native.Status, error) {
		return b.mem.Allocate(at, size, nativeProt)
	})
	if err != nil {
		b.lastStatus = status
		return 0, status, errors.Wrapf(err, "reallocating %d bytes failed with %s", size, status)
	}

	if freeStatus, freeErr := b.Free(0); freeErr != nil {
		b.logger.LogAttrs(context.Background(), slog.LevelWarn,
			"failed to release previous region during realloc",
			slog.Uint64("address", uint64(b.address)),
			slog.String("status", freeStatus.String()),
			slog.Any("error", freeErr))
	}

	b.address = address
	b.size = size
	b.protection = prot

	if relocated {
		status = native.StatusImageNotAtBase
	}
	b.lastStatus = status

	return address, status, nil
}

// Protect changes the protection of a sub-range of the block, translated
// through the block's protection translator. A size of 0 means the whole
// block. When oldProt is non-nil it receives the protection the range had
// before the call, if the backing reports one.
//
// The block's own Protection() is a whole-block hint: it is only updated
// when the call covers the entire block. Callers that need page-granular
// tracking must query the accessor separately.
func (b *Block) Protect(prot native.Protection, offset uintptr, size uintptr, oldProt *native.Protection) (native.Status, error) {
	nativeProt := b.translate(prot, b.mem.DEPEnabled())

	wholeBlock := offset == 0 && (size == 0 || size >= b.size)
	if size == 0 {
		size = b.size
	}

	old, status, err := b.backing.Protect(b.address+offset, size, nativeProt)
	b.lastStatus = status
	if err != nil {
		return status, errors.Wrapf(err, "protecting %d bytes at 0x%X failed with %s", size, b.address+offset, status)
	}

	if oldProt != nil {
		*oldProt = old
	}
	if wholeBlock {
		b.protection = prot
	}

	return status, nil
}

// Free releases memory from the front of the block. The size is rounded
// up to the allocation granularity first.
//
// With size 0 the entire region is released back to the system and the
// handle becomes empty. With a positive size only the leading window is
// decommitted and the handle shrinks to describe the remaining tail:
// the address advances and the size decreases by the rounded amount.
// Repeated partial frees walk the block forward until it is empty.
//
// Freeing an already-empty block is a successful no-op. On failure the
// descriptor is left unmodified and the status is recorded.
func (b *Block) Free(size uintptr) (native.Status, error) {
	if b.address == 0 {
		return native.StatusSuccess, nil
	}

	size = memutils.AlignUp(size, native.PageSize)

	mode := native.FreeRelease
	if size != 0 {
		mode = native.FreeDecommit
	}

	status, err := b.backing.Free(b.address, size, mode)
	b.lastStatus = status
	if err != nil {
		return status, errors.Wrapf(err, "freeing %d bytes at 0x%X failed with %s", size, b.address, status)
	}

	if size == 0 || size >= b.size {
		b.address = 0
		b.size = 0
		b.protection = 0
	} else {
		b.address += size
		b.size -= size
	}

	return status, nil
}

// Read copies len(buffer) bytes out of the block starting at offset.
// When handleHoles is set the accessor reads every committed page in the
// range and tolerates uncommitted gaps; otherwise the whole range must be
// committed or the call fails. Gap handling beyond that is the accessor's
// policy; the block only forwards the flag.
func (b *Block) Read(offset uintptr, buffer []byte, handleHoles bool) (native.Status, error) {
	status, err := b.mem.Read(b.address+offset, buffer, handleHoles)
	b.lastStatus = status
	if err != nil {
		return status, errors.Wrapf(err, "reading %d bytes at 0x%X failed with %s", len(buffer), b.address+offset, status)
	}

	return status, nil
}

// Write copies data into the block starting at offset. A write touching
// an unmapped page fails wholesale.
func (b *Block) Write(offset uintptr, data []byte) (native.Status, error) {
	status, err := b.mem.Write(b.address+offset, data)
	b.lastStatus = status
	if err != nil {
		return status, errors.Wrapf(err, "writing %d bytes at 0x%X failed with %s", len(data), b.address+offset, status)
	}

	return status, nil
}

// Reset releases the region regardless of ownership, clears the handle to
// the empty state, and disowns it. A failed release is logged and
// swallowed; the handle is cleared either way.
func (b *Block) Reset() {
	if b.address != 0 {
		if status, err := b.Free(0); err != nil {
			b.logger.LogAttrs(context.Background(), slog.LevelWarn,
				"failed to release remote memory block during reset",
				slog.Uint64("address", uint64(b.address)),
				slog.String("status", status.String()),
				slog.Any("error", err))
		}
	}

	b.address = 0
	b.size = 0
	b.protection = 0
	b.owns = false
}

// Close releases the region if and only if this handle owns it, making
// the handle empty. Closing a non-owning or already-empty handle is a
// no-op. Close is the owning handle's end-of-scope hook and should be
// deferred right after a successful Allocate.
func (b *Block) Close() error {
	if !b.owns || b.address == 0 {
		return nil
	}

	status, err := b.Free(0)
	if err != nil {
		b.logger.LogAttrs(context.Background(), slog.LevelError,
			"failed to release owned remote memory block",
			slog.Uint64("address", uint64(b.address)),
			slog.Uint64("size", uint64(b.size)),
			slog.String("status", status.String()),
			slog.Any("error", err))
		return err
	}

	return nil
}

// Disown marks the handle as non-owning without touching the memory,
// leaving release responsibility with someone else.
func (b *Block) Disown() {
	b.owns = false
}

// Valid reports whether the handle currently describes memory.
func (b *Block) Valid() bool {
	return b.address != 0
}

// Address returns the base of the described region, 0 when empty.
func (b *Block) Address() uintptr {
	return b.address
}

// Size returns the length in bytes of the described region.
func (b *Block) Size() uintptr {
	return b.size
}

// Protection returns the last-known whole-block protection.
func (b *Block) Protection() native.Protection {
	return b.protection
}

// Owns reports whether Close will release the region.
func (b *Block) Owns() bool {
	return b.owns
}

// Backing reports which collaborator services this block's mutating
// operations.
func (b *Block) Backing() Backing {
	if b.backing == nil {
		return BackingVirtual
	}
	return b.backing.Kind()
}

// LastStatus returns the status recorded by the most recent native call
// made through this block. This is where soft conditions such as the
// relocation notice surface.
func (b *Block) LastStatus() native.Status {
	return b.lastStatus
}
