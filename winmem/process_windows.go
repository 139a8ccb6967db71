//go:build windows

package winmem

import (
	"context"
	"sync"
	"syscall"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/farcall/remotemem"
	"github.com/farcall/remotemem/memutils"
	"github.com/farcall/remotemem/native"
	"golang.org/x/exp/slog"
	"golang.org/x/sys/windows"
)

var (
	modkernel32             = windows.NewLazySystemDLL("kernel32.dll")
	procVirtualAllocEx      = modkernel32.NewProc("VirtualAllocEx")
	procVirtualFreeEx       = modkernel32.NewProc("VirtualFreeEx")
	procGetProcessDEPPolicy = modkernel32.NewProc("GetProcessDEPPolicy")
)

const processDEPEnable = 0x00000001

// Process is a remotemem.Accessor bound to one target process. It may be
// shared between any number of blocks; the region cache behind Query is
// internally synchronized.
type Process struct {
	pid    uint32
	handle windows.Handle
	dep    bool
	logger *slog.Logger

	// Query snapshots keyed by page base, flushed whenever a mutating
	// primitive could change the region layout.
	regionsMutex sync.Mutex
	regions      *swiss.Map[uintptr, native.RegionInfo]
}

var _ remotemem.Accessor = (*Process)(nil)

// OpenProcess opens pid with the access rights the memory primitives
// need. The returned Process must be closed when no longer needed;
// blocks referencing it must not outlive it.
func OpenProcess(pid uint32, opts ...Option) (*Process, error) {
	cfg := processConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	access := uint32(windows.PROCESS_QUERY_INFORMATION |
		windows.PROCESS_VM_OPERATION |
		windows.PROCESS_VM_READ |
		windows.PROCESS_VM_WRITE)

	handle, err := windows.OpenProcess(access, false, pid)
	if err != nil {
		return nil, errors.Wrapf(err, "opening process %d", pid)
	}

	return &Process{
		pid:     pid,
		handle:  handle,
		dep:     queryDEPPolicy(handle),
		logger:  cfg.logger,
		regions: swiss.NewMap[uintptr, native.RegionInfo](64),
	}, nil
}

// Close releases the process handle. Primitives called afterwards fail
// with ErrProcessClosed.
func (p *Process) Close() error {
	if p.handle == 0 {
		return nil
	}

	err := windows.CloseHandle(p.handle)
	p.handle = 0
	if err != nil {
		return errors.Wrapf(err, "closing handle for process %d", p.pid)
	}

	return nil
}

func (p *Process) ProcessID() uint32 {
	return p.pid
}

func (p *Process) DEPEnabled() bool {
	return p.dep
}

// queryDEPPolicy resolves the target's DEP stance. GetProcessDEPPolicy
// only works against 32-bit processes; for everything else DEP is
// permanently on, which is also the safe answer when the call fails.
func queryDEPPolicy(handle windows.Handle) bool {
	var flags uint32
	var permanent int32

	ret, _, _ := procGetProcessDEPPolicy.Call(
		uintptr(handle),
		uintptr(unsafe.Pointer(&flags)),
		uintptr(unsafe.Pointer(&permanent)))
	if ret == 0 {
		return true
	}

	return flags&processDEPEnable != 0
}

func (p *Process) Query(address uintptr) (native.RegionInfo, native.Status, error) {
	if p.handle == 0 {
		return native.RegionInfo{}, native.StatusUnsuccessful, ErrProcessClosed
	}

	key := memutils.AlignDown(address, native.PageSize)

	p.regionsMutex.Lock()
	if info, ok := p.regions.Get(key); ok {
		p.regionsMutex.Unlock()
		return info, native.StatusSuccess, nil
	}
	p.regionsMutex.Unlock()

	var mbi windows.MemoryBasicInformation
	err := windows.VirtualQueryEx(p.handle, address, &mbi, unsafe.Sizeof(mbi))
	if err != nil {
		status := statusFromError(err)
		return native.RegionInfo{}, status, errors.Wrapf(err, "querying region at 0x%X in process %d", address, p.pid)
	}

	info := native.RegionInfo{
		BaseAddress:       mbi.BaseAddress,
		AllocationBase:    mbi.AllocationBase,
		AllocationProtect: native.Protection(mbi.AllocationProtect),
		RegionSize:        mbi.RegionSize,
		State:             native.RegionState(mbi.State),
		Protect:           native.Protection(mbi.Protect),
		Type:              mbi.Type,
	}

	p.regionsMutex.Lock()
	p.regions.Put(key, info)
	p.regionsMutex.Unlock()

	return info, native.StatusSuccess, nil
}

func (p *Process) Allocate(address uintptr, size uintptr, prot native.Protection) (uintptr, native.Status, error) {
	if p.handle == 0 {
		return 0, native.StatusUnsuccessful, ErrProcessClosed
	}

	base, _, callErr := procVirtualAllocEx.Call(
		uintptr(p.handle),
		address,
		size,
		uintptr(windows.MEM_RESERVE|windows.MEM_COMMIT),
		uintptr(prot))
	if base == 0 {
		status := statusFromError(callErr)
		return 0, status, errors.Wrapf(callErr, "allocating %d bytes at 0x%X in process %d", size, address, p.pid)
	}

	p.flushRegions()
	return base, native.StatusSuccess, nil
}

func (p *Process) Protect(address uintptr, size uintptr, prot native.Protection) (native.Protection, native.Status, error) {
	if p.handle == 0 {
		return 0, native.StatusUnsuccessful, ErrProcessClosed
	}

	var oldProtect uint32
	err := windows.VirtualProtectEx(p.handle, address, size, uint32(prot), &oldProtect)
	if err != nil {
		status := statusFromError(err)
		return 0, status, errors.Wrapf(err, "protecting %d bytes at 0x%X in process %d", size, address, p.pid)
	}

	p.flushRegions()
	return native.Protection(oldProtect), native.StatusSuccess, nil
}

func (p *Process) Free(address uintptr, size uintptr, mode native.FreeMode) (native.Status, error) {
	if p.handle == 0 {
		return native.StatusUnsuccessful, ErrProcessClosed
	}

	ret, _, callErr := procVirtualFreeEx.Call(
		uintptr(p.handle),
		address,
		size,
		uintptr(mode))
	if ret == 0 {
		status := statusFromError(callErr)
		return status, errors.Wrapf(callErr, "freeing %d bytes at 0x%X in process %d with %s", size, address, p.pid, mode)
	}

	p.flushRegions()
	return native.StatusSuccess, nil
}

func (p *Process) Read(address uintptr, buffer []byte, handleHoles bool) (native.Status, error) {
	if p.handle == 0 {
		return native.StatusUnsuccessful, ErrProcessClosed
	}
	if len(buffer) == 0 {
		return native.StatusSuccess, nil
	}

	if !handleHoles {
		var done uintptr
		err := windows.ReadProcessMemory(p.handle, address, &buffer[0], uintptr(len(buffer)), &done)
		if err != nil {
			status := statusFromError(err)
			return status, errors.Wrapf(err, "reading %d bytes at 0x%X in process %d", len(buffer), address, p.pid)
		}

		return native.StatusSuccess, nil
	}

	return p.readCommitted(address, buffer)
}

// readCommitted reads every committed, accessible sub-range of the
// request and zero-fills the rest. Gaps are tolerated, so the call
// succeeds as long as the region layout itself can be walked.
func (p *Process) readCommitted(address uintptr, buffer []byte) (native.Status, error) {
	for i := range buffer {
		buffer[i] = 0
	}

	end := address + uintptr(len(buffer))
	holes := 0

	for at := address; at < end; {
		info, status, err := p.Query(at)
		if err != nil {
			return status, errors.Wrapf(err, "walking regions for read at 0x%X in process %d", at, p.pid)
		}

		chunkEnd := info.BaseAddress + info.RegionSize
		if chunkEnd > end {
			chunkEnd = end
		}

		if readableRegion(info) {
			var done uintptr
			err = windows.ReadProcessMemory(p.handle, at, &buffer[at-address], chunkEnd-at, &done)
			if err != nil {
				holes++
			}
		} else {
			holes++
		}

		at = chunkEnd
	}

	if holes > 0 {
		p.logger.LogAttrs(context.Background(), slog.LevelDebug,
			"zero-filled uncommitted ranges during read",
			slog.Uint64("address", uint64(address)),
			slog.Int("size", len(buffer)),
			slog.Int("holes", holes))
	}

	return native.StatusSuccess, nil
}

func readableRegion(info native.RegionInfo) bool {
	if info.State != native.StateCommit {
		return false
	}

	return info.Protect&(native.ProtNoAccess|native.ProtGuard) == 0
}

func (p *Process) Write(address uintptr, data []byte) (native.Status, error) {
	if p.handle == 0 {
		return native.StatusUnsuccessful, ErrProcessClosed
	}
	if len(data) == 0 {
		return native.StatusSuccess, nil
	}

	var done uintptr
	err := windows.WriteProcessMemory(p.handle, address, &data[0], uintptr(len(data)), &done)
	if err != nil {
		status := statusFromError(err)
		return status, errors.Wrapf(err, "writing %d bytes at 0x%X in process %d", len(data), address, p.pid)
	}

	return native.StatusSuccess, nil
}

func (p *Process) flushRegions() {
	p.regionsMutex.Lock()
	p.regions = swiss.NewMap[uintptr, native.RegionInfo](64)
	p.regionsMutex.Unlock()
}

func statusFromError(err error) native.Status {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return statusFromErrno(uintptr(errno))
	}

	return native.StatusUnsuccessful
}
