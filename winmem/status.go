// Package winmem implements remotemem.Accessor for Windows targets on
// top of the user-mode virtual memory APIs.
package winmem

import (
	"github.com/cockroachdb/errors"
	"github.com/farcall/remotemem/native"
	"golang.org/x/exp/slog"
)

// Win32 error codes surfaced by the kernel32 memory APIs. Kept as plain
// values so the status mapping stays portable and testable off-Windows.
const (
	errnoSuccess         uintptr = 0
	errnoAccessDenied    uintptr = 5
	errnoNotEnoughMemory uintptr = 8
	errnoOutOfMemory     uintptr = 14
	errnoInvalidParam    uintptr = 87
	errnoPartialCopy     uintptr = 299
	errnoInvalidAddress  uintptr = 487
	errnoCommitmentLimit uintptr = 1455
)

// statusFromErrno folds a Win32 error code back into the NTSTATUS-shaped
// taxonomy the core reports. The mapping is lossy in the unknown case,
// which collapses onto StatusUnsuccessful.
func statusFromErrno(errno uintptr) native.Status {
	switch errno {
	case errnoSuccess:
		return native.StatusSuccess
	case errnoAccessDenied:
		return native.StatusAccessDenied
	case errnoNotEnoughMemory, errnoOutOfMemory, errnoCommitmentLimit:
		return native.StatusNoMemory
	case errnoInvalidParam:
		return native.StatusInvalidParameter
	case errnoPartialCopy:
		return native.StatusPartialCopy
	case errnoInvalidAddress:
		return native.StatusConflictingAddresses
	}

	return native.StatusUnsuccessful
}

type processConfig struct {
	logger *slog.Logger
}

// Option adjusts how a Process is opened.
type Option func(cfg *processConfig)

// WithLogger attaches a logger used for diagnostics such as region cache
// churn. Defaults to slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *processConfig) {
		cfg.logger = logger
	}
}

// ErrProcessClosed is returned when a primitive is invoked on a Process
// whose handle has already been closed.
var ErrProcessClosed = errors.New("process handle is closed")
