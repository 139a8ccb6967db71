package remotemem

import "github.com/farcall/remotemem/native"

// negotiateAddress runs the two-step base address policy shared by
// Allocate and Realloc: try the caller's preferred base first, and if the
// target OS refuses it, retry once letting the OS pick. A success on the
// retry is reported with relocated set so callers can surface the
// relocation notice. When the preferred base is already 0 there is
// nothing to fall back to and the first result stands.
func negotiateAddress(
	desired uintptr,
	tryAlloc func(address uintptr) (uintptr, native.Status, error),
) (address uintptr, relocated bool, status native.Status, err error) {
	address, status, err = tryAlloc(desired)
	if err == nil && status.Success() {
		return address, false, status, nil
	}

	if desired == 0 {
		return 0, false, status, err
	}

	address, status, err = tryAlloc(0)
	if err == nil && status.Success() {
		return address, true, status, nil
	}

	return 0, false, status, err
}
