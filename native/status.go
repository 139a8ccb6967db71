package native

import "fmt"

// Status is an NTSTATUS-style result code returned by the native memory
// primitives. The severity lives in the top two bits; success and
// informational codes report Success() == true, warning and error codes
// do not.
type Status uint32

const (
	// StatusSuccess indicates the operation completed normally.
	StatusSuccess Status = 0x00000000
	// StatusImageNotAtBase is the relocation notice: an allocation
	// succeeded, but not at the address the caller asked for.
	StatusImageNotAtBase Status = 0x40000003
	// StatusPartialCopy indicates only part of a requested transfer was
	// performed, typically a read across uncommitted pages.
	StatusPartialCopy Status = 0x8000000D

	StatusUnsuccessful         Status = 0xC0000001
	StatusInvalidParameter     Status = 0xC000000D
	StatusNoMemory             Status = 0xC0000017
	StatusConflictingAddresses Status = 0xC0000018
	StatusAccessDenied         Status = 0xC0000022
	StatusNotCommitted         Status = 0xC000002D
	StatusInvalidAddress       Status = 0xC0000141
)

// Success reports whether the status carries a success or informational
// severity, the NT_SUCCESS test.
func (s Status) Success() bool {
	return int32(s) >= 0
}

var statusMapping = make(map[Status]string)

func init() {
	statusMapping[StatusSuccess] = "StatusSuccess"
	statusMapping[StatusImageNotAtBase] = "StatusImageNotAtBase"
	statusMapping[StatusPartialCopy] = "StatusPartialCopy"
	statusMapping[StatusUnsuccessful] = "StatusUnsuccessful"
	statusMapping[StatusInvalidParameter] = "StatusInvalidParameter"
	statusMapping[StatusNoMemory] = "StatusNoMemory"
	statusMapping[StatusConflictingAddresses] = "StatusConflictingAddresses"
	statusMapping[StatusAccessDenied] = "StatusAccessDenied"
	statusMapping[StatusNotCommitted] = "StatusNotCommitted"
	statusMapping[StatusInvalidAddress] = "StatusInvalidAddress"
}

func (s Status) String() string {
	str, ok := statusMapping[s]
	if !ok {
		return fmt.Sprintf("Status(0x%08X)", uint32(s))
	}
	return str
}
