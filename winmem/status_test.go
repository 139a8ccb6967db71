package winmem

import (
	"testing"

	"github.com/farcall/remotemem/native"
	"github.com/stretchr/testify/require"
)

func TestStatusFromErrno(t *testing.T) {
	cases := []struct {
		errno    uintptr
		expected native.Status
	}{
		{errnoSuccess, native.StatusSuccess},
		{errnoAccessDenied, native.StatusAccessDenied},
		{errnoNotEnoughMemory, native.StatusNoMemory},
		{errnoOutOfMemory, native.StatusNoMemory},
		{errnoCommitmentLimit, native.StatusNoMemory},
		{errnoInvalidParam, native.StatusInvalidParameter},
		{errnoPartialCopy, native.StatusPartialCopy},
		{errnoInvalidAddress, native.StatusConflictingAddresses},
		{12345, native.StatusUnsuccessful},
	}

	for _, c := range cases {
		require.Equal(t, c.expected, statusFromErrno(c.errno))
	}
}
