package remotemem

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/farcall/remotemem/native"
	"github.com/stretchr/testify/require"
)

func TestNegotiateAddressPreferredSucceeds(t *testing.T) {
	var attempts []uintptr
	address, relocated, status, err := negotiateAddress(0x1000, func(at uintptr) (uintptr, native.Status, error) {
		attempts = append(attempts, at)
		return at, native.StatusSuccess, nil
	})

	require.NoError(t, err)
	require.False(t, relocated)
	require.Equal(t, native.StatusSuccess, status)
	require.Equal(t, uintptr(0x1000), address)
	require.Equal(t, []uintptr{0x1000}, attempts)
}

func TestNegotiateAddressFallsBack(t *testing.T) {
	var attempts []uintptr
	address, relocated, status, err := negotiateAddress(0x1000, func(at uintptr) (uintptr, native.Status, error) {
		attempts = append(attempts, at)
		if at != 0 {
			return 0, native.StatusConflictingAddresses, errors.New("address in use")
		}
		return 0x50000, native.StatusSuccess, nil
	})

	require.NoError(t, err)
	require.True(t, relocated)
	require.Equal(t, native.StatusSuccess, status)
	require.Equal(t, uintptr(0x50000), address)
	require.Equal(t, []uintptr{0x1000, 0}, attempts)
}

func TestNegotiateAddressBothFail(t *testing.T) {
	var attempts []uintptr
	address, relocated, status, err := negotiateAddress(0x1000, func(at uintptr) (uintptr, native.Status, error) {
		attempts = append(attempts, at)
		return 0, native.StatusNoMemory, errors.New("commit limit reached")
	})

	require.Error(t, err)
	require.False(t, relocated)
	require.Equal(t, native.StatusNoMemory, status)
	require.Equal(t, uintptr(0), address)
	require.Equal(t, []uintptr{0x1000, 0}, attempts)
}

func TestNegotiateAddressNoPreferenceDoesNotRetry(t *testing.T) {
	var attempts []uintptr
	_, relocated, status, err := negotiateAddress(0, func(at uintptr) (uintptr, native.Status, error) {
		attempts = append(attempts, at)
		return 0, native.StatusNoMemory, errors.New("commit limit reached")
	})

	require.Error(t, err)
	require.False(t, relocated)
	require.Equal(t, native.StatusNoMemory, status)
	require.Equal(t, []uintptr{0}, attempts)
}
