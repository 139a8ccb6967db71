package memutils

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestAlignUp(t *testing.T) {
	require.Equal(t, uintptr(0), AlignUp(0, 0x1000))
	require.Equal(t, uintptr(0x1000), AlignUp(1, 0x1000))
	require.Equal(t, uintptr(0x1000), AlignUp(0x1000, 0x1000))
	require.Equal(t, uintptr(0x2000), AlignUp(0x1001, 0x1000))
	require.Equal(t, uintptr(16), AlignUp(9, 16))
}

func TestAlignDown(t *testing.T) {
	require.Equal(t, uintptr(0), AlignDown(0xFFF, 0x1000))
	require.Equal(t, uintptr(0x1000), AlignDown(0x1FFF, 0x1000))
	require.Equal(t, uintptr(0x1000), AlignDown(0x1000, 0x1000))
}

func TestCheckPow2(t *testing.T) {
	require.NoError(t, CheckPow2(uintptr(0x1000), "page size"))
	require.NoError(t, CheckPow2(uint(64), "alignment"))

	err := CheckPow2(uintptr(0x1001), "page size")
	require.Error(t, err)
	require.True(t, errors.Is(err, PowerOfTwoError))
}
