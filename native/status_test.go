package native

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusSuccess(t *testing.T) {
	require.True(t, StatusSuccess.Success())
	require.True(t, StatusImageNotAtBase.Success(), "the relocation notice is informational, not an error")

	require.False(t, StatusPartialCopy.Success())
	require.False(t, StatusUnsuccessful.Success())
	require.False(t, StatusAccessDenied.Success())
	require.False(t, StatusNoMemory.Success())
}

func TestStatusString(t *testing.T) {
	require.Equal(t, "StatusSuccess", StatusSuccess.String())
	require.Equal(t, "StatusImageNotAtBase", StatusImageNotAtBase.String())
	require.Equal(t, "StatusAccessDenied", StatusAccessDenied.String())
	require.Equal(t, "Status(0xC0000005)", Status(0xC0000005).String())
}

func TestFreeModeString(t *testing.T) {
	require.Equal(t, "FreeRelease", FreeRelease.String())
	require.Equal(t, "FreeDecommit", FreeDecommit.String())
}
