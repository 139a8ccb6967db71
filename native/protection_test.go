package native

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTranslateProtectionDEPEnabled(t *testing.T) {
	for _, prot := range []Protection{
		ProtNoAccess, ProtReadOnly, ProtReadWrite, ProtWriteCopy,
		ProtExecute, ProtExecuteRead, ProtExecuteReadWrite, ProtExecuteWriteCopy,
		ProtExecuteReadWrite | ProtGuard,
	} {
		require.Equal(t, prot, TranslateProtection(prot, true), prot.String())
	}
}

func TestTranslateProtectionDEPDisabled(t *testing.T) {
	cases := []struct {
		in       Protection
		expected Protection
	}{
		{ProtExecute, ProtReadOnly},
		{ProtExecuteRead, ProtReadOnly},
		{ProtExecuteReadWrite, ProtReadWrite},
		{ProtExecuteWriteCopy, ProtWriteCopy},
		{ProtReadOnly, ProtReadOnly},
		{ProtReadWrite, ProtReadWrite},
		{ProtNoAccess, ProtNoAccess},
		{ProtExecuteReadWrite | ProtGuard, ProtReadWrite | ProtGuard},
		{ProtExecuteRead | ProtNoCache, ProtReadOnly | ProtNoCache},
	}

	for _, c := range cases {
		require.Equal(t, c.expected, TranslateProtection(c.in, false), c.in.String())
	}
}

func TestProtectionPredicates(t *testing.T) {
	require.True(t, ProtExecuteRead.Executable())
	require.False(t, ProtReadWrite.Executable())
	require.True(t, ProtExecuteReadWrite.Writable())
	require.True(t, ProtWriteCopy.Writable())
	require.False(t, ProtReadOnly.Writable())
}

func TestProtectionString(t *testing.T) {
	require.Equal(t, "ProtReadWrite", ProtReadWrite.String())
	require.Equal(t, "ProtExecuteReadWrite|ProtGuard", (ProtExecuteReadWrite | ProtGuard).String())
	require.Equal(t, "Protection(0)", Protection(0).String())
}
