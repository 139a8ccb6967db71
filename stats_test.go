package remotemem

import (
	"encoding/json"
	"testing"

	"github.com/farcall/remotemem/mocks"
	"github.com/farcall/remotemem/native"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBuildStatsString(t *testing.T) {
	_, mem := readyAccessor(t)
	block := NewBlock(mem, 0x100000, 0x2000, native.ProtReadWrite, true, WithLogger(testLogger()))

	mem.EXPECT().
		Query(uintptr(0x100000)).
		Return(native.RegionInfo{
			BaseAddress:       0x100000,
			AllocationBase:    0x100000,
			AllocationProtect: native.ProtReadWrite,
			RegionSize:        0x2000,
			State:             native.StateCommit,
			Protect:           native.ProtReadWrite,
		}, native.StatusSuccess, nil)

	stats := block.BuildStatsString()

	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(stats), &parsed))

	require.Equal(t, "0x100000", parsed["Address"])
	require.Equal(t, float64(0x2000), parsed["Size"])
	require.Equal(t, "ProtReadWrite", parsed["Protection"])
	require.Equal(t, true, parsed["Owned"])
	require.Equal(t, "BackingVirtual", parsed["Backing"])

	region, ok := parsed["Region"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "StateCommit", region["State"])
	require.Equal(t, float64(0x2000), region["RegionSize"])
}

func TestBuildStatsStringEmptyBlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	mem := mocks.NewMockAccessor(ctrl)
	mem.EXPECT().ProcessID().Return(uint32(1234)).AnyTimes()

	block := NewBlock(mem, 0, 0, 0, false, WithLogger(testLogger()))
	stats := block.BuildStatsString()

	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(stats), &parsed))

	require.Equal(t, "0x0", parsed["Address"])
	require.NotContains(t, parsed, "Region")
}
