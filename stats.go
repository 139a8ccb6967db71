package remotemem

import (
	"fmt"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

// PrintBlockJSON writes the block's descriptor into writer as a JSON
// object. For a valid block the accessor's live view of the containing
// region is included alongside the descriptor, which makes stale
// snapshots visible when debugging.
func (b *Block) PrintBlockJSON(writer *jwriter.Writer) {
	obj := writer.Object()
	defer obj.End()

	obj.Name("Address").String(fmt.Sprintf("0x%X", uint64(b.address)))
	obj.Name("Size").Int(int(b.size))
	obj.Name("Protection").String(b.protection.String())
	obj.Name("Owned").Bool(b.owns)
	obj.Name("Backing").String(b.Backing().String())
	obj.Name("LastStatus").String(b.lastStatus.String())

	if !b.Valid() || b.mem == nil {
		return
	}

	info, status, err := b.mem.Query(b.address)
	if err != nil || !status.Success() {
		obj.Name("Region").String(fmt.Sprintf("query failed: %s", status))
		return
	}

	regionObj := obj.Name("Region").Object()
	regionObj.Name("BaseAddress").String(fmt.Sprintf("0x%X", uint64(info.BaseAddress)))
	regionObj.Name("AllocationBase").String(fmt.Sprintf("0x%X", uint64(info.AllocationBase)))
	regionObj.Name("RegionSize").Int(int(info.RegionSize))
	regionObj.Name("State").String(info.State.String())
	regionObj.Name("Protect").String(info.Protect.String())
	regionObj.Name("AllocationProtect").String(info.AllocationProtect.String())
	regionObj.End()
}

// BuildStatsString returns the PrintBlockJSON output as a string.
func (b *Block) BuildStatsString() string {
	writer := jwriter.NewWriter()
	b.PrintBlockJSON(&writer)

	return string(writer.Bytes())
}
