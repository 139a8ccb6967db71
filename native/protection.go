package native

import (
	"fmt"
	"strings"
)

// Protection is a logical memory protection mask using the Win32 PAGE_*
// layout. Exactly one base protection bit should be set; the modifier
// bits may be or'd on top.
type Protection uint32

const (
	ProtNoAccess         Protection = 0x001
	ProtReadOnly         Protection = 0x002
	ProtReadWrite        Protection = 0x004
	ProtWriteCopy        Protection = 0x008
	ProtExecute          Protection = 0x010
	ProtExecuteRead      Protection = 0x020
	ProtExecuteReadWrite Protection = 0x040
	ProtExecuteWriteCopy Protection = 0x080

	// Modifier bits, valid in combination with a base protection.
	ProtGuard        Protection = 0x100
	ProtNoCache      Protection = 0x200
	ProtWriteCombine Protection = 0x400
)

const protBaseMask Protection = 0x0FF
const protModifierMask Protection = 0x700

// Executable reports whether the base protection permits execution.
func (p Protection) Executable() bool {
	return p&(ProtExecute|ProtExecuteRead|ProtExecuteReadWrite|ProtExecuteWriteCopy) != 0
}

// Writable reports whether the base protection permits ordinary writes.
func (p Protection) Writable() bool {
	return p&(ProtReadWrite|ProtWriteCopy|ProtExecuteReadWrite|ProtExecuteWriteCopy) != 0
}

var protectionMapping = make(map[Protection]string)

func init() {
	protectionMapping[ProtNoAccess] = "ProtNoAccess"
	protectionMapping[ProtReadOnly] = "ProtReadOnly"
	protectionMapping[ProtReadWrite] = "ProtReadWrite"
	protectionMapping[ProtWriteCopy] = "ProtWriteCopy"
	protectionMapping[ProtExecute] = "ProtExecute"
	protectionMapping[ProtExecuteRead] = "ProtExecuteRead"
	protectionMapping[ProtExecuteReadWrite] = "ProtExecuteReadWrite"
	protectionMapping[ProtExecuteWriteCopy] = "ProtExecuteWriteCopy"
	protectionMapping[ProtGuard] = "ProtGuard"
	protectionMapping[ProtNoCache] = "ProtNoCache"
	protectionMapping[ProtWriteCombine] = "ProtWriteCombine"
}

func (p Protection) String() string {
	if p == 0 {
		return "Protection(0)"
	}

	var sb strings.Builder
	for bit := Protection(1); bit <= ProtWriteCombine; bit <<= 1 {
		if p&bit == 0 {
			continue
		}

		if sb.Len() > 0 {
			sb.WriteString("|")
		}

		str, ok := protectionMapping[bit]
		if !ok {
			str = fmt.Sprintf("Protection(0x%X)", uint32(bit))
		}
		sb.WriteString(str)
	}

	return sb.String()
}

// TranslateProtection maps a logical protection request onto the value
// that should actually be handed to the native allocator, folding in the
// target process's DEP policy. With DEP enforced the request passes
// through untouched. Without DEP every page is implicitly executable, so
// the executable variants collapse onto their plain counterparts, which
// sidesteps allocators that reject executable protections outright.
func TranslateProtection(p Protection, depEnabled bool) Protection {
	if depEnabled {
		return p
	}

	modifiers := p & protModifierMask
	switch p & protBaseMask {
	case ProtExecute:
		return ProtReadOnly | modifiers
	case ProtExecuteRead:
		return ProtReadOnly | modifiers
	case ProtExecuteReadWrite:
		return ProtReadWrite | modifiers
	case ProtExecuteWriteCopy:
		return ProtWriteCopy | modifiers
	}

	return p
}
