package emulator

import (
	"fmt"
	"strings"

	"github.com/ezrec/mu0/cpu"
)

// DumpMemory renders the non-zero memory cells of a snapshot, one per line,
// as the two's-complement bit pattern alongside the decimal value.
func DumpMemory(mem *cpu.Memory) string {
	var sb strings.Builder
	for addr, value := range mem.Cells() {
		fmt.Fprintf(&sb, "  @0x%03x: 0x%03x (dec: %d)\n", uint16(addr), value.Bits(), int(value))
	}

	return sb.String()
}

// DumpState renders the program counter and accumulator of a snapshot.
func DumpState(st cpu.State) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "  Current PC value:  0x%03x\n", uint16(st.Pc))
	fmt.Fprintf(&sb, "  Current ACC value: 0x%03x (dec: %d)\n", st.Acc.Bits(), int(st.Acc))

	return sb.String()
}
