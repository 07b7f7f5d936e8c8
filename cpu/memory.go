package cpu

import (
	"iter"
)

// Memory is the flat store of MemSize cells, zero-initialized. Data
// directives populate it during assembly; STORE mutates it during execution.
type Memory [MemSize]Value

// Load reads the cell at addr.
func (mem *Memory) Load(addr MemAddr) Value {
	return mem[addr]
}

// Store writes the cell at addr.
func (mem *Memory) Store(addr MemAddr, value Value) {
	mem[addr] = value
}

// Cells yields the non-zero cells in address order.
func (mem *Memory) Cells() iter.Seq2[MemAddr, Value] {
	return func(yield func(addr MemAddr, value Value) bool) {
		for n, value := range mem {
			if value == 0 {
				continue
			}
			if !yield(MemAddr(n), value) {
				return
			}
		}
	}
}
