package cpu

import (
	"strconv"
	"strings"
)

const (
	MemSize  = 4096  // Number of memory cells.
	ValueMin = -2048 // Smallest 12-bit two's-complement cell value.
	ValueMax = 2047  // Largest 12-bit two's-complement cell value.
)

// Value is the content of one memory cell, or of the accumulator:
// a 12-bit two's-complement integer in [ValueMin, ValueMax].
type Value int16

// MemAddr is a memory cell address in [0, MemSize).
type MemAddr uint16

// InstrIndex is a position in the assembled instruction list. It is the
// unit jump targets are expressed in and must never be conflated with a
// memory address.
type InstrIndex uint16

// AddrMax is the largest valid memory address.
const AddrMax = MemAddr(MemSize - 1)

// Wrap12 reduces v modulo 4096 and reinterprets the low 12 bits as
// two's-complement signed, as a fixed-width hardware register would.
func Wrap12(v int) Value {
	v &= 0xfff
	if v >= 0x800 {
		v -= 0x1000
	}
	return Value(v)
}

// Bits returns the unsigned 12-bit pattern of a value.
func (v Value) Bits() uint16 {
	return uint16(v) & 0xfff
}

// parseHex decodes a 0x-prefixed hexadecimal literal into its unsigned
// magnitude.
func parseHex(word string) (bits uint64, err error) {
	digits, ok := strings.CutPrefix(word, "0x")
	if !ok {
		digits, ok = strings.CutPrefix(word, "0X")
	}
	if !ok || len(digits) == 0 {
		err = ErrLiteral(word)
		return
	}

	bits, perr := strconv.ParseUint(digits, 16, 64)
	if perr != nil {
		if numerr, ok := perr.(*strconv.NumError); ok && numerr.Err == strconv.ErrRange {
			// Valid digits, absurd magnitude.
			bits = ^uint64(0)
			return
		}
		err = ErrLiteral(word)
	}

	return
}

// ParseAddr decodes a literal in address context: at most three significant
// hexadecimal digits. Wider literals are rejected, never truncated.
func ParseAddr(word string) (addr MemAddr, err error) {
	bits, err := parseHex(word)
	if err != nil {
		return
	}
	if bits > uint64(AddrMax) {
		err = ErrAddrRange(word)
		return
	}
	addr = MemAddr(bits)

	return
}

// ParseIndex decodes a jump operand. The 12-bit range check matches the
// address context, but the result lives in the instruction index space and
// is not guaranteed to land inside the assembled program.
func ParseIndex(word string) (index InstrIndex, err error) {
	addr, err := ParseAddr(word)
	index = InstrIndex(addr)
	return
}

// ParseValue decodes a literal in value context: the unsigned bit pattern
// must fit in 12 bits, and is then reinterpreted as two's-complement signed.
func ParseValue(word string) (value Value, err error) {
	bits, err := parseHex(word)
	if err != nil {
		return
	}
	if bits > 0xfff {
		err = ErrValueRange(word)
		return
	}
	value = Wrap12(int(bits))

	return
}
