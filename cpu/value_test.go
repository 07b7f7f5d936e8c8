package cpu

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap12(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		input int
		value Value
	}){
		{"zero", 0, 0},
		{"max", 2047, 2047},
		{"min", -2048, -2048},
		{"overflow", 2048, -2048},
		{"underflow", -2049, 2047},
		{"pattern_fff", 4095, -1},
		{"modulo", 4096, 0},
		{"large", 4003, -93},
		{"multiple", 4096*3 + 5, 5},
		{"negative_modulo", -4096, 0},
	}

	for _, entry := range table {
		assert.Equal(entry.value, Wrap12(entry.input), entry.name)
	}
}

func TestValueBits(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint16(0x001), Value(1).Bits())
	assert.Equal(uint16(0xfff), Value(-1).Bits())
	assert.Equal(uint16(0x800), Value(-2048).Bits())
	assert.Equal(uint16(0x7ff), Value(2047).Bits())
	assert.Equal(uint16(0xfa3), Value(-93).Bits())
}

func TestParseAddr(t *testing.T) {
	assert := assert.New(t)

	// Every three-digit literal is a valid address.
	for a := 0; a < MemSize; a++ {
		addr, err := ParseAddr(fmt.Sprintf("0x%03x", a))
		assert.NoError(err)
		assert.Equal(MemAddr(a), addr)
	}

	// Leading zeros do not widen the magnitude.
	addr, err := ParseAddr("0x00fff")
	assert.NoError(err)
	assert.Equal(AddrMax, addr)

	// Upper-case prefix and digits are accepted.
	addr, err = ParseAddr("0XAB")
	assert.NoError(err)
	assert.Equal(MemAddr(0xab), addr)

	for _, word := range []string{"0x1000", "0xffff", "0x123456789abcdef01"} {
		_, err := ParseAddr(word)
		var ea ErrAddrRange
		assert.ErrorAs(err, &ea, word)
	}

	for _, word := range []string{"", "12", "fff", "0x", "0xzz", "-0x5", "0x-5", "0x1.5"} {
		_, err := ParseAddr(word)
		var el ErrLiteral
		assert.ErrorAs(err, &el, word)
	}
}

func TestParseValue(t *testing.T) {
	assert := assert.New(t)

	// Round-trip every representable value through its bit pattern.
	for v := ValueMin; v <= ValueMax; v++ {
		word := fmt.Sprintf("0x%03x", Value(v).Bits())
		value, err := ParseValue(word)
		assert.NoError(err, word)
		assert.Equal(Value(v), value, word)
	}

	// Patterns at and above 0x800 decode as negative.
	value, err := ParseValue("0x800")
	assert.NoError(err)
	assert.Equal(Value(-2048), value)

	value, err = ParseValue("0xfa3")
	assert.NoError(err)
	assert.Equal(Value(-93), value)

	for _, word := range []string{"0x1000", "0x7d0f"} {
		_, err := ParseValue(word)
		var ev ErrValueRange
		assert.ErrorAs(err, &ev, word)
	}

	_, err = ParseValue("0q123")
	var el ErrLiteral
	assert.ErrorAs(err, &el)
}
