package huffman

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// MaxCodeSize is the longest code a tree over NumSymbols leaves can assign.
const MaxCodeSize = NumSymbols - 1

const codeWords = (MaxCodeSize + 63) / 64

// Code represents a sequence of bits.  Codes are values: Append returns a new
// Code and never modifies its receiver.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The first bit of the
	// sequence is the most significant bit of Bits[0], the 65th bit is the
	// most significant bit of Bits[1], and so on.  Bits past Size are zero.
	Bits [codeWords]uint64
}

// MakeCode is a convenience function that constructs a Code from the low
// size bits of bits, most significant of those bits first.  It only handles
// codes up to 64 bits long.
func MakeCode(size byte, bits uint64) Code {
	assert.Assertf(size <= 64, "size %d > 64", size)
	var hc Code
	for i := int(size) - 1; i >= 0; i-- {
		hc = hc.Append(uint((bits >> uint(i)) & 1))
	}
	return hc
}

// Append returns the Code formed by adding one bit (0 or 1) to the end of
// this Code.
func (hc Code) Append(bit uint) Code {
	assert.Assertf(hc.Size < MaxCodeSize, "code already holds %d bits", hc.Size)
	assert.Assertf(bit <= 1, "bit %d is not 0 or 1", bit)
	i := uint(hc.Size)
	hc.Bits[i/64] |= uint64(bit) << (63 - i%64)
	hc.Size++
	return hc
}

// Bit returns the i'th bit of this Code, counting from 0.
func (hc Code) Bit(i int) uint {
	assert.Assertf(i >= 0 && i < int(hc.Size), "bit index %d out of range [0, %d)", i, hc.Size)
	return uint(hc.Bits[i/64]>>(63-uint(i)%64)) & 1
}

// HasPrefix reports whether prefix is a prefix of this Code.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	for i := 0; i < int(prefix.Size); i++ {
		if hc.Bit(i) != prefix.Bit(i) {
			return false
		}
	}
	return true
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	var buf strings.Builder
	buf.Grow(int(hc.Size))
	for i := 0; i < int(hc.Size); i++ {
		buf.WriteByte('0' + byte(hc.Bit(i)))
	}
	return strconv.Quote(buf.String())
}

var _ fmt.Stringer = Code{}
