package huffpack

import (
	"fmt"
	"sort"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// maxBitsPerCode is the longest code a byte alphabet can need: a fully
// skewed tree over 256 leaves is 255 levels deep.
const maxBitsPerCode = NumSymbols - 1

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The least significant bit
	// of Bits[0] is the first bit; bit i lives in Bits[i/64] at position
	// i%64.  Bits past Size are always zero, so Code values compare equal
	// exactly when they hold the same bit sequence.
	Bits [4]uint64
}

// ParseCode parses a string of '0' and '1' characters into a Code.
func ParseCode(str string) (Code, error) {
	if len(str) > maxBitsPerCode {
		return Code{}, fmt.Errorf("code %q is too long: got %d bits, max %d", str, len(str), maxBitsPerCode)
	}
	var hc Code
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case '0':
			hc = hc.Append(0)
		case '1':
			hc = hc.Append(1)
		default:
			return Code{}, fmt.Errorf("invalid character %q at index %d in code %q", str[i], i, str)
		}
	}
	return hc, nil
}

// Bit returns the i'th bit of this Code, counting from the first.
func (hc Code) Bit(i byte) uint {
	assert.Assertf(i < hc.Size, "bit index %d out of range for code of size %d", i, hc.Size)
	return uint(hc.Bits[i>>6]>>(i&63)) & 1
}

// Append returns a copy of this Code with one more bit at the end.
func (hc Code) Append(bit uint) Code {
	assert.Assertf(hc.Size < maxBitsPerCode, "code already holds %d bits", hc.Size)
	assert.Assertf(bit <= 1, "bit must be 0 or 1, got %d", bit)
	i := hc.Size
	hc.Bits[i>>6] |= uint64(bit) << (i & 63)
	hc.Size++
	return hc
}

// HasPrefix returns true if prefix is a prefix of (or equal to) this Code.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	return hc.truncate(prefix.Size) == prefix
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	var buf strings.Builder
	buf.Grow(int(hc.Size) + 2)
	buf.WriteByte('"')
	for i := byte(0); i < hc.Size; i++ {
		buf.WriteByte('0' + byte(hc.Bit(i)))
	}
	buf.WriteByte('"')
	return buf.String()
}

var _ fmt.Stringer = Code{}

func (hc Code) truncate(size byte) Code {
	out := Code{Size: size}
	for word := byte(0); word < 4; word++ {
		lo := word * 64
		if size <= lo {
			break
		}
		n := size - lo
		if n >= 64 {
			out.Bits[word] = hc.Bits[word]
		} else {
			out.Bits[word] = hc.Bits[word] & ((uint64(1) << n) - 1)
		}
	}
	return out
}

func compareCodes(a, b Code) int {
	if a.Size != b.Size {
		if a.Size < b.Size {
			return -1
		}
		return 1
	}
	for i := byte(0); i < a.Size; i++ {
		x, y := a.Bit(i), b.Bit(i)
		if x != y {
			if x < y {
				return -1
			}
			return 1
		}
	}
	return 0
}

// type byCode {{{

type byCode []Code

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	return compareCodes(list[i], list[j]) < 0
}

var _ sort.Interface = byCode(nil)

// }}}
