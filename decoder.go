package huffpack

import (
	"bytes"
	"fmt"
	"io"
)

// Decoder holds the inverse code table, mapping each Code back to its
// Symbol.  It is rebuilt from transmitted entries, never from a tree.
type Decoder struct {
	table   map[Code]Symbol
	minSize byte
	maxSize byte
}

// Init initializes this Decoder from the given code table entries.
//
// Init rejects tables that could not have come from an Encoder: empty
// codes, a symbol listed twice, two symbols sharing a code, or a code that
// is a prefix of another.  A table with zero entries is permitted and
// decodes only the empty bit string.
//
func (d *Decoder) Init(entries []Entry) error {
	*d = Decoder{}
	if len(entries) > NumSymbols {
		return fmt.Errorf("too many code table entries: got %d, max %d", len(entries), NumSymbols)
	}

	table := make(map[Code]Symbol, len(entries))
	var seen [NumSymbols]bool
	var minSize, maxSize byte
	for index, entry := range entries {
		hc := entry.Code
		if hc.Size == 0 {
			return fmt.Errorf("empty code for symbol %d", entry.Symbol)
		}
		if seen[entry.Symbol] {
			return fmt.Errorf("symbol %d appears more than once", entry.Symbol)
		}
		seen[entry.Symbol] = true
		if other, found := table[hc]; found {
			return fmt.Errorf("symbols %d and %d share code %s", other, entry.Symbol, hc)
		}
		table[hc] = entry.Symbol

		if index == 0 {
			minSize = hc.Size
			maxSize = hc.Size
		} else if minSize > hc.Size {
			minSize = hc.Size
		} else if maxSize < hc.Size {
			maxSize = hc.Size
		}
	}

	// Every code must be the only table entry along its own path.
	for hc, symbol := range table {
		for size := minSize; size < hc.Size; size++ {
			if other, found := table[hc.truncate(size)]; found {
				return fmt.Errorf("code %s for symbol %d is a prefix of code %s for symbol %d", hc.truncate(size), other, hc, symbol)
			}
		}
	}

	*d = Decoder{
		table:   table,
		minSize: minSize,
		maxSize: maxSize,
	}
	return nil
}

// Decode looks up a complete Code.  The boolean is false if no symbol has
// exactly this code.
func (d *Decoder) Decode(hc Code) (Symbol, bool) {
	symbol, found := d.table[hc]
	return symbol, found
}

// Len returns the number of entries in the table.
func (d *Decoder) Len() int {
	return len(d.table)
}

// MinSize is the bit length of the shortest legal code.
func (d *Decoder) MinSize() byte {
	return d.minSize
}

// MaxSize is the bit length of the longest legal code.
func (d *Decoder) MaxSize() byte {
	return d.maxSize
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d *Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", d.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", d.maxSize)
	keys := make(byCode, 0, len(d.table))
	for hc := range d.table {
		keys = append(keys, hc)
	}
	keys.Sort()
	for _, hc := range keys {
		fmt.Fprintf(&buf, "\tDecode(%s) = %d\n", hc, d.table[hc])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// String returns a brief human-readable description of the Decoder.
func (d *Decoder) String() string {
	return fmt.Sprintf("(Huffman decoder with %d symbols, with coded lengths of %d .. %d bits)", len(d.table), d.minSize, d.maxSize)
}

var _ fmt.Stringer = (*Decoder)(nil)
