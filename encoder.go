package huffpack

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Entry is one (Symbol, Code) pair of a code table.
type Entry struct {
	Symbol Symbol
	Code   Code
}

// Encoder holds the forward code table, mapping each Symbol to its Code.
type Encoder struct {
	codes   [NumSymbols]Code
	count   uint16
	minSize byte
	maxSize byte
}

// Init initializes this Encoder from the given symbol frequencies.  The
// Huffman tree is built, walked, and then dropped; only the codes are kept.
//
// An empty freq yields an Encoder with no codes.  A freq with a single
// symbol assigns that symbol the one-bit code "0", since an empty code
// could not be told apart from no code at all while decoding.
//
func (e *Encoder) Init(freq Frequencies) {
	*e = Encoder{}
	root := BuildTree(freq)
	if root == nil {
		return
	}
	e.assign(root)
}

// Encode returns the Code for the given Symbol.  The result has Size 0 if
// the symbol was absent from the frequencies given to Init.
func (e *Encoder) Encode(symbol Symbol) Code {
	return e.codes[symbol]
}

// Len returns the number of symbols with a code.
func (e *Encoder) Len() int {
	return int(e.count)
}

// MinSize is the bit length of the shortest legal code.
func (e *Encoder) MinSize() byte {
	return e.minSize
}

// MaxSize is the bit length of the longest legal code.
func (e *Encoder) MaxSize() byte {
	return e.maxSize
}

// Entries returns the code table in ascending Symbol order.  This is what
// gets transmitted so that a Decoder can rebuild the inverse table.
func (e *Encoder) Entries() []Entry {
	out := make([]Entry, 0, e.count)
	for symbol := 0; symbol < NumSymbols; symbol++ {
		hc := e.codes[symbol]
		if hc.Size != 0 {
			out = append(out, Entry{Symbol: Symbol(symbol), Code: hc})
		}
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e *Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	for _, entry := range e.Entries() {
		fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", entry.Symbol, entry.Code)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// String returns a brief human-readable description of the Encoder.
func (e *Encoder) String() string {
	return fmt.Sprintf("(Huffman encoder with %d symbols, with coded lengths of %d .. %d bits)", e.count, e.minSize, e.maxSize)
}

var _ fmt.Stringer = (*Encoder)(nil)

// assign walks the tree from root, giving each leaf the Code spelled by the
// path to it.
//
// The walk uses an explicit stack rather than recursion.  Only internal
// nodes are pushed, so the stack never holds more than maxBitsPerCode
// items.  stackItem.x tracks progress through each node:
//   x=0 → We just arrived at stackItem for the first time
//   x=1 → We have already processed the left child
//   x=2 → We have already processed both children
//
func (e *Encoder) assign(root Node) {
	if leaf, ok := root.(*Leaf); ok {
		e.record(leaf.Symbol, Code{}.Append(0))
		return
	}

	type stackItem struct {
		node *Internal
		code Code
		x    byte
	}

	stack := make([]stackItem, 0, log2uint32(NumSymbols))

	processChild := func(child Node, hc Code) {
		switch node := child.(type) {
		case *Leaf:
			e.record(node.Symbol, hc)
		case *Internal:
			stack = append(stack, stackItem{node: node, code: hc})
		default:
			assert.Assertf(false, "unexpected node type %T", child)
		}
	}

	stack = append(stack, stackItem{node: root.(*Internal)})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			processChild(top.node.Left, top.code.Append(0))
		case 1:
			processChild(top.node.Right, top.code.Append(1))
		case 2:
			stack[len(stack)-1] = stackItem{}
			stack = stack[:len(stack)-1]
		}
	}
}

func (e *Encoder) record(symbol Symbol, hc Code) {
	assert.Assertf(hc.Size != 0, "symbol %d assigned an empty code", symbol)
	assert.Assertf(e.codes[symbol].Size == 0, "symbol %d assigned twice", symbol)

	e.codes[symbol] = hc
	if e.count == 0 {
		e.minSize = hc.Size
		e.maxSize = hc.Size
	} else if e.minSize > hc.Size {
		e.minSize = hc.Size
	} else if e.maxSize < hc.Size {
		e.maxSize = hc.Size
	}
	e.count++
}
