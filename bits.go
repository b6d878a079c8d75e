package huffpack

import (
	"fmt"

	"github.com/chronos-tachyon/assert"
)

// BitWriter packs Codes into bytes, most significant bit first.  A
// partially filled final byte is padded with zero bits on the right.
//
// The zero value is an empty BitWriter ready to use.
type BitWriter struct {
	buf   []byte
	nbits uint64
}

// Grow reserves room for at least n more bits.
func (w *BitWriter) Grow(n uint64) {
	need := bytesForBits(w.nbits+n) - uint64(len(w.buf))
	if need > uint64(cap(w.buf)-len(w.buf)) {
		grown := make([]byte, len(w.buf), uint64(len(w.buf))+need)
		copy(grown, w.buf)
		w.buf = grown
	}
}

// WriteBit appends a single bit.
func (w *BitWriter) WriteBit(bit uint) {
	assert.Assertf(bit <= 1, "bit must be 0 or 1, got %d", bit)
	shift := w.nbits & 7
	if shift == 0 {
		w.buf = append(w.buf, 0)
	}
	w.buf[len(w.buf)-1] |= byte(bit << (7 - shift))
	w.nbits++
}

// WriteCode appends every bit of hc, first bit first.
func (w *BitWriter) WriteCode(hc Code) {
	for i := byte(0); i < hc.Size; i++ {
		w.WriteBit(hc.Bit(i))
	}
}

// Len returns the number of logical bits written so far.  Padding is not
// counted.
func (w *BitWriter) Len() uint64 {
	return w.nbits
}

// Bytes returns the packed bytes.  The slice aliases the writer's buffer.
func (w *BitWriter) Bytes() []byte {
	assert.Assertf(uint64(len(w.buf)) == bytesForBits(w.nbits), "%d bytes held for %d bits", len(w.buf), w.nbits)
	return w.buf
}

// Pack concatenates codes into one bit sequence and packs it.  It returns
// the packed bytes and the logical bit length.  The bit length is not
// recorded in the bytes themselves.
func Pack(codes []Code) ([]byte, uint64) {
	return PackFunc(len(codes), func(i int) Code { return codes[i] })
}

// PackFunc is Pack over n codes produced on demand by code(0) .. code(n-1),
// so callers need not materialize a []Code.  code is called twice per
// index and must return the same Code both times.
func PackFunc(n int, code func(i int) Code) ([]byte, uint64) {
	var total uint64
	for i := 0; i < n; i++ {
		total += uint64(code(i).Size)
	}

	var w BitWriter
	w.Grow(total)
	for i := 0; i < n; i++ {
		w.WriteCode(code(i))
	}
	assert.Assertf(w.Len() == total, "packed %d bits, expected %d", w.Len(), total)
	return w.Bytes(), w.Len()
}

// BitReader reads back bits packed by a BitWriter.
type BitReader struct {
	buf   []byte
	nbits uint64
	pos   uint64
}

// NewBitReader returns a BitReader over the first nbits bits of buf.  The
// buffer must hold exactly ceil(nbits/8) bytes and every padding bit must
// be zero; anything else means the bits were not produced by a BitWriter.
func NewBitReader(buf []byte, nbits uint64) (*BitReader, error) {
	if expect := bytesForBits(nbits); uint64(len(buf)) != expect {
		return nil, corruptf("%d bits need %d bytes, got %d", nbits, expect, len(buf))
	}
	if pad := nbits & 7; pad != 0 {
		last := buf[len(buf)-1]
		if mask := byte(0xff) >> pad; last&mask != 0 {
			return nil, corruptf("non-zero padding bits in final byte %#02x", last)
		}
	}
	return &BitReader{buf: buf, nbits: nbits}, nil
}

// ReadBit returns the next bit.  The boolean is false once all nbits bits
// have been read.
func (r *BitReader) ReadBit() (uint, bool) {
	if r.pos >= r.nbits {
		return 0, false
	}
	b := r.buf[r.pos>>3]
	bit := uint(b>>(7-(r.pos&7))) & 1
	r.pos++
	return bit, true
}

// ReadCode reads the next size bits as a single Code.
func (r *BitReader) ReadCode(size byte) (Code, bool) {
	if r.Remaining() < uint64(size) {
		return Code{}, false
	}
	var hc Code
	for i := byte(0); i < size; i++ {
		bit, _ := r.ReadBit()
		hc = hc.Append(bit)
	}
	return hc, true
}

// Remaining returns the number of unread bits.
func (r *BitReader) Remaining() uint64 {
	return r.nbits - r.pos
}

// Unpack decodes nbits bits of packed into symbols using d.
//
// Bits are gathered one at a time into a candidate code, and a symbol is
// emitted as soon as the candidate exactly matches a table entry.  Because
// the table is prefix-free, a match is always final.  A candidate that
// grows past d.MaxSize() bits can never match, and any bits left over at
// the end yield ErrUnresolvedTrailingBits.
//
func Unpack(packed []byte, nbits uint64, d *Decoder) ([]byte, error) {
	r, err := NewBitReader(packed, nbits)
	if err != nil {
		return nil, err
	}
	if nbits != 0 && d.Len() == 0 {
		return nil, corruptf("%d payload bits but an empty code table", nbits)
	}

	var out []byte
	if nbits != 0 {
		out = make([]byte, 0, nbits/uint64(d.MinSize()))
	} else {
		out = []byte{}
	}

	var candidate Code
	for {
		bit, ok := r.ReadBit()
		if !ok {
			break
		}
		candidate = candidate.Append(bit)
		if symbol, found := d.Decode(candidate); found {
			out = append(out, byte(symbol))
			candidate = Code{}
			continue
		}
		if candidate.Size >= d.MaxSize() {
			return nil, corruptf("bit sequence %s at bit %d matches no code", candidate, r.pos-uint64(candidate.Size))
		}
	}

	if candidate.Size != 0 {
		return nil, fmt.Errorf("%w: %d bits after the last symbol", ErrUnresolvedTrailingBits, candidate.Size)
	}
	return out, nil
}
