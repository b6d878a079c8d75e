package huffpack

import (
	"bytes"
	"encoding"
	"encoding/binary"
	"fmt"
)

const (
	containerMagic   = "HUFP"
	containerVersion = byte(1)
)

// Container is the serialized form of a compressed buffer.
//
// Wire format (version 1):
//
//	magic    = "HUFP"
//	version  = uint8
//	count    = uvarint, at most 256
//	repeat count times:
//	  symbol = uint8
//	  size   = uint8, at least 1
//	  bits   = ceil(size/8) bytes, first bit in the MSB, zero padded
//	bitLen   = uvarint
//	checksum = uint64 little-endian, xxhash64 of the uncompressed input
//	payload  = ceil(bitLen/8) bytes, first bit in the MSB, zero padded
//
// Records are length-prefixed binary, so every byte value round-trips as a
// symbol.  Nothing may follow the payload.
type Container struct {
	Entries  []Entry
	BitLen   uint64
	Checksum uint64
	Payload  []byte
}

// AppendBinary appends the serialized Container to buf.
func (c *Container) AppendBinary(buf []byte) []byte {
	var scratch [binary.MaxVarintLen64]byte

	buf = append(buf, containerMagic...)
	buf = append(buf, containerVersion)

	n := binary.PutUvarint(scratch[:], uint64(len(c.Entries)))
	buf = append(buf, scratch[:n]...)
	for _, entry := range c.Entries {
		var w BitWriter
		w.WriteCode(entry.Code)
		buf = append(buf, byte(entry.Symbol), entry.Code.Size)
		buf = append(buf, w.Bytes()...)
	}

	n = binary.PutUvarint(scratch[:], c.BitLen)
	buf = append(buf, scratch[:n]...)

	binary.LittleEndian.PutUint64(scratch[:8], c.Checksum)
	buf = append(buf, scratch[:8]...)

	return append(buf, c.Payload...)
}

// MarshalBinary implements encoding.BinaryMarshaler.  It never fails.
func (c *Container) MarshalBinary() ([]byte, error) {
	return c.AppendBinary(nil), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.  Every error wraps
// ErrCorruptContainer.  Payload aliases data.
//
// Only the framing is checked here: that each field is present, in range,
// and that the payload length matches BitLen.  Whether the entries form a
// usable code table is left to Decoder.Init.
//
func (c *Container) UnmarshalBinary(data []byte) error {
	*c = Container{}
	p := containerParser{data: data}

	magic := p.next(len(containerMagic), "magic")
	if p.err == nil && !bytes.Equal(magic, []byte(containerMagic)) {
		return corruptf("bad magic %q", magic)
	}
	version := p.next(1, "version")
	if p.err == nil && version[0] != containerVersion {
		return corruptf("unsupported version %d", version[0])
	}

	count := p.uvarint("entry count")
	if p.err == nil && count > NumSymbols {
		return corruptf("entry count %d exceeds %d", count, NumSymbols)
	}

	var entries []Entry
	if p.err == nil {
		entries = make([]Entry, 0, count)
	}
	for i := uint64(0); p.err == nil && i < count; i++ {
		head := p.next(2, "entry header")
		if p.err != nil {
			break
		}
		symbol, size := Symbol(head[0]), head[1]
		if size == 0 {
			return corruptf("entry %d (symbol %d) has an empty code", i, symbol)
		}
		raw := p.next(int(bytesForBits(uint64(size))), "entry code")
		if p.err != nil {
			break
		}
		r, err := NewBitReader(raw, uint64(size))
		if err != nil {
			return fmt.Errorf("entry %d (symbol %d): %w", i, symbol, err)
		}
		hc, _ := r.ReadCode(size)
		entries = append(entries, Entry{Symbol: symbol, Code: hc})
	}

	bitLen := p.uvarint("bit length")
	checksum := p.next(8, "checksum")
	if p.err != nil {
		return p.err
	}

	payload := data[p.pos:]
	if expect := bytesForBits(bitLen); uint64(len(payload)) != expect {
		return corruptf("bit length %d needs %d payload bytes, got %d", bitLen, expect, len(payload))
	}
	if count == 0 && bitLen != 0 {
		return corruptf("%d payload bits but an empty code table", bitLen)
	}

	*c = Container{
		Entries:  entries,
		BitLen:   bitLen,
		Checksum: binary.LittleEndian.Uint64(checksum),
		Payload:  payload,
	}
	return nil
}

var (
	_ encoding.BinaryMarshaler   = (*Container)(nil)
	_ encoding.BinaryUnmarshaler = (*Container)(nil)
)

// containerParser walks a container front to back.  After the first
// failure every call is a no-op and err holds the reason.
type containerParser struct {
	data []byte
	pos  int
	err  error
}

func (p *containerParser) next(n int, what string) []byte {
	if p.err != nil {
		return nil
	}
	if n > len(p.data)-p.pos {
		p.err = corruptf("truncated %s at offset %d: need %d bytes, have %d", what, p.pos, n, len(p.data)-p.pos)
		return nil
	}
	out := p.data[p.pos : p.pos+n]
	p.pos += n
	return out
}

func (p *containerParser) uvarint(what string) uint64 {
	if p.err != nil {
		return 0
	}
	value, n := binary.Uvarint(p.data[p.pos:])
	switch {
	case n == 0:
		p.err = corruptf("truncated %s at offset %d", what, p.pos)
		return 0
	case n < 0:
		p.err = corruptf("overlong %s at offset %d", what, p.pos)
		return 0
	}
	p.pos += n
	return value
}
