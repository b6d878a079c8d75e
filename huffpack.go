package huffpack

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Compress encodes input as a self-describing container.  It never fails;
// an empty input yields a container with an empty code table.
func Compress(input []byte) []byte {
	out, _ := CompressWithTable(input)
	return out
}

// CompressWithTable is Compress, but also returns the Encoder that was used
// so that callers can inspect or dump the code table.
func CompressWithTable(input []byte) ([]byte, *Encoder) {
	e := new(Encoder)
	e.Init(CountFrequencies(input))

	payload, nbits := PackFunc(len(input), func(i int) Code {
		return e.Encode(Symbol(input[i]))
	})

	c := Container{
		Entries:  e.Entries(),
		BitLen:   nbits,
		Checksum: xxhash.Sum64(input),
		Payload:  payload,
	}
	return c.AppendBinary(nil), e
}

// Decompress reverses Compress.  Any structural problem, undecodable bit
// sequence, or checksum mismatch returns an error wrapping
// ErrCorruptContainer and no output.
func Decompress(data []byte) ([]byte, error) {
	out, _, err := DecompressWithTable(data)
	return out, err
}

// DecompressWithTable is Decompress, but also returns the Decoder rebuilt
// from the container so that callers can inspect or dump the code table.
// The Decoder is nil whenever the error is non-nil.
func DecompressWithTable(data []byte) ([]byte, *Decoder, error) {
	var c Container
	if err := c.UnmarshalBinary(data); err != nil {
		return nil, nil, err
	}

	d := new(Decoder)
	if err := d.Init(c.Entries); err != nil {
		return nil, nil, fmt.Errorf("%w: invalid code table: %v", ErrCorruptContainer, err)
	}

	out, err := Unpack(c.Payload, c.BitLen, d)
	if err != nil {
		return nil, nil, err
	}

	if sum := xxhash.Sum64(out); sum != c.Checksum {
		return nil, nil, corruptf("checksum mismatch: header says %#016x, data hashes to %#016x", c.Checksum, sum)
	}
	return out, d, nil
}
