package huffpack

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPack(t *testing.T) {
	type testRow struct {
		name   string
		codes  []string
		packed []byte
		nbits  uint64
	}

	testData := [...]testRow{
		{name: "empty", codes: nil, packed: nil, nbits: 0},
		{name: "one-bit", codes: []string{"1"}, packed: []byte{0x80}, nbits: 1},
		{name: "full-byte", codes: []string{"1010", "0101"}, packed: []byte{0xa5}, nbits: 8},
		{name: "padded", codes: []string{"101", "11", "0", "1101"}, packed: []byte{0xbb, 0x40}, nbits: 10},
		{name: "spanning", codes: []string{"0", "111111111", "0"}, packed: []byte{0x7f, 0xc0}, nbits: 11},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			codes := make([]Code, len(row.codes))
			for i, str := range row.codes {
				codes[i] = mustParseCode(str)
			}
			packed, nbits := Pack(codes)
			require.Equal(t, row.nbits, nbits)
			require.Equal(t, row.packed, packed)
		})
	}
}

func TestPackFunc_MatchesPack(t *testing.T) {
	var e Encoder
	e.Init(makeTestFrequencies())

	input := []byte{5, 2, 3, 4, 0, 1, 5, 5}
	codes := make([]Code, len(input))
	for i, b := range input {
		codes[i] = e.Encode(Symbol(b))
	}

	expectPacked, expectBits := Pack(codes)
	actualPacked, actualBits := PackFunc(len(input), func(i int) Code {
		return e.Encode(Symbol(input[i]))
	})
	require.Equal(t, expectBits, actualBits)
	require.Equal(t, expectPacked, actualPacked)

	// "0" "100" "101" "111" "1100" "1101" "0" "0"
	require.Equal(t, uint64(20), actualBits)
	require.Equal(t, []byte{0x4b, 0xf3, 0x40}, actualPacked)
}

func TestBitReader(t *testing.T) {
	r, err := NewBitReader([]byte{0xbb, 0x40}, 10)
	require.NoError(t, err)

	var actual []uint
	for {
		bit, ok := r.ReadBit()
		if !ok {
			break
		}
		actual = append(actual, bit)
	}
	require.Equal(t, []uint{1, 0, 1, 1, 1, 0, 1, 1, 0, 1}, actual)
	require.Zero(t, r.Remaining())

	r, err = NewBitReader([]byte{0xbb, 0x40}, 10)
	require.NoError(t, err)
	hc, ok := r.ReadCode(3)
	require.True(t, ok)
	require.Equal(t, mustParseCode("101"), hc)
	require.Equal(t, uint64(7), r.Remaining())
	_, ok = r.ReadCode(8)
	require.False(t, ok)
}

func TestNewBitReader_Rejects(t *testing.T) {
	type testRow struct {
		name  string
		buf   []byte
		nbits uint64
	}

	testData := [...]testRow{
		{name: "short", buf: []byte{0xbb}, nbits: 10},
		{name: "long", buf: []byte{0xbb, 0x40, 0x00}, nbits: 10},
		{name: "dirty-padding", buf: []byte{0xbb, 0x41}, nbits: 10},
		{name: "bytes-without-bits", buf: []byte{0x00}, nbits: 0},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			_, err := NewBitReader(row.buf, row.nbits)
			require.ErrorIs(t, err, ErrCorruptContainer)
		})
	}
}

func TestUnpack(t *testing.T) {
	d := makeTestDecoder()

	// 5 2 3 4 0 1 5
	packed, nbits := Pack([]Code{
		mustParseCode("0"),
		mustParseCode("100"),
		mustParseCode("101"),
		mustParseCode("111"),
		mustParseCode("1100"),
		mustParseCode("1101"),
		mustParseCode("0"),
	})
	out, err := Unpack(packed, nbits, d)
	require.NoError(t, err)
	require.Equal(t, []byte{5, 2, 3, 4, 0, 1, 5}, out)
}

func TestUnpack_Empty(t *testing.T) {
	out, err := Unpack(nil, 0, makeTestDecoder())
	require.NoError(t, err)
	require.NotNil(t, out)
	require.Empty(t, out)

	var empty Decoder
	require.NoError(t, empty.Init(nil))
	out, err = Unpack(nil, 0, &empty)
	require.NoError(t, err)
	require.Empty(t, out)

	_, err = Unpack([]byte{0x80}, 1, &empty)
	require.ErrorIs(t, err, ErrCorruptContainer)
}

func TestUnpack_UnresolvedTrailingBits(t *testing.T) {
	d := makeTestDecoder()

	// "0" then a dangling "11".
	packed, nbits := Pack([]Code{mustParseCode("0"), mustParseCode("11")})
	_, err := Unpack(packed, nbits, d)
	require.ErrorIs(t, err, ErrUnresolvedTrailingBits)
	require.ErrorIs(t, err, ErrCorruptContainer)
}

func TestUnpack_NoMatch(t *testing.T) {
	var d Decoder
	require.NoError(t, d.Init([]Entry{
		{Symbol: 'a', Code: mustParseCode("0")},
		{Symbol: 'b', Code: mustParseCode("10")},
	}))

	// Nothing starts with "11", and no code is longer than two bits.
	packed, nbits := Pack([]Code{mustParseCode("0"), mustParseCode("11"), mustParseCode("0")})
	_, err := Unpack(packed, nbits, &d)
	require.ErrorIs(t, err, ErrCorruptContainer)
	require.False(t, errors.Is(err, ErrUnresolvedTrailingBits))
}
