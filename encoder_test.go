package huffpack

import (
	"strings"
	"testing"
)

func makeTestFrequencies() Frequencies {
	return Frequencies{0: 5, 1: 9, 2: 12, 3: 13, 4: 16, 5: 45}
}

func TestEncoder(t *testing.T) {
	var e Encoder
	e.Init(makeTestFrequencies())

	expectDump := strings.Join([]string{
		"Encoder{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tEncode(0) = \"1100\"\n",
		"\tEncode(1) = \"1101\"\n",
		"\tEncode(2) = \"100\"\n",
		"\tEncode(3) = \"101\"\n",
		"\tEncode(4) = \"111\"\n",
		"\tEncode(5) = \"0\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = e.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	expectString := "(Huffman encoder with 6 symbols, with coded lengths of 1 .. 4 bits)"
	actualString := e.String()
	if expectString != actualString {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectString, actualString)
	}

	if hc := e.Encode(200); hc.Size != 0 {
		t.Errorf("absent symbol got code %s", hc)
	}
}

func TestEncoder_Empty(t *testing.T) {
	var e Encoder
	e.Init(CountFrequencies(nil))

	if e.Len() != 0 {
		t.Errorf("expected no codes, got %d", e.Len())
	}
	if entries := e.Entries(); len(entries) != 0 {
		t.Errorf("expected no entries, got %v", entries)
	}
}

func TestEncoder_SingleSymbol(t *testing.T) {
	var e Encoder
	e.Init(CountFrequencies([]byte(strings.Repeat("A", 1000))))

	entries := e.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Symbol != 'A' {
		t.Errorf("expected symbol 'A', got %d", entries[0].Symbol)
	}
	if actual := entries[0].Code.String(); actual != "\"0\"" {
		t.Errorf("expected code \"0\", got %s", actual)
	}
	if e.MinSize() != 1 || e.MaxSize() != 1 {
		t.Errorf("expected sizes 1 .. 1, got %d .. %d", e.MinSize(), e.MaxSize())
	}
}

func TestEncoder_TwoSymbols(t *testing.T) {
	var e Encoder
	e.Init(Frequencies{'\n': 3, 0: 3})

	// Equal weights: the lower symbol is popped first and goes left.
	if actual := e.Encode(0).String(); actual != "\"0\"" {
		t.Errorf("symbol 0: expected \"0\", got %s", actual)
	}
	if actual := e.Encode('\n').String(); actual != "\"1\"" {
		t.Errorf("symbol 10: expected \"1\", got %s", actual)
	}
}

func TestEncoder_Skewed(t *testing.T) {
	// Fibonacci weights produce the deepest possible tree for their size.
	freq := make(Frequencies)
	a, b := uint64(1), uint64(1)
	for symbol := 0; symbol < 40; symbol++ {
		freq[Symbol(symbol)] = a
		a, b = b, a+b
	}

	var e Encoder
	e.Init(freq)

	if e.MaxSize() != 39 {
		t.Errorf("expected max size 39, got %d", e.MaxSize())
	}
	if e.MinSize() != 1 {
		t.Errorf("expected min size 1, got %d", e.MinSize())
	}
	assertPrefixFree(t, e.Entries())
}

func assertPrefixFree(t *testing.T, entries []Entry) {
	t.Helper()
	for i, a := range entries {
		if a.Code.Size == 0 {
			t.Errorf("symbol %d has an empty code", a.Symbol)
		}
		for j, b := range entries {
			if i != j && b.Code.HasPrefix(a.Code) {
				t.Errorf("code %s (symbol %d) is a prefix of %s (symbol %d)", a.Code, a.Symbol, b.Code, b.Symbol)
			}
		}
	}
}
