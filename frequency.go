package huffpack

// Frequencies maps each Symbol present in some input to the number of times
// it occurs.  Symbols that never occur are absent, never present with a
// count of 0.
type Frequencies map[Symbol]uint64

// CountFrequencies scans data and tallies every byte.
func CountFrequencies(data []byte) Frequencies {
	var counts [NumSymbols]uint64
	for _, b := range data {
		counts[b]++
	}

	freq := make(Frequencies)
	for symbol, count := range counts {
		if count != 0 {
			freq[Symbol(symbol)] = count
		}
	}
	return freq
}

// Symbols returns the present symbols in ascending order.  A symbol mapped
// to a count of 0 is treated as absent.
func (freq Frequencies) Symbols() []Symbol {
	out := make([]Symbol, 0, len(freq))
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if freq[Symbol(symbol)] != 0 {
			out = append(out, Symbol(symbol))
		}
	}
	return out
}

// Total returns the sum of all counts, i.e. the length of the input.
func (freq Frequencies) Total() uint64 {
	var sum uint64
	for _, count := range freq {
		sum += count
	}
	return sum
}
