package huffpack

// Symbol is one byte of input.  Every byte value, including 0, is a real
// symbol.
type Symbol byte

// NumSymbols is the size of the byte alphabet.
const NumSymbols = 256
