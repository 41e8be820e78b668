package huffman

// NumSymbols is the size of the alphabet.  Every byte value is a symbol.
const NumSymbols = 256
