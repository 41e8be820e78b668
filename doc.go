// Package huffman implements a lossless byte-stream compressor built on
// Huffman codes.
//
// Compress counts the byte frequencies of its input, builds a Huffman tree
// with a deterministic tie-break, and writes a self-describing stream:
//
//     <count><tree><bits>
//
// where <count> is the number of input bytes as decimal digits, <tree> is the
// preorder serialization produced by WriteTree ('L' + symbol byte for each
// leaf, 'I' for each internal node followed by its low and high subtrees),
// and <bits> is the concatenation of every input byte's code, most
// significant bit first, with the final byte padded by 0 bits.  The tree
// always begins with 'L' or 'I', so a reader knows the count has ended at the
// first non-digit byte.
//
// Decompress reads the count and the tree, then decodes exactly count
// symbols, ignoring any padding.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
