package huffman

import (
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// Packer writes the Codes of a sequence of symbols as a bit stream, most
// significant bit first, eight bits per output byte.
type Packer struct {
	w     *bitio.Writer
	table *CodeTable
	bits  uint64
}

// NewPacker constructs a Packer that encodes symbols with table and writes
// the packed bytes to w.
func NewPacker(w io.Writer, table *CodeTable) *Packer {
	return &Packer{w: bitio.NewWriter(w), table: table}
}

// WriteSymbol appends the Code of one symbol to the bit stream.  A symbol
// with an empty Code writes nothing.
func (p *Packer) WriteSymbol(symbol byte) error {
	hc, ok := p.table.Encode(symbol)
	if !ok {
		return fmt.Errorf("huffman: symbol %#02x has no code", symbol)
	}
	remaining := int(hc.Size)
	for _, word := range hc.Bits {
		if remaining <= 0 {
			break
		}
		n := remaining
		if n > 64 {
			n = 64
		}
		if err := p.w.WriteBits(word>>uint(64-n), uint8(n)); err != nil {
			return err
		}
		remaining -= n
	}
	p.bits += uint64(hc.Size)
	return nil
}

// Write encodes every byte of data as a symbol.
func (p *Packer) Write(data []byte) (int, error) {
	for i, symbol := range data {
		if err := p.WriteSymbol(symbol); err != nil {
			return i, err
		}
	}
	return len(data), nil
}

// Bits returns the number of bits written so far, not counting padding.
func (p *Packer) Bits() uint64 {
	return p.bits
}

// Close pads the final partial byte, if any, with 0 bits and flushes it.  It
// does not close the underlying writer.
func (p *Packer) Close() error {
	return p.w.Close()
}

var _ io.WriteCloser = (*Packer)(nil)

// Unpacker decodes symbols from a bit stream by walking a Huffman tree: a 0
// bit descends to the low child, a 1 bit to the high child, and reaching a
// leaf yields its symbol.
//
// Bytes are pulled from the underlying reader only when a bit is actually
// needed.  If the tree is a single Leaf, every symbol decodes without
// consuming any bits.
//
type Unpacker struct {
	r    *bitio.Reader
	root Node
}

// NewUnpacker constructs an Unpacker that decodes bits read from r using the
// tree rooted at root.
func NewUnpacker(r io.Reader, root Node) *Unpacker {
	return &Unpacker{r: bitio.NewReader(r), root: root}
}

// ReadSymbol decodes the next symbol.  If the stream ends before a leaf is
// reached, it returns an error wrapping ErrTruncatedStream.
func (u *Unpacker) ReadSymbol() (byte, error) {
	cursor := u.root
	for {
		switch x := cursor.(type) {
		case Leaf:
			return x.Symbol, nil
		case Internal:
			bit, err := u.r.ReadBool()
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return 0, fmt.Errorf("%w: bit stream ends mid-symbol", ErrTruncatedStream)
			}
			if err != nil {
				return 0, err
			}
			if bit {
				cursor = x.High
			} else {
				cursor = x.Low
			}
		default:
			return 0, fmt.Errorf("%w: missing node", ErrMalformedTree)
		}
	}
}

// Decode decodes exactly n symbols and writes them to w.  It stops as soon as
// the n'th symbol is complete, so padding bits after it are never examined.
func (u *Unpacker) Decode(w io.ByteWriter, n uint64) error {
	for i := uint64(0); i < n; i++ {
		symbol, err := u.ReadSymbol()
		if err != nil {
			return fmt.Errorf("symbol %d of %d: %w", i, n, err)
		}
		if err := w.WriteByte(symbol); err != nil {
			return err
		}
	}
	return nil
}
