package huffman

import (
	"errors"
	"fmt"
	"io"
)

// Tree markers.  Neither is a decimal digit, which lets a reader tell where
// the symbol count in front of the tree ends.
const (
	markerLeaf     = 'L'
	markerInternal = 'I'
)

// WriteTree serializes the tree rooted at root in preorder.  Each leaf is
// written as 'L' followed by its symbol byte, and each internal node as 'I'
// followed by its low subtree and then its high subtree.
//
// The encoding is self-delimiting: ReadTree consumes exactly the bytes that
// WriteTree produced.
//
func WriteTree(w io.ByteWriter, root Node) error {
	switch x := root.(type) {
	case Leaf:
		if err := w.WriteByte(markerLeaf); err != nil {
			return err
		}
		return w.WriteByte(x.Symbol)
	case Internal:
		if err := w.WriteByte(markerInternal); err != nil {
			return err
		}
		if err := WriteTree(w, x.Low); err != nil {
			return err
		}
		return WriteTree(w, x.High)
	default:
		return fmt.Errorf("huffman: cannot serialize node of type %T", root)
	}
}

// ReadTree deserializes a tree written by WriteTree, consuming exactly its
// bytes from r.  Frequencies are not part of the encoding, so every node of
// the result reports a Frequency of 0.
//
// It returns an error wrapping ErrMalformedTree if it meets an unknown marker,
// if r ends before the tree is complete, or if the tree could not have come
// from a 256-symbol alphabet (deeper than MaxCodeSize, or more than
// NumSymbols leaves).  Other read errors are returned unchanged.
//
func ReadTree(r io.ByteReader) (Node, error) {
	tr := treeReader{r: r}
	return tr.read(0)
}

type treeReader struct {
	r      io.ByteReader
	leaves int
}

func (tr *treeReader) read(depth int) (Node, error) {
	marker, err := tr.readByte()
	if err != nil {
		return nil, err
	}

	switch marker {
	case markerLeaf:
		tr.leaves++
		if tr.leaves > NumSymbols {
			return nil, fmt.Errorf("%w: more than %d leaves", ErrMalformedTree, NumSymbols)
		}
		symbol, err := tr.readByte()
		if err != nil {
			return nil, err
		}
		return Leaf{Symbol: symbol}, nil

	case markerInternal:
		if depth >= MaxCodeSize {
			return nil, fmt.Errorf("%w: deeper than %d levels", ErrMalformedTree, MaxCodeSize)
		}
		low, err := tr.read(depth + 1)
		if err != nil {
			return nil, err
		}
		high, err := tr.read(depth + 1)
		if err != nil {
			return nil, err
		}
		return Internal{Low: low, High: high}, nil

	default:
		return nil, fmt.Errorf("%w: unknown marker %#02x", ErrMalformedTree, marker)
	}
}

func (tr *treeReader) readByte() (byte, error) {
	ch, err := tr.r.ReadByte()
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return 0, fmt.Errorf("%w: stream ends mid-tree", ErrMalformedTree)
	}
	return ch, err
}
