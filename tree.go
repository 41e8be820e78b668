package huffman

import (
	"math"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"

	"github.com/chronos-tachyon/huffpack/internal/pqueue"
)

// Node is a node of a Huffman tree: either a Leaf or an Internal.
//
// Trees are immutable once built.  Every Internal node has exactly two
// children, so a node is a leaf iff it has no children.
//
type Node interface {
	// Frequency returns the aggregate number of occurrences of the symbols
	// beneath this node.  Trees read back by ReadTree carry no
	// frequencies, so this is 0 for them.
	Frequency() uint64

	isNode()
}

// Leaf is a Node that holds one symbol.
type Leaf struct {
	Symbol byte
	Freq   uint64
}

// Internal is a Node with two children.  Low is reached by a 0 bit, High by
// a 1 bit.
type Internal struct {
	Freq uint64
	Low  Node
	High Node
}

// Frequency returns the symbol's number of occurrences.
func (n Leaf) Frequency() uint64 { return n.Freq }

// Frequency returns the sum of the children's frequencies.
func (n Internal) Frequency() uint64 { return n.Freq }

func (Leaf) isNode()     {}
func (Internal) isNode() {}

var (
	_ Node = Leaf{}
	_ Node = Internal{}
)

// BuildTree constructs the Huffman tree for ft.  It returns ok == false if
// ft counts no symbols at all, in which case there is no tree.
//
// Nodes are merged in order of (frequency, symbol) ascending, where an
// internal node takes the symbol of its low child.  This makes the result
// depend only on ft: identical tables always produce identical trees.
//
// If ft holds exactly one distinct symbol, the root is that symbol's Leaf and
// the symbol's code is empty.
//
func BuildTree(ft *FrequencyTable) (root Node, ok bool) {
	q := pqueue.New[weightedNode](compareWeighted, ft.NumPresent())
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if freq := ft.Counts[symbol]; freq != 0 {
			leaf := Leaf{Symbol: byte(symbol), Freq: freq}
			q.Insert(weightedNode{node: leaf, freq: freq, symbol: byte(symbol)})
		}
	}

	if q.Size() == 0 {
		return nil, false
	}

	for q.Size() > 1 {
		a, err := q.ExtractMin()
		assert.Assertf(err == nil, "ExtractMin failed with %d items: %v", q.Size(), err)
		b, err := q.ExtractMin()
		assert.Assertf(err == nil, "ExtractMin failed with %d items: %v", q.Size(), err)

		// saturates
		freqSum := a.freq + b.freq
		if freqSum < a.freq {
			freqSum = math.MaxUint64
		}

		merged := Internal{Freq: freqSum, Low: a.node, High: b.node}
		q.Insert(weightedNode{node: merged, freq: freqSum, symbol: a.symbol})
	}

	last, err := q.ExtractMin()
	assert.Assertf(err == nil, "ExtractMin failed on the final node: %v", err)
	return last.node, true
}

// Equal reports whether a and b have the same shape with the same symbols at
// the same leaves.  Frequencies are ignored.
func Equal(a, b Node) bool {
	switch x := a.(type) {
	case Leaf:
		y, ok := b.(Leaf)
		return ok && x.Symbol == y.Symbol
	case Internal:
		y, ok := b.(Internal)
		return ok && Equal(x.Low, y.Low) && Equal(x.High, y.High)
	default:
		return a == nil && b == nil
	}
}

// TreeString renders a tree for debugging.  Leaves appear as two hex digits,
// internal nodes as "(low high)".
func TreeString(root Node) string {
	var buf strings.Builder
	var walk func(Node)
	walk = func(n Node) {
		switch x := n.(type) {
		case Leaf:
			if x.Symbol < 0x10 {
				buf.WriteByte('0')
			}
			buf.WriteString(strconv.FormatUint(uint64(x.Symbol), 16))
		case Internal:
			buf.WriteByte('(')
			walk(x.Low)
			buf.WriteByte(' ')
			walk(x.High)
			buf.WriteByte(')')
		default:
			buf.WriteString("<nil>")
		}
	}
	walk(root)
	return buf.String()
}

// type weightedNode {{{

type weightedNode struct {
	node   Node
	freq   uint64
	symbol byte
}

func compareWeighted(a, b weightedNode) int {
	switch {
	case a.freq < b.freq:
		return -1
	case a.freq > b.freq:
		return 1
	}
	return int(a.symbol) - int(b.symbol)
}

// }}}
