package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// CodeTable maps each symbol of a Huffman tree to its Code.
type CodeTable struct {
	codes   [NumSymbols]Code
	present [NumSymbols]bool
	count   int
	minSize byte
	maxSize byte
}

// NewCodeTable walks the tree rooted at root and records the path to each
// leaf: 0 for every step to a low child, 1 for every step to a high child.
//
// A root that is itself a Leaf receives the empty Code.
//
func NewCodeTable(root Node) *CodeTable {
	ct := new(CodeTable)
	if root == nil {
		return ct
	}

	// Each stack item carries its own copy of the path that led to it, so
	// no backtracking is needed.  The stack never holds more than one
	// pending sibling per level.

	type stackItem struct {
		node Node
		code Code
	}

	stack := make([]stackItem, 0, 16)
	stack = append(stack, stackItem{node: root})
	for len(stack) != 0 {
		last := len(stack) - 1
		item := stack[last]
		stack = stack[:last]

		switch x := item.node.(type) {
		case Leaf:
			ct.record(x.Symbol, item.code)
		case Internal:
			stack = append(stack,
				stackItem{node: x.High, code: item.code.Append(1)},
				stackItem{node: x.Low, code: item.code.Append(0)})
		}
	}
	return ct
}

func (ct *CodeTable) record(symbol byte, hc Code) {
	size := hc.Size
	if ct.count == 0 {
		ct.minSize = size
		ct.maxSize = size
	} else if ct.minSize > size {
		ct.minSize = size
	} else if ct.maxSize < size {
		ct.maxSize = size
	}
	ct.codes[symbol] = hc
	ct.present[symbol] = true
	ct.count++
}

// Encode returns the Code for symbol.  ok is false if the symbol does not
// appear in the tree.
func (ct *CodeTable) Encode(symbol byte) (hc Code, ok bool) {
	return ct.codes[symbol], ct.present[symbol]
}

// Len returns the number of symbols that have a Code.
func (ct *CodeTable) Len() int {
	return ct.count
}

// MinSize is the bit length of the shortest code.
func (ct *CodeTable) MinSize() byte {
	return ct.minSize
}

// MaxSize is the bit length of the longest code.
func (ct *CodeTable) MaxSize() byte {
	return ct.maxSize
}

// SizeBySymbol returns an array containing the bit length for each symbol.
// Symbols without a code, and the lone symbol of a single-leaf tree, report
// 0.
func (ct *CodeTable) SizeBySymbol() []byte {
	out := make([]byte, NumSymbols)
	for symbol := range ct.codes {
		out[symbol] = ct.codes[symbol].Size
	}
	return out
}

// EncodedBits returns the number of bits needed to encode input whose byte
// counts are given by ft.  Symbols without a code contribute nothing.
func (ct *CodeTable) EncodedBits(ft *FrequencyTable) uint64 {
	var total uint64
	for symbol, count := range ft.Counts {
		if ct.present[symbol] {
			total += count * uint64(ct.codes[symbol].Size)
		}
	}
	return total
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer.
func (ct *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", ct.count)
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for symbol := range ct.codes {
		if ct.present[symbol] {
			fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, ct.codes[symbol])
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
