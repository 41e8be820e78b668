package huffman

import (
	"math"
	"math/rand"
	"testing"

	ihuffman "github.com/icza/huffman"
)

func makeTable(counts ...uint64) *FrequencyTable {
	ft := new(FrequencyTable)
	for symbol, count := range counts {
		ft.Counts[symbol] = count
		ft.Total += count
	}
	return ft
}

func makeTestTree() Node {
	root, ok := BuildTree(makeTable(5, 9, 12, 13, 16, 45))
	if !ok {
		panic("BuildTree reported an empty table")
	}
	return root
}

func TestBuildTree(t *testing.T) {
	root := makeTestTree()

	expectTree := "(05 ((02 03) ((00 01) 04)))"
	actualTree := TreeString(root)
	if expectTree != actualTree {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectTree, actualTree)
	}
	if freq := root.Frequency(); freq != 100 {
		t.Errorf("expected root frequency 100, got %d", freq)
	}
}

func TestBuildTree_Empty(t *testing.T) {
	root, ok := BuildTree(new(FrequencyTable))
	if ok || root != nil {
		t.Errorf("expected no tree, got %v (ok=%v)", root, ok)
	}
}

func TestBuildTree_SingleSymbol(t *testing.T) {
	var ft FrequencyTable
	ft.Counts['A'] = 1000
	ft.Total = 1000

	root, ok := BuildTree(&ft)
	if !ok {
		t.Fatal("BuildTree reported an empty table")
	}
	expect := Leaf{Symbol: 'A', Freq: 1000}
	if root != Node(expect) {
		t.Errorf("expected %#v, got %#v", expect, root)
	}
}

func TestBuildTree_TieBreak(t *testing.T) {
	var ft FrequencyTable
	ft.Add([]byte("aabb"))

	first, _ := BuildTree(&ft)
	expect := Internal{Freq: 4, Low: Leaf{Symbol: 'a', Freq: 2}, High: Leaf{Symbol: 'b', Freq: 2}}
	if first != Node(expect) {
		t.Fatalf("expected %#v, got %#v", expect, first)
	}

	for i := 0; i < 20; i++ {
		again, _ := BuildTree(&ft)
		if !Equal(first, again) {
			t.Fatalf("run %d built a different tree: %s vs %s", i, TreeString(first), TreeString(again))
		}
	}
}

func TestBuildTree_SaturatingFrequency(t *testing.T) {
	root, _ := BuildTree(makeTable(math.MaxUint64, 1))
	if freq := root.Frequency(); freq != math.MaxUint64 {
		t.Errorf("expected root frequency %d, got %d", uint64(math.MaxUint64), freq)
	}
}

func TestEqual(t *testing.T) {
	a := Internal{Freq: 3, Low: Leaf{Symbol: 1, Freq: 1}, High: Leaf{Symbol: 2, Freq: 2}}
	b := Internal{Low: Leaf{Symbol: 1}, High: Leaf{Symbol: 2}}
	c := Internal{Low: Leaf{Symbol: 2}, High: Leaf{Symbol: 1}}

	if !Equal(a, b) {
		t.Error("trees differing only in frequency should be equal")
	}
	if Equal(a, c) {
		t.Error("mirrored trees should not be equal")
	}
	if Equal(a, Leaf{Symbol: 1}) {
		t.Error("an internal node should not equal a leaf")
	}
	if !Equal(nil, nil) {
		t.Error("nil should equal nil")
	}
}

func randomTable(rng *rand.Rand) *FrequencyTable {
	ft := new(FrequencyTable)
	distinct := 2 + rng.Intn(NumSymbols-1)
	for i := 0; i < distinct; i++ {
		symbol := rng.Intn(NumSymbols)
		count := uint64(1 + rng.Intn(1000))
		ft.Counts[symbol] += count
		ft.Total += count
	}
	return ft
}

// TestBuildTree_Optimal compares the weighted path length of our trees with
// that of an independent Huffman implementation.  All optimal prefix codes
// for the same frequencies share this length.
func TestBuildTree_Optimal(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for iter := 0; iter < 200; iter++ {
		ft := randomTable(rng)
		root, _ := BuildTree(ft)
		ours := NewCodeTable(root).EncodedBits(ft)

		var leaves []*ihuffman.Node
		for symbol, count := range ft.Counts {
			if count != 0 {
				leaves = append(leaves, &ihuffman.Node{Value: ihuffman.ValueType(symbol), Count: int(count)})
			}
		}
		refLeaves := make([]*ihuffman.Node, len(leaves))
		copy(refLeaves, leaves)
		ihuffman.Build(refLeaves)

		var theirs uint64
		for _, leaf := range leaves {
			_, bits := leaf.Code()
			theirs += uint64(leaf.Count) * uint64(bits)
		}

		if ours != theirs {
			t.Fatalf("iteration %d: weighted length %d, reference %d", iter, ours, theirs)
		}
	}
}

func TestBuildTree_FrequencyLengthRelation(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for iter := 0; iter < 200; iter++ {
		ft := randomTable(rng)
		root, _ := BuildTree(ft)
		sizes := NewCodeTable(root).SizeBySymbol()

		for a := 0; a < NumSymbols; a++ {
			for b := 0; b < NumSymbols; b++ {
				if ft.Counts[a] == 0 || ft.Counts[b] == 0 {
					continue
				}
				if ft.Counts[a] > ft.Counts[b] && sizes[a] > sizes[b] {
					t.Fatalf("iteration %d: symbol %d (count %d) has %d bits, symbol %d (count %d) has %d bits",
						iter, a, ft.Counts[a], sizes[a], b, ft.Counts[b], sizes[b])
				}
			}
		}
	}
}
