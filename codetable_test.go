package huffman

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"
)

func TestCodeTable(t *testing.T) {
	ct := NewCodeTable(makeTestTree())

	expectDump := strings.Join([]string{
		"CodeTable{\n",
		"\tLen() = 6\n",
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
	_, _ = ct.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	actualSizes := ct.SizeBySymbol()[:6]
	expectSizes := []byte{4, 4, 3, 3, 3, 1}
	if !bytes.Equal(expectSizes, actualSizes) {
		t.Errorf("wrong sizes:\n\texpect: %#v\n\tactual: %#v", expectSizes, actualSizes)
	}

	if _, ok := ct.Encode(6); ok {
		t.Error("symbol 6 should have no code")
	}

	// 5×4 + 9×4 + 12×3 + 13×3 + 16×3 + 45×1
	if bits := ct.EncodedBits(makeTable(5, 9, 12, 13, 16, 45)); bits != 224 {
		t.Errorf("expected 224 encoded bits, got %d", bits)
	}
}

func TestCodeTable_SingleLeaf(t *testing.T) {
	ct := NewCodeTable(Leaf{Symbol: 'A', Freq: 1000})

	if ct.Len() != 1 {
		t.Fatalf("expected 1 code, got %d", ct.Len())
	}
	hc, ok := ct.Encode('A')
	if !ok {
		t.Fatal("symbol 'A' has no code")
	}
	if hc.Size != 0 {
		t.Errorf("expected an empty code, got %s", hc)
	}
	if ct.MinSize() != 0 || ct.MaxSize() != 0 {
		t.Errorf("expected sizes 0 .. 0, got %d .. %d", ct.MinSize(), ct.MaxSize())
	}
}

func TestCodeTable_Empty(t *testing.T) {
	ct := NewCodeTable(nil)
	if ct.Len() != 0 {
		t.Errorf("expected no codes, got %d", ct.Len())
	}
}

// fibonacciTable assigns the Fibonacci numbers as counts, which produces the
// deepest possible tree for n symbols.
func fibonacciTable(n int) *FrequencyTable {
	counts := make([]uint64, n)
	a, b := uint64(1), uint64(1)
	for i := range counts {
		counts[i] = a
		a, b = b, a+b
	}
	return makeTable(counts...)
}

func TestCodeTable_Deep(t *testing.T) {
	root, _ := BuildTree(fibonacciTable(90))
	ct := NewCodeTable(root)

	if ct.Len() != 90 {
		t.Fatalf("expected 90 codes, got %d", ct.Len())
	}
	if ct.MinSize() != 1 || ct.MaxSize() != 89 {
		t.Errorf("expected sizes 1 .. 89, got %d .. %d", ct.MinSize(), ct.MaxSize())
	}
	checkPrefixFree(t, ct)
}

func TestCodeTable_PrefixFree(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for iter := 0; iter < 50; iter++ {
		root, _ := BuildTree(randomTable(rng))
		checkPrefixFree(t, NewCodeTable(root))
	}
}

func checkPrefixFree(t *testing.T, ct *CodeTable) {
	t.Helper()
	for a := 0; a < NumSymbols; a++ {
		ca, ok := ct.Encode(byte(a))
		if !ok {
			continue
		}
		for b := 0; b < NumSymbols; b++ {
			cb, ok := ct.Encode(byte(b))
			if !ok || a == b {
				continue
			}
			if cb.HasPrefix(ca) {
				t.Fatalf("code %s for symbol %d is a prefix of code %s for symbol %d", ca, a, cb, b)
			}
		}
	}
}
