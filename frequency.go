package huffman

import (
	"bufio"
	"io"
)

// FrequencyTable counts the occurrences of each byte value in some input.
type FrequencyTable struct {
	// Counts holds the number of occurrences of each byte value.
	Counts [NumSymbols]uint64

	// Total holds the sum of Counts.
	Total uint64
}

// CountFrequencies reads r to EOF and returns the resulting FrequencyTable.
// Read errors other than io.EOF are returned unchanged.
func CountFrequencies(r io.Reader) (FrequencyTable, error) {
	var ft FrequencyTable
	br := bufio.NewReader(r)
	for {
		ch, err := br.ReadByte()
		if err == io.EOF {
			return ft, nil
		}
		if err != nil {
			return ft, err
		}
		ft.Counts[ch]++
		ft.Total++
	}
}

// Add counts every byte of p.
func (ft *FrequencyTable) Add(p []byte) {
	for _, ch := range p {
		ft.Counts[ch]++
	}
	ft.Total += uint64(len(p))
}

// NumPresent returns the number of distinct byte values with a non-zero
// count.
func (ft *FrequencyTable) NumPresent() int {
	var n int
	for _, count := range ft.Counts {
		if count != 0 {
			n++
		}
	}
	return n
}
