package huffman

import (
	"errors"

	"github.com/chronos-tachyon/huffpack/internal/pqueue"
)

var (
	// ErrEmptyQueue reports a priority queue underflow.  Tree construction
	// never underflows its queue; seeing this error means a bug.
	ErrEmptyQueue = pqueue.ErrEmptyQueue

	ErrMalformedHeader = errors.New("huffman: malformed symbol count")
	ErrMalformedTree   = errors.New("huffman: malformed tree")
	ErrTruncatedStream = errors.New("huffman: truncated stream")
)
