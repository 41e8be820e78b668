package huffman

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("huffman")

// maxPrealloc caps how much output buffer Decompress reserves up front based
// on the untrusted symbol count.
const maxPrealloc = 1 << 20

// Options configures a single Compress or Decompress call.  The zero value is
// the default.
type Options struct {
	// Debug logs the tree, the code table and every packed byte at DEBUG
	// level.
	Debug bool

	// MaxSymbols, if non-zero, makes Decompress reject streams that
	// declare more than this many symbols.
	MaxSymbols uint64
}

// Compress writes the compressed form of src to dst.
//
// src is read twice, once to count byte frequencies and once to encode it, so
// it must be seekable; both passes start at src's current offset.  Empty
// input compresses to empty output.  Otherwise the output is the input length
// in decimal digits, then the serialized tree (see WriteTree), then the
// packed codes (see Packer).
//
func Compress(dst io.Writer, src io.ReadSeeker, opts Options) error {
	start, err := src.Seek(0, io.SeekCurrent)
	if err != nil {
		return err
	}

	ft, err := CountFrequencies(src)
	if err != nil {
		return err
	}
	root, ok := BuildTree(&ft)
	if !ok {
		return nil
	}
	table := NewCodeTable(root)

	if opts.Debug {
		log.Debugf("compress: %d symbols, %d distinct", ft.Total, table.Len())
		log.Debugf("compress: tree %s", TreeString(root))
		logDump(table)
	}

	bw := bufio.NewWriter(dst)
	if _, err := bw.WriteString(strconv.FormatUint(ft.Total, 10)); err != nil {
		return err
	}
	if err := WriteTree(bw, root); err != nil {
		return err
	}

	if _, err := src.Seek(start, io.SeekStart); err != nil {
		return err
	}

	var out io.Writer = bw
	if opts.Debug {
		out = &byteTracer{w: bw}
	}
	p := NewPacker(out, table)
	n, err := io.Copy(p, src)
	if err != nil {
		return err
	}
	if uint64(n) != ft.Total {
		return fmt.Errorf("huffman: source yielded %d bytes on second pass, expected %d", n, ft.Total)
	}
	if err := p.Close(); err != nil {
		return err
	}

	if opts.Debug {
		log.Debugf("compress: %d payload bits, predicted %d", p.Bits(), table.EncodedBits(&ft))
	}
	return bw.Flush()
}

// Decompress reverses Compress, reading the compressed stream from src and
// writing the original bytes to dst.
//
// Nothing is written to dst unless the whole stream decodes.  Errors wrap
// ErrMalformedHeader, ErrMalformedTree or ErrTruncatedStream; read errors
// from src are returned unchanged.  Empty input decompresses to empty output.
// Bytes after the last needed bit are ignored.
//
// The declared symbol count is trusted and the output is held in memory, so
// a tiny hostile stream with a single-leaf tree can demand unbounded output.
// Set opts.MaxSymbols when src is untrusted.
//
func Decompress(dst io.Writer, src io.Reader, opts Options) error {
	br := bufio.NewReader(src)
	if _, err := br.Peek(1); err == io.EOF {
		return nil
	} else if err != nil {
		return err
	}

	count, err := readCount(br)
	if err != nil {
		return err
	}
	if opts.MaxSymbols != 0 && count > opts.MaxSymbols {
		return fmt.Errorf("%w: %d symbols exceeds limit of %d", ErrMalformedHeader, count, opts.MaxSymbols)
	}
	root, err := ReadTree(br)
	if err != nil {
		return err
	}

	if opts.Debug {
		log.Debugf("decompress: %d symbols", count)
		log.Debugf("decompress: tree %s", TreeString(root))
	}

	var buf bytes.Buffer
	if count < maxPrealloc {
		buf.Grow(int(count))
	} else {
		buf.Grow(maxPrealloc)
	}
	if err := NewUnpacker(br, root).Decode(&buf, count); err != nil {
		return err
	}
	_, err = buf.WriteTo(dst)
	return err
}

// CompressBytes returns the compressed form of src.
func CompressBytes(src []byte, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Compress(&buf, bytes.NewReader(src), opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecompressBytes returns the original bytes of the compressed stream src.
func DecompressBytes(src []byte, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Decompress(&buf, bytes.NewReader(src), opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// readCount consumes the decimal symbol count.  It stops at the first byte
// that is not a digit and leaves that byte unread; a well-formed stream
// always has a tree marker there.
func readCount(br *bufio.Reader) (uint64, error) {
	var count uint64
	var digits int
	for {
		ch, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, err
		}
		if ch < '0' || ch > '9' {
			if err := br.UnreadByte(); err != nil {
				return 0, err
			}
			break
		}

		d := uint64(ch - '0')
		if count > (^uint64(0)-d)/10 {
			return 0, fmt.Errorf("%w: count overflows 64 bits", ErrMalformedHeader)
		}
		count = count*10 + d
		digits++
	}
	if digits == 0 {
		return 0, fmt.Errorf("%w: no digits", ErrMalformedHeader)
	}
	return count, nil
}

func logDump(table *CodeTable) {
	var buf strings.Builder
	_, _ = table.Dump(&buf)
	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		log.Debug(line)
	}
}

// byteTracer logs each packed byte on its way to the output.
type byteTracer struct {
	w     *bufio.Writer
	index uint64
}

func (t *byteTracer) Write(p []byte) (int, error) {
	for _, ch := range p {
		t.trace(ch)
	}
	return t.w.Write(p)
}

func (t *byteTracer) WriteByte(ch byte) error {
	t.trace(ch)
	return t.w.WriteByte(ch)
}

func (t *byteTracer) trace(ch byte) {
	log.Debugf("packed byte %d: %08b", t.index, ch)
	t.index++
}
