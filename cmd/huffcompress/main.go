// Command huffcompress compresses or decompresses a file with the huffman
// package.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/op/go-logging"

	huffman "github.com/chronos-tachyon/huffpack"
)

const progName = "huffcompress"

var log = logging.MustGetLogger(progName)

var (
	decompress = flag.Bool("d", false, "decompress instead of compress")
	showBits   = flag.Bool("b", false, "log the tree, the code table and every packed byte")
	outPath    = flag.String("o", "", "output file (default stdout)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-d] [-b] [-o OUTPUT] [INPUT]\n", progName)
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	startLogging(*showBits)
	if err := run(flag.Arg(0)); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func startLogging(debug bool) {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatSpec := "%{level:8s} %{module:-12s} | %{message}"
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	if debug {
		leveled.SetLevel(logging.DEBUG, "")
	} else {
		leveled.SetLevel(logging.INFO, "")
	}
	logging.SetBackend(leveled)
}

func run(inPath string) (err error) {
	var input io.ReadSeeker
	if inPath == "" {
		// Compression reads its input twice, so stdin is buffered whole.
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		input = bytes.NewReader(data)
	} else {
		f, err := os.Open(inPath)
		if err != nil {
			return err
		}
		defer f.Close()
		input = f
	}

	var output io.Writer = os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		output = f
	}

	opts := huffman.Options{Debug: *showBits}
	if *decompress {
		return huffman.Decompress(output, input, opts)
	}
	return huffman.Compress(output, input, opts)
}
