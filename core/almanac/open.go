package almanac

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
)

var gzipMagic = []byte{0x1f, 0x8b}

// Load reads the almanac at path ("-" for stdin) through Read.
func Load(path string) (*Almanac, error) {
	if path == "-" {
		return Read(os.Stdin)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	a, err := Read(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}

// Read parses an almanac from r. Input starting with the gzip magic bytes is
// decompressed first, so a compressed almanac works from a pipe as well as
// from a file, whatever its name.
func Read(r io.Reader) (*Almanac, error) {
	br := bufio.NewReaderSize(r, 64*1024)
	if head, _ := br.Peek(len(gzipMagic)); !bytes.Equal(head, gzipMagic) {
		return Parse(br)
	}
	zr, err := gzip.NewReader(br)
	if err != nil {
		return nil, fmt.Errorf("gzip almanac: %w", err)
	}
	defer func() { _ = zr.Close() }()
	return Parse(zr)
}
