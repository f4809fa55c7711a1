// Copyright 2026 symsize project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package symsize

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/symsize/symsize/pkg/log"
	"github.com/ulikunitz/xz"
)

// Stdin is the input name that denotes standard input.
const Stdin = "-"

// Open opens a symbol listing for reading.
// Files ending with .xz or .gz are decompressed on the fly.
func Open(name string) (io.ReadCloser, error) {
	if name == Stdin {
		log.Logf(1, "reading symbols from stdin")
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open symbol listing: %w", err)
	}
	var r io.Reader
	var closeDec func() error
	switch {
	case strings.HasSuffix(name, ".xz"):
		xr, err := xz.NewReader(bufio.NewReader(f))
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to read xz header of %v: %w", name, err)
		}
		r = xr
	case strings.HasSuffix(name, ".gz"):
		gr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to read gzip header of %v: %w", name, err)
		}
		r, closeDec = gr, gr.Close
	default:
		log.Logf(1, "reading symbols from %v", name)
		return f, nil
	}
	log.Logf(1, "reading compressed symbols from %v", name)
	return &decompressor{Reader: r, file: f, closeDec: closeDec}, nil
}

type decompressor struct {
	io.Reader
	file     *os.File
	closeDec func() error
}

func (d *decompressor) Close() error {
	var err error
	if d.closeDec != nil {
		err = d.closeDec()
	}
	if ferr := d.file.Close(); err == nil {
		err = ferr
	}
	return err
}
