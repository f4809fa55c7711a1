// Copyright 2026 symsize project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

// Package symsize computes symbol sizes from nm-style listings.
//
// The input is a sorted listing of "<hex-offset> <type> <name>" lines
// (e.g. the output of nm -n). Symbol tables often lack sizes, so the size
// of a symbol is taken to be the distance to the next symbol's offset.
// The last symbol has no successor and its size is reported as unknown.
package symsize

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math/big"
)

// maxLineLen bounds a single listing line; C++ and Rust mangled names easily exceed
// the default bufio.Scanner limit.
const maxLineLen = 16 << 20

// Options control how sizes are rendered.
type Options struct {
	// Human renders sizes with IEC units (4.0 KiB) instead of plain byte counts.
	Human bool
}

// Stats describes a single Run.
type Stats struct {
	Records   int      // symbol lines accepted
	Skipped   int      // lines that are not symbol lines
	KnownSize *big.Int // sum of all known sizes
}

// Run reads the listing from r and writes one line per symbol to w.
// Lines that are not symbol lines are skipped.
func Run(r io.Reader, w io.Writer, opts Options) (*Stats, error) {
	stats := &Stats{KnownSize: new(big.Int)}
	out := bufio.NewWriter(w)
	var calc Calculator
	emit := func(ent Entry) {
		if ent.Known() {
			stats.KnownSize.Add(stats.KnownSize, ent.Size)
		}
		fmt.Fprintln(out, Format(ent, opts.Human))
	}
	s := bufio.NewScanner(r)
	s.Buffer(nil, maxLineLen)
	s.Split(scanLines)
	for s.Scan() {
		rec, ok := ParseLine(s.Text())
		if !ok {
			stats.Skipped++
			continue
		}
		stats.Records++
		if ent, ok := calc.Add(rec); ok {
			emit(ent)
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("failed to read symbol listing: %w", err)
	}
	if ent, ok := calc.Finish(); ok {
		emit(ent)
	}
	if err := out.Flush(); err != nil {
		return nil, fmt.Errorf("failed to write sizes: %w", err)
	}
	return stats, nil
}

// scanLines is bufio.ScanLines that also accepts lone \r line terminators
// (classic Mac text). \r\n is a single terminator.
func scanLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// Need one more byte to tell \r from \r\n.
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
