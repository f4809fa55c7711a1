// Copyright 2026 symsize project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

// symsize prints the size of every symbol in an nm-style listing,
// inferred as the distance to the next symbol.
//
// Usage:
//
//	nm -n vmlinux > x
//	symsize [-human] [x]
//
// The listing may be xz- or gzip-compressed, or "-" for stdin.
package main

import (
	"flag"
	"io"
	"os"

	"github.com/symsize/symsize/pkg/log"
	"github.com/symsize/symsize/pkg/symsize"
	"github.com/symsize/symsize/pkg/tool"
)

const defaultInput = "x"

var flagHuman = flag.Bool("human", false, "print sizes in KiB/MiB instead of bytes")

func main() {
	defer tool.Init()()
	name := defaultInput
	switch flag.NArg() {
	case 0:
	case 1:
		name = flag.Arg(0)
	default:
		tool.Usagef("usage: symsize [flags] [listing]")
	}
	if err := run(name, os.Stdout, symsize.Options{Human: *flagHuman}); err != nil {
		tool.Fail(err)
	}
}

func run(name string, w io.Writer, opts symsize.Options) error {
	in, err := symsize.Open(name)
	if err != nil {
		return err
	}
	defer in.Close()
	stats, err := symsize.Run(in, w, opts)
	if err != nil {
		return err
	}
	log.Logf(1, "%v symbols, %v skipped lines, %v total",
		stats.Records, stats.Skipped, symsize.HumanSize(stats.KnownSize))
	return nil
}
