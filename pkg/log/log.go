// Copyright 2016 syzkaller project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

// Package log provides functionality similar to standard log package with verbosity levels.
// The verbosity is a global setting (-vv flag) shared by all packages.
// Output goes to stderr so that it never mixes with data printed on stdout.
package log

import (
	"flag"
	"fmt"
	golog "log"
	"sync/atomic"
)

var (
	flagV     = flag.Int("vv", 0, "verbosity")
	verbosity atomic.Int64
)

// SetVerbosity overrides the -vv flag value.
func SetVerbosity(v int) {
	verbosity.Store(int64(v) + 1)
}

// V reports whether messages of level v are printed.
func V(v int) bool {
	cur := int(verbosity.Load()) - 1
	if cur < 0 {
		cur = *flagV
	}
	return v <= cur
}

func Logf(v int, msg string, args ...interface{}) {
	if V(v) {
		golog.Output(2, fmt.Sprintf(msg, args...))
	}
}

func Fatalf(msg string, args ...interface{}) {
	golog.Fatalf(msg, args...)
}
