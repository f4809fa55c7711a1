// Copyright 2020 syzkaller project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package tool

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/symsize/symsize/pkg/log"
)

// installProfiling starts cpu profiling right away and returns a function
// that stops it and writes the heap profile.
func installProfiling(cpuprof, memprof string) func() {
	stop, err := startProfiling(cpuprof, memprof)
	if err != nil {
		log.Fatalf("%v", err)
	}
	return func() {
		if err := stop(); err != nil {
			log.Fatalf("%v", err)
		}
	}
}

func startProfiling(cpuprof, memprof string) (func() error, error) {
	stop := func() error { return nil }
	if cpuprof != "" {
		f, err := os.Create(cpuprof)
		if err != nil {
			return nil, fmt.Errorf("failed to create cpuprofile file: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to start cpu profile: %w", err)
		}
		stop = func() error {
			pprof.StopCPUProfile()
			return f.Close()
		}
	}
	if memprof != "" {
		prev := stop
		stop = func() error {
			if err := prev(); err != nil {
				return err
			}
			f, err := os.Create(memprof)
			if err != nil {
				return fmt.Errorf("failed to create memprofile file: %w", err)
			}
			defer f.Close()
			runtime.GC()
			if err := pprof.WriteHeapProfile(f); err != nil {
				return fmt.Errorf("failed to write mem profile: %w", err)
			}
			return nil
		}
	}
	return stop, nil
}
