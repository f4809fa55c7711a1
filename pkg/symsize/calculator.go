// Copyright 2026 symsize project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package symsize

import "math/big"

// Entry is a record with its inferred size.
// The last record of a listing has no successor and its size is unknown (nil).
type Entry struct {
	Record
	Size *big.Int
}

// Known reports whether the entry has a size.
func (ent Entry) Known() bool {
	return ent.Size != nil
}

// Calculator infers symbol sizes from the start of the next symbol,
// the same way the kernel computes sizes for kallsyms.
// Records must be added in listing order; the calculator does not sort them,
// so a decreasing offset yields a negative size.
// Offsets are arbitrary precision: the gap between per-cpu symbols at 0 and
// kernel text at ffffffff81000000 does not fit into int64.
type Calculator struct {
	prev    Record
	hasPrev bool
}

// Add consumes the next record and returns the entry for the previous one, if any.
func (c *Calculator) Add(rec Record) (Entry, bool) {
	var ent Entry
	ok := c.hasPrev
	if ok {
		ent = Entry{
			Record: c.prev,
			Size:   new(big.Int).Sub(rec.Offset, c.prev.Offset),
		}
	}
	c.prev, c.hasPrev = rec, true
	return ent, ok
}

// Finish returns the entry for the last added record.
// It returns false if no records were added.
func (c *Calculator) Finish() (Entry, bool) {
	if !c.hasPrev {
		return Entry{}, false
	}
	return Entry{Record: c.prev}, true
}
