// Copyright 2026 symsize project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package symsize

import (
	"fmt"
	"math/big"

	"github.com/dustin/go-humanize"
)

const unknownNote = " (last symbol - size unknown)"

// Format renders the entry as "<size:8>  <hex>  <info>".
// Entries of unknown size use "?" in place of the size.
func Format(ent Entry, human bool) string {
	if !ent.Known() {
		return fmt.Sprintf("%8s  %s  %s%s", "?", ent.Hex, ent.Info, unknownNote)
	}
	size := ent.Size.String()
	if human {
		size = HumanSize(ent.Size)
	}
	return fmt.Sprintf("%8s  %s  %s", size, ent.Hex, ent.Info)
}

// HumanSize renders size with IEC units, e.g. 4.0 KiB or -16 B.
func HumanSize(size *big.Int) string {
	if size.Sign() < 0 {
		return "-" + humanize.BigIBytes(new(big.Int).Neg(size))
	}
	return humanize.BigIBytes(size)
}
