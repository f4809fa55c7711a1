// Copyright 2026 symsize project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package symsize

import (
	"math/big"
	"strings"
)

// Record is a single symbol line of an nm-style listing.
type Record struct {
	Hex    string // offset token as it appeared in the input
	Offset *big.Int
	Info   string // type flag and name, single-space separated
}

// ParseLine parses "<hex-offset> <type> <name...>".
// Lines with less than 2 fields or with an offset that is not a hex number
// are not symbol lines (headers, blank lines, etc) and are rejected.
// Offsets are not limited to 64 bits.
func ParseLine(line string) (Record, bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Record{}, false
	}
	offset, ok := new(big.Int).SetString(fields[0], 16)
	if !ok {
		return Record{}, false
	}
	return Record{
		Hex:    fields[0],
		Offset: offset,
		Info:   strings.Join(fields[1:], " "),
	}, true
}
