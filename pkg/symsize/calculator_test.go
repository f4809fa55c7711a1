// Copyright 2026 symsize project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package symsize

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, line string) Record {
	rec, ok := ParseLine(line)
	require.True(t, ok, line)
	return rec
}

func TestCalculator(t *testing.T) {
	var c Calculator
	_, ok := c.Finish()
	assert.False(t, ok)

	foo := mustParse(t, "1000 T foo")
	bar := mustParse(t, "1010 T bar")
	baz := mustParse(t, "0800 t baz")

	_, ok = c.Add(foo)
	assert.False(t, ok)

	ent, ok := c.Add(bar)
	require.True(t, ok)
	assert.Equal(t, foo, ent.Record)
	assert.Equal(t, "16", ent.Size.String())

	ent, ok = c.Add(baz)
	require.True(t, ok)
	assert.Equal(t, bar, ent.Record)
	assert.Equal(t, "-2064", ent.Size.String())

	ent, ok = c.Finish()
	require.True(t, ok)
	assert.Equal(t, baz, ent.Record)
	assert.False(t, ent.Known())
}

func TestCalculatorWideGaps(t *testing.T) {
	tests := []struct {
		from, to string
		size     string
	}{
		{"0", "ffffffffffffffff", "18446744073709551615"},
		{"ffffffffffffffff", "0", "-18446744073709551615"},
		{"2d000", "ffffffff81000000", "18446744071578660864"},
		{"ffffffffffffffff", "10000000000000000", "1"},
	}
	for _, test := range tests {
		var c Calculator
		c.Add(mustParse(t, test.from+" D from"))
		ent, ok := c.Add(mustParse(t, test.to+" T to"))
		require.True(t, ok)
		assert.Equal(t, test.size, ent.Size.String(), "%v -> %v", test.from, test.to)
	}
}

func TestFormat(t *testing.T) {
	rec := mustParse(t, "1000 T foo")
	size := func(s string) *big.Int {
		v, ok := new(big.Int).SetString(s, 10)
		require.True(t, ok, s)
		return v
	}
	tests := []struct {
		ent   Entry
		human bool
		want  string
	}{
		{Entry{rec, size("16")}, false, "      16  1000  T foo"},
		{Entry{rec, size("-4096")}, false, "   -4096  1000  T foo"},
		{Entry{rec, size("123456789")}, false, "123456789  1000  T foo"},
		{Entry{rec, size("18446744071578660864")}, false, "18446744071578660864  1000  T foo"},
		{Entry{rec, nil}, false, "       ?  1000  T foo (last symbol - size unknown)"},
		{Entry{rec, size("16")}, true, "    16 B  1000  T foo"},
		{Entry{rec, size("4096")}, true, " 4.0 KiB  1000  T foo"},
		{Entry{rec, size("-4096")}, true, "-4.0 KiB  1000  T foo"},
		{Entry{rec, nil}, true, "       ?  1000  T foo (last symbol - size unknown)"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, Format(test.ent, test.human))
	}
}
