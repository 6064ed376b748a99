// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzss

import (
	"testing"

	"github.com/ulikunitz/qsf/xio"
	"github.com/ulikunitz/qsf/xlog"
)

func TestTrace(t *testing.T) {
	data, err := Compress([]uint16{5, 9, 5},
		Params{SearchSize: 4, LookaheadSize: 4, UnitBits: 8})
	if err != nil {
		t.Fatalf("Compress error %s", err)
	}
	var lines xlog.Lines
	if err = Trace(&lines, data); err != nil {
		t.Fatalf("Trace error %s", err)
	}
	want := []string{
		"header S=4 L=4 W=8 N=3 offset bits 3 length bits 3",
		"literal 5",
		"literal 9",
		"match 2 1",
	}
	if len(lines) != len(want) {
		t.Fatalf("Trace logged %q; want %q", lines, want)
	}
	for i, s := range want {
		if lines[i] != s {
			t.Errorf("line %d: %q; want %q", i, lines[i], s)
		}
	}
}

func TestTraceTruncated(t *testing.T) {
	data, err := Compress([]uint16{1, 2, 3}, Params{UnitBits: 2})
	if err != nil {
		t.Fatalf("Compress error %s", err)
	}
	err = Trace(nil, data[:len(data)-1])
	if !xio.IsKind(err, xio.Malformed) {
		t.Fatalf("Trace error %v; want malformed", err)
	}
}
