// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qsf

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ulikunitz/qsf/xio"
)

func TestBuildPalette(t *testing.T) {
	a := NewBlock("a", Property{"k", "1"}, Property{"l", "2"})
	b := NewBlock("b")
	c := NewBlock("c")
	s := Slice{a, b, NewBlock("a", Property{"l", "2"}, Property{"k", "1"}),
		c, b}
	p, indexes, err := BuildPalette(s)
	if err != nil {
		t.Fatalf("BuildPalette error %s", err)
	}
	if diff := cmp.Diff(Slice{a, b, c}, p.Blocks()); diff != "" {
		t.Fatalf("palette mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]uint16{0, 1, 0, 2, 1}, indexes); diff != "" {
		t.Fatalf("indexes mismatch (-want +got):\n%s", diff)
	}
	if i, ok := p.Index(c); !ok || i != 2 {
		t.Fatalf("p.Index(c) = %d, %t; want 2, true", i, ok)
	}
	r, err := p.Resolve(indexes)
	if err != nil {
		t.Fatalf("p.Resolve error %s", err)
	}
	if !ContentEquals(r, s) {
		t.Fatalf("resolved blocks %v; want %v", r, s)
	}
}

func TestBuildPaletteOverflow(t *testing.T) {
	f := BlocksFunc(func(yield func(Block)) {
		for i := 0; i <= MaxPaletteSize; i++ {
			yield(NewBlock(strconv.Itoa(i)))
		}
	})
	_, _, err := BuildPalette(f)
	if !xio.IsKind(err, Contract) {
		t.Fatalf("BuildPalette error %v; want contract error", err)
	}
}

func TestNewPalette(t *testing.T) {
	p, err := NewPalette(NewBlock("a"), NewBlock("b"))
	if err != nil {
		t.Fatalf("NewPalette error %s", err)
	}
	if p.Len() != 2 || p.IndexBits() != 2 {
		t.Fatalf("Len %d IndexBits %d; want 2 2", p.Len(),
			p.IndexBits())
	}
	_, err = NewPalette(NewBlock("a"), NewBlock("a"))
	if !xio.IsKind(err, Contract) {
		t.Fatalf("NewPalette error %v; want contract error", err)
	}
}

func TestResolveOutOfRange(t *testing.T) {
	p, err := NewPalette(NewBlock("a"), NewBlock("b"), NewBlock("c"))
	if err != nil {
		t.Fatalf("NewPalette error %s", err)
	}
	_, err = p.Resolve([]uint16{0, 2, 3})
	if !xio.IsKind(err, Malformed) {
		t.Fatalf("Resolve error %v; want malformed error", err)
	}
}

func TestIndexBits(t *testing.T) {
	tests := []struct{ size, bits int }{
		{0, 1}, {1, 1}, {2, 2}, {3, 2}, {4, 3}, {8, 4}, {255, 8},
		{256, 9}, {MaxPaletteSize, 16},
	}
	for _, tc := range tests {
		if n := IndexBits(tc.size); n != tc.bits {
			t.Errorf("IndexBits(%d) = %d; want %d", tc.size, n,
				tc.bits)
		}
	}
}
