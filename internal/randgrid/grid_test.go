// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randgrid

import (
	"math/rand"
	"testing"

	"github.com/ulikunitz/qsf"
)

func distinct(s qsf.Slice) int {
	m := make(map[string]bool)
	for _, b := range s {
		m[b.Key()] = true
	}
	return len(m)
}

func TestCycle(t *testing.T) {
	s := Cycle(8)
	if len(s) != Cells {
		t.Fatalf("len(Cycle(8)) = %d; want %d", len(s), Cells)
	}
	if n := distinct(s); n != 8 {
		t.Fatalf("Cycle(8) has %d distinct blocks; want %d", n, 8)
	}
	if !s[9].Equal(s[1]) {
		t.Fatalf("cell 9 is %s; want %s", s[9], s[1])
	}
}

func TestPalette(t *testing.T) {
	p := Palette(rand.NewSource(1), 100)
	if n := distinct(p); n != 100 {
		t.Fatalf("Palette has %d distinct blocks; want %d", n, 100)
	}
	q := Palette(rand.NewSource(1), 100)
	for i := range p {
		if !p[i].Equal(q[i]) {
			t.Fatalf("Palette not deterministic at %d: %s != %s",
				i, p[i], q[i])
		}
	}
}

func TestTerrain(t *testing.T) {
	s := Terrain(rand.NewSource(5))
	if len(s) != Cells {
		t.Fatalf("len(Terrain) = %d; want %d", len(s), Cells)
	}
	if !s[0].Equal(Bedrock) {
		t.Fatalf("cell 0 is %s; want %s", s[0], Bedrock)
	}
	// x=0, y=15, z=0 is above the highest surface
	top := (Size - 1) * Size
	if !s[top].Equal(Air) {
		t.Fatalf("cell %d is %s; want %s", top, s[top], Air)
	}
	t.Logf("terrain uses %d distinct blocks", distinct(s))
}
