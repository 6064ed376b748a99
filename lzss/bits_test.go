// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzss

import "testing"

func TestBitsToRepresent(t *testing.T) {
	tests := []struct{ n, want int }{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 2},
		{4, 3},
		{32, 6},
		{127, 7},
		{128, 8},
		{4095, 12},
		{4096, 13},
		{65535, 16},
		{-1, 0},
	}
	for _, tc := range tests {
		if got := BitsToRepresent(tc.n); got != tc.want {
			t.Errorf("BitsToRepresent(%d) = %d; want %d",
				tc.n, got, tc.want)
		}
	}
}
