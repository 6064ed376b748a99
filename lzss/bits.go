// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzss

import "math/bits"

// BitsToRepresent returns the number of bits required to store n as an
// unsigned integer. It returns 0 for n == 0. Negative values are treated as
// zero.
func BitsToRepresent(n int) int {
	if n <= 0 {
		return 0
	}
	return bits.Len(uint(n))
}
