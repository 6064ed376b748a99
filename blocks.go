// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qsf

import "math"

// Blocks produces an ordered sequence of blocks. The order is fixed by the
// producer, for a section usually x-major, then y, then z. Consumers must not
// assume random access; ForEach may be called more than once and must
// produce the same sequence every time.
type Blocks interface {
	ForEach(f func(b Block))
}

// Slice is a materialized sequence of blocks.
type Slice []Block

// ForEach calls f for every block of the slice.
func (s Slice) ForEach(f func(b Block)) {
	for _, b := range s {
		f(b)
	}
}

// BlocksFunc adapts a function that drives the callback to the Blocks
// interface.
type BlocksFunc func(yield func(b Block))

// ForEach calls fn with f.
func (fn BlocksFunc) ForEach(f func(b Block)) { fn(f) }

// Collect materializes the blocks produced by b.
func Collect(b Blocks) Slice {
	var s Slice
	b.ForEach(func(x Block) { s = append(s, x) })
	return s
}

// ContentEquals reports whether a and b produce the same number of blocks
// and pairwise equal blocks in the same order.
func ContentEquals(a, b Blocks) bool {
	s := Collect(b)
	i := 0
	ok := true
	a.ForEach(func(x Block) {
		if !ok {
			return
		}
		if i >= len(s) || !x.Equal(s[i]) {
			ok = false
			return
		}
		i++
	})
	return ok && i == len(s)
}

// Info provides summary information about a block sequence.
type Info struct {
	// Count is the number of blocks.
	Count int
	// Width is the smallest width of a square holding all blocks.
	Width int
}

// Stat counts the blocks of b.
func Stat(b Blocks) Info {
	n := 0
	b.ForEach(func(Block) { n++ })
	w := int(math.Sqrt(float64(n)))
	for w*w < n {
		w++
	}
	return Info{Count: n, Width: w}
}
