// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzss

import "errors"

// window provides a circular buffer of units. The rear index points to the
// oldest unit; n units are buffered.
type window struct {
	data []uint16
	rear int
	n    int
}

// initWindow initializes a window with a given capacity. If the capacity is
// out of range an error is returned.
func initWindow(w *window, capacity int) error {
	if capacity <= 0 {
		return errors.New("lzss: window capacity out of range")
	}
	*w = window{data: make([]uint16, capacity)}
	return nil
}

// Cap returns the capacity of the window.
func (w *window) Cap() int { return len(w.data) }

// Len returns the number of units buffered.
func (w *window) Len() int { return w.n }

// Available returns the number of units that can still be pushed.
func (w *window) Available() int { return len(w.data) - w.n }

// addIndex adds a non-negative integer to the index i and returns the
// resulting index. The function takes care of wrapping the index.
func (w *window) addIndex(i int, n int) int {
	// subtraction of len(w.data) prevents overflow
	i += n - len(w.data)
	if i < 0 {
		i += len(w.data)
	}
	return i
}

// errFull indicates that no unit can be pushed into the window.
var errFull = errors.New("lzss: window full")

// errEmpty indicates that no unit can be popped from the window.
var errEmpty = errors.New("lzss: window empty")

// Push appends u as the newest unit.
func (w *window) Push(u uint16) error {
	if w.n == len(w.data) {
		return errFull
	}
	w.data[w.addIndex(w.rear, w.n)] = u
	w.n++
	return nil
}

// Pop removes and returns the oldest unit.
func (w *window) Pop() (u uint16, err error) {
	if w.n == 0 {
		return 0, errEmpty
	}
	u = w.data[w.rear]
	w.rear = w.addIndex(w.rear, 1)
	w.n--
	return u, nil
}

// Peek returns the unit at distance i from the oldest unit. The function
// panics if i is not in [0,Len()).
func (w *window) Peek(i int) uint16 {
	if !(0 <= i && i < w.n) {
		panic("lzss: window index out of range")
	}
	return w.data[w.addIndex(w.rear, i)]
}

// Shift drops the oldest unit of a full window and appends u as the newest
// unit. The function panics if the window is not full.
func (w *window) Shift(u uint16) {
	if w.n != len(w.data) {
		panic("lzss: shift on window that is not full")
	}
	w.data[w.rear] = u
	w.rear = w.addIndex(w.rear, 1)
}
