// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzss

import (
	"io"
	"testing"

	"github.com/icza/bitio"
)

// testWriter writes hand-crafted streams.
type testWriter struct {
	w *bitio.Writer
}

func newTestWriter(w io.Writer) *testWriter {
	return &testWriter{w: bitio.NewWriter(w)}
}

func (tw *testWriter) bits(u uint64, n uint8) {
	tw.w.TryWriteBits(u, n)
}

func (tw *testWriter) header(s, l, w, n uint64) {
	for _, f := range []uint64{s, l, w, n} {
		tw.bits(f, HeaderFieldBits)
	}
}

func (tw *testWriter) close(t *testing.T) {
	t.Helper()
	if tw.w.TryError != nil {
		t.Fatalf("bit writer error %s", tw.w.TryError)
	}
	if err := tw.w.Close(); err != nil {
		t.Fatalf("bit writer close error %s", err)
	}
}
