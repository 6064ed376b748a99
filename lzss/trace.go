// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzss

import (
	"bytes"

	"github.com/icza/bitio"
	"github.com/ulikunitz/qsf/xio"
	"github.com/ulikunitz/qsf/xlog"
)

// Trace logs the header and one line for every token of the compressed
// stream in data. It doesn't reconstruct the units, so streams with invalid
// match references can be inspected as well.
func Trace(l xlog.Logger, data []byte) error {
	sr, err := newSeqReader(bitio.NewReader(bytes.NewReader(data)))
	if err != nil {
		return err
	}
	p := &sr.p
	xlog.Printf(l, "header S=%d L=%d W=%d N=%d offset bits %d length bits %d",
		p.SearchSize, p.LookaheadSize, p.UnitBits, p.UnitCount,
		sr.offsetBits, sr.lengthBits)
	processed := 0
	for processed < p.UnitCount {
		seq, err := sr.next()
		if err != nil {
			return err
		}
		if seq.MatchLen == 0 {
			xlog.Printf(l, "literal %d", seq.Aux)
			processed++
			continue
		}
		xlog.Printf(l, "match %d %d", seq.Offset, seq.MatchLen)
		processed += int(seq.MatchLen)
	}
	if processed != p.UnitCount {
		return xio.Errorf(xio.Malformed, "lzss trace",
			"tokens cover %d units; header declares %d",
			processed, p.UnitCount)
	}
	return nil
}
