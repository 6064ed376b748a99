// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzss

import (
	"bytes"

	"github.com/icza/bitio"
	"github.com/ulikunitz/lz"
	"github.com/ulikunitz/qsf/xio"
	"github.com/ulikunitz/qsf/xlog"
)

// Compress compresses the units and returns the stream including the
// header. Zero fields of p are replaced by defaults; p.UnitCount is taken
// from len(units) if it is zero. An empty unit slice cannot be compressed.
func Compress(units []uint16, p Params) (data []byte, err error) {
	p.SetDefaults()
	if err = checkUnits(units, &p); err != nil {
		return nil, err
	}
	seqs := parse(units, &p)

	buf := new(bytes.Buffer)
	w := bitio.NewWriter(buf)
	if err = writeHeader(w, &p); err != nil {
		return nil, err
	}
	if err = writeSeqs(w, seqs, &p); err != nil {
		return nil, err
	}
	if err = w.Close(); err != nil {
		return nil, xio.Wrap("lzss compress", err)
	}
	data = buf.Bytes()

	if p.Logger != nil {
		matches := 0
		for _, s := range seqs {
			if s.MatchLen > 0 {
				matches++
			}
		}
		xlog.Printf(p.Logger,
			"lzss: S=%d L=%d W=%d N=%d: %d tokens, %d matches, %d bytes",
			p.SearchSize, p.LookaheadSize, p.UnitBits, p.UnitCount,
			len(seqs), matches, len(data))
	}
	return data, nil
}

// CompressPacked compresses p.UnitCount units of p.UnitBits bits each that
// are read from the bit-packed buffer packed.
func CompressPacked(packed []byte, p Params) (data []byte, err error) {
	p.SetDefaults()
	if err = p.Verify(); err != nil {
		return nil, err
	}
	units, err := xio.UnpackUnits(packed, p.UnitBits, p.UnitCount)
	if err != nil {
		return nil, err
	}
	return Compress(units, p)
}

// writeSeqs encodes the tokens.
func writeSeqs(w xio.BitWriter, seqs []lz.Seq, p *Params) error {
	offsetBits, lengthBits := p.OffsetBits(), p.LengthBits()
	for _, s := range seqs {
		if s.MatchLen == 0 {
			if err := xio.WriteBool(w, false); err != nil {
				return err
			}
			err := xio.WriteUnit(w, p.UnitBits, uint16(s.Aux))
			if err != nil {
				return err
			}
			continue
		}
		if err := xio.WriteBool(w, true); err != nil {
			return err
		}
		if err := xio.WriteUnit(w, offsetBits, uint16(s.Offset)); err != nil {
			return err
		}
		if err := xio.WriteUnit(w, lengthBits, uint16(s.MatchLen)); err != nil {
			return err
		}
	}
	return nil
}
