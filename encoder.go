// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qsf

import (
	"bytes"
	"io"

	"github.com/icza/bitio"
	"github.com/ulikunitz/qsf/lzss"
	"github.com/ulikunitz/qsf/xio"
	"github.com/ulikunitz/qsf/xlog"
)

// Encoder writes sections.
type Encoder struct {
	cfg EncoderConfig
}

// NewEncoder creates an encoder. Zero values of the configuration are
// replaced by defaults.
func NewEncoder(cfg EncoderConfig) (e *Encoder, err error) {
	cfg.SetDefaults()
	if err = cfg.Verify(); err != nil {
		return nil, err
	}
	return &Encoder{cfg: cfg}, nil
}

// Config returns the configuration of the encoder.
func (e *Encoder) Config() EncoderConfig { return e.cfg }

// EncodeBits writes the section for the blocks to the bit stream. Nothing
// is written if the blocks cannot be encoded.
func (e *Encoder) EncodeBits(w xio.BitWriter, b Blocks) error {
	const op = "encode"
	pal, indexes, err := BuildPalette(b)
	if err != nil {
		return err
	}
	for _, x := range pal.blocks {
		if err = checkBlock(x); err != nil {
			return err
		}
	}
	n := len(indexes)
	if n > MaxCells {
		return xio.Errorf(Contract, op,
			"section has %d cells; at most %d supported", n, MaxCells)
	}

	var payload []byte
	width := pal.IndexBits()
	if n > 0 {
		packed, err := xio.PackUnits(indexes, width)
		if err != nil {
			return err
		}
		payload, err = lzss.CompressPacked(packed, lzss.Params{
			SearchSize:    e.cfg.SearchSize,
			LookaheadSize: e.cfg.LookaheadSize,
			UnitBits:      width,
			UnitCount:     n,
			Logger:        e.cfg.Logger,
		})
		if err != nil {
			return err
		}
	}

	if err = writePalette(w, pal); err != nil {
		return err
	}
	if err = xio.WriteInt32(w, int32(n)); err != nil {
		return err
	}
	if err = xio.WriteByteArray(w, payload); err != nil {
		return err
	}
	xlog.Printf(e.cfg.Logger,
		"qsf: encoded %d cells, palette size %d, index bits %d,"+
			" payload %d bytes", n, pal.Len(), width, len(payload))
	return nil
}

// Encode writes the section for the blocks to w. The writer w is not
// closed.
func (e *Encoder) Encode(w io.Writer, b Blocks) error {
	bw := bitio.NewWriter(w)
	if err := e.EncodeBits(bw, b); err != nil {
		return err
	}
	return xio.Wrap("encode", bw.Close())
}

// Encode returns the section for the blocks using the default
// configuration.
func Encode(b Blocks) ([]byte, error) {
	e, err := NewEncoder(EncoderConfig{})
	if err != nil {
		return nil, err
	}
	buf := new(bytes.Buffer)
	if err = e.Encode(buf, b); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
