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

// Decoder reads sections.
type Decoder struct {
	cfg DecoderConfig
}

// NewDecoder creates a new decoder.
func NewDecoder(cfg DecoderConfig) (d *Decoder, err error) {
	cfg.SetDefaults()
	if err = cfg.Verify(); err != nil {
		return nil, err
	}
	return &Decoder{cfg: cfg}, nil
}

// DecodeBits reads a section from the bit stream and returns its blocks in
// the original order.
func (d *Decoder) DecodeBits(r xio.BitReader) (Slice, error) {
	h, err := readSectionHead(r)
	if err != nil {
		return nil, err
	}
	if h.cellCount == 0 {
		xlog.Printf(d.cfg.Logger, "qsf: decoded empty section")
		return Slice{}, nil
	}
	packed, p, err := lzss.DecompressPacked(h.payload)
	if err != nil {
		return nil, err
	}
	if err = h.checkParams(p); err != nil {
		return nil, err
	}
	indexes, err := xio.UnpackUnits(packed, p.UnitBits, h.cellCount)
	if err != nil {
		return nil, err
	}
	s, err := h.palette.Resolve(indexes)
	if err != nil {
		return nil, err
	}
	xlog.Printf(d.cfg.Logger,
		"qsf: decoded %d cells, palette size %d, S=%d L=%d W=%d",
		len(s), h.palette.Len(), p.SearchSize, p.LookaheadSize,
		p.UnitBits)
	return s, nil
}

// Decode reads a section from r. The decoder may read beyond the end of the
// section if r is not an io.ByteReader.
func (d *Decoder) Decode(r io.Reader) (Slice, error) {
	return d.DecodeBits(bitio.NewReader(r))
}

// Decode decodes the section in p using the default configuration.
func Decode(p []byte) (Slice, error) {
	d, err := NewDecoder(DecoderConfig{})
	if err != nil {
		return nil, err
	}
	return d.Decode(bytes.NewReader(p))
}
