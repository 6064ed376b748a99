// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qsf

import (
	"io"

	"github.com/icza/bitio"
	"github.com/ulikunitz/qsf/lzss"
	"github.com/ulikunitz/qsf/xio"
)

// SectionInfo describes a section without its cells.
type SectionInfo struct {
	Palette     Slice
	IndexBits   int
	CellCount   int
	PayloadSize int
	// LZSS is the header of the payload; it is zero for an empty section.
	LZSS lzss.Params
	// Payload is the compressed index stream.
	Payload []byte
}

// ReadInfoBits reads the section information from the bit stream. The
// payload is not decompressed, but its header is checked.
func ReadInfoBits(r xio.BitReader) (info *SectionInfo, err error) {
	h, err := readSectionHead(r)
	if err != nil {
		return nil, err
	}
	info = &SectionInfo{
		Palette:     h.palette.Blocks(),
		IndexBits:   h.palette.IndexBits(),
		CellCount:   h.cellCount,
		PayloadSize: len(h.payload),
		Payload:     h.payload,
	}
	if h.cellCount == 0 {
		return info, nil
	}
	if info.LZSS, err = lzss.ReadParams(h.payload); err != nil {
		return nil, err
	}
	if err = h.checkParams(info.LZSS); err != nil {
		return nil, err
	}
	return info, nil
}

// ReadInfo reads the section information from r.
func ReadInfo(r io.Reader) (*SectionInfo, error) {
	return ReadInfoBits(bitio.NewReader(r))
}
