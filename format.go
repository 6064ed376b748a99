// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qsf

import (
	"unicode/utf8"

	"github.com/ulikunitz/qsf/lzss"
	"github.com/ulikunitz/qsf/xio"
)

// MaxCells is the maximum number of cells of a section. The LZSS header
// stores the unit count in 12 bits.
const MaxCells = lzss.MaxUnitCount

// checkBlock rejects blocks with strings that are not valid UTF-8. Such
// strings would be stored with replacement characters and decode to a
// different block.
func checkBlock(b Block) error {
	check := func(what, s string) error {
		if !utf8.ValidString(s) {
			return xio.Errorf(Contract, "encode",
				"%s %q is not valid UTF-8", what, s)
		}
		return nil
	}
	if err := check("block name", b.name); err != nil {
		return err
	}
	for _, p := range b.props {
		if err := check("property key", p.Key); err != nil {
			return err
		}
		if err := check("property value", p.Value); err != nil {
			return err
		}
	}
	return nil
}

// writeBlock writes the name and the properties of the block.
func writeBlock(w xio.BitWriter, b Block) error {
	if err := xio.WriteSizedString(w, b.name); err != nil {
		return err
	}
	if err := xio.WriteInt32(w, int32(len(b.props))); err != nil {
		return err
	}
	for _, p := range b.props {
		if err := xio.WriteSizedString(w, p.Key); err != nil {
			return err
		}
		if err := xio.WriteSizedString(w, p.Value); err != nil {
			return err
		}
	}
	return nil
}

// readBlock reads a block written by writeBlock. Repeated keys are
// malformed.
func readBlock(r xio.BitReader) (b Block, err error) {
	name, err := xio.ReadSizedString(r)
	if err != nil {
		return Block{}, err
	}
	n, err := xio.ReadLength(r, "property count")
	if err != nil {
		return Block{}, err
	}
	props := make([]Property, 0, min(n, 64))
	for i := 0; i < n; i++ {
		var p Property
		if p.Key, err = xio.ReadSizedString(r); err != nil {
			return Block{}, err
		}
		if p.Value, err = xio.ReadSizedString(r); err != nil {
			return Block{}, err
		}
		props = append(props, p)
	}
	b = NewBlock(name, props...)
	if len(b.props) != len(props) {
		return Block{}, xio.Errorf(Malformed, "read block",
			"block %q has repeated property keys", name)
	}
	return b, nil
}

// writePalette writes the palette size and the palette entries.
func writePalette(w xio.BitWriter, p *Palette) error {
	if err := xio.WriteInt32(w, int32(len(p.blocks))); err != nil {
		return err
	}
	for _, b := range p.blocks {
		if err := writeBlock(w, b); err != nil {
			return err
		}
	}
	return nil
}

// readPalette reads a palette. Palettes with repeated blocks are malformed.
func readPalette(r xio.BitReader) (p *Palette, err error) {
	n, err := xio.ReadLength(r, "palette size")
	if err != nil {
		return nil, err
	}
	if n > MaxPaletteSize {
		return nil, xio.Errorf(Malformed, "read palette",
			"palette size %d exceeds %d", n, MaxPaletteSize)
	}
	p = &Palette{index: make(map[string]int, min(n, 256))}
	for i := 0; i < n; i++ {
		b, err := readBlock(r)
		if err != nil {
			return nil, err
		}
		if _, added := p.add(b); !added {
			return nil, xio.Errorf(Malformed, "read palette",
				"palette entry %d repeats block %s", i, b)
		}
	}
	return p, nil
}

// sectionHead contains the parts of a section preceding the cells.
type sectionHead struct {
	palette   *Palette
	cellCount int
	payload   []byte
}

// readSectionHead reads the palette, the cell count and the payload.
func readSectionHead(r xio.BitReader) (h sectionHead, err error) {
	if h.palette, err = readPalette(r); err != nil {
		return h, err
	}
	if h.cellCount, err = xio.ReadLength(r, "cell count"); err != nil {
		return h, err
	}
	if h.cellCount > MaxCells {
		return h, xio.Errorf(Malformed, "read section",
			"cell count %d exceeds %d", h.cellCount, MaxCells)
	}
	if h.payload, err = xio.ReadByteArray(r); err != nil {
		return h, err
	}
	if h.cellCount == 0 {
		if len(h.payload) != 0 {
			return h, xio.Errorf(Malformed, "read section",
				"payload of %d bytes for empty section",
				len(h.payload))
		}
		return h, nil
	}
	if h.palette.Len() == 0 {
		return h, xio.Errorf(Malformed, "read section",
			"%d cells but empty palette", h.cellCount)
	}
	return h, nil
}

// checkParams verifies that the LZSS header matches the section head.
func (h *sectionHead) checkParams(p lzss.Params) error {
	if w := h.palette.IndexBits(); p.UnitBits != w {
		return xio.Errorf(Malformed, "read section",
			"lzss unit width %d differs from index width %d",
			p.UnitBits, w)
	}
	if p.UnitCount != h.cellCount {
		return xio.Errorf(Malformed, "read section",
			"lzss unit count %d differs from cell count %d",
			p.UnitCount, h.cellCount)
	}
	return nil
}
