// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qsf

import (
	"github.com/ulikunitz/qsf/lzss"
	"github.com/ulikunitz/qsf/xio"
)

// MaxPaletteSize is the maximum number of distinct blocks in a section.
// Indexes must fit into 16-bit units.
const MaxPaletteSize = 1<<16 - 1

// Palette is the ordered list of the distinct blocks of a section. The order
// is the order of the first occurrence.
type Palette struct {
	blocks []Block
	index  map[string]int
}

// add appends b if it isn't already present and returns its index.
func (p *Palette) add(b Block) (i int, added bool) {
	key := b.Key()
	if i, ok := p.index[key]; ok {
		return i, false
	}
	if p.index == nil {
		p.index = make(map[string]int)
	}
	i = len(p.blocks)
	p.blocks = append(p.blocks, b.Copy())
	p.index[key] = i
	return i, true
}

// NewPalette creates a palette from the given blocks. The blocks must be
// distinct.
func NewPalette(blocks ...Block) (*Palette, error) {
	if len(blocks) > MaxPaletteSize {
		return nil, xio.Errorf(Contract, "new palette",
			"palette size %d exceeds %d", len(blocks), MaxPaletteSize)
	}
	p := &Palette{index: make(map[string]int, len(blocks))}
	for _, b := range blocks {
		if _, added := p.add(b); !added {
			return nil, xio.Errorf(Contract, "new palette",
				"duplicate block %s", b)
		}
	}
	return p, nil
}

// BuildPalette iterates once over the blocks and returns the palette and the
// index of every block in the palette in the order of the sequence.
func BuildPalette(b Blocks) (p *Palette, indexes []uint16, err error) {
	p = &Palette{index: make(map[string]int)}
	overflow := false
	b.ForEach(func(x Block) {
		if overflow {
			return
		}
		i, _ := p.add(x)
		if i >= MaxPaletteSize {
			overflow = true
			return
		}
		indexes = append(indexes, uint16(i))
	})
	if overflow {
		return nil, nil, xio.Errorf(Contract, "build palette",
			"more than %d distinct blocks", MaxPaletteSize)
	}
	return p, indexes, nil
}

// Len returns the number of blocks in the palette.
func (p *Palette) Len() int { return len(p.blocks) }

// Block returns the block at index i.
func (p *Palette) Block(i int) Block { return p.blocks[i] }

// Index returns the index of b in the palette.
func (p *Palette) Index(b Block) (i int, ok bool) {
	i, ok = p.index[b.Key()]
	return i, ok
}

// Blocks returns the blocks of the palette.
func (p *Palette) Blocks() Slice {
	return append(Slice(nil), p.blocks...)
}

// IndexBits returns the width of the indexes for the palette.
func (p *Palette) IndexBits() int { return IndexBits(len(p.blocks)) }

// Resolve maps the indexes to the palette blocks. An index outside the
// palette results in a Malformed error.
func (p *Palette) Resolve(indexes []uint16) (Slice, error) {
	s := make(Slice, len(indexes))
	for k, i := range indexes {
		if int(i) >= len(p.blocks) {
			return nil, xio.Errorf(Malformed, "resolve",
				"cell %d: index %d outside palette of size %d",
				k, i, len(p.blocks))
		}
		s[k] = p.blocks[i]
	}
	return s, nil
}

// IndexBits returns the number of bits used for a palette index. It is at
// least 1, so a palette with a single block still uses 1-bit indexes.
func IndexBits(paletteSize int) int {
	n := lzss.BitsToRepresent(paletteSize)
	if n < 1 {
		return 1
	}
	return n
}
