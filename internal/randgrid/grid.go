// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package randgrid generates block grids for tests and tuning. All
// generators are deterministic for a given source.
package randgrid

import (
	"fmt"
	"math/rand"

	"github.com/ulikunitz/qsf"
)

// Size is the edge length of a section.
const Size = 16

// Cells is the number of cells of a section.
const Cells = Size * Size * Size

// Named returns n distinct blocks without properties named block_0,
// block_1 and so on.
func Named(n int) []qsf.Block {
	blocks := make([]qsf.Block, n)
	for i := range blocks {
		blocks[i] = qsf.NewBlock(fmt.Sprintf("block_%d", i))
	}
	return blocks
}

// Cycle returns a section in which cell i holds block i mod n of Named(n).
// The cells are enumerated x-major, then y, then z.
func Cycle(n int) qsf.Slice {
	blocks := Named(n)
	s := make(qsf.Slice, 0, Cells)
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			for z := 0; z < Size; z++ {
				s = append(s, blocks[len(s)%n])
			}
		}
	}
	return s
}

var (
	materials = []string{
		"minecraft:stone", "minecraft:oak_log", "minecraft:glass",
		"minecraft:chest", "minecraft:redstone_wire", "minecraft:water",
	}
	facings = []string{"north", "east", "south", "west"}
)

// Palette returns n distinct blocks with properties.
func Palette(src rand.Source, n int) []qsf.Block {
	r := rand.New(src)
	blocks := make([]qsf.Block, n)
	for i := range blocks {
		props := []qsf.Property{
			{Key: "id", Value: fmt.Sprint(i)},
			{Key: "facing", Value: facings[r.Intn(len(facings))]},
		}
		if r.Intn(2) == 0 {
			props = append(props, qsf.Property{
				Key: "waterlogged", Value: "true"})
		}
		r.Shuffle(len(props), func(i, j int) {
			props[i], props[j] = props[j], props[i]
		})
		name := materials[r.Intn(len(materials))]
		blocks[i] = qsf.NewBlock(name, props...)
	}
	return blocks
}

// Random returns count cells chosen uniformly from the palette.
func Random(src rand.Source, palette []qsf.Block, count int) qsf.Slice {
	r := rand.New(src)
	s := make(qsf.Slice, count)
	for i := range s {
		s[i] = palette[r.Intn(len(palette))]
	}
	return s
}

// Terrain blocks from bottom to top.
var (
	Bedrock = qsf.NewBlock("minecraft:bedrock")
	Stone   = qsf.NewBlock("minecraft:stone")
	Ore     = qsf.NewBlock("minecraft:iron_ore")
	Dirt    = qsf.NewBlock("minecraft:dirt")
	Grass   = qsf.NewBlock("minecraft:grass_block",
		qsf.Property{Key: "snowy", Value: "false"})
	Air = qsf.NewBlock("minecraft:air")
)

// Terrain returns a section of layered terrain. The surface height follows
// a random walk over the columns.
func Terrain(src rand.Source) qsf.Slice {
	r := rand.New(src)
	var height [Size][Size]int
	h := Size / 2
	for x := 0; x < Size; x++ {
		for z := 0; z < Size; z++ {
			h += r.Intn(3) - 1
			if h < 3 {
				h = 3
			} else if h > Size-2 {
				h = Size - 2
			}
			height[x][z] = h
		}
	}
	s := make(qsf.Slice, 0, Cells)
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			for z := 0; z < Size; z++ {
				h := height[x][z]
				var b qsf.Block
				switch {
				case y == 0:
					b = Bedrock
				case y < h-3:
					b = Stone
					if r.Intn(16) == 0 {
						b = Ore
					}
				case y < h:
					b = Dirt
				case y == h:
					b = Grass
				default:
					b = Air
				}
				s = append(s, b)
			}
		}
	}
	return s
}
