// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ulikunitz/qsf"
)

// The JSON representation of a grid.
type (
	jsonProperty struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}

	jsonBlock struct {
		Name       string         `json:"name"`
		Properties []jsonProperty `json:"properties,omitempty"`
	}

	jsonGrid struct {
		Blocks []jsonBlock `json:"blocks"`
	}
)

func toBlocks(g *jsonGrid) qsf.Slice {
	s := make(qsf.Slice, len(g.Blocks))
	for i, jb := range g.Blocks {
		props := make([]qsf.Property, len(jb.Properties))
		for k, p := range jb.Properties {
			props[k] = qsf.Property{Key: p.Key, Value: p.Value}
		}
		s[i] = qsf.NewBlock(jb.Name, props...)
	}
	return s
}

func toGrid(s qsf.Slice) *jsonGrid {
	g := &jsonGrid{Blocks: make([]jsonBlock, len(s))}
	for i, b := range s {
		jb := jsonBlock{Name: b.Name()}
		for _, p := range b.Properties() {
			jb.Properties = append(jb.Properties,
				jsonProperty{Key: p.Key, Value: p.Value})
		}
		g.Blocks[i] = jb
	}
	return g
}

// readGrid reads a JSON grid.
func readGrid(r io.Reader) (qsf.Slice, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var g jsonGrid
	if err := dec.Decode(&g); err != nil {
		return nil, fmt.Errorf("invalid JSON grid: %w", err)
	}
	return toBlocks(&g), nil
}

// writeGrid writes the blocks as JSON grid.
func writeGrid(w io.Writer, s qsf.Slice) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toGrid(s))
}
