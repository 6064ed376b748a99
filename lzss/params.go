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

// Limits and defaults of the stream descriptor.
const (
	// HeaderFieldBits is the width of every header field.
	HeaderFieldBits = 12
	// MaxBufferSize is the largest search or lookahead buffer size.
	MaxBufferSize = 1<<HeaderFieldBits - 1
	// MaxUnitCount is the largest number of units in one stream; the header
	// stores the count minus one.
	MaxUnitCount = 1 << HeaderFieldBits
	// MaxUnitBits is the largest unit width.
	MaxUnitBits = xio.MaxUnitBits

	DefaultSearchSize    = 127
	DefaultLookaheadSize = 32
	DefaultUnitBits      = 8
)

// Params describes a compressed unit stream. The first four fields are
// stored in the stream header.
type Params struct {
	// SearchSize is the capacity of the history window.
	SearchSize int
	// LookaheadSize is the capacity of the lookahead window and the
	// maximum match length.
	LookaheadSize int
	// UnitBits is the width of a unit.
	UnitBits int
	// UnitCount is the number of units in the stream.
	UnitCount int

	// Logger receives debug output; it is not part of the header.
	Logger xlog.Logger
}

// SetDefaults replaces zero values with default values. UnitCount has no
// default.
func (p *Params) SetDefaults() {
	if p.SearchSize == 0 {
		p.SearchSize = DefaultSearchSize
	}
	if p.LookaheadSize == 0 {
		p.LookaheadSize = DefaultLookaheadSize
	}
	if p.UnitBits == 0 {
		p.UnitBits = DefaultUnitBits
	}
}

// Verify checks whether the parameters can be stored in a header. Usually
// call SetDefaults before this method.
func (p *Params) Verify() error {
	const op = "verify lzss params"
	if p == nil {
		return xio.Errorf(xio.Contract, op, "params pointer must not be nil")
	}
	if !(1 <= p.SearchSize && p.SearchSize <= MaxBufferSize) {
		return xio.Errorf(xio.Contract, op,
			"search size %d outside [1,%d]", p.SearchSize, MaxBufferSize)
	}
	if !(1 <= p.LookaheadSize && p.LookaheadSize <= MaxBufferSize) {
		return xio.Errorf(xio.Contract, op,
			"lookahead size %d outside [1,%d]",
			p.LookaheadSize, MaxBufferSize)
	}
	if !(1 <= p.UnitBits && p.UnitBits <= MaxUnitBits) {
		return xio.Errorf(xio.Contract, op,
			"unit width %d outside [1,%d]", p.UnitBits, MaxUnitBits)
	}
	if !(1 <= p.UnitCount && p.UnitCount <= MaxUnitCount) {
		return xio.Errorf(xio.Contract, op,
			"unit count %d outside [1,%d]", p.UnitCount, MaxUnitCount)
	}
	return nil
}

// OffsetBits returns the width of the offset field of a match.
func (p *Params) OffsetBits() int { return BitsToRepresent(p.SearchSize) }

// LengthBits returns the width of the length field of a match.
func (p *Params) LengthBits() int { return BitsToRepresent(p.LookaheadSize) }

// MatchCost returns the number of bits of a match token.
func (p *Params) MatchCost() int { return 1 + p.OffsetBits() + p.LengthBits() }

// LiteralCost returns the number of bits required to store n units as
// literal tokens.
func (p *Params) LiteralCost(n int) int { return (1 + p.UnitBits) * n }

// writeHeader writes the four header fields.
func writeHeader(w xio.BitWriter, p *Params) error {
	fields := [...]int{p.SearchSize, p.LookaheadSize, p.UnitBits,
		p.UnitCount - 1}
	for _, f := range fields {
		if err := xio.WriteUnit(w, HeaderFieldBits, uint16(f)); err != nil {
			return err
		}
	}
	return nil
}

// readHeader reads the header and checks the fields.
func readHeader(r xio.BitReader) (p Params, err error) {
	var fields [4]int
	for i := range fields {
		u, err := xio.ReadUnit(r, HeaderFieldBits)
		if err != nil {
			return Params{}, err
		}
		fields[i] = int(u)
	}
	p = Params{
		SearchSize:    fields[0],
		LookaheadSize: fields[1],
		UnitBits:      fields[2],
		UnitCount:     fields[3] + 1,
	}
	if err = p.Verify(); err != nil {
		// a header that cannot be verified is a malformed stream
		e := err.(*xio.Error)
		return Params{}, &xio.Error{Kind: xio.Malformed,
			Op: "read lzss header", Err: e.Err}
	}
	return p, nil
}

// ReadParams returns the parameters stored in the header of a compressed
// stream.
func ReadParams(data []byte) (p Params, err error) {
	return readHeader(bitio.NewReader(bytes.NewReader(data)))
}
