// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzss

import (
	"bytes"

	"github.com/icza/bitio"
	"github.com/ulikunitz/lz"
	"github.com/ulikunitz/qsf/xio"
)

// seqReader reads the tokens of a compressed stream.
type seqReader struct {
	r          xio.BitReader
	p          Params
	offsetBits int
	lengthBits int
}

// newSeqReader reads the header and prepares the reading of the tokens.
func newSeqReader(r xio.BitReader) (*seqReader, error) {
	p, err := readHeader(r)
	if err != nil {
		return nil, err
	}
	return &seqReader{
		r:          r,
		p:          p,
		offsetBits: p.OffsetBits(),
		lengthBits: p.LengthBits(),
	}, nil
}

// next reads the next token.
func (sr *seqReader) next() (s lz.Seq, err error) {
	match, err := xio.ReadBool(sr.r)
	if err != nil {
		return lz.Seq{}, err
	}
	if !match {
		u, err := xio.ReadUnit(sr.r, sr.p.UnitBits)
		if err != nil {
			return lz.Seq{}, err
		}
		return lz.Seq{LitLen: 1, Aux: uint32(u)}, nil
	}
	offset, err := xio.ReadUnit(sr.r, sr.offsetBits)
	if err != nil {
		return lz.Seq{}, err
	}
	length, err := xio.ReadUnit(sr.r, sr.lengthBits)
	if err != nil {
		return lz.Seq{}, err
	}
	// A zero length would be indistinguishable from a literal.
	if offset == 0 || length == 0 {
		return lz.Seq{}, xio.Errorf(xio.Malformed, "lzss read token",
			"match offset %d length %d", offset, length)
	}
	return lz.Seq{MatchLen: uint32(length), Offset: uint32(offset)}, nil
}

// Read decompresses a stream from the bit reader. Only the bits of the
// stream are consumed; the padding to the byte boundary is not.
func Read(r xio.BitReader) (units []uint16, p Params, err error) {
	const op = "lzss decompress"
	sr, err := newSeqReader(r)
	if err != nil {
		return nil, Params{}, err
	}
	p = sr.p
	s := p.SearchSize
	// The zero prefix mirrors the initial history of the compressor.
	out := make([]uint16, s, s+p.UnitCount)
	processed := 0
	for processed < p.UnitCount {
		seq, err := sr.next()
		if err != nil {
			return nil, Params{}, err
		}
		if seq.MatchLen == 0 {
			out = append(out, uint16(seq.Aux))
			processed++
			continue
		}
		offset, length := int(seq.Offset), int(seq.MatchLen)
		switch {
		case offset > len(out):
			return nil, Params{}, xio.Errorf(xio.Malformed, op,
				"match offset %d exceeds window of %d units",
				offset, len(out))
		case processed+length > p.UnitCount:
			return nil, Params{}, xio.Errorf(xio.Malformed, op,
				"match length %d exceeds unit count %d",
				length, p.UnitCount)
		}
		// The start is computed once; units appended by the copy may be
		// source units again if length exceeds offset.
		start := len(out) - offset
		for k := 0; k < length; k++ {
			out = append(out, out[start+k])
		}
		processed += length
	}
	return out[s:], p, nil
}

// Decompress decompresses the stream in data and returns the units together
// with the parameters found in the header.
func Decompress(data []byte) (units []uint16, p Params, err error) {
	return Read(bitio.NewReader(bytes.NewReader(data)))
}

// DecompressPacked decompresses the stream in data and returns the units
// bit-packed with the unit width of the stream.
func DecompressPacked(data []byte) (packed []byte, p Params, err error) {
	units, p, err := Decompress(data)
	if err != nil {
		return nil, Params{}, err
	}
	packed, err = xio.PackUnits(units, p.UnitBits)
	if err != nil {
		return nil, Params{}, err
	}
	return packed, p, nil
}
