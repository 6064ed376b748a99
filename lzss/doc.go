// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package lzss implements an LZSS compressor and decompressor for streams of
fixed-width units. A unit is an unsigned integer of 1 to 16 bits; the qsf
section format uses it for bit-packed palette indexes.

A compressed stream starts with a header of four 12-bit fields: the search
buffer size S, the lookahead buffer size L, the unit width W and the unit
count N minus one. Each token follows as a flag bit. A cleared flag is
followed by a literal unit of W bits. A set flag is followed by the match
offset in BitsToRepresent(S) bits and the match length in BitsToRepresent(L)
bits. The stream is padded with zero bits to a byte boundary.

The compressor keeps a history of S units, initially all zero, so the first
units can reference a full window. For every position it searches the longest
match first and, for a given length, the smallest offset first. Only the first
match found is considered; it is emitted if it costs fewer bits than the
literals it replaces, otherwise a literal is emitted.

Compress and Decompress work on unit slices; CompressPacked and
DecompressPacked work on bit-packed unit buffers.

	data, err := lzss.Compress(units, lzss.Params{UnitBits: 4})
	if err != nil {
		return err
	}
	units, params, err := lzss.Decompress(data)
*/
package lzss
