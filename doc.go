// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package qsf encodes and decodes QSF sections. A section is an ordered
// sequence of blocks, usually the cells of a 16x16x16 voxel-world section in
// x, y, z order. The encoder replaces the blocks by indexes into a palette of
// distinct blocks, packs the indexes with the minimal bit width and
// compresses the packed indexes with the LZSS variant of package
// [github.com/ulikunitz/qsf/lzss].
//
// The section layout is
//
//	int32       palette size
//	palette     per entry: name, int32 property count, key/value pairs
//	int32       cell count
//	int32       payload length
//	[]byte      LZSS payload
//
// Strings are stored as an int32 count of UTF-16 code units followed by the
// code units. All integers are written most significant bit first.
//
// The encoders and decoders are single threaded and keep no state between
// calls.
package qsf
