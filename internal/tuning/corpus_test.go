// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tuning

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/qsf"
	"github.com/ulikunitz/qsf/internal/randgrid"
	"github.com/ulikunitz/qsf/lzss"
	"github.com/ulikunitz/zdata"
)

func TestSilesia(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping corpus test in short mode")
	}
	files, err := Files(zdata.Silesia)
	if err != nil {
		t.Fatalf("Files(zdata.Silesia) error %s", err)
	}
	files = Sample(files, 2*lzss.MaxUnitCount)

	for _, f := range files {
		f := f
		t.Run(f.Name, func(t *testing.T) {
			for _, units := range Chunks(f.Data) {
				data, err := lzss.Compress(units, lzss.Params{})
				if err != nil {
					t.Fatalf("lzss.Compress error %s", err)
				}
				got, _, err := lzss.Decompress(data)
				if err != nil {
					t.Fatalf("lzss.Decompress error %s", err)
				}
				if len(got) != len(units) {
					t.Fatalf("got %d units; want %d",
						len(got), len(units))
				}
				for i := range got {
					if got[i] != units[i] {
						t.Fatalf("unit %d: got %d; want %d",
							i, got[i], units[i])
					}
				}
			}
		})
	}

	size := Size(files)
	n, err := LZSSCompress(files, lzss.Params{})
	if err != nil {
		t.Fatalf("LZSSCompress error %s", err)
	}
	m, err := ZstdCompress(files, zstd.SpeedDefault)
	if err != nil {
		t.Fatalf("ZstdCompress error %s", err)
	}
	t.Logf("%d bytes: lzss ratio %.3f, zstd ratio %.3f", size,
		Ratio(n, size), Ratio(m, size))
}

func TestChunks(t *testing.T) {
	data := bytes.Repeat([]byte{7}, lzss.MaxUnitCount+1)
	chunks := Chunks(data)
	if len(chunks) != 2 {
		t.Fatalf("got %d chunks; want %d", len(chunks), 2)
	}
	if len(chunks[1]) != 1 || chunks[1][0] != 7 {
		t.Fatalf("second chunk %v; want [7]", chunks[1])
	}
}

func TestSectionSize(t *testing.T) {
	s := randgrid.Terrain(rand.NewSource(3))
	n, err := SectionSize(s, qsf.EncoderConfig{})
	if err != nil {
		t.Fatalf("SectionSize error %s", err)
	}
	data, err := qsf.Encode(s)
	if err != nil {
		t.Fatalf("qsf.Encode error %s", err)
	}
	if n != int64(len(data)) {
		t.Fatalf("SectionSize returned %d; want %d", n, len(data))
	}
}
