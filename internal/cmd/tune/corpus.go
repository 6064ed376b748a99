// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/ulikunitz/qsf"
	"github.com/ulikunitz/qsf/internal/randgrid"
	"github.com/ulikunitz/qsf/internal/tuning"
	"github.com/ulikunitz/qsf/lzss"
	"github.com/ulikunitz/zdata"
)

// workload combines corpus samples with generated sections.
type workload struct {
	files    []tuning.File
	sections []qsf.Slice
	// size is the uncompressed size: the file bytes plus the bit-packed
	// indexes of the sections.
	size int64
}

func newWorkload(files []tuning.File, sections []qsf.Slice) (*workload, error) {
	w := &workload{files: files, sections: sections}
	w.size = tuning.Size(files)
	for _, s := range sections {
		p, indexes, err := qsf.BuildPalette(s)
		if err != nil {
			return nil, err
		}
		w.size += int64((len(indexes)*p.IndexBits() + 7) / 8)
	}
	return w, nil
}

// compress returns the compressed size of the workload.
func (w *workload) compress(searchSize, lookaheadSize int) (n int64, err error) {
	n, err = tuning.LZSSCompress(w.files, lzss.Params{
		SearchSize:    searchSize,
		LookaheadSize: lookaheadSize,
	})
	if err != nil {
		return n, err
	}
	cfg := qsf.EncoderConfig{
		SearchSize:    searchSize,
		LookaheadSize: lookaheadSize,
	}
	for _, s := range w.sections {
		k, err := tuning.SectionSize(s, cfg)
		n += k
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

var (
	_defaultWorkload *workload
	workloadOnce     sync.Once
	sampleSize       = 2 * lzss.MaxUnitCount
)

func defaultWorkload() *workload {
	workloadOnce.Do(func() {
		files, err := tuning.Files(zdata.Silesia)
		if err != nil {
			panic(fmt.Errorf("tuning.Files error %w", err))
		}
		files = tuning.Sample(files, sampleSize)
		sections := []qsf.Slice{randgrid.Cycle(8)}
		for seed := int64(1); seed <= 4; seed++ {
			sections = append(sections,
				randgrid.Terrain(rand.NewSource(seed)))
		}
		_defaultWorkload, err = newWorkload(files, sections)
		if err != nil {
			panic(fmt.Errorf("newWorkload error %w", err))
		}
	})
	return _defaultWorkload
}

func encoderBenchmark(cfg config) func(b *testing.B) {
	return func(b *testing.B) {
		w := defaultWorkload()
		b.SetBytes(w.size)
		var (
			err            error
			compressedSize int64
		)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			compressedSize, err = w.compress(cfg.SearchSize,
				cfg.LookaheadSize)
			if err != nil {
				b.Fatalf("compress error %s", err)
			}
		}
		b.StopTimer()
		r := tuning.Ratio(compressedSize, w.size)
		b.ReportMetric(r, "c/u")
	}
}
