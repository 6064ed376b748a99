// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tuning provides the functions to measure compression ratios of
// the LZSS engine and of whole sections.
package tuning

import (
	"bytes"
	"io"
	"io/fs"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/qsf"
	"github.com/ulikunitz/qsf/lzss"
)

type File struct {
	Name string
	Data []byte
}

func Files(corpus fs.FS) (files []File, err error) {
	err = fs.WalkDir(corpus, ".",
		func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() {
				return nil
			}
			data, err := fs.ReadFile(corpus, path)
			if err != nil {
				return err
			}
			files = append(files, File{Name: path, Data: data})
			return nil
		})
	return files, err
}

// Sample returns the files truncated to at most n bytes. The parser is
// quadratic in the window sizes, so full corpora are too slow to process.
func Sample(files []File, n int) []File {
	s := make([]File, len(files))
	for i, f := range files {
		s[i] = f
		if len(f.Data) > n {
			s[i].Data = f.Data[:n]
		}
	}
	return s
}

func Size(files []File) int64 {
	n := int64(0)
	for _, f := range files {
		n += int64(len(f.Data))
	}
	return n
}

type countWriter struct {
	n int64
}

func (w *countWriter) Write(p []byte) (n int, err error) {
	n = len(p)
	w.n += int64(n)
	return n, nil
}

// Chunks splits data into byte units of at most lzss.MaxUnitCount units.
func Chunks(data []byte) [][]uint16 {
	var chunks [][]uint16
	for len(data) > 0 {
		k := min(len(data), lzss.MaxUnitCount)
		units := make([]uint16, k)
		for i, c := range data[:k] {
			units[i] = uint16(c)
		}
		chunks = append(chunks, units)
		data = data[k:]
	}
	return chunks
}

// LZSSCompress compresses the files as 8-bit units and returns the total
// size of the LZSS streams.
func LZSSCompress(files []File, p lzss.Params) (compressedSize int64, err error) {
	p.UnitBits = 8
	for _, f := range files {
		for _, units := range Chunks(f.Data) {
			p.UnitCount = len(units)
			data, err := lzss.Compress(units, p)
			if err != nil {
				return compressedSize, err
			}
			compressedSize += int64(len(data))
		}
	}
	return compressedSize, nil
}

// ZstdCompress compresses every file with zstd at the given level and
// returns the total compressed size. It serves as baseline.
func ZstdCompress(files []File, level zstd.EncoderLevel) (compressedSize int64, err error) {
	for _, f := range files {
		cw := &countWriter{}
		w, err := zstd.NewWriter(cw, zstd.WithEncoderLevel(level),
			zstd.WithEncoderConcurrency(1))
		if err != nil {
			return compressedSize, err
		}
		_, err = io.Copy(w, bytes.NewReader(f.Data))
		if cerr := w.Close(); err == nil {
			err = cerr
		}
		compressedSize += cw.n
		if err != nil {
			return compressedSize, err
		}
	}
	return compressedSize, nil
}

// SectionSize returns the size of the encoded section.
func SectionSize(b qsf.Blocks, cfg qsf.EncoderConfig) (n int64, err error) {
	e, err := qsf.NewEncoder(cfg)
	if err != nil {
		return 0, err
	}
	cw := &countWriter{}
	if err = e.Encode(cw, b); err != nil {
		return cw.n, err
	}
	return cw.n, nil
}

// Ratio returns compressed divided by uncompressed.
func Ratio(compressed, uncompressed int64) float64 {
	if uncompressed == 0 {
		return 0
	}
	return float64(compressed) / float64(uncompressed)
}
