// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/kr/pretty"
	"github.com/ulikunitz/qsf"
	"github.com/ulikunitz/qsf/internal/randgrid"
	"github.com/ulikunitz/qsf/lzss"
)

// listFile prints the section information. With trace the LZSS tokens are
// printed as well.
func listFile(w io.Writer, path string, opts *options) error {
	r, err := openInput(path)
	if err != nil {
		return err
	}
	if r != os.Stdin {
		defer r.Close()
	}
	info, err := qsf.ReadInfo(bufio.NewReader(r))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s: %d cells, palette size %d, %d-bit indexes,"+
		" payload %d bytes\n", path, info.CellCount, len(info.Palette),
		info.IndexBits, info.PayloadSize)
	if opts.verbose {
		pretty.Fprintf(w, "%# v\n", info.LZSS)
		for i, b := range info.Palette {
			fmt.Fprintf(w, "%5d %s\n", i, b)
		}
	}
	if opts.trace && info.CellCount > 0 {
		if err = lzss.Trace(log.New(w, "", 0), info.Payload); err != nil {
			return err
		}
	}
	return nil
}

// generate writes a sample grid with n distinct blocks.
func generate(w io.Writer, n int) error {
	if !(1 <= n && n <= randgrid.Cells) {
		return fmt.Errorf("number of blocks %d outside [1,%d]",
			n, randgrid.Cells)
	}
	bw := bufio.NewWriter(w)
	if err := writeGrid(bw, randgrid.Cycle(n)); err != nil {
		return err
	}
	return bw.Flush()
}
