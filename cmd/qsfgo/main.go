// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command qsfgo converts JSON block grids into QSF sections and back.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/ogier/pflag"
	"github.com/ulikunitz/qsf"
	"github.com/ulikunitz/qsf/xlog"
)

const usageStr = `Usage: qsfgo [OPTION]... [FILE]...
Encode JSON grid FILEs into the .qsf format or decode them (by default,
encode FILEs in place).

  -c, --stdout          write to standard output and don't delete input files
  -d, --decode          decode .qsf files into .json files
  -f, --force           force overwrite of output file
  -g, --generate=N      write a sample grid with N distinct blocks
  -h, --help            give this help
  -k, --keep            keep (don't delete) input files
  -l, --list            list information about .qsf files
  -L, --lookahead=N     LZSS lookahead size; default 32
  -S, --search=N        LZSS search size; default 127
  -t, --trace           list the LZSS tokens; implies --list
  -v, --verbose         verbose mode

With no file, or when FILE is -, read standard input.
`

type options struct {
	decompress bool
	stdout     bool
	force      bool
	keep       bool
	verbose    bool
	trace      bool
	search     int
	lookahead  int
}

func (o *options) logger() xlog.Logger {
	if !o.verbose {
		return nil
	}
	return log.Default()
}

func (o *options) encoderConfig() qsf.EncoderConfig {
	return qsf.EncoderConfig{
		SearchSize:    o.search,
		LookaheadSize: o.lookahead,
		Logger:        o.logger(),
	}
}

func (o *options) decoderConfig() qsf.DecoderConfig {
	return qsf.DecoderConfig{Logger: o.logger()}
}

// fileOptions returns the options for a single file argument. Standard
// input is always written to standard output.
func fileOptions(path string, opts *options) *options {
	if path != "-" {
		return opts
	}
	o := *opts
	o.stdout = true
	return &o
}

func usage(w io.Writer) {
	fmt.Fprint(w, usageStr)
}

func main() {
	// setup logger
	cmdName := filepath.Base(os.Args[0])
	log.SetPrefix(fmt.Sprintf("%s: ", cmdName))
	log.SetFlags(0)

	// initialize flags
	pflag.CommandLine = pflag.NewFlagSet(cmdName, pflag.ExitOnError)
	pflag.SetInterspersed(true)
	pflag.Usage = func() { usage(os.Stderr); os.Exit(1) }
	var (
		help      = pflag.BoolP("help", "h", false, "")
		stdout    = pflag.BoolP("stdout", "c", false, "")
		decode    = pflag.BoolP("decode", "d", false, "")
		force     = pflag.BoolP("force", "f", false, "")
		keep      = pflag.BoolP("keep", "k", false, "")
		list      = pflag.BoolP("list", "l", false, "")
		trace     = pflag.BoolP("trace", "t", false, "")
		verbose   = pflag.BoolP("verbose", "v", false, "")
		search    = pflag.IntP("search", "S", 0, "")
		lookahead = pflag.IntP("lookahead", "L", 0, "")
		gen       = pflag.IntP("generate", "g", 0, "")
	)
	pflag.Parse()

	if *help {
		usage(os.Stdout)
		os.Exit(0)
	}
	opts := &options{
		decompress: *decode,
		stdout:     *stdout,
		force:      *force,
		keep:       *keep,
		verbose:    *verbose,
		trace:      *trace,
		search:     *search,
		lookahead:  *lookahead,
	}
	cfg := opts.encoderConfig()
	cfg.SetDefaults()
	if err := cfg.Verify(); err != nil {
		log.Fatal(err)
	}

	if *gen != 0 {
		if err := generate(os.Stdout, *gen); err != nil {
			log.Fatal(err)
		}
		return
	}

	args := pflag.Args()
	if len(args) == 0 {
		args = []string{"-"}
	}
	exit := 0
	for _, path := range args {
		if *list || *trace {
			if err := listFile(os.Stdout, path, opts); err != nil {
				log.Printf("%s: %s", path, userError(err))
				exit = 1
			}
			continue
		}
		if !processFile(path, fileOptions(path, opts)) {
			exit = 1
		}
	}
	os.Exit(exit)
}
