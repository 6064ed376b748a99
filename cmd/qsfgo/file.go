// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/qsf"
	"github.com/ulikunitz/qsf/xio"
)

type packer interface {
	outputPaths(path string) (outputPath, tmpPath string, err error)
	pack(w io.Writer, r io.Reader, opts *options) error
}

const (
	qsfSuffix  = ".qsf"
	jsonSuffix = ".json"
)

type qsfPacker struct{}

func (p qsfPacker) outputPaths(path string) (out, tmp string, err error) {
	if path == "-" {
		return "-", "-", nil
	}
	if path == "" {
		err = errors.New("path is empty")
		return
	}
	if strings.HasSuffix(path, qsfSuffix) {
		err = fmt.Errorf("path %s has suffix %s -- ignored",
			path, qsfSuffix)
		return
	}
	out = strings.TrimSuffix(path, jsonSuffix) + qsfSuffix
	tmp = out + ".pack"
	return
}

func (p qsfPacker) pack(w io.Writer, r io.Reader, opts *options) error {
	if w == nil {
		panic("writer w is nil")
	}
	if r == nil {
		panic("reader r is nil")
	}
	s, err := readGrid(bufio.NewReader(r))
	if err != nil {
		return err
	}
	e, err := qsf.NewEncoder(opts.encoderConfig())
	if err != nil {
		return err
	}
	return e.Encode(w, s)
}

type qsfUnpacker struct{}

func (u qsfUnpacker) outputPaths(path string) (out, tmp string, err error) {
	if path == "-" {
		return "-", "-", nil
	}
	if !strings.HasSuffix(path, qsfSuffix) {
		err = fmt.Errorf("path %s has no suffix %s",
			path, qsfSuffix)
		return
	}
	base := filepath.Base(path)
	if base == qsfSuffix {
		err = fmt.Errorf(
			"path %s has only suffix %s as filename",
			path, qsfSuffix)
		return
	}
	out = path[:len(path)-len(qsfSuffix)] + jsonSuffix
	tmp = out + ".unpack"
	return
}

func (u qsfUnpacker) pack(w io.Writer, r io.Reader, opts *options) error {
	if w == nil {
		panic("writer w is nil")
	}
	if r == nil {
		panic("reader r is nil")
	}
	// pack actually unpacks
	d, err := qsf.NewDecoder(opts.decoderConfig())
	if err != nil {
		return err
	}
	s, err := d.Decode(bufio.NewReader(r))
	if err != nil {
		return err
	}
	return writeGrid(w, s)
}

func signalHandler(tmpPath string) chan<- struct{} {
	quit := make(chan struct{})
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt)
	go func() {
		select {
		case <-quit:
			signal.Stop(sigch)
			return
		case <-sigch:
			if tmpPath != "-" {
				os.Remove(tmpPath)
			}
			os.Exit(7)
		}
	}()
	return quit
}

// openInput opens a regular file or returns standard input for "-".
func openInput(path string) (r *os.File, err error) {
	if path == "-" {
		return os.Stdin, nil
	}
	fi, err := os.Lstat(path)
	if err != nil {
		return nil, err
	}
	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%s is not a regular file", path)
	}
	return os.Open(path)
}

func packFile(pck packer, path, tmpPath string, opts *options) (err error) {
	r, err := openInput(path)
	if err != nil {
		return err
	}
	if r != os.Stdin {
		defer r.Close()
	}

	// The output stack consists of the file and a buffer on top of it.
	out := xio.NewWriteCloserStack()
	if tmpPath == "-" {
		out.PushWriter(os.Stdout, nil)
	} else {
		if opts.force {
			os.Remove(tmpPath)
		}
		f, err := os.OpenFile(tmpPath,
			os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0666)
		if err != nil {
			return err
		}
		out.Push(f)
	}
	bw := bufio.NewWriter(out.Top())
	out.PushWriter(bw, bw.Flush)

	err = pck.pack(out, r, opts)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return err
}

// userPathError represents a path error presentable to a user. In
// difference to os.PathError it removes the information of the
// operation returning the error.
type userPathError struct {
	Path string
	Err  error
}

// Error provides the error string for the path error.
func (e *userPathError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

// userError converts path error to an error message that is
// acceptable for qsfgo users. For instance Lstat informs that lstat detected
// that a file didn't exist; the operation is not relevant for users of the
// program.
func userError(err error) error {
	pe, ok := err.(*os.PathError)
	if !ok {
		return err
	}
	return &userPathError{Path: pe.Path, Err: pe.Err}
}

// processFile encodes or decodes a single file. It returns false if a
// warning has been printed.
func processFile(path string, opts *options) bool {
	var pck packer
	if opts.decompress {
		pck = qsfUnpacker{}
	} else {
		pck = qsfPacker{}
	}
	outputPath, tmpPath, err := pck.outputPaths(path)
	if err != nil {
		log.Print(userError(err))
		return false
	}
	if opts.stdout {
		outputPath, tmpPath = "-", "-"
	}
	if outputPath != "-" {
		_, err = os.Lstat(outputPath)
		if err == nil && !opts.force {
			log.Printf("file %s exists", outputPath)
			return false
		}
	}
	defer func() {
		if tmpPath != "-" {
			os.Remove(tmpPath)
		}
	}()
	quit := signalHandler(tmpPath)
	defer close(quit)

	if err = packFile(pck, path, tmpPath, opts); err != nil {
		log.Printf("%s: %s", path, userError(err))
		return false
	}
	if tmpPath != "-" && outputPath != "-" {
		if err = os.Rename(tmpPath, outputPath); err != nil {
			log.Print(userError(err))
			return false
		}
	}
	if !opts.keep && !opts.stdout && path != "-" {
		if err = os.Remove(path); err != nil {
			log.Print(userError(err))
			return false
		}
	}
	return true
}
