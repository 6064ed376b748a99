// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xio provides the bit stream glue used by the qsf packages. It
// defines the [BitWriter] and [BitReader] interfaces satisfied by
// github.com/icza/bitio, helpers for units, 32-bit integers, sized strings
// and byte arrays, the [Error] type with its [Kind] discriminant, and the
// [WriteCloserStack] type that combines the layers of an output file into a
// single [io.WriteCloser].
package xio

import (
	"errors"
	"io"
)

// WriteCloserStack allows to support multiple WriteClosers to be handled as
// single WriteCloser. Writes go to the top of the stack; Close closes from
// the top to the bottom, so buffers are flushed before the file is closed.
type WriteCloserStack struct {
	Stack []io.WriteCloser
}

// NewWriteCloserStack creates a new WriteCloserStack. It will have an an empty
// stack.
func NewWriteCloserStack() *WriteCloserStack {
	return &WriteCloserStack{}
}

// Write writes data to the top WriteCloser in the stack. If the stack is empty
// Write will always succeed.
func (w *WriteCloserStack) Write(p []byte) (n int, err error) {
	k := len(w.Stack)
	if k == 0 {
		return len(p), nil
	}
	return w.Stack[k-1].Write(p)
}

// Top returns the WriteCloser on the top of the stack or nil for an empty
// stack.
func (w *WriteCloserStack) Top() io.WriteCloser {
	k := len(w.Stack)
	if k == 0 {
		return nil
	}
	return w.Stack[k-1]
}

// Close closes all writers on the stack and combines the errors. It will clear
// the stack.
func (w *WriteCloserStack) Close() error {
	var errs []error
	for k := len(w.Stack) - 1; k >= 0; k-- {
		err := w.Stack[k].Close()
		errs = append(errs, err)
	}
	w.Stack = nil
	return errors.Join(errs...)
}

// Push adds a new WriteCloser to the top of the stack. It panics if the
// WriteCloser is nil.
func (w *WriteCloserStack) Push(wc io.WriteCloser) {
	if wc == nil {
		panic("cannot push nil WriteCloser onto stack")
	}
	w.Stack = append(w.Stack, wc)
}

// PushWriter adds a writer that is not a closer, for instance a
// *bufio.Writer. The function close is called when the stack is closed; it
// may be nil.
func (w *WriteCloserStack) PushWriter(wr io.Writer, close func() error) {
	if wr == nil {
		panic("cannot push nil Writer onto stack")
	}
	w.Push(writerCloser{Writer: wr, close: close})
}

type writerCloser struct {
	io.Writer
	close func() error
}

func (wc writerCloser) Close() error {
	if wc.close == nil {
		return nil
	}
	return wc.close()
}
