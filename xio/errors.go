// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xio

import (
	"errors"
	"fmt"
	"io"
)

// Kind discriminates the failures reported by an [Error].
type Kind int

const (
	// Malformed marks input that is not a valid stream: premature end of
	// input, out-of-range values or inconsistent header fields.
	Malformed Kind = iota + 1
	// Contract marks a violated precondition, for instance an invalid
	// configuration or a unit width outside [1,16].
	Contract
	// IO marks a failure of the underlying reader or writer.
	IO
)

func (k Kind) String() string {
	switch k {
	case Malformed:
		return "malformed stream"
	case Contract:
		return "contract violation"
	case IO:
		return "i/o failure"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is the single error type of the qsf packages. All failures are
// fatal for the operation that reports them; there are no partial results.
type Error struct {
	Kind Kind
	// Op describes the operation that failed.
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("qsf: %s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Errorf creates an *Error of the given kind. The message is formatted using
// fmt.Errorf, so %w is supported.
func Errorf(kind Kind, op string, format string, a ...interface{}) error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, a...)}
}

// IsKind reports whether err is or wraps an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// Wrap converts an error returned by a bit stream into an *Error. An
// end-of-file condition inside a structure is a malformed stream; every other
// failure of the underlying stream is an IO error. Errors that are already of
// type *Error are returned unchanged.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &Error{Kind: Malformed, Op: op, Err: io.ErrUnexpectedEOF}
	}
	return &Error{Kind: IO, Op: op, Err: err}
}
