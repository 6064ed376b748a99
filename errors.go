// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qsf

import "github.com/ulikunitz/qsf/xio"

// Error is the error type returned by the encoder and decoder functions.
type Error = xio.Error

// Kind discriminates errors.
type Kind = xio.Kind

// Error kinds.
const (
	Malformed = xio.Malformed
	Contract  = xio.Contract
	IO        = xio.IO
)

// IsKind reports whether err is or wraps an *Error of the given kind.
func IsKind(err error, kind Kind) bool { return xio.IsKind(err, kind) }
