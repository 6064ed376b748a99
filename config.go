// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qsf

import (
	"github.com/ulikunitz/qsf/lzss"
	"github.com/ulikunitz/qsf/xio"
	"github.com/ulikunitz/qsf/xlog"
)

// EncoderConfig describes the parameters of an encoder.
type EncoderConfig struct {
	// SearchSize is the size of the LZSS history window.
	SearchSize int
	// LookaheadSize is the size of the LZSS lookahead window.
	LookaheadSize int

	// Logger receives debug output if not nil.
	Logger xlog.Logger
}

// SetDefaults replaces zero values by default values.
func (c *EncoderConfig) SetDefaults() {
	if c.SearchSize == 0 {
		c.SearchSize = lzss.DefaultSearchSize
	}
	if c.LookaheadSize == 0 {
		c.LookaheadSize = lzss.DefaultLookaheadSize
	}
}

// Verify checks the configuration for errors.
func (c *EncoderConfig) Verify() error {
	const op = "verify encoder config"
	if c == nil {
		return xio.Errorf(Contract, op, "config pointer must not be nil")
	}
	if !(1 <= c.SearchSize && c.SearchSize <= lzss.MaxBufferSize) {
		return xio.Errorf(Contract, op, "search size %d outside [1,%d]",
			c.SearchSize, lzss.MaxBufferSize)
	}
	if !(1 <= c.LookaheadSize && c.LookaheadSize <= lzss.MaxBufferSize) {
		return xio.Errorf(Contract, op,
			"lookahead size %d outside [1,%d]",
			c.LookaheadSize, lzss.MaxBufferSize)
	}
	return nil
}

// DecoderConfig describes the parameters of a decoder.
type DecoderConfig struct {
	// Logger receives debug output if not nil.
	Logger xlog.Logger
}

// SetDefaults does nothing; it exists for symmetry with EncoderConfig.
func (c *DecoderConfig) SetDefaults() {}

// Verify checks the configuration for errors.
func (c *DecoderConfig) Verify() error {
	if c == nil {
		return xio.Errorf(Contract, "verify decoder config",
			"config pointer must not be nil")
	}
	return nil
}
