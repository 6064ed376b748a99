// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzss

import (
	"github.com/ulikunitz/lz"
	"github.com/ulikunitz/qsf/xio"
)

// Parse computes the token sequence for units. A literal token is returned
// as lz.Seq{LitLen: 1, Aux: unit}, a match as lz.Seq{MatchLen: length,
// Offset: offset}. The field p.UnitCount is set to len(units) if it is zero
// and must equal len(units) otherwise.
func Parse(units []uint16, p Params) (seqs []lz.Seq, err error) {
	p.SetDefaults()
	if err = checkUnits(units, &p); err != nil {
		return nil, err
	}
	return parse(units, &p), nil
}

// checkUnits fixes the unit count and verifies the parameters and the unit
// values.
func checkUnits(units []uint16, p *Params) error {
	const op = "lzss parse"
	if p.UnitCount == 0 {
		p.UnitCount = len(units)
	}
	if p.UnitCount != len(units) {
		return xio.Errorf(xio.Contract, op,
			"unit count %d doesn't match %d units",
			p.UnitCount, len(units))
	}
	if err := p.Verify(); err != nil {
		return err
	}
	limit := uint32(1) << uint(p.UnitBits)
	for i, u := range units {
		if uint32(u) >= limit {
			return xio.Errorf(xio.Contract, op,
				"unit %d value %d exceeds %d bits",
				i, u, p.UnitBits)
		}
	}
	return nil
}

// parse implements the greedy match search. The parameters must have been
// verified.
func parse(units []uint16, p *Params) []lz.Seq {
	var history, lookahead window
	if err := initWindow(&history, p.SearchSize); err != nil {
		panic(err)
	}
	if err := initWindow(&lookahead, p.LookaheadSize); err != nil {
		panic(err)
	}
	for history.Available() > 0 {
		history.Push(0)
	}
	next := 0
	for next < len(units) && lookahead.Available() > 0 {
		lookahead.Push(units[next])
		next++
	}

	matchCost := p.MatchCost()
	seqs := make([]lz.Seq, 0, len(units)/4+1)
	for lookahead.Len() > 0 {
		offset, length := findMatch(&history, &lookahead)
		// Only the first match found is checked. If it doesn't save
		// bits, a literal is emitted.
		if length > 0 && matchCost < p.LiteralCost(length) {
			seqs = append(seqs, lz.Seq{
				MatchLen: uint32(length),
				Offset:   uint32(offset),
			})
		} else {
			length = 1
			seqs = append(seqs, lz.Seq{
				LitLen: 1,
				Aux:    uint32(lookahead.Peek(0)),
			})
		}
		for k := 0; k < length; k++ {
			u, _ := lookahead.Pop()
			history.Shift(u)
			if next < len(units) {
				lookahead.Push(units[next])
				next++
			}
		}
	}
	return seqs
}

// findMatch returns the first match of a prefix of the lookahead window in
// the history. Lengths are tried from the longest to the shortest and for
// each length the history positions j from S-length down to 1, which
// enumerates the offsets S-j in increasing order. A length of zero
// indicates that no match has been found.
func findMatch(history, lookahead *window) (offset, length int) {
	s := history.Cap()
	for n := lookahead.Len(); n >= 1; n-- {
	positions:
		for j := s - n; j > 0; j-- {
			for k := 0; k < n; k++ {
				if lookahead.Peek(k) != history.Peek(j+k) {
					continue positions
				}
			}
			return s - j, n
		}
	}
	return 0, 0
}
