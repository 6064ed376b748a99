// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xio

import (
	"bytes"
	"unicode/utf16"

	"github.com/icza/bitio"
)

// BitWriter is the bit stream consumed by the encoders. The type
// *bitio.Writer of github.com/icza/bitio supports this interface. Bits are
// written most significant bit first.
type BitWriter interface {
	WriteBits(r uint64, n uint8) error
	WriteBool(b bool) error
	WriteByte(c byte) error
	// Align pads the stream with zero bits up to the next byte boundary.
	Align() (skipped uint8, err error)
}

// BitReader is the bit stream consumed by the decoders. The type
// *bitio.Reader supports this interface.
type BitReader interface {
	ReadBits(n uint8) (u uint64, err error)
	ReadBool() (b bool, err error)
	ReadByte() (b byte, err error)
}

// MaxUnitBits is the largest width of a unit.
const MaxUnitBits = 16

// checkUnitBits panics if n is not a valid unit width.
func checkUnitBits(n int) {
	if !(1 <= n && n <= MaxUnitBits) {
		panic(Errorf(Contract, "unit",
			"unit width %d outside [1,%d]", n, MaxUnitBits))
	}
}

// WriteUnit writes the n least significant bits of u. The function panics
// if n is outside [1,16].
func WriteUnit(w BitWriter, n int, u uint16) error {
	checkUnitBits(n)
	return Wrap("write unit", w.WriteBits(uint64(u), uint8(n)))
}

// ReadUnit reads an n-bit unsigned unit. The function panics if n is
// outside [1,16].
func ReadUnit(r BitReader, n int) (u uint16, err error) {
	checkUnitBits(n)
	x, err := r.ReadBits(uint8(n))
	if err != nil {
		return 0, Wrap("read unit", err)
	}
	return uint16(x), nil
}

// WriteBool writes a single flag bit.
func WriteBool(w BitWriter, b bool) error {
	return Wrap("write flag", w.WriteBool(b))
}

// ReadBool reads a single flag bit.
func ReadBool(r BitReader) (b bool, err error) {
	b, err = r.ReadBool()
	return b, Wrap("read flag", err)
}

// WriteInt32 writes the two's complement representation of x in 32 bits.
func WriteInt32(w BitWriter, x int32) error {
	return Wrap("write int32", w.WriteBits(uint64(uint32(x)), 32))
}

// ReadInt32 reads a 32-bit two's complement integer.
func ReadInt32(r BitReader) (x int32, err error) {
	u, err := r.ReadBits(32)
	if err != nil {
		return 0, Wrap("read int32", err)
	}
	return int32(uint32(u)), nil
}

// ReadLength reads an int32 that must not be negative.
func ReadLength(r BitReader, what string) (n int, err error) {
	x, err := ReadInt32(r)
	if err != nil {
		return 0, err
	}
	if x < 0 {
		return 0, Errorf(Malformed, "read "+what,
			"negative %s %d", what, x)
	}
	return int(x), nil
}

// WriteChar16 writes a raw 16-bit code unit.
func WriteChar16(w BitWriter, c uint16) error {
	return Wrap("write char16", w.WriteBits(uint64(c), 16))
}

// ReadChar16 reads a raw 16-bit code unit.
func ReadChar16(r BitReader) (c uint16, err error) {
	u, err := r.ReadBits(16)
	if err != nil {
		return 0, Wrap("read char16", err)
	}
	return uint16(u), nil
}

// initialCap limits allocations driven by length fields of the input.
const initialCap = 1 << 12

func capFor(n int) int {
	if n > initialCap {
		return initialCap
	}
	return n
}

// WriteSizedString writes s as an int32 count of UTF-16 code units followed
// by the code units themselves.
func WriteSizedString(w BitWriter, s string) error {
	cs := utf16.Encode([]rune(s))
	if err := WriteInt32(w, int32(len(cs))); err != nil {
		return err
	}
	for _, c := range cs {
		if err := WriteChar16(w, c); err != nil {
			return err
		}
	}
	return nil
}

// ReadSizedString reads a string written by WriteSizedString. Unpaired
// surrogates are replaced by U+FFFD.
func ReadSizedString(r BitReader) (s string, err error) {
	n, err := ReadLength(r, "string length")
	if err != nil {
		return "", err
	}
	cs := make([]uint16, 0, capFor(n))
	for i := 0; i < n; i++ {
		c, err := ReadChar16(r)
		if err != nil {
			return "", err
		}
		cs = append(cs, c)
	}
	return string(utf16.Decode(cs)), nil
}

// WriteByteArray writes the length of p as int32 followed by the bytes of p.
func WriteByteArray(w BitWriter, p []byte) error {
	if err := WriteInt32(w, int32(len(p))); err != nil {
		return err
	}
	for _, c := range p {
		if err := w.WriteByte(c); err != nil {
			return Wrap("write byte array", err)
		}
	}
	return nil
}

// ReadByteArray reads a byte array written by WriteByteArray.
func ReadByteArray(r BitReader) (p []byte, err error) {
	n, err := ReadLength(r, "byte array length")
	if err != nil {
		return nil, err
	}
	p = make([]byte, 0, capFor(n))
	for i := 0; i < n; i++ {
		c, err := r.ReadByte()
		if err != nil {
			return nil, Wrap("read byte array", err)
		}
		p = append(p, c)
	}
	return p, nil
}

// PackUnits writes the units with n bits each into a byte slice. The last
// byte is padded with zero bits.
func PackUnits(units []uint16, n int) (p []byte, err error) {
	checkUnitBits(n)
	buf := new(bytes.Buffer)
	w := bitio.NewWriter(buf)
	for _, u := range units {
		if err = WriteUnit(w, n, u); err != nil {
			return nil, err
		}
	}
	if err = w.Close(); err != nil {
		return nil, Wrap("pack units", err)
	}
	return buf.Bytes(), nil
}

// UnpackUnits reads count units of n bits each from p.
func UnpackUnits(p []byte, n int, count int) (units []uint16, err error) {
	checkUnitBits(n)
	if count < 0 {
		return nil, Errorf(Contract, "unpack units",
			"negative unit count %d", count)
	}
	r := bitio.NewReader(bytes.NewReader(p))
	units = make([]uint16, 0, capFor(count))
	for i := 0; i < count; i++ {
		u, err := ReadUnit(r, n)
		if err != nil {
			return nil, err
		}
		units = append(units, u)
	}
	return units, nil
}
