// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qsf

import (
	"bytes"
	"testing"

	"github.com/icza/bitio"
	"github.com/ulikunitz/qsf/lzss"
	"github.com/ulikunitz/qsf/xio"
)

// section builds a raw section from the palette blocks, the cell count and
// the payload.
func section(t *testing.T, palette []Block, cells int32,
	payload []byte) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	w := bitio.NewWriter(buf)
	if err := xio.WriteInt32(w, int32(len(palette))); err != nil {
		t.Fatalf("WriteInt32 error %s", err)
	}
	for _, b := range palette {
		if err := writeBlock(w, b); err != nil {
			t.Fatalf("writeBlock error %s", err)
		}
	}
	if err := xio.WriteInt32(w, cells); err != nil {
		t.Fatalf("WriteInt32 error %s", err)
	}
	if err := xio.WriteByteArray(w, payload); err != nil {
		t.Fatalf("WriteByteArray error %s", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("w.Close() error %s", err)
	}
	return buf.Bytes()
}

func compress(t *testing.T, units []uint16, p lzss.Params) []byte {
	t.Helper()
	data, err := lzss.Compress(units, p)
	if err != nil {
		t.Fatalf("lzss.Compress error %s", err)
	}
	return data
}

func TestEncodeBytes(t *testing.T) {
	data, err := Encode(Slice{NewBlock("a")})
	if err != nil {
		t.Fatalf("Encode error %s", err)
	}
	want := []byte{
		0, 0, 0, 1, // palette size
		0, 0, 0, 1, 0, 0x61, // "a"
		0, 0, 0, 0, // property count
		0, 0, 0, 1, // cell count
		0, 0, 0, 7, // payload length
		0x07, 0xf0, 0x20, 0x00, 0x10, 0x00, // S=127 L=32 W=1 N=1
		0x00, // literal 0 and padding
	}
	if !bytes.Equal(data, want) {
		t.Fatalf("Encode returned % x; want % x", data, want)
	}
}

func TestEncodeEmpty(t *testing.T) {
	data, err := Encode(Slice{})
	if err != nil {
		t.Fatalf("Encode error %s", err)
	}
	want := make([]byte, 12)
	if !bytes.Equal(data, want) {
		t.Fatalf("Encode returned % x; want % x", data, want)
	}
}

func TestEncodeTooManyCells(t *testing.T) {
	s := make(Slice, MaxCells+1)
	for i := range s {
		s[i] = NewBlock("stone")
	}
	e, err := NewEncoder(EncoderConfig{})
	if err != nil {
		t.Fatalf("NewEncoder error %s", err)
	}
	buf := new(bytes.Buffer)
	err = e.Encode(buf, s)
	if !xio.IsKind(err, Contract) {
		t.Fatalf("Encode error %v; want contract error", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("Encode wrote %d bytes; want none", buf.Len())
	}
}

func TestDecodeTruncated(t *testing.T) {
	s := Slice{
		NewBlock("a", Property{"k", "v"}), NewBlock("b"),
		NewBlock("a", Property{"k", "v"}), NewBlock("b"),
	}
	data, err := Encode(s)
	if err != nil {
		t.Fatalf("Encode error %s", err)
	}
	for n := 0; n < len(data); n++ {
		_, err := Decode(data[:n])
		if !xio.IsKind(err, Malformed) {
			t.Fatalf("Decode(data[:%d]) error %v; want malformed",
				n, err)
		}
	}
}

func TestDecodeMalformed(t *testing.T) {
	a, b, c := NewBlock("a"), NewBlock("b"), NewBlock("c")
	negative := new(bytes.Buffer)
	w := bitio.NewWriter(negative)
	if err := xio.WriteInt32(w, -1); err != nil {
		t.Fatalf("WriteInt32 error %s", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("w.Close() error %s", err)
	}
	tests := []struct {
		name string
		data []byte
	}{
		{"negative palette size", negative.Bytes()},
		{"negative cell count", section(t, []Block{a}, -1, nil)},
		{"too many cells", section(t, []Block{a}, MaxCells+1, nil)},
		{"payload for empty section", section(t, nil, 0, []byte{0})},
		{"cells without palette", section(t, nil, 1,
			compress(t, []uint16{0}, lzss.Params{UnitBits: 1}))},
		{"repeated palette block", section(t, []Block{a, b, a}, 1,
			compress(t, []uint16{0}, lzss.Params{UnitBits: 2}))},
		{"unit width mismatch", section(t, []Block{a, b}, 2,
			compress(t, []uint16{0, 1}, lzss.Params{UnitBits: 3}))},
		{"unit count mismatch", section(t, []Block{a, b}, 3,
			compress(t, []uint16{0, 1}, lzss.Params{UnitBits: 2}))},
		{"index outside palette", section(t, []Block{a, b, c}, 2,
			compress(t, []uint16{0, 3}, lzss.Params{UnitBits: 2}))},
		{"garbage payload", section(t, []Block{a}, 1,
			[]byte{0xff, 0xff, 0xff, 0x00, 0x00, 0x00})},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.data)
			if !xio.IsKind(err, Malformed) {
				t.Fatalf("Decode error %v; want malformed", err)
			}
		})
	}
}

func TestDecodeRepeatedKey(t *testing.T) {
	buf := new(bytes.Buffer)
	w := bitio.NewWriter(buf)
	check := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("write error %s", err)
		}
	}
	check(xio.WriteInt32(w, 1))
	check(xio.WriteSizedString(w, "a"))
	check(xio.WriteInt32(w, 2))
	for i := 0; i < 2; i++ {
		check(xio.WriteSizedString(w, "k"))
		check(xio.WriteSizedString(w, "v"))
	}
	check(xio.WriteInt32(w, 0))
	check(xio.WriteByteArray(w, nil))
	check(w.Close())
	_, err := Decode(buf.Bytes())
	if !xio.IsKind(err, Malformed) {
		t.Fatalf("Decode error %v; want malformed", err)
	}
}

func TestEncodeInvalidUTF8(t *testing.T) {
	tests := []struct {
		name string
		s    Slice
	}{
		{"name", Slice{NewBlock("a\xffb")}},
		{"distinct names", Slice{NewBlock("\xff"), NewBlock("\xfe")}},
		{"key", Slice{NewBlock("a", Property{"k\xc0", "v"})}},
		{"value", Slice{NewBlock("a"),
			NewBlock("b", Property{"k", "\xed\xa0\x80"})}},
	}
	e, err := NewEncoder(EncoderConfig{})
	if err != nil {
		t.Fatalf("NewEncoder error %s", err)
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf := new(bytes.Buffer)
			err := e.Encode(buf, tc.s)
			if !xio.IsKind(err, Contract) {
				t.Fatalf("Encode error %v; want contract error",
					err)
			}
			if buf.Len() != 0 {
				t.Fatalf("Encode wrote %d bytes; want none",
					buf.Len())
			}
		})
	}
}
