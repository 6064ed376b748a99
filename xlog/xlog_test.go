// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xlog

import (
	"bytes"
	"log"
	"testing"
)

func TestNilLogger(t *testing.T) {
	// must not panic
	Printf(nil, "%d", 1)
	Print(nil, "x")
	Println(nil, "x")
	if WithPrefix(nil, "p: ") != nil {
		t.Fatalf("WithPrefix(nil) is not nil")
	}
}

func TestWithPrefix(t *testing.T) {
	var lines Lines
	l := WithPrefix(&lines, "lzss: ")
	Printf(l, "match %d %d", 12, 3)
	Print(l, "literal ", 5)
	if len(lines) != 2 {
		t.Fatalf("got %d lines; want %d", len(lines), 2)
	}
	if lines[0] != "lzss: match 12 3" {
		t.Fatalf("lines[0] = %q", lines[0])
	}
	if lines[1] != "lzss: literal 5" {
		t.Fatalf("lines[1] = %q", lines[1])
	}
}

func TestStdLogger(t *testing.T) {
	buf := new(bytes.Buffer)
	l := log.New(buf, "", 0)
	Println(l, "palette", 8)
	if got := buf.String(); got != "palette 8\n" {
		t.Fatalf("got %q; want %q", got, "palette 8\n")
	}
}
