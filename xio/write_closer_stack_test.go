// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xio_test

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/icza/bitio"
	"github.com/ulikunitz/qsf/xio"
)

func ExampleWriteCloserStack() {
	wcStack := xio.NewWriteCloserStack()
	defer wcStack.Close()

	f, err := os.CreateTemp("", "example_write_closer_stack-*.qsf")
	if err != nil {
		panic(err)
	}
	defer os.Remove(f.Name())
	wcStack.Push(f)

	bw := bufio.NewWriter(f)
	wcStack.PushWriter(bw, bw.Flush)

	w := bitio.NewWriter(bw)
	wcStack.Push(w)

	if err = xio.WriteSizedString(w, "minecraft:stone"); err != nil {
		panic(err)
	}

	err = wcStack.Close()
	if err != nil {
		panic(err)
	}

	// Output:
}

type closeRecorder struct {
	bytes.Buffer
	name  string
	order *[]string
	err   error
}

func (c *closeRecorder) Close() error {
	*c.order = append(*c.order, c.name)
	return c.err
}

func TestWriteCloserStackOrder(t *testing.T) {
	var order []string
	errBottom := errors.New("bottom")
	bottom := &closeRecorder{name: "bottom", order: &order, err: errBottom}
	top := &closeRecorder{name: "top", order: &order}

	s := xio.NewWriteCloserStack()
	if s.Top() != nil {
		t.Fatalf("Top() of empty stack is not nil")
	}
	s.Push(bottom)
	s.Push(top)
	if _, err := io.WriteString(s, "abc"); err != nil {
		t.Fatalf("WriteString error %s", err)
	}
	if top.String() != "abc" || bottom.Len() != 0 {
		t.Fatalf("data not written to top of stack")
	}
	err := s.Close()
	if !errors.Is(err, errBottom) {
		t.Fatalf("Close() returned %v; want %v", err, errBottom)
	}
	if len(order) != 2 || order[0] != "top" || order[1] != "bottom" {
		t.Fatalf("close order %v; want [top bottom]", order)
	}
	if len(s.Stack) != 0 {
		t.Fatalf("stack not cleared after Close")
	}
}
