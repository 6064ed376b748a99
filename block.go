// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qsf

import (
	"sort"
	"strconv"
	"strings"
)

// Property is a key/value pair of a block state.
type Property struct {
	Key   string
	Value string
}

// Block is an immutable block value consisting of a name and an ordered list
// of properties. Two blocks are equal if they have the same name and the
// same set of properties; the order of the properties doesn't matter.
type Block struct {
	name  string
	props []Property
}

// NewBlock creates a block. If a key is given multiple times, the last value
// is used at the position of the first occurrence.
func NewBlock(name string, props ...Property) Block {
	b := Block{name: name}
	if len(props) == 0 {
		return b
	}
	b.props = make([]Property, 0, len(props))
	for _, p := range props {
		if i := b.find(p.Key); i >= 0 {
			b.props[i].Value = p.Value
			continue
		}
		b.props = append(b.props, p)
	}
	return b
}

// find returns the position of the key or -1.
func (b Block) find(key string) int {
	for i, p := range b.props {
		if p.Key == key {
			return i
		}
	}
	return -1
}

// Name returns the name of the block.
func (b Block) Name() string { return b.name }

// Properties returns a copy of the properties in their original order.
func (b Block) Properties() []Property {
	if len(b.props) == 0 {
		return nil
	}
	return append([]Property(nil), b.props...)
}

// NumProperties returns the number of properties.
func (b Block) NumProperties() int { return len(b.props) }

// Property returns the value for key.
func (b Block) Property(key string) (value string, ok bool) {
	i := b.find(key)
	if i < 0 {
		return "", false
	}
	return b.props[i].Value, true
}

// Equal reports whether b and c are structurally equal.
func (b Block) Equal(c Block) bool {
	if b.name != c.name || len(b.props) != len(c.props) {
		return false
	}
	for _, p := range b.props {
		v, ok := c.Property(p.Key)
		if !ok || v != p.Value {
			return false
		}
	}
	return true
}

// Key returns a canonical representation of the block. Equal blocks have
// the same key, so it can be used as map key.
func (b Block) Key() string {
	var sb strings.Builder
	writeField := func(s string) {
		sb.WriteString(strconv.Itoa(len(s)))
		sb.WriteByte(':')
		sb.WriteString(s)
	}
	writeField(b.name)
	if len(b.props) == 0 {
		return sb.String()
	}
	props := b.Properties()
	sort.Slice(props, func(i, j int) bool {
		return props[i].Key < props[j].Key
	})
	for _, p := range props {
		writeField(p.Key)
		writeField(p.Value)
	}
	return sb.String()
}

// Copy returns a deep copy of the block.
func (b Block) Copy() Block {
	return Block{name: b.name, props: b.Properties()}
}

// String returns the block in the form name[key=value,...].
func (b Block) String() string {
	if len(b.props) == 0 {
		return b.name
	}
	var sb strings.Builder
	sb.WriteString(b.name)
	sb.WriteByte('[')
	for i, p := range b.props {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(p.Key)
		sb.WriteByte('=')
		sb.WriteString(p.Value)
	}
	sb.WriteByte(']')
	return sb.String()
}
