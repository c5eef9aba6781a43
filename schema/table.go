// Copyright 2016, The dsnet/bitstream Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package schema holds the reference enumerations LLVM bitcode assigns
// fixed numeric meaning to: block IDs, per-block record codes, attribute
// kinds, opcodes, linkage and calling-convention tags. It is pure data with
// no dependency on package bitstream — a caller wires the two together to
// turn a decoded Record's numeric ID into a name.
package schema

// entry pairs one table row's numeric code with its symbolic name.
type entry struct {
	code uint64
	name string
}

// table is a closed, bidirectional code<->name mapping.
type table struct {
	byCode map[uint64]string
	byName map[string]uint64
}

func newTable(entries []entry) table {
	t := table{
		byCode: make(map[uint64]string, len(entries)),
		byName: make(map[string]uint64, len(entries)),
	}
	for _, e := range entries {
		t.byCode[e.code] = e.name
		t.byName[e.name] = e.code
	}
	return t
}

func (t table) name(code uint64) (string, bool) {
	s, ok := t.byCode[code]
	return s, ok
}

func (t table) value(name string) (uint64, bool) {
	c, ok := t.byName[name]
	return c, ok
}
