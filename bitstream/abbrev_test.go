// Copyright 2016, The dsnet/bitstream Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitstream

import (
	"testing"

	"github.com/dsnet/bitstream/internal/testutil"
)

func TestReadAbbrevSimple(t *testing.T) {
	buf := testutil.MustDecodeBitGen(testutil.AbbrevDef(
		testutil.LiteralOp(17),
		testutil.FixedOp(8),
		testutil.VBROp(6),
	))
	c := newCursor(buf)
	ab := readAbbrev(c)
	if len(ab.fields) != 3 {
		t.Fatalf("got %d fields, want 3", len(ab.fields))
	}
	if ab.fields[0].kind != opLiteral || ab.fields[0].literal != 17 {
		t.Errorf("field 0 = %+v, want literal 17", ab.fields[0])
	}
	if ab.fields[1].kind != opFixed || ab.fields[1].width != 8 {
		t.Errorf("field 1 = %+v, want fixed width 8", ab.fields[1])
	}
	if ab.fields[2].kind != opVBR || ab.fields[2].width != 6 {
		t.Errorf("field 2 = %+v, want vbr width 6", ab.fields[2])
	}
	if ab.payload != nil {
		t.Errorf("payload = %+v, want nil", ab.payload)
	}
}

func TestReadAbbrevArrayPayload(t *testing.T) {
	buf := testutil.MustDecodeBitGen(testutil.AbbrevDef(
		testutil.LiteralOp(1),
		testutil.ArrayOp(),
		testutil.Char6Op(),
	))
	c := newCursor(buf)
	ab := readAbbrev(c)
	if ab.payload == nil || ab.payload.kind != opArray {
		t.Fatalf("payload = %+v, want array", ab.payload)
	}
	if ab.payload.elem.kind != opChar6 {
		t.Errorf("array element kind = %v, want char6", ab.payload.elem.kind)
	}
}

func TestReadAbbrevBlobPayload(t *testing.T) {
	buf := testutil.MustDecodeBitGen(testutil.AbbrevDef(
		testutil.LiteralOp(1),
		testutil.BlobOp(),
	))
	c := newCursor(buf)
	ab := readAbbrev(c)
	if ab.payload == nil || ab.payload.kind != opBlob {
		t.Fatalf("payload = %+v, want blob", ab.payload)
	}
}

func TestReadAbbrevArrayMustBePenultimate(t *testing.T) {
	// Array followed by something other than its element is invalid: here
	// three operands are declared but the array isn't the second-to-last.
	buf := testutil.MustDecodeBitGen(testutil.AbbrevDef(
		testutil.ArrayOp(),
		testutil.FixedOp(8),
		testutil.FixedOp(8),
	))
	c := newCursor(buf)
	expectErrorKind(t, InvalidAbbrev, func() { readAbbrev(c) })
}

func TestReadAbbrevBlobMustBeLast(t *testing.T) {
	buf := testutil.MustDecodeBitGen(testutil.AbbrevDef(
		testutil.BlobOp(),
		testutil.FixedOp(8),
	))
	c := newCursor(buf)
	expectErrorKind(t, InvalidAbbrev, func() { readAbbrev(c) })
}

func TestReadAbbrevNoOperandsRejected(t *testing.T) {
	buf := testutil.MustDecodeBitGen(testutil.VBR(5, 0))
	c := newCursor(buf)
	expectErrorKind(t, InvalidAbbrev, func() { readAbbrev(c) })
}

func TestAbbrevTableLookupGlobalBeforeLocal(t *testing.T) {
	table := &abbrevTable{
		global: []Abbreviation{{fields: []operand{{kind: opLiteral, literal: 100}}}},
		local:  []Abbreviation{{fields: []operand{{kind: opLiteral, literal: 200}}}},
	}
	g, ok := table.lookup(4)
	if !ok || g.fields[0].literal != 100 {
		t.Fatalf("lookup(4) = %+v, %v; want the global entry", g, ok)
	}
	l, ok := table.lookup(5)
	if !ok || l.fields[0].literal != 200 {
		t.Fatalf("lookup(5) = %+v, %v; want the local entry", l, ok)
	}
	if _, ok := table.lookup(6); ok {
		t.Errorf("lookup(6) unexpectedly found an entry")
	}
}
