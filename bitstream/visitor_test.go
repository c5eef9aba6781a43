// Copyright 2016, The dsnet/bitstream Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitstream

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// buildNestedStream returns a stream with an outer block (id 20) containing
// one record and one nested inner block (id 21, itself containing a single
// record), to exercise recursive descent in both BlockIter and Visitor.
func buildNestedStream() []byte {
	var inner builder
	inner.unabbrevRecord(2, 5, 9)
	inner.endBlock(2)

	var outer builder
	outer.unabbrevRecord(2, 4, 1, 2)
	outer.subBlock(2, 21, 2, &inner)
	outer.endBlock(2)

	var top builder
	top.subBlock(topLevelAbbrevWidth, 20, 2, &outer)
	return top.bytes()
}

func TestCollectingVisitorNestedStructure(t *testing.T) {
	stream := buildNestedStream()
	rd := NewReader()
	top := NewBlockIter(rd, stream)
	var cv CollectingVisitor
	cv.Validate(Signature{})
	if err := driveVisitor(top, &cv); err != nil {
		t.Fatalf("driveVisitor() error = %v", err)
	}

	want := Block{
		Blocks: []Block{{
			ID:      20,
			Records: []Record{{ID: 4, Fields: []uint64{1, 2}}},
			Blocks: []Block{{
				ID:      21,
				Records: []Record{{ID: 5, Fields: []uint64{9}}},
			}},
		}},
	}
	if diff := cmp.Diff(want, cv.Root); diff != "" {
		t.Errorf("collected tree mismatch (-want +got):\n%s", diff)
	}
}

// skippingVisitor never enters any block, to exercise ShouldEnterBlock
// returning false.
type skippingVisitor struct {
	visited []uint64
}

func (v *skippingVisitor) Validate(Signature) bool      { return true }
func (v *skippingVisitor) ShouldEnterBlock(uint32) bool { return false }
func (v *skippingVisitor) DidExitBlock(uint32)          {}
func (v *skippingVisitor) Visit(_ uint32, rec Record) error {
	v.visited = append(v.visited, rec.ID)
	return nil
}

func TestVisitorSkipsEntireBlockTree(t *testing.T) {
	stream := buildNestedStream()
	rd := NewReader()
	top := NewBlockIter(rd, stream)
	v := &skippingVisitor{}
	if err := driveVisitor(top, v); err != nil {
		t.Fatalf("driveVisitor() error = %v", err)
	}
	if len(v.visited) != 0 {
		t.Fatalf("visited = %v, want none (outer block 20 was never entered)", v.visited)
	}
}

func TestDecodeRejectsUnacceptedSignature(t *testing.T) {
	stream := buildNestedStream()
	full := append(testutilBitcodeMagic(), stream...)
	cv := &CollectingVisitor{Accept: func(Signature) bool { return false }}
	err := Decode(full, cv)
	if err == nil {
		t.Fatalf("Decode() = nil error, want InvalidSignature")
	}
	if e, ok := err.(*Error); !ok || e.Kind != InvalidSignature {
		t.Fatalf("Decode() error = %v, want kind InvalidSignature", err)
	}
}

func TestDecodeEndToEnd(t *testing.T) {
	stream := buildNestedStream()
	full := append(testutilBitcodeMagic(), stream...)
	var cv CollectingVisitor
	if err := Decode(full, &cv); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(cv.Root.Blocks) != 1 || cv.Root.Blocks[0].ID != 20 {
		t.Fatalf("Root.Blocks = %+v, want one block with ID 20", cv.Root.Blocks)
	}
}

// testutilBitcodeMagic returns the 4-byte 'BC' 0xC0DE magic prefix Decode
// expects ahead of the raw bitstream.
func testutilBitcodeMagic() []byte {
	return []byte{0x42, 0x43, 0xc0, 0xde}
}
