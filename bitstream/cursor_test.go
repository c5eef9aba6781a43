// Copyright 2016, The dsnet/bitstream Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitstream

import (
	"testing"

	"github.com/dsnet/bitstream/internal/testutil"
)

// expectErrorKind runs fn, expecting it to panic with *Error of the given
// kind, mirroring the package's internal panic/recover error convention.
func expectErrorKind(t *testing.T, kind ErrorKind, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic with kind %v, got no panic", kind)
		}
		e, ok := r.(*Error)
		if !ok {
			panic(r) // not ours; let it propagate as a real test failure
		}
		if e.Kind != kind {
			t.Fatalf("got error kind %v, want %v", e.Kind, kind)
		}
	}()
	fn()
}

func TestCursorReadLE(t *testing.T) {
	// 0xB5 = 1011_0101; LSB-first: bit0=1, bit1=0, bit2=1, bit3=0, ...
	c := newCursor([]byte{0xB5})
	var got []uint64
	for i := 0; i < 8; i++ {
		got = append(got, c.read(1))
	}
	want := []uint64{1, 0, 1, 0, 1, 1, 0, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("bit %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestCursorReadAcrossBytes(t *testing.T) {
	c := newCursor([]byte{0xFF, 0x00})
	if v := c.read(12); v != 0x0FF {
		t.Errorf("read(12) = %#x, want 0x0ff", v)
	}
}

func TestCursorPeekDoesNotAdvance(t *testing.T) {
	c := newCursor([]byte{0x42})
	v1 := c.peek(8)
	v2 := c.read(8)
	if v1 != v2 {
		t.Errorf("peek() = %#x, read() = %#x; want equal", v1, v2)
	}
	if !c.isAtEnd() {
		t.Errorf("cursor not at end after consuming all 8 bits")
	}
}

func TestCursorReadOverflow(t *testing.T) {
	c := newCursor([]byte{0x00})
	expectErrorKind(t, BufferOverflow, func() { c.read(9) })
}

func TestCursorVBRRoundTrip(t *testing.T) {
	vectors := []struct {
		width uint
		value uint64
	}{
		{width: 6, value: 0},
		{width: 6, value: 31},
		{width: 6, value: 32},
		{width: 6, value: 12345},
		{width: 4, value: 1},
		{width: 8, value: 1 << 40},
		{width: 32, value: 0xFFFFFFFF},
	}
	for _, v := range vectors {
		buf := testutil.MustDecodeBitGen(testutil.VBR(v.width, v.value))
		c := newCursor(buf)
		got := c.readVBR(v.width)
		if got != v.value {
			t.Errorf("readVBR(%d) round trip of %d got %d", v.width, v.value, got)
		}
	}
}

func TestCursorVBROneBitWidthRejected(t *testing.T) {
	c := newCursor([]byte{0x01})
	expectErrorKind(t, VbrOverflow, func() { c.readVBR(1) })
}

// TestCursorVBRMultiChunkOverflow checks that overflow is detected even
// when the terminal chunk (continuation bit clear) is itself the chunk
// that pushes the accumulated shift past 64 bits, not just when a
// continuing chunk does.
func TestCursorVBRMultiChunkOverflow(t *testing.T) {
	// width 6: 5 payload bits per chunk, continuation bit is bit 5 (value
	// 32). 12 continuing chunks followed by one terminal chunk pushes the
	// accumulated shift to 65 bits on the terminal chunk itself.
	buf := testutil.MustDecodeBitGen("D6:32*12 D6:0")
	c := newCursor(buf)
	expectErrorKind(t, VbrOverflow, func() { c.readVBR(6) })
}

func TestCursorAlign32(t *testing.T) {
	c := newCursor(make([]byte, 8))
	c.read(5)
	c.align32()
	if c.pos != 32 {
		t.Errorf("pos after align32 = %d, want 32", c.pos)
	}
	c.align32() // already aligned; no-op
	if c.pos != 32 {
		t.Errorf("pos after redundant align32 = %d, want 32", c.pos)
	}
}

func TestCursorTakeBoundsChild(t *testing.T) {
	buf := make([]byte, 16)
	buf[4] = 0xAB
	c := newCursor(buf)
	c.read(32) // consume first word so take() starts 32-bit aligned
	sub := c.take(8)
	if sub.bitLen() != 64 {
		t.Fatalf("sub.bitLen() = %d, want 64", sub.bitLen())
	}
	if c.pos != 32+8*8 {
		t.Fatalf("parent pos = %d, want %d", c.pos, 32+8*8)
	}
}

func TestCursorTakeRequiresAlignment(t *testing.T) {
	c := newCursor(make([]byte, 8))
	c.read(5)
	expectErrorKind(t, Alignment, func() { c.take(4) })
}

// TestCursorVBRRandomRoundTrip exercises readVBR against pseudo-random
// values generated with testutil.Rand, rather than the small hand-picked
// vector table above, to catch width/chunk-boundary bugs the hand-picked
// values don't happen to hit.
func TestCursorVBRRandomRoundTrip(t *testing.T) {
	r := testutil.NewRand(1)
	widths := []uint{4, 5, 6, 8}
	for i := 0; i < 200; i++ {
		width := widths[i%len(widths)]
		value := uint64(r.Int()) & (1<<50 - 1)
		buf := testutil.MustDecodeBitGen(testutil.VBR(width, value))
		c := newCursor(buf)
		if got := c.readVBR(width); got != value {
			t.Fatalf("readVBR(%d) round trip of %d got %d", width, value, got)
		}
	}
}

// TestCursorSkipConsistency checks the skip-consistency property: taking a
// sub-cursor and never reading from it leaves the parent exactly as far
// along as taking it and draining it fully would.
func TestCursorSkipConsistency(t *testing.T) {
	buf := make([]byte, 32)
	c1 := newCursor(buf)
	c1.take(16)
	pos1 := c1.pos

	c2 := newCursor(buf)
	sub := c2.take(16)
	for !sub.isAtEnd() {
		sub.read(8)
	}
	pos2 := c2.pos

	if pos1 != pos2 {
		t.Errorf("parent position differs: skip=%d, drain=%d", pos1, pos2)
	}
}
