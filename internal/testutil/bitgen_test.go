// Copyright 2016, The dsnet/bitstream Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import (
	"bytes"
	"strings"
	"testing"
)

func TestDecodeBitGenBinaryToken(t *testing.T) {
	got, err := DecodeBitGen("1011")
	if err != nil {
		t.Fatalf("DecodeBitGen() error = %v", err)
	}
	// right-most bit written first: "1011" -> bit0=1,bit1=1,bit2=0,bit3=1
	want := []byte{0x0b}
	if !bytes.Equal(got, want) {
		t.Errorf("DecodeBitGen(%q) = %x, want %x", "1011", got, want)
	}
}

func TestDecodeBitGenDecimalAndHex(t *testing.T) {
	got, err := DecodeBitGen("D8:255 H4:f")
	if err != nil {
		t.Fatalf("DecodeBitGen() error = %v", err)
	}
	want := []byte{0xff, 0x0f}
	if !bytes.Equal(got, want) {
		t.Errorf("DecodeBitGen() = %x, want %x", got, want)
	}
}

func TestDecodeBitGenQuantifier(t *testing.T) {
	got, err := DecodeBitGen("D8:0*3")
	if err != nil {
		t.Fatalf("DecodeBitGen() error = %v", err)
	}
	if !bytes.Equal(got, []byte{0, 0, 0}) {
		t.Errorf("DecodeBitGen() = %x, want 000000", got)
	}
}

func TestDecodeBitGenComment(t *testing.T) {
	got, err := DecodeBitGen("H8:ab # a trailing comment\nH8:cd")
	if err != nil {
		t.Fatalf("DecodeBitGen() error = %v", err)
	}
	if !bytes.Equal(got, []byte{0xab, 0xcd}) {
		t.Errorf("DecodeBitGen() = %x, want abcd", got)
	}
}

func TestDecodeBitGenInvalidToken(t *testing.T) {
	if _, err := DecodeBitGen("Z:nope"); err == nil {
		t.Fatalf("DecodeBitGen() = nil error, want a parse error")
	}
}

func TestVBRRoundTripsThroughDecodeBitGen(t *testing.T) {
	toks := VBR(6, 200)
	buf, err := DecodeBitGen(toks)
	if err != nil {
		t.Fatalf("DecodeBitGen(VBR(6,200)) error = %v", err)
	}
	if len(buf) == 0 {
		t.Fatalf("DecodeBitGen(VBR(6,200)) produced no bytes")
	}
	// Read the 6-bit chunks back least-significant-bit first and reassemble
	// the value from their low 5 bits until a chunk's continuation bit is clear.
	var got, shift uint64
	for pos := uint(0); ; pos += 6 {
		var chunk uint64
		for i := uint(0); i < 6; i++ {
			chunk |= uint64((buf[(pos+i)/8]>>((pos+i)%8))&1) << i
		}
		got |= (chunk & 0x1f) << shift
		shift += 5
		if chunk&0x20 == 0 {
			break
		}
	}
	if got != 200 {
		t.Errorf("VBR(6,200) decoded back to %d, want 200", got)
	}
}

func TestChar6Bijection(t *testing.T) {
	seen := make(map[uint64]byte)
	for b := byte(0); b < 255; b++ {
		representable := (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') ||
			(b >= '0' && b <= '9') || b == '.' || b == '_'
		if !representable {
			continue
		}
		code := encodeChar6(b)
		if code > 63 {
			t.Errorf("encodeChar6(%q) = %d, out of 6-bit range", b, code)
		}
		if prev, dup := seen[code]; dup {
			t.Errorf("encodeChar6(%q) = %d, same code as %q", b, code, prev)
		}
		seen[code] = b
	}
	if len(seen) != 64 {
		t.Errorf("got %d distinct char6 codes, want 64", len(seen))
	}
}

func TestChar6PanicsOnUnrepresentableByte(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Char6(%q) did not panic on an unrepresentable byte", "!")
		}
	}()
	Char6("!")
}

func TestAbbrevDefIncludesOperandCount(t *testing.T) {
	toks := AbbrevDef(LiteralOp(1), FixedOp(8))
	if toks == "" {
		t.Fatalf("AbbrevDef() returned empty token string")
	}
	if want := VBR(5, 2) + " "; !strings.HasPrefix(toks, want) {
		t.Errorf("AbbrevDef() = %q, want it to begin with the operand count %q", toks, want)
	}
	if _, err := DecodeBitGen(toks); err != nil {
		t.Fatalf("DecodeBitGen(AbbrevDef(...)) error = %v", err)
	}
}

func TestMustDecodeHexPanicsOnInvalidInput(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("MustDecodeHex did not panic on invalid hex")
		}
	}()
	MustDecodeHex("not-hex")
}
