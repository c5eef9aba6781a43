// Copyright 2016, The dsnet/bitstream Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitstream

import (
	"testing"

	"github.com/dsnet/bitstream/internal/testutil"
)

func TestParseSignatureRaw(t *testing.T) {
	// 'BC' 0xC0DE magic, little-endian, followed by one byte of stream.
	buf := testutil.MustDecodeHex("4243c0de" + "ff")
	sig, stream, err := ParseSignature(buf)
	if err != nil {
		t.Fatalf("ParseSignature() error = %v", err)
	}
	if sig.Magic != 0xdec04342 {
		t.Errorf("sig.Magic = %#x, want 0xdec04342", sig.Magic)
	}
	if len(stream) != 1 || stream[0] != 0xff {
		t.Errorf("stream = %x, want [ff]", stream)
	}
}

func TestParseSignatureTooShort(t *testing.T) {
	_, _, err := ParseSignature([]byte{0x01, 0x02})
	if err == nil {
		t.Fatalf("ParseSignature() = nil error, want InvalidSignature")
	}
	if e, ok := err.(*Error); !ok || e.Kind != InvalidSignature {
		t.Fatalf("ParseSignature() error = %v, want kind InvalidSignature", err)
	}
}

func TestParseSignatureWrapper(t *testing.T) {
	// Wrapper header: magic=0x0B17C0DE, version=0, offset=20, size=5,
	// cputype=0, followed by a 5-byte inner region whose first 4 bytes are
	// the inner magic and 1 trailing byte of inner stream.
	buf := testutil.MustDecodeHex(
		"dec0170b" + // wrapper magic (LE)
			"00000000" + // version
			"14000000" + // offset = 20
			"05000000" + // size = 5
			"00000000" + // cputype
			"4243c0de" + // inner magic
			"ab") // inner stream byte
	sig, stream, err := ParseSignature(buf)
	if err != nil {
		t.Fatalf("ParseSignature() error = %v", err)
	}
	if sig.Magic != wrapperMagic {
		t.Errorf("sig.Magic = %#x, want wrapper magic", sig.Magic)
	}
	if sig.Magic2 != 0xdec04342 {
		t.Errorf("sig.Magic2 = %#x, want 0xdec04342", sig.Magic2)
	}
	if sig.Offset != 20 || sig.Size != 5 {
		t.Errorf("sig.Offset/Size = %d/%d, want 20/5", sig.Offset, sig.Size)
	}
	if len(stream) != 1 || stream[0] != 0xab {
		t.Errorf("stream = %x, want [ab]", stream)
	}
}

func TestParseSignatureWrapperWindowOverflow(t *testing.T) {
	buf := testutil.MustDecodeHex(
		"dec0170b" +
			"00000000" +
			"14000000" + // offset = 20
			"ff000000" + // size = 255, way past the buffer's actual length
			"00000000")
	_, _, err := ParseSignature(buf)
	if err == nil {
		t.Fatalf("ParseSignature() = nil error, want InvalidSignature")
	}
	if e, ok := err.(*Error); !ok || e.Kind != InvalidSignature {
		t.Fatalf("ParseSignature() error = %v, want kind InvalidSignature", err)
	}
}
