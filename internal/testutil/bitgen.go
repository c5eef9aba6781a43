// Copyright 2016, The dsnet/bitstream Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	reBin = regexp.MustCompile("^[01]{1,64}$")
	reDec = regexp.MustCompile("^D[0-9]+:[0-9]+$")
	reHex = regexp.MustCompile("^H[0-9]+:[0-9a-fA-F]{1,16}$")
	reRaw = regexp.MustCompile("^X:[0-9a-fA-F]+$")
	reQnt = regexp.MustCompile("[*][0-9]+$")
)

// DecodeBitGen decodes a BitGen formatted string.
//
// The BitGen format allows bit-streams to be generated from a series of
// tokens describing bits in the resulting string. The format is designed
// for testing purposes by aiding a human in the manual scripting of a
// bitstream from individual bit-strings. It is designed to be relatively
// succinct, but allow the user to have control over bit order and also to
// allow the presence of comments to encode authorial intent.
//
// The format consists of a series of tokens separated by white space of any
// kind. The '#' character is used for commenting: any bytes on a given line
// that appear after it are ignored.
//
// A token of the pattern "[01]{1,64}" forms a bit-string (e.g. 11010); its
// right-most bit is written first to the resulting bit-stream, matching the
// bitstream format's least-significant-bit-first packing.
//
// A token of the pattern "D[0-9]+:[0-9]+" or "H[0-9]+:[0-9a-fA-F]{1,16}"
// represents either a decimal value or a hexadecimal value, respectively.
// This numeric value is converted to its unsigned binary representation and
// used as the bit-string to write. The first number indicates the bit
// length and must be between 0 and 64; the second the numeric value. The
// least-significant bits of the value are written first.
//
// A token of the pattern "X:[0-9a-fA-F]+" represents literal bytes in
// hexadecimal format, written as-is. It may only be used when the
// bit-stream is already byte-aligned.
//
// A token decorator of the pattern "[*][0-9]+" may trail any token. This is
// a quantifier decorator indicating that the current token is to be
// repeated some number of times.
//
// If the total bit-stream does not end on a byte-aligned edge, it is
// automatically padded up to the nearest byte with 0 bits.
//
// Example BitGen fragment (the opening word of a BLOCKINFO meta-block):
//	D2:1           # ENTER_SUB_BLOCK (abbrev id 1 at the top-level width 2)
//	D8:0 D4:2      # block id 0 (BLOCKINFO), new abbrev width 2
//	0*18           # align32 (14 bits written so far)
//	H32:00000003   # block length in words
func DecodeBitGen(str string) ([]byte, error) {
	var toks []string
	for _, s := range strings.Split(str, "\n") {
		if i := strings.IndexByte(s, '#'); i >= 0 {
			s = s[:i]
		}
		for _, t := range strings.Split(s, " ") {
			t = strings.TrimSpace(t)
			if len(t) > 0 {
				toks = append(toks, t)
			}
		}
	}

	var bw bitBuffer
	for _, t := range toks {
		rep := 1
		if reQnt.MatchString(t) {
			i := strings.LastIndexByte(t, '*')
			tt, tn := t[:i], t[i+1:]
			n, err := strconv.Atoi(tn)
			if err != nil {
				return nil, errors.New("testutil: invalid quantified token: " + t)
			}
			t, rep = tt, n
		}

		switch {
		case reBin.MatchString(t):
			var v uint64
			for _, b := range t {
				v <<= 1
				v |= uint64(b - '0')
			}
			for i := 0; i < rep; i++ {
				bw.WriteBits64(v, uint(len(t)))
			}
		case reDec.MatchString(t) || reHex.MatchString(t):
			i := strings.IndexByte(t, ':')
			tb, tn, tv := t[0], t[1:i], t[i+1:]

			base := 10
			if tb == 'H' {
				base = 16
			}

			n, err1 := strconv.Atoi(tn)
			v, err2 := strconv.ParseUint(tv, base, 64)
			if err1 != nil || err2 != nil || n > 64 {
				return nil, errors.New("testutil: invalid numeric token: " + t)
			}
			if n < 64 && v&((1<<uint(n))-1) != v {
				return nil, errors.New("testutil: integer overflow on token: " + t)
			}
			for i := 0; i < rep; i++ {
				bw.WriteBits64(v, uint(n))
			}
		case reRaw.MatchString(t):
			tx := t[2:]
			b, err := hex.DecodeString(tx)
			if err != nil {
				return nil, errors.New("testutil: invalid raw bytes token: " + t)
			}
			b = bytes.Repeat(b, rep)
			if _, err := bw.Write(b); err != nil {
				return nil, err
			}
		default:
			return nil, errors.New("testutil: invalid token: " + t)
		}
	}
	return bw.Bytes(), nil
}

// bitBuffer is a minimal least-significant-bit-first bit writer, just
// enough to back DecodeBitGen.
type bitBuffer struct {
	b []byte
	m byte
}

func (b *bitBuffer) Write(buf []byte) (int, error) {
	if b.m != 0x00 {
		return 0, errors.New("testutil: unaligned write")
	}
	b.b = append(b.b, buf...)
	return len(buf), nil
}

func (b *bitBuffer) WriteBits64(v uint64, n uint) {
	for i := uint(0); i < n; i++ {
		if b.m == 0x00 {
			b.m = 0x01
			b.b = append(b.b, 0x00)
		}
		if v&(1<<i) != 0 {
			b.b[len(b.b)-1] |= b.m
		}
		b.m <<= 1
	}
}

func (b *bitBuffer) Bytes() []byte {
	return b.b
}

// VBR returns the BitGen token sequence encoding v as a variable-bit-rate
// integer in chunks of width bits, low chunk first — exactly what
// cursor.readVBR(width) expects to consume.
func VBR(width uint, v uint64) string {
	hiBit := uint64(1) << (width - 1)
	mask := hiBit - 1
	var toks []string
	for {
		chunk := v & mask
		v >>= width - 1
		if v != 0 {
			chunk |= hiBit
		}
		toks = append(toks, fmt.Sprintf("D%d:%d", width, chunk))
		if v == 0 {
			break
		}
	}
	return strings.Join(toks, " ")
}

// Char6 returns the BitGen token sequence encoding s as a sequence of 6-bit
// char6 codes, one D6: token per byte of s.
func Char6(s string) string {
	toks := make([]string, len(s))
	for i := 0; i < len(s); i++ {
		toks[i] = fmt.Sprintf("D6:%d", encodeChar6(s[i]))
	}
	return strings.Join(toks, " ")
}

func encodeChar6(b byte) uint64 {
	switch {
	case b >= 'a' && b <= 'z':
		return uint64(b - 'a')
	case b >= 'A' && b <= 'Z':
		return uint64(b-'A') + 26
	case b >= '0' && b <= '9':
		return uint64(b-'0') + 52
	case b == '.':
		return 62
	case b == '_':
		return 63
	default:
		panic(fmt.Sprintf("testutil: byte %q is not representable in char6", b))
	}
}

// LiteralOp, FixedOp, VBROp, ArrayOp, Char6Op, and BlobOp each return the
// BitGen tokens for one DEFINE_ABBREVIATION operand definition. Pass the
// result of one or more of these to AbbrevDef to build a whole abbreviation.
func LiteralOp(v uint64) string   { return "1 " + VBR(8, v) }
func FixedOp(width uint8) string  { return "0 001 " + VBR(5, uint64(width)) }
func VBROp(width uint8) string    { return "0 010 " + VBR(5, uint64(width)) }
func ArrayOp() string             { return "0 011" }
func Char6Op() string             { return "0 100" }
func BlobOp() string              { return "0 101" }

// AbbrevDef returns the BitGen tokens for a full DEFINE_ABBREVIATION body
// (operand count followed by each operand definition), given the operand
// tokens in declaration order as produced by LiteralOp/FixedOp/VBROp/
// ArrayOp/Char6Op/BlobOp. It does not include the DEFINE_ABBREVIATION
// abbrev-id itself, since that is encoded at the enclosing block's
// abbrev-id width, which the caller already knows.
func AbbrevDef(ops ...string) string {
	return VBR(5, uint64(len(ops))) + " " + strings.Join(ops, " ")
}
