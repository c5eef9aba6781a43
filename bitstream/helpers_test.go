// Copyright 2016, The dsnet/bitstream Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitstream

import (
	"fmt"
	"strings"

	"github.com/dsnet/bitstream/internal/testutil"
)

// vbrBits returns the exact bit length testutil.VBR(width, v) encodes to,
// following the same chunking loop, so fixtures can track alignment without
// hand counting.
func vbrBits(width uint, v uint64) uint64 {
	var n uint64
	for {
		v >>= width - 1
		n += uint64(width)
		if v == 0 {
			break
		}
	}
	return n
}

// builder assembles a BitGen token stream while tracking the exact bit
// position, so block-length words and 32-bit alignment padding can be
// computed instead of hand-counted.
type builder struct {
	toks []string
	pos  uint64
}

func (b *builder) raw(tok string, bits uint64) {
	b.toks = append(b.toks, tok)
	b.pos += bits
}

func (b *builder) opcode(width uint, v uint32) {
	b.raw(fmt.Sprintf("D%d:%d", width, v), uint64(width))
}

func (b *builder) fixed(width uint, v uint64) {
	b.raw(fmt.Sprintf("D%d:%d", width, v), uint64(width))
}

func (b *builder) vbr(width uint, v uint64) {
	b.raw(testutil.VBR(width, v), vbrBits(width, v))
}

func (b *builder) align32() {
	rem := b.pos % 32
	if rem == 0 {
		return
	}
	pad := 32 - rem
	b.raw(fmt.Sprintf("0*%d", pad), pad)
}

func (b *builder) endBlock(abbrevWidth uint) {
	b.opcode(abbrevWidth, abbrevEndBlock)
	b.align32()
}

func (b *builder) unabbrevRecord(abbrevWidth uint, code uint64, fields ...uint64) {
	b.opcode(abbrevWidth, abbrevUnabbreviatedRecord)
	b.vbr(6, code)
	b.vbr(6, uint64(len(fields)))
	for _, f := range fields {
		b.vbr(6, f)
	}
}

// opSpec is one DEFINE_ABBREVIATION operand: its token text, alongside the
// exact bit length it encodes to.
type opSpec struct {
	tok  string
	bits uint64
}

func litOp(v uint64) opSpec  { return opSpec{tok: testutil.LiteralOp(v), bits: 1 + vbrBits(8, v)} }
func fixedOp(w uint8) opSpec {
	return opSpec{tok: testutil.FixedOp(w), bits: 1 + 3 + vbrBits(5, uint64(w))}
}
func vbrOpSpec(w uint8) opSpec {
	return opSpec{tok: testutil.VBROp(w), bits: 1 + 3 + vbrBits(5, uint64(w))}
}
func arrayOp() opSpec { return opSpec{tok: testutil.ArrayOp(), bits: 1 + 3} }
func char6Op() opSpec { return opSpec{tok: testutil.Char6Op(), bits: 1 + 3} }
func blobOp() opSpec  { return opSpec{tok: testutil.BlobOp(), bits: 1 + 3} }

func (b *builder) defineAbbrev(abbrevWidth uint, ops ...opSpec) {
	b.opcode(abbrevWidth, abbrevDefineAbbreviation)
	b.vbr(5, uint64(len(ops)))
	for _, op := range ops {
		b.raw(op.tok, op.bits)
	}
}

// subBlock appends a full ENTER_SUB_BLOCK frame wrapping body, whose content
// must already end 32-bit aligned (the caller built it with a trailing
// endBlock or align32 call).
func (b *builder) subBlock(abbrevWidth uint, childID uint32, childWidth uint, body *builder) {
	if body.pos%32 != 0 {
		panic("subBlock: body is not 32-bit aligned")
	}
	b.opcode(abbrevWidth, abbrevEnterSubBlock)
	b.vbr(8, uint64(childID))
	b.vbr(4, uint64(childWidth))
	b.align32()
	b.raw(fmt.Sprintf("D32:%d", body.pos/32), 32)
	b.toks = append(b.toks, body.toks...)
	b.pos += body.pos
}

func (b *builder) string() string {
	return strings.Join(b.toks, " ")
}

func (b *builder) bytes() []byte {
	return testutil.MustDecodeBitGen(b.string())
}
