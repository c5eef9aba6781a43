// Copyright 2016, The dsnet/bitstream Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitstream

// operandKind distinguishes the six wire encodings an abbreviation operand
// can take. It mirrors the BitCodeAbbrevOp::Encoding values LLVM defines.
type operandKind uint8

const (
	opLiteral operandKind = iota
	opFixed
	opVBR
	opArray
	opChar6
	opBlob
)

// operand is a single element of an Abbreviation's operand list: either a
// scalar (contributes one field to a record) or a payload (the abbreviation's
// optional trailing array or blob).
type operand struct {
	kind operandKind

	literal uint64 // opLiteral
	width   uint8  // opFixed, opVBR

	// elem is the element type of an opArray payload; it is always a scalar
	// operand (opLiteral, opFixed, opVBR, or opChar6).
	elem *operand
}

func (o operand) isScalar() bool {
	return o.kind == opLiteral || o.kind == opFixed || o.kind == opVBR || o.kind == opChar6
}

func (o operand) isPayload() bool {
	return o.kind == opArray || o.kind == opBlob
}

// Abbreviation is a user-defined record encoding declared inside the stream
// via DEFINE_ABBREVIATION. It consists of zero or more scalar fields
// followed by at most one trailing payload operand (an array or a blob).
// The first scalar supplies a record's code.
type Abbreviation struct {
	fields  []operand
	payload *operand // nil if this abbreviation has no trailing payload
}

// abbrevTable is the logical concatenation of the global abbreviations for a
// block ID (populated from BLOCKINFO) followed by the local abbreviations
// defined inside the current instance of that block ID. Wire IDs >= 4 index
// into this concatenation, global entries first.
type abbrevTable struct {
	global []Abbreviation
	local  []Abbreviation
}

// lookup resolves a wire abbreviation ID (already known to be >= 4) to its
// Abbreviation, or reports that none exists.
func (t *abbrevTable) lookup(wireID uint32) (*Abbreviation, bool) {
	idx := int(wireID) - 4
	if idx < 0 {
		return nil, false
	}
	if idx < len(t.global) {
		return &t.global[idx], true
	}
	idx -= len(t.global)
	if idx < len(t.local) {
		return &t.local[idx], true
	}
	return nil, false
}

// readAbbrevOperand reads one abbreviation operand definition from c. When
// the operand is an Array, it recurses once to read the mandatory element
// operand, which must itself be scalar.
func readAbbrevOperand(c *cursor) operand {
	isLiteral := c.read(1)
	if isLiteral == 1 {
		return operand{kind: opLiteral, literal: c.readVBR(8)}
	}
	switch c.read(3) {
	case 1:
		return operand{kind: opFixed, width: uint8(c.readVBR(5))}
	case 2:
		return operand{kind: opVBR, width: uint8(c.readVBR(5))}
	case 3:
		elem := readAbbrevOperand(c)
		if !elem.isScalar() {
			panicf(InvalidAbbrev, "array element operand must be scalar")
		}
		return operand{kind: opArray, elem: &elem}
	case 4:
		return operand{kind: opChar6}
	case 5:
		return operand{kind: opBlob}
	default:
		panicf(InvalidAbbrev, "unknown operand encoding")
		panic("unreachable")
	}
}

// readAbbrev reads a full abbreviation definition: a 5-bit VBR operand count
// followed by that many operand definitions, validating the structural
// invariants from spec.md §4.C (Array must be penultimate with exactly one
// scalar element following it; Blob must be last).
func readAbbrev(c *cursor) Abbreviation {
	numOps := int(c.readVBR(5))
	if numOps < 1 {
		panicf(InvalidAbbrev, "abbreviation must declare at least one operand")
	}

	var fields []operand
	var payload *operand
	produced := 0
	for produced < numOps {
		op := readAbbrevOperand(c)
		switch op.kind {
		case opArray:
			if produced != numOps-2 {
				panicf(InvalidAbbrev, "array operand must be the penultimate declared operand")
			}
			payload = &op
			produced += 2 // the array marker and its element operand
		case opBlob:
			if produced != numOps-1 {
				panicf(InvalidAbbrev, "blob operand must be the last declared operand")
			}
			payload = &op
			produced++
		default:
			fields = append(fields, op)
			produced++
		}
	}
	if len(fields) == 0 {
		panicf(InvalidAbbrev, "abbreviation has no operand to supply a record code")
	}
	return Abbreviation{fields: fields, payload: payload}
}
