// Copyright 2016, The dsnet/bitstream Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitstream

import (
	"fmt"
	"runtime"
)

// ErrorKind classifies the reason a decode operation failed. It is a flat
// taxonomy by design: every failure mode the bitstream format can produce is
// a sibling of every other, none are more "fundamental" than the rest.
type ErrorKind int

const (
	_ ErrorKind = iota

	// InvalidSignature indicates a malformed wrapper header, or a caller
	// rejecting the signature from Visitor.Validate.
	InvalidSignature
	// InvalidAbbrev indicates a structural violation while defining or
	// reading an abbreviation.
	InvalidAbbrev
	// UnexpectedOperand indicates a record's payload was read as the wrong
	// operand category (e.g. an array read requested on a blob payload).
	UnexpectedOperand
	// NoSuchAbbrev indicates an abbreviation reference past the end of the
	// concatenated global+local table for a block ID.
	NoSuchAbbrev
	// NestedBlockInBlockInfo indicates an ENTER_SUB_BLOCK opcode inside a
	// BLOCKINFO block.
	NestedBlockInBlockInfo
	// MissingSetBid indicates a BLOCKINFO record that requires a current
	// block ID appeared before any SETBID record.
	MissingSetBid
	// InvalidBlockInfoRecord indicates an unknown or malformed BLOCKINFO
	// record.
	InvalidBlockInfoRecord
	// MissingEndBlock indicates a sub-block's byte length was exhausted
	// without an END_BLOCK opcode.
	MissingEndBlock
	// BufferOverflow indicates a read or peek requested more bits than
	// remain in the buffer.
	BufferOverflow
	// VbrOverflow indicates a VBR-encoded integer required more than 64
	// bits of accumulator.
	VbrOverflow
	// Alignment indicates an operation that requires byte or word alignment
	// was attempted at an unaligned bit position.
	Alignment
	// EndOfRecord indicates a field iterator was advanced past its last
	// field.
	EndOfRecord
	// ValueOverflow indicates a decoded value did not fit the requested
	// narrow integer type.
	ValueOverflow
	// Other indicates a misuse of the API itself, such as calling Next on a
	// BlockIter or RecordIter after Close, or asking the cursor for a bit
	// width outside its supported range.
	Other
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidSignature:
		return "invalid signature"
	case InvalidAbbrev:
		return "invalid abbreviation"
	case UnexpectedOperand:
		return "unexpected operand"
	case NoSuchAbbrev:
		return "no such abbreviation"
	case NestedBlockInBlockInfo:
		return "nested block in BLOCKINFO"
	case MissingSetBid:
		return "missing SETBID"
	case InvalidBlockInfoRecord:
		return "invalid BLOCKINFO record"
	case MissingEndBlock:
		return "missing END_BLOCK"
	case BufferOverflow:
		return "buffer overflow"
	case VbrOverflow:
		return "vbr overflow"
	case Alignment:
		return "misaligned cursor"
	case EndOfRecord:
		return "end of record"
	case ValueOverflow:
		return "value overflow"
	case Other:
		return "other"
	default:
		return "unknown"
	}
}

// Error is the single error type produced by this package. Only the fields
// relevant to Kind are populated; the rest are left at their zero value.
type Error struct {
	Kind ErrorKind

	Magic      uint32 // InvalidSignature
	BlockID    uint32 // NoSuchAbbrev, MissingEndBlock, InvalidBlockInfoRecord, NestedBlockInBlockInfo
	AbbrevID   uint32 // NoSuchAbbrev
	RecordCode uint64 // InvalidBlockInfoRecord

	Msg string
}

func (e *Error) Error() string {
	s := "bitstream: " + e.Kind.String()
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	switch e.Kind {
	case InvalidSignature:
		s += fmt.Sprintf(" (magic=0x%08x)", e.Magic)
	case NoSuchAbbrev:
		s += fmt.Sprintf(" (block=%d, abbrev=%d)", e.BlockID, e.AbbrevID)
	case MissingEndBlock, NestedBlockInBlockInfo:
		s += fmt.Sprintf(" (block=%d)", e.BlockID)
	case InvalidBlockInfoRecord:
		s += fmt.Sprintf(" (code=%d)", e.RecordCode)
	}
	return s
}

func errorf(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// panicf raises an *Error via panic, to be caught by errRecover at the
// nearest exported entry point. This mirrors the teacher's errRecover
// convention used throughout flate, bzip2, and brotli.
func panicf(kind ErrorKind, format string, args ...interface{}) {
	panic(errorf(kind, format, args...))
}

// errRecover turns a panic of *Error (or the sentinel errors this package
// panics with) into a returned error. Any other panic - in particular a
// runtime.Error indicating a real bug - is re-raised.
func errRecover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case runtime.Error:
		panic(ex)
	case *Error:
		*err = ex
	case error:
		*err = ex
	default:
		panic(ex)
	}
}
