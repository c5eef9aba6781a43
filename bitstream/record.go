// Copyright 2016, The dsnet/bitstream Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitstream

import "math"

// PayloadKind identifies which of the three payload shapes a Record carries.
type PayloadKind int

const (
	// PayloadNone means the record has no trailing payload.
	PayloadNone PayloadKind = iota
	// PayloadArray means Values holds the decoded array elements.
	PayloadArray
	// PayloadChar6String means Text holds the array decoded as a char6
	// string in one step.
	PayloadChar6String
	// PayloadBlob means Blob holds the raw, 32-bit-aligned byte payload.
	PayloadBlob
)

// Payload is a record's optional trailing element: an array of integers, a
// char6-packed string, or an aligned blob of raw bytes.
type Payload struct {
	Kind   PayloadKind
	Values []uint64 // PayloadArray
	Text   string   // PayloadChar6String
	Blob   []byte   // PayloadBlob; borrows the underlying buffer
}

// Array returns p's decoded array elements, failing with UnexpectedOperand
// if p does not carry an array payload.
func (p *Payload) Array() ([]uint64, error) {
	if p.Kind != PayloadArray {
		return nil, errorf(UnexpectedOperand, "payload is %v, not an array", p.Kind)
	}
	return p.Values, nil
}

// Char6String returns p's decoded char6 string, failing with
// UnexpectedOperand if p does not carry a char6 payload.
func (p *Payload) Char6String() (string, error) {
	if p.Kind != PayloadChar6String {
		return "", errorf(UnexpectedOperand, "payload is %v, not a char6 string", p.Kind)
	}
	return p.Text, nil
}

// BlobBytes returns p's raw blob bytes, failing with UnexpectedOperand if p
// does not carry a blob payload. Named BlobBytes rather than Blob to avoid
// colliding with the Blob field.
func (p *Payload) BlobBytes() ([]byte, error) {
	if p.Kind != PayloadBlob {
		return nil, errorf(UnexpectedOperand, "payload is %v, not a blob", p.Kind)
	}
	return p.Blob, nil
}

// Record is a fully-decoded record: a code, its scalar fields, and an
// optional payload. It is produced by draining a RecordIter to completion,
// either explicitly or by the block parser on the caller's behalf.
type Record struct {
	ID      uint64
	Fields  []uint64
	Payload *Payload
}

// RecordIter lazily decodes one record's fields and optional payload from
// the cursor. It must be driven to completion or Closed before the
// enclosing BlockIter produces another item; both Next and the block parser
// guarantee this by closing it automatically when they advance past it.
type RecordIter struct {
	c  *cursor
	id uint64

	closed bool

	// abbreviated-record state
	abbrev   *Abbreviation
	fieldIdx int // index into abbrev.fields[1:] already consumed

	// unabbreviated-record state
	unabbrev     bool
	unabbrevLeft uint64

	payloadOp   *operand // non-nil if a payload is still owed
	payloadDone bool
	payloadVal  *Payload
}

// newAbbreviatedRecord begins decoding a record described by abbrev. The
// record code (abbrev's first scalar field) is decoded eagerly, matching
// the fact that it is never optional.
func newAbbreviatedRecord(c *cursor, abbrev *Abbreviation) *RecordIter {
	code := readScalarOperand(c, &abbrev.fields[0])
	r := &RecordIter{c: c, id: code, abbrev: abbrev}
	if abbrev.payload != nil {
		r.payloadOp = abbrev.payload
	}
	return r
}

// newUnabbreviatedRecord begins decoding an UNABBREVIATED_RECORD: a 6-bit
// VBR code, a 6-bit VBR field count, then that many 6-bit VBR fields.
func newUnabbreviatedRecord(c *cursor) *RecordIter {
	code := c.readVBR(6)
	count := c.readVBR(6)
	return &RecordIter{c: c, id: code, unabbrev: true, unabbrevLeft: count}
}

// ID returns the record's code.
func (r *RecordIter) ID() uint64 { return r.id }

// Next decodes and returns the next field value, or reports ok=false once
// all fields (abbreviated or not) have been consumed.
func (r *RecordIter) Next() (val uint64, ok bool, err error) {
	defer errRecover(&err)
	if r.closed {
		panicf(Other, "RecordIter used after Close")
	}
	if r.unabbrev {
		if r.unabbrevLeft == 0 {
			return 0, false, nil
		}
		r.unabbrevLeft--
		return r.c.readVBR(6), true, nil
	}
	if r.fieldIdx+1 >= len(r.abbrev.fields) {
		return 0, false, nil
	}
	r.fieldIdx++
	return readScalarOperand(r.c, &r.abbrev.fields[r.fieldIdx]), true, nil
}

// Payload decodes (if not already decoded) and returns this record's
// trailing payload, or nil if it has none. If fields are still unread, it
// first reads past them; Next then reports no further fields. Calling
// Payload after Close fails with Other.
func (r *RecordIter) Payload() (p *Payload, err error) {
	defer errRecover(&err)
	if r.closed {
		panicf(Other, "RecordIter used after Close")
	}
	if r.payloadDone {
		return r.payloadVal, nil
	}
	if !r.unabbrev {
		for r.fieldIdx+1 < len(r.abbrev.fields) {
			r.fieldIdx++
			readScalarOperand(r.c, &r.abbrev.fields[r.fieldIdx])
		}
	}
	r.payloadVal = r.decodePayload()
	r.payloadDone = true
	return r.payloadVal, nil
}

// decodePayload reads this record's array or blob payload, if any. Must
// only run once; its callers, Payload and Close, both guard on payloadDone.
func (r *RecordIter) decodePayload() *Payload {
	if r.unabbrev || r.payloadOp == nil {
		return nil
	}
	switch r.payloadOp.kind {
	case opArray:
		length := r.c.readVBR(6)
		elem := r.payloadOp.elem
		if elem.kind == opChar6 {
			bs := make([]byte, length)
			for i := range bs {
				bs[i] = byte(decodeChar6(r.c.read(6)))
			}
			return &Payload{Kind: PayloadChar6String, Text: string(bs)}
		}
		vals := make([]uint64, length)
		for i := range vals {
			vals[i] = readScalarOperand(r.c, elem)
		}
		return &Payload{Kind: PayloadArray, Values: vals}
	case opBlob:
		length := r.c.readVBR(6)
		r.c.align32()
		data := r.c.readBytes(length)
		r.c.align32()
		return &Payload{Kind: PayloadBlob, Blob: data}
	default:
		panicf(InvalidAbbrev, "payload operand has non-payload kind")
		panic("unreachable")
	}
}

// Close drains any fields and payload not yet consumed, advancing the
// cursor exactly to the first bit after the record. Closing an
// already-closed RecordIter is a no-op. This is what permits pull iteration
// to discard records cheaply: the spec requires that dropping a
// partially-read record still leaves the cursor correctly positioned for
// whatever comes next.
func (r *RecordIter) Close() (err error) {
	defer errRecover(&err)
	if r.closed {
		return nil
	}
	r.closed = true
	if r.unabbrev {
		for r.unabbrevLeft > 0 {
			r.c.readVBR(6)
			r.unabbrevLeft--
		}
		return nil
	}
	for r.fieldIdx+1 < len(r.abbrev.fields) {
		r.fieldIdx++
		readScalarOperand(r.c, &r.abbrev.fields[r.fieldIdx])
	}
	if !r.payloadDone && r.payloadOp != nil {
		r.decodePayload()
		r.payloadDone = true
	}
	return nil
}

// ToRecord drains r to completion and returns the fully-materialized
// Record. It is a convenience for consumers (like the collecting visitor)
// that want the whole record rather than streaming field-by-field.
func (r *RecordIter) ToRecord() (rec Record, err error) {
	defer errRecover(&err)
	rec.ID = r.id
	for {
		v, ok, ierr := r.Next()
		if ierr != nil {
			panic(ierr)
		}
		if !ok {
			break
		}
		rec.Fields = append(rec.Fields, v)
	}
	p, ierr := r.Payload()
	if ierr != nil {
		panic(ierr)
	}
	rec.Payload = p
	if cerr := r.Close(); cerr != nil {
		panic(cerr)
	}
	return rec, nil
}

// readScalarOperand decodes a single scalar operand's value.
func readScalarOperand(c *cursor, op *operand) uint64 {
	switch op.kind {
	case opLiteral:
		return op.literal
	case opFixed:
		if op.width == 0 {
			return 0
		}
		return c.read(uint(op.width))
	case opVBR:
		return c.readVBR(uint(op.width))
	case opChar6:
		return decodeChar6(c.read(6))
	default:
		panicf(InvalidAbbrev, "operand is not a scalar")
		panic("unreachable")
	}
}

// decodeChar6 maps a 6-bit char6 code point to its ASCII byte value per
// spec.md §3: 0..=25 -> a..z, 26..=51 -> A..Z, 52..=61 -> 0..9, 62 -> '.',
// 63 -> '_'.
func decodeChar6(v uint64) uint64 {
	switch {
	case v <= 25:
		return v + uint64('a')
	case v <= 51:
		return v - 26 + uint64('A')
	case v <= 61:
		return v - 52 + uint64('0')
	case v == 62:
		return uint64('.')
	case v == 63:
		return uint64('_')
	default:
		panicf(InvalidAbbrev, "char6 value %d out of range", v)
		panic("unreachable")
	}
}

// --- typed convenience accessors, per spec.md §4.D -------------------------

// NextU8 reads the next field and narrows it to a uint8, failing with
// ValueOverflow if it does not fit.
func (r *RecordIter) NextU8() (uint8, bool, error) {
	v, ok, err := r.Next()
	if err != nil || !ok {
		return 0, ok, err
	}
	if v > math.MaxUint8 {
		return 0, false, errorf(ValueOverflow, "value %d does not fit in uint8", v)
	}
	return uint8(v), true, nil
}

// NextU32 reads the next field and narrows it to a uint32, failing with
// ValueOverflow if it does not fit.
func (r *RecordIter) NextU32() (uint32, bool, error) {
	v, ok, err := r.Next()
	if err != nil || !ok {
		return 0, ok, err
	}
	if v > math.MaxUint32 {
		return 0, false, errorf(ValueOverflow, "value %d does not fit in uint32", v)
	}
	return uint32(v), true, nil
}

// NextU64 reads the next field verbatim.
func (r *RecordIter) NextU64() (uint64, bool, error) {
	return r.Next()
}

// NextBool reads the next field as a boolean: zero is false, anything else
// is true.
func (r *RecordIter) NextBool() (bool, bool, error) {
	v, ok, err := r.Next()
	if err != nil || !ok {
		return false, ok, err
	}
	return v != 0, true, nil
}

// NextI64 reads the next field and decodes it as LLVM's VBR-signed
// encoding: the low bit is the sign, and the magnitude is v>>1, negated if
// the sign bit is set. The special case v==1 recovers math.MinInt64, which
// would otherwise be unrepresentable by negating v>>1.
func (r *RecordIter) NextI64() (int64, bool, error) {
	v, ok, err := r.Next()
	if err != nil || !ok {
		return 0, ok, err
	}
	if v == 1 {
		return math.MinInt64, true, nil
	}
	mag := int64(v >> 1)
	if v&1 != 0 {
		return -mag, true, nil
	}
	return mag, true, nil
}

// NextNonZeroU64 reads the next field and returns it as (value, true) if
// non-zero, or (0, false) if the field was present but zero. It reports
// ok=false only when no field was present at all.
func (r *RecordIter) NextNonZeroU64() (val uint64, present bool, ok bool, err error) {
	v, ok, err := r.Next()
	if err != nil || !ok {
		return 0, false, ok, err
	}
	if v == 0 {
		return 0, false, true, nil
	}
	return v, true, true, nil
}

// NextLatin1String reads fields until a zero field is seen (exclusive) or
// the record runs out of fields, decoding each as a latin-1 byte.
func (r *RecordIter) NextLatin1String() (string, error) {
	var bs []byte
	for {
		v, ok, err := r.Next()
		if err != nil {
			return "", err
		}
		if !ok || v == 0 {
			break
		}
		if v > 0xFF {
			return "", errorf(ValueOverflow, "value %d is not a latin-1 byte", v)
		}
		bs = append(bs, byte(v))
	}
	return string(bs), nil
}

// NextRange reads two fields and returns them as a (start, length) pair, the
// common encoding LLVM uses for referring to a sub-range of another table.
func (r *RecordIter) NextRange() (start, length uint64, err error) {
	start, ok, err := r.Next()
	if err != nil {
		return 0, 0, err
	}
	if !ok {
		return 0, 0, errorf(EndOfRecord, "expected range start field")
	}
	length, ok, err = r.Next()
	if err != nil {
		return 0, 0, err
	}
	if !ok {
		return 0, 0, errorf(EndOfRecord, "expected range length field")
	}
	return start, length, nil
}
