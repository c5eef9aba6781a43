// Copyright 2016, The dsnet/bitstream Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitstream

import (
	"math"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Reserved built-in abbreviation IDs (spec.md §6).
const (
	abbrevEndBlock            uint32 = 0
	abbrevEnterSubBlock       uint32 = 1
	abbrevDefineAbbreviation  uint32 = 2
	abbrevUnabbreviatedRecord uint32 = 3
	firstUserAbbrevID         uint32 = 4
)

// blockInfoBlockID is the reserved block ID for the BLOCKINFO meta-block.
const blockInfoBlockID uint32 = 0

// topLevelBlockID is the sentinel block ID for the synthetic pseudo-block
// that wraps the whole stream. It is the largest uint32; the decoder does not
// reject a sub-block whose 8-bit VBR block ID encodes this same value.
const topLevelBlockID uint32 = math.MaxUint32

// topLevelAbbrevWidth is the abbreviation-id bit width used before any
// ENTER_SUB_BLOCK has set a narrower or wider one.
const topLevelAbbrevWidth = 2

// BlockInfo holds the descriptive metadata BLOCKINFO can attach to a block
// ID: a human-readable name for the block itself, and names for individual
// record codes within it. It is purely descriptive; the decoder does not
// consult it.
type BlockInfo struct {
	Name        string
	RecordNames map[uint64]string
}

// Reader is a bitstream decoding session: it owns the tables that persist
// across the whole stream (global abbreviations populated by BLOCKINFO, and
// BlockInfo names), and is the entry point for both the pull and push
// façades. A Reader is single-use: construct one per buffer you decode.
type Reader struct {
	blockInfo     map[uint32]*BlockInfo
	globalAbbrevs map[uint32][]Abbreviation

	// sessionID lets a consuming tool correlate log lines or diagnostics
	// against one decode pass when processing many files; the core itself
	// never logs.
	sessionID uuid.UUID
}

// NewReader creates an empty Reader. Pass it, together with the stream slice
// returned by ParseSignature (any wrapper header already stripped), to
// NewBlockIter to decode that stream.
func NewReader() *Reader {
	return &Reader{
		blockInfo:     make(map[uint32]*BlockInfo),
		globalAbbrevs: make(map[uint32][]Abbreviation),
		sessionID:     uuid.New(),
	}
}

// SessionID identifies this decoding session, for log correlation in
// consuming tools.
func (rd *Reader) SessionID() uuid.UUID { return rd.sessionID }

// BlockInfo returns the descriptive metadata recorded for block id by any
// BLOCKINFO meta-blocks encountered so far, or nil if none was recorded.
func (rd *Reader) BlockInfo(id uint32) *BlockInfo {
	return rd.blockInfo[id]
}

// AllBlockInfo returns every block ID BLOCKINFO has named so far. The
// returned map is owned by the Reader and must not be mutated.
func (rd *Reader) AllBlockInfo() map[uint32]*BlockInfo {
	return rd.blockInfo
}

func (rd *Reader) blockInfoFor(id uint32) *BlockInfo {
	bi := rd.blockInfo[id]
	if bi == nil {
		bi = &BlockInfo{RecordNames: make(map[uint64]string)}
		rd.blockInfo[id] = bi
	}
	return bi
}

// blockState is the shared per-block-instance state the pull and push
// façades both step through: which block this is, the abbreviation-id
// width in effect, and the local abbreviations defined so far in this
// instance.
type blockState struct {
	rd          *Reader
	c           *cursor
	id          uint32
	abbrevWidth uint
	local       []Abbreviation
}

// step decodes exactly one opcode at the current cursor position, handling
// DEFINE_ABBREVIATION and nested BLOCKINFO transparently (they never
// surface as an item), and returns either a nested block together with its
// declared byte length, a record, or done == true once this block instance
// has ended.
//
// This is the single state machine that both BlockIter (pull) and the push
// visitor driver (Decode) ride; see spec.md §9's note to implement one
// façade in terms of the other.
func (st *blockState) step() (block *blockState, blockLen uint64, rec *RecordIter, done bool, err error) {
	defer errRecover(&err)
	for {
		if st.c.isAtEnd() {
			if st.id == topLevelBlockID {
				return nil, 0, nil, true, nil
			}
			panicWithError(&Error{
				Kind:    MissingEndBlock,
				BlockID: st.id,
				Msg:     "block ended without END_BLOCK",
			})
		}
		abbrevID := uint32(st.c.read(st.abbrevWidth))
		switch abbrevID {
		case abbrevEndBlock:
			st.c.align32()
			return nil, 0, nil, true, nil
		case abbrevEnterSubBlock:
			childID := uint32(st.c.readVBR(8))
			childWidth := uint(st.c.readVBR(4))
			st.c.align32()
			words := st.c.read(32)
			childBytes := words * 4
			sub := st.c.take(childBytes)
			if childID == blockInfoBlockID {
				readBlockInfo(st.rd, sub, childWidth)
				continue
			}
			return &blockState{rd: st.rd, c: sub, id: childID, abbrevWidth: childWidth}, childBytes, nil, false, nil
		case abbrevDefineAbbreviation:
			st.local = append(st.local, readAbbrev(st.c))
			continue
		case abbrevUnabbreviatedRecord:
			return nil, 0, newUnabbreviatedRecord(st.c), false, nil
		default:
			ab := st.lookupAbbrev(abbrevID)
			if ab == nil {
				panicWithError(&Error{
					Kind:     NoSuchAbbrev,
					BlockID:  st.id,
					AbbrevID: abbrevID,
				})
			}
			return nil, 0, newAbbreviatedRecord(st.c, ab), false, nil
		}
	}
}

// lookupAbbrev resolves wire id >= 4 against global[st.id] ++ st.local.
func (st *blockState) lookupAbbrev(wireID uint32) *Abbreviation {
	t := abbrevTable{global: st.rd.globalAbbrevs[st.id], local: st.local}
	ab, ok := t.lookup(wireID)
	if !ok {
		return nil
	}
	return ab
}

func panicWithError(e *Error) { panic(e) }

// readBlockInfo parses a BLOCKINFO meta-block (block ID 0) in full: it may
// only contain built-in opcodes, and threads a "current block id" across
// its records per spec.md §4.E.
func readBlockInfo(rd *Reader, c *cursor, abbrevWidth uint) {
	var currentID uint32
	haveCurrentID := false

	for {
		if c.isAtEnd() {
			panicf(MissingEndBlock, "BLOCKINFO ended without END_BLOCK")
		}
		abbrevID := uint32(c.read(abbrevWidth))
		switch abbrevID {
		case abbrevEndBlock:
			c.align32()
			return
		case abbrevEnterSubBlock:
			panicf(NestedBlockInBlockInfo, "")
		case abbrevDefineAbbreviation:
			if !haveCurrentID {
				panicf(MissingSetBid, "DEFINE_ABBREVIATION before any SETBID")
			}
			ab := readAbbrev(c)
			rd.globalAbbrevs[currentID] = append(rd.globalAbbrevs[currentID], ab)
		case abbrevUnabbreviatedRecord:
			code := c.readVBR(6)
			count := c.readVBR(6)
			fields := make([]uint64, count)
			for i := range fields {
				fields[i] = c.readVBR(6)
			}
			switch code {
			case 1: // SETBID
				if len(fields) != 1 {
					panicWithError(&Error{Kind: InvalidBlockInfoRecord, RecordCode: code})
				}
				currentID = uint32(fields[0])
				haveCurrentID = true
			case 2: // BLOCKNAME
				if !haveCurrentID {
					panicf(MissingSetBid, "BLOCKNAME before any SETBID")
				}
				rd.blockInfoFor(currentID).Name = decodeUTF8Lossy(fields)
			case 3: // SETRECORDNAME
				if !haveCurrentID {
					panicf(MissingSetBid, "SETRECORDNAME before any SETBID")
				}
				if len(fields) < 1 {
					panicWithError(&Error{Kind: InvalidBlockInfoRecord, RecordCode: code})
				}
				recordCode := fields[0]
				rd.blockInfoFor(currentID).RecordNames[recordCode] = decodeUTF8Lossy(fields[1:])
			default:
				panicWithError(&Error{Kind: InvalidBlockInfoRecord, RecordCode: code})
			}
		default:
			panicWithError(&Error{Kind: NoSuchAbbrev, BlockID: blockInfoBlockID, AbbrevID: abbrevID})
		}
	}
}

// decodeUTF8Lossy converts a sequence of byte-valued fields into a string,
// replacing anything that isn't valid UTF-8 the way LLVM's BLOCKINFO name
// parsing does: it treats the bytes as UTF-8 and substitutes the Unicode
// replacement character for each byte that is not part of a valid sequence.
func decodeUTF8Lossy(fields []uint64) string {
	bs := make([]byte, len(fields))
	for i, f := range fields {
		bs[i] = byte(f)
	}
	if utf8.Valid(bs) {
		return string(bs)
	}
	return string([]rune(string(bs)))
}
