// Copyright 2016, The dsnet/bitstream Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitstream

// activeChild is satisfied by *BlockIter and *RecordIter: whatever a
// BlockIter last handed out, so it can be drained before the next item is
// produced or before this BlockIter itself closes.
type activeChild interface {
	Close() error
}

// BlockIter pulls the items (nested blocks and records) out of one block
// instance, in order. The top-level BlockIter returned by NewBlockIter walks
// the whole stream as a synthetic enclosing block.
//
// At most one BlockIter or RecordIter produced by a given BlockIter may be
// open at a time; calling Next or Close automatically closes (draining, if
// necessary) whatever item was last returned, so callers never have to
// remember to do it themselves.
type BlockIter struct {
	st     *blockState
	active activeChild
	done   bool
	closed bool
}

// BlockItem is the sum type Next produces: exactly one of Block or Record is
// non-nil, or both are nil once the block is exhausted.
type BlockItem struct {
	Block  *BlockIter
	Record *RecordIter
}

// NewBlockIter begins a pull-style walk of stream (as returned by
// ParseSignature) using rd's abbreviation/BlockInfo tables.
func NewBlockIter(rd *Reader, stream []byte) *BlockIter {
	return &BlockIter{st: &blockState{
		rd:          rd,
		c:           newCursor(stream),
		id:          topLevelBlockID,
		abbrevWidth: topLevelAbbrevWidth,
	}}
}

// ID returns the block ID this iterator walks records within. The top-level
// iterator returns topLevelBlockID (the largest uint32).
func (b *BlockIter) ID() uint32 { return b.st.id }

// AbbrevWidth returns the abbreviation-id bit width in effect for this block
// instance.
func (b *BlockIter) AbbrevWidth() uint { return b.st.abbrevWidth }

// DeclaredLen reports the block's declared body length in bytes, as framed
// by its ENTER_SUB_BLOCK word count. The top-level pseudo-block has no
// declared length and reports ok=false.
func (b *BlockIter) DeclaredLen() (n uint64, ok bool) {
	if b.st.id == topLevelBlockID {
		return 0, false
	}
	return uint64(len(b.st.c.buf)), true
}

// Next closes whatever item this iterator last produced, then decodes and
// returns the next item. It returns a zero BlockItem and err == nil once the
// block has been fully consumed.
func (b *BlockIter) Next() (BlockItem, error) {
	if b.closed {
		return BlockItem{}, errorf(Other, "BlockIter used after Close")
	}
	if b.active != nil {
		if err := b.active.Close(); err != nil {
			return BlockItem{}, err
		}
		b.active = nil
	}
	if b.done {
		return BlockItem{}, nil
	}
	child, _, rec, done, err := b.st.step()
	if err != nil {
		return BlockItem{}, err
	}
	if done {
		b.done = true
		return BlockItem{}, nil
	}
	if child != nil {
		bi := &BlockIter{st: child}
		b.active = bi
		return BlockItem{Block: bi}, nil
	}
	b.active = rec
	return BlockItem{Record: rec}, nil
}

// Close drains and discards whatever remains of this block: the active
// child item, if any, and then — for a sub-block, whose content was already
// fully carved off the parent's cursor by take() — nothing further, since
// skipping and fully iterating a block consume identical bits from the
// parent's perspective. This is what gives skip consistency: entering a
// block and draining it costs the enclosing block exactly as much as never
// entering it at all.
func (b *BlockIter) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	if b.active != nil {
		err := b.active.Close()
		b.active = nil
		return err
	}
	return nil
}
