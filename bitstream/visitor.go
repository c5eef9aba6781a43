// Copyright 2016, The dsnet/bitstream Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitstream

// Visitor receives a push-style traversal of a bitstream, as driven by
// Decode. Implementations decide, per block, whether to descend into it;
// records are reported to whichever block directly encloses them.
type Visitor interface {
	// Validate inspects the parsed file signature and reports whether
	// decoding should proceed. Returning false aborts Decode with an
	// InvalidSignature error.
	Validate(sig Signature) bool

	// ShouldEnterBlock reports whether the block with the given ID should
	// be descended into. Returning false skips it (and everything nested
	// inside it) at no extra cost over entering and draining it.
	ShouldEnterBlock(id uint32) bool

	// DidExitBlock is called after a block entered via ShouldEnterBlock
	// has been fully walked and its END_BLOCK consumed.
	DidExitBlock(id uint32)

	// Visit reports one fully-decoded record, alongside the ID of the
	// block that directly encloses it (which may be the top level).
	Visit(enclosingBlockID uint32, rec Record) error
}

// Decode parses buf's signature, asks v to validate it, and if accepted,
// walks the stream depth-first, driving v. It is implemented atop the pull
// BlockIter (§4.F design note: one façade drives the other), so it costs
// nothing beyond what a hand-written push parser would.
func Decode(buf []byte, v Visitor) error {
	sig, stream, err := ParseSignature(buf)
	if err != nil {
		return err
	}
	if !v.Validate(sig) {
		return &Error{Kind: InvalidSignature, Magic: sig.Magic, Msg: "rejected by Visitor.Validate"}
	}
	rd := NewReader()
	top := NewBlockIter(rd, stream)
	return driveVisitor(top, v)
}

// driveVisitor pulls items from it until exhausted, dispatching each to v,
// and recursing into entered blocks.
func driveVisitor(it *BlockIter, v Visitor) error {
	for {
		item, err := it.Next()
		if err != nil {
			return err
		}
		if item.Block == nil && item.Record == nil {
			return nil
		}
		if item.Block != nil {
			id := item.Block.ID()
			if !v.ShouldEnterBlock(id) {
				if err := item.Block.Close(); err != nil {
					return err
				}
				continue
			}
			if err := driveVisitor(item.Block, v); err != nil {
				return err
			}
			v.DidExitBlock(id)
			continue
		}
		rec, err := item.Record.ToRecord()
		if err != nil {
			return err
		}
		if err := v.Visit(it.ID(), rec); err != nil {
			return err
		}
	}
}

// Block is a fully-materialized block: its ID, the Blocks nested inside it
// and the Records directly inside it, each list in stream order. It does not
// record the block's abbreviation width, nor how its nested blocks and
// records were interleaved in the stream.
type Block struct {
	ID      uint32
	Blocks  []Block
	Records []Record
}

// CollectingVisitor materializes the entire stream as a tree of Blocks,
// useful for tests and for small files where the convenience of a full
// in-memory tree outweighs streaming. It accepts any signature by default;
// set Accept to override.
type CollectingVisitor struct {
	// Accept, if non-nil, replaces the default (always-true) signature
	// check.
	Accept func(Signature) bool

	Signature Signature
	Root      Block

	stack []*Block // stack[0] is always &Root
}

var _ Visitor = (*CollectingVisitor)(nil)

// Validate implements Visitor.
func (cv *CollectingVisitor) Validate(sig Signature) bool {
	cv.Signature = sig
	cv.stack = []*Block{&cv.Root}
	if cv.Accept != nil {
		return cv.Accept(sig)
	}
	return true
}

// ShouldEnterBlock implements Visitor: CollectingVisitor always descends,
// appending a new Block to whatever block is currently open and pushing it
// so subsequent Visit/ShouldEnterBlock calls nest inside it.
func (cv *CollectingVisitor) ShouldEnterBlock(id uint32) bool {
	parent := cv.top()
	parent.Blocks = append(parent.Blocks, Block{ID: id})
	cv.stack = append(cv.stack, &parent.Blocks[len(parent.Blocks)-1])
	return true
}

// DidExitBlock implements Visitor by popping the block pushed in
// ShouldEnterBlock.
func (cv *CollectingVisitor) DidExitBlock(id uint32) {
	cv.stack = cv.stack[:len(cv.stack)-1]
}

// Visit implements Visitor by appending rec to whichever block is currently
// open.
func (cv *CollectingVisitor) Visit(enclosingBlockID uint32, rec Record) error {
	b := cv.top()
	b.Records = append(b.Records, rec)
	return nil
}

func (cv *CollectingVisitor) top() *Block {
	if len(cv.stack) == 0 {
		cv.stack = []*Block{&cv.Root}
	}
	return cv.stack[len(cv.stack)-1]
}
