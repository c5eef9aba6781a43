// Copyright 2016, The dsnet/bitstream Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitstream

import "encoding/binary"

// wrapperMagic is the magic number of the optional 20-byte LLVM bitcode
// wrapper header (see llvm/include/llvm/Bitcode/BitcodeCommon.h).
const wrapperMagic = 0x0B17C0DE

// Signature describes how a buffer's bitstream was located: either directly
// at byte 0 (a raw bitstream) or behind the 20-byte LLVM bitcode wrapper
// header. Only Magic is meaningful for a raw stream; the remaining fields
// are synthesized.
type Signature struct {
	Magic   uint32
	Magic2  uint32
	Version uint32
	Offset  uint32
	Size    uint32
	CPUType uint32
}

// ParseSignature detects whether buf begins with the LLVM bitcode wrapper
// header and returns the Signature plus the slice at which the raw
// bitstream begins (bit 0 of byte 0 of the returned slice is the first bit
// of the stream).
func ParseSignature(buf []byte) (sig Signature, stream []byte, err error) {
	defer errRecover(&err)
	sig, stream = parseSignature(buf)
	return sig, stream, nil
}

func parseSignature(buf []byte) (Signature, []byte) {
	if len(buf) < 4 {
		panicf(InvalidSignature, "buffer too small for a magic number")
	}
	magic := binary.LittleEndian.Uint32(buf[0:4])

	if magic != wrapperMagic {
		return Signature{
			Magic:  magic,
			Offset: 4,
			Size:   uint32(len(buf) - 4),
		}, buf[4:]
	}

	if len(buf) < 20 {
		panicf(InvalidSignature, "wrapper header requires 20 bytes, have %d", len(buf))
	}
	version := binary.LittleEndian.Uint32(buf[4:8])
	offset := binary.LittleEndian.Uint32(buf[8:12])
	size := binary.LittleEndian.Uint32(buf[12:16])
	cpuType := binary.LittleEndian.Uint32(buf[16:20])

	end := uint64(offset) + uint64(size)
	if end > uint64(len(buf)) {
		panicf(InvalidSignature, "wrapper window [%d,%d) exceeds buffer of length %d", offset, end, len(buf))
	}
	inner := buf[offset:end]
	if len(inner) < 4 {
		panicf(InvalidSignature, "wrapper inner region too small for a magic number")
	}
	magic2 := binary.LittleEndian.Uint32(inner[0:4])

	return Signature{
		Magic:   magic,
		Magic2:  magic2,
		Version: version,
		Offset:  offset,
		Size:    size,
		CPUType: cpuType,
	}, inner[4:]
}
