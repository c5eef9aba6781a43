// Copyright 2016, The dsnet/bitstream Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package schema

// CastOpcode enumerates the values bitcode files use to encode which cast a
// CE_CAST or CAST record refers to. These have no fixed relation to LLVM
// IR's internal enum values.
const (
	CastTrunc     uint64 = 0
	CastZExt      uint64 = 1
	CastSExt      uint64 = 2
	CastFpToUi    uint64 = 3
	CastFpToSi    uint64 = 4
	CastUiToFp    uint64 = 5
	CastSiToFp    uint64 = 6
	CastFpTrunc   uint64 = 7
	CastFpExt     uint64 = 8
	CastPtrToInt  uint64 = 9
	CastIntToPtr  uint64 = 10
	CastBitcast   uint64 = 11
	CastAddrspace uint64 = 12
)

var castOpcodeTable = newTable([]entry{
	{CastTrunc, "TRUNC"},
	{CastZExt, "ZEXT"},
	{CastSExt, "SEXT"},
	{CastFpToUi, "FPTOUI"},
	{CastFpToSi, "FPTOSI"},
	{CastUiToFp, "UITOFP"},
	{CastSiToFp, "SITOFP"},
	{CastFpTrunc, "FPTRUNC"},
	{CastFpExt, "FPEXT"},
	{CastPtrToInt, "PTRTOINT"},
	{CastIntToPtr, "INTTOPTR"},
	{CastBitcast, "BITCAST"},
	{CastAddrspace, "ADDRSPACECAST"},
})

func CastOpcodeName(code uint64) (string, bool)   { return castOpcodeTable.name(code) }
func CastOpcodeByName(name string) (uint64, bool) { return castOpcodeTable.value(name) }

// BinOpcode enumerates the values bitcode files use to encode which binary
// operator a CE_BINOP or BINOP record refers to.
const (
	BinAdd  uint64 = 0
	BinSub  uint64 = 1
	BinMul  uint64 = 2
	BinUdiv uint64 = 3
	BinSdiv uint64 = 4
	BinUrem uint64 = 5
	BinSrem uint64 = 6
	BinShl  uint64 = 7
	BinLshr uint64 = 8
	BinAshr uint64 = 9
	BinAnd  uint64 = 10
	BinOr   uint64 = 11
	BinXor  uint64 = 12
)

var binOpcodeTable = newTable([]entry{
	{BinAdd, "ADD"},
	{BinSub, "SUB"},
	{BinMul, "MUL"},
	{BinUdiv, "UDIV"},
	{BinSdiv, "SDIV"},
	{BinUrem, "UREM"},
	{BinSrem, "SREM"},
	{BinShl, "SHL"},
	{BinLshr, "LSHR"},
	{BinAshr, "ASHR"},
	{BinAnd, "AND"},
	{BinOr, "OR"},
	{BinXor, "XOR"},
})

func BinOpcodeName(code uint64) (string, bool)   { return binOpcodeTable.name(code) }
func BinOpcodeByName(name string) (uint64, bool) { return binOpcodeTable.value(name) }

// UnaryOpcode enumerates the values bitcode files use for UNOP records.
const (
	UnaryFneg uint64 = 0
)

var unaryOpcodeTable = newTable([]entry{
	{UnaryFneg, "FNEG"},
})

func UnaryOpcodeName(code uint64) (string, bool)   { return unaryOpcodeTable.name(code) }
func UnaryOpcodeByName(name string) (uint64, bool) { return unaryOpcodeTable.value(name) }

// RMWOperation enumerates the atomic read-modify-write operations used by
// ATOMICRMW records.
const (
	RmwXchg     uint64 = 0
	RmwAdd      uint64 = 1
	RmwSub      uint64 = 2
	RmwAnd      uint64 = 3
	RmwNand     uint64 = 4
	RmwOr       uint64 = 5
	RmwXor      uint64 = 6
	RmwMax      uint64 = 7
	RmwMin      uint64 = 8
	RmwUmax     uint64 = 9
	RmwUmin     uint64 = 10
	RmwFadd     uint64 = 11
	RmwFsub     uint64 = 12
	RmwFmax     uint64 = 13
	RmwFmin     uint64 = 14
	RmwUincWrap uint64 = 15
	RmwUdecWrap uint64 = 16
	RmwUsubCond uint64 = 17
	RmwUsubSat  uint64 = 18
)

var rmwOperationTable = newTable([]entry{
	{RmwXchg, "XCHG"},
	{RmwAdd, "ADD"},
	{RmwSub, "SUB"},
	{RmwAnd, "AND"},
	{RmwNand, "NAND"},
	{RmwOr, "OR"},
	{RmwXor, "XOR"},
	{RmwMax, "MAX"},
	{RmwMin, "MIN"},
	{RmwUmax, "UMAX"},
	{RmwUmin, "UMIN"},
	{RmwFadd, "FADD"},
	{RmwFsub, "FSUB"},
	{RmwFmax, "FMAX"},
	{RmwFmin, "FMIN"},
	{RmwUincWrap, "UINC_WRAP"},
	{RmwUdecWrap, "UDEC_WRAP"},
	{RmwUsubCond, "USUB_COND"},
	{RmwUsubSat, "USUB_SAT"},
})

func RMWOperationName(code uint64) (string, bool)   { return rmwOperationTable.name(code) }
func RMWOperationByName(name string) (uint64, bool) { return rmwOperationTable.value(name) }
