// Copyright 2016, The dsnet/bitstream Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package schema

// Linkage enumerates the encoded linkage kinds used by GLOBALVAR, FUNCTION,
// and ALIAS records.
const (
	LinkageExternal             uint64 = 0
	LinkageWeak                 uint64 = 1
	LinkageAppending            uint64 = 2
	LinkageInternal             uint64 = 3
	LinkageLinkonce             uint64 = 4
	LinkageDllimport            uint64 = 5
	LinkageDllexport            uint64 = 6
	LinkageExternWeak           uint64 = 7
	LinkageCommon               uint64 = 8
	LinkagePrivate              uint64 = 9
	LinkageWeakOdr              uint64 = 10
	LinkageLinkonceOdr          uint64 = 11
	LinkageAvailableExternally  uint64 = 12
	LinkageDeprecated1          uint64 = 13
	LinkageDeprecated2          uint64 = 14
)

var linkageTable = newTable([]entry{
	{LinkageExternal, "EXTERNAL"},
	{LinkageWeak, "WEAK"},
	{LinkageAppending, "APPENDING"},
	{LinkageInternal, "INTERNAL"},
	{LinkageLinkonce, "LINKONCE"},
	{LinkageDllimport, "DLLIMPORT"},
	{LinkageDllexport, "DLLEXPORT"},
	{LinkageExternWeak, "EXTERN_WEAK"},
	{LinkageCommon, "COMMON"},
	{LinkagePrivate, "PRIVATE"},
	{LinkageWeakOdr, "WEAK_ODR"},
	{LinkageLinkonceOdr, "LINKONCE_ODR"},
	{LinkageAvailableExternally, "AVAILABLE_EXTERNALLY"},
	{LinkageDeprecated1, "DEPRECATED1"},
	{LinkageDeprecated2, "DEPRECATED2"},
})

func LinkageName(code uint64) (string, bool)   { return linkageTable.name(code) }
func LinkageByName(name string) (uint64, bool) { return linkageTable.value(name) }

// DLLStorageClass enumerates a global's DLL storage class.
const (
	DLLStorageDefault uint64 = 0
	DLLStorageImport  uint64 = 1
	DLLStorageExport  uint64 = 2
)

var dllStorageClassTable = newTable([]entry{
	{DLLStorageDefault, "DEFAULT"},
	{DLLStorageImport, "IMPORT"},
	{DLLStorageExport, "EXPORT"},
})

func DLLStorageClassName(code uint64) (string, bool)   { return dllStorageClassTable.name(code) }
func DLLStorageClassByName(name string) (uint64, bool) { return dllStorageClassTable.value(name) }

// ComdatSelectionKind enumerates the possible selection mechanisms for
// COMDAT sections.
const (
	ComdatAny           uint64 = 1
	ComdatExactMatch    uint64 = 2
	ComdatLargest       uint64 = 3
	ComdatNoDuplicates  uint64 = 4
	ComdatSameSize      uint64 = 5
)

var comdatSelectionKindTable = newTable([]entry{
	{ComdatAny, "ANY"},
	{ComdatExactMatch, "EXACT_MATCH"},
	{ComdatLargest, "LARGEST"},
	{ComdatNoDuplicates, "NODUPLICATES"},
	{ComdatSameSize, "SAMESIZE"},
})

func ComdatSelectionKindName(code uint64) (string, bool) { return comdatSelectionKindTable.name(code) }
func ComdatSelectionKindByName(name string) (uint64, bool) {
	return comdatSelectionKindTable.value(name)
}

// CallingConv enumerates LLVM's calling-convention tags. Only the IDs with a
// well-known name are listed; an unrecognized ID is still a valid value, it
// simply has no symbolic name.
const (
	CallConvC                      uint64 = 0
	CallConvFast                   uint64 = 8
	CallConvCold                   uint64 = 9
	CallConvGHC                    uint64 = 10
	CallConvHiPE                   uint64 = 11
	CallConvAnyReg                 uint64 = 13
	CallConvPreserveMost           uint64 = 14
	CallConvPreserveAll            uint64 = 15
	CallConvSwift                  uint64 = 16
	CallConvCxxFastTls             uint64 = 17
	CallConvTail                   uint64 = 18
	CallConvCFGuardCheck           uint64 = 19
	CallConvSwiftTail              uint64 = 20
	CallConvPreserveNone           uint64 = 21
	CallConvX86StdCall             uint64 = 64
	CallConvX86FastCall            uint64 = 65
	CallConvArmApcs                uint64 = 66
	CallConvArmAapcs               uint64 = 67
	CallConvArmAapcsVfp            uint64 = 68
	CallConvMsp430Intr             uint64 = 69
	CallConvX86ThisCall            uint64 = 70
	CallConvPTXKernel              uint64 = 71
	CallConvPTXDevice              uint64 = 72
	CallConvSpirFunc               uint64 = 75
	CallConvSpirKernel             uint64 = 76
	CallConvIntelOclBi             uint64 = 77
	CallConvX8664SysV              uint64 = 78
	CallConvWin64                  uint64 = 79
	CallConvX86VectorCall          uint64 = 80
	CallConvDummyHhvm              uint64 = 81
	CallConvDummyHhvmC             uint64 = 82
	CallConvX86Intr                uint64 = 83
	CallConvAvrIntr                uint64 = 84
	CallConvAvrSignal              uint64 = 85
	CallConvAvrBuiltin             uint64 = 86
	CallConvAmdGpuVs               uint64 = 87
	CallConvAmdGpuGs               uint64 = 88
	CallConvAmdGpuPs               uint64 = 89
	CallConvAmdGpuCs               uint64 = 90
	CallConvAmdGpuKernel           uint64 = 91
	CallConvX86RegCall             uint64 = 92
	CallConvAmdGpuHs               uint64 = 93
	CallConvMsp430Builtin          uint64 = 94
	CallConvAmdGpuLs               uint64 = 95
	CallConvAmdGpuEs               uint64 = 96
	CallConvAArch64VectorCall      uint64 = 97
	CallConvAArch64SVEVectorCall   uint64 = 98
	CallConvWasmEmscriptenInvoke   uint64 = 99
	CallConvAmdGpuGfx              uint64 = 100
	CallConvM68kIntr               uint64 = 101
	CallConvAmdGpuCSChain          uint64 = 104
	CallConvAmdGpuCSChainPreserve  uint64 = 105
	CallConvM68kRTD                uint64 = 106
	CallConvGraal                  uint64 = 107
	CallConvArm64ECThunkX64        uint64 = 108
	CallConvArm64ECThunkNative     uint64 = 109
	CallConvRiscVVectorCall        uint64 = 110
)

var callingConvTable = newTable([]entry{
	{CallConvC, "C"},
	{CallConvFast, "FAST"},
	{CallConvCold, "COLD"},
	{CallConvGHC, "GHC"},
	{CallConvHiPE, "HIPE"},
	{CallConvAnyReg, "ANYREG"},
	{CallConvPreserveMost, "PRESERVE_MOST"},
	{CallConvPreserveAll, "PRESERVE_ALL"},
	{CallConvSwift, "SWIFT"},
	{CallConvCxxFastTls, "CXX_FAST_TLS"},
	{CallConvTail, "TAIL"},
	{CallConvCFGuardCheck, "CFGUARD_CHECK"},
	{CallConvSwiftTail, "SWIFT_TAIL"},
	{CallConvPreserveNone, "PRESERVE_NONE"},
	{CallConvX86StdCall, "X86_STDCALL"},
	{CallConvX86FastCall, "X86_FASTCALL"},
	{CallConvArmApcs, "ARM_APCS"},
	{CallConvArmAapcs, "ARM_AAPCS"},
	{CallConvArmAapcsVfp, "ARM_AAPCS_VFP"},
	{CallConvMsp430Intr, "MSP430_INTR"},
	{CallConvX86ThisCall, "X86_THISCALL"},
	{CallConvPTXKernel, "PTX_KERNEL"},
	{CallConvPTXDevice, "PTX_DEVICE"},
	{CallConvSpirFunc, "SPIR_FUNC"},
	{CallConvSpirKernel, "SPIR_KERNEL"},
	{CallConvIntelOclBi, "INTEL_OCL_BI"},
	{CallConvX8664SysV, "X86_64_SYSV"},
	{CallConvWin64, "WIN64"},
	{CallConvX86VectorCall, "X86_VECTORCALL"},
	{CallConvDummyHhvm, "DUMMY_HHVM"},
	{CallConvDummyHhvmC, "DUMMY_HHVM_C"},
	{CallConvX86Intr, "X86_INTR"},
	{CallConvAvrIntr, "AVR_INTR"},
	{CallConvAvrSignal, "AVR_SIGNAL"},
	{CallConvAvrBuiltin, "AVR_BUILTIN"},
	{CallConvAmdGpuVs, "AMDGPU_VS"},
	{CallConvAmdGpuGs, "AMDGPU_GS"},
	{CallConvAmdGpuPs, "AMDGPU_PS"},
	{CallConvAmdGpuCs, "AMDGPU_CS"},
	{CallConvAmdGpuKernel, "AMDGPU_KERNEL"},
	{CallConvX86RegCall, "X86_REGCALL"},
	{CallConvAmdGpuHs, "AMDGPU_HS"},
	{CallConvMsp430Builtin, "MSP430_BUILTIN"},
	{CallConvAmdGpuLs, "AMDGPU_LS"},
	{CallConvAmdGpuEs, "AMDGPU_ES"},
	{CallConvAArch64VectorCall, "AARCH64_VECTORCALL"},
	{CallConvAArch64SVEVectorCall, "AARCH64_SVE_VECTORCALL"},
	{CallConvWasmEmscriptenInvoke, "WASM_EMSCRIPTENINVOKE"},
	{CallConvAmdGpuGfx, "AMDGPU_GFX"},
	{CallConvM68kIntr, "M68K_INTR"},
	{CallConvAmdGpuCSChain, "AMDGPU_CS_CHAIN"},
	{CallConvAmdGpuCSChainPreserve, "AMDGPU_CS_CHAIN_PRESERVE"},
	{CallConvM68kRTD, "M68K_RTD"},
	{CallConvGraal, "GRAAL"},
	{CallConvArm64ECThunkX64, "ARM64EC_THUNK_X64"},
	{CallConvArm64ECThunkNative, "ARM64EC_THUNK_NATIVE"},
	{CallConvRiscVVectorCall, "RISCV_VECTORCALL"},
})

func CallingConvName(code uint64) (string, bool)   { return callingConvTable.name(code) }
func CallingConvByName(name string) (uint64, bool) { return callingConvTable.value(name) }
