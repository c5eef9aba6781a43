// Copyright 2016, The dsnet/bitstream Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package schema

// AttrKind enumerates the well-known function/parameter attribute kinds
// used in PARAMATTR_GROUP entries. 0 is unused.
const (
	AttrAlignment                      uint64 = 1
	AttrAlwaysInline                   uint64 = 2
	AttrByVal                          uint64 = 3
	AttrInlineHint                     uint64 = 4
	AttrInReg                          uint64 = 5
	AttrMinSize                        uint64 = 6
	AttrNaked                          uint64 = 7
	AttrNest                           uint64 = 8
	AttrNoAlias                        uint64 = 9
	AttrNoBuiltin                      uint64 = 10
	AttrNoCapture                      uint64 = 11
	AttrNoDuplicate                    uint64 = 12
	AttrNoImplicitFloat                uint64 = 13
	AttrNoInline                       uint64 = 14
	AttrNonLazyBind                    uint64 = 15
	AttrNoRedZone                      uint64 = 16
	AttrNoReturn                       uint64 = 17
	AttrNoUnwind                       uint64 = 18
	AttrOptimizeForSize                uint64 = 19
	AttrReadNone                       uint64 = 20
	AttrReadOnly                       uint64 = 21
	AttrReturned                       uint64 = 22
	AttrReturnsTwice                   uint64 = 23
	AttrSExt                           uint64 = 24
	AttrStackAlignment                 uint64 = 25
	AttrStackProtect                   uint64 = 26
	AttrStackProtectReq                uint64 = 27
	AttrStackProtectStrong             uint64 = 28
	AttrStructRet                      uint64 = 29
	AttrSanitizeAddress                uint64 = 30
	AttrSanitizeThread                 uint64 = 31
	AttrSanitizeMemory                 uint64 = 32
	AttrUwTable                        uint64 = 33
	AttrZExt                           uint64 = 34
	AttrBuiltin                        uint64 = 35
	AttrCold                           uint64 = 36
	AttrOptimizeNone                   uint64 = 37
	AttrInAlloca                       uint64 = 38
	AttrNonNull                        uint64 = 39
	AttrJumpTable                      uint64 = 40
	AttrDereferenceable                uint64 = 41
	AttrDereferenceableOrNull          uint64 = 42
	AttrConvergent                     uint64 = 43
	AttrSafestack                      uint64 = 44
	AttrArgMemOnly                     uint64 = 45
	AttrSwiftSelf                      uint64 = 46
	AttrSwiftError                     uint64 = 47
	AttrNoRecurse                      uint64 = 48
	AttrInaccessibleMemOnly            uint64 = 49
	AttrInaccessiblememOrArgMemOnly    uint64 = 50
	AttrAllocSize                      uint64 = 51
	AttrWriteonly                      uint64 = 52
	AttrSpeculatable                   uint64 = 53
	AttrStrictFp                       uint64 = 54
	AttrSanitizeHwaddress              uint64 = 55
	AttrNocfCheck                      uint64 = 56
	AttrOptForFuzzing                  uint64 = 57
	AttrShadowcallstack                uint64 = 58
	AttrSpeculativeLoadHardening       uint64 = 59
	AttrImmarg                         uint64 = 60
	AttrWillreturn                     uint64 = 61
	AttrNofree                         uint64 = 62
	AttrNosync                         uint64 = 63
	AttrSanitizeMemtag                 uint64 = 64
	AttrPreallocated                   uint64 = 65
	AttrNoMerge                        uint64 = 66
	AttrNullPointerIsValid             uint64 = 67
	AttrNoundef                        uint64 = 68
	AttrByref                          uint64 = 69
	AttrMustprogress                   uint64 = 70
	AttrNoCallback                     uint64 = 71
	AttrHot                            uint64 = 72
	AttrNoProfile                      uint64 = 73
	AttrVscaleRange                    uint64 = 74
	AttrSwiftAsync                     uint64 = 75
	AttrNoSanitizeCoverage             uint64 = 76
	AttrElementtype                    uint64 = 77
	AttrDisableSanitizerInstrumentation uint64 = 78
	AttrNoSanitizeBounds               uint64 = 79
	AttrAllocAlign                      uint64 = 80
	AttrAllocatedPointer                uint64 = 81
	AttrAllocKind                       uint64 = 82
	AttrPresplitCoroutine                uint64 = 83
	AttrFnretthunkExtern                 uint64 = 84
	AttrSkipProfile                      uint64 = 85
	AttrMemory                            uint64 = 86
	AttrNofpclass                         uint64 = 87
	AttrOptimizeForDebugging              uint64 = 88
	AttrWritable                          uint64 = 89
	AttrCoroOnlyDestroyWhenComplete       uint64 = 90
	AttrDeadOnUnwind                      uint64 = 91
	AttrRange                             uint64 = 92
	AttrSanitizeNumericalStability        uint64 = 93
	AttrInitializes                       uint64 = 94
	AttrHybridPatchable                   uint64 = 95
)

var attrKindTable = newTable([]entry{
	{AttrAlignment, "ALIGNMENT"},
	{AttrAlwaysInline, "ALWAYS_INLINE"},
	{AttrByVal, "BYVAL"},
	{AttrInlineHint, "INLINE_HINT"},
	{AttrInReg, "IN_REG"},
	{AttrMinSize, "MIN_SIZE"},
	{AttrNaked, "NAKED"},
	{AttrNest, "NEST"},
	{AttrNoAlias, "NO_ALIAS"},
	{AttrNoBuiltin, "NO_BUILTIN"},
	{AttrNoCapture, "NO_CAPTURE"},
	{AttrNoDuplicate, "NO_DUPLICATE"},
	{AttrNoImplicitFloat, "NO_IMPLICIT_FLOAT"},
	{AttrNoInline, "NO_INLINE"},
	{AttrNonLazyBind, "NON_LAZY_BIND"},
	{AttrNoRedZone, "NO_RED_ZONE"},
	{AttrNoReturn, "NO_RETURN"},
	{AttrNoUnwind, "NO_UNWIND"},
	{AttrOptimizeForSize, "OPTIMIZE_FOR_SIZE"},
	{AttrReadNone, "READ_NONE"},
	{AttrReadOnly, "READ_ONLY"},
	{AttrReturned, "RETURNED"},
	{AttrReturnsTwice, "RETURNS_TWICE"},
	{AttrSExt, "SEXT"},
	{AttrStackAlignment, "STACK_ALIGNMENT"},
	{AttrStackProtect, "STACK_PROTECT"},
	{AttrStackProtectReq, "STACK_PROTECT_REQ"},
	{AttrStackProtectStrong, "STACK_PROTECT_STRONG"},
	{AttrStructRet, "STRUCT_RET"},
	{AttrSanitizeAddress, "SANITIZE_ADDRESS"},
	{AttrSanitizeThread, "SANITIZE_THREAD"},
	{AttrSanitizeMemory, "SANITIZE_MEMORY"},
	{AttrUwTable, "UW_TABLE"},
	{AttrZExt, "ZEXT"},
	{AttrBuiltin, "BUILTIN"},
	{AttrCold, "COLD"},
	{AttrOptimizeNone, "OPTIMIZE_NONE"},
	{AttrInAlloca, "IN_ALLOCA"},
	{AttrNonNull, "NON_NULL"},
	{AttrJumpTable, "JUMP_TABLE"},
	{AttrDereferenceable, "DEREFERENCEABLE"},
	{AttrDereferenceableOrNull, "DEREFERENCEABLE_OR_NULL"},
	{AttrConvergent, "CONVERGENT"},
	{AttrSafestack, "SAFESTACK"},
	{AttrArgMemOnly, "ARG_MEM_ONLY"},
	{AttrSwiftSelf, "SWIFT_SELF"},
	{AttrSwiftError, "SWIFT_ERROR"},
	{AttrNoRecurse, "NO_RECURSE"},
	{AttrInaccessibleMemOnly, "INACCESSIBLE_MEM_ONLY"},
	{AttrInaccessiblememOrArgMemOnly, "INACCESSIBLEMEM_OR_ARGMEMONLY"},
	{AttrAllocSize, "ALLOC_SIZE"},
	{AttrWriteonly, "WRITEONLY"},
	{AttrSpeculatable, "SPECULATABLE"},
	{AttrStrictFp, "STRICT_FP"},
	{AttrSanitizeHwaddress, "SANITIZE_HWADDRESS"},
	{AttrNocfCheck, "NOCF_CHECK"},
	{AttrOptForFuzzing, "OPT_FOR_FUZZING"},
	{AttrShadowcallstack, "SHADOWCALLSTACK"},
	{AttrSpeculativeLoadHardening, "SPECULATIVE_LOAD_HARDENING"},
	{AttrImmarg, "IMMARG"},
	{AttrWillreturn, "WILLRETURN"},
	{AttrNofree, "NOFREE"},
	{AttrNosync, "NOSYNC"},
	{AttrSanitizeMemtag, "SANITIZE_MEMTAG"},
	{AttrPreallocated, "PREALLOCATED"},
	{AttrNoMerge, "NO_MERGE"},
	{AttrNullPointerIsValid, "NULL_POINTER_IS_VALID"},
	{AttrNoundef, "NOUNDEF"},
	{AttrByref, "BYREF"},
	{AttrMustprogress, "MUSTPROGRESS"},
	{AttrNoCallback, "NO_CALLBACK"},
	{AttrHot, "HOT"},
	{AttrNoProfile, "NO_PROFILE"},
	{AttrVscaleRange, "VSCALE_RANGE"},
	{AttrSwiftAsync, "SWIFT_ASYNC"},
	{AttrNoSanitizeCoverage, "NO_SANITIZE_COVERAGE"},
	{AttrElementtype, "ELEMENTTYPE"},
	{AttrDisableSanitizerInstrumentation, "DISABLE_SANITIZER_INSTRUMENTATION"},
	{AttrNoSanitizeBounds, "NO_SANITIZE_BOUNDS"},
	{AttrAllocAlign, "ALLOC_ALIGN"},
	{AttrAllocatedPointer, "ALLOCATED_POINTER"},
	{AttrAllocKind, "ALLOC_KIND"},
	{AttrPresplitCoroutine, "PRESPLIT_COROUTINE"},
	{AttrFnretthunkExtern, "FNRETTHUNK_EXTERN"},
	{AttrSkipProfile, "SKIP_PROFILE"},
	{AttrMemory, "MEMORY"},
	{AttrNofpclass, "NOFPCLASS"},
	{AttrOptimizeForDebugging, "OPTIMIZE_FOR_DEBUGGING"},
	{AttrWritable, "WRITABLE"},
	{AttrCoroOnlyDestroyWhenComplete, "CORO_ONLY_DESTROY_WHEN_COMPLETE"},
	{AttrDeadOnUnwind, "DEAD_ON_UNWIND"},
	{AttrRange, "RANGE"},
	{AttrSanitizeNumericalStability, "SANITIZE_NUMERICAL_STABILITY"},
	{AttrInitializes, "INITIALIZES"},
	{AttrHybridPatchable, "HYBRID_PATCHABLE"},
})

// AttrKindName returns the symbolic name for an attribute kind code.
func AttrKindName(code uint64) (string, bool) { return attrKindTable.name(code) }

// AttrKindByName returns the numeric code for an attribute kind's name.
func AttrKindByName(name string) (uint64, bool) { return attrKindTable.value(name) }
