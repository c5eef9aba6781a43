// Copyright 2016, The dsnet/bitstream Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package schema

// BlockID enumerates the reserved top-level block identifiers LLVM bitcode
// assigns a fixed meaning (0..7 are reserved for the bitstream container
// itself and never appear here; see the bitstream package).
const (
	BlockModule                  uint64 = 8
	BlockParamAttr               uint64 = 9
	BlockParamAttrGroup          uint64 = 10
	BlockConstants               uint64 = 11
	BlockFunction                uint64 = 12
	BlockIdentification          uint64 = 13
	BlockValueSymtab             uint64 = 14
	BlockMetadata                uint64 = 15
	BlockMetadataAttachment      uint64 = 16
	BlockType                    uint64 = 17
	BlockUselist                 uint64 = 18
	BlockModuleStrtab            uint64 = 19
	BlockGlobalvalSummary        uint64 = 20
	BlockOperandBundleTags       uint64 = 21
	BlockMetadataKind            uint64 = 22
	BlockStrtab                  uint64 = 23
	BlockFullLtoGlobalvalSummary uint64 = 24
	BlockSymtab                  uint64 = 25
	BlockSyncScopeNames          uint64 = 26
)

var blockIDTable = newTable([]entry{
	{BlockModule, "MODULE"},
	{BlockParamAttr, "PARAMATTR"},
	{BlockParamAttrGroup, "PARAMATTR_GROUP"},
	{BlockConstants, "CONSTANTS"},
	{BlockFunction, "FUNCTION"},
	{BlockIdentification, "IDENTIFICATION"},
	{BlockValueSymtab, "VALUE_SYMTAB"},
	{BlockMetadata, "METADATA"},
	{BlockMetadataAttachment, "METADATA_ATTACHMENT"},
	{BlockType, "TYPE_NEW"},
	{BlockUselist, "USELIST"},
	{BlockModuleStrtab, "MODULE_STRTAB"},
	{BlockGlobalvalSummary, "GLOBALVAL_SUMMARY"},
	{BlockOperandBundleTags, "OPERAND_BUNDLE_TAGS"},
	{BlockMetadataKind, "METADATA_KIND"},
	{BlockStrtab, "STRTAB"},
	{BlockFullLtoGlobalvalSummary, "FULL_LTO_GLOBALVAL_SUMMARY"},
	{BlockSymtab, "SYMTAB"},
	{BlockSyncScopeNames, "SYNC_SCOPE_NAMES"},
})

// BlockIDName returns the symbolic name for a top-level block ID.
func BlockIDName(code uint64) (string, bool) { return blockIDTable.name(code) }

// BlockIDByName returns the numeric block ID for a symbolic name.
func BlockIDByName(name string) (uint64, bool) { return blockIDTable.value(name) }

var operandBundleTagCodeTable = newTable([]entry{
	{1, "TAG"},
})

func OperandBundleTagCodeName(code uint64) (string, bool) { return operandBundleTagCodeTable.name(code) }
func OperandBundleTagCodeByName(name string) (uint64, bool) {
	return operandBundleTagCodeTable.value(name)
}

var syncScopeNameCodeTable = newTable([]entry{
	{1, "SYNC_SCOPE_NAME"},
})

func SyncScopeNameCodeName(code uint64) (string, bool) { return syncScopeNameCodeTable.name(code) }
func SyncScopeNameCodeByName(name string) (uint64, bool) {
	return syncScopeNameCodeTable.value(name)
}

var strtabCodeTable = newTable([]entry{
	{1, "STRTAB_BLOB"},
})

func StrtabCodeName(code uint64) (string, bool)   { return strtabCodeTable.name(code) }
func StrtabCodeByName(name string) (uint64, bool) { return strtabCodeTable.value(name) }

var symtabCodeTable = newTable([]entry{
	{1, "SYMTAB_BLOB"},
})

func SymtabCodeName(code uint64) (string, bool)   { return symtabCodeTable.name(code) }
func SymtabCodeByName(name string) (uint64, bool) { return symtabCodeTable.value(name) }

var moduleCodeTable = newTable([]entry{
	{1, "VERSION"},
	{2, "TRIPLE"},
	{3, "DATALAYOUT"},
	{4, "ASM"},
	{5, "SECTIONNAME"},
	{6, "DEPLIB"},
	{7, "GLOBALVAR"},
	{8, "FUNCTION"},
	{9, "ALIAS_OLD"},
	{11, "GCNAME"},
	{12, "COMDAT"},
	{13, "VSTOFFSET"},
	{14, "ALIAS"},
	{15, "METADATA_VALUES_UNUSED"},
	{16, "SOURCE_FILENAME"},
	{17, "HASH"},
	{18, "IFUNC"},
})

func ModuleCodeName(code uint64) (string, bool)   { return moduleCodeTable.name(code) }
func ModuleCodeByName(name string) (uint64, bool) { return moduleCodeTable.value(name) }

var globalValueSummaryCodeTable = newTable([]entry{
	{1, "PERMODULE"},
	{2, "PERMODULE_PROFILE"},
	{3, "PERMODULE_GLOBALVAR_INIT_REFS"},
	{4, "COMBINED"},
	{5, "COMBINED_PROFILE"},
	{6, "COMBINED_GLOBALVAR_INIT_REFS"},
	{7, "ALIAS"},
	{8, "COMBINED_ALIAS"},
	{9, "COMBINED_ORIGINAL_NAME"},
	{10, "VERSION"},
	{11, "TYPE_TESTS"},
	{12, "TYPE_TEST_ASSUME_VCALLS"},
	{13, "TYPE_CHECKED_LOAD_VCALLS"},
	{14, "TYPE_TEST_ASSUME_CONST_VCALL"},
	{15, "TYPE_CHECKED_LOAD_CONST_VCALL"},
	{16, "VALUE_GUID"},
	{17, "CFI_FUNCTION_DEFS"},
	{18, "CFI_FUNCTION_DECLS"},
	{19, "PERMODULE_RELBF"},
	{20, "FLAGS"},
	{21, "TYPE_ID"},
	{22, "TYPE_ID_METADATA"},
	{23, "PERMODULE_VTABLE_GLOBALVAR_INIT_REFS"},
	{24, "BLOCK_COUNT"},
	{25, "PARAM_ACCESS"},
	{26, "PERMODULE_CALLSITE_INFO"},
	{27, "PERMODULE_ALLOC_INFO"},
	{28, "COMBINED_CALLSITE_INFO"},
	{29, "COMBINED_ALLOC_INFO"},
	{30, "STACK_IDS"},
	{31, "ALLOC_CONTEXT_IDS"},
	{32, "CONTEXT_RADIX_TREE_ARRAY"},
})

func GlobalValueSummaryCodeName(code uint64) (string, bool) {
	return globalValueSummaryCodeTable.name(code)
}
func GlobalValueSummaryCodeByName(name string) (uint64, bool) {
	return globalValueSummaryCodeTable.value(name)
}

var metadataCodeTable = newTable([]entry{
	{1, "STRING_OLD"},
	{2, "VALUE"},
	{3, "NODE"},
	{4, "NAME"},
	{5, "DISTINCT_NODE"},
	{6, "KIND"},
	{7, "LOCATION"},
	{8, "OLD_NODE"},
	{9, "OLD_FN_NODE"},
	{10, "NAMED_NODE"},
	{11, "ATTACHMENT"},
	{12, "GENERIC_DEBUG"},
	{13, "SUBRANGE"},
	{14, "ENUMERATOR"},
	{15, "BASIC_TYPE"},
	{16, "FILE"},
	{17, "DERIVED_TYPE"},
	{18, "COMPOSITE_TYPE"},
	{19, "SUBROUTINE_TYPE"},
	{20, "COMPILE_UNIT"},
	{21, "SUBPROGRAM"},
	{22, "LEXICAL_BLOCK"},
	{23, "LEXICAL_BLOCK_FILE"},
	{24, "NAMESPACE"},
	{25, "TEMPLATE_TYPE"},
	{26, "TEMPLATE_VALUE"},
	{27, "GLOBAL_VAR"},
	{28, "LOCAL_VAR"},
	{29, "EXPRESSION"},
	{30, "OBJC_PROPERTY"},
	{31, "IMPORTED_ENTITY"},
	{32, "MODULE"},
	{33, "MACRO"},
	{34, "MACRO_FILE"},
	{35, "STRINGS"},
	{36, "GLOBAL_DECL_ATTACHMENT"},
	{37, "GLOBAL_VAR_EXPR"},
	{38, "INDEX_OFFSET"},
	{39, "INDEX"},
	{40, "LABEL"},
	{41, "STRING_TYPE"},
	{44, "COMMON_BLOCK"},
	{45, "GENERIC_SUBRANGE"},
	{46, "ARG_LIST"},
	{47, "ASSIGN_ID"},
})

func MetadataCodeName(code uint64) (string, bool)   { return metadataCodeTable.name(code) }
func MetadataCodeByName(name string) (uint64, bool) { return metadataCodeTable.value(name) }

var uselistCodeTable = newTable([]entry{
	{1, "DEFAULT"},
	{2, "BB"},
})

func UselistCodeName(code uint64) (string, bool)   { return uselistCodeTable.name(code) }
func UselistCodeByName(name string) (uint64, bool) { return uselistCodeTable.value(name) }

var identificationCodeTable = newTable([]entry{
	{1, "STRING"},
	{2, "EPOCH"},
})

func IdentificationCodeName(code uint64) (string, bool) { return identificationCodeTable.name(code) }
func IdentificationCodeByName(name string) (uint64, bool) {
	return identificationCodeTable.value(name)
}

var attributeCodeTable = newTable([]entry{
	{1, "ENTRY_OLD"},
	{2, "ENTRY"},
	{3, "GRP_CODE_ENTRY"},
})

func AttributeCodeName(code uint64) (string, bool)   { return attributeCodeTable.name(code) }
func AttributeCodeByName(name string) (uint64, bool) { return attributeCodeTable.value(name) }

var valueSymtabCodeTable = newTable([]entry{
	{1, "ENTRY"},
	{2, "BB_ENTRY"},
	{3, "FN_ENTRY"},
	{5, "COMBINED_ENTRY"},
})

func ValueSymtabCodeName(code uint64) (string, bool)   { return valueSymtabCodeTable.name(code) }
func ValueSymtabCodeByName(name string) (uint64, bool) { return valueSymtabCodeTable.value(name) }

var typeCodeTable = newTable([]entry{
	{1, "NUMENTRY"},
	{2, "VOID"},
	{3, "FLOAT"},
	{4, "DOUBLE"},
	{5, "LABEL"},
	{6, "OPAQUE"},
	{7, "INTEGER"},
	{8, "POINTER"},
	{9, "FUNCTION_OLD"},
	{10, "HALF"},
	{11, "ARRAY"},
	{12, "VECTOR"},
	{13, "X86_FP80"},
	{14, "FP128"},
	{15, "PPC_FP128"},
	{16, "METADATA"},
	{17, "X86_MMX"},
	{18, "STRUCT_ANON"},
	{19, "STRUCT_NAME"},
	{20, "STRUCT_NAMED"},
	{21, "FUNCTION"},
	{22, "TOKEN"},
	{23, "BFLOAT"},
	{24, "X86_AMX"},
	{25, "OPAQUE_POINTER"},
	{26, "TARGET_TYPE"},
})

func TypeCodeName(code uint64) (string, bool)   { return typeCodeTable.name(code) }
func TypeCodeByName(name string) (uint64, bool) { return typeCodeTable.value(name) }

var constantsCodeTable = newTable([]entry{
	{1, "SETTYPE"},
	{2, "NULL"},
	{3, "UNDEF"},
	{4, "INTEGER"},
	{5, "WIDE_INTEGER"},
	{6, "FLOAT"},
	{7, "AGGREGATE"},
	{8, "STRING"},
	{9, "CSTRING"},
	{10, "CE_BINOP"},
	{11, "CE_CAST"},
	{12, "CE_GEP_OLD"},
	{13, "CE_SELECT"},
	{14, "CE_EXTRACTELT"},
	{15, "CE_INSERTELT"},
	{16, "CE_SHUFFLEVEC"},
	{17, "CE_CMP"},
	{18, "INLINEASM_OLD"},
	{19, "SHUFVEC_EX"},
	{20, "INBOUNDS_GEP"},
	{21, "BLOCKADDRESS"},
	{22, "DATA"},
	{23, "INLINEASM_OLD2"},
	{24, "CE_GEP_WITH_INRANGE_INDEX_OLD"},
	{25, "CE_UNOP"},
	{26, "POISON"},
	{27, "DSO_LOCAL_EQUIVALENT"},
	{28, "INLINEASM_OLD3"},
	{29, "NO_CFI"},
	{30, "INLINEASM"},
	{31, "CE_GEP_WITH_INRANGE"},
	{32, "CE_GEP"},
	{33, "PTRAUTH"},
})

func ConstantsCodeName(code uint64) (string, bool)   { return constantsCodeTable.name(code) }
func ConstantsCodeByName(name string) (uint64, bool) { return constantsCodeTable.value(name) }

var functionCodeTable = newTable([]entry{
	{1, "DECLAREBLOCKS"},
	{2, "BINOP"},
	{3, "CAST"},
	{4, "GEP_OLD"},
	{5, "SELECT_OLD"},
	{6, "EXTRACTELT"},
	{7, "INSERTELT"},
	{8, "SHUFFLEVEC"},
	{9, "CMP"},
	{10, "RET"},
	{11, "BR"},
	{12, "SWITCH"},
	{13, "INVOKE"},
	{15, "UNREACHABLE"},
	{16, "PHI"},
	{19, "ALLOCA"},
	{20, "LOAD"},
	{23, "VAARG"},
	{24, "STORE_OLD"},
	{26, "EXTRACTVAL"},
	{27, "INSERTVAL"},
	{28, "CMP2"},
	{29, "VSELECT"},
	{30, "INBOUNDS_GEP_OLD"},
	{31, "INDIRECTBR"},
	{33, "DEBUG_LOC_AGAIN"},
	{34, "CALL"},
	{35, "DEBUG_LOC"},
	{36, "FENCE"},
	{37, "CMPXCHG_OLD"},
	{38, "ATOMICRMW_OLD"},
	{39, "RESUME"},
	{40, "LANDINGPAD_OLD"},
	{41, "LOAD_ATOMIC"},
	{42, "STORE_ATOMIC_OLD"},
	{43, "GEP"},
	{44, "STORE"},
	{45, "STORE_ATOMIC"},
	{46, "CMPXCHG"},
	{47, "LANDINGPAD"},
	{48, "CLEANUPRET"},
	{49, "CATCHRET"},
	{50, "CATCHPAD"},
	{51, "CLEANUPPAD"},
	{52, "CATCHSWITCH"},
	{55, "OPERAND_BUNDLE"},
	{56, "UNOP"},
	{57, "CALLBR"},
	{58, "FREEZE"},
	{59, "ATOMICRMW"},
	{60, "BLOCKADDR_USERS"},
	{61, "DEBUG_RECORD_VALUE"},
	{62, "DEBUG_RECORD_DECLARE"},
	{63, "DEBUG_RECORD_ASSIGN"},
	{64, "DEBUG_RECORD_VALUE_SIMPLE"},
	{65, "DEBUG_RECORD_LABEL"},
})

func FunctionCodeName(code uint64) (string, bool)   { return functionCodeTable.name(code) }
func FunctionCodeByName(name string) (uint64, bool) { return functionCodeTable.value(name) }

var modulePathSymtabCodeTable = newTable([]entry{
	{1, "MST_ENTRY"},
	{2, "MST_HASH"},
})

func ModulePathSymtabCodeName(code uint64) (string, bool) { return modulePathSymtabCodeTable.name(code) }
func ModulePathSymtabCodeByName(name string) (uint64, bool) {
	return modulePathSymtabCodeTable.value(name)
}
