// Copyright 2016, The dsnet/bitstream Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bitstream implements a reader for the LLVM Bitstream container
// format: the generic variable-bit-width record/block encoding that LLVM
// uses for bitcode (.bc), serialized diagnostics (.dia), and remark files.
//
// This package decodes the container only; it has no notion of LLVM IR
// semantics. Callers either drive a pull-style BlockIter over nested blocks
// and records, or implement the Visitor interface and call Decode to have
// the stream pushed at them. The schema sub-package supplies the closed
// enumerations (block IDs, record codes, attribute kinds, ...) that give
// meaning to the numbers this package produces.
package bitstream
