// Copyright 2016, The dsnet/bitstream Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package schema

// AtomicOrdering enumerates the encoded memory ordering used by atomic
// load/store/RMW/cmpxchg records.
const (
	AtomicNotAtomic uint64 = 0
	AtomicUnordered uint64 = 1
	AtomicMonotonic uint64 = 2
	AtomicAcquire   uint64 = 3
	AtomicRelease   uint64 = 4
	AtomicAcqRel    uint64 = 5
	AtomicSeqCst    uint64 = 6
)

var atomicOrderingTable = newTable([]entry{
	{AtomicNotAtomic, "NOTATOMIC"},
	{AtomicUnordered, "UNORDERED"},
	{AtomicMonotonic, "MONOTONIC"},
	{AtomicAcquire, "ACQUIRE"},
	{AtomicRelease, "RELEASE"},
	{AtomicAcqRel, "ACQREL"},
	{AtomicSeqCst, "SEQCST"},
})

// AtomicOrderingName returns the symbolic name for an encoded ordering.
func AtomicOrderingName(code uint64) (string, bool) { return atomicOrderingTable.name(code) }

// AtomicOrderingByName returns the numeric code for an ordering's name.
func AtomicOrderingByName(name string) (uint64, bool) { return atomicOrderingTable.value(name) }
