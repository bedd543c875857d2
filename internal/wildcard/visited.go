/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

package wildcard

import "github.com/bits-and-blooms/bitset"

// denseLimit is the largest state space, in bits, kept in a dense bitset.
// Larger spaces fall back to a map holding only the states actually pushed.
const denseLimit = 1 << 22

// state is a partial-match checkpoint: input consumed up to si, pattern up to pi.
type state struct {
	si, pi int
}

// visitedSet records the states already pushed for exploration.
type visitedSet interface {
	// testAndSet marks (si, pi) and reports whether it was already marked.
	testAndSet(si, pi int) bool
}

// denseVisited is a row-major bit matrix of (sLen+1) × (pLen+1) states.
type denseVisited struct {
	bits *bitset.BitSet
	cols uint
}

func newDenseVisited(sLen, pLen int) *denseVisited {
	cols := uint(pLen + 1)
	return &denseVisited{
		bits: bitset.New(uint(sLen+1) * cols),
		cols: cols,
	}
}

func (d *denseVisited) testAndSet(si, pi int) bool {
	i := uint(si)*d.cols + uint(pi)
	if d.bits.Test(i) {
		return true
	}
	d.bits.Set(i)
	return false
}

type sparseVisited map[state]struct{}

func (s sparseVisited) testAndSet(si, pi int) bool {
	k := state{si, pi}
	if _, ok := s[k]; ok {
		return true
	}
	s[k] = struct{}{}
	return false
}

// newVisited picks the representation for an input of sLen and a pattern of pLen.
func newVisited(sLen, pLen int) visitedSet {
	// The product is compared by division so huge lengths cannot overflow.
	if sLen+1 <= denseLimit/(pLen+1) {
		return newDenseVisited(sLen, pLen)
	}
	return make(sparseVisited)
}
