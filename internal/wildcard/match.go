/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

package wildcard

import (
	"bytes"
	"strings"
)

// Result is the outcome of a Search.
type Result struct {
	Matched bool
	// Pushed counts the states pushed onto the work stack, the seed included.
	// It never exceeds (len(s)+1) * (len(pattern)+1).
	Pushed int
	// Trials counts the input starts tried for multi wildcards. Each start is
	// tried at most once per multi wildcard, so it never exceeds
	// (len(s)+1) * (number of multi wildcards).
	Trials int
}

// Search decides whether s matches pattern by exploring (input, pattern)
// position pairs with an explicit stack. Each pair is pushed at most once and
// each input start is tried at most once per multi wildcard, so time and space
// are bounded by O(len(s) * len(pattern)) regardless of how many multi
// wildcards the pattern holds.
//
// Only two kinds of state are ever pushed: the pattern is exhausted, or the
// pattern position sits on a multi wildcard. Everything between two multi
// wildcards is resolved inline by comparing characters with eq.
func Search[E byte | rune](s, pattern []E, single, multi E, eq func(p, c E) bool) Result {
	return search(s, pattern, single, multi, eq, newVisited(len(s), len(pattern)))
}

func search[E byte | rune](s, pattern []E, single, multi E, eq func(p, c E) bool, visited visitedSet) Result {
	sLen, pLen := len(s), len(pattern)

	// advance consumes literals and single wildcards until a mismatch, a
	// multi wildcard or the end of either side.
	advance := func(si, pi int) (int, int) {
		for si < sLen && pi < pLen && pattern[pi] != multi &&
			(pattern[pi] == single || eq(pattern[pi], s[si])) {
			si++
			pi++
		}
		return si, pi
	}

	var res Result
	var stack []state
	// lowest[pi] is the smallest input start already expanded for the multi
	// wildcard at pi; every start from there on has been tried.
	var lowest []int
	push := func(si, pi int) {
		if visited.testAndSet(si, pi) {
			return
		}
		stack = append(stack, state{si, pi})
		res.Pushed++
	}

	// Literal prefix up to the first multi wildcard.
	si, pi := advance(0, 0)
	if pi == pLen || pattern[pi] == multi {
		push(si, pi)
	}

	for len(stack) > 0 {
		st := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if st.si == sLen && st.pi == pLen {
			res.Matched = true
			return res
		}
		if st.pi == pLen {
			// Pattern exhausted with input left over.
			continue
		}

		next := st.pi + 1
		if next == pLen {
			// A trailing multi wildcard takes the rest of the input.
			push(sLen, pLen)
			continue
		}

		if lowest == nil {
			lowest = make([]int, pLen)
			for i := range lowest {
				lowest[i] = sLen + 1
			}
		}
		end := lowest[st.pi]
		if st.si >= end {
			continue
		}
		lowest[st.pi] = st.si

		// Let the multi wildcard at st.pi swallow s[st.si:start] for every start.
		for start := st.si; start < end; start++ {
			res.Trials++
			ci, cp := advance(start, next)
			if cp == pLen && ci == sLen || cp < pLen && pattern[cp] == multi {
				push(ci, cp)
			}
		}
	}

	return res
}

// Match reports whether s matches pattern under opts, comparing runes.
func Match(s, pattern string, opts Options) (bool, error) {
	opts, err := opts.normalize()
	if err != nil {
		return false, err
	}

	// Fast path for the most common case: a universal wildcard.
	if pattern == string(opts.Multi) {
		return true, nil
	}

	// Fast path for patterns without any wildcards.
	if !strings.ContainsRune(pattern, opts.Single) && !strings.ContainsRune(pattern, opts.Multi) {
		if opts.Fold {
			return strings.EqualFold(s, pattern), nil
		}
		return s == pattern, nil
	}

	eq := equalRune
	if opts.Fold {
		eq = equalFoldRune
	}
	return Search([]rune(s), []rune(pattern), opts.Single, opts.Multi, eq).Matched, nil
}

// MatchBytes reports whether s matches pattern under opts, comparing bytes.
// Both wildcards must be ASCII, and folding is limited to ASCII letters.
func MatchBytes(s, pattern []byte, opts Options) (bool, error) {
	opts, err := opts.normalizeBytes()
	if err != nil {
		return false, err
	}
	single, multi := byte(opts.Single), byte(opts.Multi)

	if len(pattern) == 1 && pattern[0] == multi {
		return true, nil
	}

	eq := equalByte
	if opts.Fold {
		eq = equalFoldByte
	}
	if bytes.IndexByte(pattern, single) < 0 && bytes.IndexByte(pattern, multi) < 0 {
		if len(s) != len(pattern) {
			return false, nil
		}
		for i := range s {
			if !eq(pattern[i], s[i]) {
				return false, nil
			}
		}
		return true, nil
	}

	return Search(s, pattern, single, multi, eq).Matched, nil
}
