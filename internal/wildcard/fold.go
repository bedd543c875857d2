/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

package wildcard

import "unicode"

func equalRune(r1, r2 rune) bool { return r1 == r2 }

func equalByte(b1, b2 byte) bool { return b1 == b2 }

// equalFoldRune performs case-insensitive rune comparison using Unicode simple folding.
// This is more efficient than converting to lowercase and comparing.
func equalFoldRune(r1, r2 rune) bool {
	if r1 == r2 {
		return true
	}
	if r1 < r2 {
		r1, r2 = r2, r1
	}
	// SimpleFold cycles through case variants
	for f := unicode.SimpleFold(r2); f != r2; f = unicode.SimpleFold(f) {
		if f == r1 {
			return true
		}
	}
	return false
}

// equalFoldByte folds ASCII letters only; other bytes must be equal.
func equalFoldByte(b1, b2 byte) bool {
	if b1 == b2 {
		return true
	}
	if 'A' <= b1 && b1 <= 'Z' {
		b1 += 'a' - 'A'
	}
	if 'A' <= b2 && b2 <= 'Z' {
		b2 += 'a' - 'A'
	}
	return b1 == b2
}
