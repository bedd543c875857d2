/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

// This file provides the reference matcher. It translates a pattern into a
// backtracking regular expression and is kept simple on purpose: it serves as
// an oracle for Search in tests and can be exponentially slow on patterns
// with many multi wildcards.

package wildcard

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

// Translate returns the regular expression equivalent to pattern under opts.
// The multi wildcard becomes `.*`, the single wildcard `.`, and every other
// rune is escaped. The expression is anchored with \A and \z.
func Translate(pattern string, opts Options) (string, error) {
	opts, err := opts.normalize()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(pattern)*2 + 4)
	b.WriteString(`\A`)
	for _, r := range pattern {
		switch r {
		case opts.Multi:
			b.WriteString(".*")
		case opts.Single:
			b.WriteByte('.')
		default:
			b.WriteString(regexp2.Escape(string(r)))
		}
	}
	b.WriteString(`\z`)
	return b.String(), nil
}

// regexOptions maps opts to regexp2 flags. Singleline lets `.` match newlines
// so the wildcards cover every rune, as they do in Search.
func regexOptions(opts Options) regexp2.RegexOptions {
	flags := regexp2.RegexOptions(regexp2.Singleline)
	if opts.Fold {
		flags |= regexp2.IgnoreCase
	}
	return flags
}

// MatchRegex reports whether s matches pattern using the regular expression
// produced by Translate. opts.RegexTimeout, when set, bounds the match and
// surfaces as an error.
func MatchRegex(s, pattern string, opts Options) (bool, error) {
	expr, err := Translate(pattern, opts)
	if err != nil {
		return false, err
	}

	re, err := regexp2.Compile(expr, regexOptions(opts))
	if err != nil {
		return false, fmt.Errorf("compile pattern %q: %w", pattern, err)
	}
	if opts.RegexTimeout > 0 {
		re.MatchTimeout = opts.RegexTimeout
	}

	matched, err := re.MatchString(s)
	if err != nil {
		return false, fmt.Errorf("match pattern %q: %w", pattern, err)
	}
	return matched, nil
}
