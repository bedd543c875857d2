/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

// Package wildcard contains the matching engines behind the statewild package.
// It is intended for internal use by the parent statewild package.
package wildcard

import (
	"errors"
	"time"
	"unicode/utf8"
)

const (
	// DefaultSingle matches exactly one character.
	DefaultSingle = '?'
	// DefaultMulti matches any sequence of characters, including none.
	DefaultMulti = '*'
)

var (
	// ErrSameWildcard indicates the single and multi wildcards are the same character.
	ErrSameWildcard = errors.New("single and multi wildcard must differ")

	// ErrInvalidWildcard indicates a wildcard that is not a valid Unicode code point.
	ErrInvalidWildcard = errors.New("wildcard is not a valid rune")

	// ErrWildcardNotByte indicates a non-ASCII wildcard was given to a byte matcher.
	ErrWildcardNotByte = errors.New("wildcard is not a single byte")
)

// Options configures a single match call. The zero value selects '?' and '*'
// with case-sensitive comparison.
type Options struct {
	// Single is the wildcard matching exactly one character. Zero means '?'.
	Single rune
	// Multi is the wildcard matching zero or more characters. Zero means '*'.
	Multi rune
	// Fold enables case-insensitive comparison using Unicode simple folding.
	// Wildcards are unaffected.
	Fold bool
	// RegexTimeout bounds a single reference match. Zero means no limit.
	// Only MatchRegex looks at it.
	RegexTimeout time.Duration
}

// DefaultOptions is the conventional glob configuration.
var DefaultOptions = Options{Single: DefaultSingle, Multi: DefaultMulti}

// normalize fills in the default wildcards and validates the result.
func (o Options) normalize() (Options, error) {
	if o.Single == 0 {
		o.Single = DefaultSingle
	}
	if o.Multi == 0 {
		o.Multi = DefaultMulti
	}
	if !utf8.ValidRune(o.Single) || !utf8.ValidRune(o.Multi) {
		return o, ErrInvalidWildcard
	}
	if o.Single == o.Multi {
		return o, ErrSameWildcard
	}
	return o, nil
}

// Validate reports whether o can be used for a match.
func (o Options) Validate() error {
	_, err := o.normalize()
	return err
}

// normalizeBytes is normalize plus the byte matcher's ASCII restriction.
func (o Options) normalizeBytes() (Options, error) {
	o, err := o.normalize()
	if err != nil {
		return o, err
	}
	if o.Single >= utf8.RuneSelf || o.Multi >= utf8.RuneSelf {
		return o, ErrWildcardNotByte
	}
	return o, nil
}
