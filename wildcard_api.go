// Package statewild matches strings against glob-style patterns in time and
// space bounded by the product of the input and pattern lengths.
//
// Naive wildcard matchers backtrack and can take exponential time on patterns
// such as "*a*a*a*a*a*b" against a long run of 'a'. This package instead walks
// the (input position, pattern position) state space with an explicit stack
// and never revisits a state.
//
// # Supported Wildcards:
//
//   - `*`: Matches any sequence of characters (including zero characters).
//   - `?`: Matches exactly one character.
//
// Both characters can be changed per call through Options. There is no
// escaping: a wildcard character in the pattern is always a wildcard. Path
// separators are ordinary characters.
//
// Matching is case-sensitive unless Options.Fold is set. MatchRegex is a
// regular-expression oracle with the same contract, useful for validation but
// not for untrusted patterns.
package statewild

import (
	"github.com/twinfer/statewild/internal/wildcard"
)

// Options configures a match. The zero value means '?' and '*' with
// case-sensitive comparison.
type Options = wildcard.Options

// DefaultOptions is the conventional '?' and '*' configuration.
var DefaultOptions = wildcard.DefaultOptions

var (
	// ErrSameWildcard is returned when the single and multi wildcards are the same character.
	ErrSameWildcard = wildcard.ErrSameWildcard
	// ErrInvalidWildcard is returned when a wildcard is not a valid rune.
	ErrInvalidWildcard = wildcard.ErrInvalidWildcard
	// ErrWildcardNotByte is returned by the byte functions for a non-ASCII wildcard.
	ErrWildcardNotByte = wildcard.ErrWildcardNotByte
)

// Match returns true if the pattern matches the string s, using `?` and `*`.
// Characters are compared as runes, so `?` matches one Unicode code point.
func Match(s, pattern string) bool {
	matched, _ := wildcard.Match(s, pattern, DefaultOptions)
	return matched
}

// MatchFold is Match with case-insensitive comparison based on Unicode simple
// folding.
func MatchFold(s, pattern string) bool {
	matched, _ := wildcard.Match(s, pattern, Options{Fold: true})
	return matched
}

// MatchWith returns true if the pattern matches s under opts. It fails only
// when opts is invalid.
func MatchWith(s, pattern string, opts Options) (bool, error) {
	return wildcard.Match(s, pattern, opts)
}

// MatchBytes returns true if the pattern matches the byte slice s. It compares
// bytes rather than runes, so `?` matches a single byte. This avoids the
// rune conversion and suits ASCII input.
func MatchBytes(s, pattern []byte) bool {
	matched, _ := wildcard.MatchBytes(s, pattern, DefaultOptions)
	return matched
}

// MatchBytesWith is MatchBytes under opts. Wildcards must be ASCII and
// folding only covers ASCII letters.
func MatchBytesWith(s, pattern []byte, opts Options) (bool, error) {
	return wildcard.MatchBytes(s, pattern, opts)
}

// MatchRegex evaluates the pattern by translating it into an anchored
// regular expression. It agrees with MatchWith on valid UTF-8 input, except
// that with Fold the regular expression engine lowercases instead of using
// simple folding, which differs for a handful of runes such as 'ſ'. It may
// take exponential time; set opts.RegexTimeout to bound it.
func MatchRegex(s, pattern string, opts Options) (bool, error) {
	return wildcard.MatchRegex(s, pattern, opts)
}
