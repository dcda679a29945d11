package cdkeygen

import (
	"fmt"
	"strings"
	"unicode"
)

// ambiguousChars are stripped when AvoidAmbiguous is set: zero vs uppercase
// O, one vs uppercase I vs uppercase L.
const ambiguousChars = "0O1IL"

// BuildAlphabet normalizes a sampling alphabet. custom is used as the base
// when non-empty; otherwise the built-in default matching avoidAmbiguous is
// chosen. Characters are deduplicated preserving first occurrence, whitespace
// is dropped, and when avoidAmbiguous is set each of 0 O 1 I L is removed no
// matter where the base came from.
//
// Returns ErrInvalidAlphabet when fewer than two distinct characters remain.
func BuildAlphabet(custom string, avoidAmbiguous bool) (string, error) {
	base := custom
	if base == "" {
		if avoidAmbiguous {
			base = DefaultAlphabet
		} else {
			base = FullAlphabet
		}
	}

	seen := make(map[rune]struct{}, len(base))
	out := make([]rune, 0, len(base))
	for _, r := range base {
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		if unicode.IsSpace(r) {
			continue
		}
		if avoidAmbiguous && strings.ContainsRune(ambiguousChars, r) {
			continue
		}
		out = append(out, r)
	}

	if len(out) < 2 {
		return "", fmt.Errorf("%w: %d usable characters after normalization", ErrInvalidAlphabet, len(out))
	}
	return string(out), nil
}
