package utils

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTypeMismatch is returned when a validator argument is not a string.
var ErrTypeMismatch = errors.New("argument is not a string")

// AcceptableCharacters reports whether every character of candidate appears in alphabet.
// An empty candidate is never acceptable.
func AcceptableCharacters(candidate, alphabet string) bool {
	if candidate == "" {
		return false
	}
	for _, r := range candidate {
		if !strings.ContainsRune(alphabet, r) {
			return false
		}
	}
	return true
}

// CheckCharacters is AcceptableCharacters for untyped input (decoded YAML, flags).
// Non-string arguments are rejected, never coerced.
func CheckCharacters(candidate, alphabet any) (bool, error) {
	c, ok := candidate.(string)
	if !ok {
		return false, fmt.Errorf("candidate (%T): %w", candidate, ErrTypeMismatch)
	}
	a, ok := alphabet.(string)
	if !ok {
		return false, fmt.Errorf("alphabet (%T): %w", alphabet, ErrTypeMismatch)
	}
	return AcceptableCharacters(c, a), nil
}
