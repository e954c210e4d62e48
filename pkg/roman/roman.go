// Package roman converts between integers and Roman numerals.
package roman

import (
	"errors"
	"regexp"
)

const (
	MinValue = 1
	MaxValue = 3999

	// Alphabet is the set of symbols a numeral may contain, uppercase.
	Alphabet = "IVXLCDM"
)

var (
	ErrInvalidNumeral = errors.New("invalid Roman numeral")
	ErrValueTooSmall  = errors.New("number too small for Roman numeral encoding")
	ErrValueTooLarge  = errors.New("number too large for Roman numeral encoding")
)

// canonicalRegex matches the numerals Encode produces for 1..3999 (and the empty string).
var canonicalRegex = regexp.MustCompile(`^M{0,3}(CM|CD|D?C{0,3})(XC|XL|L?X{0,3})(IX|IV|V?I{0,3})$`)

// IsCanonical reports whether text, ignoring case, is the form Encode would return for some value.
func IsCanonical(text string) bool {
	upper := normalize(text)
	return upper != "" && canonicalRegex.MatchString(upper)
}
