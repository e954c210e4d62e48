package roman

import (
	"fmt"
	"strings"

	"github.com/fahmitech/roman/pkg/utils"
)

type symbol struct {
	text  string
	value int
}

// symbols is ordered from the largest value to the smallest.
var symbols = []symbol{
	{"M", 1000},
	{"CM", 900},
	{"D", 500},
	{"CD", 400},
	{"C", 100},
	{"XC", 90},
	{"L", 50},
	{"XL", 40},
	{"X", 10},
	{"IX", 9},
	{"V", 5},
	{"IV", 4},
	{"I", 1},
}

// malformed lists substrings that are rejected outright. It is not a full grammar:
// "XXXX" or "IXI" get past it and are decoded greedily. Use DecodeStrict for that.
var malformed = []string{"IIII", "VV", "LL", "DD", "IC", "IM", "XM", "VL"}

func normalize(text string) string {
	return strings.ToUpper(text)
}

// Decode parses a Roman numeral, case-insensitively.
//
// Validation is limited to the alphabet and a fixed list of malformed substrings,
// so some non-canonical numerals are accepted and summed greedily.
func Decode(text string) (int, error) {
	upper := normalize(text)
	if err := validate(upper); err != nil {
		return 0, err
	}
	return sum(upper), nil
}

// DecodeStrict is Decode restricted to canonical numerals (see IsCanonical).
func DecodeStrict(text string) (int, error) {
	upper := normalize(text)
	if err := validate(upper); err != nil {
		return 0, err
	}
	if !canonicalRegex.MatchString(upper) {
		return 0, fmt.Errorf("%w: %q is not in canonical form", ErrInvalidNumeral, text)
	}
	return sum(upper), nil
}

func validate(upper string) error {
	if !utils.AcceptableCharacters(upper, Alphabet) {
		return fmt.Errorf("%w: %q must be non-empty and use only %s", ErrInvalidNumeral, upper, Alphabet)
	}
	for _, bad := range malformed {
		if strings.Contains(upper, bad) {
			return fmt.Errorf("%w: %q contains %q", ErrInvalidNumeral, upper, bad)
		}
	}
	return nil
}

func sum(upper string) int {
	total := 0
	rest := upper
	for _, s := range symbols {
		for strings.HasPrefix(rest, s.text) {
			total += s.value
			rest = rest[len(s.text):]
		}
	}
	return total
}
