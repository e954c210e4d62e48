package roman

import (
	"fmt"
	"strings"
)

// digits holds one/five pairs per decimal place, units first.
const digits = "ivxlcdm"

// Encode returns the canonical uppercase numeral for value, which must be in [MinValue, MaxValue].
func Encode(value int) (string, error) {
	if value < MinValue {
		return "", fmt.Errorf("%w: %d is less than %d", ErrValueTooSmall, value, MinValue)
	}
	if value > MaxValue {
		return "", fmt.Errorf("%w: %d is greater than %d", ErrValueTooLarge, value, MaxValue)
	}

	// Segments are written least significant place first, reversed at the end.
	var b strings.Builder
	n := value
	for base := 0; base < len(digits) && n > 0; base += 2 {
		digit := n % 10
		n /= 10
		five, rem := digit/5, digit%5
		if rem == 4 {
			b.WriteByte(digits[base+1+five])
			b.WriteByte(digits[base])
			continue
		}
		b.WriteString(strings.Repeat(digits[base:base+1], rem))
		if five == 1 {
			b.WriteByte(digits[base+1])
		}
	}

	return strings.ToUpper(reverse(b.String())), nil
}

func reverse(s string) string {
	out := []byte(s)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}
