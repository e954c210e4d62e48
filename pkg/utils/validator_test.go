package utils

import (
	"errors"
	"testing"
)

func TestAcceptableCharacters(t *testing.T) {
	testCases := []struct {
		name      string
		candidate string
		alphabet  string
		want      bool
	}{
		{"ascii lowercase", "hello", "abcdefghijklmnopqrstuvwxyz", true},
		{"ascii uppercase", "HELLO", "ABCDEFGHIJKLMNOPQRSTUVWXYZ", true},
		{"numeric", "12345", "0123456789", true},
		{"alphanumeric", "abc123", "abcdefghijklmnopqrstuvwxyz0123456789", true},
		{"special chars", "@!#", "@!#$%^&*", true},
		{"empty candidate", "", "abcdefghijklmnopqrstuvwxyz", false},
		{"empty candidate and alphabet", "", "", false},
		{"exact alphabet", "abc", "abc", true},
		{"single char", "a", "a", true},
		{"repeated chars", "aaabbb", "ab", true},
		{"none acceptable", "abc", "def", false},
		{"empty alphabet", "a", "", false},
		{"space in alphabet", " ", " ", true},
		{"space not in alphabet", "a b", "abc", false},
		{"case sensitive", "mcmxc", "IVXLCDM", false},
		{"roman upper", "MCMXC", "IVXLCDM", true},
		{"multibyte", "ⅩⅨ", "ⅠⅤⅩⅨ", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := AcceptableCharacters(tc.candidate, tc.alphabet); got != tc.want {
				t.Errorf("AcceptableCharacters(%q, %q) = %v, want %v", tc.candidate, tc.alphabet, got, tc.want)
			}
		})
	}
}

func TestAcceptableCharacters_Idempotent(t *testing.T) {
	first := AcceptableCharacters("MMXX", "IVXLCDM")
	second := AcceptableCharacters("MMXX", "IVXLCDM")
	if first != second || !first {
		t.Fatalf("expected two true results, got %v and %v", first, second)
	}
}

func TestCheckCharacters(t *testing.T) {
	ok, err := CheckCharacters("mcmxi", "ivxlcdm")
	if err != nil {
		t.Fatalf("CheckCharacters error: %v", err)
	}
	if !ok {
		t.Fatalf("expected mcmxi to be acceptable")
	}

	ok, err = CheckCharacters("mcmxa", "IVXLCDM")
	if err != nil {
		t.Fatalf("CheckCharacters error: %v", err)
	}
	if ok {
		t.Fatalf("expected mcmxa to be rejected")
	}
}

func TestCheckCharacters_TypeMismatch(t *testing.T) {
	testCases := []struct {
		name      string
		candidate any
		alphabet  any
	}{
		{"candidate not string", 123, "abc"},
		{"alphabet not string", "abc", 123},
		{"candidate nil", nil, "abc"},
		{"candidate bytes", []byte("abc"), "abc"},
		{"alphabet rune slice", "abc", []rune("abc")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := CheckCharacters(tc.candidate, tc.alphabet)
			if !errors.Is(err, ErrTypeMismatch) {
				t.Fatalf("expected ErrTypeMismatch, got %v", err)
			}
			if ok {
				t.Errorf("expected false result alongside error")
			}
		})
	}
}
