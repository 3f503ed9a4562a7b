package service

import (
	"strings"
	"testing"
)

func TestGenerateShortCode_LengthAndAlphabet(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := generateShortCode()
		if err != nil {
			t.Fatalf("generateShortCode failed: %v", err)
		}
		if len(code) != codeLength {
			t.Fatalf("expected length %d, got %q", codeLength, code)
		}
		for _, c := range code {
			if !strings.ContainsRune(base62Alphabet, c) {
				t.Fatalf("character %q outside base62 alphabet in %q", c, code)
			}
		}
	}
}

func TestGenerateShortCode_NotConstant(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := generateShortCode()
		if err != nil {
			t.Fatalf("generateShortCode failed: %v", err)
		}
		seen[code] = true
	}
	if len(seen) < 2 {
		t.Fatalf("expected varied codes, got %d distinct", len(seen))
	}
}
