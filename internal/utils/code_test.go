package utils

import (
	"strings"
	"testing"
)

func TestNewConfirmationCode(t *testing.T) {
	t.Run("Given a generated code When inspected Then it matches the documented format", func(t *testing.T) {
		// When
		code, err := NewConfirmationCode()

		// Then
		if err != nil {
			t.Fatalf("NewConfirmationCode failed: %v", err)
		}
		if len(code) != 14 {
			t.Fatalf("expected 14 characters, got %d (%q)", len(code), code)
		}
		if !strings.HasPrefix(code, "LB") {
			t.Errorf("expected LB prefix, got %q", code)
		}
		for _, r := range code[2:10] {
			if r < '0' || r > '9' {
				t.Errorf("expected digits in timestamp section, got %q", code)
				break
			}
		}
		for _, r := range code[10:] {
			if !strings.ContainsRune(codeAlphabet, r) {
				t.Errorf("unexpected suffix character in %q", code)
				break
			}
		}
	})

	t.Run("Given many generated codes When compared Then they are overwhelmingly distinct", func(t *testing.T) {
		// When
		seen := map[string]bool{}
		dupes := 0
		for i := 0; i < 200; i++ {
			code, err := NewConfirmationCode()
			if err != nil {
				t.Fatalf("NewConfirmationCode failed: %v", err)
			}
			if seen[code] {
				dupes++
			}
			seen[code] = true
		}

		// Then
		// The timestamp section barely moves inside a tight loop, so the
		// four random characters carry the distinctness. A couple of
		// collisions in 200 draws would already be far outside expectation.
		if dupes > 2 {
			t.Errorf("got %d duplicate codes out of 200", dupes)
		}
	})
}
