package view

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"

	"nncalc/internal/natural"
)

// Fingerprint returns a short hex fingerprint of a decimal value.
//
// It hashes with BLAKE2b-256 and truncates to 10 bytes (20 hex chars).
func Fingerprint(decimal string) string {
	sum := blake2b.Sum256([]byte(decimal))
	return hex.EncodeToString(sum[:10])
}

// Format renders n in decimal. When maxDigits > 0 and n is longer, the
// middle is elided and the digit count and fingerprint are appended.
func Format(n *natural.Natural, maxDigits int) string {
	s := n.String()
	if maxDigits <= 0 || len(s) <= maxDigits {
		return s
	}
	head := (maxDigits + 1) / 2
	tail := maxDigits - head
	return fmt.Sprintf("%s…%s (%d digits, %s)", s[:head], s[len(s)-tail:], len(s), Fingerprint(s))
}
