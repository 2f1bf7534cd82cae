package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashString creates a SHA-256 hash of the input string
func HashString(input string) string {
	h := sha256.New()
	h.Write([]byte(input))

	return hex.EncodeToString(h.Sum(nil))
}

// RedactEmail returns a short stable token for an email address so log lines
// can be correlated without carrying the address itself.
func RedactEmail(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return ""
	}
	return HashString(normalized)[:12]
}
