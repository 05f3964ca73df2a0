// Package guid produces the 16-character uppercase hexadecimal identifiers
// used for project GUIDs and dependency references. Identifiers come from a
// cryptographically secure random source; no uniqueness registry is kept, the
// collision probability across eight random bytes is accepted as negligible.
package guid

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
)

// Length is the exact identifier length in characters.
const Length = 16

const randomBytes = 8

var pattern = regexp.MustCompile(`^[0-9A-F]{16}$`)

// New returns a fresh identifier: eight random bytes, hex-encoded uppercase.
func New() (string, error) {
	buf := make([]byte, randomBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("guid: read random source: %w", err)
	}
	return strings.ToUpper(hex.EncodeToString(buf)), nil
}

// Valid reports whether s is a well-formed identifier. Producers use this to
// reject malformed caller-supplied dependency references before they reach a
// serialized document.
func Valid(s string) bool {
	return pattern.MatchString(s)
}
