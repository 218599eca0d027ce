package util

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// HashID derives a stable instance key from an id path, so two pickers built
// from the same parts share persisted state and different parts never collide
// in practice.
func HashID(parts ...string) string {
	sum := blake2b.Sum256([]byte(strings.Join(parts, "\x1f")))
	return hex.EncodeToString(sum[:16])
}
