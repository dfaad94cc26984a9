package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// Key derives a fixed-size cache key from its parts. Parts are separated
// by a NUL byte so ("ab", "c") and ("a", "bc") differ.
func Key(parts ...string) string {
	h := sha256.New()
	for i, p := range parts {
		if i > 0 {
			h.Write([]byte{0})
		}
		h.Write([]byte(p))
	}
	return hex.EncodeToString(h.Sum(nil))
}
