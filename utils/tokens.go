package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateRecoverToken returns a 40-char hex string used as a single-use
// password-recovery token.
func GenerateRecoverToken() string {
	b := make([]byte, 20)
	rand.Read(b)
	return hex.EncodeToString(b)
}
