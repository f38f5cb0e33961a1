package processor

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

const tokenBytes = 32

// SecureTokenGenerator draws redemption tokens from crypto/rand
type SecureTokenGenerator struct{}

// Generate returns 32 random bytes encoded as unpadded URL-safe base64
func (SecureTokenGenerator) Generate() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
