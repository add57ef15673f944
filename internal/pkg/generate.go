package pkg

import (
	"crypto/rand"
	"fmt"

	"github.com/google/uuid"
)

const (
	roomCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	roomCodeLength   = 6
)

// GenerateRoomCode returns a 6-character uppercase alphanumeric room
// code. Codes carry no game content; uniqueness among live rooms is
// enforced by the caller retrying on collision.
func GenerateRoomCode() (string, error) {
	buf := make([]byte, roomCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	for i, b := range buf {
		buf[i] = roomCodeAlphabet[int(b)%len(roomCodeAlphabet)]
	}

	return string(buf), nil
}

// GenerateNewSessionID returns an opaque participant identifier.
func GenerateNewSessionID() string {
	return uuid.NewString()
}
