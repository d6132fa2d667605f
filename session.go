package dockerutil

import (
	"crypto/sha256"
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"
)

// sessionAlphabet is the 62-character alphanumeric set session IDs draw from.
const sessionAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateSessionID returns a random alphanumeric string of the given length.
// The harness uses these IDs to tag transient containers and images. The
// generator is ChaCha8 seeded from a SHA-256 hash of a nanosecond timestamp.
// Returns an error if length is not a positive integer.
func GenerateSessionID(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("session ID length must be a positive integer, got %d", length)
	}

	seed := sha256.Sum256([]byte(strconv.FormatInt(time.Now().UnixNano(), 10)))
	gen := rand.New(rand.NewChaCha8(seed))

	id := make([]byte, length)
	for i := range id {
		id[i] = sessionAlphabet[gen.IntN(len(sessionAlphabet))]
	}
	return string(id), nil
}
