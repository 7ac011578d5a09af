package fight

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/binary"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// newFightID returns a UUIDv7: 48-bit millisecond timestamp plus random bits
func newFightID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrContextFailedToGenerateID, err)
	}
	return id.String(), nil
}

// newSecureID returns (unix_ms << 16) | rand16 in decimal.
// Only 16 bits are random, so the token is guessable by anyone who knows the creation time.
func newSecureID(now time.Time) (string, error) {
	var b [2]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", fmt.Errorf("%s: %w", ErrContextFailedToGenerateID, err)
	}
	v := uint64(now.UnixMilli())<<16 | uint64(binary.BigEndian.Uint16(b[:]))
	return strconv.FormatUint(v, 10), nil
}

func secureIDMatches(stored, presented string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(presented)) == 1
}
