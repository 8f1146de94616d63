package hash

import (
	"crypto/sha256"
	"encoding/hex"
	stdhash "hash"

	"media-vault/internal/core/port"
)

type sha256Hasher struct{}

// NewSHA256 returns the SHA-256 content hasher. The hex form matches the
// checksum convention used on the wire (X-Chunk-Checksum-Sha256).
func NewSHA256() port.ContentHasher {
	return sha256Hasher{}
}

func (sha256Hasher) Sum(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

func (sha256Hasher) New() stdhash.Hash {
	return sha256.New()
}

func (sha256Hasher) Encode(sum []byte) string {
	return hex.EncodeToString(sum)
}
