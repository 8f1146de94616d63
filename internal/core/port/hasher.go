package port

import "hash"

// ContentHasher computes the content digest used for chunk integrity checks
// and whole-file deduplication.
type ContentHasher interface {
	// Sum returns the hex-encoded digest of b
	Sum(b []byte) string
	// New returns a fresh streaming hasher; Encode turns its final sum
	// into the same hex form Sum produces.
	New() hash.Hash
	Encode(sum []byte) string
}
