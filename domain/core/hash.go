package core

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// LocatorKey is the content-addressed cache key for a dataset locator.
type LocatorKey Hash

// NewLocatorKey derives the cache key for a locator string.
func NewLocatorKey(locator string) LocatorKey {
	return LocatorKey(NewHash([]byte(locator)))
}

func (k LocatorKey) String() string { return Hash(k).String() }
