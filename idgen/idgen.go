// Package idgen provides the identifier-generation capability injected into
// the generators. Callers that need deterministic output (tests, content
// hashing) supply their own Generator; the default is crypto/rand-backed
// UUIDv4 via github.com/google/uuid, with no weaker fallback path.
package idgen

import "github.com/google/uuid"

// Generator produces globally unique record identifiers.
type Generator interface {
	NewID() string
}

// UUID is the default Generator, emitting random (version 4) UUIDs.
type UUID struct{}

// NewID returns a new random UUID string, e.g.
// "f47ac10b-58cc-4372-a567-0e02b2c3d479".
func (UUID) NewID() string {
	return uuid.NewString()
}

// URN wraps an identifier in the urn:uuid: form used for UID properties.
func URN(id string) string {
	return "urn:uuid:" + id
}

// Func adapts a plain function to the Generator interface.
type Func func() string

func (f Func) NewID() string { return f() }
