// Package id generates expense identifiers.
//
// IDs are random UUIDv4 strings. Nothing parses or orders them; the only
// requirement is that a collision across the live collection is negligible,
// which 122 random bits gives us.
package id

import "github.com/google/uuid"

// New returns a fresh expense ID.
func New() string {
	return uuid.NewString()
}

// Valid reports whether s has the shape of an expense ID.
func Valid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
