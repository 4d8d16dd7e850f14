// Package storage provides the durable key-value store that survives
// process restarts.
package storage

import (
	"context"
	"encoding/hex"
	"errors"

	"golang.org/x/crypto/blake2b"
)

// Well-known keys.
const (
	KeyBoards = "boards"
	KeyTheme  = "theme"
)

// ErrCorrupt reports a stored value whose digest no longer matches its content.
var ErrCorrupt = errors.New("stored value is corrupt")

// Storage abstracts durable key-value backends.
type Storage interface {
	// Get returns the value for key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

var (
	_ Storage = (*SQLite)(nil)
	_ Storage = (*Memory)(nil)
)

// Digest returns the hex BLAKE2b-256 digest of value.
func Digest(value string) string {
	sum := blake2b.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}
