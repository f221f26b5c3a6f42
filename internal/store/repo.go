package store

import (
	"context"
	"errors"
)

// Keys of the two persisted documents.
const (
	KeyHistory  = "mathPracticeHistory"
	KeyNotebook = "mathPracticeWrongQuestions"
)

// ErrNotFound is returned by Get when no document is stored under a key.
var ErrNotFound = errors.New("record not found")

// Repo stores JSON documents under string keys. Writes to the same key are
// last-write-wins.
type Repo interface {
	// Get returns the document stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put replaces the document stored under key.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes the document under key. Deleting a missing key is
	// not an error.
	Delete(ctx context.Context, key string) error
}
