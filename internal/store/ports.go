// Package store defines the outbound port to the keyed document store the
// ledger persists to.
package store

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path"
	"time"
)

// Document is a flat record as held by the store. All values are strings on
// the wire.
type Document = map[string]string

// Store is a keyed, hierarchical document store. There is no query
// language: readers fetch whole subtrees and filter client side. Setting an
// empty document is the store's delete convention. Individual operations
// are atomic; sequences of them are not.
type Store interface {
	// Push inserts doc under a generated key and returns the key.
	Push(ctx context.Context, p string, doc Document) (string, error)
	// List reads every child document under p. A nil map means the subtree
	// does not exist.
	List(ctx context.Context, p string) (map[string]Document, error)
	// Get reads the single document at p, nil when absent.
	Get(ctx context.Context, p string) (Document, error)
	// Set overwrites the document at p. An empty doc removes it.
	Set(ctx context.Context, p string, doc Document) error
	// Update merges fields into the document at p.
	Update(ctx context.Context, p string, fields Document) error
}

// Persisted layout: {uid}/logs/{key} and {uid}/goals/{key}.

func LogsPath(uid string) string { return path.Join(uid, "logs") }

func EntryPath(uid, key string) string { return path.Join(uid, "logs", key) }

func GoalsPath(uid string) string { return path.Join(uid, "goals") }

func GoalPath(uid, key string) string { return path.Join(uid, "goals", key) }

// NewKey generates a push key for inserted documents.
func NewKey() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("-%d", time.Now().UnixNano())
	}
	return "-" + hex.EncodeToString(b)
}
