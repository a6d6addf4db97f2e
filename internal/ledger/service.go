// Package ledger orchestrates the core engine over the document store: it
// validates and normalizes incoming records, persists them, and derives the
// sorted, filtered and aggregated views the API serves.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fintrack/internal/core"
	"fintrack/internal/store"
)

// ErrEntryNotFound reports an operation on an entry key with no stored
// document behind it.
var ErrEntryNotFound = errors.New("entry not found")

// Publisher emits entry lifecycle events for downstream consumers. A nil
// publisher disables events.
type Publisher interface {
	PublishEntryCreated(ctx context.Context, uid, key string) error
}

// Service is the ledger engine wired to its collaborators. Reads fetch the
// whole user subtree and derive client side; the store has no query
// language. Read results follow the (value, found, error) convention: found
// is false for the absent/empty conditions the API reports as not-found.
type Service struct {
	store     store.Store
	publisher Publisher
	now       func() time.Time
}

func New(st store.Store, pub Publisher) *Service {
	return &Service{store: st, publisher: pub, now: time.Now}
}

// CreateEntry validates and normalizes a submitted entry, stamps it with
// the current instant and pushes it under the user's log collection.
// Validation and format errors surface before any store mutation. The
// entry-created event is best effort: a broker failure is logged but never
// fails the request once the entry is stored.
func (s *Service) CreateEntry(ctx context.Context, uid, currency string, in core.EntryInput) (string, error) {
	entry, err := core.NewEntry(in, currency, s.now())
	if err != nil {
		return "", err
	}

	key, err := s.store.Push(ctx, store.LogsPath(uid), entry.Document())
	if err != nil {
		return "", fmt.Errorf("push entry: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishEntryCreated(ctx, uid, key); err != nil {
			slog.ErrorContext(ctx, "Failed to publish entry-created event",
				"uid", uid, "key", key, "error", err)
		}
	}

	slog.InfoContext(ctx, "Entry recorded",
		"uid", uid, "key", key, "type", entry.Type, "amount", entry.Amount)
	return key, nil
}

// Logs returns the user's history, most recent first, with store keys
// attached. found is false when the user has no log collection.
func (s *Service) Logs(ctx context.Context, uid string) ([]core.Entry, bool, error) {
	entries, err := s.fetchEntries(ctx, uid)
	if err != nil {
		return nil, false, err
	}
	if entries == nil {
		return nil, false, nil
	}
	sorted, err := core.SortByTimestamp(entries)
	if err != nil {
		return nil, false, err
	}
	return sorted, true, nil
}

// FilteredLogs restricts the sorted history to entries whose field matches
// value. A query naming an unknown field behaves like an empty match set,
// which is what this API has always returned for it.
func (s *Service) FilteredLogs(ctx context.Context, uid, field, value string) ([]core.Entry, bool, error) {
	sorted, found, err := s.Logs(ctx, uid)
	if err != nil || !found {
		return nil, false, err
	}
	f, ok := core.ParseFilterField(field)
	if !ok {
		return nil, false, nil
	}
	matched := core.Filter(sorted, f, value)
	if len(matched) == 0 {
		return nil, false, nil
	}
	return matched, true, nil
}

// AccountData aggregates the user's history into balance totals. found is
// false when there is no data to aggregate.
func (s *Service) AccountData(ctx context.Context, uid string) (core.Balance, bool, error) {
	entries, err := s.fetchEntries(ctx, uid)
	if err != nil {
		return core.Balance{}, false, err
	}
	balance, ok := core.Aggregate(entries)
	return balance, ok, nil
}

// ToggleBookmark flips the marked flag on one entry. The stored value is
// inspected raw: "true" and "false" flip, anything else leaves the document
// untouched. The read and the update are separate store calls, so two
// concurrent toggles on the same entry can race; the store contract accepts
// that.
func (s *Service) ToggleBookmark(ctx context.Context, uid, key string) error {
	p := store.EntryPath(uid, key)
	doc, err := s.store.Get(ctx, p)
	if err != nil {
		return fmt.Errorf("get entry: %w", err)
	}
	if doc == nil {
		return ErrEntryNotFound
	}

	switch doc["marked"] {
	case core.MarkedFalse:
		err = s.store.Update(ctx, p, store.Document{"marked": core.MarkedTrue})
	case core.MarkedTrue:
		err = s.store.Update(ctx, p, store.Document{"marked": core.MarkedFalse})
	default:
		return nil
	}
	if err != nil {
		return fmt.Errorf("update marked flag: %w", err)
	}
	return nil
}

func (s *Service) fetchEntries(ctx context.Context, uid string) ([]core.Entry, error) {
	docs, err := s.store.List(ctx, store.LogsPath(uid))
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}
	if len(docs) == 0 {
		return nil, nil
	}
	entries := make([]core.Entry, 0, len(docs))
	for key, doc := range docs {
		e, err := core.EntryFromDocument(key, doc)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}
