// Package worker mirrors stored ledger entries to a spreadsheet as
// entry-created messages arrive.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"fintrack/internal/amqp"
	"fintrack/internal/core"
	"fintrack/internal/sheets"
	"fintrack/internal/store"
)

type MirrorWorker struct {
	store store.Store
	sheet sheets.EntryAppender
}

func NewMirrorWorker(st store.Store, sheet sheets.EntryAppender) *MirrorWorker {
	return &MirrorWorker{store: st, sheet: sheet}
}

// HandleEntryCreated fetches the stored entry behind the message and
// appends it to the mirror sheet. Returning an error requeues the message;
// a message for an entry that no longer exists is dropped.
func (w *MirrorWorker) HandleEntryCreated(ctx context.Context, msg *amqp.EntryCreatedMessage) error {
	doc, err := w.store.Get(ctx, store.EntryPath(msg.UID, msg.Key))
	if err != nil {
		return fmt.Errorf("get entry from store: %w", err)
	}
	if doc == nil {
		slog.WarnContext(ctx, "Entry missing from store, dropping mirror message",
			"uid", msg.UID, "key", msg.Key)
		return nil
	}

	entry, err := core.EntryFromDocument(msg.Key, doc)
	if err != nil {
		return fmt.Errorf("decode entry: %w", err)
	}

	if err := w.sheet.AppendEntry(ctx, msg.UID, entry); err != nil {
		return fmt.Errorf("append entry to sheet: %w", err)
	}

	slog.InfoContext(ctx, "Entry mirrored", "uid", msg.UID, "key", msg.Key)
	return nil
}
