package worker

import (
	"context"
	"errors"
	"testing"

	"fintrack/internal/amqp"
	"fintrack/internal/core"
	"fintrack/internal/store"
	"fintrack/internal/store/memory"
)

type fakeAppender struct {
	uids    []string
	entries []core.Entry
	err     error
}

func (f *fakeAppender) AppendEntry(_ context.Context, uid string, e core.Entry) error {
	if f.err != nil {
		return f.err
	}
	f.uids = append(f.uids, uid)
	f.entries = append(f.entries, e)
	return nil
}

func storedEntry(t *testing.T, st *memory.Store, uid string) string {
	t.Helper()
	doc := store.Document{
		"t": "cashout", "title": "Groceries", "amount": "8000",
		"description": "weekly shop", "category": "Food", "payment_mode": "Card",
		"date": "2024-03-15", "time": "09:30:45", "marked": "false",
	}
	key, err := st.Push(context.Background(), store.LogsPath(uid), doc)
	if err != nil {
		t.Fatalf("Push: %v", err)
	}
	return key
}

func TestHandleEntryCreated(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	key := storedEntry(t, st, "u1")
	sheet := &fakeAppender{}
	w := NewMirrorWorker(st, sheet)

	if err := w.HandleEntryCreated(ctx, amqp.NewEntryCreatedMessage("u1", key)); err != nil {
		t.Fatalf("HandleEntryCreated: %v", err)
	}
	if len(sheet.entries) != 1 {
		t.Fatalf("appended %d rows, want 1", len(sheet.entries))
	}
	if sheet.uids[0] != "u1" || sheet.entries[0].Title != "Groceries" || sheet.entries[0].Key != key {
		t.Errorf("appended (%v, %+v)", sheet.uids, sheet.entries[0])
	}
}

// A message for a deleted entry is dropped, not requeued forever.
func TestHandleEntryCreatedMissingEntry(t *testing.T) {
	w := NewMirrorWorker(memory.New(), &fakeAppender{})
	if err := w.HandleEntryCreated(context.Background(), amqp.NewEntryCreatedMessage("u1", "-gone")); err != nil {
		t.Errorf("HandleEntryCreated = %v, want nil for missing entry", err)
	}
}

func TestHandleEntryCreatedAppendFailure(t *testing.T) {
	st := memory.New()
	key := storedEntry(t, st, "u1")
	w := NewMirrorWorker(st, &fakeAppender{err: errors.New("quota exceeded")})

	if err := w.HandleEntryCreated(context.Background(), amqp.NewEntryCreatedMessage("u1", key)); err == nil {
		t.Error("expected error so the message is requeued")
	}
}
