package memory

import (
	"context"
	"testing"

	"fintrack/internal/store"
)

func TestPushAndList(t *testing.T) {
	ctx := context.Background()
	s := New()

	k1, err := s.Push(ctx, "u1/logs", store.Document{"title": "a"})
	if err != nil {
		t.Fatalf("Push: %v", err)
	}
	k2, err := s.Push(ctx, "u1/logs", store.Document{"title": "b"})
	if err != nil {
		t.Fatalf("Push: %v", err)
	}
	if k1 == k2 {
		t.Fatalf("Push returned duplicate key %q", k1)
	}

	docs, err := s.List(ctx, "u1/logs")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("List returned %d docs, want 2", len(docs))
	}
	if docs[k1]["title"] != "a" || docs[k2]["title"] != "b" {
		t.Errorf("List contents = %v", docs)
	}
}

func TestListAbsentSubtree(t *testing.T) {
	s := New()
	docs, err := s.List(context.Background(), "nobody/logs")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if docs != nil {
		t.Errorf("List on absent subtree = %v, want nil", docs)
	}
}

func TestListSkipsNestedPaths(t *testing.T) {
	ctx := context.Background()
	s := New()
	if err := s.Set(ctx, "u1/logs/k1", store.Document{"title": "a"}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set(ctx, "u1/logs/k1/nested", store.Document{"x": "y"}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	docs, err := s.List(ctx, "u1/logs")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(docs) != 1 {
		t.Errorf("List returned %d docs, want 1 (direct children only)", len(docs))
	}
}

func TestGetAbsent(t *testing.T) {
	s := New()
	doc, err := s.Get(context.Background(), "u1/logs/missing")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if doc != nil {
		t.Errorf("Get absent = %v, want nil", doc)
	}
}

func TestSetEmptyDeletes(t *testing.T) {
	ctx := context.Background()
	s := New()
	if err := s.Set(ctx, "u1/goals/g1", store.Document{"goalName": "Bike"}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if err := s.Set(ctx, "u1/goals/g1", store.Document{}); err != nil {
		t.Fatalf("Set empty: %v", err)
	}
	doc, err := s.Get(ctx, "u1/goals/g1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if doc != nil {
		t.Errorf("document survived delete: %v", doc)
	}

	// Deleting an absent document is not an error.
	if err := s.Set(ctx, "u1/goals/g1", store.Document{}); err != nil {
		t.Errorf("Set empty on absent: %v", err)
	}
}

func TestUpdateMerges(t *testing.T) {
	ctx := context.Background()
	s := New()
	if err := s.Set(ctx, "u1/logs/k1", store.Document{"title": "a", "marked": "false"}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if err := s.Update(ctx, "u1/logs/k1", store.Document{"marked": "true"}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	doc, err := s.Get(ctx, "u1/logs/k1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if doc["marked"] != "true" || doc["title"] != "a" {
		t.Errorf("merged doc = %v", doc)
	}
}

func TestReadIsolation(t *testing.T) {
	ctx := context.Background()
	s := New()
	if err := s.Set(ctx, "u1/logs/k1", store.Document{"title": "a"}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	doc, _ := s.Get(ctx, "u1/logs/k1")
	doc["title"] = "mutated"

	again, _ := s.Get(ctx, "u1/logs/k1")
	if again["title"] != "a" {
		t.Error("mutating a read result leaked into the store")
	}
}
