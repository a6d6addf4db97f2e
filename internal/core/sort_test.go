package core

import (
	"testing"
)

func entryAt(title, date, tm string) Entry {
	return Entry{Title: title, Date: date, Time: tm}
}

func TestSortByTimestamp(t *testing.T) {
	entries := []Entry{
		entryAt("oldest", "2024-01-01", "08:00:00"),
		entryAt("newest", "2024-03-01", "12:00:00"),
		entryAt("middle", "2024-02-01", "10:30:00"),
		entryAt("same day later", "2024-01-01", "20:15:00"),
	}

	sorted, err := SortByTimestamp(entries)
	if err != nil {
		t.Fatalf("SortByTimestamp: %v", err)
	}

	want := []string{"newest", "middle", "same day later", "oldest"}
	for i, title := range want {
		if sorted[i].Title != title {
			t.Errorf("sorted[%d] = %q, want %q", i, sorted[i].Title, title)
		}
	}

	// Input must stay untouched.
	if entries[0].Title != "oldest" {
		t.Error("input slice was mutated")
	}
}

func TestSortByTimestampMalformed(t *testing.T) {
	entries := []Entry{
		entryAt("good", "2024-01-01", "08:00:00"),
		entryAt("bad", "01/02/2024", "08:00:00"),
	}
	if _, err := SortByTimestamp(entries); err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestSortByTimestampEmpty(t *testing.T) {
	sorted, err := SortByTimestamp(nil)
	if err != nil {
		t.Fatalf("SortByTimestamp(nil): %v", err)
	}
	if len(sorted) != 0 {
		t.Errorf("len = %d, want 0", len(sorted))
	}
}
