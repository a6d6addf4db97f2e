package amqp

import (
	"testing"
	"time"
)

func TestEntryCreatedMessageRoundTrip(t *testing.T) {
	msg := NewEntryCreatedMessage("u1", "-abc123")
	if msg.UID != "u1" || msg.Key != "-abc123" {
		t.Fatalf("message = %+v", msg)
	}
	if msg.Timestamp.IsZero() {
		t.Error("timestamp not set")
	}

	data, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}

	got, err := EntryCreatedMessageFromJSON(data)
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	if got.UID != msg.UID || got.Key != msg.Key {
		t.Errorf("round trip = %+v, want %+v", got, msg)
	}
	if !got.Timestamp.Round(time.Millisecond).Equal(msg.Timestamp.Round(time.Millisecond)) {
		t.Errorf("timestamp drifted: %v vs %v", got.Timestamp, msg.Timestamp)
	}
}

func TestEntryCreatedMessageFromJSONInvalid(t *testing.T) {
	if _, err := EntryCreatedMessageFromJSON([]byte("not json")); err == nil {
		t.Error("expected error for malformed payload")
	}
}
