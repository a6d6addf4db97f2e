package core

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestGoalValidate(t *testing.T) {
	tests := []struct {
		name    string
		goal    Goal
		wantErr error
	}{
		{"valid", Goal{Name: "Bike", Amount: "5000"}, nil},
		{"empty name", Goal{Amount: "5000"}, ErrEmptyGoalName},
		{"empty amount", Goal{Name: "Bike"}, ErrEmptyGoalAmount},
		{"both empty reports name first", Goal{}, ErrEmptyGoalName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.goal.Validate()
			if !errors.Is(err, tt.wantErr) && err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGoalDocumentRoundTrip(t *testing.T) {
	g := Goal{
		Name:   "Vacation",
		Amount: "20000",
		Extra:  map[string]string{"deadline": "2025-06-01"},
	}

	got := GoalFromDocument("-g1", g.Document())
	if got.Name != g.Name || got.Amount != g.Amount {
		t.Errorf("round trip mismatch: got %+v", got)
	}
	if got.Key != "-g1" {
		t.Errorf("Key = %q, want -g1", got.Key)
	}
	if got.Extra["deadline"] != "2025-06-01" {
		t.Errorf("Extra = %v, want deadline preserved", got.Extra)
	}
}

func TestGoalMarshalJSON(t *testing.T) {
	g := Goal{
		Name:   "Vacation",
		Amount: "20000",
		Extra:  map[string]string{"deadline": "2025-06-01"},
		Key:    "-g1",
	}

	data, err := json.Marshal(g)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var obj map[string]string
	if err := json.Unmarshal(data, &obj); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if obj["goalName"] != "Vacation" || obj["goalAmount"] != "20000" {
		t.Errorf("flattened object = %v", obj)
	}
	if obj["key"] != "-g1" {
		t.Errorf("key = %q, want -g1", obj["key"])
	}
	if obj["deadline"] != "2025-06-01" {
		t.Errorf("deadline = %q, want 2025-06-01", obj["deadline"])
	}
}
