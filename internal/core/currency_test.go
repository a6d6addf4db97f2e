package core

import (
	"errors"
	"testing"
)

func TestRate(t *testing.T) {
	tests := []struct {
		currency string
		want     int64
	}{
		{"USD", 80},
		{"EUR", 90},
		{"GBP", 105},
		{"INR", 1},
		{"", 1},
		{"usd", 1},
	}

	for _, tt := range tests {
		t.Run(tt.currency, func(t *testing.T) {
			if got := Rate(tt.currency); got != tt.want {
				t.Errorf("Rate(%q) = %d, want %d", tt.currency, got, tt.want)
			}
		})
	}
}

func TestNormalizeAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		currency string
		want     string
		wantErr  bool
	}{
		{"usd conversion", "100", "USD", "8000", false},
		{"eur conversion", "10", "EUR", "900", false},
		{"gbp conversion", "2", "GBP", "210", false},
		{"identity currency", "500", "INR", "500", false},
		{"zero amount", "0", "USD", "0", false},
		{"trims whitespace", " 5 ", "USD", "400", false},
		{"negative amount", "-5", "USD", "", true},
		{"fractional amount", "12.5", "USD", "", true},
		{"non-numeric amount", "abc", "USD", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeAmount(tt.amount, tt.currency)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NormalizeAmount(%q, %q) expected error, got %s", tt.amount, tt.currency, got)
				}
				var fe *FormatError
				if !errors.As(err, &fe) {
					t.Fatalf("expected FormatError, got %T: %v", err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizeAmount(%q, %q) unexpected error: %v", tt.amount, tt.currency, err)
			}
			if got.String() != tt.want {
				t.Errorf("NormalizeAmount(%q, %q) = %s, want %s", tt.amount, tt.currency, got, tt.want)
			}
		})
	}
}
