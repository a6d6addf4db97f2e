package core

import (
	"testing"

	"github.com/shopspring/decimal"
)

func amt(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestAggregateEmpty(t *testing.T) {
	if _, ok := Aggregate(nil); ok {
		t.Error("Aggregate(nil) reported data")
	}
	if _, ok := Aggregate([]Entry{}); ok {
		t.Error("Aggregate(empty) reported data")
	}
}

func TestAggregate(t *testing.T) {
	entries := []Entry{
		{Type: CashIn, Amount: amt("50")},
		{Type: CashOut, Amount: amt("20")},
		{Type: CashIn, Amount: amt("30")},
	}

	b, ok := Aggregate(entries)
	if !ok {
		t.Fatal("Aggregate reported no data")
	}
	if b.TotalIn.String() != "80" {
		t.Errorf("TotalIn = %s, want 80", b.TotalIn)
	}
	if b.TotalOut.String() != "20" {
		t.Errorf("TotalOut = %s, want 20", b.TotalOut)
	}
	if b.NetBalance.String() != "60" {
		t.Errorf("NetBalance = %s, want 60", b.NetBalance)
	}
}

// Entries with an unknown direction are present but contribute nothing.
func TestAggregateUnknownType(t *testing.T) {
	entries := []Entry{
		{Type: CashIn, Amount: amt("50")},
		{Type: "transfer", Amount: amt("999")},
	}

	b, ok := Aggregate(entries)
	if !ok {
		t.Fatal("Aggregate reported no data")
	}
	if b.TotalIn.String() != "50" || b.TotalOut.String() != "0" {
		t.Errorf("totals = in %s / out %s, want 50 / 0", b.TotalIn, b.TotalOut)
	}
	if b.NetBalance.String() != "50" {
		t.Errorf("NetBalance = %s, want 50", b.NetBalance)
	}
}

func TestAggregateNegativeNet(t *testing.T) {
	entries := []Entry{
		{Type: CashIn, Amount: amt("10")},
		{Type: CashOut, Amount: amt("25")},
	}
	b, _ := Aggregate(entries)
	if b.NetBalance.String() != "-15" {
		t.Errorf("NetBalance = %s, want -15", b.NetBalance)
	}
}
