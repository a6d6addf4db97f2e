package core

import (
	"strings"
	"testing"
)

func TestWriteReport(t *testing.T) {
	entries := []Entry{
		{
			Type: CashOut, Title: "Groceries", Amount: amt("3200"),
			Description: "weekly shop", Category: "Food", PaymentMode: "Card",
			Date: "2024-03-15", Time: "09:30:45",
		},
		{
			Type: CashIn, Title: "Salary", Amount: amt("80000"),
			Description: "march", Category: "Income", PaymentMode: "Bank",
			Date: "2024-03-01", Time: "10:00:00",
		},
	}

	var sb strings.Builder
	if err := WriteReport(&sb, entries); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	// Header keeps the trailing empty column.
	if lines[0] != "Date,Time,Type,Title,Amount,Description,Category,Payment Mode," {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "2024-03-15,09:30:45,cashout,Groceries,3200,weekly shop,Food,Card" {
		t.Errorf("row 1 = %q", lines[1])
	}
	if lines[2] != "2024-03-01,10:00:00,cashin,Salary,80000,march,Income,Bank" {
		t.Errorf("row 2 = %q", lines[2])
	}
}

func TestWriteReportEmpty(t *testing.T) {
	var sb strings.Builder
	if err := WriteReport(&sb, nil); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}
	if got := sb.String(); got != "Date,Time,Type,Title,Amount,Description,Category,Payment Mode,\n" {
		t.Errorf("empty report = %q", got)
	}
}
