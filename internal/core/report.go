package core

import (
	"encoding/csv"
	"io"
)

// reportHeader matches the legacy export byte for byte, including the
// trailing empty column older frontends expect.
var reportHeader = []string{"Date", "Time", "Type", "Title", "Amount", "Description", "Category", "Payment Mode", ""}

// WriteReport serializes entries as CSV in the order given; callers sort
// first if they want chronological output.
func WriteReport(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(reportHeader); err != nil {
		return err
	}
	for _, e := range entries {
		record := []string{
			e.Date,
			e.Time,
			string(e.Type),
			e.Title,
			e.Amount.String(),
			e.Description,
			e.Category,
			e.PaymentMode,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
