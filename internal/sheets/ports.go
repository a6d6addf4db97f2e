// Package sheets defines the outbound port for the spreadsheet mirror of
// the ledger.
package sheets

import (
	"context"

	"fintrack/internal/core"
)

// EntryAppender mirrors one ledger entry as a spreadsheet row.
type EntryAppender interface {
	AppendEntry(ctx context.Context, uid string, e core.Entry) error
}
