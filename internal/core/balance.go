package core

import "github.com/shopspring/decimal"

// Balance is the aggregate view of a user's history.
type Balance struct {
	NetBalance decimal.Decimal
	TotalIn    decimal.Decimal
	TotalOut   decimal.Decimal
}

// Aggregate sums entry amounts by direction. Entries with an unrecognized
// type contribute to neither total. The second return is false when there
// is nothing to aggregate; callers must treat that as a distinct no-data
// condition, not as a zero balance.
func Aggregate(entries []Entry) (Balance, bool) {
	if len(entries) == 0 {
		return Balance{}, false
	}
	totalIn := decimal.Zero
	totalOut := decimal.Zero
	for _, e := range entries {
		switch e.Type {
		case CashIn:
			totalIn = totalIn.Add(e.Amount)
		case CashOut:
			totalOut = totalOut.Add(e.Amount)
		}
	}
	return Balance{
		NetBalance: totalIn.Sub(totalOut),
		TotalIn:    totalIn,
		TotalOut:   totalOut,
	}, true
}
