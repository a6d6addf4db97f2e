package core

import (
	"sort"
	"time"
)

// SortByTimestamp orders entries most recent first by their combined date
// and time. It does not mutate its input. Any entry whose timestamp does
// not parse fails the whole sort: dropping rows here would desync the
// history view from totals computed over the same fetch.
func SortByTimestamp(entries []Entry) ([]Entry, error) {
	type keyed struct {
		entry Entry
		ts    time.Time
	}
	keys := make([]keyed, len(entries))
	for i, e := range entries {
		ts, err := e.Timestamp()
		if err != nil {
			return nil, err
		}
		keys[i] = keyed{entry: e, ts: ts}
	}
	sort.SliceStable(keys, func(i, j int) bool {
		return keys[i].ts.After(keys[j].ts)
	})
	out := make([]Entry, len(entries))
	for i, k := range keys {
		out[i] = k.entry
	}
	return out, nil
}
