package core

// FilterField enumerates the entry fields history can be filtered on.
type FilterField string

const (
	FilterCategory    FilterField = "category"
	FilterPaymentMode FilterField = "payment_mode"
	FilterType        FilterField = "t"
	FilterMarked      FilterField = "marked"
)

// ParseFilterField maps a request path segment to a filterable field.
func ParseFilterField(s string) (FilterField, bool) {
	switch f := FilterField(s); f {
	case FilterCategory, FilterPaymentMode, FilterType, FilterMarked:
		return f, true
	}
	return "", false
}

func (f FilterField) valueOf(e Entry) string {
	switch f {
	case FilterCategory:
		return e.Category
	case FilterPaymentMode:
		return e.PaymentMode
	case FilterType:
		return string(e.Type)
	case FilterMarked:
		return e.Marked
	}
	return ""
}

// Filter returns the entries whose field equals value, preserving input
// order.
func Filter(entries []Entry, field FilterField, value string) []Entry {
	var out []Entry
	for _, e := range entries {
		if field.valueOf(e) == value {
			out = append(out, e)
		}
	}
	return out
}
