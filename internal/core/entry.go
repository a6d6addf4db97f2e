package core

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// TxnType is the direction of a log entry. Only the two known values
// participate in balance aggregation; anything else is carried through
// untouched and excluded from totals.
type TxnType string

const (
	CashIn  TxnType = "cashin"
	CashOut TxnType = "cashout"
)

// Marked flag wire literals. Stored values outside these two are treated as
// malformed state by the bookmark toggle.
const (
	MarkedTrue  = "true"
	MarkedFalse = "false"
)

const (
	DateLayout      = "2006-01-02"
	TimeLayout      = "15:04:05"
	timestampLayout = DateLayout + " " + TimeLayout
)

// Entry is one recorded financial transaction. The amount is typed
// internally but serializes as the quoted string the legacy wire format
// uses. Marked keeps the raw stored string so malformed values round-trip
// untouched.
type Entry struct {
	Type        TxnType         `json:"t"`
	Title       string          `json:"title"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	PaymentMode string          `json:"payment_mode"`
	Date        string          `json:"date"`
	Time        string          `json:"time"`
	Marked      string          `json:"marked"`
	Key         string          `json:"key,omitempty"`
}

// ValidationError is a user-correctable input error. The messages are part
// of the API contract.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string { return e.Message }

var (
	ErrEmptyTitle       = ValidationError{"Title cannot be empty."}
	ErrEmptyAmount      = ValidationError{"Amount cannot be empty."}
	ErrEmptyDescription = ValidationError{"Description cannot be empty."}
	ErrEmptyCategory    = ValidationError{"Category cannot be empty."}
	ErrEmptyPaymentMode = ValidationError{"Payment Mode cannot be empty."}
)

// FormatError reports submitted or stored data that does not parse. It is
// fatal to the operation that encountered it.
type FormatError struct {
	Field string
	Value string
}

func (e *FormatError) Error() string {
	return "invalid " + e.Field + ": " + strconv.Quote(e.Value)
}

// EntryInput is a client-submitted entry before validation. Date, time and
// marked are accepted but always overwritten at creation.
type EntryInput struct {
	Type        string `json:"t"`
	Title       string `json:"title"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
	Category    string `json:"category"`
	PaymentMode string `json:"payment_mode"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Marked      string `json:"marked"`
}

// Validate checks required fields in the order the API has always reported
// them, stopping at the first failure.
func (in EntryInput) Validate() error {
	if in.Title == "" {
		return ErrEmptyTitle
	}
	if in.Amount == "" {
		return ErrEmptyAmount
	}
	if in.Description == "" {
		return ErrEmptyDescription
	}
	if in.Category == "" {
		return ErrEmptyCategory
	}
	if in.PaymentMode == "" {
		return ErrEmptyPaymentMode
	}
	return nil
}

// NewEntry validates and normalizes a submitted entry. The amount is
// converted to the base currency once, here; date and time are stamped from
// now and the marked flag is reset, regardless of what the client sent.
func NewEntry(in EntryInput, currency string, now time.Time) (Entry, error) {
	if err := in.Validate(); err != nil {
		return Entry{}, err
	}
	amount, err := NormalizeAmount(in.Amount, currency)
	if err != nil {
		return Entry{}, err
	}
	return Entry{
		Type:        TxnType(in.Type),
		Title:       in.Title,
		Amount:      amount,
		Description: in.Description,
		Category:    in.Category,
		PaymentMode: in.PaymentMode,
		Date:        now.Format(DateLayout),
		Time:        now.Format(TimeLayout),
		Marked:      MarkedFalse,
	}, nil
}

// Document flattens the entry for the store. The key is addressing, not
// data, so it is not persisted.
func (e Entry) Document() map[string]string {
	return map[string]string{
		"t":            string(e.Type),
		"title":        e.Title,
		"amount":       e.Amount.String(),
		"description":  e.Description,
		"category":     e.Category,
		"payment_mode": e.PaymentMode,
		"date":         e.Date,
		"time":         e.Time,
		"marked":       e.Marked,
	}
}

// EntryFromDocument rebuilds an entry from its stored document, attaching
// the store key. A malformed amount is fatal: the stored value feeds the
// balance totals and cannot be silently coerced.
func EntryFromDocument(key string, doc map[string]string) (Entry, error) {
	amount, err := decimal.NewFromString(doc["amount"])
	if err != nil {
		return Entry{}, &FormatError{Field: "amount", Value: doc["amount"]}
	}
	return Entry{
		Type:        TxnType(doc["t"]),
		Title:       doc["title"],
		Amount:      amount,
		Description: doc["description"],
		Category:    doc["category"],
		PaymentMode: doc["payment_mode"],
		Date:        doc["date"],
		Time:        doc["time"],
		Marked:      doc["marked"],
		Key:         key,
	}, nil
}

// Timestamp parses the entry's combined date and time. Parsing is strict: a
// mismatch is fatal for the whole read it happens in.
func (e Entry) Timestamp() (time.Time, error) {
	combined := e.Date + " " + e.Time
	ts, err := time.Parse(timestampLayout, combined)
	if err != nil {
		return time.Time{}, &FormatError{Field: "date/time", Value: combined}
	}
	return ts, nil
}
