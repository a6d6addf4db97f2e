package core

import "encoding/json"

// Goal is a named savings target. Fields beyond name and amount are carried
// through unvalidated.
type Goal struct {
	Name   string
	Amount string
	Extra  map[string]string
	Key    string
}

// Goal validation reuses the entry messages; the legacy API reported goals
// with the same wording.
var (
	ErrEmptyGoalName   = ValidationError{"Title cannot be empty."}
	ErrEmptyGoalAmount = ValidationError{"Amount cannot be empty."}
)

// Validate checks the two required fields, name first.
func (g Goal) Validate() error {
	if g.Name == "" {
		return ErrEmptyGoalName
	}
	if g.Amount == "" {
		return ErrEmptyGoalAmount
	}
	return nil
}

// Document flattens the goal for the store, extra fields included.
func (g Goal) Document() map[string]string {
	doc := make(map[string]string, len(g.Extra)+2)
	for k, v := range g.Extra {
		doc[k] = v
	}
	doc["goalName"] = g.Name
	doc["goalAmount"] = g.Amount
	return doc
}

// GoalFromDocument rebuilds a goal from its stored document, attaching the
// store key.
func GoalFromDocument(key string, doc map[string]string) Goal {
	g := Goal{Name: doc["goalName"], Amount: doc["goalAmount"], Key: key}
	for k, v := range doc {
		if k == "goalName" || k == "goalAmount" {
			continue
		}
		if g.Extra == nil {
			g.Extra = make(map[string]string)
		}
		g.Extra[k] = v
	}
	return g
}

// MarshalJSON flattens the goal into the legacy wire object: goalName,
// goalAmount, any extra fields, and the store key at the top level.
func (g Goal) MarshalJSON() ([]byte, error) {
	obj := make(map[string]string, len(g.Extra)+3)
	for k, v := range g.Extra {
		obj[k] = v
	}
	obj["goalName"] = g.Name
	obj["goalAmount"] = g.Amount
	if g.Key != "" {
		obj["key"] = g.Key
	}
	return json.Marshal(obj)
}
