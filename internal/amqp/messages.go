package amqp

import (
	"encoding/json"
	"time"
)

// EntryCreatedMessage tells the mirror worker a log entry was stored. It
// carries only the address; the worker fetches the full document from the
// store by uid and key.
type EntryCreatedMessage struct {
	UID       string    `json:"uid"`
	Key       string    `json:"key"`
	Timestamp time.Time `json:"timestamp"`
}

func NewEntryCreatedMessage(uid, key string) *EntryCreatedMessage {
	return &EntryCreatedMessage{
		UID:       uid,
		Key:       key,
		Timestamp: time.Now(),
	}
}

func (m *EntryCreatedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func EntryCreatedMessageFromJSON(data []byte) (*EntryCreatedMessage, error) {
	var msg EntryCreatedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
