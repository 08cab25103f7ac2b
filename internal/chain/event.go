package chain

import (
	"encoding/json"
	"fmt"
	"slices"
)

// EventType classifies a TransactionEvent.
type EventType string

const (
	EventTransaction   EventType = "transaction"
	EventLargeTransfer EventType = "large_transfer"
	EventNewAddress    EventType = "new_address"
	EventSystemAlert   EventType = "system_alert"
)

// EventTypes lists every known event type.
var EventTypes = []EventType{
	EventTransaction,
	EventLargeTransfer,
	EventNewAddress,
	EventSystemAlert,
}

// ParseEventType validates s as a known EventType.
func ParseEventType(s string) (EventType, error) {
	et := EventType(s)
	if !slices.Contains(EventTypes, et) {
		return "", fmt.Errorf("unknown event type %q", s)
	}
	return et, nil
}

// UnmarshalJSON accepts only known event types.
func (e *EventType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	et, err := ParseEventType(s)
	if err != nil {
		return err
	}

	*e = et
	return nil
}

// TransactionEvent is the only message exchanged between the scanner and
// the delivery engines. It is passed by value and never mutated.
type TransactionEvent struct {
	Transaction Transaction `json:"transaction"`
	Type        EventType   `json:"event_type"`
}
