package websocket

import (
	"encoding/json"
	"fmt"

	"github.com/gabapcia/txtracker/internal/chain"
)

// Frame types. Every frame is a JSON object tagged by its "type" field.
const (
	TypeConnected               = "Connected"
	TypePing                    = "Ping"
	TypePong                    = "Pong"
	TypeSubscribe               = "Subscribe"
	TypeSubscribed              = "Subscribed"
	TypeUnsubscribe             = "Unsubscribe"
	TypeTransactionNotification = "TransactionNotification"
	TypeSystemNotification      = "SystemNotification"
	TypeError                   = "Error"
)

// Error frame codes.
const (
	CodeInvalidMessage       = "invalid_message"
	CodeInvalidSubscription  = "invalid_subscription"
	CodeSubscriptionNotFound = "subscription_not_found"
)

type (
	ConnectedFrame struct {
		Type         string `json:"type"`
		ConnectionID string `json:"connection_id"`
		ServerTime   int64  `json:"server_time"`
	}

	PingFrame struct {
		Type      string `json:"type"`
		Timestamp int64  `json:"timestamp"`
	}

	SubscribedFrame struct {
		Type           string `json:"type"`
		SubscriptionID string `json:"subscription_id"`
	}

	TransactionNotificationFrame struct {
		Type           string            `json:"type"`
		Transaction    chain.Transaction `json:"transaction"`
		EventType      chain.EventType   `json:"event_type"`
		SubscriptionID string            `json:"subscription_id"`
	}

	SystemNotificationFrame struct {
		Type      string `json:"type"`
		Message   string `json:"message"`
		Level     string `json:"level"`
		Timestamp int64  `json:"timestamp"`
	}

	ErrorFrame struct {
		Type    string `json:"type"`
		Message string `json:"message"`
		Code    string `json:"code"`
	}

	// ClientFrame is any frame a client may send: Subscribe, Unsubscribe or
	// Pong.
	ClientFrame struct {
		Type           string        `json:"type"`
		Subscription   *Subscription `json:"subscription,omitempty"`
		SubscriptionID string        `json:"subscription_id,omitempty"`
		Timestamp      int64         `json:"timestamp,omitempty"`
	}
)

// protocolError is a client mistake answered with an Error frame. Fatal
// errors end the connection after the frame is sent.
type protocolError struct {
	code    string
	message string
	fatal   bool
}

func (e *protocolError) Error() string {
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

func (e *protocolError) frame() ErrorFrame {
	return ErrorFrame{Type: TypeError, Message: e.message, Code: e.code}
}

// decodeClientFrame parses data and checks that the frame is complete for
// its type.
func decodeClientFrame(data []byte) (ClientFrame, error) {
	var frame ClientFrame
	if err := json.Unmarshal(data, &frame); err != nil {
		return ClientFrame{}, &protocolError{code: CodeInvalidMessage, message: err.Error(), fatal: true}
	}

	switch frame.Type {
	case TypeSubscribe:
		if frame.Subscription == nil {
			return ClientFrame{}, &protocolError{code: CodeInvalidMessage, message: "subscribe frame without subscription", fatal: true}
		}
	case TypeUnsubscribe:
		if frame.SubscriptionID == "" {
			return ClientFrame{}, &protocolError{code: CodeInvalidMessage, message: "unsubscribe frame without subscription_id", fatal: true}
		}
	case TypePong:
	default:
		return ClientFrame{}, &protocolError{code: CodeInvalidMessage, message: fmt.Sprintf("unexpected frame type %q", frame.Type), fatal: true}
	}

	return frame, nil
}
