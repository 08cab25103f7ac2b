package webhook

import (
	"encoding/json"
	"time"

	"github.com/gabapcia/txtracker/internal/chain"
)

// testEventType tags payloads sent by Test.
const testEventType = "test"

type (
	transactionPayload struct {
		Hash          string       `json:"hash"`
		BlockNumber   uint64       `json:"block_number"`
		FromAddress   string       `json:"from_address"`
		ToAddress     string       `json:"to_address"`
		Value         string       `json:"value"`
		TokenSymbol   *string      `json:"token_symbol"`
		TokenAddress  *string      `json:"token_address"`
		TokenDecimals *int         `json:"token_decimals"`
		Status        chain.Status `json:"status"`
		Timestamp     int64        `json:"timestamp"`
		GasUsed       uint64       `json:"gas_used"`
		GasPrice      string       `json:"gas_price"`
	}

	// Envelope is the JSON document POSTed to subscribers.
	Envelope struct {
		WebhookID string `json:"webhook_id,omitempty"`
		EventType string `json:"event_type"`
		Timestamp int64  `json:"timestamp"`
		Data      any    `json:"data"`
	}
)

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func newTransactionPayload(tx chain.Transaction) transactionPayload {
	return transactionPayload{
		Hash:          tx.Hash,
		BlockNumber:   tx.BlockNumber,
		FromAddress:   tx.FromAddress,
		ToAddress:     tx.ToAddress,
		Value:         tx.Value,
		TokenSymbol:   optional(tx.TokenSymbol),
		TokenAddress:  optional(tx.TokenAddress),
		TokenDecimals: tx.TokenDecimals,
		Status:        tx.Status,
		Timestamp:     tx.Timestamp.Unix(),
		GasUsed:       tx.GasUsed,
		GasPrice:      tx.GasPrice,
	}
}

// NewPayload builds the delivery body of event for webhookID.
func NewPayload(webhookID string, event chain.TransactionEvent, now time.Time) ([]byte, error) {
	return json.Marshal(Envelope{
		WebhookID: webhookID,
		EventType: string(event.Type),
		Timestamp: now.Unix(),
		Data: map[string]any{
			"transaction": newTransactionPayload(event.Transaction),
		},
	})
}

// NewTestPayload builds the body sent by connectivity tests.
func NewTestPayload(now time.Time) ([]byte, error) {
	return json.Marshal(Envelope{
		EventType: testEventType,
		Timestamp: now.Unix(),
		Data: map[string]string{
			"message": "This is a test webhook from txtracker",
		},
	})
}
