package websocket

import (
	"slices"
	"strings"

	"github.com/gabapcia/txtracker/internal/chain"
	"github.com/gabapcia/txtracker/internal/pkg/types"

	"github.com/shopspring/decimal"
)

// Subscription is a live connection's event filter. Every set clause must
// match.
type Subscription struct {
	EventTypes types.Set[chain.EventType] `json:"event_types" validate:"required,min=1"`
	Addresses  []string                   `json:"addresses,omitempty"`
	Tokens     types.Set[string]          `json:"tokens,omitempty"`
	MinAmount  *string                    `json:"min_amount,omitempty" validate:"omitempty,decimal"`
}

// Matches reports whether event passes the subscription.
func (s Subscription) Matches(event chain.TransactionEvent) bool {
	if !s.EventTypes.Contains(event.Type) {
		return false
	}

	tx := event.Transaction
	if len(s.Addresses) > 0 && !slices.ContainsFunc(s.Addresses, func(addr string) bool {
		return strings.EqualFold(addr, tx.FromAddress) || strings.EqualFold(addr, tx.ToAddress)
	}) {
		return false
	}

	if len(s.Tokens) > 0 && !s.Tokens.Contains(tx.TokenKey()) {
		return false
	}

	if s.MinAmount == nil {
		return true
	}

	lower, err := decimal.NewFromString(*s.MinAmount)
	if err != nil {
		return false
	}

	amount, ok := tx.Amount()
	return ok && amount.GreaterThanOrEqual(lower)
}
