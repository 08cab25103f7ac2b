package webhook

import (
	"slices"
	"strings"

	"github.com/gabapcia/txtracker/internal/chain"

	"github.com/shopspring/decimal"
)

// Matches reports whether tx passes every set clause of f. Amount clauses
// never match values (or bounds) that are not decimal numbers.
func (f Filters) Matches(tx chain.Transaction) bool {
	if len(f.Addresses) > 0 && !slices.ContainsFunc(f.Addresses, func(addr string) bool {
		return strings.EqualFold(addr, tx.FromAddress) || strings.EqualFold(addr, tx.ToAddress)
	}) {
		return false
	}

	if len(f.Tokens) > 0 && !slices.Contains(f.Tokens, tx.TokenKey()) {
		return false
	}

	if f.MinAmount == nil && f.MaxAmount == nil {
		return true
	}

	amount, ok := tx.Amount()
	if !ok {
		return false
	}

	if f.MinAmount != nil {
		lower, err := decimal.NewFromString(*f.MinAmount)
		if err != nil || amount.LessThan(lower) {
			return false
		}
	}

	if f.MaxAmount != nil {
		upper, err := decimal.NewFromString(*f.MaxAmount)
		if err != nil || amount.GreaterThan(upper) {
			return false
		}
	}

	return true
}

// Matches reports whether the subscription wants event.
func (w Webhook) Matches(event chain.TransactionEvent) bool {
	return slices.Contains(w.Events, event.Type) && w.Filters.Matches(event.Transaction)
}
