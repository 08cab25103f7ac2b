// Package chain holds the domain records shared by the scanner and both
// delivery engines: parsed blocks, parsed transactions and the event that
// crosses component boundaries.
package chain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Status is the execution outcome of a transaction.
type Status string

const (
	StatusPending Status = "pending"
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// NativeToken is the default token filter key for transactions that carry
// no token symbol.
const NativeToken = "native"

// Transaction is a parsed chain transaction.
//
// Value is a base-10 string so that amounts of any magnitude survive JSON
// and storage round trips.
type Transaction struct {
	Hash             string    `json:"hash"`
	BlockNumber      uint64    `json:"block_number"`
	BlockHash        string    `json:"block_hash,omitempty"`
	TransactionIndex int       `json:"transaction_index"`
	FromAddress      string    `json:"from_address"`
	ToAddress        string    `json:"to_address"`
	Value            string    `json:"value"`
	TokenAddress     string    `json:"token_address,omitempty"`
	TokenSymbol      string    `json:"token_symbol,omitempty"`
	TokenDecimals    *int      `json:"token_decimals,omitempty"`
	GasUsed          uint64    `json:"gas_used"`
	GasPrice         string    `json:"gas_price"`
	Status           Status    `json:"status"`
	Timestamp        time.Time `json:"timestamp"`
}

// TokenKey returns the token symbol used for filtering, NativeToken when
// the transaction moves the chain's native coin.
func (t Transaction) TokenKey() string {
	if t.TokenSymbol == "" {
		return NativeToken
	}
	return t.TokenSymbol
}

// Amount parses Value. ok is false when Value is not a decimal number.
func (t Transaction) Amount() (amount decimal.Decimal, ok bool) {
	amount, err := decimal.NewFromString(strings.TrimSpace(t.Value))
	return amount, err == nil
}

// Block is a fetched block with its parsed transactions.
type Block struct {
	Number       uint64        `json:"number"`
	Hash         string        `json:"hash"`
	ParentHash   string        `json:"parent_hash"`
	Timestamp    time.Time     `json:"timestamp"`
	Transactions []Transaction `json:"transactions"`
}

// TransactionCount is the number of parsed transactions in the block.
func (b Block) TransactionCount() int {
	return len(b.Transactions)
}
