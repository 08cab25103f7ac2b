package tron

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/gabapcia/txtracker/internal/chain"
	"github.com/gabapcia/txtracker/internal/pkg/types"
)

// balanceOfSelector is the 4-byte selector of balanceOf(address).
const balanceOfSelector = "0x70a08231"

// Receipt is the parsed outcome of an executed transaction.
type Receipt struct {
	TransactionHash string          `json:"transaction_hash"`
	BlockNumber     uint64          `json:"block_number"`
	BlockHash       string          `json:"block_hash"`
	GasUsed         uint64          `json:"gas_used"`
	ContractAddress string          `json:"contract_address,omitempty"`
	Status          chain.Status    `json:"status"`
	Raw             json.RawMessage `json:"raw"`
}

type receiptResponse struct {
	TransactionHash string  `json:"transactionHash"`
	BlockNumber     string  `json:"blockNumber"`
	BlockHash       string  `json:"blockHash"`
	GasUsed         string  `json:"gasUsed"`
	ContractAddress *string `json:"contractAddress"`
	Status          *string `json:"status"`
}

// TransactionReceipt fetches the receipt of a transaction with
// eth_getTransactionReceipt.
func (c *client) TransactionReceipt(ctx context.Context, hash string) (Receipt, error) {
	data, err := c.conn.Fetch(ctx, "eth_getTransactionReceipt", hash)
	if err != nil {
		return Receipt{}, err
	}

	var r receiptResponse
	if err := json.Unmarshal(data, &r); err != nil {
		return Receipt{}, err
	}

	receipt := Receipt{
		TransactionHash: r.TransactionHash,
		BlockNumber:     types.Hex(r.BlockNumber).Uint64(),
		BlockHash:       r.BlockHash,
		GasUsed:         types.Hex(r.GasUsed).Uint64(),
		Status:          statusFromReceiptField(r.Status),
		Raw:             data,
	}
	if r.ContractAddress != nil {
		receipt.ContractAddress = *r.ContractAddress
	}

	return receipt, nil
}

func (c *client) fetchQuantity(ctx context.Context, method string, params ...any) (string, error) {
	data, err := c.conn.Fetch(ctx, method, params...)
	if err != nil {
		return "", err
	}

	var quantity string
	if err := json.Unmarshal(data, &quantity); err != nil {
		return "", err
	}

	return types.HexToDecimalString(quantity)
}

// Balance returns the native balance of address at the latest block, in
// base units, as a decimal string.
func (c *client) Balance(ctx context.Context, address string) (string, error) {
	return c.fetchQuantity(ctx, "eth_getBalance", address, "latest")
}

// balanceOfCallData encodes balanceOf(address) with the address left-padded
// to 32 bytes.
func balanceOfCallData(address string) string {
	addr := strings.TrimPrefix(strings.TrimPrefix(address, "0x"), "0X")
	if pad := 64 - len(addr); pad > 0 {
		addr = strings.Repeat("0", pad) + addr
	}
	return balanceOfSelector + addr
}

// TokenBalance returns the balance of address on a token contract, in the
// token's base units, as a decimal string.
func (c *client) TokenBalance(ctx context.Context, contract, address string) (string, error) {
	call := map[string]string{
		"to":   contract,
		"data": balanceOfCallData(address),
	}

	return c.fetchQuantity(ctx, "eth_call", call, "latest")
}
