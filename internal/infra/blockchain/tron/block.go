package tron

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gabapcia/txtracker/internal/chain"
	"github.com/gabapcia/txtracker/internal/pkg/logger"
	"github.com/gabapcia/txtracker/internal/pkg/types"
)

// transferSelector is the 4-byte selector of transfer(address,uint256).
const transferSelector = "0xa9059cbb"

var (
	// ErrInvalidBlock is returned when a block response lacks a required field.
	ErrInvalidBlock = errors.New("invalid block response")

	// ErrInvalidTransaction is returned when a transaction cannot be parsed.
	ErrInvalidTransaction = errors.New("invalid transaction response")
)

type (
	// TransactionResponse is a transaction object as returned inside a full
	// eth_getBlockBy* response.
	TransactionResponse struct {
		Hash             string  `json:"hash"`
		From             string  `json:"from"`
		To               *string `json:"to"`
		Value            string  `json:"value"`
		Gas              string  `json:"gas"`
		GasPrice         string  `json:"gasPrice"`
		Input            string  `json:"input"`
		Status           *string `json:"status"`
		TransactionIndex string  `json:"transactionIndex"`
	}

	// BlockResponse is the subset of an eth_getBlockBy* response the
	// scanner needs.
	BlockResponse struct {
		Number       *types.Hex        `json:"number"`
		Hash         string            `json:"hash"`
		ParentHash   string            `json:"parentHash"`
		Timestamp    *types.Hex        `json:"timestamp"`
		Transactions []json.RawMessage `json:"transactions"`
	}
)

func (b BlockResponse) validate() error {
	switch {
	case b.Number == nil:
		return fmt.Errorf("%w: missing number", ErrInvalidBlock)
	case b.Hash == "":
		return fmt.Errorf("%w: missing hash", ErrInvalidBlock)
	case b.Timestamp == nil:
		return fmt.Errorf("%w: missing timestamp", ErrInvalidBlock)
	case b.Transactions == nil:
		return fmt.Errorf("%w: missing transactions", ErrInvalidBlock)
	}
	return nil
}

func isTokenTransfer(input string) bool {
	return len(input) > 2 && strings.HasPrefix(strings.ToLower(input), transferSelector)
}

func statusFromReceiptField(status *string) chain.Status {
	switch {
	case status == nil:
		return chain.StatusPending
	case *status == "0x1":
		return chain.StatusSuccess
	default:
		return chain.StatusFailed
	}
}

// toChainTransaction parses one transaction of block.
//
// Calls to transfer(address,uint256) are recorded as token transfers with
// the contract as token address and a Success status. Everything else is a
// native transfer whose status comes from the optional status field.
func (c *client) toChainTransaction(raw json.RawMessage, block chain.Block) (chain.Transaction, error) {
	var t TransactionResponse
	if err := json.Unmarshal(raw, &t); err != nil {
		return chain.Transaction{}, fmt.Errorf("%w: %w", ErrInvalidTransaction, err)
	}

	if t.Hash == "" {
		return chain.Transaction{}, fmt.Errorf("%w: missing hash", ErrInvalidTransaction)
	}

	value, err := types.HexToDecimalString(t.Value)
	if err != nil {
		return chain.Transaction{}, fmt.Errorf("%w: value: %w", ErrInvalidTransaction, err)
	}

	gasPrice, err := types.HexToDecimalString(t.GasPrice)
	if err != nil {
		return chain.Transaction{}, fmt.Errorf("%w: gas price: %w", ErrInvalidTransaction, err)
	}

	var to string
	if t.To != nil {
		to = *t.To
	}

	tx := chain.Transaction{
		Hash:             t.Hash,
		BlockNumber:      block.Number,
		BlockHash:        block.Hash,
		TransactionIndex: int(types.Hex(t.TransactionIndex).Uint64()),
		FromAddress:      t.From,
		ToAddress:        to,
		Value:            value,
		GasUsed:          types.Hex(t.Gas).Uint64(),
		GasPrice:         gasPrice,
		Timestamp:        block.Timestamp,
	}

	if isTokenTransfer(t.Input) {
		decimals := c.tokenDecimals
		tx.TokenAddress = to
		tx.TokenSymbol = c.tokenSymbol
		tx.TokenDecimals = &decimals
		tx.Status = chain.StatusSuccess
		return tx, nil
	}

	tx.Status = statusFromReceiptField(t.Status)
	if c.nativeSymbol != "" {
		decimals := c.nativeDecimals
		tx.TokenSymbol = c.nativeSymbol
		tx.TokenDecimals = &decimals
	}

	return tx, nil
}

// toChainBlock converts a block response. Transactions that fail to parse
// are logged and left out; the block itself is still returned.
func (c *client) toChainBlock(ctx context.Context, b BlockResponse) (chain.Block, error) {
	if err := b.validate(); err != nil {
		return chain.Block{}, err
	}

	block := chain.Block{
		Number:     b.Number.Uint64(),
		Hash:       b.Hash,
		ParentHash: b.ParentHash,
		Timestamp:  time.Unix(int64(b.Timestamp.Uint64()), 0).UTC(),
	}

	block.Transactions = make([]chain.Transaction, 0, len(b.Transactions))
	for i, raw := range b.Transactions {
		tx, err := c.toChainTransaction(raw, block)
		if err != nil {
			logger.Warn(ctx, "skipping unparseable transaction",
				"block.number", block.Number,
				"transaction.position", i,
				"error", err,
			)
			continue
		}

		block.Transactions = append(block.Transactions, tx)
	}

	return block, nil
}

// LatestBlockNumber returns the chain head reported by eth_blockNumber.
func (c *client) LatestBlockNumber(ctx context.Context) (uint64, error) {
	data, err := c.conn.Fetch(ctx, "eth_blockNumber")
	if err != nil {
		return 0, err
	}

	var number types.Hex
	if err := json.Unmarshal(data, &number); err != nil {
		return 0, err
	}

	return number.Uint64(), nil
}

func (c *client) fetchBlock(ctx context.Context, method string, id string) (chain.Block, error) {
	data, err := c.conn.Fetch(ctx, method, id, true)
	if err != nil {
		return chain.Block{}, err
	}

	var response BlockResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return chain.Block{}, fmt.Errorf("%w: %w", ErrInvalidBlock, err)
	}

	return c.toChainBlock(ctx, response)
}

// BlockByNumber fetches a full block with eth_getBlockByNumber.
func (c *client) BlockByNumber(ctx context.Context, number uint64) (chain.Block, error) {
	return c.fetchBlock(ctx, "eth_getBlockByNumber", string(types.HexFromUint64(number)))
}

// BlockByHash fetches a full block with eth_getBlockByHash.
func (c *client) BlockByHash(ctx context.Context, hash string) (chain.Block, error) {
	return c.fetchBlock(ctx, "eth_getBlockByHash", hash)
}
