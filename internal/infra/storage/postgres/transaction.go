package postgres

import (
	"context"
	"time"

	"github.com/gabapcia/txtracker/internal/chain"
	"github.com/gabapcia/txtracker/internal/scanner"

	"gorm.io/gorm/clause"
)

// SaveTransaction upserts tx by hash. Only the status of an existing row
// changes.
func (c *client) SaveTransaction(ctx context.Context, tx chain.Transaction) error {
	model, err := toTransactionModel(tx)
	if err != nil {
		return err
	}

	return c.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "hash"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
		}).
		Create(&model).Error
}

// SaveBlock upserts the block header by number.
func (c *client) SaveBlock(ctx context.Context, block chain.Block) error {
	model := blockModel{
		Number:           block.Number,
		Hash:             block.Hash,
		ParentHash:       block.ParentHash,
		Timestamp:        block.Timestamp,
		TransactionCount: block.TransactionCount(),
	}

	return c.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "number"}},
			DoUpdates: clause.AssignmentColumns([]string{"hash", "parent_hash", "transaction_count", "updated_at"}),
		}).
		Create(&model).Error
}

// Transaction returns a stored transaction by hash.
func (c *client) Transaction(ctx context.Context, hash string) (chain.Transaction, error) {
	var model transactionModel
	if err := c.db.WithContext(ctx).Where("hash = ?", hash).Take(&model).Error; err != nil {
		return chain.Transaction{}, err
	}
	return model.toChain(), nil
}

// TransactionsByAddress returns the newest transactions sent or received by
// address.
func (c *client) TransactionsByAddress(ctx context.Context, address string, limit int) ([]chain.Transaction, error) {
	var models []transactionModel
	err := c.db.WithContext(ctx).
		Where("from_address = ? OR to_address = ?", address, address).
		Order("block_number DESC, transaction_index DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	txs := make([]chain.Transaction, 0, len(models))
	for _, m := range models {
		txs = append(txs, m.toChain())
	}
	return txs, nil
}

// DeleteTransactionsBefore removes transactions older than cutoff and
// returns how many rows were deleted.
func (c *client) DeleteTransactionsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := c.db.WithContext(ctx).Where("timestamp < ?", cutoff).Delete(&transactionModel{})
	return result.RowsAffected, result.Error
}

var _ scanner.TransactionStorage = (*client)(nil)
