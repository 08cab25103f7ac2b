package postgres

import (
	"context"
	"errors"

	"github.com/gabapcia/txtracker/internal/scanner"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const scanProgressID = 1

func (c *client) LoadLastProcessedBlock(ctx context.Context) (uint64, error) {
	var progress scanProgressModel
	err := c.db.WithContext(ctx).Where("id = ?", scanProgressID).Take(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, scanner.ErrNoCheckpointFound
	}
	if err != nil {
		return 0, err
	}

	return progress.LastProcessedBlock, nil
}

func (c *client) SaveScanProgress(ctx context.Context, blockNumber uint64) error {
	progress := scanProgressModel{ID: scanProgressID, LastProcessedBlock: blockNumber}
	return c.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"last_processed_block", "updated_at"}),
		}).
		Create(&progress).Error
}

// ResetScanProgress removes the checkpoint so the next start uses the
// configured start block.
func (c *client) ResetScanProgress(ctx context.Context) error {
	return c.db.WithContext(ctx).Where("id = ?", scanProgressID).Delete(&scanProgressModel{}).Error
}

var _ scanner.CheckpointStorage = (*client)(nil)
