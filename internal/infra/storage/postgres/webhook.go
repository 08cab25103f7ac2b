package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/gabapcia/txtracker/internal/webhook"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (c *client) EnabledWebhooks(ctx context.Context) ([]webhook.Webhook, error) {
	return c.findWebhooks(c.db.WithContext(ctx).Where("enabled = ?", true))
}

func (c *client) Webhooks(ctx context.Context) ([]webhook.Webhook, error) {
	return c.findWebhooks(c.db.WithContext(ctx))
}

func (c *client) findWebhooks(query *gorm.DB) ([]webhook.Webhook, error) {
	var models []webhookModel
	if err := query.Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	webhooks := make([]webhook.Webhook, 0, len(models))
	for _, m := range models {
		webhooks = append(webhooks, m.toWebhook())
	}
	return webhooks, nil
}

func (c *client) Webhook(ctx context.Context, id string) (webhook.Webhook, error) {
	var model webhookModel
	err := c.db.WithContext(ctx).Where("id = ?", id).Take(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return webhook.Webhook{}, webhook.ErrWebhookNotFound
	}
	if err != nil {
		return webhook.Webhook{}, err
	}

	return model.toWebhook(), nil
}

// SaveWebhook upserts w by id. Delivery counters are owned by
// UpdateWebhookStats and are left untouched on update.
func (c *client) SaveWebhook(ctx context.Context, w webhook.Webhook) error {
	model := toWebhookModel(w)
	return c.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "url", "secret", "enabled", "events", "filters",
				"retry_count", "timeout_ms", "updated_at",
			}),
		}).
		Create(&model).Error
}

// DeleteWebhook removes the subscription and its delivery logs.
func (c *client) DeleteWebhook(ctx context.Context, id string) error {
	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("webhook_id = ?", id).Delete(&deliveryLogModel{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&webhookModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return webhook.ErrWebhookNotFound
		}
		return nil
	})
}

func (c *client) UpdateWebhookStats(ctx context.Context, id string, success bool, triggeredAt time.Time) error {
	counter := "failure_count"
	if success {
		counter = "success_count"
	}

	result := c.db.WithContext(ctx).
		Model(&webhookModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			counter:          gorm.Expr(counter + " + 1"),
			"last_triggered": triggeredAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return webhook.ErrWebhookNotFound
	}
	return nil
}

func (c *client) SaveDeliveryLog(ctx context.Context, log webhook.DeliveryLog) error {
	model := toDeliveryLogModel(log)
	return c.db.WithContext(ctx).Create(&model).Error
}

func (c *client) DeliveryLogs(ctx context.Context, webhookID string, limit int) ([]webhook.DeliveryLog, error) {
	var models []deliveryLogModel
	err := c.db.WithContext(ctx).
		Where("webhook_id = ?", webhookID).
		Order("created_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	logs := make([]webhook.DeliveryLog, 0, len(models))
	for _, m := range models {
		logs = append(logs, m.toDeliveryLog())
	}
	return logs, nil
}

var _ webhook.Storage = (*client)(nil)
