package postgres

import (
	"time"

	"github.com/gabapcia/txtracker/internal/chain"
	"github.com/gabapcia/txtracker/internal/webhook"

	"github.com/shopspring/decimal"
)

type transactionModel struct {
	Hash             string          `gorm:"primaryKey;type:varchar(80)"`
	BlockNumber      uint64          `gorm:"not null;index"`
	BlockHash        string          `gorm:"type:varchar(80)"`
	TransactionIndex int             `gorm:"not null"`
	FromAddress      string          `gorm:"type:varchar(64);index"`
	ToAddress        string          `gorm:"type:varchar(64);index"`
	Value            decimal.Decimal `gorm:"type:numeric;not null"`
	TokenAddress     string          `gorm:"type:varchar(64)"`
	TokenSymbol      string          `gorm:"type:varchar(16);index"`
	TokenDecimals    *int
	GasUsed          uint64
	GasPrice         decimal.Decimal `gorm:"type:numeric"`
	Status           string          `gorm:"type:varchar(16);not null;index"`
	Timestamp        time.Time       `gorm:"not null;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (transactionModel) TableName() string {
	return "transactions"
}

type blockModel struct {
	Number           uint64    `gorm:"primaryKey;autoIncrement:false"`
	Hash             string    `gorm:"type:varchar(80);not null;uniqueIndex"`
	ParentHash       string    `gorm:"type:varchar(80)"`
	Timestamp        time.Time `gorm:"not null"`
	TransactionCount int       `gorm:"not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (blockModel) TableName() string {
	return "blocks"
}

// scanProgressModel holds a single row with the last processed block.
type scanProgressModel struct {
	ID                 uint   `gorm:"primaryKey;autoIncrement:false"`
	LastProcessedBlock uint64 `gorm:"not null"`
	UpdatedAt          time.Time
}

func (scanProgressModel) TableName() string {
	return "scan_progress"
}

type webhookModel struct {
	ID            string            `gorm:"primaryKey;type:varchar(36)"`
	Name          string            `gorm:"type:varchar(255)"`
	URL           string            `gorm:"type:text;not null"`
	Secret        string            `gorm:"type:varchar(255)"`
	Enabled       bool              `gorm:"not null;index"`
	Events        []chain.EventType `gorm:"serializer:json;type:jsonb;not null"`
	Filters       webhook.Filters   `gorm:"serializer:json;type:jsonb;not null"`
	RetryCount    int               `gorm:"not null"`
	TimeoutMs     int64             `gorm:"not null"`
	SuccessCount  int64             `gorm:"not null;default:0"`
	FailureCount  int64             `gorm:"not null;default:0"`
	LastTriggered *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (webhookModel) TableName() string {
	return "webhooks"
}

type deliveryLogModel struct {
	ID         string    `gorm:"primaryKey;type:varchar(36)"`
	WebhookID  string    `gorm:"type:varchar(36);not null;index:idx_delivery_logs_webhook_created,priority:1"`
	Attempt    int       `gorm:"not null"`
	StatusCode int       `gorm:"not null"`
	Success    bool      `gorm:"not null"`
	DurationMs int64     `gorm:"not null"`
	Error      string    `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"not null;index:idx_delivery_logs_webhook_created,priority:2"`
}

func (deliveryLogModel) TableName() string {
	return "webhook_delivery_logs"
}

func toTransactionModel(tx chain.Transaction) (transactionModel, error) {
	value, ok := tx.Amount()
	if !ok {
		return transactionModel{}, &InvalidAmountError{Hash: tx.Hash, Value: tx.Value}
	}

	var gasPrice decimal.Decimal
	if tx.GasPrice != "" {
		var err error
		if gasPrice, err = decimal.NewFromString(tx.GasPrice); err != nil {
			return transactionModel{}, &InvalidAmountError{Hash: tx.Hash, Value: tx.GasPrice}
		}
	}

	return transactionModel{
		Hash:             tx.Hash,
		BlockNumber:      tx.BlockNumber,
		BlockHash:        tx.BlockHash,
		TransactionIndex: tx.TransactionIndex,
		FromAddress:      tx.FromAddress,
		ToAddress:        tx.ToAddress,
		Value:            value,
		TokenAddress:     tx.TokenAddress,
		TokenSymbol:      tx.TokenSymbol,
		TokenDecimals:    tx.TokenDecimals,
		GasUsed:          tx.GasUsed,
		GasPrice:         gasPrice,
		Status:           string(tx.Status),
		Timestamp:        tx.Timestamp,
	}, nil
}

func (m transactionModel) toChain() chain.Transaction {
	tx := chain.Transaction{
		Hash:             m.Hash,
		BlockNumber:      m.BlockNumber,
		BlockHash:        m.BlockHash,
		TransactionIndex: m.TransactionIndex,
		FromAddress:      m.FromAddress,
		ToAddress:        m.ToAddress,
		Value:            m.Value.String(),
		TokenAddress:     m.TokenAddress,
		TokenSymbol:      m.TokenSymbol,
		TokenDecimals:    m.TokenDecimals,
		GasUsed:          m.GasUsed,
		Status:           chain.Status(m.Status),
		Timestamp:        m.Timestamp,
	}
	if !m.GasPrice.IsZero() {
		tx.GasPrice = m.GasPrice.String()
	}
	return tx
}

func toWebhookModel(w webhook.Webhook) webhookModel {
	return webhookModel{
		ID:            w.ID,
		Name:          w.Name,
		URL:           w.URL,
		Secret:        w.Secret,
		Enabled:       w.Enabled,
		Events:        w.Events,
		Filters:       w.Filters,
		RetryCount:    w.RetryCount,
		TimeoutMs:     w.Timeout.Milliseconds(),
		SuccessCount:  w.SuccessCount,
		FailureCount:  w.FailureCount,
		LastTriggered: w.LastTriggered,
		CreatedAt:     w.CreatedAt,
		UpdatedAt:     w.UpdatedAt,
	}
}

func (m webhookModel) toWebhook() webhook.Webhook {
	return webhook.Webhook{
		ID:            m.ID,
		Name:          m.Name,
		URL:           m.URL,
		Secret:        m.Secret,
		Enabled:       m.Enabled,
		Events:        m.Events,
		Filters:       m.Filters,
		RetryCount:    m.RetryCount,
		Timeout:       time.Duration(m.TimeoutMs) * time.Millisecond,
		SuccessCount:  m.SuccessCount,
		FailureCount:  m.FailureCount,
		LastTriggered: m.LastTriggered,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toDeliveryLogModel(l webhook.DeliveryLog) deliveryLogModel {
	return deliveryLogModel{
		ID:         l.ID,
		WebhookID:  l.WebhookID,
		Attempt:    l.Attempt,
		StatusCode: l.StatusCode,
		Success:    l.Success,
		DurationMs: l.Duration.Milliseconds(),
		Error:      l.Error,
		CreatedAt:  l.CreatedAt,
	}
}

func (m deliveryLogModel) toDeliveryLog() webhook.DeliveryLog {
	return webhook.DeliveryLog{
		ID:         m.ID,
		WebhookID:  m.WebhookID,
		Attempt:    m.Attempt,
		StatusCode: m.StatusCode,
		Success:    m.Success,
		Duration:   time.Duration(m.DurationMs) * time.Millisecond,
		Error:      m.Error,
		CreatedAt:  m.CreatedAt,
	}
}
