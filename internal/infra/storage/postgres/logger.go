package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/txtracker/internal/pkg/logger"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// gormLogger routes gorm output through the application logger. Queries
// are logged at debug level, slow ones at warn.
type gormLogger struct {
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

func newGormLogger(slowThreshold time.Duration) *gormLogger {
	return &gormLogger{level: gormlogger.Warn, slowThreshold: slowThreshold}
}

func (l *gormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *gormLogger) Info(ctx context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Info {
		logger.Info(ctx, fmt.Sprintf(msg, args...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Warn {
		logger.Warn(ctx, fmt.Sprintf(msg, args...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Error {
		logger.Error(ctx, fmt.Sprintf(msg, args...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= gormlogger.Error:
		sql, rows := fc()
		logger.Error(ctx, "postgres query failed", "db.statement", sql, "db.rows", rows, "db.duration", elapsed.String(), "error", err)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= gormlogger.Warn:
		sql, rows := fc()
		logger.Warn(ctx, "slow postgres query", "db.statement", sql, "db.rows", rows, "db.duration", elapsed.String())
	case l.level >= gormlogger.Info:
		sql, rows := fc()
		logger.Debug(ctx, "postgres query", "db.statement", sql, "db.rows", rows, "db.duration", elapsed.String())
	}
}

var _ gormlogger.Interface = (*gormLogger)(nil)
