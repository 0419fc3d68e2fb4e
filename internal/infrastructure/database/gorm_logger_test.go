package database

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func bufferedLogger(level logger.LogLevel) (logger.Interface, *bytes.Buffer) {
	var buf bytes.Buffer
	h := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return newGormLogger(slog.New(h), level), &buf
}

func query() (string, int64) { return "SELECT * FROM posts", 0 }

func TestGormLogger_Trace(t *testing.T) {
	ctx := context.Background()

	l, buf := bufferedLogger(logger.Error)
	l.Trace(ctx, time.Now(), query, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String(), "a missing row is not an error")

	l.Trace(ctx, time.Now(), query, errors.New("disk I/O error"))
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
	assert.Contains(t, buf.String(), "disk I/O error")
	assert.Contains(t, buf.String(), `"component":"gorm"`)

	l, buf = bufferedLogger(logger.Warn)
	l.Trace(ctx, time.Now(), query, nil)
	assert.Empty(t, buf.String())
	l.Trace(ctx, time.Now().Add(-time.Second), query, nil)
	assert.Contains(t, buf.String(), "slow query")

	l, buf = bufferedLogger(logger.Info)
	l.Trace(ctx, time.Now(), query, nil)
	assert.Contains(t, buf.String(), `"level":"DEBUG"`)
	assert.Contains(t, buf.String(), "SELECT * FROM posts")

	silent := l.LogMode(logger.Silent)
	buf.Reset()
	silent.Trace(ctx, time.Now(), query, errors.New("boom"))
	silent.Error(ctx, "boom %d", 1)
	assert.Empty(t, buf.String())
}

func TestOpenSQL_MissingRowIsQuiet(t *testing.T) {
	var buf bytes.Buffer
	db, err := OpenSQL(SQLOptions{
		Driver:       DriverSQLite,
		DSN:          "file:gorm_logger_quiet?mode=memory&cache=shared",
		LogLevel:     "error",
		MaxOpenConns: 1,
		Logger:       slog.New(slog.NewJSONHandler(&buf, nil)),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = CloseSQL(db) })

	type note struct {
		ID   uint
		Body string
	}
	require.NoError(t, db.AutoMigrate(&note{}))

	var n note
	err = db.Take(&n, 42).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())
}
