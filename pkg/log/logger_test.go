package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/majisoubhik01/missingval/pkg/errors"
)

func TestToLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ToLogLevel("debug"))
	assert.Equal(t, slog.LevelInfo, ToLogLevel("info"))
	assert.Equal(t, slog.LevelWarn, ToLogLevel("warn"))
	assert.Equal(t, slog.LevelError, ToLogLevel("error"))
	assert.Panics(t, func() { ToLogLevel("verbose") })
}

func TestErrFmtHandlerAddsStacktrace(t *testing.T) {
	var buf bytes.Buffer
	handler := WrapByErrFmtHandler(slog.NewJSONHandler(&buf, nil))
	logger := slog.New(handler)

	err := errors.NewEmptyColumnError("SimpleImputer.Fit", 2)
	logger.Error("imputation failed", ErrAttr(err))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Contains(t, record, StacktraceAttrKey)
	assert.Contains(t, record, ErrAttrKey)
}

func TestErrFmtHandlerPassesThroughPlainRecords(t *testing.T) {
	var buf bytes.Buffer
	handler := WrapByErrFmtHandler(slog.NewJSONHandler(&buf, nil))

	require.True(t, handler.Enabled(context.Background(), slog.LevelInfo))

	logger := slog.New(handler)
	logger.Info("rows dropped", RowsDroppedKey, 376)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.NotContains(t, record, StacktraceAttrKey)
	assert.Equal(t, float64(376), record[RowsDroppedKey])
}

func TestInstallZerologWarnSink(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	InstallZerologWarnSink(logger)
	defer errors.SetZerologWarnFunc(nil)

	errors.Warn(errors.NewDegenerateDataWarning("DropIncompleteRows", 768, 3))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "warn", record["level"])
	assert.Equal(t, "DropIncompleteRows", record["operation"])
	assert.Equal(t, float64(768), record["rows"])
	assert.Equal(t, float64(3), record["kept"])
}
