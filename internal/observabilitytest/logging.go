package observabilitytest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/require"

	"github.com/wandb/wandb/containers/internal/sentry_ext"
	"github.com/wandb/wandb/containers/pkg/observability"
)

// NewTestLogger returns a logger that's captured by the testing framework.
//
// Messages at or above DEBUG level are displayed in the test output on
// failure.
func NewTestLogger(t *testing.T) *observability.CoreLogger {
	t.Helper()
	return observability.NewCoreLogger(
		slog.New(slog.NewJSONHandler(t.Output(), debugLevel())),
		nil,
	)
}

// NewRecordingTestLogger is like NewTestLogger but also returns a buffer
// that captures log messages.
func NewRecordingTestLogger(t *testing.T) (
	*observability.CoreLogger,
	*bytes.Buffer,
) {
	t.Helper()

	recordedLogs := &bytes.Buffer{}
	writer := io.MultiWriter(t.Output(), recordedLogs)

	return observability.NewCoreLogger(
		slog.New(slog.NewJSONHandler(writer, debugLevel())),
		nil,
	), recordedLogs
}

// NewSentryTestLogger is like NewRecordingTestLogger but also returns a
// mock Sentry transport for checking captured events.
func NewSentryTestLogger(t *testing.T) (
	*observability.CoreLogger,
	*bytes.Buffer,
	*sentry.MockTransport,
) {
	t.Helper()

	recordedLogs := &bytes.Buffer{}
	writer := io.MultiWriter(t.Output(), recordedLogs)

	transport := &sentry.MockTransport{}
	client := sentry_ext.New(sentry_ext.Params{Transport: transport})
	require.NotNil(t, client)

	return observability.NewCoreLogger(
		slog.New(slog.NewJSONHandler(writer, debugLevel())),
		&observability.CoreLoggerParams{Sentry: client},
	), recordedLogs, transport
}

// ExtractLogs extracts structured logs from a recording logger's buffer.
//
// The "time" key is dropped and every value is formatted as a string.
// Records always contain "level" and "msg" plus custom slog attrs.
func ExtractLogs(t *testing.T, buf *bytes.Buffer) []map[string]string {
	t.Helper()
	records := make([]map[string]string, 0)

	// The JSONHandler escapes newlines, so the only actual newlines
	// separate records.
	for line := range bytes.Lines(buf.Bytes()) {
		var raw map[string]any
		require.NoError(t, json.Unmarshal(line, &raw))

		delete(raw, "time")

		record := make(map[string]string, len(raw))
		for key, value := range raw {
			record[key] = fmt.Sprint(value)
		}

		records = append(records, record)
	}

	return records
}

func debugLevel() *slog.HandlerOptions {
	return &slog.HandlerOptions{Level: slog.LevelDebug}
}
