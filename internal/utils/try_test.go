package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/suchimauz/goodx-diary-web/internal/core/ports/out"
)

type recordingLogger struct {
	events []string
	fields []out.LogFields
}

func (l *recordingLogger) Debug(event string, fields out.LogFields) {}
func (l *recordingLogger) Info(event string, fields out.LogFields)  {}
func (l *recordingLogger) Warn(event string, fields out.LogFields)  {}
func (l *recordingLogger) Error(event string, fields out.LogFields) {
	l.events = append(l.events, event)
	l.fields = append(l.fields, fields)
}
func (l *recordingLogger) WithFields(fields out.LogFields) out.LoggerPort { return l }
func (l *recordingLogger) WithModule(module string) out.LoggerPort       { return l }

func TestTry_Success(t *testing.T) {
	logger := &recordingLogger{}

	result := Try(logger, "GET /diary", func() (int, error) {
		return 42, nil
	})

	assert.False(t, result.Failed())
	assert.Equal(t, 42, result.Data)
	assert.Empty(t, logger.events)
}

func TestTry_Error(t *testing.T) {
	logger := &recordingLogger{}
	boom := errors.New("boom")

	result := Try(logger, "GET /diary", func() ([]string, error) {
		return []string{"partial"}, boom
	})

	data, err := result.Unwrap()
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, data)
	assert.Equal(t, []string{"try.failed"}, logger.events)
	assert.Equal(t, "GET /diary", logger.fields[0]["operation"])
}

func TestTry_Panic(t *testing.T) {
	logger := &recordingLogger{}

	result := Try(logger, "POST /booking", func() (int, error) {
		panic("unexpected")
	})

	assert.True(t, result.Failed())
	assert.EqualError(t, result.Err, "panic: unexpected")
	assert.Len(t, logger.events, 1)
}

func TestTry_NoLabelDoesNotLog(t *testing.T) {
	logger := &recordingLogger{}

	result := Try(logger, "", func() (int, error) {
		return 0, errors.New("silent")
	})

	assert.True(t, result.Failed())
	assert.Empty(t, logger.events)
}
