package logging

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	l := New("debug", "text")
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, l.Formatter)

	l = New("loud", "json")
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, l.Formatter)
}

func TestLogError(t *testing.T) {
	logger, hook := test.NewNullLogger()

	LogError(logger, "feed", "Ingest", "decode push message", "{bad", errors.New("malformed"))
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "malformed", entry.Message)
	assert.Equal(t, "feed", entry.Data["module"])
	assert.Equal(t, "{bad", entry.Data["data"])

	LogError(logger, "ws", "Run", "dial", nil, errors.New("refused"))
	_, ok := hook.LastEntry().Data["data"]
	assert.False(t, ok)
}
