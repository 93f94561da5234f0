package logger_test

import (
	"fmt"
	"testing"

	"github.com/SeaCloudHub/eventually/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogger(t *testing.T) {
	l, err := logger.NewLogger("warn", false)
	require.NoError(t, err)
	assert.False(t, l.Desugar().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Desugar().Core().Enabled(zapcore.WarnLevel))

	_, err = logger.NewLogger("loud", false)
	assert.Error(t, err)
}

func TestWriter(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	w := logger.Writer(zap.New(core).Sugar(), zapcore.WarnLevel)

	_, err := fmt.Fprintln(w, "Warning: Car has more than 10 registered listeners.")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "Warning: Car has more than 10 registered listeners.", entries[0].Message)
}
