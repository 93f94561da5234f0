package listeners_test

import (
	"bytes"
	"testing"

	"github.com/SeaCloudHub/eventually/adapters/emitter"
	"github.com/SeaCloudHub/eventually/adapters/emitter/listeners"
	"github.com/SeaCloudHub/eventually/domain/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRegistrationLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := listeners.NewRegistrationLogger(zap.New(core).Sugar())

	em := emitter.New(event.NewDeclaration("Car"), emitter.WithOutput(&bytes.Buffer{}))
	_, err := em.On(logger.EventName(), logger)
	require.NoError(t, err)

	cbk, err := em.Once("stopped", event.Func0(func() error { return nil }))
	require.NoError(t, err)

	entries := logs.FilterMessage("listener added").All()
	require.Len(t, entries, 2)

	fields := entries[1].ContextMap()
	assert.Equal(t, cbk.ID().String(), fields["listener_id"])
	assert.Equal(t, int64(0), fields["arity"])
	assert.Equal(t, "once", fields["availability"])
}

func TestRegistrationLogger_IgnoresOtherPayloads(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := listeners.NewRegistrationLogger(zap.New(core).Sugar())

	assert.NoError(t, logger.Invoke())
	assert.NoError(t, logger.Invoke("not a callable"))
	assert.Zero(t, logs.Len())
}
