package main

import (
	"bytes"
	"testing"

	"github.com/SeaCloudHub/eventually/adapters/emitter"
	"github.com/SeaCloudHub/eventually/adapters/emitter/listeners"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRunner_Run(t *testing.T) {
	var out, warnings bytes.Buffer
	var reported []error

	r := &runner{
		out:     &out,
		options: []emitter.Option{emitter.WithOutput(&warnings)},
		report:  func(err error) { reported = append(reported, err) },
	}

	require.NoError(t, r.Run())

	got := out.String()
	assert.Contains(t, got, "Car is stopped\nCHOMP\nCar is driving 100 mph\nARREST THEM!\n")
	assert.Contains(t, got, "arity validation failed for event :turning (expected 3, received 1)\n")
	assert.Contains(t, got, "The car is traveling 55 mph\nThe car stopped\n")
	assert.Contains(t, got, "event type :slammed will not be emitted. Use Door.Emits(:slammed)\n")
	assert.Contains(t, got, "door was opened\ndoor was closed\ndoor was opened\n")
	assert.NotContains(t, got, "oh noes")
	assert.Contains(t, got, "Parsed 2 lines and 15 words\n")
	assert.Empty(t, warnings.String())
	assert.Empty(t, reported)
}

func TestRunner_Observer(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	r := &runner{
		out:      &bytes.Buffer{},
		options:  []emitter.Option{emitter.WithOutput(&bytes.Buffer{})},
		observer: listeners.NewRegistrationLogger(zap.New(core).Sugar()),
	}

	require.NoError(t, r.police())

	// the observer itself, then the two police car listeners
	assert.Equal(t, 3, logs.FilterMessage("listener added").Len())
}
