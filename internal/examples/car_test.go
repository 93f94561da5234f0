package examples_test

import (
	"bytes"
	"testing"

	"github.com/SeaCloudHub/eventually/adapters/emitter"
	"github.com/SeaCloudHub/eventually/domain/event"
	"github.com/SeaCloudHub/eventually/internal/examples"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quiet() emitter.Option {
	return emitter.WithOutput(&bytes.Buffer{})
}

func TestCar(t *testing.T) {
	t.Run("it should declare arities for every event", func(t *testing.T) {
		decl := event.For[examples.Car]()

		assert.Equal(t, "Car", decl.Name())
		for name, want := range map[string]int{
			examples.EventDriving: 1,
			examples.EventStopped: 0,
			examples.EventTurning: 3,
		} {
			policy, ok := decl.PolicyOf(name)
			require.True(t, ok, name)
			assert.Equal(t, event.Exact(want), policy, name)
		}
	})

	t.Run("it should deliver the turning payload", func(t *testing.T) {
		car := examples.NewCar(quiet())
		var got []any
		_, err := car.On(examples.EventTurning, event.Func3(func(direction, degrees, signaled any) error {
			got = []any{direction, degrees, signaled}
			return nil
		}))
		require.NoError(t, err)

		require.NoError(t, car.Turn("left", 90, true))
		assert.Equal(t, []any{"left", 90, true}, got)
	})

	t.Run("it should reject a listener of the wrong arity", func(t *testing.T) {
		car := examples.NewCar(quiet())

		_, err := car.On(examples.EventTurning, event.Func1(func(any) error { return nil }))

		assert.EqualError(t, err, "arity validation failed for event :turning (expected 3, received 1)")
	})

	t.Run("it should reject a two-argument driving listener", func(t *testing.T) {
		car := examples.NewCar(quiet())

		_, err := car.On(examples.EventDriving, event.Func2(func(any, any) error { return nil }))

		var mismatch *event.ArityMismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, examples.EventDriving, mismatch.Event)
		assert.Equal(t, 1, mismatch.Expected)
		assert.Equal(t, 2, mismatch.Received)
		assert.Empty(t, car.Listeners(examples.EventDriving))
	})

	t.Run("it should keep listeners per instance", func(t *testing.T) {
		a, b := examples.NewCar(quiet()), examples.NewCar(quiet())
		_, _ = a.On(examples.EventStopped, event.Func0(func() error { return nil }))

		assert.Equal(t, 1, a.NumListeners())
		assert.Zero(t, b.NumListeners())
		assert.Same(t, a.Declaration(), b.Declaration())
	})
}

func TestSpeedingCar(t *testing.T) {
	var out bytes.Buffer
	car := examples.NewSpeedingCar(&out, quiet())
	police, err := examples.NewPoliceCar(car, &out)
	require.NoError(t, err)

	require.NoError(t, car.Go(50))
	require.NoError(t, car.Go(100))
	require.NoError(t, car.Stop())

	assert.Equal(t, 1, police.Arrests)
	assert.Equal(t, "Car is driving 50 mph\nCHOMP\n"+
		"Car is driving 100 mph\nARREST THEM!\n"+
		"Car is stopped\nCHOMP\n", out.String())
}

func TestDoor(t *testing.T) {
	t.Run("it should reject undeclared events", func(t *testing.T) {
		door := examples.NewDoor(quiet())

		_, err := door.On("slammed", event.Func0(func() error { return nil }))

		assert.EqualError(t, err, "event type :slammed will not be emitted. Use Door.Emits(:slammed)")
		assert.ErrorIs(t, door.Emit("slammed"), event.ErrUnknownEvent)
	})

	t.Run("it should fire a one-shot listener once", func(t *testing.T) {
		door := examples.NewDoor(quiet())
		closed := 0
		_, err := door.Once(examples.EventClosed, event.Func0(func() error { closed++; return nil }))
		require.NoError(t, err)

		for i := 0; i < 2; i++ {
			require.NoError(t, door.Open())
			require.NoError(t, door.Close())
		}

		assert.Equal(t, 1, closed)
		assert.Empty(t, door.Listeners(examples.EventClosed))
	})
}

func TestSentenceParser(t *testing.T) {
	parser := examples.NewSentenceParser("the quick brown\r\nfox jumps", quiet())
	var lines, words []string
	_, err := parser.On(examples.EventLine, event.Typed1(func(l string) error {
		lines = append(lines, l)
		return nil
	}))
	require.NoError(t, err)
	_, err = parser.On(examples.EventWord, event.Typed1(func(w string) error {
		words = append(words, w)
		return nil
	}))
	require.NoError(t, err)

	require.NoError(t, parser.Parse())

	assert.Equal(t, []string{"the quick brown", "fox jumps"}, lines)
	assert.Equal(t, []string{"the", "quick", "brown", "fox", "jumps"}, words)
}
