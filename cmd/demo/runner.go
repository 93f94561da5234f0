package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/SeaCloudHub/eventually/adapters/emitter"
	"github.com/SeaCloudHub/eventually/adapters/emitter/listeners"
	"github.com/SeaCloudHub/eventually/domain/event"
	"github.com/SeaCloudHub/eventually/internal/examples"
	"go.uber.org/multierr"
)

const document = `Lorem ipsum dolor sit amet, consectetur adipiscing elit.
Phasellus dapibus elit et ligula vestibulum porttitor.`

type runner struct {
	out      io.Writer
	options  []emitter.Option
	report   func(error)
	observer event.Handler
}

// Run plays every scenario and returns the failures of all of them.
func (r *runner) Run() error {
	var err error
	err = multierr.Append(err, r.police())
	err = multierr.Append(err, r.arity())
	err = multierr.Append(err, r.strict())
	err = multierr.Append(err, r.parser())

	return err
}

func (r *runner) observe(em *emitter.Emitter) error {
	if r.observer == nil {
		return nil
	}
	_, err := em.On(event.ListenerAdded, r.observer)

	return err
}

func (r *runner) police() error {
	car := examples.NewSpeedingCar(r.out, r.options...)
	if err := r.observe(car.Emitter); err != nil {
		return err
	}

	if _, err := examples.NewPoliceCar(car, r.out); err != nil {
		return err
	}

	if err := car.Stop(); err != nil {
		return err
	}

	return car.Go(100)
}

func (r *runner) arity() error {
	car := examples.NewCar(r.options...)
	if err := r.observe(car.Emitter); err != nil {
		return err
	}

	driving := event.Typed1(func(mph int) error {
		fmt.Fprintf(r.out, "The car is traveling %d mph\n", mph)
		return nil
	})
	if _, err := car.On(examples.EventDriving, listeners.Reported(driving, r.report)); err != nil {
		return err
	}

	if _, err := car.On(examples.EventStopped, event.Func0(func() error {
		fmt.Fprintln(r.out, "The car stopped")
		return nil
	})); err != nil {
		return err
	}

	_, err := car.On(examples.EventTurning, event.Func1(func(direction any) error {
		fmt.Fprintf(r.out, "Car is turning %v\n", direction)
		return nil
	}))
	var mismatch *event.ArityMismatchError
	if !errors.As(err, &mismatch) {
		return fmt.Errorf("turning listener with one argument: got %v, want arity mismatch", err)
	}
	fmt.Fprintln(r.out, err)

	if err := car.Drive(55); err != nil {
		return err
	}

	return car.Stop()
}

func (r *runner) strict() error {
	door := examples.NewDoor(r.options...)

	if _, err := door.On(examples.EventOpened, event.Func0(func() error {
		fmt.Fprintln(r.out, "door was opened")
		return nil
	})); err != nil {
		return err
	}

	if _, err := door.Once(examples.EventClosed, event.Func0(func() error {
		fmt.Fprintln(r.out, "door was closed")
		return nil
	})); err != nil {
		return err
	}

	_, err := door.On("slammed", event.Func0(func() error {
		fmt.Fprintln(r.out, "oh noes")
		return nil
	}))
	if !errors.Is(err, event.ErrUnknownEvent) {
		return fmt.Errorf("slammed listener: got %v, want unknown event", err)
	}
	fmt.Fprintln(r.out, err)

	for range 2 {
		if err := door.Open(); err != nil {
			return err
		}
		if err := door.Close(); err != nil {
			return err
		}
	}

	return nil
}

func (r *runner) parser() error {
	parser := examples.NewSentenceParser(document, r.options...)

	tally := listeners.NewTally()
	if err := tally.Track(parser.Emitter, examples.EventLine, examples.EventWord); err != nil {
		return err
	}

	if _, err := parser.On(examples.EventLine, event.Typed1(func(line string) error {
		fmt.Fprintf(r.out, "Found line with %d characters\n", len(line))
		return nil
	})); err != nil {
		return err
	}

	if err := parser.Parse(); err != nil {
		return err
	}

	fmt.Fprintf(r.out, "Parsed %d lines and %d words\n",
		tally.TotalFor(examples.EventLine), tally.TotalFor(examples.EventWord))

	return nil
}
