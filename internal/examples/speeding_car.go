package examples

import (
	"fmt"
	"io"

	"github.com/SeaCloudHub/eventually/adapters/emitter"
	"github.com/SeaCloudHub/eventually/domain/event"
)

const SpeedLimit = 65

func init() {
	event.For[SpeedingCar]().Emits(EventStopped, EventDriving)
}

type SpeedingCar struct {
	*emitter.Emitter

	out io.Writer
}

func NewSpeedingCar(out io.Writer, options ...emitter.Option) *SpeedingCar {
	return &SpeedingCar{
		Emitter: emitter.New(event.For[SpeedingCar](), options...),
		out:     out,
	}
}

func (c *SpeedingCar) Stop() error {
	fmt.Fprintln(c.out, "Car is stopped")
	return c.Emit(EventStopped)
}

func (c *SpeedingCar) Go(mph int) error {
	fmt.Fprintf(c.out, "Car is driving %d mph\n", mph)
	return c.Emit(EventDriving, mph)
}

// PoliceCar listens to a SpeedingCar through method values.
type PoliceCar struct {
	out     io.Writer
	Arrests int
}

func NewPoliceCar(car *SpeedingCar, out io.Writer) (*PoliceCar, error) {
	p := &PoliceCar{out: out}

	if _, err := car.On(EventStopped, event.Func0(p.eatDonut)); err != nil {
		return nil, err
	}
	if _, err := car.On(EventDriving, event.Typed1(p.arrestIfSpeeding)); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *PoliceCar) eatDonut() error {
	fmt.Fprintln(p.out, "CHOMP")
	return nil
}

func (p *PoliceCar) arrestIfSpeeding(mph int) error {
	if mph <= SpeedLimit {
		return p.eatDonut()
	}

	p.Arrests++
	fmt.Fprintln(p.out, "ARREST THEM!")

	return nil
}
