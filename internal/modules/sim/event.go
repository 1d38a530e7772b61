// README: The closed set of simulation events and their state transitions.
package sim

import (
	"fmt"

	"ridesim/internal/modules/dispatch"
	"ridesim/internal/modules/monitor"
	"ridesim/internal/types"
)

// Notifier receives every state change, in the order it happens. The
// monitor implements it; the engine only ever calls it, never reads it.
type Notifier interface {
	Notify(timestamp int, category monitor.Category, action monitor.Action, id types.ID, location types.Location)
}

// Event is an immutable command scheduled for a point in simulated time.
// Do applies the event's transition against the dispatcher, reports to
// the sink, and returns any newly scheduled events. Events execute
// atomically: the engine never interleaves two Do calls.
//
// The variant set is closed; isEvent keeps implementations inside this
// package so the protocol cannot grow by accident.
type Event interface {
	Timestamp() int
	Do(d *dispatch.Dispatcher, sink Notifier) []Event
	fmt.Stringer
	isEvent()
}

type base struct {
	time int
}

func (b base) Timestamp() int { return b.time }
func (base) isEvent()         {}

// RiderRequest is a rider entering the system and asking for a driver.
type RiderRequest struct {
	base
	Rider *dispatch.Rider
}

func NewRiderRequest(timestamp int, rider *dispatch.Rider) *RiderRequest {
	return &RiderRequest{base{timestamp}, rider}
}

// Do assigns the rider a driver, or queues the rider if none is idle.
// Whatever happens, the rider's patience clock starts: a Cancellation is
// scheduled unconditionally and checks status when it fires.
func (e *RiderRequest) Do(d *dispatch.Dispatcher, sink Notifier) []Event {
	sink.Notify(e.time, monitor.CategoryRider, monitor.ActionRequest, e.Rider.ID, e.Rider.Origin)

	var events []Event
	if driver := d.RequestDriver(e.Rider); driver != nil {
		travel := driver.StartDrive(e.Rider.Origin)
		events = append(events, NewPickup(e.time+travel, e.Rider, driver))
	}
	events = append(events, NewCancellation(e.time+e.Rider.Patience, e.Rider))
	return events
}

func (e *RiderRequest) String() string {
	return fmt.Sprintf("%d -- %s: Request a driver", e.time, e.Rider.ID)
}

// DriverRequest is a driver asking for a rider, either on first arrival
// or after finishing a drive.
type DriverRequest struct {
	base
	Driver *dispatch.Driver
}

func NewDriverRequest(timestamp int, driver *dispatch.Driver) *DriverRequest {
	return &DriverRequest{base{timestamp}, driver}
}

// Do assigns the longest-waiting rider to the driver. With nobody
// waiting the dispatcher registers the driver idle and nothing is
// scheduled.
func (e *DriverRequest) Do(d *dispatch.Dispatcher, sink Notifier) []Event {
	sink.Notify(e.time, monitor.CategoryDriver, monitor.ActionRequest, e.Driver.ID, e.Driver.Location)

	rider := d.RequestRider(e.Driver)
	if rider == nil {
		return nil
	}
	travel := e.Driver.StartDrive(rider.Origin)
	return []Event{NewPickup(e.time+travel, rider, e.Driver)}
}

func (e *DriverRequest) String() string {
	return fmt.Sprintf("%d -- %s: Request a rider", e.time, e.Driver.ID)
}

// Cancellation fires when a rider's patience runs out, at request time
// plus patience.
type Cancellation struct {
	base
	Rider *dispatch.Rider
}

func NewCancellation(timestamp int, rider *dispatch.Rider) *Cancellation {
	return &Cancellation{base{timestamp}, rider}
}

// Do cancels the rider if it is still waiting. A rider picked up before
// its patience expired stays satisfied; the event is then a no-op beyond
// the notification. A still-queued rider also leaves the waiting list;
// a rider with a driver already committed is not on the list.
func (e *Cancellation) Do(d *dispatch.Dispatcher, sink Notifier) []Event {
	sink.Notify(e.time, monitor.CategoryRider, monitor.ActionCancel, e.Rider.ID, e.Rider.Origin)

	if e.Rider.Status == dispatch.StatusWaiting {
		e.Rider.Status = dispatch.StatusCancelled
		if d.IsWaiting(e.Rider) {
			d.CancelRide(e.Rider)
		}
	}
	return nil
}

func (e *Cancellation) String() string {
	return fmt.Sprintf("%d -- %s: Cancel the request", e.time, e.Rider.ID)
}

// Pickup fires when a driver arrives at the rider's origin.
type Pickup struct {
	base
	Rider  *dispatch.Rider
	Driver *dispatch.Driver
}

func NewPickup(timestamp int, rider *dispatch.Rider, driver *dispatch.Driver) *Pickup {
	return &Pickup{base{timestamp}, rider, driver}
}

// Do ends the drive and, if the rider is still waiting, starts the ride
// and schedules the Dropoff. A rider that cancelled in the meantime
// stood the driver up: the driver re-requests at the same timestamp and
// goes back into circulation.
func (e *Pickup) Do(d *dispatch.Dispatcher, sink Notifier) []Event {
	sink.Notify(e.time, monitor.CategoryDriver, monitor.ActionPickup, e.Driver.ID, *e.Driver.Destination)
	sink.Notify(e.time, monitor.CategoryRider, monitor.ActionPickup, e.Rider.ID, e.Rider.Origin)

	e.Driver.EndDrive()

	switch e.Rider.Status {
	case dispatch.StatusWaiting:
		travel := e.Driver.StartRide(e.Rider)
		return []Event{NewDropoff(e.time+travel, e.Rider, e.Driver)}
	case dispatch.StatusCancelled:
		return []Event{NewDriverRequest(e.time, e.Driver)}
	}
	return nil
}

func (e *Pickup) String() string {
	return fmt.Sprintf("%d -- %s: Pick up %s", e.time, e.Driver.ID, e.Rider.ID)
}

// Dropoff fires when a driver arrives at the rider's destination.
type Dropoff struct {
	base
	Rider  *dispatch.Rider
	Driver *dispatch.Driver
}

func NewDropoff(timestamp int, rider *dispatch.Rider, driver *dispatch.Driver) *Dropoff {
	return &Dropoff{base{timestamp}, rider, driver}
}

// Do ends the ride; the driver immediately requests a new rider.
func (e *Dropoff) Do(d *dispatch.Dispatcher, sink Notifier) []Event {
	sink.Notify(e.time, monitor.CategoryDriver, monitor.ActionDropoff, e.Driver.ID, *e.Driver.Destination)

	e.Driver.EndRide()
	return []Event{NewDriverRequest(e.time, e.Driver)}
}

func (e *Dropoff) String() string {
	return fmt.Sprintf("%d -- %s: Drop off %s", e.time, e.Driver.ID, e.Rider.ID)
}
