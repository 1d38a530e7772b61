// README: Dispatcher matches idle drivers to waiting riders.
package dispatch

import (
	"fmt"
	"strings"

	"ridesim/internal/container"
)

// Dispatcher holds the pool of idle drivers and the list of waiting
// riders. A driver is in the idle pool iff it is idle with no pending
// assignment; a rider is on the waiting list iff it is still waiting and
// no driver has been committed to it. Nobody appears in both.
//
// Riders are served in arrival order: there is no useful discriminator
// among waiting riders other than how long they have waited. Drivers are
// picked by travel time rather than raw distance because speed varies
// per driver.
type Dispatcher struct {
	idleDrivers   *container.Queue[*Driver]
	waitingRiders *container.Queue[*Rider]
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		idleDrivers:   container.NewQueue[*Driver](),
		waitingRiders: container.NewQueue[*Rider](),
	}
}

// RequestDriver returns the idle driver that can reach rider's origin
// soonest, or nil if none is available, in which case the rider joins
// the waiting list. Ties on travel time go to the driver that entered
// the idle pool first: a later driver displaces the current best only on
// strict improvement.
func (d *Dispatcher) RequestDriver(rider *Rider) *Driver {
	if d.idleDrivers.IsEmpty() {
		d.waitingRiders.Push(rider)
		return nil
	}
	if d.idleDrivers.Len() == 1 {
		return d.idleDrivers.Pop()
	}

	best := d.idleDrivers.PeekFirst()
	bestTime := best.TravelTime(rider.Origin)
	d.idleDrivers.All(func(candidate *Driver) bool {
		if t := candidate.TravelTime(rider.Origin); t < bestTime {
			best = candidate
			bestTime = t
		}
		return true
	})

	// The winner is not necessarily at the front of the pool.
	d.idleDrivers.RemoveValue(best)
	return best
}

// RequestRider returns the longest-waiting rider, or nil if nobody is
// waiting, in which case the driver is registered into the idle pool.
// Registration here also covers a driver's first request.
func (d *Dispatcher) RequestRider(driver *Driver) *Rider {
	if d.waitingRiders.IsEmpty() {
		d.idleDrivers.Push(driver)
		return nil
	}
	return d.waitingRiders.Pop()
}

// CancelRide removes rider from the waiting list.
// Precondition: the rider is on the waiting list.
func (d *Dispatcher) CancelRide(rider *Rider) {
	if !d.waitingRiders.RemoveValue(rider) {
		panic(fmt.Sprintf("dispatcher: CancelRide for rider %s not on the waiting list", rider.ID))
	}
}

// IsWaiting reports whether rider is on the waiting list. A rider whose
// status is still Waiting may legitimately be absent: a driver already
// committed to it and is on the way.
func (d *Dispatcher) IsWaiting(rider *Rider) bool {
	return d.waitingRiders.Contains(rider)
}

// IdleDrivers returns the size of the idle pool.
func (d *Dispatcher) IdleDrivers() int {
	return d.idleDrivers.Len()
}

// WaitingRiders returns the size of the waiting list.
func (d *Dispatcher) WaitingRiders() int {
	return d.waitingRiders.Len()
}

func (d *Dispatcher) String() string {
	var b strings.Builder
	b.WriteString("Available Drivers:\n")
	d.idleDrivers.All(func(dr *Driver) bool {
		fmt.Fprintln(&b, dr)
		return true
	})
	b.WriteString("Waiting Riders:\n")
	d.waitingRiders.All(func(r *Rider) bool {
		fmt.Fprintln(&b, r)
		return true
	})
	return b.String()
}
