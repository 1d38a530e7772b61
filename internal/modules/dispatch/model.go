// README: Driver and Rider entities and their lifecycle transitions.
package dispatch

import (
	"fmt"
	"math"

	"ridesim/internal/types"
)

// Status is a rider's lifecycle state. A rider leaves Waiting exactly
// once, to either Cancelled or Satisfied, and never reverts.
type Status string

const (
	StatusWaiting   Status = "waiting"
	StatusCancelled Status = "cancelled"
	StatusSatisfied Status = "satisfied"
)

// Rider requests a single ride from an origin to a destination and waits
// at most Patience time units before cancelling.
type Rider struct {
	ID          types.ID
	Origin      types.Location
	Destination types.Location
	Patience    int
	Status      Status
}

func NewRider(id types.ID, origin, destination types.Location, patience int) *Rider {
	return &Rider{
		ID:          id,
		Origin:      origin,
		Destination: destination,
		Patience:    patience,
		Status:      StatusWaiting,
	}
}

func (r *Rider) String() string {
	return fmt.Sprintf("%s at %s Patience: %d Destination: %s Status: %s",
		r.ID, r.Origin, r.Patience, r.Destination, r.Status)
}

// Driver carries riders around the grid. A driver is created once per
// simulation and cycles between the idle pool and drives forever.
type Driver struct {
	ID       types.ID
	Location types.Location
	Speed    int
	Idle     bool
	// Destination is set while driving (to a rider's origin) or riding
	// (to a rider's destination), nil otherwise.
	Destination *types.Location
}

// NewDriver constructs an idle driver. Speed must be positive.
func NewDriver(id types.ID, location types.Location, speed int) *Driver {
	return &Driver{ID: id, Location: location, Speed: speed, Idle: true}
}

func (d *Driver) String() string {
	return fmt.Sprintf("%s at %s Speed: %d Is available: %t",
		d.ID, d.Location, d.Speed, d.Idle)
}

// TravelTime returns how long the driver needs to reach to, rounded
// half-to-even. Every scheduling decision in the simulation uses this
// same rounding, so tie-breaks near .5 boundaries stay consistent.
func (d *Driver) TravelTime(to types.Location) int {
	return int(math.RoundToEven(float64(d.Location.DistanceTo(to)) / float64(d.Speed)))
}

// StartDrive starts driving to location and returns the travel time.
func (d *Driver) StartDrive(location types.Location) int {
	d.Idle = false
	d.Destination = &location
	return d.TravelTime(location)
}

// EndDrive arrives at the destination and returns the driver to idle.
// Precondition: a drive is in progress.
func (d *Driver) EndDrive() {
	if d.Destination == nil {
		panic(fmt.Sprintf("driver %s: EndDrive with no destination", d.ID))
	}
	d.Location = *d.Destination
	d.Destination = nil
	d.Idle = true
}

// StartRide begins carrying rider to its destination, marks the rider
// satisfied, and returns the ride's travel time. Preceding events
// guarantee the driver is already at the rider's origin.
func (d *Driver) StartRide(rider *Rider) int {
	d.Idle = false
	d.Destination = &rider.Destination
	rider.Status = StatusSatisfied
	return d.TravelTime(rider.Destination)
}

// EndRide arrives at the rider's destination and returns the driver to
// idle. Precondition: a ride is in progress.
func (d *Driver) EndRide() {
	if d.Destination == nil {
		panic(fmt.Sprintf("driver %s: EndRide with no destination", d.ID))
	}
	d.Location = *d.Destination
	d.Destination = nil
	d.Idle = true
}
