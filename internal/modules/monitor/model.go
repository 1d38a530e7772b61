// README: Activity records and report types for the simulation monitor.
package monitor

import "ridesim/internal/types"

// Category says who performed an activity.
type Category string

const (
	CategoryRider  Category = "rider"
	CategoryDriver Category = "driver"
)

// Action says what happened.
type Action string

const (
	ActionRequest Action = "request"
	ActionCancel  Action = "cancel"
	ActionPickup  Action = "pickup"
	ActionDropoff Action = "dropoff"
)

// Activity is one recorded state change. Activities are only ever
// appended to a per-actor log, never removed.
type Activity struct {
	Time     int
	Action   Action
	ID       types.ID
	Location types.Location
}

// Report aggregates a finished run. Wait time averages over riders whose
// wait ended (picked up or cancelled); the distance averages are over all
// drivers, including ones that never moved.
type Report struct {
	RiderWaitTime       float64 `json:"rider_wait_time"`
	DriverTotalDistance float64 `json:"driver_total_distance"`
	DriverRideDistance  float64 `json:"driver_ride_distance"`
}
