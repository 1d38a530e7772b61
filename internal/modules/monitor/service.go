// README: Monitor records notified activities and produces the run report.
package monitor

import (
	"fmt"

	"ridesim/internal/types"
)

// Monitor keeps an ordered activity log per actor, split by category.
// It observes the simulation through Notify and never mutates its state.
type Monitor struct {
	activities map[Category]map[types.ID][]Activity
}

func New() *Monitor {
	return &Monitor{
		activities: map[Category]map[types.ID][]Activity{
			CategoryRider:  {},
			CategoryDriver: {},
		},
	}
}

// Notify appends an activity to the actor's log.
func (m *Monitor) Notify(timestamp int, category Category, action Action, id types.ID, location types.Location) {
	m.activities[category][id] = append(m.activities[category][id], Activity{
		Time:     timestamp,
		Action:   action,
		ID:       id,
		Location: location,
	})
}

// Activities returns the recorded log for one actor, in notification
// order. The returned slice is shared; callers must not modify it.
func (m *Monitor) Activities(category Category, id types.ID) []Activity {
	return m.activities[category][id]
}

func (m *Monitor) String() string {
	return fmt.Sprintf("Monitor (%d drivers, %d riders)",
		len(m.activities[CategoryDriver]), len(m.activities[CategoryRider]))
}

// Report computes the aggregate statistics for the run so far.
func (m *Monitor) Report() Report {
	return Report{
		RiderWaitTime:       m.averageWaitTime(),
		DriverTotalDistance: m.averageTotalDistance(),
		DriverRideDistance:  m.averageRideDistance(),
	}
}

// averageWaitTime averages over riders whose wait has ended. A rider's
// first activity is always the request and the second, if present, is
// the pickup or the cancellation; the gap between the two is the wait.
func (m *Monitor) averageWaitTime() float64 {
	wait, count := 0, 0
	for _, log := range m.activities[CategoryRider] {
		if len(log) >= 2 {
			wait += log[1].Time - log[0].Time
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return float64(wait) / float64(count)
}

// averageTotalDistance averages the distance covered between consecutive
// activities over all drivers.
func (m *Monitor) averageTotalDistance() float64 {
	total, count := 0, 0
	for _, log := range m.activities[CategoryDriver] {
		for i := 0; i+1 < len(log); i++ {
			total += log[i].Location.DistanceTo(log[i+1].Location)
		}
		count++
	}
	if count == 0 {
		return 0
	}
	return float64(total) / float64(count)
}

// averageRideDistance averages the with-rider distance over all drivers.
// Ride movement is exactly the leg ending in a dropoff, and a dropoff is
// never a driver's first activity.
func (m *Monitor) averageRideDistance() float64 {
	total, count := 0, 0
	for _, log := range m.activities[CategoryDriver] {
		for i := 1; i < len(log); i++ {
			if log[i].Action == ActionDropoff {
				total += log[i-1].Location.DistanceTo(log[i].Location)
			}
		}
		count++
	}
	if count == 0 {
		return 0
	}
	return float64(total) / float64(count)
}
