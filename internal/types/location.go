// README: Common value objects shared across modules: identifiers and grid locations.
package types

import (
	"fmt"
	"strconv"
	"strings"
)

// ID identifies an actor (driver or rider). Unique within a simulation run.
type ID string

// Location is an intersection on the city grid. Streets run in both
// directions and are numbered from zero, so a location is just a pair of
// street indices. Immutable; compare with ==.
type Location struct {
	Row    int
	Column int
}

// DistanceTo returns the Manhattan distance to other.
func (l Location) DistanceTo(other Location) int {
	return abs(other.Row-l.Row) + abs(other.Column-l.Column)
}

func (l Location) String() string {
	return fmt.Sprintf("(%d, %d)", l.Row, l.Column)
}

// ParseLocation parses a "row,column" pair as it appears in seed files.
func ParseLocation(s string) (Location, error) {
	row, col, ok := strings.Cut(s, ",")
	if !ok {
		return Location{}, fmt.Errorf("location %q: want row,column", s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(row))
	if err != nil {
		return Location{}, fmt.Errorf("location %q: bad row: %w", s, err)
	}
	c, err := strconv.Atoi(strings.TrimSpace(col))
	if err != nil {
		return Location{}, fmt.Errorf("location %q: bad column: %w", s, err)
	}
	return Location{Row: r, Column: c}, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
