// README: Seed-event file parsing: one event per well-formed input line.
package sim

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"ridesim/internal/modules/dispatch"
	"ridesim/internal/types"
)

// ParseEvents reads seed events, one per line:
//
//	<timestamp> DriverRequest <id> <row,col> <speed>
//	<timestamp> RiderRequest  <id> <row,col> <row,col> <patience>
//
// Blank lines and lines starting with # are skipped. Lines may arrive in
// any timestamp order; the engine sorts on ingestion. A malformed line
// fails the whole parse with an error naming the line number: the engine
// never partially processes bad input.
func ParseEvents(r io.Reader) ([]Event, error) {
	var events []Event
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ev, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
		events = append(events, ev)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading events: %w", err)
	}
	return events, nil
}

// LoadEvents parses the seed file at path.
func LoadEvents(path string) ([]Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open events file: %w", err)
	}
	defer f.Close()

	events, err := ParseEvents(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return events, nil
}

func parseLine(line string) (Event, error) {
	tokens := strings.Fields(line)
	if len(tokens) < 5 {
		return nil, fmt.Errorf("want at least 5 fields, got %d", len(tokens))
	}

	timestamp, err := strconv.Atoi(tokens[0])
	if err != nil {
		return nil, fmt.Errorf("bad timestamp %q: %w", tokens[0], err)
	}
	if timestamp < 0 {
		return nil, fmt.Errorf("negative timestamp %d", timestamp)
	}
	kind := tokens[1]
	id := types.ID(tokens[2])
	location, err := types.ParseLocation(tokens[3])
	if err != nil {
		return nil, err
	}

	switch kind {
	case "DriverRequest":
		speed, err := strconv.Atoi(tokens[4])
		if err != nil {
			return nil, fmt.Errorf("bad speed %q: %w", tokens[4], err)
		}
		if speed <= 0 {
			return nil, fmt.Errorf("speed must be positive, got %d", speed)
		}
		return NewDriverRequest(timestamp, dispatch.NewDriver(id, location, speed)), nil

	case "RiderRequest":
		if len(tokens) < 6 {
			return nil, fmt.Errorf("rider request wants destination and patience")
		}
		destination, err := types.ParseLocation(tokens[4])
		if err != nil {
			return nil, err
		}
		patience, err := strconv.Atoi(tokens[5])
		if err != nil {
			return nil, fmt.Errorf("bad patience %q: %w", tokens[5], err)
		}
		if patience < 0 {
			return nil, fmt.Errorf("patience must not be negative, got %d", patience)
		}
		return NewRiderRequest(timestamp, dispatch.NewRider(id, location, destination, patience)), nil
	}
	return nil, fmt.Errorf("unknown event kind %q", kind)
}
