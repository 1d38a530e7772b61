// README: Seed-file parser tests.
package sim

import (
	"strings"
	"testing"

	"ridesim/internal/modules/dispatch"
	"ridesim/internal/types"
)

func TestParseEvents(t *testing.T) {
	input := `# seed events
0 DriverRequest Crocus 3,1 1

10 RiderRequest Cerise 4,2 1,5 15
`
	events, err := ParseEvents(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseEvents: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("parsed %d events, want 2", len(events))
	}

	dq, ok := events[0].(*DriverRequest)
	if !ok {
		t.Fatalf("first event is %T, want *DriverRequest", events[0])
	}
	if dq.Timestamp() != 0 || dq.Driver.ID != "Crocus" || dq.Driver.Speed != 1 {
		t.Errorf("driver request = %+v", dq.Driver)
	}
	if dq.Driver.Location != (types.Location{Row: 3, Column: 1}) {
		t.Errorf("driver location = %v, want (3, 1)", dq.Driver.Location)
	}

	rq, ok := events[1].(*RiderRequest)
	if !ok {
		t.Fatalf("second event is %T, want *RiderRequest", events[1])
	}
	if rq.Timestamp() != 10 || rq.Rider.ID != "Cerise" || rq.Rider.Patience != 15 {
		t.Errorf("rider request = %+v", rq.Rider)
	}
	if rq.Rider.Origin != (types.Location{Row: 4, Column: 2}) || rq.Rider.Destination != (types.Location{Row: 1, Column: 5}) {
		t.Errorf("rider route = %v -> %v", rq.Rider.Origin, rq.Rider.Destination)
	}
	if rq.Rider.Status != dispatch.StatusWaiting {
		t.Errorf("new rider status = %s, want waiting", rq.Rider.Status)
	}
}

func TestParseEventsErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"too few fields", "0 DriverRequest Crocus 3,1"},
		{"bad timestamp", "x DriverRequest Crocus 3,1 1"},
		{"negative timestamp", "-1 DriverRequest Crocus 3,1 1"},
		{"bad location", "0 DriverRequest Crocus 31 1"},
		{"bad speed", "0 DriverRequest Crocus 3,1 fast"},
		{"zero speed", "0 DriverRequest Crocus 3,1 0"},
		{"rider missing patience", "0 RiderRequest Cerise 4,2 1,5"},
		{"negative patience", "0 RiderRequest Cerise 4,2 1,5 -3"},
		{"unknown kind", "0 TaxiRequest Crocus 3,1 1"},
	}
	for _, tc := range cases {
		if _, err := ParseEvents(strings.NewReader(tc.input)); err == nil {
			t.Errorf("%s: expected a parse error", tc.name)
		}
	}
}

func TestParseEventsReportsLineNumber(t *testing.T) {
	input := "0 DriverRequest Crocus 3,1 1\n\nbogus line here\n"
	_, err := ParseEvents(strings.NewReader(input))
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("error %q does not name line 3", err)
	}
}
