// README: Location value-type tests.
package types

import "testing"

func TestDistanceTo(t *testing.T) {
	cases := []struct {
		a, b Location
		want int
	}{
		{Location{0, 0}, Location{0, 0}, 0},
		{Location{0, 0}, Location{5, 4}, 9},
		{Location{5, 4}, Location{0, 0}, 9},
		{Location{10, 10}, Location{7, 1}, 12},
		{Location{-2, 3}, Location{1, -1}, 7},
	}
	for _, tc := range cases {
		if got := tc.a.DistanceTo(tc.b); got != tc.want {
			t.Errorf("%v.DistanceTo(%v) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestParseLocation(t *testing.T) {
	cases := []struct {
		in      string
		want    Location
		wantErr bool
	}{
		{"1,1", Location{1, 1}, false},
		{"2,5674", Location{2, 5674}, false},
		{"0, 7", Location{0, 7}, false},
		{"12", Location{}, true},
		{"a,b", Location{}, true},
		{"3,", Location{}, true},
	}
	for _, tc := range cases {
		got, err := ParseLocation(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseLocation(%q): expected error, got %v", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseLocation(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseLocation(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestLocationString(t *testing.T) {
	if got := (Location{3, 2}).String(); got != "(3, 2)" {
		t.Errorf("String() = %q, want (3, 2)", got)
	}
}
