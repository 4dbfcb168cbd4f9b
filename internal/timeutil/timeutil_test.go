package timeutil

import (
	"testing"
	"time"
)

func date(
	year int, month time.Month, day, hour, minute int,
	z Zone,
) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, z.Location())
}

func TestWeekStart(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		zone Zone
		want time.Time
	}{
		{
			name: "midweek",
			in:   date(2025, time.September, 3, 14, 0, ZoneWIB),
			zone: ZoneWIB,
			want: date(2025, time.September, 1, 0, 0, ZoneWIB),
		},
		{
			name: "monday is its own week start",
			in:   date(2025, time.September, 1, 0, 0, ZoneWIB),
			zone: ZoneWIB,
			want: date(2025, time.September, 1, 0, 0, ZoneWIB),
		},
		{
			name: "sunday counts as day seven, not day zero",
			in:   date(2025, time.August, 31, 23, 0, ZoneWIB),
			zone: ZoneWIB,
			want: date(2025, time.August, 25, 0, 0, ZoneWIB),
		},
		{
			name: "utc instant crossing into monday in the zone",
			// 17:30 UTC on Sunday is already 00:30 Monday in WIB
			in:   time.Date(2025, time.August, 31, 17, 30, 0, 0, time.UTC),
			zone: ZoneWIB,
			want: date(2025, time.September, 1, 0, 0, ZoneWIB),
		},
		{
			name: "week start crosses a month boundary",
			in:   date(2025, time.August, 1, 9, 0, ZoneWITA),
			zone: ZoneWITA,
			want: date(2025, time.July, 28, 0, 0, ZoneWITA),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := WeekStart(tc.in, tc.zone)
			if !got.Equal(tc.want) {
				t.Errorf("WeekStart(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestWeekEnd(t *testing.T) {
	in := date(2025, time.September, 3, 14, 0, ZoneWIB)

	got := WeekEnd(in, ZoneWIB)
	want := time.Date(
		2025, time.September, 7, 23, 59, 59, 0, ZoneWIB.Location(),
	)

	if !got.Equal(want) {
		t.Errorf("WeekEnd(%v) = %v, want %v", in, got, want)
	}
}

func TestMonthBoundaries(t *testing.T) {
	// leap February
	in := date(2024, time.February, 10, 8, 0, ZoneWIT)

	start := MonthStart(in, ZoneWIT)
	wantStart := date(2024, time.February, 1, 0, 0, ZoneWIT)

	if !start.Equal(wantStart) {
		t.Errorf("MonthStart = %v, want %v", start, wantStart)
	}

	end := MonthEnd(in, ZoneWIT)
	wantEnd := time.Date(
		2024, time.February, 29, 23, 59, 59, 0, ZoneWIT.Location(),
	)

	if !end.Equal(wantEnd) {
		t.Errorf("MonthEnd = %v, want %v", end, wantEnd)
	}
}

func TestYearStart(t *testing.T) {
	in := date(2025, time.June, 15, 12, 0, ZoneWIB)

	got := YearStart(in, ZoneWIB)
	want := date(2025, time.January, 1, 0, 0, ZoneWIB)

	if !got.Equal(want) {
		t.Errorf("YearStart = %v, want %v", got, want)
	}
}

func TestIsSameDay(t *testing.T) {
	// 16:30 UTC is 23:30 of the same day in WIB but already 01:30 of the
	// next day in WIT.
	a := time.Date(2025, time.June, 10, 16, 30, 0, 0, time.UTC)
	b := time.Date(2025, time.June, 10, 17, 30, 0, 0, time.UTC)

	if IsSameDay(a, b, ZoneWIB) {
		t.Error("expected different WIB days across local midnight")
	}

	if !IsSameDay(a, b, ZoneWIT) {
		t.Error("expected the same WIT day")
	}
}

func TestZoneChangeDoesNotMutateInstants(t *testing.T) {
	instant := time.Date(2025, time.June, 10, 16, 30, 0, 0, time.UTC)

	for _, z := range Zones {
		if !instant.Equal(instant.In(z.Location())) {
			t.Errorf("instant changed when viewed in %s", z)
		}
	}
}

func TestFormatDate(t *testing.T) {
	in := date(2025, time.September, 1, 10, 0, ZoneWIB)

	got := FormatDate(in, ZoneWIB)
	want := "Senin, 1 September 2025"

	if got != want {
		t.Errorf("FormatDate = %q, want %q", got, want)
	}
}

func TestFormatRange(t *testing.T) {
	start := date(2025, time.September, 1, 0, 0, ZoneWIB)
	end := date(2025, time.September, 7, 23, 59, ZoneWIB)

	got := FormatRange(start, end, ZoneWIB)
	want := "Senin, 1 – Minggu, 7 September 2025"

	if got != want {
		t.Errorf("FormatRange = %q, want %q", got, want)
	}
}

func TestParseZone(t *testing.T) {
	if _, err := ParseZone("WITA"); err != nil {
		t.Errorf("ParseZone(WITA) unexpected error: %v", err)
	}

	if _, err := ParseZone("UTC"); err == nil {
		t.Error("ParseZone(UTC) expected an error")
	}
}
