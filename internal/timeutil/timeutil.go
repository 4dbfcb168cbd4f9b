// Package timeutil provides civil time boundaries and formatting for the
// three Indonesian presentation zones.
package timeutil

import (
	"fmt"
	"time"
)

// Zone is one of the three fixed civil zones used to present and bucket
// stored instants. Stored timestamps are always absolute; only formatting
// and aggregation are zone-sensitive.
type Zone string

const (
	ZoneWIB  Zone = "WIB"  // Waktu Indonesia Barat, UTC+7
	ZoneWITA Zone = "WITA" // Waktu Indonesia Tengah, UTC+8
	ZoneWIT  Zone = "WIT"  // Waktu Indonesia Timur, UTC+9
)

// DefaultZone is used when no zone has been configured.
const DefaultZone = ZoneWIB

const (
	daysInAWeek     = 7
	secondsInAnHour = 3600
)

var zoneOffsets = map[Zone]int{
	ZoneWIB:  7,
	ZoneWITA: 8,
	ZoneWIT:  9,
}

var zoneNames = map[Zone]string{
	ZoneWIB:  "Waktu Indonesia Barat",
	ZoneWITA: "Waktu Indonesia Tengah",
	ZoneWIT:  "Waktu Indonesia Timur",
}

// Zones lists the supported zones in western-to-eastern order.
var Zones = []Zone{ZoneWIB, ZoneWITA, ZoneWIT}

var dayNames = []string{
	"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu",
}

var monthNames = []string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// Valid reports whether z is one of the supported zones.
func (z Zone) Valid() bool {
	_, ok := zoneOffsets[z]
	return ok
}

// Location returns the fixed-offset location for the zone. Unknown zones
// fall back to the default.
func (z Zone) Location() *time.Location {
	offset, ok := zoneOffsets[z]
	if !ok {
		offset = zoneOffsets[DefaultZone]
	}

	return time.FixedZone(string(z), offset*secondsInAnHour)
}

// Description returns the zone's full Indonesian name.
func (z Zone) Description() string {
	return zoneNames[z]
}

// ParseZone validates a zone label.
func ParseZone(s string) (Zone, error) {
	z := Zone(s)
	if !z.Valid() {
		return "", fmt.Errorf(
			"unknown timezone %q: must be one of WIB, WITA, or WIT", s,
		)
	}

	return z, nil
}

// RoundToStart resets the given time to the start of its day in the zone.
func RoundToStart(t time.Time, z Zone) time.Time {
	t = t.In(z.Location())

	return time.Date(
		t.Year(), t.Month(), t.Day(),
		0, 0, 0, 0,
		t.Location(),
	)
}

// RoundToEnd resets the given time to the end of its day in the zone.
func RoundToEnd(t time.Time, z Zone) time.Time {
	t = t.In(z.Location())

	return time.Date(
		t.Year(), t.Month(), t.Day(),
		23, 59, 59, 0,
		t.Location(),
	)
}

// WeekStart returns Monday 00:00 of the week containing t, evaluated in the
// zone. Sunday counts as day 7 of the previous-started week, not day 0.
func WeekStart(t time.Time, z Zone) time.Time {
	t = t.In(z.Location())

	day := int(t.Weekday())
	if day == 0 {
		day = daysInAWeek
	}

	return time.Date(
		t.Year(), t.Month(), t.Day()-(day-1),
		0, 0, 0, 0,
		t.Location(),
	)
}

// WeekEnd returns the end of the Sunday closing the week containing t.
func WeekEnd(t time.Time, z Zone) time.Time {
	start := WeekStart(t, z)

	return RoundToEnd(start.AddDate(0, 0, daysInAWeek-1), z)
}

// MonthStart returns the first instant of the month containing t in the zone.
func MonthStart(t time.Time, z Zone) time.Time {
	t = t.In(z.Location())

	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// MonthEnd returns the last instant of the month containing t in the zone.
func MonthEnd(t time.Time, z Zone) time.Time {
	t = t.In(z.Location())
	// day zero of the next month is the last day of this one
	last := time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location())

	return RoundToEnd(last, z)
}

// YearStart returns the first instant of the year containing t in the zone.
func YearStart(t time.Time, z Zone) time.Time {
	t = t.In(z.Location())

	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

// IsSameDay reports whether a and b fall on the same calendar date in the
// zone.
func IsSameDay(a, b time.Time, z Zone) bool {
	a = a.In(z.Location())
	b = b.In(z.Location())

	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// FormatDate renders t as a full Indonesian date, e.g.
// "Senin, 2 Januari 2006".
func FormatDate(t time.Time, z Zone) string {
	t = t.In(z.Location())

	return fmt.Sprintf(
		"%s, %d %s %d",
		dayNames[t.Weekday()],
		t.Day(),
		monthNames[t.Month()-1],
		t.Year(),
	)
}

// FormatTime renders the time of day of t in the zone as "15:04".
func FormatTime(t time.Time, z Zone) string {
	return t.In(z.Location()).Format("15:04")
}

// FormatDateTime renders the full date and time of t in the zone.
func FormatDateTime(t time.Time, z Zone) string {
	return FormatDate(t, z) + " " + t.In(z.Location()).Format("15:04:05")
}

// FormatRange renders a date range header. When both ends share a month and
// year, the month and year appear once: "Senin, 2 – Minggu, 8 Januari 2006".
func FormatRange(start, end time.Time, z Zone) string {
	s := start.In(z.Location())
	e := end.In(z.Location())

	if s.Year() == e.Year() && s.Month() == e.Month() {
		return fmt.Sprintf(
			"%s, %d – %s, %d %s %d",
			dayNames[s.Weekday()], s.Day(),
			dayNames[e.Weekday()], e.Day(),
			monthNames[s.Month()-1], s.Year(),
		)
	}

	return FormatDate(start, z) + " – " + FormatDate(end, z)
}

// FormatMonth renders the month and year of t in the zone, e.g.
// "Januari 2006".
func FormatMonth(t time.Time, z Zone) string {
	t = t.In(z.Location())

	return fmt.Sprintf("%s %d", monthNames[t.Month()-1], t.Year())
}
