// Package stats reports charging session statistics
package stats

import (
	"strconv"
	"time"

	"github.com/adipramono/chargelog/internal/session"
	"github.com/adipramono/chargelog/internal/timeutil"
)

// Stats counts completed sessions per civil time window. The windows nest:
// a session starting today counts toward all four buckets at once.
type Stats struct {
	Today     int
	ThisWeek  int
	ThisMonth int
	ThisYear  int
}

// Compute buckets completed sessions by their start time, evaluated against
// window boundaries in the given zone. Only the start instant matters: a
// session crossing midnight is attributed to the day it started.
func Compute(
	sessions []session.Session,
	now time.Time,
	zone timeutil.Zone,
) Stats {
	weekStart := timeutil.WeekStart(now, zone)
	monthStart := timeutil.MonthStart(now, zone)
	yearStart := timeutil.YearStart(now, zone)

	var s Stats

	for i := range sessions {
		sess := &sessions[i]

		if sess.IsActive {
			continue
		}

		if timeutil.IsSameDay(sess.StartTime, now, zone) {
			s.Today++
		}

		if !sess.StartTime.Before(weekStart) {
			s.ThisWeek++
		}

		if !sess.StartTime.Before(monthStart) {
			s.ThisMonth++
		}

		if !sess.StartTime.Before(yearStart) {
			s.ThisYear++
		}
	}

	return s
}

// Rows renders the stats as table rows with Indonesian period labels,
// header first.
func (s Stats) Rows() [][]string {
	return [][]string{
		{"Periode", "Jumlah Pengisian"},
		{"Hari Ini", strconv.Itoa(s.Today)},
		{"Minggu Ini", strconv.Itoa(s.ThisWeek)},
		{"Bulan Ini", strconv.Itoa(s.ThisMonth)},
		{"Tahun Ini", strconv.Itoa(s.ThisYear)},
	}
}
