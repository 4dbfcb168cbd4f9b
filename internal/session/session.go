// Package session defines charging sessions
package session

import (
	"strconv"
	"time"
)

// DefaultMinutesToFull is the assumed time to charge from empty to full when
// estimating progress (a linear rate of 100% per 300 minutes).
const DefaultMinutesToFull = 300

// Coordinates is a geographic position recorded when the charging location
// was auto-detected.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Session represents a single charging attempt. ID, StartTime, and
// StartBattery are immutable after creation. EndTime and EndBattery are set
// exactly once when the session completes.
type Session struct {
	StartTime    time.Time    `json:"start_time"`
	EndTime      *time.Time   `json:"end_time,omitempty"`
	EndBattery   *int         `json:"end_battery,omitempty"`
	Coordinates  *Coordinates `json:"coordinates,omitempty"`
	ID           string       `json:"id"`
	Location     string       `json:"location,omitempty"`
	StartBattery int          `json:"start_battery"`
	IsActive     bool         `json:"is_active"`
}

// NewID derives a session identifier from the creation instant.
func NewID(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}

// Completed reports whether the session has both a start and an end.
func (s *Session) Completed() bool {
	return !s.IsActive && s.EndTime != nil
}

// Duration returns the elapsed charging time, or zero for an active session.
func (s *Session) Duration() time.Duration {
	if s.EndTime == nil {
		return 0
	}

	return s.EndTime.Sub(s.StartTime)
}

// BatteryGain returns the recorded percentage increase, or zero for an
// active session.
func (s *Session) BatteryGain() int {
	if s.EndBattery == nil {
		return 0
	}

	return *s.EndBattery - s.StartBattery
}

// EstimatedBattery projects the current battery percentage of an active
// session assuming a linear charge of 100% per minutesToFull minutes. The
// result is advisory only and is capped at 100.
func (s *Session) EstimatedBattery(now time.Time, minutesToFull int) float64 {
	if minutesToFull <= 0 {
		minutesToFull = DefaultMinutesToFull
	}

	elapsed := now.Sub(s.StartTime).Minutes()
	if elapsed < 0 {
		elapsed = 0
	}

	estimate := float64(s.StartBattery) + elapsed*(100/float64(minutesToFull))
	if estimate > 100 {
		return 100
	}

	return estimate
}

// EstimatedFullTime projects the instant at which an active session reaches
// 100% at the same linear rate.
func (s *Session) EstimatedFullTime(minutesToFull int) time.Time {
	if minutesToFull <= 0 {
		minutesToFull = DefaultMinutesToFull
	}

	remaining := float64(100-s.StartBattery) * float64(minutesToFull) / 100

	return s.StartTime.Add(time.Duration(remaining * float64(time.Minute)))
}

// ValidStartBattery reports whether v is acceptable as a starting
// percentage. Charging from a full battery is not a valid session.
func ValidStartBattery(v int) bool {
	return v >= 0 && v < 100
}

// ValidEndBattery reports whether v is acceptable as an ending percentage.
func ValidEndBattery(v int) bool {
	return v >= 0 && v <= 100
}
