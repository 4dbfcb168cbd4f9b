package session

import (
	"testing"
	"time"
)

func TestEstimatedBattery(t *testing.T) {
	start := time.Date(2025, time.September, 1, 8, 0, 0, 0, time.UTC)

	cases := []struct {
		name          string
		startBattery  int
		elapsed       time.Duration
		minutesToFull int
		want          float64
	}{
		{
			name:          "one hour at the default rate gains twenty percent",
			startBattery:  20,
			elapsed:       time.Hour,
			minutesToFull: DefaultMinutesToFull,
			want:          40,
		},
		{
			name:          "estimate is capped at one hundred",
			startBattery:  90,
			elapsed:       5 * time.Hour,
			minutesToFull: DefaultMinutesToFull,
			want:          100,
		},
		{
			name:          "no elapsed time means no gain",
			startBattery:  55,
			elapsed:       0,
			minutesToFull: DefaultMinutesToFull,
			want:          55,
		},
		{
			name:          "faster configured rate",
			startBattery:  10,
			elapsed:       30 * time.Minute,
			minutesToFull: 100,
			want:          40,
		},
		{
			name:          "invalid rate falls back to the default",
			startBattery:  20,
			elapsed:       time.Hour,
			minutesToFull: 0,
			want:          40,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sess := &Session{
				StartTime:    start,
				StartBattery: tc.startBattery,
				IsActive:     true,
			}

			got := sess.EstimatedBattery(
				start.Add(tc.elapsed),
				tc.minutesToFull,
			)
			if got != tc.want {
				t.Errorf("EstimatedBattery = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestEstimatedFullTime(t *testing.T) {
	start := time.Date(2025, time.September, 1, 8, 0, 0, 0, time.UTC)

	sess := &Session{
		StartTime:    start,
		StartBattery: 20,
		IsActive:     true,
	}

	got := sess.EstimatedFullTime(DefaultMinutesToFull)
	// 80% remaining at 100% per 300 minutes is 240 minutes
	want := start.Add(240 * time.Minute)

	if !got.Equal(want) {
		t.Errorf("EstimatedFullTime = %v, want %v", got, want)
	}
}

func TestDurationAndGain(t *testing.T) {
	start := time.Date(2025, time.September, 1, 8, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)
	endBattery := 85

	sess := &Session{
		StartTime:    start,
		StartBattery: 20,
		EndTime:      &end,
		EndBattery:   &endBattery,
	}

	if got := sess.Duration(); got != 2*time.Hour {
		t.Errorf("Duration = %v, want %v", got, 2*time.Hour)
	}

	if got := sess.BatteryGain(); got != 65 {
		t.Errorf("BatteryGain = %d, want 65", got)
	}

	if !sess.Completed() {
		t.Error("expected session to be completed")
	}

	active := &Session{StartTime: start, StartBattery: 20, IsActive: true}

	if active.Duration() != 0 || active.BatteryGain() != 0 {
		t.Error("active session must report zero duration and gain")
	}

	if active.Completed() {
		t.Error("active session must not be completed")
	}
}

func TestBatteryValidation(t *testing.T) {
	for v := 0; v <= 99; v++ {
		if !ValidStartBattery(v) {
			t.Errorf("ValidStartBattery(%d) = false, want true", v)
		}
	}

	for _, v := range []int{-1, 100, 101} {
		if ValidStartBattery(v) {
			t.Errorf("ValidStartBattery(%d) = true, want false", v)
		}
	}

	if !ValidEndBattery(100) {
		t.Error("ValidEndBattery(100) = false, want true")
	}

	for _, v := range []int{-1, 101} {
		if ValidEndBattery(v) {
			t.Errorf("ValidEndBattery(%d) = true, want false", v)
		}
	}
}
