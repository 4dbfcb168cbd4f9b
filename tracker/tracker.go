// Package tracker enforces the charging session lifecycle and owns the
// canonical in-memory session list
package tracker

import (
	"log/slog"
	"time"

	"github.com/adipramono/chargelog/internal/config"
	"github.com/adipramono/chargelog/internal/session"
	"github.com/adipramono/chargelog/store"
)

// State is the lifecycle state of the whole store. The store supports at
// most one concurrent active session, so the state machine is a single
// slot: Idle until a session starts, Charging until it ends or is deleted.
type State int

const (
	StateIdle State = iota
	StateCharging
)

func (s State) String() string {
	if s == StateCharging {
		return "charging"
	}

	return "idle"
}

// Tracker mediates every mutation of the session list. In-memory state is
// the cache; the database is the source of truth across restarts and is
// written synchronously after each mutation.
type Tracker struct {
	db        store.DB
	cfg       *config.Config
	logger    *slog.Logger
	now       func() time.Time
	sessions  []session.Session
	activeIdx int
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock substitutes the time source.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

// WithLogger attaches a structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(t *Tracker) {
		t.logger = l
	}
}

// New loads the persisted session list and returns a ready Tracker.
func New(db store.DB, cfg *config.Config, opts ...Option) (*Tracker, error) {
	t := &Tracker{
		db:     db,
		cfg:    cfg,
		now:    time.Now,
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(t)
	}

	if err := t.Reload(); err != nil {
		return nil, err
	}

	return t, nil
}

// Reload replaces the in-memory list with a fresh load from the database.
// It is the handler for out-of-band storage changes: last load wins,
// without merging in-flight local edits.
func (t *Tracker) Reload() error {
	sessions, err := t.db.LoadSessions()
	if err != nil {
		return err
	}

	t.sessions = sessions
	t.activeIdx = findActive(sessions)

	return nil
}

// findActive returns the index of the first active record, or -1.
func findActive(sessions []session.Session) int {
	for i := range sessions {
		if sessions[i].IsActive {
			return i
		}
	}

	return -1
}

// State reports whether a session is currently active.
func (t *Tracker) State() State {
	if t.activeIdx >= 0 {
		return StateCharging
	}

	return StateIdle
}

// Active returns a copy of the active session, or nil when idle.
func (t *Tracker) Active() *session.Session {
	if t.activeIdx < 0 {
		return nil
	}

	active := t.sessions[t.activeIdx]

	return &active
}

// Sessions returns the full session list.
func (t *Tracker) Sessions() []session.Session {
	return t.sessions
}

// Completed returns the completed sessions in start-time order.
func (t *Tracker) Completed() []session.Session {
	var completed []session.Session

	for i := range t.sessions {
		if !t.sessions[i].IsActive {
			completed = append(completed, t.sessions[i])
		}
	}

	return completed
}

// Start begins a new charging session. It is rejected when a session is
// already active or when startBattery falls outside [0, 99]. Location and
// coordinates are optional caller-supplied context.
func (t *Tracker) Start(
	startBattery int,
	location string,
	coords *session.Coordinates,
) (*session.Session, error) {
	if t.activeIdx >= 0 {
		return nil, ErrAlreadyCharging
	}

	if !session.ValidStartBattery(startBattery) {
		return nil, ErrInvalidStartBattery.Fmt(startBattery)
	}

	now := t.now()

	sess := session.Session{
		ID:           session.NewID(now),
		StartTime:    now,
		StartBattery: startBattery,
		IsActive:     true,
		Location:     location,
		Coordinates:  coords,
	}

	t.sessions = append(t.sessions, sess)
	t.activeIdx = len(t.sessions) - 1

	if err := t.db.PutSession(&sess); err != nil {
		return nil, err
	}

	t.logger.Info("charging session started",
		slog.String("id", sess.ID),
		slog.Int("start_battery", startBattery),
		slog.String("location", location),
	)

	return &sess, nil
}

// End completes the active charging session. It is rejected when no session
// is active, when endBattery falls outside [0, 100], or when endBattery
// does not exceed the recorded start battery.
func (t *Tracker) End(endBattery int) (*session.Session, error) {
	if t.activeIdx < 0 {
		return nil, ErrNotCharging
	}

	if !session.ValidEndBattery(endBattery) {
		return nil, ErrInvalidEndBattery.Fmt(endBattery)
	}

	active := &t.sessions[t.activeIdx]

	if endBattery <= active.StartBattery {
		return nil, ErrNoProgress.Fmt(endBattery, active.StartBattery)
	}

	endTime := t.now()

	active.EndTime = &endTime
	active.EndBattery = &endBattery
	active.IsActive = false

	if err := t.db.PutSession(active); err != nil {
		return nil, err
	}

	done := *active
	t.activeIdx = -1

	t.logger.Info("charging session completed",
		slog.String("id", done.ID),
		slog.Int("end_battery", endBattery),
		slog.Duration("duration", done.Duration()),
	)

	return &done, nil
}

// Delete removes a session unconditionally in any state. Deleting the
// active session returns the tracker to idle.
func (t *Tracker) Delete(id string) error {
	idx := -1

	for i := range t.sessions {
		if t.sessions[i].ID == id {
			idx = i
			break
		}
	}

	if idx < 0 {
		return ErrSessionNotFound.Fmt(id)
	}

	if err := t.db.DeleteSession(id); err != nil {
		return err
	}

	t.sessions = append(t.sessions[:idx], t.sessions[idx+1:]...)
	t.activeIdx = findActive(t.sessions)

	t.logger.Info("charging session deleted", slog.String("id", id))

	return nil
}

// Estimate projects the active session's battery percentage and the instant
// it reaches full, at the configured linear charge rate. The estimate is
// advisory: it never feeds back into the recorded end battery. The second
// value is false when no session is active.
func (t *Tracker) Estimate(now time.Time) (EstimateResult, bool) {
	if t.activeIdx < 0 {
		return EstimateResult{}, false
	}

	active := &t.sessions[t.activeIdx]
	rate := t.cfg.Settings.MinutesToFull

	return EstimateResult{
		Battery: active.EstimatedBattery(now, rate),
		FullAt:  active.EstimatedFullTime(rate),
		Elapsed: now.Sub(active.StartTime),
	}, true
}

// EstimateResult is a point-in-time projection of charging progress.
type EstimateResult struct {
	FullAt  time.Time
	Battery float64
	Elapsed time.Duration
}
