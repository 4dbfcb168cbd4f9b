package tracker

import (
	"log/slog"
	"sort"

	"github.com/adipramono/chargelog/internal/session"
)

// Merge folds an externally restored session list into the store. Merging
// is by identifier only: a restored record whose id already exists is
// dropped and the existing record is preserved unchanged, even when field
// values differ. Restored records are trusted input and are not
// re-validated. Returns the number of records added.
func (t *Tracker) Merge(restored []session.Session) (int, error) {
	existing := make(map[string]struct{}, len(t.sessions))
	for i := range t.sessions {
		existing[t.sessions[i].ID] = struct{}{}
	}

	added := 0

	for i := range restored {
		if _, ok := existing[restored[i].ID]; ok {
			continue
		}

		existing[restored[i].ID] = struct{}{}
		t.sessions = append(t.sessions, restored[i])
		added++
	}

	if added == 0 {
		return 0, nil
	}

	sort.SliceStable(t.sessions, func(i, j int) bool {
		return t.sessions[i].StartTime.Before(t.sessions[j].StartTime)
	})

	t.activeIdx = findActive(t.sessions)

	if err := t.db.SaveSessions(t.sessions); err != nil {
		return 0, err
	}

	t.logger.Info("restored sessions merged",
		slog.Int("restored", len(restored)),
		slog.Int("added", added),
	)

	return added, nil
}
