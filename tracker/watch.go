package tracker

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gen2brain/beeep"

	"github.com/adipramono/chargelog/internal/timeutil"
)

const (
	watchTickInterval = time.Second
	maxProgressWidth  = 60
	halfwayPercent    = 50
	fullPercent       = 100
)

var (
	watchTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	watchLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	watchValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	watchDoneStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	watchHelpStyle = lipgloss.NewStyle().
			Faint(true)
)

type watchTickMsg time.Time

func watchTick() tea.Cmd {
	return tea.Tick(watchTickInterval, func(t time.Time) tea.Msg {
		return watchTickMsg(t)
	})
}

// watchModel renders a live, advisory estimate of charging progress. It is
// read-only: each tick recomputes the estimate from tracker state and never
// mutates a session.
type watchModel struct {
	tracker     *Tracker
	progress    progress.Model
	zone        timeutil.Zone
	estimate    EstimateResult
	notify      bool
	notified50  bool
	notified100 bool
	quitting    bool
}

func newWatchModel(t *Tracker) watchModel {
	m := watchModel{
		tracker:  t,
		zone:     t.cfg.Zone(),
		notify:   t.cfg.Notification.Enabled,
		progress: progress.New(progress.WithDefaultGradient()),
	}

	if est, ok := t.Estimate(t.now()); ok {
		m.estimate = est
		// Milestones already passed before the watch began stay silent.
		m.notified50 = est.Battery >= halfwayPercent
		m.notified100 = est.Battery >= fullPercent
	}

	return m
}

func (m watchModel) Init() tea.Cmd {
	return watchTick()
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.progress.Width = msg.Width - 8
		if m.progress.Width > maxProgressWidth {
			m.progress.Width = maxProgressWidth
		}

		return m, nil

	case watchTickMsg:
		est, ok := m.tracker.Estimate(time.Time(msg))
		if !ok {
			m.quitting = true
			return m, tea.Quit
		}

		m.estimate = est
		m.notifyMilestones()

		return m, watchTick()
	}

	return m, nil
}

// notifyMilestones fires the 50% and 100% desktop notifications once each.
// Delivery is best effort; a failed notification never interrupts the view.
func (m *watchModel) notifyMilestones() {
	if !m.notify {
		return
	}

	if !m.notified50 && m.estimate.Battery >= halfwayPercent {
		m.notified50 = true

		go func() {
			_ = beeep.Notify(
				"Pengisian 50%",
				"Baterai kendaraan Anda sudah mencapai 50%",
				"",
			)
		}()
	}

	if !m.notified100 && m.estimate.Battery >= fullPercent {
		m.notified100 = true

		go func() {
			_ = beeep.Alert(
				"Pengisian Selesai",
				"Baterai kendaraan Anda sudah penuh 100%",
				"",
			)
		}()
	}
}

func (m watchModel) View() string {
	if m.quitting {
		return ""
	}

	active := m.tracker.Active()
	if active == nil {
		return ""
	}

	var s strings.Builder

	s.WriteString(watchTitleStyle.Render("⚡ Sedang Mengisi"))
	s.WriteString("\n\n")

	s.WriteString(watchLabelStyle.Render("Mulai       "))
	s.WriteString(watchValueStyle.Render(
		timeutil.FormatDateTime(active.StartTime, m.zone) + " " + string(m.zone),
	))
	s.WriteString("\n")

	s.WriteString(watchLabelStyle.Render("Baterai awal"))
	s.WriteString(watchValueStyle.Render(
		fmt.Sprintf(" %d%%", active.StartBattery),
	))
	s.WriteString("\n")

	if active.Location != "" {
		s.WriteString(watchLabelStyle.Render("Lokasi      "))
		s.WriteString(watchValueStyle.Render(" " + active.Location))
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(m.progress.ViewAs(m.estimate.Battery / fullPercent))
	s.WriteString("\n\n")

	if m.estimate.Battery >= fullPercent {
		s.WriteString(watchDoneStyle.Render("Perkiraan baterai penuh ✓"))
	} else {
		s.WriteString(watchValueStyle.Render(fmt.Sprintf(
			"Perkiraan %.0f%% · penuh sekitar %s",
			m.estimate.Battery,
			timeutil.FormatTime(m.estimate.FullAt, m.zone),
		)))
	}

	s.WriteString("\n\n")
	s.WriteString(watchHelpStyle.Render("q: keluar"))
	s.WriteString("\n")

	return s.String()
}

// Watch runs the live progress view until the user quits or the active
// session ends.
func (t *Tracker) Watch() error {
	if t.activeIdx < 0 {
		return ErrNotCharging
	}

	_, err := tea.NewProgram(newWatchModel(t)).Run()

	return err
}
