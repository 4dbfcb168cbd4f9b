package app

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/adipramono/chargelog/internal/session"
	"github.com/adipramono/chargelog/internal/timeutil"
	"github.com/adipramono/chargelog/internal/ui"
)

type weekGroup struct {
	start    time.Time
	sessions []session.Session
}

type monthGroup struct {
	label string
	weeks []*weekGroup
}

// listAction prints completed sessions grouped by month, then by week,
// most recent first.
func listAction(_ *cli.Context) error {
	completed := trk.Completed()
	if len(completed) == 0 {
		pterm.Info.Println("No completed sessions yet")
		return nil
	}

	zone := appConfig.Zone()

	var months []*monthGroup

	monthIdx := make(map[string]*monthGroup)
	weekIdx := make(map[string]*weekGroup)

	// completed is sorted oldest first; walk backwards for a
	// newest-first listing.
	for i := len(completed) - 1; i >= 0; i-- {
		sess := completed[i]

		monthKey := timeutil.FormatMonth(sess.StartTime, zone)
		weekStart := timeutil.WeekStart(sess.StartTime, zone)
		weekKey := monthKey + weekStart.Format("2006-01-02")

		month, ok := monthIdx[monthKey]
		if !ok {
			month = &monthGroup{label: monthKey}
			monthIdx[monthKey] = month
			months = append(months, month)
		}

		week, ok := weekIdx[weekKey]
		if !ok {
			week = &weekGroup{start: weekStart}
			weekIdx[weekKey] = week
			month.weeks = append(month.weeks, week)
		}

		week.sessions = append(week.sessions, sess)
	}

	for _, month := range months {
		pterm.DefaultSection.Println(month.label)

		for _, week := range month.weeks {
			weekEnd := timeutil.WeekEnd(week.start, zone)

			pterm.Println(pterm.Bold.Sprint(
				timeutil.FormatRange(week.start, weekEnd, zone),
			))

			printSessionTable(week.sessions, zone)
		}
	}

	return nil
}

func printSessionTable(sessions []session.Session, zone timeutil.Zone) {
	rows := [][]string{
		{
			"Tanggal",
			"Mulai",
			"Selesai",
			"Durasi (menit)",
			"Baterai",
			"Penambahan",
			"Lokasi",
			"ID",
		},
	}

	for i := range sessions {
		sess := &sessions[i]

		end := "-"
		duration := "-"
		battery := fmt.Sprintf("%d%%", sess.StartBattery)
		gain := "-"

		if sess.EndTime != nil {
			end = timeutil.FormatTime(*sess.EndTime, zone)
			duration = strconv.Itoa(
				int(sess.Duration().Round(time.Minute).Minutes()),
			)
		}

		if sess.EndBattery != nil {
			battery = fmt.Sprintf(
				"%d%% -> %d%%",
				sess.StartBattery,
				*sess.EndBattery,
			)
			gain = fmt.Sprintf("+%d%%", sess.BatteryGain())
		}

		loc := sess.Location
		if loc == "" {
			loc = "-"
		}

		rows = append(rows, []string{
			timeutil.FormatDate(sess.StartTime, zone),
			timeutil.FormatTime(sess.StartTime, zone),
			end,
			duration,
			battery,
			gain,
			loc,
			sess.ID,
		})
	}

	ui.PrintTable(rows, os.Stdout)
}
