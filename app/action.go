package app

import (
	"context"
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/adipramono/chargelog/backup"
	"github.com/adipramono/chargelog/internal/config"
	"github.com/adipramono/chargelog/internal/log"
	"github.com/adipramono/chargelog/internal/session"
	"github.com/adipramono/chargelog/internal/timeutil"
	"github.com/adipramono/chargelog/internal/ui"
	"github.com/adipramono/chargelog/location"
	"github.com/adipramono/chargelog/report"
	"github.com/adipramono/chargelog/stats"
	"github.com/adipramono/chargelog/store"
	"github.com/adipramono/chargelog/tracker"
)

var (
	appConfig *config.Config
	db        *store.Client
	trk       *tracker.Tracker
)

func beforeAction(ctx *cli.Context) error {
	if ctx.Bool("no-color") {
		disableStyling()
	}

	config.InitializePaths()

	cfg, err := config.Get()
	if err != nil {
		return err
	}

	appConfig = cfg

	db, err = store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	trk, err = tracker.New(
		db,
		cfg,
		tracker.WithLogger(log.NewLogger(config.LogFilePath())),
	)
	if err != nil {
		return err
	}

	return nil
}

func afterAction(_ *cli.Context) error {
	if db != nil {
		return db.Close()
	}

	return nil
}

// promptBattery collects a battery percentage interactively when the flag
// was omitted.
func promptBattery(title string, valid func(int) bool) (int, error) {
	var input string

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Placeholder("0-100").
				Validate(func(s string) error {
					v, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil {
						return errors.New("enter a whole number")
					}

					if !valid(v) {
						return errors.New("percentage is out of range")
					}

					return nil
				}).
				Value(&input),
		),
	).Run()
	if err != nil {
		return 0, err
	}

	return strconv.Atoi(strings.TrimSpace(input))
}

func resolveBattery(
	ctx *cli.Context,
	title string,
	valid func(int) bool,
) (int, error) {
	battery := ctx.Int("battery")
	if battery >= 0 {
		return battery, nil
	}

	return promptBattery(title, valid)
}

func startAction(ctx *cli.Context) error {
	battery, err := resolveBattery(
		ctx,
		"Current battery percentage?",
		session.ValidStartBattery,
	)
	if err != nil {
		return err
	}

	loc := ctx.String("location")

	var coords *session.Coordinates

	switch {
	case ctx.IsSet("lat") && ctx.IsSet("lon"):
		coords = &session.Coordinates{
			Latitude:  ctx.Float64("lat"),
			Longitude: ctx.Float64("lon"),
		}

		if ctx.Bool("detect") {
			data, err := location.NewResolver().
				Resolve(context.Background(), coords.Latitude, coords.Longitude)
			if err != nil {
				// Lookup failures never block starting: fall back to the
				// raw coordinates and let the user know.
				pterm.Warning.Println(err)
			}

			if loc == "" {
				loc = data.Address
			}
		}
	case ctx.IsSet("lat") || ctx.IsSet("lon"):
		return errors.New("--lat and --lon must be provided together")
	case ctx.Bool("detect"):
		return location.ErrUnsupported
	}

	if loc == "" {
		loc = appConfig.Settings.DefaultLocation
	}

	sess, err := trk.Start(battery, loc, coords)
	if err != nil {
		return err
	}

	zone := appConfig.Zone()

	pterm.Success.Printfln(
		"Charging started at %s %s (battery %d%%, %s)",
		timeutil.FormatTime(sess.StartTime, zone),
		zone,
		sess.StartBattery,
		sess.Location,
	)

	return nil
}

func stopAction(ctx *cli.Context) error {
	battery, err := resolveBattery(
		ctx,
		"Battery percentage now?",
		session.ValidEndBattery,
	)
	if err != nil {
		return err
	}

	sess, err := trk.End(battery)
	if err != nil {
		return err
	}

	zone := appConfig.Zone()
	mins := int(sess.Duration().Round(time.Minute).Minutes())

	pterm.Success.Printfln(
		"Charging completed at %s %s: %d%% -> %d%% (+%d%%) in %d minutes",
		timeutil.FormatTime(*sess.EndTime, zone),
		zone,
		sess.StartBattery,
		*sess.EndBattery,
		sess.BatteryGain(),
		mins,
	)

	return nil
}

func statusAction(ctx *cli.Context) error {
	if ctx.Bool("watch") {
		return trk.Watch()
	}

	active := trk.Active()
	if active == nil {
		pterm.Info.Println("No active charging session")
		return nil
	}

	zone := appConfig.Zone()
	est, _ := trk.Estimate(time.Now())

	pterm.Info.Printfln(
		"Charging since %s %s at %s",
		timeutil.FormatDateTime(active.StartTime, zone),
		zone,
		active.Location,
	)
	pterm.Printfln(
		"Started at %d%%, estimated %.0f%% now (full around %s)",
		active.StartBattery,
		est.Battery,
		timeutil.FormatTime(est.FullAt, zone),
	)

	return nil
}

func deleteAction(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return errors.New("a session id is required")
	}

	id := ctx.Args().First()

	if err := trk.Delete(id); err != nil {
		return err
	}

	pterm.Success.Printfln("Session %s deleted", id)

	return nil
}

func statsAction(_ *cli.Context) error {
	s := stats.Compute(trk.Sessions(), time.Now(), appConfig.Zone())

	ui.PrintTable(s.Rows(), os.Stdout)

	return nil
}

func backupAction(ctx *cli.Context) error {
	now := time.Now()
	zone := appConfig.Zone()

	path := ctx.String("output")
	if path == "" {
		path = backup.FileName(now, zone)
	}

	if err := backup.Export(trk.Sessions(), zone, path); err != nil {
		return err
	}

	if err := db.SetLastBackup(now); err != nil {
		return err
	}

	pterm.Success.Printfln(
		"%d sessions backed up to %s",
		len(trk.Sessions()),
		path,
	)

	return nil
}

func restoreAction(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return errors.New("a backup file is required")
	}

	restored, err := backup.Restore(ctx.Args().First())
	if err != nil {
		return err
	}

	added, err := trk.Merge(restored)
	if err != nil {
		return err
	}

	pterm.Success.Printfln(
		"%d sessions restored (%d already present)",
		added,
		len(restored)-added,
	)

	return nil
}

func exportAction(ctx *cli.Context) error {
	now := time.Now()
	zone := appConfig.Zone()

	path := ctx.String("output")
	if path == "" {
		path = report.FileName(now, zone)
	}

	s := stats.Compute(trk.Sessions(), now, zone)

	if err := report.Export(trk.Sessions(), s, zone, now, path); err != nil {
		return err
	}

	pterm.Success.Printfln("Report written to %s", path)

	return nil
}

func timezoneAction(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		current := appConfig.Zone()

		pterm.Info.Printfln(
			"Current timezone: %s (%s)",
			current,
			current.Description(),
		)

		for _, z := range timeutil.Zones {
			pterm.Printfln("  %-4s %s", z, z.Description())
		}

		return nil
	}

	zone, err := timeutil.ParseZone(strings.ToUpper(ctx.Args().First()))
	if err != nil {
		return err
	}

	err = config.PersistTimezone(config.ConfigFilePath(), zone)
	if err != nil {
		return err
	}

	pterm.Success.Printfln(
		"Timezone set to %s (%s)",
		zone,
		zone.Description(),
	)

	return nil
}
