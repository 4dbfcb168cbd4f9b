// Package app defines the chargelog command-line interface
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/adipramono/chargelog/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the chargelog app instance.
func Get() *cli.App {
	chargelogApp := &cli.App{
		Name: "chargelog",
		Authors: []*cli.Author{
			{
				Name: "Adi Pramono",
			},
		},
		Usage: `
		Chargelog records your electric vehicle charging sessions. Start a
		session when you plug in, stop it when you unplug, and review your
		history, statistics, and backups from the same place.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "start",
				Usage:  "Start a new charging session",
				Action: startAction,
				Flags: []cli.Flag{
					batteryFlag,
					locationFlag,
					latitudeFlag,
					longitudeFlag,
					detectFlag,
				},
			},
			{
				Name:    "stop",
				Aliases: []string{"end"},
				Usage:   "End the active charging session",
				Action:  stopAction,
				Flags: []cli.Flag{
					batteryFlag,
				},
			},
			{
				Name:   "status",
				Usage:  "Show the state of the active charging session",
				Action: statusAction,
				Flags: []cli.Flag{
					watchFlag,
				},
			},
			{
				Name:      "delete",
				Usage:     "Delete a charging session by its id",
				ArgsUsage: "<session-id>",
				Action:    deleteAction,
			},
			{
				Name:    "list",
				Aliases: []string{"history"},
				Usage:   "Browse completed sessions grouped by month and week",
				Action:  listAction,
			},
			{
				Name:   "stats",
				Usage:  "Show session counts for today, this week, this month, and this year",
				Action: statsAction,
			},
			{
				Name:   "backup",
				Usage:  "Write all sessions to an xlsx backup file",
				Action: backupAction,
				Flags: []cli.Flag{
					outputFlag,
				},
			},
			{
				Name:      "restore",
				Usage:     "Merge sessions from an xlsx backup file into the store",
				ArgsUsage: "<backup-file>",
				Action:    restoreAction,
			},
			{
				Name:   "export",
				Usage:  "Export statistics and history to a PDF report",
				Action: exportAction,
				Flags: []cli.Flag{
					outputFlag,
				},
			},
			{
				Name:      "timezone",
				Usage:     "Show or change the presentation timezone (WIB, WITA, WIT)",
				ArgsUsage: "[zone]",
				Action:    timezoneAction,
			},
		},
		Flags: []cli.Flag{
			noColorFlag,
		},
		Before: beforeAction,
		After:  afterAction,
	}

	return chargelogApp
}
