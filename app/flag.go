package app

import "github.com/urfave/cli/v2"

var (
	batteryFlag = &cli.IntFlag{
		Name:    "battery",
		Aliases: []string{"b"},
		Usage:   "Battery percentage (prompted for when omitted)",
		Value:   -1,
	}

	locationFlag = &cli.StringFlag{
		Name:    "location",
		Aliases: []string{"l"},
		Usage:   "Charging location (defaults to the configured location)",
	}

	latitudeFlag = &cli.Float64Flag{
		Name:  "lat",
		Usage: "Latitude of the charging location",
	}

	longitudeFlag = &cli.Float64Flag{
		Name:  "lon",
		Usage: "Longitude of the charging location",
	}

	detectFlag = &cli.BoolFlag{
		Name:  "detect",
		Usage: "Resolve the address for --lat/--lon through reverse geocoding",
	}

	watchFlag = &cli.BoolFlag{
		Name:    "watch",
		Aliases: []string{"w"},
		Usage:   "Keep a live estimate of charging progress on screen",
	}

	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Path of the file to write",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}
)
