package app

import "github.com/urfave/cli/v2"

var (
	dirFlag = &cli.StringFlag{
		Name:    "dir",
		Aliases: []string{"d"},
		Usage:   "Keep activities in the specified directory instead of the default data directory",
	}

	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "Read settings from the specified config file",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	idFlag = &cli.BoolFlag{
		Name:  "id",
		Usage: "Show the identifier of each activity (used by 'delete')",
	}

	periodFlag = &cli.StringFlag{
		Name:    "period",
		Aliases: []string{"p"},
		Usage:   "Specify a time period. Possible values are: today, yesterday, 7days, 14days, 30days, 90days, 180days, 365days, all-time",
	}

	startTimeFlag = &cli.StringFlag{
		Name:    "start",
		Aliases: []string{"s"},
		Usage:   "Only include activities started at or after this time (e.g. 2019-12-25T09:00:00, 'yesterday 09:00')",
	}

	endTimeFlag = &cli.StringFlag{
		Name:    "end",
		Aliases: []string{"e"},
		Usage:   "Only include activities started at or before this time (defaults to the current time)",
	}

	filterTagFlag = &cli.StringFlag{
		Name:    "tag",
		Aliases: []string{"t"},
		Usage:   "Only include activities with one of these comma-delimited tags",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the activities as JSON",
	}
)
