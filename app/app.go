package app

import (
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/tempo/internal/config"
	"github.com/ayoisaiah/tempo/internal/timeutil"
)

// Get retrieves the tempo app instance.
func Get() *cli.App {
	return newApp(timeutil.SystemClock{})
}

func newApp(clock timeutil.Clock) *cli.App {
	s := &state{
		clock: clock,
	}

	tempoApp := &cli.App{
		Name: "tempo",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		Tempo is a time tracker for the command-line. Start an activity with a
		few tags, stop it when you are done, and review where the time went.`,
		UsageText:             "[COMMAND] [OPTIONS]",
		CustomAppHelpTemplate: helpText(),
		Version:               config.Version,
		EnableBashCompletion:  true,
		Commands: []*cli.Command{
			{
				Name:      "start",
				Usage:     "Start tracking a new activity, stopping the current one",
				ArgsUsage: "[<when>] <tags...>",
				Action:    s.startAction,
			},
			{
				Name:      "stop",
				Usage:     "Stop tracking the current activity",
				ArgsUsage: "[<when>]",
				Action:    s.stopAction,
			},
			{
				Name:   "continue",
				Usage:  "Start a new activity with the tags of the last one",
				Action: s.continueAction,
			},
			{
				Name:      "track",
				Usage:     "Record an activity that has already finished",
				ArgsUsage: "<start> <end> <tags...>",
				Action:    s.trackAction,
			},
			{
				Name:   "summary",
				Usage:  "List the activities started within a time period. Defaults to today",
				Action: s.summaryAction,
				Flags: []cli.Flag{
					idFlag,
					periodFlag,
					startTimeFlag,
					endTimeFlag,
					filterTagFlag,
					jsonFlag,
				},
			},
			{
				Name:      "delete",
				Usage:     "Delete a finished activity by its identifier",
				ArgsUsage: "<id>",
				Action:    s.deleteAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: s.editConfigAction,
			},
		},
		Flags: []cli.Flag{
			dirFlag,
			configFlag,
			noColorFlag,
		},
		Action: s.statusAction,
		Before: s.beforeAction,
		After:  s.afterAction,
	}

	return tempoApp
}
