package app

import (
	"fmt"

	"github.com/pterm/pterm"
)

func helpText() string {
	description := fmt.Sprintf(
		"%s\n\t\t{{.Usage}}\n\n",
		pterm.Yellow("DESCRIPTION"),
	)

	usage := fmt.Sprintf(
		"%s\n\t\t{{.HelpName}} {{if .UsageText}}{{ .UsageText }}{{end}}\n\n",
		pterm.Yellow("USAGE"),
	)

	version := fmt.Sprintf(
		"{{if .Version}}%s\n\t\t{{.Version}}{{end}}\n\n",
		pterm.Yellow("VERSION"),
	)

	commands := fmt.Sprintf(
		"%s\n{{range .Commands}}{{if not .HideHelp}}   %s{{ `\t`}}{{.Usage}}{{ `\n` }}{{end}}{{end}}\n\n",
		pterm.Yellow("COMMANDS"),
		pterm.Green("{{join .Names `, `}} {{.ArgsUsage}}"),
	)

	options := fmt.Sprintf(
		"%s\n{{range .VisibleFlags}}\t\t{{if .Aliases}}{{range $element := .Aliases}}%s,{{end}}{{end}} %s\n\t\t\t\t{{.Usage}}\n\n{{end}}",
		pterm.Yellow("OPTIONS"),
		pterm.Green("-{{$element}}"),
		pterm.Green("--{{.Name}} {{.DefaultText}}"),
	)

	env := fmt.Sprintf(
		"%s\n\t\t%s\n\n",
		pterm.Yellow("ENVIRONMENTAL VARIABLES"),
		envHelp(),
	)

	examples := fmt.Sprintf(
		"%s\n\t\t%s\n",
		pterm.Yellow("EXAMPLES"),
		exampleHelp(),
	)

	return description + usage + version + commands + options + env + examples
}

func envHelp() string {
	return `
TEMPO_NO_COLOR, NO_COLOR: set to any value to avoid printing ANSI escape sequences for color output.

TEMPO_ENV: use separate config, database and log files named after its value (e.g. tempo_dev.db).`
}

func exampleHelp() string {
	return `
tempo start writing docs          start tracking now
tempo start 15min ago writing     start tracking 15 minutes ago
tempo start 09:00 standup         start tracking at 09:00 today
tempo stop 5 min ago              stop the current activity 5 minutes ago
tempo track 2019-12-25T19:43:00 2019-12-25T19:45:00 review
tempo summary --id --period 7days`
}
