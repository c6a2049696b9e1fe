package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/tempo/internal/models"
)

const twelveHourFormat = "2006-01-02 03:04:05 PM"

// FormatTime renders t for display in tables and messages.
func FormatTime(t time.Time, twentyFourHour bool) string {
	if twentyFourHour {
		return t.Format(models.DateTimeFormat)
	}

	return t.Format(twelveHourFormat)
}

// PrintTable renders data as a boxed table whose first row is the header.
func PrintTable(data [][]string, writer io.Writer) {
	table := pterm.DefaultTable
	table.Boxed = true

	str, err := table.WithHasHeader().WithData(data).Srender()
	if err != nil {
		pterm.Error.Printfln("Failed to output activity table: %s", err.Error())
		return
	}

	fmt.Fprintln(writer, str)
}
