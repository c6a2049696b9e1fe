// Package report prints status messages to the command-line
package report

import (
	"io"

	"github.com/pterm/pterm"
)

// Info reports an informational message, including no-op outcomes.
func Info(w io.Writer, msg string) {
	pterm.Info.WithWriter(w).Println(msg)
}

func Success(w io.Writer, msg string) {
	pterm.Success.WithWriter(w).Println(msg)
}

func Warning(w io.Writer, msg string) {
	pterm.Warning.WithWriter(w).Println(msg)
}

func Error(w io.Writer, err error) {
	pterm.Error.WithWriter(w).Println(err)
}
