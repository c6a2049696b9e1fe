// Package osutil holds operating system names, exit codes and file modes
// shared across tempo.
package osutil

import "io/fs"

const (
	Windows = "windows"
	Darwin  = "darwin"
)

type exitCode int

const (
	ExitOK    exitCode = 0
	ExitError exitCode = 1
)

const (
	DirPermission fs.FileMode = 0o755
	// DBPermission is owner-only since the database holds the user's history.
	DBPermission fs.FileMode = 0o600
)
