// Package hook runs user-configured commands when the current activity
// changes.
package hook

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/tempo/internal/models"
)

// Environment variables passed to hook commands.
const (
	EnvEvent = "TEMPO_EVENT"
	EnvTags  = "TEMPO_TAGS"
	EnvStart = "TEMPO_START"
	EnvEnd   = "TEMPO_END"
)

// Event names a change of the current activity.
type Event string

const (
	Started Event = "start"
	Stopped Event = "stop"
)

// Payload describes the activity a hook runs for. End is zero for Started.
type Payload struct {
	Start time.Time
	End   time.Time
	Tags  models.Tags
	Event Event
}

func (p Payload) environ() []string {
	env := []string{
		EnvEvent + "=" + string(p.Event),
		EnvTags + "=" + strings.Join(p.Tags, " "),
		EnvStart + "=" + p.Start.Format(models.DateTimeFormat),
	}

	if !p.End.IsZero() {
		env = append(env, EnvEnd+"="+p.End.Format(models.DateTimeFormat))
	}

	return env
}

// Run executes command with the payload exported in its environment. An empty
// command is a no-op.
func Run(command string, p Payload) error {
	if strings.TrimSpace(command) == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(command)
	if err != nil {
		return fmt.Errorf("unable to parse %s hook: %w", p.Event, err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	cmd := exec.Command(name, args...)
	cmd.Env = append(os.Environ(), p.environ()...)

	slog.Debug("running hook", slog.String("event", string(p.Event)), slog.String("cmd", command))

	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s hook failed: %w: %s", p.Event, err, strings.TrimSpace(string(out)))
	}

	return nil
}
