package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/tempo/internal/config"
	"github.com/ayoisaiah/tempo/internal/hook"
	"github.com/ayoisaiah/tempo/internal/logging"
	"github.com/ayoisaiah/tempo/internal/models"
	"github.com/ayoisaiah/tempo/internal/osutil"
	"github.com/ayoisaiah/tempo/internal/pathutil"
	"github.com/ayoisaiah/tempo/internal/timeutil"
	"github.com/ayoisaiah/tempo/internal/tracker"
	"github.com/ayoisaiah/tempo/internal/ui"
	"github.com/ayoisaiah/tempo/report"
	"github.com/ayoisaiah/tempo/store"
)

const (
	envNoColor      = "NO_COLOR"
	envTempoNoColor = "TEMPO_NO_COLOR"
)

const (
	msgNoCurrent  = "There is no active time tracking."
	msgNoContinue = "No activity to continue from."
	msgNoActivity = "No activity found for id %d."
)

// state holds what a single invocation needs. The database is opened on
// first use so that commands which never touch it do not take its lock.
type state struct {
	clock   timeutil.Clock
	cfg     *config.Config
	db      *store.Client
	svc     *tracker.Service
	logFile io.Closer
}

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

func (s *state) service() (*tracker.Service, error) {
	if s.svc != nil {
		return s.svc, nil
	}

	db, err := store.NewClient(s.cfg.System.DBPath)
	if err != nil {
		return nil, err
	}

	s.db = db
	s.svc = tracker.New(db, db)

	return s.svc, nil
}

// runHook runs a configured hook. A failing hook does not undo the change
// that triggered it, so it is reported as a warning.
func (s *state) runHook(w io.Writer, command string, p hook.Payload) {
	err := hook.Run(command, p)
	if err != nil {
		slog.Warn("hook failed", slog.String("event", string(p.Event)), slog.Any("error", err))
		report.Warning(w, err.Error())
	}
}

func (s *state) recordedMsg(a models.Activity) string {
	return fmt.Sprintf(
		"Recorded %s from %s to %s (%s)",
		ui.Highlight(a.TagString()),
		ui.FormatTime(a.StartTime, s.cfg.Display.TwentyFourHour),
		ui.FormatTime(a.EndTime, s.cfg.Display.TwentyFourHour),
		ui.Cyan(timeutil.FormatDuration(a.Duration())),
	)
}

// recorded reports a finished activity and runs the stop hook.
func (s *state) recorded(w io.Writer, a models.Activity) {
	report.Success(w, s.recordedMsg(a))

	s.runHook(w, s.cfg.Hooks.OnStop, hook.Payload{
		Event: hook.Stopped,
		Start: a.StartTime,
		End:   a.EndTime,
		Tags:  a.Tags,
	})
}

// tracking reports a newly started activity and runs the start hook.
func (s *state) tracking(w io.Writer, o models.OngoingActivity) {
	report.Success(w, fmt.Sprintf(
		"Tracking %s since %s",
		ui.Highlight(o.TagString()),
		ui.FormatTime(o.StartTime, s.cfg.Display.TwentyFourHour),
	))

	s.runHook(w, s.cfg.Hooks.OnStart, hook.Payload{
		Event: hook.Started,
		Start: o.StartTime,
		Tags:  o.Tags,
	})
}

// reportStarted reports the activity closed by a start, if any, and the one
// that replaced it.
func (s *state) reportStarted(
	w io.Writer,
	previous *models.OngoingActivity,
	started models.OngoingActivity,
) {
	if previous != nil {
		closed, err := previous.IntoActivity(started.StartTime)
		if err == nil {
			s.recorded(w, closed)
		}
	}

	s.tracking(w, started)
}

// start makes activity the current one and reports the activity it closed.
func (s *state) start(w io.Writer, activity models.OngoingActivity) error {
	svc, err := s.service()
	if err != nil {
		return err
	}

	previous, err := svc.CurrentActivity()
	if err != nil {
		return err
	}

	started, err := svc.StartActivity(activity)
	if err != nil {
		return err
	}

	s.reportStarted(w, previous, started)

	return nil
}

// statusAction prints the current activity when no command is given.
func (s *state) statusAction(ctx *cli.Context) error {
	w := ctx.App.Writer

	svc, err := s.service()
	if err != nil {
		return err
	}

	current, err := svc.CurrentActivity()
	if err != nil {
		return err
	}

	if current == nil {
		report.Info(w, msgNoCurrent)
		return nil
	}

	now := s.clock.Now()

	report.Info(w, fmt.Sprintf(
		"Tracking %s since %s (%s)",
		ui.Highlight(current.TagString()),
		ui.FormatTime(current.StartTime, s.cfg.Display.TwentyFourHour),
		humanize.RelTime(current.StartTime, now, "ago", "from now"),
	))

	fmt.Fprintf(w, "Total time: %s\n", ui.Cyan(timeutil.FormatDuration(current.Elapsed(now))))

	return nil
}

// startAction handles the start command. A leading time phrase sets the start
// time, and the remaining arguments are the tags.
func (s *state) startAction(ctx *cli.Context) error {
	now := s.clock.Now()

	start, tags, ok := timeutil.SplitTimeClue(ctx.Args().Slice(), now)
	if !ok {
		start = now
	}

	if len(tags) == 0 {
		return errNoTags.Fmt("start [<when>] <tags...>")
	}

	return s.start(ctx.App.Writer, models.NewOngoingActivity(start, tags))
}

// stopAction handles the stop command. Stopping with nothing to stop is not
// an error.
func (s *state) stopAction(ctx *cli.Context) error {
	w := ctx.App.Writer
	end := s.clock.Now()

	if ctx.Args().Present() {
		var err error

		end, err = timeutil.ParseInstant(strings.Join(ctx.Args().Slice(), " "), end)
		if err != nil {
			return err
		}
	}

	svc, err := s.service()
	if err != nil {
		return err
	}

	stopped, err := svc.StopCurrentActivity(end)
	if err != nil {
		return err
	}

	if stopped == nil {
		report.Info(w, msgNoCurrent)
		return nil
	}

	s.recorded(w, *stopped)

	return nil
}

// continueAction starts tracking the most recently finished activity again.
func (s *state) continueAction(ctx *cli.Context) error {
	svc, err := s.service()
	if err != nil {
		return err
	}

	previous, err := svc.CurrentActivity()
	if err != nil {
		return err
	}

	started, err := svc.ContinueActivity(s.clock.Now())
	if err != nil {
		return err
	}

	if started == nil {
		report.Info(ctx.App.Writer, msgNoContinue)
		return nil
	}

	s.reportStarted(ctx.App.Writer, previous, *started)

	return nil
}

// trackAction records an activity that has already finished.
func (s *state) trackAction(ctx *cli.Context) error {
	now := s.clock.Now()

	start, rest, ok := timeutil.SplitTimeClue(ctx.Args().Slice(), now)
	if !ok {
		return errTrackUsage
	}

	end, tags, ok := timeutil.SplitTimeClue(rest, now)
	if !ok {
		return errTrackUsage
	}

	if len(tags) == 0 {
		return errNoTags.Fmt("track <start> <end> <tags...>")
	}

	svc, err := s.service()
	if err != nil {
		return err
	}

	tracked, err := svc.TrackActivity(models.Activity{
		StartTime: start,
		EndTime:   end,
		Tags:      tags,
	})
	if err != nil {
		return err
	}

	report.Success(ctx.App.Writer, s.recordedMsg(tracked))

	return nil
}

// deleteAction deletes a finished activity by identifier.
func (s *state) deleteAction(ctx *cli.Context) error {
	if ctx.Args().Len() != 1 {
		return errDeleteUsage
	}

	arg := ctx.Args().First()

	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return errInvalidID.Fmt(arg)
	}

	svc, err := s.service()
	if err != nil {
		return err
	}

	deleted, err := svc.DeleteActivity(id)
	if err != nil {
		return err
	}

	if deleted == nil {
		report.Info(ctx.App.Writer, fmt.Sprintf(msgNoActivity, id))
		return nil
	}

	report.Success(ctx.App.Writer, fmt.Sprintf(
		"Deleted activity %d: %s from %s to %s",
		id,
		ui.Highlight(deleted.TagString()),
		ui.FormatTime(deleted.StartTime, s.cfg.Display.TwentyFourHour),
		ui.FormatTime(deleted.EndTime, s.cfg.Display.TwentyFourHour),
	))

	return nil
}

// editConfigAction handles the edit-config command which opens the tempo
// config file in the user's default text editor.
func (s *state) editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, s.cfg.System.ConfigPath)

	cmd.Stderr = config.Stderr
	cmd.Stdin = config.Stdin
	cmd.Stdout = config.Stdout

	return cmd.Run()
}

func (s *state) beforeAction(ctx *cli.Context) error {
	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		ui.DisableStyling()
	}

	// Disable colour output if TEMPO_NO_COLOR is set
	if _, exists := os.LookupEnv(envTempoNoColor); exists {
		ui.DisableStyling()
	}

	paths, err := pathutil.New()
	if err != nil {
		return err
	}

	configPath := firstNonEmptyString(ctx.String("config"), paths.ConfigFilePath())

	cfg, err := config.New(
		config.WithViperConfig(configPath),
		config.WithCLIConfig(ctx),
		config.WithPaths(paths, configPath),
	)
	if err != nil {
		return err
	}

	if cfg.CLI.NoColor {
		ui.DisableStyling()
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	s.logFile, err = logging.Setup(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Path:   cfg.System.LogPath,
	})
	if err != nil {
		return err
	}

	s.cfg = cfg

	slog.Debug("config loaded", slog.String("config", spew.Sdump(cfg)))

	return nil
}

func (s *state) afterAction(ctx *cli.Context) error {
	if s.db != nil {
		err := s.db.Close()
		if err != nil {
			return err
		}
	}

	if s.logFile != nil {
		slog.DebugContext(ctx.Context, "exiting tempo")

		return s.logFile.Close()
	}

	return nil
}
