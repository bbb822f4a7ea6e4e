package timer

import (
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/fast/internal/models"
	"github.com/ayoisaiah/fast/internal/pathutil"
	"github.com/ayoisaiah/fast/internal/timeutil"
)

// notify sends a desktop notification.
func notify(title, msg string) error {
	// pathToIcon will be an empty string if file is not found
	pathToIcon, _ := xdg.SearchDataFile(
		filepath.Join(pathutil.Dir(), "static", "icon.png"),
	)

	return beeep.Notify(title, msg, pathToIcon)
}

// runSessionCmd executes the specified command.
func runSessionCmd(sessionCmd string) error {
	if sessionCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return errSessionCmd.Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	cmd := exec.Command(name, args...)

	return cmd.Run()
}

// completionMessage summarises a completed fast for the notification.
func completionMessage(f *models.Fast) string {
	return fmt.Sprintf(
		"You fasted for %s and reached %s",
		timeutil.Hours(f.Duration().Round(time.Minute)),
		f.MaxState,
	)
}

// celebrate runs the completion actions for f. Failures are logged and never
// affect the timer.
func (t *Timer) celebrate(f *models.Fast) {
	if t.Opts.Notifications.Enabled {
		err := t.actions.notify(f.Preset+" complete", completionMessage(f))
		if err != nil {
			slog.Warn("unable to display notification", slog.Any("error", err))
		}
	}

	if t.Opts.Sound.Enabled {
		err := t.actions.chime(t.Opts.Sound.Volume)
		if err != nil {
			slog.Warn("unable to play chime", slog.Any("error", err))
		}
	}

	err := t.actions.sessionCmd(t.Opts.Settings.Cmd)
	if err != nil {
		slog.Warn(
			"session command failed",
			slog.String("cmd", t.Opts.Settings.Cmd),
			slog.Any("error", err),
		)
	}
}
