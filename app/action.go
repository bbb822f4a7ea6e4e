package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/fast/internal/config"
	"github.com/ayoisaiah/fast/internal/logger"
	"github.com/ayoisaiah/fast/internal/models"
	"github.com/ayoisaiah/fast/internal/pathutil"
	"github.com/ayoisaiah/fast/internal/ui"
	"github.com/ayoisaiah/fast/report"
	"github.com/ayoisaiah/fast/stats"
	"github.com/ayoisaiah/fast/store"
	"github.com/ayoisaiah/fast/timer"
)

const (
	envNoColor     = "NO_COLOR"
	envFastNoColor = "FAST_NO_COLOR"
)

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

// printJSON writes v to stdout as JSON.
func printJSON(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}

	pterm.Println(string(b))

	return nil
}

// loadConfig reads the config file, creating it with defaults if needed.
func loadConfig() (*config.Config, error) {
	cfg, err := config.New(
		config.WithViperConfig(pathutil.ConfigFilePath()),
	)
	if err != nil {
		return nil, err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	return cfg, nil
}

// fastHelper loads the config and retrieves the fasts selected by the filter
// flags.
func fastHelper(ctx *cli.Context) (
	*config.Config,
	*config.FilterConfig,
	[]*models.Fast,
	store.DB,
	error,
) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, nil, err
	}

	filter, err := config.Filter(ctx)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return nil, nil, nil, nil, err
	}

	fasts, err := db.GetFasts(filter.StartTime, filter.EndTime, filter.Tags)
	if err != nil {
		_ = db.Close()
		return nil, nil, nil, nil, err
	}

	return cfg, filter, fasts, db, nil
}

// historyAction handles the history command and prints a table of the fasts
// recorded within a time period.
func historyAction(ctx *cli.Context) error {
	_, _, fasts, db, err := fastHelper(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	if ctx.Bool("json") {
		return printJSON(fasts)
	}

	stats.List(os.Stdout, fasts)

	return nil
}

// deleteAction handles the delete command which deletes one or more
// fasts.
func deleteAction(ctx *cli.Context) error {
	_, _, fasts, db, err := fastHelper(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	deleted, err := stats.Delete(os.Stdout, os.Stdin, db, fasts)
	if err != nil {
		return err
	}

	if deleted {
		report.Deleted(len(fasts))
	}

	return nil
}

// statsAction computes the stats for the specified time period.
func statsAction(ctx *cli.Context) error {
	cfg, filter, fasts, db, err := fastHelper(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	now := time.Now()

	s := stats.Compute(fasts, filter.StartTime, filter.EndTime, now)

	// achievements and the weekly goal ignore the filters
	history, err := db.GetFasts(time.Time{}, now, nil)
	if err != nil {
		return err
	}

	s.Track(history, cfg.WeeklyGoal(), now)

	if ctx.Bool("json") {
		b, err := s.ToJSON()
		if err != nil {
			return err
		}

		fmt.Println(string(b))

		return nil
	}

	s.Render(os.Stdout)

	return nil
}

// presetsAction prints the preset fasting durations.
func presetsAction(ctx *cli.Context) error {
	if ctx.Bool("json") {
		return printJSON(presetsJSON())
	}

	ui.PrintTable(presetRows(), os.Stdout)

	return nil
}

// statesAction prints the metabolic states.
func statesAction(ctx *cli.Context) error {
	if ctx.Bool("json") {
		b, err := statesJSON()
		if err != nil {
			return err
		}

		pterm.Println(string(b))

		return nil
	}

	ui.PrintTable(stateRows(), os.Stdout)

	return nil
}

// statusAction handles the status command and prints the status of the
// running fast.
func statusAction(_ *cli.Context) error {
	return timer.ReportStatus(
		os.Stdout,
		pathutil.DBFilePath(),
		pathutil.StatusFilePath(),
	)
}

// editConfigAction handles the edit-config command which opens the fast
// config file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	// write the default config first if there isn't one
	if _, err := loadConfig(); err != nil {
		return err
	}

	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, pathutil.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

// defaultAction opens the fasting timer.
func defaultAction(ctx *cli.Context) error {
	configPath := pathutil.ConfigFilePath()

	cfg, err := config.New(
		config.WithPromptConfig(configPath),
		config.WithViperConfig(configPath),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	dbClient, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return err
	}

	t := timer.New(
		ctx.Context,
		dbClient,
		cfg,
		timer.WithStatusFile(pathutil.StatusFilePath()),
	)

	_, err = tea.NewProgram(t).Run()

	return errors.Join(err, t.Close())
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if FAST_NO_COLOR is set
	if _, exists := os.LookupEnv(envFastNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	err := pathutil.Initialize()
	if err != nil {
		return err
	}

	logger.Init(logger.Options{
		Path:  pathutil.LogFilePath(),
		Debug: ctx.Bool("debug"),
	})

	slog.InfoContext(
		ctx.Context,
		"starting fast",
		slog.String("version", config.Version),
		slog.Any("args", ctx.Args().Slice()),
	)

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting fast")

	return nil
}
