package stats

import (
	"fmt"
	"io"
	"strings"

	"github.com/ayoisaiah/fast/internal/models"
	"github.com/ayoisaiah/fast/internal/timeutil"
	"github.com/ayoisaiah/fast/internal/ui"
)

const timeFormat = "Jan 02, 2006 03:04 PM"

func fastRows(fasts []*models.Fast) [][]string {
	rows := [][]string{
		{"#", "START", "END", "DURATION", "PRESET", "DEEPEST STATE", "TAGS", "STATUS"},
	}

	for i, f := range fasts {
		statusText := ui.Green("completed")
		if !f.Completed {
			statusText = ui.Red("stopped")
		}

		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			f.StartTime.Format(timeFormat),
			f.EndTime.Format(timeFormat),
			timeutil.Clock(f.ElapsedSeconds),
			f.Preset,
			ui.State(f.MaxState),
			strings.Join(f.Tags, ", "),
			statusText,
		})
	}

	return rows
}

// List prints out a table of the given fasts.
func List(w io.Writer, fasts []*models.Fast) {
	if len(fasts) == 0 {
		fmt.Fprintln(w, noFastsMsg)
		return
	}

	ui.PrintTable(fastRows(fasts), w)
}
