package stats

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/fast/internal/models"
	"github.com/ayoisaiah/fast/store"
)

// Delete lists the given fasts and removes them from the database once the
// user confirms. It reports whether the fasts were deleted.
func Delete(
	w io.Writer,
	r io.Reader,
	db store.DB,
	fasts []*models.Fast,
) (bool, error) {
	if len(fasts) == 0 {
		fmt.Fprintln(w, noFastsMsg)
		return false, nil
	}

	List(w, fasts)

	warning := pterm.Warning.Sprint(
		"The above fasts will be deleted permanently. Continue? [y/N] ",
	)

	fmt.Fprint(w, warning)

	reader := bufio.NewReader(r)

	answer, err := reader.ReadString('\n')
	if err != nil && answer == "" {
		return false, nil
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
	default:
		return false, nil
	}

	startTimes := make([]time.Time, len(fasts))
	for i, f := range fasts {
		startTimes[i] = f.StartTime
	}

	return true, db.DeleteFasts(startTimes)
}
