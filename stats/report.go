package stats

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/fast/internal/fasting"
	"github.com/ayoisaiah/fast/internal/timeutil"
	"github.com/ayoisaiah/fast/internal/ui"
)

const (
	barChartChar = "▇"
	noFastsMsg   = "No fasts found for the specified time range"
	dateFormat   = "January 02, 2006"
)

func hours(d time.Duration) string {
	return timeutil.Hours(d.Round(6 * time.Minute))
}

// getSummary retrieves the overall summary for the reporting period.
func getSummary(s *Summary) string {
	var b strings.Builder

	b.WriteString(ui.Blue("Summary") + "\n")
	fmt.Fprintln(&b, "Fasts:", ui.Green(s.Total))
	fmt.Fprintln(&b, "Completed:", ui.Green(s.Completed))
	fmt.Fprintln(&b, "Incomplete:", ui.Red(s.Incomplete))
	fmt.Fprintf(&b, "Success rate: %s\n", ui.Green(fmt.Sprintf("%.0f%%", s.SuccessRate())))
	fmt.Fprintln(&b, "Time fasted:", ui.Green(hours(s.TotalTime)))
	fmt.Fprintln(&b, "Average fast:", ui.Green(hours(s.AverageTime())))
	fmt.Fprintln(&b, "Longest fast:", ui.Green(hours(s.LongestTime)))
	fmt.Fprintf(&b, "Current streak: %s\n", ui.Green(pluralDays(s.Streak)))

	return b.String()
}

func pluralDays(n int) string {
	if n == 1 {
		return "1 day"
	}

	return fmt.Sprintf("%d days", n)
}

// getGoal reports the progress towards this week's goal.
func getGoal(s *Summary) string {
	if s.Goal == nil {
		return ""
	}

	return fmt.Sprintf(
		"\n%s\n%s/%d days (%.0f%%)\n",
		ui.Blue("Weekly goal"),
		ui.Green(s.Goal.Days),
		s.Goal.Target,
		s.Goal.Percent(),
	)
}

// getAchievements lists the milestones and when they were reached.
func getAchievements(s *Summary) string {
	if len(s.Achievements) == 0 {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n" + ui.Blue("Achievements") + "\n")

	for _, a := range s.Achievements {
		if !a.Unlocked() {
			fmt.Fprintf(&b, "%s: %s (%s)\n", a.Name, ui.Yellow("locked"), a.Description)
			continue
		}

		fmt.Fprintf(&b, "%s: %s\n", ui.Highlight(a.Name), ui.Green(a.UnlockedAt.Format(dateFormat)))
	}

	return b.String()
}

// getStates lists how many fasts reached each metabolic state.
func getStates(s *Summary) string {
	var b strings.Builder

	b.WriteString("\n" + ui.Blue("Deepest state reached") + "\n")

	for _, state := range fasting.States {
		fmt.Fprintf(&b, "%s: %s\n", ui.State(state.Name), ui.Green(s.States[state.Name]))
	}

	return b.String()
}

// getTags retrieves the tag breakdown for the reporting period.
func getTags(s *Summary) string {
	if len(s.Tags) == 0 {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n" + ui.Blue("Tags") + "\n")

	for _, tag := range s.TagNames() {
		fmt.Fprintf(&b, "%s: %s\n", tag, ui.Green(hours(s.Tags[tag])))
	}

	return b.String()
}

// getBarChart renders the hours fasted on each day of the week.
func getBarChart(s *Summary) string {
	bars := make(pterm.Bars, 0, 7)

	for day := time.Sunday; day <= time.Saturday; day++ {
		bars = append(bars, pterm.Bar{
			Value: timeutil.Round(s.Weekdays[day].Hours()),
			Label: day.String(),
		})
	}

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return "\n" + ui.Blue("Weekly breakdown (hours)") + "\n" + chart
}

// Render writes a report of the summary to w.
func (s *Summary) Render(w io.Writer) {
	if s.Total == 0 {
		fmt.Fprintln(w, noFastsMsg)
		return
	}

	timePeriod := "Reporting period: " + s.StartTime.Format(dateFormat) +
		" - " + s.EndTime.Format(dateFormat)

	header := pterm.DefaultHeader.WithBackgroundStyle(pterm.NewStyle(pterm.BgYellow)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprintln(timePeriod)

	output := fmt.Sprint(
		header,
		getSummary(s),
		getGoal(s),
		getStates(s),
		getTags(s),
		getBarChart(s),
		getAchievements(s),
	)

	fmt.Fprintln(w, strings.TrimSpace(output))
}

type jsonAchievement struct {
	UnlockedAt  *time.Time `json:"unlocked_at,omitempty"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Unlocked    bool       `json:"unlocked"`
}

type jsonGoal struct {
	WeekStart time.Time `json:"week_start"`
	Percent   float64   `json:"percent"`
	Days      int       `json:"days"`
	Target    int       `json:"target"`
}

type jsonSummary struct {
	StartTime     time.Time          `json:"start_time"`
	EndTime       time.Time          `json:"end_time"`
	States        map[string]int     `json:"states"`
	Tags          map[string]float64 `json:"tags"`
	Weekdays      map[string]float64 `json:"weekdays"`
	WeeklyGoal    *jsonGoal          `json:"weekly_goal,omitempty"`
	Achievements  []jsonAchievement  `json:"achievements,omitempty"`
	TotalHours    float64            `json:"total_hours"`
	AverageHours  float64            `json:"average_hours"`
	LongestHours  float64            `json:"longest_hours"`
	SuccessRate   float64            `json:"success_rate"`
	Total         int                `json:"total"`
	Completed     int                `json:"completed"`
	Incomplete    int                `json:"incomplete"`
	CurrentStreak int                `json:"current_streak"`
}

// ToJSON encodes the summary with durations expressed in hours.
func (s *Summary) ToJSON() ([]byte, error) {
	j := jsonSummary{
		StartTime:     s.StartTime,
		EndTime:       s.EndTime,
		States:        s.States,
		Tags:          make(map[string]float64, len(s.Tags)),
		Weekdays:      make(map[string]float64, len(s.Weekdays)),
		TotalHours:    s.TotalTime.Hours(),
		AverageHours:  s.AverageTime().Hours(),
		LongestHours:  s.LongestTime.Hours(),
		SuccessRate:   s.SuccessRate(),
		Total:         s.Total,
		Completed:     s.Completed,
		Incomplete:    s.Incomplete,
		CurrentStreak: s.Streak,
	}

	for k, v := range s.Tags {
		j.Tags[k] = v.Hours()
	}

	for k, v := range s.Weekdays {
		j.Weekdays[k.String()] = v.Hours()
	}

	if s.Goal != nil {
		j.WeeklyGoal = &jsonGoal{
			WeekStart: s.Goal.WeekStart,
			Percent:   s.Goal.Percent(),
			Days:      s.Goal.Days,
			Target:    s.Goal.Target,
		}
	}

	for _, a := range s.Achievements {
		ja := jsonAchievement{
			Name:        a.Name,
			Description: a.Description,
			Unlocked:    a.Unlocked(),
		}

		if ja.Unlocked {
			ja.UnlockedAt = &a.UnlockedAt
		}

		j.Achievements = append(j.Achievements, ja)
	}

	return json.Marshal(j)
}
