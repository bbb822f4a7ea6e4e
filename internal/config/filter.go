package config

import (
	"slices"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/fast/internal/timeutil"
)

// FilterConfig represents a configuration to filter fasts in the database
// by their start time, end time, and assigned tags.
type FilterConfig struct {
	StartTime time.Time
	EndTime   time.Time
	Tags      []string
}

// getTimeRange returns the start and end time according to the
// specified time period.
func getTimeRange(period timeutil.Period, now time.Time) (start, end time.Time) {
	start = timeutil.RoundToStart(now)

	end = timeutil.RoundToEnd(now)

	//nolint:exhaustive // other cases covered by default
	switch period {
	case timeutil.PeriodToday:
		return
	case timeutil.PeriodYesterday:
		start = now.AddDate(0, 0, timeutil.Range[period])
		start = timeutil.RoundToStart(start)
		end = timeutil.RoundToEnd(start)

		return
	case timeutil.PeriodAllTime:
		start = time.Time{}
		return
	default:
		start = now.AddDate(0, 0, timeutil.Range[period])
		start = timeutil.RoundToStart(start)
	}

	return
}

// FilterOptions are the raw filter flags.
type FilterOptions struct {
	Period string
	Start  string
	End    string
	Tags   string
}

func newFilter(opts FilterOptions, now time.Time) (*FilterConfig, error) {
	filterCfg := &FilterConfig{}

	if opts.Tags != "" {
		filterCfg.Tags = splitAndTrimTags(opts.Tags)
	}

	period := timeutil.Period(strings.TrimSpace(opts.Period))

	if period != "" && !slices.Contains(timeutil.PeriodCollection, period) {
		return nil, errInvalidPeriod
	}

	if period != "" {
		filterCfg.StartTime, filterCfg.EndTime = getTimeRange(period, now)

		return filterCfg, nil
	}

	if opts.Start != "" {
		dateTime, err := timeutil.FromStr(opts.Start)
		if err != nil {
			return nil, errInvalidStartDate.Wrap(err)
		}

		filterCfg.StartTime = dateTime
	}

	if now.After(filterCfg.StartTime) {
		filterCfg.EndTime = now
	} else {
		filterCfg.EndTime = timeutil.RoundToEnd(filterCfg.StartTime)
	}

	if opts.End != "" {
		dateTime, err := timeutil.FromStr(opts.End)
		if err != nil {
			return nil, err
		}

		filterCfg.EndTime = dateTime
	}

	if filterCfg.StartTime.IsZero() {
		return nil, errInvalidStartDate
	}

	if filterCfg.EndTime.Before(filterCfg.StartTime) {
		return nil, errInvalidDateRange
	}

	return filterCfg, nil
}

// Filter initializes a configuration to filter fasts from command-line
// arguments. Without any arguments, the last seven days are selected.
func Filter(ctx *cli.Context) (*FilterConfig, error) {
	opts := FilterOptions{
		Period: ctx.String("period"),
		Start:  ctx.String("start"),
		End:    ctx.String("end"),
		Tags:   ctx.String("tag"),
	}

	if opts.Period == "" && opts.Start == "" {
		opts.Period = string(timeutil.Period7Days)
	}

	return newFilter(opts, time.Now())
}
