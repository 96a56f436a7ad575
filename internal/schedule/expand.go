// Package schedule expands recurring entries into dated cash-flow events.
//
// Stepping between occurrences is delegated to cron schedules evaluated at
// midnight UTC. Day-of-month is capped at 28 for every month-based rule so that
// each occurrence exists in every month; an entry starting on the 31st keeps
// its first occurrence there and lands on the 28th afterwards. This is an
// approximation, not "same day next month".
package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/Dan9191/serenity-service/internal/models"
	"github.com/Dan9191/serenity-service/internal/utils"
	"github.com/robfig/cron/v3"
)

// MaxDayOfMonth is the day-of-month cap for month-based recurrences
const MaxDayOfMonth = 28

var parser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// StartDate resolves the effective first date of an entry: its start_date when
// valid, the anchor otherwise, and never earlier than the anchor.
func StartDate(e models.Entry, anchor time.Time) time.Time {
	anchor = utils.Day(anchor)
	start := utils.ParseDateOr(e.StartDate, anchor)
	if start.Before(anchor) {
		return anchor
	}
	return start
}

// stepper returns the schedule producing the occurrences after start
func stepper(rec models.Recurrence, start time.Time) (cron.Schedule, error) {
	day := start.Day()
	if day > MaxDayOfMonth {
		day = MaxDayOfMonth
	}

	var spec string
	switch rec {
	case models.Weekly:
		spec = fmt.Sprintf("0 0 * * %d", int(start.Weekday()))
	case models.Quarterly:
		m := int(start.Month())
		spec = fmt.Sprintf("0 0 %d %d,%d,%d,%d *", day, m, (m+2)%12+1, (m+5)%12+1, (m+8)%12+1)
	case models.Yearly:
		spec = fmt.Sprintf("0 0 %d %d *", day, int(start.Month()))
	default:
		spec = fmt.Sprintf("0 0 %d * *", day)
	}

	sched, err := parser.Parse(spec)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s schedule %q: %w", rec, spec, err)
	}
	return sched, nil
}

// Expand turns one entry into its events between anchor and end, both
// inclusive. Zero-amount entries produce no events.
func Expand(e models.Entry, anchor, end time.Time) ([]models.Event, error) {
	amount := float64(e.Amount)
	if amount == 0 {
		return nil, nil
	}

	end = utils.Day(end)
	start := StartDate(e, anchor)
	if start.After(end) {
		return nil, nil
	}

	delta := e.Kind.Sign() * amount
	rec := e.Recurrence.Normalize()
	if rec == models.OneOff {
		return []models.Event{{Date: start, Delta: delta}}, nil
	}

	sched, err := stepper(rec, start)
	if err != nil {
		return nil, err
	}

	var events []models.Event
	for cur := start; !cur.After(end); {
		events = append(events, models.Event{Date: cur, Delta: delta})
		next := sched.Next(cur)
		if next.IsZero() || !next.After(cur) {
			break
		}
		cur = next
	}
	return events, nil
}

// Events expands every entry over [anchor, anchor+horizonDays] and merges them
// into one stream sorted by date. Same-day events keep entry order.
func Events(entries []models.Entry, anchor time.Time, horizonDays int) ([]models.Event, error) {
	anchor = utils.Day(anchor)
	end := anchor.AddDate(0, 0, horizonDays)

	var all []models.Event
	for i, e := range entries {
		evts, err := Expand(e, anchor, end)
		if err != nil {
			return nil, fmt.Errorf("failed to expand entry %d: %w", i, err)
		}
		all = append(all, evts...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Date.Before(all[j].Date)
	})
	return all, nil
}
