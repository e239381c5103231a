package timesheet

import (
	"sort"
	"time"

	"github.com/crewline/staffing-backend-go/internal/domain/timesheet"
)

// maxDisplayMeals caps how many implicit inter-interval gaps are surfaced
// as meal breaks on timesheets.
const maxDisplayMeals = 2

type workInterval struct {
	start time.Time
	end   time.Time
}

// Aggregate scans one worker's ordered entries for one event and produces
// the worked-time summary. A clock_in opens an interval and the next
// clock_out closes it; a second clock_in before a clock_out is ignored.
// An unterminated clock_in contributes nothing, and an interval whose
// clock_out precedes its clock_in contributes nothing. Entries with a zero
// timestamp are dropped up front so malformed rows never abort the scan.
func Aggregate(userID, eventID string, entries []timesheet.TimeEntry) timesheet.WorkSummary {
	summary := timesheet.WorkSummary{UserID: userID, EventID: eventID}

	cleaned := make([]timesheet.TimeEntry, 0, len(entries))
	for _, e := range entries {
		if e.Timestamp.IsZero() {
			continue
		}
		cleaned = append(cleaned, e)
	}
	sort.SliceStable(cleaned, func(i, j int) bool {
		return cleaned[i].Timestamp.Before(cleaned[j].Timestamp)
	})

	var (
		intervals []workInterval
		open      *time.Time
		mealOpen  *time.Time
		meals     []timesheet.MealSpan
	)

	for _, e := range cleaned {
		switch e.Action {
		case timesheet.ActionClockIn:
			if open == nil {
				t := e.Timestamp
				open = &t
			}
		case timesheet.ActionClockOut:
			if open != nil {
				if e.Timestamp.After(*open) {
					intervals = append(intervals, workInterval{start: *open, end: e.Timestamp})
				}
				open = nil
			}
		case timesheet.ActionMealStart:
			if mealOpen == nil {
				t := e.Timestamp
				mealOpen = &t
			}
		case timesheet.ActionMealEnd:
			if mealOpen != nil {
				if e.Timestamp.After(*mealOpen) && len(meals) < maxDisplayMeals {
					meals = append(meals, timesheet.MealSpan{Start: *mealOpen, End: e.Timestamp, Explicit: true})
				}
				mealOpen = nil
			}
		}
	}

	var worked time.Duration
	for _, iv := range intervals {
		worked += iv.end.Sub(iv.start)
	}
	summary.ActualHours = worked.Hours()

	if len(intervals) > 0 {
		first := intervals[0].start
		last := intervals[len(intervals)-1].end
		summary.FirstClockIn = &first
		summary.LastClockOut = &last
	}

	// Meal markers bracketed by a clock_out/clock_in pair were never part of
	// the summed intervals, so their duration is reported but not subtracted.
	if len(meals) == 0 && len(intervals) >= 2 {
		for i := 1; i < len(intervals) && len(meals) < maxDisplayMeals; i++ {
			gapStart := intervals[i-1].end
			gapEnd := intervals[i].start
			if gapEnd.After(gapStart) {
				meals = append(meals, timesheet.MealSpan{Start: gapStart, End: gapEnd, Explicit: false})
			}
		}
	}
	summary.MealSpans = meals

	var mealDur time.Duration
	for _, m := range meals {
		mealDur += m.End.Sub(m.Start)
	}
	summary.MealHours = mealDur.Hours()

	return summary
}

// PairedHours sums clock_in/clock_out pairs only, with the same pairing
// rules as Aggregate. Used for the weekly overtime lookback, where meal
// markers and display spans are irrelevant.
func PairedHours(entries []timesheet.TimeEntry) float64 {
	var (
		total time.Duration
		open  *time.Time
	)

	sorted := make([]timesheet.TimeEntry, 0, len(entries))
	for _, e := range entries {
		if e.Timestamp.IsZero() {
			continue
		}
		sorted = append(sorted, e)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	for _, e := range sorted {
		switch e.Action {
		case timesheet.ActionClockIn:
			if open == nil {
				t := e.Timestamp
				open = &t
			}
		case timesheet.ActionClockOut:
			if open != nil {
				if e.Timestamp.After(*open) {
					total += e.Timestamp.Sub(*open)
				}
				open = nil
			}
		}
	}

	return total.Hours()
}

// WeekMonday returns 00:00 UTC of the Monday of t's calendar week.
func WeekMonday(t time.Time) time.Time {
	t = t.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(day.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return day.AddDate(0, 0, -offset)
}
