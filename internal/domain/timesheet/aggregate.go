package timesheet

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// AggregateDay folds one staff member's raw entries for a single calendar
// day into a DaySummary. Entries are paired clock-in to clock-out in clock-in
// order. An entry without a clock-out is treated as open: it contributes no
// hours but raises missing_clockout.
func AggregateDay(staffID, staffName string, date time.Time, entries []TimeEntry, bounds SessionBounds) DaySummary {
	sorted := make([]TimeEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ClockIn.Before(sorted[j].ClockIn)
	})

	summary := DaySummary{
		StaffID:    staffID,
		StaffName:  staffName,
		Date:       date,
		TotalHours: decimal.Zero,
	}
	flags := map[string]bool{}

	for _, e := range sorted {
		session := Session{EntryID: e.ID, ClockIn: e.ClockIn, ClockOut: e.ClockOut, Hours: decimal.Zero}

		switch {
		case e.ClockOut == nil:
			flags[FlagMissingClockout] = true
		case !e.ClockOut.After(e.ClockIn):
			summary.EntryErrors = append(summary.EntryErrors, EntryError{
				EntryID: e.ID,
				Message: "clock-out is not after clock-in",
			})
		default:
			session.Hours = hoursBetween(e.ClockIn, *e.ClockOut)
			summary.TotalHours = summary.TotalHours.Add(session.Hours)
			if session.Hours.LessThan(bounds.MinSessionHours) {
				flags[FlagShortSession] = true
			}
			if session.Hours.GreaterThan(bounds.MaxSessionHours) {
				flags[FlagLongSession] = true
			}
		}

		summary.Sessions = append(summary.Sessions, session)
	}

	if summary.TotalHours.IsPositive() {
		if summary.TotalHours.LessThan(bounds.MinDailyHours) {
			flags[FlagShortDay] = true
		}
		if summary.TotalHours.GreaterThan(bounds.MaxDailyHours) {
			flags[FlagLongDay] = true
		}
	}

	for _, f := range []string{FlagMissingClockout, FlagShortSession, FlagLongSession, FlagShortDay, FlagLongDay} {
		if flags[f] {
			summary.Flags = append(summary.Flags, f)
		}
	}

	return summary
}

// AggregateEntries groups entries by staff member and day, then aggregates
// each group. Results are ordered by staff name, then date.
func AggregateEntries(entries []TimeEntry, bounds SessionBounds) []DaySummary {
	type key struct {
		staffID string
		day     string
	}

	groups := map[key][]TimeEntry{}
	names := map[string]string{}
	for _, e := range entries {
		k := key{staffID: e.StaffID, day: e.Date.Format("2006-01-02")}
		groups[k] = append(groups[k], e)
		if e.StaffName != nil {
			names[e.StaffID] = *e.StaffName
		}
	}

	summaries := make([]DaySummary, 0, len(groups))
	for k, group := range groups {
		summaries = append(summaries, AggregateDay(k.staffID, names[k.staffID], group[0].Date, group, bounds))
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].StaffName != summaries[j].StaffName {
			return summaries[i].StaffName < summaries[j].StaffName
		}
		return summaries[i].Date.Before(summaries[j].Date)
	})

	return summaries
}

// hoursBetween returns the duration between two instants as decimal hours,
// rounded to two places.
func hoursBetween(from, to time.Time) decimal.Decimal {
	minutes := to.Sub(from).Minutes()
	return decimal.NewFromFloat(minutes).Div(decimal.NewFromInt(60)).Round(2)
}
