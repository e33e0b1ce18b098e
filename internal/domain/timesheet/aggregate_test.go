package timesheet

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBounds() SessionBounds {
	return SessionBounds{
		MinSessionHours: decimal.RequireFromString("0.5"),
		MaxSessionHours: decimal.RequireFromString("12"),
		MinDailyHours:   decimal.RequireFromString("1"),
		MaxDailyHours:   decimal.RequireFromString("14"),
	}
}

func at(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04", value)
	require.NoError(t, err)
	return parsed
}

func atPtr(t *testing.T, value string) *time.Time {
	t.Helper()
	parsed := at(t, value)
	return &parsed
}

func TestAggregateDay_SingleSession(t *testing.T) {
	day := at(t, "2025-06-02 00:00")
	entries := []TimeEntry{
		{ID: "e1", StaffID: "s1", Date: day, ClockIn: at(t, "2025-06-02 10:00"), ClockOut: atPtr(t, "2025-06-02 18:30")},
	}

	summary := AggregateDay("s1", "Alice", day, entries, testBounds())

	assert.True(t, summary.TotalHours.Equal(decimal.RequireFromString("8.5")), "got %s", summary.TotalHours)
	assert.Len(t, summary.Sessions, 1)
	assert.Empty(t, summary.Flags)
	assert.Empty(t, summary.EntryErrors)
}

func TestAggregateDay_MultipleSessionsSorted(t *testing.T) {
	day := at(t, "2025-06-02 00:00")
	// Entries arrive out of order; sessions come back in clock-in order.
	entries := []TimeEntry{
		{ID: "e2", StaffID: "s1", Date: day, ClockIn: at(t, "2025-06-02 15:00"), ClockOut: atPtr(t, "2025-06-02 19:00")},
		{ID: "e1", StaffID: "s1", Date: day, ClockIn: at(t, "2025-06-02 09:00"), ClockOut: atPtr(t, "2025-06-02 13:00")},
	}

	summary := AggregateDay("s1", "Alice", day, entries, testBounds())

	require.Len(t, summary.Sessions, 2)
	assert.Equal(t, "e1", summary.Sessions[0].EntryID)
	assert.Equal(t, "e2", summary.Sessions[1].EntryID)
	assert.True(t, summary.TotalHours.Equal(decimal.NewFromInt(8)))
}

func TestAggregateDay_MissingClockout(t *testing.T) {
	day := at(t, "2025-06-02 00:00")
	entries := []TimeEntry{
		{ID: "e1", StaffID: "s1", Date: day, ClockIn: at(t, "2025-06-02 09:00"), ClockOut: atPtr(t, "2025-06-02 12:00")},
		{ID: "e2", StaffID: "s1", Date: day, ClockIn: at(t, "2025-06-02 13:00")},
	}

	summary := AggregateDay("s1", "Alice", day, entries, testBounds())

	// Open session contributes nothing to the total but still flags.
	assert.True(t, summary.TotalHours.Equal(decimal.NewFromInt(3)))
	assert.Contains(t, summary.Flags, FlagMissingClockout)
	assert.Len(t, summary.Sessions, 2)
	assert.True(t, summary.Sessions[1].Hours.IsZero())
}

func TestAggregateDay_ClockOutBeforeClockIn(t *testing.T) {
	day := at(t, "2025-06-02 00:00")
	entries := []TimeEntry{
		{ID: "e1", StaffID: "s1", Date: day, ClockIn: at(t, "2025-06-02 12:00"), ClockOut: atPtr(t, "2025-06-02 09:00")},
	}

	summary := AggregateDay("s1", "Alice", day, entries, testBounds())

	require.Len(t, summary.EntryErrors, 1)
	assert.Equal(t, "e1", summary.EntryErrors[0].EntryID)
	assert.True(t, summary.TotalHours.IsZero())
}

func TestAggregateDay_BoundFlags(t *testing.T) {
	day := at(t, "2025-06-02 00:00")
	entries := []TimeEntry{
		// 15 minutes: short session, and the day total is short too.
		{ID: "e1", StaffID: "s1", Date: day, ClockIn: at(t, "2025-06-02 09:00"), ClockOut: atPtr(t, "2025-06-02 09:15")},
	}

	summary := AggregateDay("s1", "Alice", day, entries, testBounds())

	assert.Contains(t, summary.Flags, FlagShortSession)
	assert.Contains(t, summary.Flags, FlagShortDay)

	long := []TimeEntry{
		{ID: "e2", StaffID: "s1", Date: day, ClockIn: at(t, "2025-06-02 06:00"), ClockOut: atPtr(t, "2025-06-02 21:00")},
	}
	summary = AggregateDay("s1", "Alice", day, long, testBounds())

	assert.Contains(t, summary.Flags, FlagLongSession)
	assert.Contains(t, summary.Flags, FlagLongDay)
}

func TestAggregateEntries_GroupsByStaffAndDay(t *testing.T) {
	alice := "Alice"
	bob := "Bob"
	day1 := at(t, "2025-06-02 00:00")
	day2 := at(t, "2025-06-03 00:00")

	entries := []TimeEntry{
		{ID: "e1", StaffID: "s2", StaffName: &bob, Date: day1, ClockIn: at(t, "2025-06-02 09:00"), ClockOut: atPtr(t, "2025-06-02 17:00")},
		{ID: "e2", StaffID: "s1", StaffName: &alice, Date: day1, ClockIn: at(t, "2025-06-02 10:00"), ClockOut: atPtr(t, "2025-06-02 14:00")},
		{ID: "e3", StaffID: "s1", StaffName: &alice, Date: day2, ClockIn: at(t, "2025-06-03 10:00"), ClockOut: atPtr(t, "2025-06-03 14:00")},
	}

	summaries := AggregateEntries(entries, testBounds())

	require.Len(t, summaries, 3)
	// Ordered by staff name, then date.
	assert.Equal(t, "Alice", summaries[0].StaffName)
	assert.Equal(t, day1, summaries[0].Date)
	assert.Equal(t, "Alice", summaries[1].StaffName)
	assert.Equal(t, day2, summaries[1].Date)
	assert.Equal(t, "Bob", summaries[2].StaffName)
}

func TestAggregateEntries_Empty(t *testing.T) {
	summaries := AggregateEntries(nil, testBounds())
	assert.Empty(t, summaries)
}
