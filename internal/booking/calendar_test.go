package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMonthLayoutAcrossYears(t *testing.T) {
	t.Parallel()

	today := Day{Year: 2026, Month: time.October, Day: 17}
	for year := 2023; year <= 2030; year++ {
		for m := time.January; m <= time.December; m++ {
			cursor := Month{Year: year, Month: m}
			view := BuildMonth(cursor, today, Day{})

			first := time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
			daysInMonth := first.AddDate(0, 1, -1).Day()
			leading := int(first.Weekday())

			require.Equalf(t, leading, view.Leading, "%s leading", cursor.Label())
			require.Lenf(t, view.Cells, leading+daysInMonth, "%s cells", cursor.Label())
			for i := 0; i < leading; i++ {
				assert.True(t, view.Cells[i].Blank)
				assert.True(t, view.Cells[i].Disabled)
				assert.False(t, view.Cells[i].Selectable())
			}
			for i, cell := range view.Cells[leading:] {
				assert.Equal(t, i+1, cell.Day)
				assert.False(t, cell.Blank)
			}
		}
	}
}

func TestBuildMonthDisablesPastAndTagsToday(t *testing.T) {
	t.Parallel()

	today := Day{Year: 2026, Month: time.October, Day: 17}
	view := BuildMonth(MonthOf(today), today, Day{})

	todays := 0
	for _, cell := range view.Cells {
		if cell.Blank {
			continue
		}
		if cell.Date.Before(today) {
			assert.Truef(t, cell.Disabled, "%s should be disabled", cell.Date)
			assert.False(t, cell.Selectable())
		} else {
			assert.Falsef(t, cell.Disabled, "%s should be selectable", cell.Date)
		}
		if cell.Today {
			todays++
			assert.Equal(t, today, cell.Date)
		}
	}
	assert.Equal(t, 1, todays)
	assert.Equal(t, "October 2026", view.Label)
	assert.Equal(t, Month{Year: 2026, Month: time.September}, view.Prev)
	assert.Equal(t, Month{Year: 2026, Month: time.November}, view.Next)
}

func TestBuildMonthOtherMonthsHaveNoToday(t *testing.T) {
	t.Parallel()

	today := Day{Year: 2026, Month: time.October, Day: 17}
	past := BuildMonth(Month{Year: 2026, Month: time.September}, today, Day{})
	future := BuildMonth(Month{Year: 2027, Month: time.February}, today, Day{})

	for _, cell := range past.Cells {
		assert.True(t, cell.Disabled)
		assert.False(t, cell.Today)
	}
	for _, cell := range future.Cells[future.Leading:] {
		assert.False(t, cell.Disabled)
		assert.False(t, cell.Today)
	}
	assert.Len(t, future.Cells[future.Leading:], 28)
}

func TestBuildMonthMarksSelection(t *testing.T) {
	t.Parallel()

	today := Day{Year: 2026, Month: time.October, Day: 17}
	picked := Day{Year: 2026, Month: time.October, Day: 20}
	view := BuildMonth(MonthOf(today), today, picked)

	selected := 0
	for _, cell := range view.Cells {
		if cell.Selected {
			selected++
			assert.Equal(t, picked, cell.Date)
		}
	}
	assert.Equal(t, 1, selected)
}

func TestMonthCursorWrapsYears(t *testing.T) {
	t.Parallel()

	jan := Month{Year: 2027, Month: time.January}
	assert.Equal(t, Month{Year: 2026, Month: time.December}, jan.Prev())
	assert.Equal(t, Month{Year: 2028, Month: time.January}, jan.Add(12))
	assert.Equal(t, Month{Year: 2024, Month: time.February}, jan.Add(-35))
	assert.Equal(t, 29, Month{Year: 2028, Month: time.February}.Days())
}

func TestDayTextRoundTrip(t *testing.T) {
	t.Parallel()

	d, err := ParseDay("2026-10-19")
	require.NoError(t, err)
	assert.Equal(t, Day{Year: 2026, Month: time.October, Day: 19}, d)
	assert.Equal(t, time.Monday, d.Weekday())

	var empty Day
	require.NoError(t, empty.UnmarshalText([]byte("")))
	assert.True(t, empty.IsZero())

	_, err = ParseDay("19/10/2026")
	assert.Error(t, err)
}
