package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAnchor = time.Date(2025, time.March, 17, 0, 0, 0, 0, time.UTC)

func TestGenerateWindowThreeConsecutiveMonths(t *testing.T) {
	cycle := NewCycle(testAnchor)

	views, err := GenerateWindow(cycle, 3, 2025, date(2025, time.March, 17))
	require.NoError(t, err)
	require.Len(t, views, 3)

	assert.Equal(t, "March", views[0].MonthName)
	assert.Equal(t, 2025, views[0].Year)
	assert.Equal(t, "April", views[1].MonthName)
	assert.Equal(t, 2025, views[1].Year)
	assert.Equal(t, "May", views[2].MonthName)
	assert.Equal(t, 2025, views[2].Year)
}

func TestGenerateWindowRollsOverYearBoundary(t *testing.T) {
	cycle := NewCycle(testAnchor)

	views, err := GenerateWindow(cycle, 12, 2025, date(2025, time.December, 1))
	require.NoError(t, err)
	require.Len(t, views, 3)

	assert.Equal(t, time.December, views[0].Month)
	assert.Equal(t, 2025, views[0].Year)
	assert.Equal(t, time.January, views[1].Month)
	assert.Equal(t, 2026, views[1].Year)
	assert.Equal(t, time.February, views[2].Month)
	assert.Equal(t, 2026, views[2].Year)
}

func TestGenerateWindowRejectsInvalidInput(t *testing.T) {
	cycle := NewCycle(testAnchor)
	today := date(2025, time.March, 17)

	_, err := GenerateWindow(cycle, 0, 2025, today)
	assert.ErrorIs(t, err, ErrInvalidMonth)
	_, err = GenerateWindow(cycle, 13, 2025, today)
	assert.ErrorIs(t, err, ErrInvalidMonth)
	_, err = GenerateWindow(cycle, 3, 0, today)
	assert.ErrorIs(t, err, ErrInvalidYear)
	_, err = GenerateWindow(cycle, 3, 10000, today)
	assert.ErrorIs(t, err, ErrInvalidYear)
}

func TestEveryWeekRowHasSevenCells(t *testing.T) {
	cycle := NewCycle(testAnchor)

	views, err := GenerateWindow(cycle, 1, 2025, date(2025, time.January, 1))
	require.NoError(t, err)

	for _, view := range views {
		for i, week := range view.Weeks {
			assert.Len(t, week, 7, "%s %d week %d", view.MonthName, view.Year, i)
		}
	}
}

func TestPaddingCellsAreEmptyWithoutDate(t *testing.T) {
	cycle := NewCycle(testAnchor)

	// March 2025 starts on a Saturday: the first Monday-first row has five
	// padding cells. It ends on a Monday, so the last row has six.
	views, err := GenerateWindow(cycle, 3, 2025, date(2025, time.March, 17))
	require.NoError(t, err)

	march := views[0]
	firstWeek := march.Weeks[0]
	for i := 0; i < 5; i++ {
		assert.Equal(t, StatusEmpty, firstWeek[i].Status)
		assert.Zero(t, firstWeek[i].Day)
		assert.False(t, firstWeek[i].IsToday)
	}
	assert.Equal(t, 1, firstWeek[5].Day)
	assert.Equal(t, 2, firstWeek[6].Day)

	lastWeek := march.Weeks[len(march.Weeks)-1]
	assert.Equal(t, 31, lastWeek[0].Day)
	for i := 1; i < 7; i++ {
		assert.Equal(t, StatusEmpty, lastWeek[i].Status)
		assert.Zero(t, lastWeek[i].Day)
	}
}

func TestClassificationIndependentOfWindow(t *testing.T) {
	cycle := NewCycle(testAnchor)
	today := date(2025, time.April, 10)

	// April 2025 appears in three different windows; its cells must be
	// classified identically in all of them.
	var aprils []MonthView
	for _, start := range []struct{ month, year int }{{2, 2025}, {3, 2025}, {4, 2025}} {
		views, err := GenerateWindow(cycle, start.month, start.year, today)
		require.NoError(t, err)
		for _, v := range views {
			if v.Month == time.April && v.Year == 2025 {
				aprils = append(aprils, v)
			}
		}
	}
	require.Len(t, aprils, 3)
	assert.Equal(t, aprils[0], aprils[1])
	assert.Equal(t, aprils[0], aprils[2])
}

func countTodayCells(views []MonthView) int {
	count := 0
	for _, view := range views {
		for _, week := range view.Weeks {
			for _, cell := range week {
				if cell.IsToday {
					count++
				}
			}
		}
	}
	return count
}

func TestIsTodayFlaggedExactlyOnceInsideWindow(t *testing.T) {
	cycle := NewCycle(testAnchor)

	views, err := GenerateWindow(cycle, 3, 2025, date(2025, time.April, 10))
	require.NoError(t, err)
	assert.Equal(t, 1, countTodayCells(views))

	// Evaluation date outside the window: no cell is flagged.
	views, err = GenerateWindow(cycle, 3, 2025, date(2025, time.July, 1))
	require.NoError(t, err)
	assert.Equal(t, 0, countTodayCells(views))
}

func TestGridMatchesCycleClassification(t *testing.T) {
	cycle := NewCycle(testAnchor)

	views, err := GenerateWindow(cycle, 3, 2025, date(2025, time.March, 17))
	require.NoError(t, err)

	for _, view := range views {
		for _, week := range view.Weeks {
			for _, cell := range week {
				if cell.Day == 0 {
					continue
				}
				cellDate := date(view.Year, view.Month, cell.Day)
				assert.Equal(t, cycle.Classify(cellDate), cell.Status,
					"mismatch at %s", cellDate.Format("2006-01-02"))
			}
		}
	}
}
