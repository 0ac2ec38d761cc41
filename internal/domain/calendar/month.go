// internal/domain/calendar/month.go
package calendar

import (
	"fmt"
	"time"
)

// Errors for malformed window requests. The generator validates its inputs
// instead of producing a garbled grid.
var ErrInvalidMonth = fmt.Errorf("month must be between 1 and 12")
var ErrInvalidYear = fmt.Errorf("year is out of supported range")

// WindowMonths is the number of consecutive months a single window covers.
const WindowMonths = 3

// daysPerWeek is the fixed width of every grid row.
const daysPerWeek = 7

// DayCell is a single cell of a rendered month grid. Day is 0 for padding
// cells outside the month; those always carry StatusEmpty and are never
// flagged as today.
type DayCell struct {
	Day     int
	Status  DayStatus
	IsToday bool
}

// MonthView is one month's calendar grid prepared for display. Weeks are
// Monday-first rows of exactly 7 cells each.
type MonthView struct {
	MonthName string
	Month     time.Month
	Year      int
	Weeks     [][]DayCell
}

// GenerateWindow builds WindowMonths consecutive month grids starting at
// (startMonth, startYear), rolling across year boundaries (December 2025 is
// followed by January 2026). today is the evaluation date: the single cell
// matching it by year/month/day is flagged IsToday.
//
// Day classification depends only on the cycle and the date itself, never
// on which window the date happens to fall in.
func GenerateWindow(cycle Cycle, startMonth, startYear int, today time.Time) ([]MonthView, error) {
	if startMonth < 1 || startMonth > 12 {
		return nil, ErrInvalidMonth
	}
	if startYear < 1 || startYear > 9999 {
		return nil, ErrInvalidYear
	}

	views := make([]MonthView, 0, WindowMonths)
	for i := 0; i < WindowMonths; i++ {
		month := time.Month((startMonth+i-1)%12 + 1)
		year := startYear + (startMonth+i-1)/12
		views = append(views, buildMonth(cycle, year, month, today))
	}
	return views, nil
}

// buildMonth partitions a month into Monday-first week rows, padding the
// first and last rows with empty cells so every row is 7 cells wide.
func buildMonth(cycle Cycle, year int, month time.Month, today time.Time) MonthView {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	lastDay := first.AddDate(0, 1, -1).Day()

	// Column index of the 1st in a Monday-first week. time.Weekday counts
	// Sunday as 0, hence the +6 rotation.
	lead := (int(first.Weekday()) + 6) % daysPerWeek

	weeks := make([][]DayCell, 0, 6)
	week := make([]DayCell, 0, daysPerWeek)
	for i := 0; i < lead; i++ {
		week = append(week, DayCell{Status: StatusEmpty})
	}

	for day := 1; day <= lastDay; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		week = append(week, DayCell{
			Day:     day,
			Status:  cycle.Classify(date),
			IsToday: sameDate(date, today),
		})
		if len(week) == daysPerWeek {
			weeks = append(weeks, week)
			week = make([]DayCell, 0, daysPerWeek)
		}
	}

	if len(week) > 0 {
		for len(week) < daysPerWeek {
			week = append(week, DayCell{Status: StatusEmpty})
		}
		weeks = append(weeks, week)
	}

	return MonthView{
		MonthName: month.String(),
		Month:     month,
		Year:      year,
		Weeks:     weeks,
	}
}

// sameDate compares two instants by calendar date only.
func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
