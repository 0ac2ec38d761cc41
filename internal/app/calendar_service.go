// internal/app/calendar_service.go
package app

import (
	"time"

	"shift_calendar_app/internal/domain/calendar"
)

// MonthSelection carries the optional month/year request parameters. A nil
// field means the parameter was absent from the request. If either field is
// absent, both fall back to the evaluation date; an explicitly supplied
// out-of-range value (including an explicit 0) is rejected, never silently
// defaulted.
type MonthSelection struct {
	Month *int
	Year  *int
}

// CalendarWindow is the resolved 3-month view plus the selection it was
// generated for, ready for the calendar page.
type CalendarWindow struct {
	SelectedMonth int
	SelectedYear  int
	Today         time.Time
	Months        []calendar.MonthView
}

// CalendarService prepares shift calendar windows for display. It holds the
// configured cycle anchor; nothing about it is request-scoped.
type CalendarService struct {
	cycle calendar.Cycle
	now   func() time.Time // injectable clock for tests
}

func NewCalendarService(cycle calendar.Cycle, now func() time.Time) *CalendarService {
	if now == nil {
		now = time.Now
	}
	return &CalendarService{cycle: cycle, now: now}
}

// Cycle returns the configured shift cycle.
func (s *CalendarService) Cycle() calendar.Cycle {
	return s.cycle
}

// Window resolves the selection and generates the 3-month window. Returns
// calendar.ErrInvalidMonth / calendar.ErrInvalidYear for explicit bad input.
func (s *CalendarService) Window(sel MonthSelection) (*CalendarWindow, error) {
	today := s.now()

	month := int(today.Month())
	year := today.Year()
	if sel.Month != nil && sel.Year != nil {
		month = *sel.Month
		year = *sel.Year
	}

	months, err := calendar.GenerateWindow(s.cycle, month, year, today)
	if err != nil {
		return nil, err
	}

	return &CalendarWindow{
		SelectedMonth: month,
		SelectedYear:  year,
		Today:         today,
		Months:        months,
	}, nil
}
