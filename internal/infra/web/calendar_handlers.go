// internal/infra/web/calendar_handlers.go
package web

import (
	"net/http"
	"strconv"

	"shift_calendar_app/internal/app"
	"shift_calendar_app/internal/domain/calendar"
	"shift_calendar_app/internal/domain/user"
)

// monthOption is one entry of the month picker.
type monthOption struct {
	Num  int
	Name string
}

// Russian month names for the picker, as the calendar page displays them.
var monthOptions = []monthOption{
	{1, "Январь"}, {2, "Февраль"}, {3, "Март"}, {4, "Апрель"},
	{5, "Май"}, {6, "Июнь"}, {7, "Июль"}, {8, "Август"},
	{9, "Сентябрь"}, {10, "Октябрь"}, {11, "Ноябрь"}, {12, "Декабрь"},
}

type calendarPageData struct {
	CurrentUser *user.User
	Flash       *flashNotice
	Window      *app.CalendarWindow
	Months      []monthOption
	Years       []int
	Recipients  []*user.User
	AnchorDate  string
}

func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	handlerLogger := s.logger.WithField("handler", "GET /")
	u := currentUser(r.Context())

	sel, err := parseMonthSelection(r)
	if err != nil {
		http.Error(w, "month and year must be integers", http.StatusBadRequest)
		return
	}

	window, err := s.calendarService.Window(sel)
	if err != nil {
		if err == calendar.ErrInvalidMonth || err == calendar.ErrInvalidYear {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		handlerLogger.WithError(err).Error("Failed to generate calendar window")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	recipients, err := s.userRepo.ListOthers(r.Context(), u.ID)
	if err != nil {
		handlerLogger.WithError(err).Error("Failed to list mur recipients")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	// The picker covers two years back and four ahead of today, like the
	// original page.
	currentYear := window.Today.Year()
	years := make([]int, 0, 7)
	for y := currentYear - 2; y <= currentYear+4; y++ {
		years = append(years, y)
	}

	s.render(w, "calendar.html", calendarPageData{
		CurrentUser: u,
		Flash:       readAndClearFlash(w, r),
		Window:      window,
		Months:      monthOptions,
		Years:       years,
		Recipients:  recipients,
		AnchorDate:  s.calendarService.Cycle().Anchor().Format("2006-01-02"),
	})
}

// parseMonthSelection reads the optional month/year query parameters.
// Absent parameters stay nil; present but non-numeric ones are an error.
func parseMonthSelection(r *http.Request) (app.MonthSelection, error) {
	sel := app.MonthSelection{}

	if raw := r.URL.Query().Get("month"); raw != "" {
		month, err := strconv.Atoi(raw)
		if err != nil {
			return sel, err
		}
		sel.Month = &month
	}
	if raw := r.URL.Query().Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return sel, err
		}
		sel.Year = &year
	}
	return sel, nil
}
