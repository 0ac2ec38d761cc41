// internal/domain/calendar/cycle.go
package calendar

import "time"

// DayStatus classifies a calendar day against the shift cycle.
type DayStatus string

const (
	StatusWork  DayStatus = "work"
	StatusOff   DayStatus = "off"
	StatusEmpty DayStatus = "empty" // padding cell outside the displayed month
)

// cycleLength is fixed: 2 work days followed by 2 off days.
const cycleLength = 4

// Cycle is the rotating 2-on/2-off shift schedule anchored at a reference
// date. The anchor marks cycle position 0, the first work day. The zero
// value is not usable; construct with NewCycle.
type Cycle struct {
	anchor time.Time
}

// NewCycle creates a cycle anchored at the given date. Only the calendar
// date of the anchor matters; the time of day and location are discarded.
func NewCycle(anchor time.Time) Cycle {
	return Cycle{anchor: midnightUTC(anchor)}
}

// Anchor returns the date marking cycle position 0.
func (c Cycle) Anchor() time.Time {
	return c.anchor
}

// Position returns the cycle position of d, always in [0,3]. The modulo is
// floored, not truncated, so dates before the anchor still map correctly:
// one day before the anchor is position 3, not -1.
func (c Cycle) Position(d time.Time) int {
	diff := daysBetween(c.anchor, midnightUTC(d))
	return ((diff % cycleLength) + cycleLength) % cycleLength
}

// Classify reports whether d is a work day or an off day. Positions 0 and 1
// are work, 2 and 3 are off.
func (c Cycle) Classify(d time.Time) DayStatus {
	if c.Position(d) < 2 {
		return StatusWork
	}
	return StatusOff
}

// midnightUTC pins a date to midnight UTC so day arithmetic is immune to
// DST shifts in the input's location.
func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the signed number of whole days from a to b. Both
// arguments must already be pinned to midnight UTC, so the difference in
// Unix seconds is an exact multiple of a day. time.Time.Sub is unusable
// here: a Duration saturates at roughly 292 years.
func daysBetween(a, b time.Time) int {
	const secondsPerDay = 24 * 60 * 60
	return int((b.Unix() - a.Unix()) / secondsPerDay)
}
