package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SlotIntervalMinutes is the fixed spacing between bookable time points.
const SlotIntervalMinutes = 30

var ErrInvalidClock = errors.New("invalid HH:MM clock value")

// weekdayKeys maps Go weekdays to the 3-letter keys used in opening hours
// JSON. Derived from the calendar, never from locale formatting.
var weekdayKeys = map[time.Weekday]string{
	time.Monday:    "mon",
	time.Tuesday:   "tue",
	time.Wednesday: "wed",
	time.Thursday:  "thu",
	time.Friday:    "fri",
	time.Saturday:  "sat",
	time.Sunday:    "sun",
}

func WeekdayKey(t time.Time) string {
	return weekdayKeys[t.Weekday()]
}

type DayHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// WeeklySchedule maps weekday keys (mon..sun) to that day's operating window.
// A missing key means the restaurant is closed that day. Close is always
// same-day and strictly after open; overnight spans are not representable.
type WeeklySchedule map[string]DayHours

// ClockMinutes parses an HH:MM string into minutes since midnight.
// All schedule arithmetic is integer minutes, never floating point.
func ClockMinutes(clock string) (int, error) {
	hh, mm, ok := strings.Cut(clock, ":")
	if !ok {
		return 0, ErrInvalidClock
	}
	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return 0, ErrInvalidClock
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || len(mm) != 2 || minute < 0 || minute > 59 {
		return 0, ErrInvalidClock
	}
	return hour*60 + minute, nil
}

// HoursOn resolves the operating window for a calendar date.
// The second return is false when the restaurant is closed that day.
func (s WeeklySchedule) HoursOn(date time.Time) (DayHours, bool) {
	hours, ok := s[WeekdayKey(date)]
	return hours, ok
}

// IsOpenAt reports whether the clock instant falls within [open, close)
// on the given weekday.
func (s WeeklySchedule) IsOpenAt(day, clock string) bool {
	hours, ok := s[day]
	if !ok {
		return false
	}
	at, err := ClockMinutes(clock)
	if err != nil {
		return false
	}
	open, err := ClockMinutes(hours.Open)
	if err != nil {
		return false
	}
	closeAt, err := ClockMinutes(hours.Close)
	if err != nil {
		return false
	}
	return at >= open && at < closeAt
}

// SlotTimes produces the ordered HH:MM times bookable on the given date,
// every SlotIntervalMinutes from open up to the last slot that still fits
// fully before closing. A closed day yields an empty sequence.
func (s WeeklySchedule) SlotTimes(date time.Time) []string {
	hours, ok := s.HoursOn(date)
	if !ok {
		return nil
	}
	open, err := ClockMinutes(hours.Open)
	if err != nil {
		return nil
	}
	closeAt, err := ClockMinutes(hours.Close)
	if err != nil {
		return nil
	}

	var times []string
	for t := open; t+SlotIntervalMinutes <= closeAt; t += SlotIntervalMinutes {
		times = append(times, FormatClock(t))
	}
	return times
}

// Validate checks the schedule invariant: every present day has parseable
// hours with open strictly before close.
func (s WeeklySchedule) Validate() error {
	for day, hours := range s {
		open, err := ClockMinutes(hours.Open)
		if err != nil {
			return fmt.Errorf("%s: open %q: %w", day, hours.Open, err)
		}
		closeAt, err := ClockMinutes(hours.Close)
		if err != nil {
			return fmt.Errorf("%s: close %q: %w", day, hours.Close, err)
		}
		if open >= closeAt {
			return fmt.Errorf("%s: open %s is not before close %s", day, hours.Open, hours.Close)
		}
	}
	return nil
}

// FormatClock renders minutes since midnight as a zero-padded HH:MM string.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
