// Package schedule materializes recurring weekly opening hours into concrete times.
package schedule

import (
	"strconv"
	"strings"
	"time"
)

var weekdays = map[string]time.Weekday{
	"Sunday":    time.Sunday,
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
}

// ParseWeekday falls back to Monday for names it does not know.
func ParseWeekday(name string) time.Weekday {
	if wd, ok := weekdays[name]; ok {
		return wd
	}
	return time.Monday
}

// WeeklyDate returns the next date on or after base that falls on weekday,
// at the HH:MM time of day, in base's location. base's own weekday counts.
func WeeklyDate(weekday, hhmm string, base time.Time) time.Time {
	target := ParseWeekday(weekday)
	ahead := (int(target) - int(base.Weekday()) + 7) % 7
	day := base.AddDate(0, 0, ahead)
	hour, minute := parseClock(hhmm)
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, base.Location())
}

// Span materializes an opening window. An end earlier than the start closes
// past midnight and is moved to the following day.
func Span(weekday, start, end string, base time.Time) (time.Time, time.Time) {
	from := WeeklyDate(weekday, start, base)
	to := WeeklyDate(weekday, end, base)
	if to.Before(from) {
		to = to.AddDate(0, 0, 1)
	}
	return from, to
}

func parseClock(hhmm string) (int, int) {
	parts := strings.SplitN(strings.TrimSpace(hhmm), ":", 2)
	hour := atoiOrZero(parts[0])
	minute := 0
	if len(parts) > 1 {
		minute = atoiOrZero(parts[1])
	}
	return hour, minute
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
