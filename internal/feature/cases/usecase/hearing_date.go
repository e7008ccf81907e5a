package usecase

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// hearingDatePattern matches "<day><suffix> <Month> <year>", e.g. "17th November 2025".
var hearingDatePattern = regexp.MustCompile(`(\d+)\w*\s+(\w+)\s+(\d{4})`)

var monthNames = map[string]time.Month{
	"January":   time.January,
	"February":  time.February,
	"March":     time.March,
	"April":     time.April,
	"May":       time.May,
	"June":      time.June,
	"July":      time.July,
	"August":    time.August,
	"September": time.September,
	"October":   time.October,
	"November":  time.November,
	"December":  time.December,
}

// notScheduled is the portal's text for a hearing without a date.
const notScheduled = "To be fixed"

// ParseHearingDate parses a portal hearing phrase into a UTC calendar date.
// It returns nil for "To be fixed", unknown month names, impossible dates or any other text.
func ParseHearingDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" || s == notScheduled {
		return nil
	}

	m := hearingDatePattern.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	month, ok := monthNames[m[2]]
	if !ok {
		return nil
	}
	day, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	year, err := strconv.Atoi(m[3])
	if err != nil {
		return nil
	}

	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	// time.Date normalises overflow, so 31st February would become a March date.
	if d.Day() != day || d.Month() != month {
		return nil
	}
	return &d
}
