// SPDX-License-Identifier: MIT

package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Date is a calendar date without time of day or zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// String renders the date as MM/DD/YYYY.
func (d Date) String() string {
	return fmt.Sprintf("%02d/%02d/%04d", int(d.Month), d.Day, d.Year)
}

// dateLayouts are tried in order against the whole raw date token.
var dateLayouts = []string{
	"20060102150405",
	"20060102",
	"2006-01-02",
	"2006-1-2",
	"2006",
}

var (
	embeddedDate = regexp.MustCompile(`(\d{4})-?(\d{2})-?(\d{2})`)
	leadingDigit = regexp.MustCompile(`^\d{8,}`)
)

// dateStep is one resolution stage; stages run in order until one succeeds.
type dateStep func(rawDate, start string) (Date, bool)

var dateSteps = []dateStep{
	fromLayouts,
	fromEmbedded,
	fromStart,
}

// ResolveDate derives the original air date from the raw date token, falling back to
// the broadcast start timestamp. It reports false when no stage yields a valid date.
func ResolveDate(rawDate, start string) (Date, bool) {
	rawDate = strings.TrimSpace(rawDate)
	start = strings.TrimSpace(start)
	for _, step := range dateSteps {
		if d, ok := step(rawDate, start); ok {
			return d, true
		}
	}
	return Date{}, false
}

func fromLayouts(rawDate, _ string) (Date, bool) {
	if rawDate == "" {
		return Date{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, rawDate); err == nil {
			return dateOf(t), true
		}
	}
	return Date{}, false
}

func fromEmbedded(rawDate, _ string) (Date, bool) {
	m := embeddedDate.FindStringSubmatch(rawDate)
	if m == nil {
		return Date{}, false
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	return validDate(year, month, day)
}

// fromStart reads YYYYMMDD from the leading digits of an XMLTV start attribute
// such as "20250910120000 +0000".
func fromStart(_, start string) (Date, bool) {
	digits := leadingDigit.FindString(start)
	if digits == "" {
		return Date{}, false
	}
	t, err := time.Parse("20060102", digits[:8])
	if err != nil {
		return Date{}, false
	}
	return dateOf(t), true
}

// validDate rejects dates time.Date would silently normalise (e.g. February 30).
func validDate(year, month, day int) (Date, bool) {
	if month < 1 || month > 12 || day < 1 {
		return Date{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return Date{}, false
	}
	return dateOf(t), true
}

func dateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}
