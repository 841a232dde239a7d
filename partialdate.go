package metallum

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var monthNames = []string{"", "January", "February", "March", "April", "May", "June", "July",
	"August", "September", "October", "November", "December"}

var daysInMonth = []int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// A PartialDate is a date that has only a year, a year and a month, or all
// three components. Missing components are zero, and two partial dates are
// equal only when all three components match.
type PartialDate struct {
	Year  int
	Month int
	Day   int
}

// NewDate builds a PartialDate from a year, an optional English month name,
// and an optional day. A day without a month, an unrecognized month name,
// or a day outside the month (February 29 outside leap years included) is a
// validation error.
func NewDate(year int, month string, day int) (PartialDate, error) {
	d := PartialDate{Year: year}
	if month != "" {
		m := monthIndex(month)
		if m == 0 {
			return PartialDate{}, fmt.Errorf("invalid month value '%s': %w", month, ErrValidation)
		}
		d.Month = m
	}
	if day != 0 {
		if d.Month == 0 {
			return PartialDate{}, fmt.Errorf("day %d without month: %w", day, ErrValidation)
		}
		max := daysInMonth[d.Month]
		if d.Month == 2 && isLeap(year) {
			max = 29
		}
		if day < 1 || day > max {
			return PartialDate{}, fmt.Errorf("invalid date values: %d, %d, %d: %w", year, d.Month, day, ErrValidation)
		}
		d.Day = day
	}
	return d, nil
}

func monthIndex(name string) int {
	for i := 1; i < len(monthNames); i++ {
		if strings.EqualFold(monthNames[i], name) {
			return i
		}
	}
	return 0
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// IsZero reports whether the date is entirely absent.
func (d PartialDate) IsZero() bool {
	return d == PartialDate{}
}

// String renders the date with its present components, like "1999",
// "1999-03", or "1999-03-07".
func (d PartialDate) String() string {
	s := strconv.Itoa(d.Year)
	if d.Month != 0 {
		s += fmt.Sprintf("-%02d", d.Month)
	}
	if d.Day != 0 {
		s += fmt.Sprintf("-%02d", d.Day)
	}
	return s
}

// ParseDate converts a date string as used on the site's pages into a
// PartialDate. Recognized shapes are "1981", "September 1981",
// "February 19th, 1981", and "19th September 1984"; ordinal suffixes on the
// day are stripped.
func ParseDate(s string) (PartialDate, error) {
	fields := strings.Fields(strings.TrimSpace(s))
	switch len(fields) {
	case 1:
		year, err := atoiClean(fields[0])
		if err != nil {
			return PartialDate{}, fmt.Errorf("invalid year '%s': %w", fields[0], ErrValidation)
		}
		return NewDate(year, "", 0)
	case 2:
		year, err := atoiClean(fields[1])
		if err != nil {
			return PartialDate{}, fmt.Errorf("invalid year '%s': %w", fields[1], ErrValidation)
		}
		return NewDate(year, fields[0], 0)
	case 3:
		year, err := atoiClean(fields[2])
		if err != nil {
			return PartialDate{}, fmt.Errorf("invalid year '%s': %w", fields[2], ErrValidation)
		}
		// The site writes "February 19th, 1981", but day-first forms
		// appear too.
		month, dayToken := fields[0], fields[1]
		if monthIndex(month) == 0 {
			month, dayToken = fields[1], fields[0]
		}
		day, err := atoiClean(dayToken)
		if err != nil {
			return PartialDate{}, fmt.Errorf("invalid day '%s': %w", dayToken, ErrValidation)
		}
		return NewDate(year, month, day)
	default:
		return PartialDate{}, fmt.Errorf("unrecognized date '%s': %w", s, ErrValidation)
	}
}

// atoiClean parses an integer out of a token, ignoring ordinal suffixes and
// punctuation like "19th," or "1981".
func atoiClean(token string) (int, error) {
	var digits strings.Builder
	for _, r := range token {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, fmt.Errorf("no digits in '%s'", token)
	}
	return strconv.Atoi(digits.String())
}

// ParseTime converts a track or disc length presented as "[hh:][mm:]ss"
// into a duration. Empty input means no duration and parses to zero.
func ParseTime(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("invalid time '%s': %w", s, ErrValidation)
	}
	units := []time.Duration{time.Second, time.Minute, time.Hour}
	var total time.Duration
	for i := 0; i < len(parts); i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1-i]))
		if err != nil {
			return 0, fmt.Errorf("invalid time '%s': %w", s, ErrValidation)
		}
		total += time.Duration(n) * units[i]
	}
	return total, nil
}
