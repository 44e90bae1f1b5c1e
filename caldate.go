// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package caldate provides a Gregorian calendar date value type with
// validated construction, leap year and day of year computations and
// forward date arithmetic.
//
// Dates are created via New, NewFromStrings or Parse, all of which validate
// their input and return a *ValidationError for malformed or out of range
// values:
//
//	d, err := caldate.Parse("21.05.2020")
//	later, err := d.AddDays(1000)
package caldate

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	daysInMonth     []int // days in each month
	daysInMonthLeap []int
	dayOfYear       []int // per month cumulative days in year so [0, 31, 59 etc]
)

func daysInMonthInit(leap bool, month int) int {
	switch month {
	case 2:
		if leap {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func init() {
	daysInMonth = make([]int, 12)
	daysInMonthLeap = make([]int, 12)
	dayOfYear = make([]int, 12)
	for i := 0; i < 12; i++ {
		daysInMonth[i] = daysInMonthInit(false, i+1)
		daysInMonthLeap[i] = daysInMonthInit(true, i+1)
	}
	for i := 0; i < 11; i++ {
		dayOfYear[i+1] = dayOfYear[i] + daysInMonth[i]
	}
}

// Month as an int, January is 1.
type Month time.Month

func (m Month) String() string {
	return time.Month(m).String()
}

// IsLeap returns true if the given year is a leap year in the
// Gregorian calendar.
func IsLeap(year int) bool {
	if year%400 == 0 {
		return true
	}
	if year%100 == 0 {
		return false
	}
	return year%4 == 0
}

// DaysInMonth returns the number of days in the given month for the given
// year. It panics if month is not in the range 1-12.
func DaysInMonth(month Month, year int) int {
	if IsLeap(year) {
		return daysInMonthLeap[month-1]
	}
	return daysInMonth[month-1]
}

// Date represents a day in the Gregorian calendar. The day is always
// valid for the month and year of the Date. The zero value is not a valid
// date and is returned alongside all errors.
//
// Dates are values and may be compared using ==.
type Date struct {
	year  int
	month Month
	day   int
}

// New returns the Date for the specified day, month and year. The
// year is unrestricted, the month must be in the range 1-12 and the day
// must be valid for that month and year.
func New(day, month, year int) (Date, error) {
	if err := validateMonth(month); err != nil {
		return Date{}, err
	}
	if day < 1 || day > DaysInMonth(Month(month), year) {
		return Date{}, newError(DayOutOfRange, "day", strconv.Itoa(day), "invalid day value")
	}
	return Date{year: year, month: Month(month), day: day}, nil
}

func validateMonth(month int) error {
	if month < 1 || month > 12 {
		return newError(MonthOutOfRange, "month", strconv.Itoa(month), "invalid month value")
	}
	return nil
}

func parseField(field, val string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		return 0, newError(NotAnInteger, field, val, field+" must be an integer-like value")
	}
	return n, nil
}

// ParseYear parses an integer-like year, eg. "2020" or " -44".
func ParseYear(text string) (int, error) {
	return parseField("year", text)
}

// NewFromStrings is like New except that the day, month and year are
// specified as integer-like strings, eg. "05" or " 2020". The year is
// converted first, then the month is converted and range checked and
// only then is the day converted.
func NewFromStrings(day, month, year string) (Date, error) {
	y, err := ParseYear(year)
	if err != nil {
		return Date{}, err
	}
	m, err := parseField("month", month)
	if err != nil {
		return Date{}, err
	}
	if err := validateMonth(m); err != nil {
		return Date{}, err
	}
	d, err := parseField("day", day)
	if err != nil {
		return Date{}, err
	}
	return New(d, m, y)
}

// Parse parses a date in the format 'D.M.Y', eg. '21.05.2020' or '1.2.33'.
func Parse(text string) (Date, error) {
	parts := strings.Split(text, ".")
	if len(parts) != 3 {
		return Date{}, newError(MalformedText, "date", text,
			fmt.Sprintf("invalid date %q, expected format 'D.M.Y'", text))
	}
	return NewFromStrings(parts[0], parts[1], parts[2])
}

// MustParse is like Parse but panics on error.
func MustParse(text string) Date {
	d, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return d
}

// FromTime returns the Date of t in t's location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: Month(m), day: d}
}

// Year returns the year of the date.
func (d Date) Year() int { return d.year }

// Month returns the month of the date.
func (d Date) Month() Month { return d.month }

// Day returns the day of the month of the date.
func (d Date) Day() int { return d.day }

// IsZero returns true for the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// DayOfYear returns the day of the year as 1-365 for non-leap years and
// 1-366 for leap years. It returns 0 for the zero Date.
func (d Date) DayOfYear() int {
	if d.IsZero() {
		return 0
	}
	doy := dayOfYear[d.month-1] + d.day
	if d.month > 2 && IsLeap(d.year) {
		doy++
	}
	return doy
}

// Equal returns true if d and other are the same day.
func (d Date) Equal(other Date) bool {
	return d == other
}

// Compare returns -1 if a is before b, +1 if a is after b and 0 if they
// are the same day.
func Compare(a, b Date) int {
	if c := cmp.Compare(a.year, b.year); c != 0 {
		return c
	}
	if c := cmp.Compare(a.month, b.month); c != 0 {
		return c
	}
	return cmp.Compare(a.day, b.day)
}

// Before returns true if d is before other.
func (d Date) Before(other Date) bool {
	return Compare(d, other) < 0
}

// String returns a diagnostic representation of the date, use Format
// for a representation that can be parsed.
func (d Date) String() string {
	return fmt.Sprintf("Date: %d.%d.%d", d.year, d.month, d.day)
}

// Format returns the date as 'DD.MM.YYYY', which is accepted by Parse.
func (d Date) Format() string {
	if d.year < 0 {
		return fmt.Sprintf("%02d.%02d.-%04d", d.day, d.month, -d.year)
	}
	return fmt.Sprintf("%02d.%02d.%04d", d.day, d.month, d.year)
}
