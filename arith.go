// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caldate

import (
	"strconv"
	"strings"
)

const (
	daysIn400Years = 146097
)

// ParseDayCount parses a non-negative, integer-like number of days as
// accepted by AddDays.
func ParseDayCount(text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, newError(NotAnInteger, "days", text, "days must be an integer-like value")
	}
	if n < 0 {
		return 0, newError(NegativeDays, "days", text, "number of days to add must not be negative")
	}
	return n, nil
}

// AddDays returns the date n days after d, n must not be negative and
// d must not be the zero Date.
func AddDays(d Date, n int) (Date, error) {
	if d.IsZero() {
		return Date{}, newError(ZeroDate, "date", d.String(), "cannot add days to the zero date")
	}
	if n < 0 {
		return Date{}, newError(NegativeDays, "days", strconv.Itoa(n), "number of days to add must not be negative")
	}
	// Every 400 years of the Gregorian calendar contain the same number of days.
	d.year += (n / daysIn400Years) * 400
	n %= daysIn400Years
	for {
		dim := DaysInMonth(d.month, d.year)
		if d.day+n <= dim {
			d.day += n
			return d, nil
		}
		n -= dim - d.day + 1
		d.day = 1
		d.month++
		if d.month > 12 {
			d.month = 1
			d.year++
		}
	}
}

// AddDays returns the date n days after d, n must not be negative.
func (d Date) AddDays(n int) (Date, error) {
	return AddDays(d, n)
}

// Advance moves d forward by n days. d is unchanged if an error
// is returned. Advance is not safe for concurrent use.
func (d *Date) Advance(n int) error {
	nd, err := AddDays(*d, n)
	if err != nil {
		return err
	}
	*d = nd
	return nil
}

// Tomorrow returns the date of the next day. 31.12 wraps to 1.1 of
// the following year. The zero Date is returned for the zero Date.
func (d Date) Tomorrow() Date {
	nd, _ := AddDays(d, 1)
	return nd
}
