// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caldate

import (
	"slices"
	"strings"

	"cloudeng.io/algo/container/heap"
	"cloudeng.io/errors"
)

// List represents a list of dates.
type List []Date

// Parse a comma separated list of dates in 'D.M.Y' format. All invalid
// dates are reported in the returned error, in which case the list
// is unchanged.
func (l *List) Parse(val string) error {
	if len(strings.TrimSpace(val)) == 0 {
		*l = nil
		return nil
	}
	parts := strings.Split(val, ",")
	dl := make(List, 0, len(parts))
	errs := &errors.M{}
	for _, part := range parts {
		d, err := Parse(strings.TrimSpace(part))
		if err != nil {
			errs.Append(err)
			continue
		}
		dl = append(dl, d)
	}
	if err := errs.Err(); err != nil {
		return err
	}
	*l = dl
	return nil
}

// yearKey maps int64 years onto uint64 in the same order by flipping
// the sign bit.
func (d Date) yearKey() uint64 {
	return uint64(int64(d.year)) ^ (1 << 63)
}

// Sorted returns a copy of the list in calendar order, as defined by
// Compare, for any year.
func (l List) Sorted() List {
	h := heap.NewMin(heap.WithSliceCap[uint64, Date](len(l)))
	for _, d := range l {
		h.Push(d.yearKey(), d)
	}
	sorted := make(List, 0, len(l))
	start := 0
	for h.Len() > 0 {
		_, d := h.Pop()
		if len(sorted) > 0 && sorted[len(sorted)-1].year != d.year {
			slices.SortFunc(sorted[start:], Compare)
			start = len(sorted)
		}
		sorted = append(sorted, d)
	}
	// Dates within the same year are popped in no particular order.
	slices.SortFunc(sorted[start:], Compare)
	return sorted
}

// Contains returns true if d is in the list.
func (l List) Contains(d Date) bool {
	for _, ld := range l {
		if ld == d {
			return true
		}
	}
	return false
}

func (l List) String() string {
	var out strings.Builder
	for i, d := range l {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(d.Format())
	}
	return out.String()
}
