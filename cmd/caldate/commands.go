// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cloudeng.io/caldate"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
)

type commands struct {
	out io.Writer
}

// withLogger returns a context carrying the logger configured by the
// flags and a function to close that logger.
func withLogger(ctx context.Context, values any) (context.Context, func(), error) {
	cf := values.(*CommonFlags)
	logger, err := cf.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, func() {}, err
	}
	return ctxlog.Context(ctx, logger.Logger), func() { logger.Close() }, nil
}

func (c *commands) leap(ctx context.Context, values any, args []string) error {
	ctx, done, err := withLogger(ctx, values)
	if err != nil {
		return err
	}
	defer done()
	errs := &errors.M{}
	for _, arg := range args {
		year, err := caldate.ParseYear(arg)
		if err != nil {
			errs.Append(err)
			continue
		}
		leap := caldate.IsLeap(year)
		ctxlog.Logger(ctx).Debug("leap", "year", year, "leap", leap)
		if leap {
			fmt.Fprintf(c.out, "%v: leap\n", year)
		} else {
			fmt.Fprintf(c.out, "%v: not leap\n", year)
		}
	}
	return errs.Err()
}

func (c *commands) daysInMonth(ctx context.Context, values any, args []string) error {
	ctx, done, err := withLogger(ctx, values)
	if err != nil {
		return err
	}
	defer done()
	// Validate the month and year by way of the first day of that month.
	first, err := caldate.NewFromStrings("1", args[0], args[1])
	if err != nil {
		return err
	}
	days := caldate.DaysInMonth(first.Month(), first.Year())
	ctxlog.Logger(ctx).Debug("days-in-month", "month", first.Month(), "year", first.Year(), "days", days)
	fmt.Fprintf(c.out, "%v\n", days)
	return nil
}

func (c *commands) dayOfYear(ctx context.Context, values any, args []string) error {
	ctx, done, err := withLogger(ctx, values)
	if err != nil {
		return err
	}
	defer done()
	errs := &errors.M{}
	for _, arg := range args {
		d, err := caldate.Parse(arg)
		if err != nil {
			ctxlog.Logger(ctx).Warn("invalid date", "date", arg, "error", err)
			errs.Append(err)
			continue
		}
		fmt.Fprintf(c.out, "%v: %v\n", d.Format(), d.DayOfYear())
	}
	return errs.Err()
}

func (c *commands) add(ctx context.Context, values any, args []string) error {
	ctx, done, err := withLogger(ctx, values)
	if err != nil {
		return err
	}
	defer done()
	d, err := caldate.Parse(args[0])
	if err != nil {
		return err
	}
	n, err := caldate.ParseDayCount(args[1])
	if err != nil {
		return err
	}
	later, err := d.AddDays(n)
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Info("add", "from", d.Format(), "days", n, "to", later.Format())
	fmt.Fprintf(c.out, "%v\n", later.Format())
	return nil
}

func (c *commands) sort(ctx context.Context, values any, args []string) error {
	ctx, done, err := withLogger(ctx, values)
	if err != nil {
		return err
	}
	defer done()
	var dl caldate.List
	if err := dl.Parse(strings.Join(args, ",")); err != nil {
		return err
	}
	sorted := dl.Sorted()
	ctxlog.Logger(ctx).Debug("sort", "dates", len(sorted))
	for _, d := range sorted {
		fmt.Fprintf(c.out, "%v\n", d.Format())
	}
	return nil
}

func (c *commands) batch(ctx context.Context, values any, args []string) error {
	ctx, done, err := withLogger(ctx, values)
	if err != nil {
		return err
	}
	defer done()
	cfg, err := loadBatch(args[0])
	if err != nil {
		return err
	}
	logger := ctxlog.Logger(ctx).With("file", args[0])
	logger.Info("batch", "operations", len(cfg.Operations))
	return cfg.run(c.out, logger)
}
