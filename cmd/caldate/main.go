// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command caldate performs Gregorian calendar calculations: leap years,
// days in a month, day of year and adding days to a date. Dates are
// specified as D.M.Y, eg. 21.05.2020.
package main

import (
	"context"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
)

var cmdSet *subcmd.CommandSet

// CommonFlags are shared by all commands.
type CommonFlags struct {
	cmdutil.LoggingFlags
}

func newFlagSet(flags any) *subcmd.FlagSet {
	fs := subcmd.NewFlagSet()
	fs.MustRegisterFlagStruct(flags, nil, nil)
	return fs
}

func newCommandSet(c *commands) *subcmd.CommandSet {
	leapCmd := subcmd.NewCommand("leap", newFlagSet(&CommonFlags{}), c.leap, subcmd.AtLeastNArguments(1))
	leapCmd.Document("report whether years are leap years", "<year>...")

	dimCmd := subcmd.NewCommand("days-in-month", newFlagSet(&CommonFlags{}), c.daysInMonth, subcmd.ExactlyNumArguments(2))
	dimCmd.Document("print the number of days in a month", "<month> <year>")

	doyCmd := subcmd.NewCommand("day-of-year", newFlagSet(&CommonFlags{}), c.dayOfYear, subcmd.AtLeastNArguments(1))
	doyCmd.Document("print the day of the year for dates", "<D.M.Y>...")

	addCmd := subcmd.NewCommand("add", newFlagSet(&CommonFlags{}), c.add, subcmd.ExactlyNumArguments(2))
	addCmd.Document("add a number of days to a date", "<D.M.Y> <days>")

	sortCmd := subcmd.NewCommand("sort", newFlagSet(&CommonFlags{}), c.sort, subcmd.AtLeastNArguments(1))
	sortCmd.Document("print dates in calendar order", "<D.M.Y>[,<D.M.Y>]...")

	batchCmd := subcmd.NewCommand("batch", newFlagSet(&CommonFlags{}), c.batch, subcmd.ExactlyNumArguments(1))
	batchCmd.Document("run the date operations specified in a yaml file", "<file.yaml>")

	cs := subcmd.NewCommandSet(leapCmd, dimCmd, doyCmd, addCmd, sortCmd, batchCmd)
	cs.Document("caldate performs Gregorian calendar calculations on dates specified as D.M.Y")
	return cs
}

func init() {
	cmdSet = newCommandSet(&commands{out: os.Stdout})
}

func main() {
	ctx := context.Background()
	if err := cmdSet.Dispatch(ctx); err != nil {
		cmdutil.Exit("%v", err)
	}
}
