// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"

	"cloudeng.io/caldate"
	"cloudeng.io/cmdutil"
	"cloudeng.io/errors"
)

// batchConfig is read from a yaml file of the form:
//
//	operations:
//	  - date: 10.01.2020
//	    add: 1000000
//	  - date: 29.02.2024
type batchConfig struct {
	Operations []operation `yaml:"operations"`
}

type operation struct {
	Date caldate.Date `yaml:"date"`
	Add  int          `yaml:"add"`
}

func loadBatch(filename string) (batchConfig, error) {
	var cfg batchConfig
	if err := cmdutil.ParseYAMLConfigFile(filename, &cfg); err != nil {
		return batchConfig{}, err
	}
	for i, op := range cfg.Operations {
		if op.Date.IsZero() {
			return batchConfig{}, fmt.Errorf("%v: operation %v: missing date", filename, i)
		}
	}
	return cfg, nil
}

// run runs all operations, reporting every failure.
func (cfg batchConfig) run(out io.Writer, logger *slog.Logger) error {
	errs := &errors.M{}
	for i, op := range cfg.Operations {
		later, err := op.Date.AddDays(op.Add)
		if err != nil {
			logger.Warn("batch operation failed", "operation", i, "date", op.Date.Format(), "add", op.Add, "error", err)
			errs.Append(fmt.Errorf("operation %v: %w", i, err))
			continue
		}
		leap := "not leap"
		if caldate.IsLeap(op.Date.Year()) {
			leap = "leap"
		}
		fmt.Fprintf(out, "%v: day %v (%v): +%v: %v\n", op.Date.Format(), op.Date.DayOfYear(), leap, op.Add, later.Format())
	}
	return errs.Err()
}
