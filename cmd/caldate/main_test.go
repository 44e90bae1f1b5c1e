// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cloudeng.io/caldate"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	cs := newCommandSet(&commands{out: out})
	err := cs.DispatchWithArgs(context.Background(), "caldate", args...)
	return out.String(), err
}

func TestCommands(t *testing.T) {
	for _, tc := range []struct {
		args []string
		out  string
	}{
		{[]string{"leap", "2000", "1900", "2004", "2003"}, "2000: leap\n1900: not leap\n2004: leap\n2003: not leap\n"},
		{[]string{"days-in-month", "2", "2020"}, "29\n"},
		{[]string{"days-in-month", "02", "2100"}, "28\n"},
		{[]string{"days-in-month", "11", "2100"}, "30\n"},
		{[]string{"day-of-year", "01.01.2020", "31.12.2019", "31.12.2020", "01.03.2020"},
			"01.01.2020: 1\n31.12.2019: 365\n31.12.2020: 366\n01.03.2020: 61\n"},
		{[]string{"add", "10.01.2020", "1000000"}, "07.12.4757\n"},
		{[]string{"add", "10.05.2020", "0"}, "10.05.2020\n"},
		{[]string{"sort", "1.3.2020,29.2.2020", "1.1.2020"}, "01.01.2020\n29.02.2020\n01.03.2020\n"},
		{[]string{"add", "--log-level=3", "--log-file=" + filepath.Join(t.TempDir(), "log"), "31.12.2020", "1"}, "01.01.2021\n"},
	} {
		out, err := run(t, tc.args...)
		if err != nil {
			t.Errorf("%v: %v", tc.args, err)
			continue
		}
		if got, want := out, tc.out; got != want {
			t.Errorf("%v: got %q, want %q", tc.args, got, want)
		}
	}
}

func TestCommandErrors(t *testing.T) {
	for _, tc := range [][]string{
		{"days-in-month", "13", "2020"},
		{"days-in-month", "1", "year"},
		{"day-of-year", "30.02.2020"},
		{"add", "30.02.2020", "1"},
		{"add", "10.01.2020", "-1"},
		{"sort", "1.1.2020,32.1.2020"},
	} {
		_, err := run(t, tc...)
		if !errors.Is(err, caldate.ErrValidation) {
			t.Errorf("%v: unexpected or missing error: %v", tc, err)
		}
	}

	out, err := run(t, "leap", "2020", "abc")
	if !errors.Is(err, caldate.ErrValidation) || !strings.Contains(err.Error(), `year must be an integer-like value: "abc"`) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	if got, want := out, "2020: leap\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	if _, err := run(t, "add", "--log-format=xml", "1.1.2020", "1"); err == nil {
		t.Errorf("expected an error for an unsupported log format")
	}
}

func TestLoggingFlags(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "log")
	out, err := run(t, "add", "--log-level=2", "--log-source-code", "--log-file="+logFile, "31.12.2020", "1")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := out, "01.01.2021\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	buf, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatal(err)
	}
	// json is the default log format.
	for _, want := range []string{`"msg":"add"`, `"to":"01.01.2021"`, `"source":`, "commands.go"} {
		if !strings.Contains(string(buf), want) {
			t.Errorf("log %s does not contain %v", buf, want)
		}
	}
	if _, err := run(t, "leap", "--log-level=2", "--log-source-code=false", "--log-format=text", "--log-file="+logFile, "2020"); err != nil {
		t.Fatal(err)
	}
}

func writeFile(t *testing.T, contents string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "batch.yaml")
	if err := os.WriteFile(filename, []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}
	return filename
}

func TestBatch(t *testing.T) {
	filename := writeFile(t, `operations:
  - date: 10.01.2020
    add: 1000000
  - date: 29.2.2024
  - date: 31.12.2019
    add: -3
  - date: 31.12.2019
    add: 1
`)
	out, err := run(t, "batch", filename)
	if err == nil || !strings.Contains(err.Error(), "operation 2") || !errors.Is(err, caldate.ErrValidation) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	want := `10.01.2020: day 10 (leap): +1000000: 07.12.4757
29.02.2024: day 60 (leap): +0: 29.02.2024
31.12.2019: day 365 (not leap): +1: 01.01.2020
`
	if got := out; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	filename = writeFile(t, "operations:\n  - date: 29.2.2023\n")
	if _, err := run(t, "batch", filename); err == nil || !strings.Contains(err.Error(), "invalid day value") {
		t.Errorf("unexpected or missing error: %v", err)
	}

	filename = writeFile(t, "operations:\n  - add: 3\n")
	if _, err := run(t, "batch", filename); err == nil || !strings.Contains(err.Error(), "missing date") {
		t.Errorf("unexpected or missing error: %v", err)
	}
}
