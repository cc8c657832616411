package main

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

// runApp executes the command tree with args and stdin, returning stdout.
func runApp(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	t.Setenv("OHIOS_CONFIG", "")
	app := newApp()

	var out bytes.Buffer
	app.SetOut(&out)
	app.SetErr(io.Discard)
	app.SetIn(strings.NewReader(stdin))
	app.SetArgs(args)

	err := app.Execute()
	return out.String(), err
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

// assertNotContains checks that output doesn't contain unwanted strings
func assertNotContains(t *testing.T, output string, unwanted []string) {
	t.Helper()
	for _, dont := range unwanted {
		if strings.Contains(output, dont) {
			t.Errorf("output contains unwanted string %q\nGot: %s", dont, output)
		}
	}
}
