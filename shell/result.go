package shell

import "strings"

// Result is the rendered outcome of one command line.
type Result struct {
	// Lines is the output, one entry per line. A command that succeeds
	// silently leaves it empty.
	Lines []string

	// Exit asks the front end to end the session with status 0.
	Exit bool

	// Clear asks the front end to clear its output area.
	Clear bool
}

// String joins Lines with newlines.
func (r Result) String() string { return strings.Join(r.Lines, "\n") }

// Empty reports whether the result carries no output and no request.
func (r Result) Empty() bool { return len(r.Lines) == 0 && !r.Exit && !r.Clear }

func lines(l ...string) Result { return Result{Lines: l} }
