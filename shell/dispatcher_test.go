package shell

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/ohios/kernel"
	"github.com/joshuapare/ohios/kernel/alloc"
)

func newDispatcher(t *testing.T) *Dispatcher {
	t.Helper()
	sys, err := kernel.New(kernel.Options{Capacity: 1024, Policy: alloc.PolicyBump})
	require.NoError(t, err)
	return New(sys)
}

// run executes each line in order and returns the last result.
func run(t *testing.T, d *Dispatcher, script ...string) Result {
	t.Helper()
	var res Result
	for _, line := range script {
		res = d.Execute(line)
	}
	return res
}

func TestExecute_Blank(t *testing.T) {
	d := newDispatcher(t)
	for _, line := range []string{"", "   ", "\t\n"} {
		res := d.Execute(line)
		assert.True(t, res.Empty(), "line %q", line)
	}
}

func TestExecute_UnknownCommand(t *testing.T) {
	d := newDispatcher(t)

	for _, line := range []string{"frobnicate", "python print(1)", "internet", "FOO bar"} {
		res := d.Execute(line)
		require.Len(t, res.Lines, 2, "line %q", line)
		assert.Contains(t, res.Lines[0], "command not found: ")
		assert.False(t, res.Exit)
	}
	assert.Equal(t, "ohiOS: command not found: foo", d.Execute("FOO").Lines[0])
}

func TestExecute_CaseInsensitive(t *testing.T) {
	d := newDispatcher(t)

	assert.Equal(t, []string{"/"}, d.Execute("PWD").Lines)
	assert.Equal(t, []string{"Directory 'Docs' created"}, d.Execute("MkDir Docs").Lines)
	assert.Equal(t, []string{"DIR Docs"}, d.Execute("LS").Lines, "arguments keep their case")
}

func TestExecute_Usage(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{line: "run", want: "Usage: run <name> <size>"},
		{line: "run A", want: "Usage: run <name> <size>"},
		{line: "kill", want: "Usage: kill <pid>"},
		{line: "mkdir", want: "Usage: mkdir <name>"},
		{line: "cd", want: "Usage: cd <dirname>"},
		{line: "mkfile", want: "Usage: mkfile <name>"},
		{line: "mktxtfile", want: "Usage: mkfile <name>"},
		{line: "write f", want: "Usage: write <name> <content...>"},
		{line: "read", want: "Usage: read <name>"},
		{line: "del", want: "Usage: rm <name>"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			d := newDispatcher(t)
			res := d.Execute(tt.line)
			assert.Equal(t, []string{tt.want}, res.Lines)

			// No mutation happened.
			assert.Equal(t, 0, d.System().Processes().Len())
			assert.Equal(t, 0, d.System().Processes().NextPID()-1)
			assert.Empty(t, d.System().FS().List())
		})
	}
}

func TestExecute_InvalidArguments(t *testing.T) {
	d := newDispatcher(t)

	assert.Equal(t, []string{"run: invalid memory size: 'lots'"}, d.Execute("run A lots").Lines)
	assert.Equal(t, []string{"run: memory size must be a positive integer"}, d.Execute("run A 0").Lines)
	assert.Equal(t, []string{"run: memory size must be a positive integer"}, d.Execute("run A -4").Lines)
	assert.Equal(t, []string{"kill: invalid pid: 'one'"}, d.Execute("kill one").Lines)
	assert.Equal(t, 1, d.System().Processes().NextPID(), "rejected arguments never create a process")
}

func TestExecute_RunKillPs(t *testing.T) {
	d := newDispatcher(t)

	assert.Equal(t, []string{"No running processes"}, d.Execute("ps").Lines)
	assert.Equal(t, []string{"Started init (PID 1) at 0x0000"}, d.Execute("run init 256").Lines)
	assert.Equal(t, []string{"Started shell (PID 2) at 0x0100"}, d.Execute("run shell 128").Lines)

	assert.Equal(t, []string{
		"1: init [256B] @0x0000",
		"2: shell [128B] @0x0100",
	}, d.Execute("ps").Lines)

	assert.Equal(t, []string{"Memory: 384 used / 1024 total / 640 free"}, d.Execute("mem").Lines)

	assert.Equal(t, []string{"Process 1 terminated."}, d.Execute("kill 1").Lines)
	assert.Equal(t, []string{"Process 1 not found."}, d.Execute("kill 1").Lines)
	assert.Equal(t, []string{"Process 77 not found."}, d.Execute("kill 77").Lines)
	assert.Equal(t, []string{"2: shell [128B] @0x0100"}, d.Execute("ps").Lines)
}

func TestExecute_RunHugeSize(t *testing.T) {
	for _, p := range []alloc.Policy{alloc.PolicyBump, alloc.PolicyBestFit} {
		t.Run(string(p), func(t *testing.T) {
			sys, err := kernel.New(kernel.Options{Capacity: 1024, Policy: p})
			require.NoError(t, err)
			d := New(sys)

			d.Execute("run A 1")
			assert.Equal(t, []string{"Not enough memory."}, d.Execute("run B 9223372036854775807").Lines)
			assert.Equal(t, []string{"Memory: 1 used / 1024 total / 1023 free"}, d.Execute("mem").Lines)
			assert.Equal(t, []string{"1: A [1B] @0x0000"}, d.Execute("ps").Lines)
		})
	}
}

func TestExecute_Filesystem(t *testing.T) {
	d := newDispatcher(t)

	assert.Equal(t, []string{"(empty directory)"}, d.Execute("ls").Lines)
	assert.Equal(t, []string{"File 'a.txt' created"}, d.Execute("mkfile a.txt").Lines)
	assert.Equal(t, []string{"mkfile: cannot create file 'a.txt': File exists"}, d.Execute("mkfile a.txt").Lines)
	assert.Equal(t, []string{"mkdir: cannot create directory 'a.txt': File exists"}, d.Execute("mkdir a.txt").Lines)
	assert.Equal(t, []string{"mkdir: cannot create directory '..': Invalid name"}, d.Execute("mkdir ..").Lines)
	assert.Equal(t, []string{"mkfile: cannot create file 'a/b': Invalid name"}, d.Execute("mkfile a/b").Lines)

	assert.Equal(t, []string{"5 bytes written to 'a.txt'"}, d.Execute("write a.txt hello").Lines)
	assert.Equal(t, []string{"FILE a.txt (5B)"}, d.Execute("ls").Lines)
	assert.Equal(t, []string{"write: cannot write to 'nope': No such file"}, d.Execute("write nope x").Lines)

	d.Execute("mkdir sub")
	assert.Equal(t, []string{"write: cannot write to 'sub': Is a directory"}, d.Execute("write sub x").Lines)
	assert.Equal(t, []string{"read: cannot read 'sub': Is a directory"}, d.Execute("read sub").Lines)
	assert.Equal(t, []string{"read: cannot read 'nope': No such file or directory"}, d.Execute("read nope").Lines)
	assert.Equal(t, []string{"cd: not a directory: a.txt"}, d.Execute("cd a.txt").Lines)
	assert.Equal(t, []string{"cd: no such file or directory: nope"}, d.Execute("cd nope").Lines)
	assert.Equal(t, []string{"cd: no such file or directory: .."}, d.Execute("cd ..").Lines, "cd .. at root fails")

	assert.Empty(t, d.Execute("rm a.txt").Lines)
	assert.Equal(t, []string{"rm: cannot remove 'a.txt': No such file or directory"}, d.Execute("del a.txt").Lines)
}

func TestExecute_WriteJoinsRestOfLine(t *testing.T) {
	d := newDispatcher(t)

	res := run(t, d, "mkfile f", "write f  several   spaced\twords ")
	assert.Equal(t, []string{"20 bytes written to 'f'"}, res.Lines)
	assert.Equal(t, []string{"several spaced words"}, d.Execute("read f").Lines)
}

func TestExecute_ReadEmptyFile(t *testing.T) {
	d := newDispatcher(t)

	res := run(t, d, "mkfile empty", "read empty")
	assert.Equal(t, []string{""}, res.Lines, "an empty file prints one empty line")
}

func TestExecute_Help(t *testing.T) {
	d := newDispatcher(t)

	res := d.Execute("help")
	require.NotEmpty(t, res.Lines)
	assert.Equal(t, "ohiOS Shell Commands:", res.Lines[0])

	text := res.String()
	for _, name := range d.Names() {
		assert.Contains(t, text, "  "+name, "help lists %s", name)
	}
	assert.NotContains(t, strings.ToLower(text), "python")

	assert.Equal(t, res, d.Execute("/help"))
}

func TestExecute_ExitAndClear(t *testing.T) {
	d := newDispatcher(t)

	res := d.Execute("exit")
	assert.True(t, res.Exit)
	assert.Equal(t, []string{"Goodbye!"}, res.Lines)
	assert.True(t, d.Execute("QUIT").Exit)

	res = d.Execute("clear")
	assert.True(t, res.Clear)
	assert.Empty(t, res.Lines)
}

func TestExecute_RecoversPanics(t *testing.T) {
	d := newDispatcher(t)
	d.register(&command{name: "boom", run: func(*Dispatcher, []string) Result {
		panic("kaboom")
	}})

	res := d.Execute("boom")
	assert.Equal(t, []string{"Error: kaboom"}, res.Lines)

	// The lock was released; the session continues.
	assert.Equal(t, []string{"/"}, d.Execute("pwd").Lines)
}

func TestNames(t *testing.T) {
	d := newDispatcher(t)
	assert.Equal(t, []string{
		"help", "run", "kill", "mem", "ps", "mkdir", "ls", "cd",
		"pwd", "mkfile", "write", "read", "rm", "clear", "exit",
	}, d.Names())
}
