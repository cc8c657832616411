package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/ohios/shell"
)

var (
	execCommands []string
	execEcho     bool
)

func newExecCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec [script]",
		Short: "Run commands non-interactively",
		Long: `The exec command runs a batch of commands against a fresh simulator and
prints every result. Commands come from repeated -c flags, then from the
script file (or stdin when the script is "-"). Processing stops at exit.

Example:
  ohios exec -c "run init 64" -c ps
  ohios exec setup.ohs
  ohios exec --echo - < setup.ohs`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExec(cmd.InOrStdin(), cmd.OutOrStdout(), args)
		},
	}
	cmd.Flags().StringArrayVarP(&execCommands, "command", "c", nil, "Command line to run (repeatable)")
	cmd.Flags().BoolVar(&execEcho, "echo", false, "Print each command before its result")
	return cmd
}

func runExec(stdin io.Reader, out io.Writer, args []string) error {
	if len(execCommands) == 0 && len(args) == 0 {
		return fmt.Errorf("nothing to run: pass -c <command> or a script file")
	}

	d, err := newDispatcher()
	if err != nil {
		return err
	}

	for _, line := range execCommands {
		if done := execLine(d, out, line); done {
			return nil
		}
	}

	if len(args) == 0 {
		return nil
	}

	var in io.Reader = stdin
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open script: %w", err)
		}
		defer f.Close()
		in = f
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if done := execLine(d, out, scanner.Text()); done {
			return nil
		}
	}
	return scanner.Err()
}

// execLine runs one line and reports whether the batch should stop.
func execLine(d *shell.Dispatcher, out io.Writer, line string) bool {
	if execEcho {
		fmt.Fprintf(out, "ohiOS> %s\n", line)
	}
	res := d.Execute(line)
	for _, l := range res.Lines {
		fmt.Fprintln(out, l)
	}
	return res.Exit
}
