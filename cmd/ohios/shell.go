package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/joshuapare/ohios/internal/logger"
	"github.com/joshuapare/ohios/shell"
)

const clearScreen = "\033[H\033[2J"

func newShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive shell",
		Long: `The shell command reads one command per line and prints its result.
When stdin is a terminal it prints a banner and a prompt showing the working
directory; otherwise it runs silently until exit or end of input.

Example:
  ohios shell
  ohios shell --capacity 4096 --policy best-fit
  printf 'run init 64\nps\n' | ohios shell`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func runShell(in io.Reader, out io.Writer) error {
	d, err := newDispatcher()
	if err != nil {
		return err
	}

	s := &session{
		d:           d,
		in:          in,
		out:         out,
		interactive: isTerminal(in),
		banner:      cfg.Shell.Banner,
		prompt:      cfg.Prompt,
	}
	if s.interactive {
		stop := s.trapInterrupt()
		defer stop()
	}
	return s.run()
}

// session is one REPL over a dispatcher.
type session struct {
	d           *shell.Dispatcher
	in          io.Reader
	out         io.Writer
	interactive bool
	banner      bool
	prompt      func(cwd string) string

	// outMu serializes writes to out between run and watchInterrupts.
	outMu sync.Mutex
}

// printf writes to out while holding outMu.
func (s *session) printf(format string, args ...any) {
	s.outMu.Lock()
	defer s.outMu.Unlock()
	fmt.Fprintf(s.out, format, args...)
}

func (s *session) run() error {
	if s.interactive && s.banner {
		s.printBanner()
	}

	scanner := bufio.NewScanner(s.in)
	for {
		if s.interactive {
			s.printf("%s", s.prompt(s.cwd()))
		}
		if !scanner.Scan() {
			break
		}

		res := s.d.Execute(scanner.Text())
		var b strings.Builder
		if res.Clear {
			b.WriteString(clearScreen)
		}
		for _, line := range res.Lines {
			b.WriteString(line)
			b.WriteByte('\n')
		}
		s.printf("%s", b.String())
		if res.Exit {
			logger.Info("session ended by exit")
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	if s.interactive {
		s.printf("\nGoodbye!\n")
	}
	logger.Info("session ended at end of input")
	return nil
}

// cwd reads the working directory under the kernel lock.
func (s *session) cwd() string {
	sys := s.d.System()
	sys.Lock()
	defer sys.Unlock()
	return sys.FS().Pwd()
}

func (s *session) printBanner() {
	rule := strings.Repeat("=", 50)
	s.printf("%s\nWelcome to ohiOS Shell %s\nType 'help' for available commands\n%s\n", rule, version, rule)
}

// trapInterrupt keeps Ctrl+C from killing the session and reminds the user
// how to leave.
func (s *session) trapInterrupt() (stop func()) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt)
	stopWatch := s.watchInterrupts(ch)
	return func() {
		signal.Stop(ch)
		stopWatch()
	}
}

// watchInterrupts answers every value on ch with the reminder and a fresh
// prompt. The returned stop blocks until the goroutine has exited.
func (s *session) watchInterrupts(ch <-chan os.Signal) (stop func()) {
	done := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		defer close(exited)
		for {
			select {
			case <-ch:
				s.printf("\nUse 'exit' to quit ohiOS\n%s", s.prompt(s.cwd()))
			case <-done:
				return
			}
		}
	}()
	return func() {
		close(done)
		<-exited
	}
}
