package shell

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/joshuapare/ohios/internal/logger"
	"github.com/joshuapare/ohios/kernel"
)

// command is one row of the grammar.
type command struct {
	name    string
	aliases []string
	args    string // argument synopsis for help and usage lines
	minArgs int
	desc    string
	run     func(d *Dispatcher, args []string) Result
}

func (c *command) usage() string {
	if c.args == "" {
		return "Usage: " + c.name
	}
	return "Usage: " + c.name + " " + c.args
}

// Dispatcher parses command lines and applies them to a System.
type Dispatcher struct {
	sys      *kernel.System
	commands []*command
	index    map[string]*command
	fold     cases.Caser
}

// New returns a Dispatcher bound to sys.
func New(sys *kernel.System) *Dispatcher {
	d := &Dispatcher{
		sys:   sys,
		index: make(map[string]*command),
		fold:  cases.Fold(),
	}
	for _, c := range grammar() {
		d.register(c)
	}
	return d
}

func (d *Dispatcher) register(c *command) {
	d.commands = append(d.commands, c)
	d.index[c.name] = c
	for _, a := range c.aliases {
		d.index[a] = c
	}
}

// System returns the kernel the dispatcher drives.
func (d *Dispatcher) System() *kernel.System { return d.sys }

// Names returns the canonical command names in help order.
func (d *Dispatcher) Names() []string {
	out := make([]string, 0, len(d.commands))
	for _, c := range d.commands {
		out = append(out, c.name)
	}
	return out
}

// Execute runs one command line under the kernel lock. Blank input yields an
// empty Result.
func (d *Dispatcher) Execute(line string) (res Result) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Result{}
	}

	d.sys.Lock()
	defer d.sys.Unlock()

	defer func() {
		if r := recover(); r != nil {
			logger.Error("command panicked", "line", line, "panic", r)
			res = lines(fmt.Sprintf("Error: %v", r))
		}
	}()

	token := d.fold.String(fields[0])
	args := fields[1:]

	c, ok := d.index[token]
	if !ok {
		logger.Debug("unknown command", "token", fields[0])
		return lines(
			"ohiOS: command not found: "+token,
			"Type 'help' for available commands",
		)
	}
	if len(args) < c.minArgs {
		return lines(c.usage())
	}

	logger.Debug("execute", "command", c.name, "args", len(args))
	return c.run(d, args)
}

// Help renders the command list.
func (d *Dispatcher) Help() []string {
	out := []string{"ohiOS Shell Commands:"}
	for _, c := range d.commands {
		synopsis := c.name
		if c.args != "" {
			synopsis += " " + c.args
		}
		out = append(out, fmt.Sprintf("  %-18s - %s", synopsis, c.desc))
	}
	return out
}
