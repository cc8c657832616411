// Package tui is a full-screen front end for the ohiOS shell.
//
// The screen has a shell pane with the command transcript, a status pane with
// memory and process counters refreshed after every command, and an input
// line. All work goes through shell.Dispatcher; the TUI only collects lines
// and renders results.
package tui

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/ohios/internal/logger"
	"github.com/joshuapare/ohios/shell"
)

// Layout constants
const (
	headerHeight = 2 // title line plus spacing
	statusHeight = 3 // bordered single line
	inputHeight  = 3 // bordered single line
	footerHeight = 1
	maxScroll    = 1000 // transcript lines kept
)

// Options configures a Model.
type Options struct {
	// Prompt renders the input prompt for a working directory.
	Prompt func(cwd string) string

	// Copy writes text to the system clipboard. Default: clipboard.WriteAll
	Copy func(text string) error
}

// Model is the bubbletea model for the shell UI.
type Model struct {
	d    *shell.Dispatcher
	keys KeyMap
	opts Options

	input  textinput.Model
	output viewport.Model

	transcript []string
	last       shell.Result

	history []string
	histIdx int // == len(history) when not browsing

	status   string
	showHelp bool
	quitting bool

	width  int
	height int
}

// New returns a Model bound to d.
func New(d *shell.Dispatcher, opts Options) Model {
	if opts.Prompt == nil {
		opts.Prompt = func(cwd string) string { return cwd + "$ " }
	}
	if opts.Copy == nil {
		opts.Copy = clipboard.WriteAll
	}

	ti := textinput.New()
	ti.Placeholder = "type a command, e.g. help"
	ti.ShowSuggestions = true
	ti.SetSuggestions(d.Names())
	ti.Focus()

	m := Model{
		d:      d,
		keys:   DefaultKeyMap(),
		opts:   opts,
		input:  ti,
		output: viewport.New(80, 15),
	}
	m.input.Prompt = opts.Prompt(m.cwd())
	m.appendLines("Welcome to ohiOS")
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Transcript returns the lines shown in the shell pane.
func (m Model) Transcript() []string { return m.transcript }

// Quitting reports whether the session has ended.
func (m Model) Quitting() bool { return m.quitting }

func (m Model) cwd() string {
	sys := m.d.System()
	sys.Lock()
	defer sys.Unlock()
	return sys.FS().Pwd()
}

// submit runs the current input line.
func (m Model) submit() (Model, tea.Cmd) {
	line := m.input.Value()
	m.input.SetValue("")

	m.appendLines(echoStyle.Render("ohiOS> ") + line)
	if line != "" && (len(m.history) == 0 || m.history[len(m.history)-1] != line) {
		m.history = append(m.history, line)
	}
	m.histIdx = len(m.history)

	res := m.d.Execute(line)
	logger.Debug("tui command", "line", line, "lines", len(res.Lines), "exit", res.Exit)
	if !res.Empty() {
		m.last = res
	}

	if res.Clear {
		m.transcript = nil
	}
	m.appendLines(res.Lines...)
	m.input.Prompt = m.opts.Prompt(m.cwd())
	m.status = ""

	if res.Exit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) appendLines(l ...string) {
	m.transcript = append(m.transcript, l...)
	if over := len(m.transcript) - maxScroll; over > 0 {
		m.transcript = m.transcript[over:]
	}
	m.refreshOutput()
}

func (m *Model) refreshOutput() {
	m.output.SetContent(strings.Join(m.transcript, "\n"))
	m.output.GotoBottom()
}

// browse moves through history by delta and loads the entry into the input.
func (m Model) browse(delta int) Model {
	if len(m.history) == 0 {
		return m
	}
	m.histIdx = min(max(m.histIdx+delta, 0), len(m.history))
	if m.histIdx == len(m.history) {
		m.input.SetValue("")
	} else {
		m.input.SetValue(m.history[m.histIdx])
	}
	m.input.CursorEnd()
	return m
}

func (m Model) copyLast() Model {
	text := m.last.String()
	if text == "" {
		m.status = "Nothing to copy"
		return m
	}
	if err := m.opts.Copy(text); err != nil {
		logger.Warn("clipboard write failed", "error", err)
		m.status = "Copy failed: " + err.Error()
		return m
	}
	m.status = "Copied last result"
	return m
}

func (m Model) resize(width, height int) Model {
	m.width = width
	m.height = height
	m.output.Width = max(width-4, 10)
	m.output.Height = max(height-headerHeight-statusHeight-inputHeight-footerHeight-2, 3)
	m.input.Width = max(width-len(m.input.Prompt)-6, 10)
	m.refreshOutput()
	return m
}
