package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

// View renders the entire UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showHelp {
		// The overlay needs a background model; a copy without the help flag
		// renders the normal screen.
		bg := m
		bg.showHelp = false
		help := overlay.New(
			helpBox{lines: m.d.Help(), keys: m.keys},
			bg,
			overlay.Center, // horizontal position
			overlay.Center, // vertical position
			0,
			0,
		)
		return help.View()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.renderOutput(),
		m.renderStatus(),
		m.renderInput(),
		m.renderFooter(),
	)
}

func (m Model) paneWidth() int {
	if m.width == 0 {
		return 80
	}
	return m.width - 2
}

func (m Model) renderHeader() string {
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		headerStyle.Render("ohiOS"),
		"  ",
		pathStyle.Render(m.cwd()),
	) + "\n"
}

func (m Model) renderOutput() string {
	return labelStyle.Render("shell://") + "\n" +
		paneStyle.Width(m.paneWidth()).Render(m.output.View())
}

// renderStatus shows the counters, refreshed after every command.
func (m Model) renderStatus() string {
	sys := m.d.System()
	sys.Lock()
	info := sys.Memory().Info()
	nproc := sys.Processes().Len()
	policy := sys.Memory().Policy()
	sys.Unlock()

	gauge := memStyle(info.Used, info.Total).Render(
		fmt.Sprintf("%d/%dB used", info.Used, info.Total),
	)
	line := fmt.Sprintf("Memory: %s (%s)  Processes: %d", gauge, policy, nproc)
	if m.status != "" {
		line += "  " + m.status
	}
	return paneStyle.Width(m.paneWidth()).Render(line)
}

func (m Model) renderInput() string {
	return paneStyle.Width(m.paneWidth()).Render(m.input.View())
}

func (m Model) renderFooter() string {
	return statusStyle.Render("enter run • ↑/↓ history • tab complete • f1 help • ctrl+c quit")
}

// helpBox is the foreground of the help overlay.
type helpBox struct {
	lines []string
	keys  KeyMap
}

func (h helpBox) Init() tea.Cmd                       { return nil }
func (h helpBox) Update(tea.Msg) (tea.Model, tea.Cmd) { return h, nil }

func (h helpBox) View() string {
	var b strings.Builder
	b.WriteString(modalTitleStyle.Render("Commands"))
	b.WriteString("\n")
	for _, l := range h.lines[1:] {
		b.WriteString(helpDescStyle.Render(l))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(modalTitleStyle.Render("Keys"))
	b.WriteString("\n")
	for _, k := range h.keys.bindings() {
		hl := k.Help()
		b.WriteString(fmt.Sprintf("  %s  %s\n", helpKeyStyle.Render(fmt.Sprintf("%-8s", hl.Key)), helpDescStyle.Render(hl.Desc)))
	}
	return modalStyle.Render(strings.TrimRight(b.String(), "\n"))
}
