// Package tui shows sweep progress live in the terminal.
package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/JonasHarsch/dasslcy/internal/bench"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	noisyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type progressMsg bench.Progress

type doneMsg struct {
	table *bench.Table
	err   error
}

// Model drives one sweep in the background and renders cells as they
// finish. The sweep itself stays sequential; only the display is async.
type Model struct {
	harness *bench.Harness
	cancel  context.CancelFunc
	ctx     context.Context
	events  chan tea.Msg

	cells []bench.Cell
	index int
	total int
	done  bool
	err   error
	table *bench.Table
}

func NewModel(h *bench.Harness) *Model {
	ctx, cancel := context.WithCancel(context.Background())
	m := &Model{
		harness: h,
		ctx:     ctx,
		cancel:  cancel,
		events:  make(chan tea.Msg, 16),
	}
	h.OnProgress(func(p bench.Progress) {
		m.events <- progressMsg(p)
	})
	return m
}

// Table returns the sweep result once the program has finished.
func (m *Model) Table() (*bench.Table, error) { return m.table, m.err }

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.sweep(), m.wait())
}

func (m *Model) sweep() tea.Cmd {
	return func() tea.Msg {
		table, err := m.harness.Sweep(m.ctx)
		return doneMsg{table: table, err: err}
	}
}

func (m *Model) wait() tea.Cmd {
	return func() tea.Msg { return <-m.events }
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.cancel()
			if m.done {
				return m, tea.Quit
			}
			return m, nil
		}
	case progressMsg:
		m.cells = append(m.cells, msg.Cell)
		m.index = msg.Index
		m.total = msg.Total
		return m, m.wait()
	case doneMsg:
		m.done = true
		m.table = msg.table
		m.err = msg.err
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("pfrbench sweep"))
	b.WriteString("\n")

	for _, c := range m.cells {
		label := fmt.Sprintf("%-10s N=%-6d", c.Variant, c.N)
		switch {
		case c.Err != "":
			b.WriteString(failStyle.Render(label + " error " + c.Err))
		case c.Failed:
			b.WriteString(failStyle.Render(label + " failed"))
		case c.Noisy:
			b.WriteString(noisyStyle.Render(fmt.Sprintf("%s %v (noisy)", label, c.Mean)))
		default:
			b.WriteString(okStyle.Render(fmt.Sprintf("%s %v", label, c.Mean)))
		}
		b.WriteString("\n")
	}

	if m.done {
		b.WriteString(dimStyle.Render("\nsweep complete"))
	} else {
		b.WriteString(dimStyle.Render(fmt.Sprintf("\n%d/%d cells", m.index, m.total)))
	}
	b.WriteString(helpStyle.Render("\nq: cancel/quit"))
	return b.String()
}

// RunLive executes the harness sweep under a live progress view and
// returns the resulting table.
func RunLive(h *bench.Harness) (*bench.Table, error) {
	m := NewModel(h)
	p := tea.NewProgram(m)
	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	return final.(*Model).Table()
}
