// Package tui renders interactive batch progress for terminal sessions.
package tui

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cornerbrand/cornerbrand/batch"
)

// Model consumes progress updates from a channel and quits when the
// channel closes. Ctrl+C invokes the cancel callback instead of
// quitting so the batch can wind down and report its final state.
type Model struct {
	updates  <-chan batch.Progress
	cancel   func()
	started  time.Time
	width    int
	total    int
	done     int
	failed   int
	lastPath string
	quitting bool
}

type doneMsg struct{}

type updateMsg batch.Progress

func NewModel(updates <-chan batch.Progress, cancel func()) Model {
	return Model{updates: updates, cancel: cancel, started: time.Now()}
}

func (m Model) Init() tea.Cmd {
	return listenForUpdates(m.updates)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case updateMsg:
		m.total = msg.Total
		m.done = msg.Done
		m.lastPath = msg.InputPath
		if !msg.OK {
			m.failed++
		}
		return m, listenForUpdates(m.updates)
	case doneMsg:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" && m.cancel != nil {
			m.cancel()
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	default:
		return m, nil
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	barWidth := 40
	if m.width > 0 {
		barWidth = int(math.Min(60, float64(m.width-10)))
		if barWidth < 20 {
			barWidth = 20
		}
	}

	ratio := 0.0
	if m.total > 0 {
		ratio = float64(m.done) / float64(m.total)
		if ratio > 1 {
			ratio = 1
		}
	}

	current := "-"
	if m.lastPath != "" {
		current = filepath.Base(m.lastPath)
	}

	counters := labelStyle.Render(fmt.Sprintf("Files: %d/%d", m.done, m.total))
	if m.failed > 0 {
		counters += failStyle.Render(fmt.Sprintf("  failed:%d", m.failed))
	}

	elapsed := time.Since(m.started).Round(time.Millisecond)

	lines := []string{
		titleStyle.Render("cornerbrand"),
		counters,
		labelStyle.Render(fmt.Sprintf("Current: %s", current)),
		dimStyle.Render(fmt.Sprintf("Elapsed: %s", elapsed)),
		barStyle.Render(renderBar(barWidth, ratio)),
	}

	return strings.Join(lines, "\n")
}

func listenForUpdates(updates <-chan batch.Progress) tea.Cmd {
	return func() tea.Msg {
		update, ok := <-updates
		if !ok {
			return doneMsg{}
		}
		return updateMsg(update)
	}
}

func renderBar(width int, ratio float64) string {
	filled := int(math.Round(ratio * float64(width)))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("=", filled) + strings.Repeat(" ", width-filled) + "]"
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	labelStyle = lipgloss.NewStyle().Foreground(ColorInk)
	barStyle   = lipgloss.NewStyle().Foreground(ColorAccentAlt)
	dimStyle   = lipgloss.NewStyle().Foreground(ColorDim)
	failStyle  = lipgloss.NewStyle().Foreground(ColorWarn)
)
