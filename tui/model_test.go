package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cornerbrand/cornerbrand/batch"
)

func TestModelTracksProgress(t *testing.T) {
	m := NewModel(nil, nil)

	next, _ := m.Update(updateMsg(batch.Progress{Total: 3, Done: 1, InputPath: "/in/a.png", OK: true}))
	m = next.(Model)
	next, _ = m.Update(updateMsg(batch.Progress{Total: 3, Done: 2, InputPath: "/in/b.png", OK: false}))
	m = next.(Model)

	if m.total != 3 || m.done != 2 || m.failed != 1 {
		t.Errorf("model state = total %d done %d failed %d, want 3 2 1", m.total, m.done, m.failed)
	}

	view := m.View()
	if !strings.Contains(view, "2/3") {
		t.Errorf("view missing counter: %q", view)
	}
	if !strings.Contains(view, "b.png") {
		t.Errorf("view missing current file: %q", view)
	}
}

func TestModelQuitsWhenUpdatesEnd(t *testing.T) {
	updates := make(chan batch.Progress)
	close(updates)
	m := NewModel(updates, nil)

	cmd := m.Init()
	if cmd == nil {
		t.Fatal("Init() returned nil command")
	}
	msg := cmd()
	if _, ok := msg.(doneMsg); !ok {
		t.Fatalf("command message = %T, want doneMsg", msg)
	}

	next, _ := m.Update(msg)
	m = next.(Model)
	if !m.quitting {
		t.Error("model not quitting after doneMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty while quitting")
	}
}

func TestModelCancelsOnCtrlC(t *testing.T) {
	cancelled := false
	m := NewModel(nil, func() { cancelled = true })

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = next.(Model)

	if !cancelled {
		t.Error("ctrl+c did not invoke cancel callback")
	}
	if m.quitting {
		t.Error("ctrl+c should not quit the model directly")
	}
}

func TestRenderBar(t *testing.T) {
	tests := []struct {
		width    int
		ratio    float64
		expected string
	}{
		{10, 0, "[          ]"},
		{10, 0.5, "[=====     ]"},
		{10, 1, "[==========]"},
		{10, 2, "[==========]"},
	}

	for _, tc := range tests {
		if got := renderBar(tc.width, tc.ratio); got != tc.expected {
			t.Errorf("renderBar(%d, %v) = %q, want %q", tc.width, tc.ratio, got, tc.expected)
		}
	}
}

func TestRenderSummary(t *testing.T) {
	out := RenderSummary([]SummaryRow{
		{Label: "Files", Value: "3"},
		{Label: "Succeeded", Value: "2"},
	})

	if !strings.Contains(out, "Files") || !strings.Contains(out, "Succeeded") {
		t.Errorf("summary missing rows: %q", out)
	}
	if lines := strings.Split(out, "\n"); len(lines) != 4 {
		t.Errorf("summary lines = %d, want 4", len(lines))
	}
}
