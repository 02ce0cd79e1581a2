package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/stokdesk/tui-go/internal/session"
)

// DebugPanel keeps a rolling log of session transitions. It is shared by
// pointer between model copies because the session observer writes to it.
type DebugPanel struct {
	visible bool
	lines   []string
	buffer  int
	now     func() time.Time
}

// NewDebugPanel creates a new debug panel
func NewDebugPanel(visible bool) *DebugPanel {
	return &DebugPanel{
		visible: visible,
		buffer:  100,
		now:     time.Now,
	}
}

// Visible reports whether the panel is drawn.
func (d *DebugPanel) Visible() bool {
	return d.visible
}

// Toggle flips visibility. Lines are recorded either way.
func (d *DebugPanel) Toggle() {
	d.visible = !d.visible
}

// AddLine appends a timestamped line, dropping the oldest past the buffer.
func (d *DebugPanel) AddLine(line string) {
	d.lines = append(d.lines, d.now().Format("15:04:05.000")+" "+line)
	if len(d.lines) > d.buffer {
		d.lines = d.lines[len(d.lines)-d.buffer:]
	}
}

// Record logs a session change as "[op] id → open=[...] active=x".
func (d *DebugPanel) Record(c session.Change) {
	active := "-"
	if c.After.HasActive {
		active = c.After.Active
	}
	d.AddLine(fmt.Sprintf("[%s] %s → open=[%s] active=%s",
		c.Op, c.ID, strings.Join(c.After.Open, ", "), active))
}

// Lines returns the current debug lines
func (d *DebugPanel) Lines() []string {
	return d.lines
}

// Render draws the newest lines that fit, inside a bordered box.
func (d *DebugPanel) Render(st Styles, width, height int) string {
	if !d.visible {
		return ""
	}

	title := lipgloss.NewStyle().
		Foreground(st.Palette.Yellow).
		Bold(true).
		Render("DEBUG")

	// Borders and the title line
	vp := viewport.New(max(width-4, 10), max(height-3, 1))
	lines := make([]string, len(d.lines))
	for i, l := range d.lines {
		lines[i] = truncate(l, vp.Width)
	}
	vp.SetContent(strings.Join(lines, "\n"))
	vp.GotoBottom()

	return lipgloss.NewStyle().
		Width(width - 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(st.Palette.Yellow).
		Padding(0, 1).
		Render(title + "\n" + vp.View())
}
