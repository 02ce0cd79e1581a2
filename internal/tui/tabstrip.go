package tui

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stokdesk/tui-go/internal/session"
)

const (
	tabLabelMax   = 24
	tabCloseGlyph = "×"
	tabOverflow   = "‹ "
)

// TabSelectedMsg asks the shell to bring an open tab forward.
type TabSelectedMsg struct {
	ID string
}

// TabCloseRequestedMsg asks the shell to close a tab. It never selects.
type TabCloseRequestedMsg struct {
	ID string
}

// tabZone is the column span of one rendered tab, relative to the strip.
// [CloseStart, End) is the close button; the rest selects.
type tabZone struct {
	ID         string
	Start      int
	CloseStart int
	End        int
}

func tabLabel(id string) string {
	return truncate(id, tabLabelMax)
}

// Each tab renders as " label × ", tabs separated by one column.
func tabWidth(id string) int {
	return lipgloss.Width(tabLabel(id)) + 4
}

func spanWidth(ids []string, lead bool) int {
	n := 0
	if lead {
		n = lipgloss.Width(tabOverflow)
	}
	for i, id := range ids {
		if i > 0 {
			n++
		}
		n += tabWidth(id)
	}
	return n
}

// layoutTabs places tabs left to right within width. When they do not
// fit, leading tabs scroll off until the active one is visible. It returns
// the zones and the index of the first visible tab.
func layoutTabs(ids []string, active string, width int) ([]tabZone, int) {
	first := 0
	if ai := slices.Index(ids, active); ai > 0 {
		for first < ai && spanWidth(ids[first:ai+1], first > 0) > width {
			first++
		}
	}

	x := 0
	if first > 0 {
		x = lipgloss.Width(tabOverflow)
	}
	zones := make([]tabZone, 0, len(ids)-first)
	for i := first; i < len(ids); i++ {
		if i > first {
			x++
		}
		w := tabWidth(ids[i])
		if x+w > width && len(zones) > 0 {
			break
		}
		zones = append(zones, tabZone{
			ID:         ids[i],
			Start:      x,
			CloseStart: x + w - 2,
			End:        x + w,
		})
		x += w
	}
	return zones, first
}

// tabAt resolves a click column to the message it produces, or nil. A
// click on the close button yields only TabCloseRequestedMsg.
func tabAt(zones []tabZone, x int) tea.Msg {
	for _, z := range zones {
		if x < z.Start || x >= z.End {
			continue
		}
		if x >= z.CloseStart {
			return TabCloseRequestedMsg{ID: z.ID}
		}
		return TabSelectedMsg{ID: z.ID}
	}
	return nil
}

// renderTabStrip draws the strip exactly as layoutTabs measured it.
func renderTabStrip(st Styles, snap session.Snapshot, width int) string {
	if len(snap.Open) == 0 {
		return st.Muted.Render(truncate(" açık sekme yok", width))
	}

	zones, first := layoutTabs(snap.Open, snap.Active, width)
	var b strings.Builder
	if first > 0 {
		b.WriteString(st.Muted.Render(tabOverflow))
	}
	for i, z := range zones {
		if i > 0 {
			b.WriteString(st.TabSep.Render("│"))
		}
		label := st.Tab
		if snap.HasActive && z.ID == snap.Active {
			label = st.TabActive
		}
		b.WriteString(" ")
		b.WriteString(label.Render(tabLabel(z.ID)))
		b.WriteString(" ")
		b.WriteString(st.TabClose.Render(tabCloseGlyph))
		b.WriteString(" ")
	}
	return b.String()
}
