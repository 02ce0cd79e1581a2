package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stokdesk/tui-go/internal/menu"
	"github.com/stokdesk/tui-go/internal/session"
)

const (
	sidebarWidth          = 30
	sidebarCollapsedWidth = 7
	// Title and filter lines above the first row
	sidebarHeaderLines = 2
	searchLimit        = 8
)

// ItemSelectedMsg asks the shell to open, or bring forward, the tab for ID.
type ItemSelectedMsg struct {
	ID string
}

func selectItem(id string) tea.Cmd {
	return func() tea.Msg { return ItemSelectedMsg{ID: id} }
}

type sidebarRow struct {
	name     string
	icon     string
	group    bool
	children bool
	expanded bool
}

// Sidebar renders the menu tree and turns selections into ItemSelectedMsg.
// The expanded set is sidebar state only; it never touches the session.
type Sidebar struct {
	tree      menu.Tree
	expanded  map[string]bool
	collapsed bool

	cursor  int
	offset  int
	visible int

	filter    textinput.Model
	filtering bool
	matches   []menu.Match
	match     int
}

// NewSidebar creates a sidebar over tree.
func NewSidebar(tree menu.Tree, collapsed bool) Sidebar {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "Menüde ara..."
	ti.CharLimit = 40

	return Sidebar{
		tree:      tree,
		expanded:  make(map[string]bool),
		collapsed: collapsed,
		visible:   1,
		filter:    ti,
	}
}

// Width is the outer width including the border. The quick-open filter
// always gets the full width.
func (s *Sidebar) Width() int {
	if s.collapsed && !s.filtering {
		return sidebarCollapsedWidth
	}
	return sidebarWidth
}

func (s *Sidebar) Collapsed() bool { return s.collapsed }

func (s *Sidebar) Filtering() bool { return s.filtering }

// SetCollapsed switches between the icon rail and the full tree.
func (s *Sidebar) SetCollapsed(c bool) {
	s.collapsed = c
	s.clamp()
}

// SetHeight sets how many rows fit below the title.
func (s *Sidebar) SetHeight(rows int) {
	s.visible = max(rows, 1)
	s.clamp()
}

// SetTree swaps in a reloaded menu, forgetting expansion state for groups
// that no longer exist.
func (s *Sidebar) SetTree(tree menu.Tree) {
	s.tree = tree
	groups := make(map[string]bool, len(tree.Items))
	for _, it := range tree.Items {
		groups[it.Name] = true
	}
	for name := range s.expanded {
		if !groups[name] {
			delete(s.expanded, name)
		}
	}
	if s.filtering {
		s.search()
	}
	s.clamp()
}

// rows flattens the visible part of the tree. Children only show for
// expanded groups, and never while collapsed.
func (s *Sidebar) rows() []sidebarRow {
	rows := make([]sidebarRow, 0, len(s.tree.Items))
	for _, it := range s.tree.Items {
		open := !s.collapsed && it.HasChildren() && s.expanded[it.Name]
		rows = append(rows, sidebarRow{
			name:     it.Name,
			icon:     it.Icon,
			group:    true,
			children: it.HasChildren(),
			expanded: open,
		})
		if !open {
			continue
		}
		for _, child := range it.Children {
			rows = append(rows, sidebarRow{name: child})
		}
	}
	return rows
}

// activate applies a selection to a row. Expandable groups toggle; every
// other row, and every group while collapsed, opens a tab named after it.
func (s *Sidebar) activate(r sidebarRow) tea.Cmd {
	if r.group && r.children && !s.collapsed {
		s.expanded[r.name] = !s.expanded[r.name]
		s.clamp()
		return nil
	}
	return selectItem(r.name)
}

// Update handles a key while the sidebar has focus.
func (s *Sidebar) Update(msg tea.KeyMsg, keys KeyMap) tea.Cmd {
	if s.filtering {
		return s.updateFilter(msg)
	}

	rows := s.rows()
	switch {
	case key.Matches(msg, keys.Up):
		s.cursor--
	case key.Matches(msg, keys.Down):
		s.cursor++
	case key.Matches(msg, keys.PageUp):
		s.cursor -= s.visible
	case key.Matches(msg, keys.PageDown):
		s.cursor += s.visible
	case key.Matches(msg, keys.Home):
		s.cursor = 0
	case key.Matches(msg, keys.End):
		s.cursor = len(rows) - 1
	case key.Matches(msg, keys.Select):
		if s.cursor >= 0 && s.cursor < len(rows) {
			return s.activate(rows[s.cursor])
		}
	case key.Matches(msg, keys.Filter):
		return s.startFilter()
	case msg.Type == tea.KeyRight:
		if r, ok := s.rowAt(s.cursor); ok && r.children && !s.collapsed {
			s.expanded[r.name] = true
		}
	case msg.Type == tea.KeyLeft:
		s.collapseAtCursor()
	}
	s.clamp()
	return nil
}

func (s *Sidebar) rowAt(i int) (sidebarRow, bool) {
	rows := s.rows()
	if i < 0 || i >= len(rows) {
		return sidebarRow{}, false
	}
	return rows[i], true
}

// collapseAtCursor folds the group under the cursor, or the parent group
// of a child row, and moves the cursor onto the group.
func (s *Sidebar) collapseAtCursor() {
	rows := s.rows()
	for i := min(s.cursor, len(rows)-1); i >= 0; i-- {
		if rows[i].group {
			s.expanded[rows[i].name] = false
			s.cursor = i
			return
		}
	}
}

func (s *Sidebar) startFilter() tea.Cmd {
	s.filtering = true
	s.filter.SetValue("")
	s.matches = nil
	s.match = 0
	return s.filter.Focus()
}

func (s *Sidebar) stopFilter() {
	s.filtering = false
	s.filter.Blur()
	s.matches = nil
	s.match = 0
	s.clamp()
}

func (s *Sidebar) updateFilter(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		s.stopFilter()
		return nil
	case tea.KeyEnter:
		if s.match < len(s.matches) {
			id := s.matches[s.match].Name
			s.stopFilter()
			return selectItem(id)
		}
		return nil
	case tea.KeyUp:
		s.match = max(s.match-1, 0)
		return nil
	case tea.KeyDown:
		s.match = min(s.match+1, max(len(s.matches)-1, 0))
		return nil
	}

	var cmd tea.Cmd
	s.filter, cmd = s.filter.Update(msg)
	s.search()
	return cmd
}

func (s *Sidebar) search() {
	s.matches = s.tree.Search(s.filter.Value(), searchLimit)
	if s.match >= len(s.matches) {
		s.match = 0
	}
}

// Click selects the row at the given line below the sidebar header, as if
// it had been chosen with the keyboard.
func (s *Sidebar) Click(line int) tea.Cmd {
	if line < 0 {
		return nil
	}
	if s.filtering {
		if line >= len(s.matches) {
			return nil
		}
		id := s.matches[line].Name
		s.stopFilter()
		return selectItem(id)
	}

	idx := s.offset + line
	r, ok := s.rowAt(idx)
	if !ok {
		return nil
	}
	s.cursor = idx
	cmd := s.activate(r)
	s.clamp()
	return cmd
}

// Scroll moves the viewport by delta rows, dragging the cursor along.
func (s *Sidebar) Scroll(delta int) {
	n := len(s.rows())
	s.offset = max(min(s.offset+delta, n-s.visible), 0)
	if s.cursor < s.offset {
		s.cursor = s.offset
	}
	if s.cursor >= s.offset+s.visible {
		s.cursor = s.offset + s.visible - 1
	}
	s.clamp()
}

func (s *Sidebar) clamp() {
	n := len(s.rows())
	s.cursor = max(min(s.cursor, n-1), 0)
	if s.cursor < s.offset {
		s.offset = s.cursor
	}
	if s.cursor >= s.offset+s.visible {
		s.offset = s.cursor - s.visible + 1
	}
	s.offset = max(min(s.offset, n-s.visible), 0)
}

// View renders the sidebar box at the given outer height. Open tabs get a
// marker so the tree doubles as a tab overview.
func (s *Sidebar) View(st Styles, height int, focused bool, snap session.Snapshot) string {
	width := s.Width()
	inner := width - 4

	var lines []string
	if s.collapsed && !s.filtering {
		lines = append(lines, st.SidebarTitle.Render("☰"), "")
	} else {
		lines = append(lines, st.SidebarTitle.Render("MENÜ"))
		if s.filtering {
			lines = append(lines, s.filter.View())
		} else {
			lines = append(lines, st.Muted.Render(truncate("/ ara", inner)))
		}
	}

	if s.filtering {
		lines = append(lines, s.matchLines(st, inner)...)
	} else {
		rows := s.rows()
		end := min(s.offset+s.visible, len(rows))
		for i := s.offset; i < end; i++ {
			lines = append(lines, s.renderRow(st, rows[i], inner, i == s.cursor && focused, snap))
		}
	}

	box := st.Sidebar
	if focused {
		box = st.SidebarFocused
	}
	return box.
		Width(width - 2).
		Height(max(height-2, 1)).
		MaxHeight(height).
		Render(strings.Join(lines, "\n"))
}

func (s *Sidebar) renderRow(st Styles, r sidebarRow, width int, selected bool, snap session.Snapshot) string {
	var text string
	style := st.SidebarItem
	switch {
	case r.group && s.collapsed:
		text = r.icon
		if text == "" {
			text = string([]rune(r.name)[:1])
		}
		style = st.SidebarGroup
	case r.group:
		arrow := " "
		if r.children {
			arrow = "▸"
			if r.expanded {
				arrow = "▾"
			}
		}
		icon := r.icon
		if icon == "" {
			icon = "·"
		}
		text = arrow + " " + icon + " " + r.name
		style = st.SidebarGroup
	default:
		text = "    " + r.name
	}

	mark := ""
	if snap.IsOpen(r.name) && !s.collapsed {
		mark = " •"
	}
	text = truncate(text, width-lipgloss.Width(mark))

	if selected {
		pad := max(width-lipgloss.Width(text)-lipgloss.Width(mark), 0)
		return st.SidebarCursor.Render(text + mark + strings.Repeat(" ", pad))
	}
	return style.Render(text) + st.SidebarOpenMark.Render(mark)
}

func (s *Sidebar) matchLines(st Styles, width int) []string {
	if strings.TrimSpace(s.filter.Value()) == "" {
		return []string{st.Muted.Render(truncate("yazmaya başlayın", width))}
	}
	if len(s.matches) == 0 {
		return []string{st.Muted.Render("sonuç yok")}
	}
	lines := make([]string, 0, len(s.matches))
	for i, m := range s.matches {
		name := truncate(m.Name, width)
		group := truncate(" · "+m.Group, max(width-lipgloss.Width(name), 0))
		if i == s.match {
			pad := max(width-lipgloss.Width(name)-lipgloss.Width(group), 0)
			lines = append(lines, st.SidebarCursor.Render(name+group+strings.Repeat(" ", pad)))
			continue
		}
		lines = append(lines, st.SidebarItem.Render(name)+st.Muted.Render(group))
	}
	return lines
}
