package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stokdesk/tui-go/internal/config"
	"github.com/stokdesk/tui-go/internal/menu"
	"github.com/stokdesk/tui-go/internal/model"
	"github.com/stokdesk/tui-go/internal/session"
	"go.uber.org/zap"
)

// ViewMode represents the current view
type ViewMode int

const (
	ViewModeMain ViewMode = iota
	ViewModeHelp
)

// FocusArea is the pane that receives navigation keys.
type FocusArea int

const (
	FocusSidebar FocusArea = iota
	FocusContent
)

// Screen layout, in rows
const (
	headerHeight   = 1
	statusHeight   = 1
	tabStripHeight = 1
	debugHeight    = 8
	// Sidebar rows start below the header, the top border and the title
	// and filter lines.
	sidebarRowsTop = headerHeight + 1 + sidebarHeaderLines
)

const emptyStateText = "Menüden istediğiniz formu seçerek işlemlerinize başlayabilirsiniz."

// MenuReloadedMsg carries the result of a menu file reload from the
// watcher goroutine.
type MenuReloadedMsg struct {
	Tree menu.Tree
	Err  error
}

// Model is the main TUI model
type Model struct {
	// Dimensions
	width  int
	height int
	ready  bool

	cfg  *config.Config
	log  *zap.Logger
	keys KeyMap
	help help.Model

	theme  config.Theme
	styles Styles

	session *session.Session
	panels  map[string]Panel
	sidebar Sidebar
	debug   *DebugPanel

	viewMode  ViewMode
	focus     FocusArea
	status    string
	statusErr bool
}

// NewRootModel creates the shell around an empty session.
func NewRootModel(cfg *config.Config, tree menu.Tree, log *zap.Logger) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if log == nil {
		log = zap.NewNop()
	}

	styles := NewStyles(cfg.Theme)
	h := help.New()
	h.Styles = styles.HelpStyles()

	m := Model{
		cfg:     cfg,
		log:     log,
		keys:    DefaultKeyMap(),
		help:    h,
		theme:   cfg.Theme,
		styles:  styles,
		session: session.New(),
		panels:  make(map[string]Panel),
		sidebar: NewSidebar(tree, cfg.SidebarCollapsed),
		debug:   NewDebugPanel(cfg.Debug),
	}

	dbg := m.debug
	m.session.Subscribe(func(c session.Change) {
		log.Debug("session change",
			zap.String("op", string(c.Op)),
			zap.String("id", c.ID),
			zap.Strings("open", c.After.Open),
			zap.String("active", c.After.Active))
		dbg.Record(c)
	})
	return m
}

// Init starts the program
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("stokdesk")
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = msg.Width
		m.layout()
		return m, nil

	case ItemSelectedMsg:
		m.session.OpenOrActivate(msg.ID)
		m.syncPanels()
		m.focus = FocusContent
		m.setStatus("", false)
		return m, nil

	case TabSelectedMsg:
		m.session.Activate(msg.ID)
		return m, nil

	case TabCloseRequestedMsg:
		m.session.Close(msg.ID)
		m.syncPanels()
		return m, nil

	case MenuReloadedMsg:
		if msg.Err != nil {
			m.log.Warn("menu reload failed", zap.Error(msg.Err))
			m.setStatus("menü yüklenemedi: "+msg.Err.Error(), true)
			return m, nil
		}
		m.sidebar.SetTree(msg.Tree)
		m.log.Info("menu reloaded", zap.Int("groups", len(msg.Tree.Items)))
		m.setStatus("menü yenilendi", false)
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Force) {
		return m, tea.Quit
	}

	if m.viewMode == ViewModeHelp {
		if key.Matches(msg, m.keys.Help, m.keys.Escape, m.keys.Quit) {
			m.viewMode = ViewModeMain
		}
		return m, nil
	}

	// Text entry owns the keyboard until it is dismissed
	if m.sidebar.Filtering() {
		cmd := m.sidebar.Update(msg, m.keys)
		m.layout()
		return m, cmd
	}
	if p := m.activePanel(); m.focus == FocusContent && p != nil && p.Capturing() {
		return m, p.Update(msg, m.keys)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.viewMode = ViewModeHelp

	case key.Matches(msg, m.keys.NextTab):
		m.session.Next()

	case key.Matches(msg, m.keys.PrevTab):
		m.session.Prev()

	case key.Matches(msg, m.keys.CloseTab):
		m.session.CloseActive()
		m.syncPanels()

	case key.Matches(msg, m.keys.Sidebar):
		m.sidebar.SetCollapsed(!m.sidebar.Collapsed())
		m.layout()

	case key.Matches(msg, m.keys.Theme):
		m.setTheme(m.theme.Toggle())

	case key.Matches(msg, m.keys.Debug):
		m.debug.Toggle()
		m.layout()

	case key.Matches(msg, m.keys.Escape):
		m.focus = FocusSidebar

	case m.focus == FocusContent:
		if p := m.activePanel(); p != nil {
			return m, p.Update(msg, m.keys)
		}

	default:
		cmd := m.sidebar.Update(msg, m.keys)
		if m.sidebar.Filtering() {
			// The filter needs the full sidebar width
			m.layout()
		}
		return m, cmd
	}

	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.viewMode != ViewModeMain {
		return m, nil
	}
	sw := m.sidebar.Width()

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if msg.X < sw {
			m.sidebar.Scroll(-1)
		}
		return m, nil
	case tea.MouseButtonWheelDown:
		if msg.X < sw {
			m.sidebar.Scroll(1)
		}
		return m, nil
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	switch {
	case msg.Y < headerHeight || msg.Y >= m.height-statusHeight:
		return m, nil

	case msg.X < sw:
		m.focus = FocusSidebar
		cmd := m.sidebar.Click(msg.Y - sidebarRowsTop)
		m.layout()
		return m, cmd

	case msg.Y == headerHeight:
		if hit := tabAt(m.tabZones(), msg.X-sw); hit != nil {
			return m, func() tea.Msg { return hit }
		}

	default:
		if m.session.Len() > 0 {
			m.focus = FocusContent
		}
	}
	return m, nil
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

func (m *Model) setTheme(t config.Theme) {
	m.theme = t
	m.styles = NewStyles(t)
	m.help.Styles = m.styles.HelpStyles()
	for _, p := range m.panels {
		p.SetStyles(m.styles)
	}
	m.log.Info("theme changed", zap.String("theme", string(t)))
}

func (m *Model) panelEnv(id string) panelEnv {
	return panelEnv{id: id, vatRate: m.cfg.VATRate, styles: m.styles}
}

// syncPanels creates panels for newly opened tabs and drops the panels of
// closed ones, so every open tab has exactly one panel.
func (m *Model) syncPanels() {
	snap := m.session.Snapshot()
	w, h := m.contentSize()
	for _, id := range snap.Open {
		if _, ok := m.panels[id]; ok {
			continue
		}
		p := newPanel(m.panelEnv(id))
		p.SetSize(w, h)
		m.panels[id] = p
	}
	for id := range m.panels {
		if !snap.IsOpen(id) {
			delete(m.panels, id)
		}
	}
	if !snap.HasActive {
		m.focus = FocusSidebar
	}
}

func (m *Model) activePanel() Panel {
	id, ok := m.session.Active()
	if !ok {
		return nil
	}
	return m.panels[id]
}

func (m *Model) bodyHeight() int {
	return max(m.height-headerHeight-statusHeight, 3)
}

func (m *Model) mainWidth() int {
	return max(m.width-m.sidebar.Width(), 10)
}

// contentHeight is the outer height of the panel box.
func (m *Model) contentHeight() int {
	h := m.bodyHeight() - tabStripHeight
	if m.debug.Visible() {
		h -= debugHeight
	}
	return max(h, 3)
}

// contentSize is the space inside the panel box border and padding.
func (m *Model) contentSize() (int, int) {
	return max(m.mainWidth()-4, 1), max(m.contentHeight()-2, 1)
}

func (m *Model) layout() {
	m.sidebar.SetHeight(m.bodyHeight() - 2 - sidebarHeaderLines)
	w, h := m.contentSize()
	for _, p := range m.panels {
		p.SetSize(w, h)
	}
}

func (m *Model) tabZones() []tabZone {
	snap := m.session.Snapshot()
	zones, _ := layoutTabs(snap.Open, snap.Active, m.mainWidth())
	return zones
}

// View renders the model
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	switch m.viewMode {
	case ViewModeHelp:
		return m.helpView()
	default:
		return m.mainView()
	}
}

// mainView renders the shell: header, sidebar beside the tab area, status bar
func (m Model) mainView() string {
	snap := m.session.Snapshot()

	sidebar := m.sidebar.View(m.styles, m.bodyHeight(), m.focus == FocusSidebar, snap)
	main := m.renderMain(snap)
	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, main)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		body,
		m.renderStatusBar(snap),
	)
}

func (m Model) renderHeader() string {
	title := m.styles.Brand.Render("STOKDESK")
	subtitle := m.styles.Muted.Render("Stok & Cari Yönetimi")
	left := title + "  " + subtitle

	rates := m.styles.HeaderMeta.Render("USD ") + m.styles.RateUp.Render(model.FormatRate(m.cfg.Rates.USD)) +
		m.styles.HeaderMeta.Render("  EUR ") + m.styles.RateDown.Render(model.FormatRate(m.cfg.Rates.EUR))
	theme := m.styles.Muted.Render("  ◐ " + string(m.theme))
	right := rates + theme

	gap := max(m.width-1-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return m.styles.Header.
		MaxWidth(m.width).
		Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) renderMain(snap session.Snapshot) string {
	width := m.mainWidth()
	height := m.contentHeight()
	focused := m.focus == FocusContent

	box := m.styles.Content
	if focused {
		box = m.styles.ContentFocused
	}
	box = box.Width(width - 2).Height(height - 2).MaxHeight(height)

	iw, ih := m.contentSize()
	var content string
	if p := m.activePanel(); p != nil {
		content = lipgloss.NewStyle().MaxWidth(iw).MaxHeight(ih).Render(p.View(focused))
	} else {
		content = lipgloss.Place(iw, ih, lipgloss.Center, lipgloss.Center,
			m.styles.Empty.Render(emptyStateText))
	}

	parts := []string{
		lipgloss.NewStyle().MaxWidth(width).Render(renderTabStrip(m.styles, snap, width)),
		box.Render(content),
	}
	if m.debug.Visible() {
		parts = append(parts, m.debug.Render(m.styles, width, debugHeight))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderStatusBar(snap session.Snapshot) string {
	sep := m.styles.Muted.Render(" │ ")

	var focus string
	if m.focus == FocusContent {
		focus = m.styles.Success.Render("● İçerik")
	} else {
		focus = m.styles.StatusKey.Render("○ Menü")
	}

	tabs := m.styles.Muted.Render("Sekmeler: " + itoa(len(snap.Open)))

	status := ""
	if m.status != "" {
		style := m.styles.Muted
		if m.statusErr {
			style = m.styles.Error
		}
		status = sep + style.Render(m.status)
	}

	line := focus + sep + tabs + status + sep + m.help.View(m.keys)
	return m.styles.StatusBar.MaxWidth(m.width).Render(line)
}

// helpView renders the key binding overlay
func (m Model) helpView() string {
	title := m.styles.HelpTitle.Render("Keyboard Shortcuts")

	h := m.help
	h.ShowAll = true
	content := title + "\n\n" + h.View(m.keys) + "\n\n" +
		m.styles.Muted.Render("Press ? or Esc to close")

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		m.styles.Help.Render(content),
	)
}

// Helper functions

// truncate shortens s to max display runes, ending in an ellipsis.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

func itoa(i int) string {
	return fmt.Sprintf("%d", i)
}
