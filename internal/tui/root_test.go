package tui

import (
	"errors"
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stokdesk/tui-go/internal/config"
	"github.com/stokdesk/tui-go/internal/menu"
	"github.com/stokdesk/tui-go/internal/session"
	"go.uber.org/zap"
)

const testMenu = `
items:
  - name: Stoklar
    icon: "▣"
    children: [Stok Listesi, Hareketler]
  - name: Hızlı Satış
  - name: Raporlar
    children: [Kasa Raporu]
`

func testTree(t *testing.T) menu.Tree {
	t.Helper()
	tree, err := menu.Parse([]byte(testMenu))
	if err != nil {
		t.Fatalf("parse test menu: %v", err)
	}
	return tree
}

// Helper to create a sized test model with an empty session
func createTestModel(t *testing.T) Model {
	t.Helper()
	m := NewRootModel(config.DefaultConfig(), testTree(t), zap.NewNop())
	m, _ = update(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	newModel, cmd := m.Update(msg)
	return newModel.(Model), cmd
}

// emit runs a command that is expected to produce a shell message.
func emit(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command, got nil")
	}
	return cmd()
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func openTabs(m Model, ids ...string) Model {
	for _, id := range ids {
		m, _ = update(m, ItemSelectedMsg{ID: id})
	}
	return m
}

func assertSession(t *testing.T, m Model, wantOpen []string, wantActive string) {
	t.Helper()
	snap := m.session.Snapshot()
	if !slices.Equal(snap.Open, wantOpen) {
		t.Errorf("open = %v, want %v", snap.Open, wantOpen)
	}
	if wantActive == "" {
		if snap.HasActive {
			t.Errorf("active = %q, want none", snap.Active)
		}
		return
	}
	if !snap.HasActive || snap.Active != wantActive {
		t.Errorf("active = %q (has=%v), want %q", snap.Active, snap.HasActive, wantActive)
	}
}

func TestItemSelectedOpensAndActivates(t *testing.T) {
	m := createTestModel(t)
	m = openTabs(m, "Stok Listesi")

	assertSession(t, m, []string{"Stok Listesi"}, "Stok Listesi")
	if _, ok := m.panels["Stok Listesi"].(*stockListPanel); !ok {
		t.Errorf("panel = %T, want *stockListPanel", m.panels["Stok Listesi"])
	}
	if m.focus != FocusContent {
		t.Errorf("focus = %v, want content", m.focus)
	}
}

func TestItemSelectedTwiceKeepsOneTabAndPanel(t *testing.T) {
	m := createTestModel(t)
	m = openTabs(m, "Stok Listesi", "Hareketler")
	first := m.panels["Stok Listesi"]

	m = openTabs(m, "Stok Listesi")

	assertSession(t, m, []string{"Stok Listesi", "Hareketler"}, "Stok Listesi")
	if m.panels["Stok Listesi"] != first {
		t.Error("reopening an open tab replaced its panel")
	}
	if len(m.panels) != 2 {
		t.Errorf("panels = %d, want 2", len(m.panels))
	}
}

func TestCloseActiveFallsBackToLastTab(t *testing.T) {
	m := createTestModel(t)
	m = openTabs(m, "Stok Listesi", "Hareketler", "Hızlı Satış")
	m, _ = update(m, TabSelectedMsg{ID: "Hareketler"})

	m, _ = update(m, TabCloseRequestedMsg{ID: "Hareketler"})

	assertSession(t, m, []string{"Stok Listesi", "Hızlı Satış"}, "Hızlı Satış")
	if _, ok := m.panels["Hareketler"]; ok {
		t.Error("closed tab still has a panel")
	}
}

func TestCloseInactiveKeepsActive(t *testing.T) {
	m := createTestModel(t)
	m = openTabs(m, "Stok Listesi", "Hareketler", "Hızlı Satış")

	m, _ = update(m, TabCloseRequestedMsg{ID: "Stok Listesi"})

	assertSession(t, m, []string{"Hareketler", "Hızlı Satış"}, "Hızlı Satış")
}

func TestCloseOnlyTabReturnsFocusToSidebar(t *testing.T) {
	m := createTestModel(t)
	m = openTabs(m, "Stok Listesi")

	m, _ = update(m, TabCloseRequestedMsg{ID: "Stok Listesi"})

	assertSession(t, m, nil, "")
	if m.focus != FocusSidebar {
		t.Errorf("focus = %v, want sidebar", m.focus)
	}
	if len(m.panels) != 0 {
		t.Errorf("panels = %d, want 0", len(m.panels))
	}
}

func TestUnknownIDsAreNoops(t *testing.T) {
	m := createTestModel(t)
	m = openTabs(m, "Stok Listesi", "Hareketler")
	lines := len(m.debug.Lines())

	m, _ = update(m, TabSelectedMsg{ID: "Kasa Raporu"})
	m, _ = update(m, TabCloseRequestedMsg{ID: "Kasa Raporu"})

	assertSession(t, m, []string{"Stok Listesi", "Hareketler"}, "Hareketler")
	if got := len(m.debug.Lines()); got != lines {
		t.Errorf("debug lines = %d, want %d", got, lines)
	}
}

// zoneFor opens two tabs and returns the model with the second active and
// the strip zone of the first.
func zoneFor(t *testing.T) (Model, tabZone) {
	t.Helper()
	m := createTestModel(t)
	m = openTabs(m, "Stok Listesi", "Hareketler")
	for _, z := range m.tabZones() {
		if z.ID == "Stok Listesi" {
			return m, z
		}
	}
	t.Fatal("no zone for Stok Listesi")
	return m, tabZone{}
}

func TestTabStripLabelClickSelects(t *testing.T) {
	m, zone := zoneFor(t)
	sw := m.sidebar.Width()

	m, cmd := update(m, click(sw+zone.Start+2, headerHeight))
	msg := emit(t, cmd)
	if msg != (TabSelectedMsg{ID: "Stok Listesi"}) {
		t.Fatalf("msg = %#v", msg)
	}
	m, _ = update(m, msg)
	assertSession(t, m, []string{"Stok Listesi", "Hareketler"}, "Stok Listesi")
}

func TestTabStripCloseClickDoesNotSelect(t *testing.T) {
	m, zone := zoneFor(t)
	sw := m.sidebar.Width()

	m, cmd := update(m, click(sw+zone.CloseStart, headerHeight))
	msg := emit(t, cmd)
	if msg != (TabCloseRequestedMsg{ID: "Stok Listesi"}) {
		t.Fatalf("msg = %#v", msg)
	}
	m, _ = update(m, msg)
	assertSession(t, m, []string{"Hareketler"}, "Hareketler")
}

func TestTabStripClickPastTabsDoesNothing(t *testing.T) {
	m, _ := zoneFor(t)

	_, cmd := update(m, click(m.width-1, headerHeight))
	if cmd != nil {
		t.Errorf("click past the last tab produced %#v", cmd())
	}
}

func TestSidebarClickExpandsThenOpens(t *testing.T) {
	m := createTestModel(t)

	m, cmd := update(m, click(2, sidebarRowsTop))
	if cmd != nil {
		t.Fatalf("clicking a group emitted %#v", cmd())
	}
	if !m.sidebar.expanded["Stoklar"] {
		t.Fatal("group did not expand")
	}

	m, cmd = update(m, click(2, sidebarRowsTop+1))
	msg := emit(t, cmd)
	if msg != (ItemSelectedMsg{ID: "Stok Listesi"}) {
		t.Fatalf("msg = %#v", msg)
	}
	m, _ = update(m, msg)
	assertSession(t, m, []string{"Stok Listesi"}, "Stok Listesi")
}

func TestCollapsedSidebarOpensGroupByName(t *testing.T) {
	m := createTestModel(t)
	m, _ = update(m, keyType(tea.KeyCtrlB))
	if !m.sidebar.Collapsed() {
		t.Fatal("ctrl+b did not collapse the sidebar")
	}

	m, cmd := update(m, keyType(tea.KeyEnter))
	msg := emit(t, cmd)
	if msg != (ItemSelectedMsg{ID: "Stoklar"}) {
		t.Fatalf("msg = %#v", msg)
	}
	m, _ = update(m, msg)
	if _, ok := m.panels["Stoklar"].(*placeholderPanel); !ok {
		t.Errorf("panel = %T, want placeholder", m.panels["Stoklar"])
	}
}

func TestQuickOpen(t *testing.T) {
	m := createTestModel(t)

	m, _ = update(m, keyRunes("/"))
	if !m.sidebar.Filtering() {
		t.Fatal("/ did not start the filter")
	}
	m, _ = update(m, keyRunes("kasa"))
	m, cmd := update(m, keyType(tea.KeyEnter))
	msg := emit(t, cmd)
	if msg != (ItemSelectedMsg{ID: "Kasa Raporu"}) {
		t.Fatalf("msg = %#v", msg)
	}
	if m.sidebar.Filtering() {
		t.Error("filter still active after enter")
	}
}

func TestKeyboardTabCycling(t *testing.T) {
	m := createTestModel(t)
	m = openTabs(m, "Stok Listesi", "Hareketler", "Hızlı Satış")

	tests := []struct {
		key  tea.KeyType
		want string
	}{
		{tea.KeyTab, "Stok Listesi"},
		{tea.KeyTab, "Hareketler"},
		{tea.KeyShiftTab, "Stok Listesi"},
		{tea.KeyShiftTab, "Hızlı Satış"},
	}
	for _, tt := range tests {
		m, _ = update(m, keyType(tt.key))
		if id, _ := m.session.Active(); id != tt.want {
			t.Errorf("after %v active = %q, want %q", tt.key, id, tt.want)
		}
	}
}

func TestCtrlWClosesActiveTab(t *testing.T) {
	m := createTestModel(t)
	m = openTabs(m, "Stok Listesi", "Hareketler", "Hızlı Satış")
	m, _ = update(m, TabSelectedMsg{ID: "Stok Listesi"})

	m, _ = update(m, keyType(tea.KeyCtrlW))

	assertSession(t, m, []string{"Hareketler", "Hızlı Satış"}, "Hızlı Satış")
}

func TestCapturingPanelSwallowsQuit(t *testing.T) {
	m := createTestModel(t)
	m = openTabs(m, "Stok Listesi")

	m, _ = update(m, keyRunes("/"))
	p := m.panels["Stok Listesi"].(*stockListPanel)
	if !p.Capturing() {
		t.Fatal("/ did not focus the stock filter")
	}

	m, cmd := update(m, keyRunes("q"))
	if cmd != nil {
		if _, quit := cmd().(tea.QuitMsg); quit {
			t.Fatal("q quit while typing in the filter")
		}
	}
	if p.filter.Value() != "q" {
		t.Errorf("filter = %q, want q", p.filter.Value())
	}

	m, _ = update(m, keyType(tea.KeyEsc))
	_, cmd = update(m, keyRunes("q"))
	if _, quit := emit(t, cmd).(tea.QuitMsg); !quit {
		t.Error("q did not quit once the filter was closed")
	}
}

func TestEscFocusesSidebar(t *testing.T) {
	m := createTestModel(t)
	m = openTabs(m, "Hareketler")

	m, _ = update(m, keyType(tea.KeyEsc))
	if m.focus != FocusSidebar {
		t.Errorf("focus = %v, want sidebar", m.focus)
	}
}

func TestThemeToggle(t *testing.T) {
	m := createTestModel(t)
	m = openTabs(m, "Stok Listesi")

	m, _ = update(m, keyType(tea.KeyCtrlT))
	if m.theme != config.ThemeLight {
		t.Errorf("theme = %q, want light", m.theme)
	}
	if m.styles.Palette != LightPalette {
		t.Error("styles not rebuilt for the light theme")
	}
	if p := m.panels["Stok Listesi"].(*stockListPanel); p.st.Palette != LightPalette {
		t.Error("open panel kept the dark palette")
	}
}

func TestHelpOverlay(t *testing.T) {
	m := createTestModel(t)

	m, _ = update(m, keyRunes("?"))
	if m.viewMode != ViewModeHelp {
		t.Fatalf("viewMode = %v, want help", m.viewMode)
	}
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Error("help view missing title")
	}

	m, _ = update(m, keyType(tea.KeyEsc))
	if m.viewMode != ViewModeMain {
		t.Errorf("viewMode = %v, want main", m.viewMode)
	}
}

func TestMenuReloaded(t *testing.T) {
	m := createTestModel(t)
	m = openTabs(m, "Kasa Raporu")

	m, _ = update(m, MenuReloadedMsg{Err: errors.New("boom")})
	if !m.statusErr || !strings.Contains(m.status, "boom") {
		t.Errorf("status = %q (err=%v)", m.status, m.statusErr)
	}
	if len(m.sidebar.tree.Items) != 3 {
		t.Error("failed reload replaced the tree")
	}

	tree, err := menu.Parse([]byte("items:\n  - name: Yeni\n"))
	if err != nil {
		t.Fatal(err)
	}
	m, _ = update(m, MenuReloadedMsg{Tree: tree})
	if m.statusErr {
		t.Errorf("status still an error: %q", m.status)
	}
	if len(m.sidebar.tree.Items) != 1 {
		t.Errorf("tree items = %d, want 1", len(m.sidebar.tree.Items))
	}
	// Tabs outlive the menu entries that opened them
	assertSession(t, m, []string{"Kasa Raporu"}, "Kasa Raporu")
}

func TestViewEmptyState(t *testing.T) {
	m := createTestModel(t)
	view := m.View()
	if !strings.Contains(view, emptyStateText) {
		t.Error("empty session should show the empty-state message")
	}
	if !strings.Contains(view, "STOKDESK") {
		t.Error("header missing")
	}
}

func TestViewShowsActivePanel(t *testing.T) {
	m := createTestModel(t)
	m = openTabs(m, "Kasa Raporu")

	view := m.View()
	if !strings.Contains(view, placeholderText("Kasa Raporu")) {
		t.Error("active placeholder panel not rendered")
	}
	if strings.Contains(view, emptyStateText) {
		t.Error("empty state shown with an open tab")
	}
}

func TestViewNotReady(t *testing.T) {
	m := NewRootModel(nil, testTree(t), nil)
	if got := m.View(); got != "Loading..." {
		t.Errorf("View() = %q, want Loading...", got)
	}
}

func TestDebugRecordsTransitions(t *testing.T) {
	m := createTestModel(t)
	m, _ = update(m, keyType(tea.KeyCtrlD))
	if !m.debug.Visible() {
		t.Fatal("ctrl+d did not show the debug panel")
	}

	m = openTabs(m, "Stok Listesi", "Stok Listesi")
	m, _ = update(m, TabCloseRequestedMsg{ID: "Stok Listesi"})

	lines := m.debug.Lines()
	if len(lines) != 3 {
		t.Fatalf("lines = %v, want 3 entries", lines)
	}
	wantOps := []session.Op{session.OpOpen, session.OpActivate, session.OpClose}
	for i, op := range wantOps {
		if !strings.Contains(lines[i], "["+string(op)+"] Stok Listesi") {
			t.Errorf("line %d = %q, want op %s", i, lines[i], op)
		}
	}
	if !strings.Contains(m.View(), "DEBUG") {
		t.Error("debug panel not rendered")
	}
}
