package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stokdesk/tui-go/internal/model"
)

// Panel is the content bound to one open tab. Panels are created when the
// tab first opens and dropped when it closes.
type Panel interface {
	Update(msg tea.KeyMsg, keys KeyMap) tea.Cmd
	View(focused bool) string
	SetSize(width, height int)
	SetStyles(st Styles)
	// Capturing reports whether the panel is taking text input, in which
	// case the shell hands it every key.
	Capturing() bool
}

type panelEnv struct {
	id      string
	vatRate float64
	styles  Styles
}

type panelFactory func(env panelEnv) Panel

// panelRegistry maps tab ids to their panels. Anything else gets a
// placeholder.
var panelRegistry = map[string]panelFactory{
	"Stok Listesi":       newStockListPanel,
	"Hareketler":         newMovementsPanel,
	"Stok Hareketleri":   newMovementsPanel,
	"Birimler":           newUnitsPanel,
	"Stok Formu":         newStockFormPanel,
	"Şubeler":            newBranchPanel,
	"Hizmet - Masraflar": newServicesPanel,
	"Bundle/Set Stoklar": newBundlePanel,
	"Özellikler":         newPropertiesPanel,
}

func newPanel(env panelEnv) Panel {
	if f, ok := panelRegistry[env.id]; ok {
		return f(env)
	}
	return newPlaceholderPanel(env)
}

// gridPanel is the shared shape of every table-backed panel: a title
// line, optional extra lines, and a bubbles table filling the rest.
type gridPanel struct {
	title  string
	table  table.Model
	st     Styles
	width  int
	height int
	// lines taken by the panel around the table
	chrome int
}

func newGrid(title string, cols []table.Column, st Styles, chrome int) gridPanel {
	t := table.New(
		table.WithColumns(cols),
		table.WithFocused(true),
		table.WithHeight(5),
	)
	t.SetStyles(st.TableStyles())
	return gridPanel{title: title, table: t, st: st, chrome: chrome}
}

func (g *gridPanel) SetSize(width, height int) {
	g.width, g.height = width, height
	g.table.SetWidth(width)
	g.table.SetHeight(max(height-g.chrome, 3))
}

func (g *gridPanel) SetStyles(st Styles) {
	g.st = st
	g.table.SetStyles(st.TableStyles())
}

func (g *gridPanel) Capturing() bool { return false }

func (g *gridPanel) setRows(rows []table.Row) {
	g.table.SetRows(rows)
	if len(rows) > 0 {
		g.table.SetCursor(min(g.table.Cursor(), len(rows)-1))
	}
}

// update is only reached while the panel has focus.
func (g *gridPanel) update(msg tea.KeyMsg) tea.Cmd {
	g.table.Focus()
	var cmd tea.Cmd
	g.table, cmd = g.table.Update(msg)
	return cmd
}

func (g *gridPanel) heading(extra string) string {
	h := g.st.PanelTitle.Render(g.title)
	if extra != "" {
		h += g.st.Muted.Render("  " + extra)
	}
	return h
}

func (g *gridPanel) tableView(focused bool) string {
	if focused {
		g.table.Focus()
	} else {
		g.table.Blur()
	}
	return g.table.View()
}

func pct(rate float64) string {
	return "%" + model.FormatQty(rate)
}

// ---- Stok Listesi ----

type stockListPanel struct {
	gridPanel
	cards     []model.StockCard
	shown     []model.StockCard
	filter    textinput.Model
	filtering bool
}

func newStockListPanel(env panelEnv) Panel {
	cols := []table.Column{
		{Title: "Kod", Width: 8},
		{Title: "Stok Adı", Width: 16},
		{Title: "Kategori", Width: 10},
		{Title: "Birim", Width: 6},
		{Title: "Miktar", Width: 8},
		{Title: "Satış", Width: 11},
		{Title: "Alış", Width: 11},
		{Title: "KDV", Width: 4},
	}
	ti := textinput.New()
	ti.Prompt = "Filtre: "
	ti.Placeholder = "kod, ad veya kategori"
	ti.CharLimit = 32

	p := &stockListPanel{
		// title, filter, footer
		gridPanel: newGrid(env.id, cols, env.styles, 3),
		cards:     model.SampleStock(),
		filter:    ti,
	}
	p.apply()
	return p
}

func (p *stockListPanel) apply() {
	p.shown = model.FilterStock(p.cards, p.filter.Value())
	rows := make([]table.Row, len(p.shown))
	for i, c := range p.shown {
		rows[i] = table.Row{
			c.Code, c.Name, c.Category, c.Unit,
			model.FormatQty(c.Quantity),
			model.FormatMoney(c.SalePrice),
			model.FormatMoney(c.PurchasePrice),
			pct(c.VATRate),
		}
	}
	p.setRows(rows)
}

func (p *stockListPanel) Capturing() bool { return p.filtering }

func (p *stockListPanel) Update(msg tea.KeyMsg, keys KeyMap) tea.Cmd {
	if p.filtering {
		switch msg.Type {
		case tea.KeyEsc, tea.KeyEnter:
			p.filtering = false
			p.filter.Blur()
			return nil
		}
		var cmd tea.Cmd
		p.filter, cmd = p.filter.Update(msg)
		p.apply()
		return cmd
	}
	if key.Matches(msg, keys.Filter) {
		p.filtering = true
		return p.filter.Focus()
	}
	return p.update(msg)
}

func (p *stockListPanel) View(focused bool) string {
	count := fmt.Sprintf("%d/%d", len(p.shown), len(p.cards))
	footer := p.st.Muted.Render("kayıt yok")
	if i := p.table.Cursor(); i >= 0 && i < len(p.shown) {
		c := p.shown[i]
		footer = p.st.Muted.Render(fmt.Sprintf("%s · satış KDV hariç %s · alış KDV hariç %s",
			c.Code,
			model.FormatMoney(model.ExcludeVAT(c.SalePrice, c.VATRate)),
			model.FormatMoney(model.ExcludeVAT(c.PurchasePrice, c.VATRate))))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		p.heading(count),
		p.filter.View(),
		p.tableView(focused && !p.filtering),
		footer,
	)
}

// ---- Hareketler ----

type movementsPanel struct {
	gridPanel
	all     []model.Movement
	shown   []model.Movement
	docType int // index into model.DocumentTypes, -1 for all
}

func newMovementsPanel(env panelEnv) Panel {
	cols := []table.Column{
		{Title: "Tarih", Width: 10},
		{Title: "Belge No", Width: 13},
		{Title: "Belge Türü", Width: 16},
		{Title: "Depo", Width: 10},
		{Title: "Stok", Width: 12},
		{Title: "Miktar", Width: 7},
		{Title: "B.Fiyat", Width: 10},
		{Title: "Tutar", Width: 11},
		{Title: "KDV'li", Width: 11},
		{Title: "Durum", Width: 10},
	}
	p := &movementsPanel{
		// title, totals
		gridPanel: newGrid(env.id, cols, env.styles, 2),
		all:       model.SampleMovements(),
		docType:   -1,
	}
	p.apply()
	return p
}

// DocType is the active document type filter, "" for all.
func (p *movementsPanel) DocType() string {
	if p.docType < 0 {
		return ""
	}
	return model.DocumentTypes[p.docType]
}

func (p *movementsPanel) apply() {
	p.shown = model.FilterMovements(p.all, p.DocType())
	rows := make([]table.Row, len(p.shown))
	for i, m := range p.shown {
		rows[i] = table.Row{
			m.Date.Format("02.01.2006"),
			m.DocumentNo,
			m.DocumentType,
			m.Warehouse,
			m.StockName,
			model.FormatQty(m.Quantity),
			model.FormatMoney(m.UnitPrice),
			model.FormatMoney(m.Total()),
			model.FormatMoney(m.TotalWithVAT()),
			m.Status,
		}
	}
	p.setRows(rows)
}

func (p *movementsPanel) Update(msg tea.KeyMsg, keys KeyMap) tea.Cmd {
	if key.Matches(msg, keys.Cycle) {
		// -1 (all), 0 .. len-1, then back to all
		p.docType++
		if p.docType >= len(model.DocumentTypes) {
			p.docType = -1
		}
		p.apply()
		return nil
	}
	return p.update(msg)
}

func (p *movementsPanel) View(focused bool) string {
	filter := "Tümü"
	if dt := p.DocType(); dt != "" {
		filter = dt
	}
	var total, withVAT float64
	for _, m := range p.shown {
		total += m.Total()
		withVAT += m.TotalWithVAT()
	}
	totals := p.st.Muted.Render(fmt.Sprintf("%d satır · toplam %s · KDV'li %s",
		len(p.shown), model.FormatMoney(total), model.FormatMoney(withVAT)))
	return lipgloss.JoinVertical(lipgloss.Left,
		p.heading("Belge türü: "+filter+" (f)"),
		p.tableView(focused),
		totals,
	)
}

// ---- Birimler ----

type unitsPanel struct {
	gridPanel
	units   []model.StockUnit
	vatRate float64
}

func newUnitsPanel(env panelEnv) Panel {
	return newUnits(env)
}

func newUnits(env panelEnv) *unitsPanel {
	cols := []table.Column{
		{Title: "Grup", Width: 12},
		{Title: "Birim", Width: 6},
		{Title: "Oran", Width: 5},
		{Title: "Fiyat Tipi", Width: 18},
		{Title: "Satış KDV'li", Width: 12},
		{Title: "Satış KDV'siz", Width: 13},
		{Title: "Alış KDV'li", Width: 11},
		{Title: "Alış KDV'siz", Width: 12},
		{Title: "Barkod", Width: 13},
	}
	p := &unitsPanel{
		// title, price indicators
		gridPanel: newGrid(env.id, cols, env.styles, 2),
		units:     model.SampleUnits(),
		vatRate:   env.vatRate,
	}
	rows := make([]table.Row, len(p.units))
	for i, u := range p.units {
		rows[i] = table.Row{
			u.Group,
			u.Unit,
			model.FormatMoney(u.Ratio),
			u.PriceType.Label(),
			model.FormatMoney(u.SaleIncl),
			model.FormatMoney(u.SaleExcl(p.vatRate)),
			model.FormatMoney(u.PurchaseIncl),
			model.FormatMoney(u.PurchaseExcl(p.vatRate)),
			u.Barcode,
		}
	}
	p.setRows(rows)
	return p
}

func (p *unitsPanel) Update(msg tea.KeyMsg, _ KeyMap) tea.Cmd {
	return p.update(msg)
}

// indicators renders "↓ purchase • %rate = incl  ↑ sale • %rate = incl"
// for the selected unit.
func (p *unitsPanel) indicators() string {
	i := p.table.Cursor()
	if i < 0 || i >= len(p.units) {
		return ""
	}
	u := p.units[i]
	down := fmt.Sprintf("↓ %s • %s KDV = %s",
		model.FormatMoney(u.PurchaseExcl(p.vatRate)), pct(p.vatRate), model.FormatMoney(u.PurchaseIncl))
	up := fmt.Sprintf("↑ %s • %s KDV = %s",
		model.FormatMoney(u.SaleExcl(p.vatRate)), pct(p.vatRate), model.FormatMoney(u.SaleIncl))
	return p.st.PriceDown.Render(down) + " " + p.st.PriceUp.Render(up)
}

func (p *unitsPanel) View(focused bool) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		p.heading(fmt.Sprintf("%d birim · KDV %s", len(p.units), pct(p.vatRate))),
		p.tableView(focused),
		p.indicators(),
	)
}

// ---- Şubeler ----

type branchPanel struct {
	gridPanel
	base   model.StockCard
	prices []model.BranchPrice
}

func newBranchPanel(env panelEnv) Panel {
	return newBranches(env)
}

func newBranches(env panelEnv) *branchPanel {
	cols := []table.Column{
		{Title: "Şube", Width: 14},
		{Title: "Fiyat Tipi", Width: 18},
		{Title: "Değer", Width: 8},
		{Title: "Satış Fiyatı", Width: 12},
		{Title: "KDV'siz", Width: 10},
	}
	p := &branchPanel{
		// title, base price line
		gridPanel: newGrid(env.id, cols, env.styles, 2),
		base:      model.SampleStock()[0],
		prices:    model.SampleBranchPrices(),
	}
	rows := make([]table.Row, len(p.prices))
	for i, bp := range p.prices {
		price := bp.Price(p.base.SalePrice, p.base.PurchasePrice)
		rows[i] = table.Row{
			bp.Branch,
			bp.PriceType.Label(),
			model.FormatMoney(bp.Value),
			model.FormatMoney(price),
			model.FormatMoney(model.ExcludeVAT(price, p.base.VATRate)),
		}
	}
	p.setRows(rows)
	return p
}

func (p *branchPanel) Update(msg tea.KeyMsg, _ KeyMap) tea.Cmd {
	return p.update(msg)
}

func (p *branchPanel) View(focused bool) string {
	base := fmt.Sprintf("%s %s · satış %s · alış %s",
		p.base.Code, p.base.Name,
		model.FormatMoney(p.base.SalePrice), model.FormatMoney(p.base.PurchasePrice))
	return lipgloss.JoinVertical(lipgloss.Left,
		p.heading(""),
		p.st.Muted.Render(base),
		p.tableView(focused),
	)
}

// ---- Stok Formu ----

// stockFormPanel groups the property, manufacturer, unit and branch grids
// of one stock card behind section switches.
type stockFormPanel struct {
	title    string
	st       Styles
	sections []string
	panes    []Panel
	current  int
}

func newStockFormPanel(env panelEnv) Panel {
	section := func(id string) panelEnv {
		e := env
		e.id = id
		return e
	}
	p := &stockFormPanel{title: env.id, st: env.styles}
	for _, sec := range []struct {
		id    string
		build func(panelEnv) Panel
	}{
		{"Özellikler", newPropertiesPanel},
		{"Üreticiler", newManufacturersPanel},
		{"Birimler", newUnitsPanel},
		{"Şube Fiyatları", newBranchPanel},
	} {
		p.sections = append(p.sections, sec.id)
		p.panes = append(p.panes, sec.build(section(sec.id)))
	}
	return p
}

func (p *stockFormPanel) Capturing() bool { return p.panes[p.current].Capturing() }

func (p *stockFormPanel) SetSize(width, height int) {
	// title and section bar
	for _, pane := range p.panes {
		pane.SetSize(width, height-2)
	}
}

func (p *stockFormPanel) SetStyles(st Styles) {
	p.st = st
	for _, pane := range p.panes {
		pane.SetStyles(st)
	}
}

func (p *stockFormPanel) Update(msg tea.KeyMsg, keys KeyMap) tea.Cmd {
	switch {
	case key.Matches(msg, keys.NextSection):
		p.current = (p.current + 1) % len(p.panes)
		return nil
	case key.Matches(msg, keys.PrevSection):
		p.current = (p.current + len(p.panes) - 1) % len(p.panes)
		return nil
	}
	return p.panes[p.current].Update(msg, keys)
}

func (p *stockFormPanel) View(focused bool) string {
	labels := make([]string, len(p.sections))
	for i, s := range p.sections {
		if i == p.current {
			labels[i] = p.st.TabActive.Render(s)
			continue
		}
		labels[i] = p.st.Tab.Render(s)
	}
	bar := strings.Join(labels, p.st.TabSep.Render(" │ ")) + p.st.Muted.Render("  [ ]")
	return lipgloss.JoinVertical(lipgloss.Left,
		p.st.PanelTitle.Render(p.title),
		bar,
		p.panes[p.current].View(focused),
	)
}

// ---- Özellikler ----

type propertiesPanel struct {
	gridPanel
	chosen []model.StockProperty
	note   string
}

func newPropertiesPanel(env panelEnv) Panel {
	cols := []table.Column{
		{Title: "Özellik", Width: 12},
		{Title: "Değerler", Width: 24},
		{Title: "Seçenekler", Width: 32},
	}
	p := &propertiesPanel{
		// title, empty or note line
		gridPanel: newGrid(env.id, cols, env.styles, 2),
		chosen:    model.SampleProperties(),
	}
	p.apply()
	return p
}

func (p *propertiesPanel) apply() {
	rows := make([]table.Row, len(p.chosen))
	for i, c := range p.chosen {
		values := "Değer seçin..."
		if len(c.Values) > 0 {
			values = strings.Join(c.Values, ", ")
		}
		var options string
		for _, d := range model.PropertyDefs {
			if d.ID == c.PropertyID {
				options = strings.Join(d.Values, ", ")
			}
		}
		rows[i] = table.Row{c.Name, values, options}
	}
	p.setRows(rows)
}

func (p *propertiesPanel) Update(msg tea.KeyMsg, keys KeyMap) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Add):
		def, ok := model.NextProperty(model.PropertyDefs, p.chosen)
		if !ok {
			p.note = "tüm özellikler eklendi"
			return nil
		}
		p.chosen = append(p.chosen, model.StockProperty{PropertyID: def.ID, Name: def.Name})
		p.note = ""
		p.apply()
		p.table.SetCursor(len(p.chosen) - 1)
		return nil
	case key.Matches(msg, keys.Remove):
		i := p.table.Cursor()
		if i < 0 || i >= len(p.chosen) {
			return nil
		}
		p.chosen = append(p.chosen[:i], p.chosen[i+1:]...)
		p.note = ""
		p.apply()
		return nil
	}
	return p.update(msg)
}

func (p *propertiesPanel) View(focused bool) string {
	note := p.st.Muted.Render(p.note)
	if len(p.chosen) == 0 {
		note = p.st.Empty.Render("Henüz özellik eklenmemiş")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		p.heading(fmt.Sprintf("%d/%d özellik · a ekle · x sil", len(p.chosen), len(model.PropertyDefs))),
		p.tableView(focused),
		note,
	)
}

// ---- Üreticiler ----

type manufacturersPanel struct {
	gridPanel
	items []model.Manufacturer
}

func newManufacturersPanel(env panelEnv) Panel {
	cols := []table.Column{
		{Title: "#", Width: 10},
		{Title: "Cari", Width: 14},
		{Title: "Stok Adı", Width: 14},
		{Title: "Kod", Width: 10},
		{Title: "Barkod", Width: 13},
		{Title: "Marka", Width: 10},
	}
	p := &manufacturersPanel{
		// title, empty line
		gridPanel: newGrid(env.id, cols, env.styles, 2),
		items:     model.SampleManufacturers(),
	}
	p.apply()
	return p
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func (p *manufacturersPanel) apply() {
	rows := make([]table.Row, len(p.items))
	for i, m := range p.items {
		rows[i] = table.Row{
			fmt.Sprintf("Üretici %d", i+1),
			orDash(m.Customer),
			orDash(m.StockName),
			orDash(m.Code),
			orDash(m.Barcode),
			orDash(m.Brand),
		}
	}
	p.setRows(rows)
}

func (p *manufacturersPanel) Update(msg tea.KeyMsg, keys KeyMap) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Add):
		p.items = append(p.items, model.Manufacturer{})
		p.apply()
		p.table.SetCursor(len(p.items) - 1)
		return nil
	case key.Matches(msg, keys.Remove):
		i := p.table.Cursor()
		if i < 0 || i >= len(p.items) {
			return nil
		}
		p.items = append(p.items[:i], p.items[i+1:]...)
		p.apply()
		return nil
	}
	return p.update(msg)
}

func (p *manufacturersPanel) View(focused bool) string {
	var empty string
	if len(p.items) == 0 {
		empty = p.st.Empty.Render("Henüz üretici eklenmemiş")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		p.heading(fmt.Sprintf("%d üretici · a ekle · x sil", len(p.items))),
		p.tableView(focused),
		empty,
	)
}

// ---- Bundle/Set Stoklar ----

type bundlePanel struct {
	gridPanel
	cards   []model.StockCard
	bundles []model.Bundle
}

func newBundlePanel(env panelEnv) Panel {
	cols := []table.Column{
		{Title: "Kod", Width: 8},
		{Title: "Barkod", Width: 13},
		{Title: "Stok Adı", Width: 16},
		{Title: "Birim", Width: 6},
		{Title: "Satış", Width: 10},
		{Title: "Parça Top.", Width: 10},
		{Title: "Fark", Width: 8},
		{Title: "Kalan", Width: 6},
		{Title: "Döviz", Width: 5},
	}
	p := &bundlePanel{
		// title, parts line
		gridPanel: newGrid(env.id, cols, env.styles, 2),
		cards:     model.SampleStock(),
		bundles:   model.SampleBundles(),
	}
	rows := make([]table.Row, len(p.bundles))
	for i, b := range p.bundles {
		rows[i] = table.Row{
			b.Code,
			b.Barcode,
			b.Name,
			b.Unit,
			model.FormatMoney(b.SalePrice),
			model.FormatMoney(b.PartsTotal(p.cards)),
			model.FormatMoney(b.Saving(p.cards)),
			model.FormatQty(b.Remaining),
			b.Currency,
		}
	}
	p.setRows(rows)
	return p
}

func (p *bundlePanel) Update(msg tea.KeyMsg, _ KeyMap) tea.Cmd {
	return p.update(msg)
}

// parts renders the selected set's components as "code name × qty".
func (p *bundlePanel) parts() string {
	i := p.table.Cursor()
	if i < 0 || i >= len(p.bundles) {
		return ""
	}
	names := make(map[string]string, len(p.cards))
	for _, c := range p.cards {
		names[c.Code] = c.Name
	}
	b := p.bundles[i]
	lines := make([]string, len(b.Parts))
	for j, part := range b.Parts {
		lines[j] = fmt.Sprintf("%s %s × %s", part.StockCode, names[part.StockCode], model.FormatQty(part.Quantity))
	}
	return fmt.Sprintf("%s: %s (%s parça)", b.Code, strings.Join(lines, " · "), model.FormatQty(b.PartCount()))
}

func (p *bundlePanel) View(focused bool) string {
	var remaining float64
	for _, b := range p.bundles {
		remaining += b.Remaining
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		p.heading(fmt.Sprintf("%d set · kalan toplam %s", len(p.bundles), model.FormatQty(remaining))),
		p.tableView(focused),
		p.st.Muted.Render(p.parts()),
	)
}

// ---- Hizmet - Masraflar ----

type servicesPanel struct {
	gridPanel
	services []model.ServiceCost
}

func newServicesPanel(env panelEnv) Panel {
	cols := []table.Column{
		{Title: "Kod", Width: 8},
		{Title: "Adı", Width: 18},
		{Title: "Tür", Width: 7},
		{Title: "Birim", Width: 6},
		{Title: "Fiyat", Width: 11},
		{Title: "KDV", Width: 4},
		{Title: "KDV'li", Width: 11},
	}
	p := &servicesPanel{
		// title
		gridPanel: newGrid(env.id, cols, env.styles, 1),
		services:  model.SampleServices(),
	}
	rows := make([]table.Row, len(p.services))
	for i, s := range p.services {
		rows[i] = table.Row{
			s.Code, s.Name, s.Kind, s.Unit,
			model.FormatMoney(s.Price),
			pct(s.VATRate),
			model.FormatMoney(model.IncludeVAT(s.Price, s.VATRate)),
		}
	}
	p.setRows(rows)
	return p
}

func (p *servicesPanel) Update(msg tea.KeyMsg, _ KeyMap) tea.Cmd {
	return p.update(msg)
}

func (p *servicesPanel) View(focused bool) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		p.heading(fmt.Sprintf("%d kart", len(p.services))),
		p.tableView(focused),
	)
}

// ---- placeholder ----

type placeholderPanel struct {
	id     string
	st     Styles
	width  int
	height int
}

func newPlaceholderPanel(env panelEnv) Panel {
	return &placeholderPanel{id: env.id, st: env.styles}
}

func (p *placeholderPanel) Update(tea.KeyMsg, KeyMap) tea.Cmd { return nil }

func (p *placeholderPanel) SetSize(width, height int) { p.width, p.height = width, height }

func (p *placeholderPanel) SetStyles(st Styles) { p.st = st }

func (p *placeholderPanel) Capturing() bool { return false }

func (p *placeholderPanel) View(bool) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		p.st.PanelTitle.Render(p.id),
		"",
		p.st.Muted.Render(placeholderText(p.id)),
	)
}

func placeholderText(id string) string {
	return "Content for " + id + " goes here."
}
