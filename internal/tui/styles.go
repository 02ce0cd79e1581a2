package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/stokdesk/tui-go/internal/config"
)

// Palette is the set of colours a theme draws with.
type Palette struct {
	// Background colors
	BgPrimary   lipgloss.Color
	BgSecondary lipgloss.Color
	BgHighlight lipgloss.Color

	// Foreground colors
	FgPrimary   lipgloss.Color
	FgSecondary lipgloss.Color
	FgMuted     lipgloss.Color

	// Accents
	Red     lipgloss.Color
	Green   lipgloss.Color
	Yellow  lipgloss.Color
	Blue    lipgloss.Color
	Magenta lipgloss.Color
	Cyan    lipgloss.Color

	// UI colors
	Border lipgloss.Color
	Brand  lipgloss.Color
}

// One Dark Pro color palette
var DarkPalette = Palette{
	BgPrimary:   "#282C34",
	BgSecondary: "#21252B",
	BgHighlight: "#2C313C",
	FgPrimary:   "#ABB2BF",
	FgSecondary: "#828997",
	FgMuted:     "#636B78",
	Red:         "#E06C75",
	Green:       "#98C379",
	Yellow:      "#E5C07B",
	Blue:        "#61AFEF",
	Magenta:     "#C678DD",
	Cyan:        "#56B6C2",
	Border:      "#3F4451",
	Brand:       "#61AFEF",
}

// Navy-on-slate palette for light terminals
var LightPalette = Palette{
	BgPrimary:   "#F1F6F9",
	BgSecondary: "#FFFFFF",
	BgHighlight: "#DCE6F0",
	FgPrimary:   "#0A2647",
	FgSecondary: "#205295",
	FgMuted:     "#6B7A8F",
	Red:         "#C0392B",
	Green:       "#2E8B57",
	Yellow:      "#B7791F",
	Blue:        "#144272",
	Magenta:     "#7B2D8E",
	Cyan:        "#1F7A8C",
	Border:      "#B8C4D2",
	Brand:       "#0A2647",
}

// Styles holds every style the shell renders with, derived from a palette.
type Styles struct {
	Palette Palette

	// Header
	Header     lipgloss.Style
	Brand      lipgloss.Style
	RateUp     lipgloss.Style
	RateDown   lipgloss.Style
	HeaderMeta lipgloss.Style

	// Sidebar
	Sidebar         lipgloss.Style
	SidebarFocused  lipgloss.Style
	SidebarTitle    lipgloss.Style
	SidebarGroup    lipgloss.Style
	SidebarItem     lipgloss.Style
	SidebarCursor   lipgloss.Style
	SidebarOpenMark lipgloss.Style

	// Tab strip
	Tab       lipgloss.Style
	TabActive lipgloss.Style
	TabClose  lipgloss.Style
	TabSep    lipgloss.Style

	// Content
	Content        lipgloss.Style
	ContentFocused lipgloss.Style
	PanelTitle     lipgloss.Style
	Empty          lipgloss.Style

	// Status bar
	StatusBar lipgloss.Style
	StatusKey lipgloss.Style

	// Help overlay
	Help      lipgloss.Style
	HelpTitle lipgloss.Style

	Muted   lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style

	// Price indicators
	PriceUp   lipgloss.Style
	PriceDown lipgloss.Style
}

// NewStyles builds the styles for a theme.
func NewStyles(theme config.Theme) Styles {
	p := DarkPalette
	if theme == config.ThemeLight {
		p = LightPalette
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)

	return Styles{
		Palette: p,

		Header: lipgloss.NewStyle().
			Foreground(p.FgPrimary).
			PaddingLeft(1),
		Brand: lipgloss.NewStyle().
			Foreground(p.Brand).
			Bold(true),
		RateUp:     lipgloss.NewStyle().Foreground(p.Green),
		RateDown:   lipgloss.NewStyle().Foreground(p.Red),
		HeaderMeta: lipgloss.NewStyle().Foreground(p.FgSecondary),

		Sidebar:        box,
		SidebarFocused: box.BorderForeground(p.Blue),
		SidebarTitle: lipgloss.NewStyle().
			Foreground(p.Magenta).
			Bold(true),
		SidebarGroup: lipgloss.NewStyle().Foreground(p.FgPrimary).Bold(true),
		SidebarItem:  lipgloss.NewStyle().Foreground(p.FgSecondary),
		SidebarCursor: lipgloss.NewStyle().
			Background(p.BgHighlight).
			Foreground(p.FgPrimary).
			Bold(true),
		SidebarOpenMark: lipgloss.NewStyle().Foreground(p.Green),

		Tab: lipgloss.NewStyle().Foreground(p.FgMuted),
		TabActive: lipgloss.NewStyle().
			Foreground(p.Blue).
			Bold(true).
			Underline(true),
		TabClose: lipgloss.NewStyle().Foreground(p.Red),
		TabSep:   lipgloss.NewStyle().Foreground(p.Border),

		Content:        box,
		ContentFocused: box.BorderForeground(p.Blue),
		PanelTitle: lipgloss.NewStyle().
			Foreground(p.Magenta).
			Bold(true),
		Empty: lipgloss.NewStyle().Foreground(p.FgMuted),

		StatusBar: lipgloss.NewStyle().
			Foreground(p.FgMuted).
			PaddingLeft(1).
			PaddingRight(1),
		StatusKey: lipgloss.NewStyle().Foreground(p.FgPrimary),

		Help: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(1, 2),
		HelpTitle: lipgloss.NewStyle().
			Foreground(p.Blue).
			Bold(true),

		Muted:   lipgloss.NewStyle().Foreground(p.FgMuted),
		Error:   lipgloss.NewStyle().Foreground(p.Red),
		Success: lipgloss.NewStyle().Foreground(p.Green),
		Warning: lipgloss.NewStyle().Foreground(p.Yellow),

		PriceUp: lipgloss.NewStyle().
			Foreground(p.BgSecondary).
			Background(p.Green).
			Padding(0, 1),
		PriceDown: lipgloss.NewStyle().
			Foreground(p.BgSecondary).
			Background(p.Red).
			Padding(0, 1),
	}
}

// TableStyles adapts the palette to the bubbles table.
func (s Styles) TableStyles() table.Styles {
	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(s.Palette.Border).
		BorderBottom(true).
		Foreground(s.Palette.FgPrimary).
		Bold(true)
	ts.Cell = ts.Cell.Foreground(s.Palette.FgSecondary)
	ts.Selected = ts.Selected.
		Foreground(s.Palette.FgPrimary).
		Background(s.Palette.BgHighlight).
		Bold(true)
	return ts
}

// HelpStyles adapts the palette to the bubbles help view.
func (s Styles) HelpStyles() help.Styles {
	hs := help.New().Styles
	hs.ShortKey = lipgloss.NewStyle().Foreground(s.Palette.Yellow)
	hs.ShortDesc = lipgloss.NewStyle().Foreground(s.Palette.FgMuted)
	hs.ShortSeparator = lipgloss.NewStyle().Foreground(s.Palette.Border)
	hs.FullKey = lipgloss.NewStyle().Foreground(s.Palette.Yellow)
	hs.FullDesc = lipgloss.NewStyle().Foreground(s.Palette.FgPrimary)
	hs.FullSeparator = lipgloss.NewStyle().Foreground(s.Palette.Border)
	return hs
}
