package config

// Theme selects the colour palette.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// AvailableThemes returns all selectable themes
func AvailableThemes() []ThemeInfo {
	return []ThemeInfo{
		{
			ID:          ThemeDark,
			Name:        "Dark",
			Description: "One Dark palette on a dark terminal",
		},
		{
			ID:          ThemeLight,
			Name:        "Light",
			Description: "Navy and slate on a light terminal",
		},
	}
}

// ThemeInfo describes a theme option
type ThemeInfo struct {
	ID          Theme
	Name        string
	Description string
}

// Valid reports whether t is a known theme
func (t Theme) Valid() bool {
	for _, info := range AvailableThemes() {
		if info.ID == t {
			return true
		}
	}
	return false
}

// Toggle returns the other theme
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}
