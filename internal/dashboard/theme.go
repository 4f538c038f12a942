package dashboard

import "strings"

// Theme is the colour scheme a page is rendered with
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ThemeCookie stores the visitor's theme between requests
const ThemeCookie = "theme"

// Palette holds the colours of one theme
type Palette struct {
	Base                string
	Primary             string
	Background          string
	SecondaryBackground string
	Text                string
	Directions          []string
	Sentiments          []string
}

var palettes = map[Theme]Palette{
	ThemeLight: {
		Base:                "light",
		Primary:             "#4CAF50",
		Background:          "#FFFFFF",
		SecondaryBackground: "#F0F2F6",
		Text:                "#000000",
		Directions:          []string{"#1f77b4", "#ff7f0e"},
		Sentiments:          []string{"#4CAF50", "#FFC107", "#F44336", "#9E9E9E"},
	},
	ThemeDark: {
		Base:                "dark",
		Primary:             "#4CAF50",
		Background:          "#000000",
		SecondaryBackground: "#121212",
		Text:                "#FFFFFF",
		Directions:          []string{"#4FC3F7", "#FFD54F"},
		Sentiments:          []string{"#4CAF50", "#FFC107", "#F44336", "#9E9E9E"},
	},
}

// ParseTheme maps a user supplied value to a theme, or returns fallback
func ParseTheme(value string, fallback Theme) Theme {
	switch Theme(strings.ToLower(strings.TrimSpace(value))) {
	case ThemeLight:
		return ThemeLight
	case ThemeDark:
		return ThemeDark
	default:
		return fallback
	}
}

// Toggle returns the other theme
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Palette returns the colours of t; unknown themes render light
func (t Theme) Palette() Palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[ThemeLight]
}
