package models

// Theme is the application color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// DefaultTheme is used when no theme has been persisted yet.
const DefaultTheme = ThemeDark
