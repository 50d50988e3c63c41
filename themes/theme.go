package themes

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// demoTheme pins the variant so the toggle is independent of the OS setting.
type demoTheme struct {
	variant fyne.ThemeVariant
}

var _ fyne.Theme = (*demoTheme)(nil)

func (t *demoTheme) Color(n fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return theme.DefaultTheme().Color(n, t.variant)
}

func (t *demoTheme) Font(s fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(s)
}

func (t *demoTheme) Icon(n fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(n)
}

func (t *demoTheme) Size(n fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(n)
}

func DarkTheme() fyne.Theme {
	return &demoTheme{variant: theme.VariantDark}
}

func LightTheme() fyne.Theme {
	return &demoTheme{variant: theme.VariantLight}
}
