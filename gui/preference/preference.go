// Package preference holds the fyne preference keys used across the app.
package preference

const (
	// ThemeDark stores whether the dark theme is active.
	ThemeDark = "theme_dark"

	// APIBaseURL overrides the embedded demo server as request target.
	APIBaseURL = "api_base_url"
)
