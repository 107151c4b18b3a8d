package theme

import "github.com/thenoetrevino/tack/internal/config"

// Colors read at render time by components that build styles on the fly.
// Static styles are built once in components.InitStyles instead.
var (
	Subtle         string
	Normal         string
	Completed      string
	SelectedBorder string
	SelectedBg     string
	InfoFg         string
	InfoBg         string
	WarningFg      string
	WarningBg      string
	ErrorFg        string
	ErrorBg        string
)

// Init copies the render-time colors out of the color scheme
func Init(colors config.ColorScheme) {
	Subtle = colors.Subtle
	Normal = colors.Normal
	Completed = colors.Completed
	SelectedBorder = colors.SelectedBorder
	SelectedBg = colors.SelectedBg
	InfoFg, InfoBg = colors.InfoFg, colors.InfoBg
	WarningFg, WarningBg = colors.WarningFg, colors.WarningBg
	ErrorFg, ErrorBg = colors.ErrorFg, colors.ErrorBg
}
