package colors

// PresetNames lists the built-in palettes a config may name in theme.preset
var PresetNames = []string{"default", "monochrome", "solarized"}

// Default is the teal palette used when no preset is configured
func Default() *ColorScheme {
	return &ColorScheme{
		Preset:    "default",
		Accent:    "#2AA198",
		Create:    "#87D787",
		Edit:      "#5FAFFF",
		Delete:    "#FF5F5F",
		Completed: "#6C8C6C",

		TaskBorder:     "#4E4E4E",
		TaskBackground: "#1C1C1C",
		SelectedBorder: "#2AA198",
		SelectedBg:     "#303030",

		Title:  "#5FD7D7",
		Subtle: "#6C6C6C",
		Normal: "#DADADA",

		InfoFg:    "#87D7FF",
		InfoBg:    "#00303A",
		WarningFg: "#FFD75F",
		WarningBg: "#4E3A00",
		ErrorFg:   "#FF8787",
		ErrorBg:   "#4E0000",
	}
}

// Monochrome only uses grays, for terminals with poor color support
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset:    "monochrome",
		Accent:    "#FFFFFF",
		Create:    "#FFFFFF",
		Edit:      "#FFFFFF",
		Delete:    "#FFFFFF",
		Completed: "#808080",

		TaskBorder:     "#808080",
		TaskBackground: "#000000",
		SelectedBorder: "#FFFFFF",
		SelectedBg:     "#303030",

		Title:  "#FFFFFF",
		Subtle: "#808080",
		Normal: "#C0C0C0",

		InfoFg:    "#FFFFFF",
		InfoBg:    "#303030",
		WarningFg: "#FFFFFF",
		WarningBg: "#505050",
		ErrorFg:   "#000000",
		ErrorBg:   "#C0C0C0",
	}
}

// Solarized follows the solarized dark palette
func Solarized() *ColorScheme {
	return &ColorScheme{
		Preset:    "solarized",
		Accent:    "#268BD2",
		Create:    "#859900",
		Edit:      "#268BD2",
		Delete:    "#DC322F",
		Completed: "#586E75",

		TaskBorder:     "#586E75",
		TaskBackground: "#002B36",
		SelectedBorder: "#B58900",
		SelectedBg:     "#073642",

		Title:  "#B58900",
		Subtle: "#657B83",
		Normal: "#93A1A1",

		InfoFg:    "#2AA198",
		InfoBg:    "#073642",
		WarningFg: "#CB4B16",
		WarningBg: "#073642",
		ErrorFg:   "#DC322F",
		ErrorBg:   "#073642",
	}
}
