package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Tasks
	AddTask    string `yaml:"add_task"`
	EditTask   string `yaml:"edit_task"`
	DeleteTask string `yaml:"delete_task"`
	ToggleTask string `yaml:"toggle_task"`
	ViewTask   string `yaml:"view_task"`

	// Forms
	SaveForm string `yaml:"save_form"`

	// Navigation
	PrevTask   string `yaml:"prev_task"`
	NextTask   string `yaml:"next_task"`
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`

	// Other
	Search   string `yaml:"search"`
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Tasks
		AddTask:    "a",
		EditTask:   "e",
		DeleteTask: "d",
		ToggleTask: "x",
		ViewTask:   "space",
		SaveForm:   "ctrl+s",

		// Navigation
		PrevTask:   "k",
		NextTask:   "j",
		PrevColumn: "h",
		NextColumn: "l",

		// Other
		Search:   "/",
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(field *string, value string) {
		if *field == "" {
			*field = value
		}
	}

	fill(&k.AddTask, defaults.AddTask)
	fill(&k.EditTask, defaults.EditTask)
	fill(&k.DeleteTask, defaults.DeleteTask)
	fill(&k.ToggleTask, defaults.ToggleTask)
	fill(&k.ViewTask, defaults.ViewTask)
	fill(&k.SaveForm, defaults.SaveForm)
	fill(&k.PrevTask, defaults.PrevTask)
	fill(&k.NextTask, defaults.NextTask)
	fill(&k.PrevColumn, defaults.PrevColumn)
	fill(&k.NextColumn, defaults.NextColumn)
	fill(&k.Search, defaults.Search)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
