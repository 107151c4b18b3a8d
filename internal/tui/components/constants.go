package components

const (
	TaskCardHeight  = 6 // TaskCardHeight is the fixed height of a card including its border
	cardChrome      = 4 // left/right border + left/right padding
	cardGap         = 1 // horizontal space between cards
	titleLines      = 2 // title lines shown on a card before truncation
	descriptionLine = 1 // description preview lines on a card

	// Text shown when the grid has no cards
	EmptySearchText = "No tasks found"
	EmptyListText   = "No tasks yet. Press a to add one!"
)
