package layers

const (
	ModalWidthNumerator = 3
	ModalWidthDivisor   = 4 // 3/4 of screen width

	ModalHeightNumerator = 3
	ModalHeightDivisor   = 4 // 3/4 of screen height
	ModalMinHeight       = 10

	FormMinWidth = 40
	FormMaxWidth = 80

	DetailMinWidth = 40
	DetailMaxWidth = 100

	HelpWidth = 50
)
