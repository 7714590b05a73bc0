package parameter

// Layout & Margins
const (
	// TopMargin holds the title bar
	TopMargin = 1

	// BottomMargin holds the status line
	BottomMargin = 1
)

// Status Bar
const (
	TitleText  = "Hebi"
	PausedText = " PAUSED "
	MutedText  = " MUTED "
	AudioStr   = "♫ "
)
