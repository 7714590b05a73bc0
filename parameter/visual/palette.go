package visual

// Dracula palette as hex triplets, see https://draculatheme.com/
const (
	HexBackground = "#282a36"
	HexSelection  = "#44475a"
	HexForeground = "#f8f8f2"
	HexComment    = "#6272a4"
	HexCyan       = "#8be9fd"
	HexGreen      = "#50fa7b"
	HexOrange     = "#ffb86c"
	HexPink       = "#ff79c6"
	HexPurple     = "#bd93f9"
	HexRed        = "#ff5555"
	HexYellow     = "#f1fa8c"
)

// Theme roles
const (
	HexGridBackground = HexSelection
	HexWall           = HexComment
	HexSnake          = HexForeground
	HexTitle          = HexPurple
	HexPaused         = HexOrange
	HexMuted          = HexRed
	HexDebug          = HexGreen
)

// HexFood is indexed by a food's variant
var HexFood = [...]string{
	HexCyan,
	HexGreen,
	HexOrange,
	HexPink,
	HexPurple,
	HexRed,
	HexYellow,
}
