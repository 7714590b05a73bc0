package render

// Cell is one terminal cell in the compositor
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
}

// emptyCell is the cleared state; zero rune renders as a space
var emptyCell = Cell{Rune: 0, Fg: RgbForeground, Bg: RgbBackground}
