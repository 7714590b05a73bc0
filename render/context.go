package render

import (
	"time"

	"github.com/lixenwraith/hebi/engine"
	"github.com/lixenwraith/hebi/parameter"
	"github.com/lixenwraith/hebi/parameter/visual"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	// Time state
	Now         time.Duration
	FrameNumber int64
	IsPaused    bool

	IsMuted bool
	Score   int64

	// Map dimensions (simulation bounds, grid cells)
	MapWidth  int
	MapHeight int

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int

	// Screen position of map cell (0,0), centred below the title bar
	MapOffsetX int
	MapOffsetY int
}

// NewRenderContext derives the frame context from the world and the terminal size
func NewRenderContext(world *engine.World, screenWidth, screenHeight int) RenderContext {
	cfg := world.Resources.Config
	timeRes := world.Resources.Time

	mapCols := cfg.Width * visual.CellWidth
	usableRows := screenHeight - parameter.TopMargin - parameter.BottomMargin

	offsetX := 0
	if mapCols < screenWidth {
		offsetX = (screenWidth - mapCols) / 2
	}
	offsetY := parameter.TopMargin
	if cfg.Height < usableRows {
		offsetY += (usableRows - cfg.Height) / 2
	}

	return RenderContext{
		Now:          timeRes.Now,
		FrameNumber:  timeRes.FrameNumber,
		Score:        world.Resources.Status.Ints.Get("snake.score").Load(),
		MapWidth:     cfg.Width,
		MapHeight:    cfg.Height,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
		MapOffsetX:   offsetX,
		MapOffsetY:   offsetY,
	}
}

// MapToScreen converts a grid cell to the screen column of its left half and its row
// Returns visible=false if any part of the cell falls outside the screen
func (rc *RenderContext) MapToScreen(mapX, mapY int) (int, int, bool) {
	if mapX < 0 || mapY < 0 || mapX >= rc.MapWidth || mapY >= rc.MapHeight {
		return 0, 0, false
	}
	sx := rc.MapOffsetX + mapX*visual.CellWidth
	sy := rc.MapOffsetY + mapY
	visible := sx >= 0 && sx+visual.CellWidth <= rc.ScreenWidth &&
		sy >= parameter.TopMargin && sy < rc.ScreenHeight-parameter.BottomMargin
	return sx, sy, visible
}
