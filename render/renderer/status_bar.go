package renderer

import (
	"fmt"
	"sync/atomic"

	"github.com/lixenwraith/hebi/engine"
	"github.com/lixenwraith/hebi/parameter"
	"github.com/lixenwraith/hebi/render"
)

// TitleRenderer draws the title bar with the current score
type TitleRenderer struct{}

func NewTitleRenderer() *TitleRenderer {
	return &TitleRenderer{}
}

// Title formats the window title line
func Title(score int64) string {
	return fmt.Sprintf("%s — Score: %d", parameter.TitleText, score)
}

func (r *TitleRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.ScreenHeight <= 0 {
		return
	}
	for x := 0; x < ctx.ScreenWidth; x++ {
		buf.SetWithBg(x, 0, ' ', render.RgbTitle, render.RgbBackground)
	}
	title := Title(ctx.Score)
	x := (ctx.ScreenWidth - len([]rune(title))) / 2
	buf.SetText(max(x, 0), 0, title, render.RgbTitle, render.RgbBackground)
}

// StatusBarRenderer draws the status line at the bottom
type StatusBarRenderer struct {
	// Cached metric pointers (zero-lock reads)
	statTicks  *atomic.Int64
	statDeaths *atomic.Int64
}

// NewStatusBarRenderer creates a status bar renderer
func NewStatusBarRenderer(world *engine.World) *StatusBarRenderer {
	reg := world.Resources.Status
	return &StatusBarRenderer{
		statTicks:  reg.Ints.Get("engine.ticks"),
		statDeaths: reg.Ints.Get("snake.deaths"),
	}
}

// Render implements SystemRenderer
func (r *StatusBarRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	statusY := ctx.ScreenHeight - parameter.BottomMargin
	if statusY < parameter.TopMargin {
		return
	}

	for x := 0; x < ctx.ScreenWidth; x++ {
		buf.SetWithBg(x, statusY, ' ', render.RgbForeground, render.RgbBackground)
	}

	x := 0
	if ctx.IsMuted {
		x = buf.SetText(x, statusY, parameter.MutedText, render.RgbBackground, render.RgbMuted)
	} else {
		x = buf.SetText(x, statusY, parameter.AudioStr, render.RgbForeground, render.RgbBackground)
	}
	if ctx.IsPaused {
		x = buf.SetText(x, statusY, parameter.PausedText, render.RgbBackground, render.RgbPaused)
	}

	info := fmt.Sprintf(" ticks %d  deaths %d", r.statTicks.Load(), r.statDeaths.Load())
	buf.SetText(x, statusY, info, render.RgbForeground, render.RgbBackground)
}
