package main

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hebi/core"
	"github.com/lixenwraith/hebi/engine"
	"github.com/lixenwraith/hebi/event"
	"github.com/lixenwraith/hebi/game"
	"github.com/lixenwraith/hebi/input"
	"github.com/lixenwraith/hebi/manifest"
	"github.com/lixenwraith/hebi/registry"
	"github.com/lixenwraith/hebi/render"
	"github.com/lixenwraith/hebi/render/renderer"
)

// soundSink receives audio cues and mute toggles
type soundSink interface {
	Play(core.SoundType) bool
	ToggleMute() bool
	IsMuted() bool
}

// app binds the session to a screen, a clock and an audio sink
type app struct {
	screen  tcell.Screen
	game    *game.Game
	sound   soundSink
	clock   *engine.PausableClock
	machine *input.Machine
	orch    *render.RenderOrchestrator
	debug   *renderer.DebugRenderer

	score int
}

func newApp(screen tcell.Screen, g *game.Game, sound soundSink, clock *engine.PausableClock, machine *input.Machine) *app {
	a := &app{
		screen:  screen,
		game:    g,
		sound:   sound,
		clock:   clock,
		machine: machine,
		orch:    render.NewRenderOrchestrator(screen),
		score:   -1,
	}

	manifest.RegisterRenderers()
	for _, name := range manifest.ActiveRenderers() {
		entry, ok := registry.GetRenderer(name)
		if !ok {
			log.Printf("renderer %q not registered", name)
			continue
		}
		r := entry.Factory(g.World())
		if d, ok := r.(*renderer.DebugRenderer); ok {
			a.debug = d
		}
		a.orch.Register(r, entry.Priority)
	}
	return a
}

// handle applies one terminal event and returns false on quit
func (a *app) handle(ev tcell.Event) bool {
	intent := a.machine.Translate(ev)
	switch intent.Type {
	case input.IntentQuit:
		return false
	case input.IntentMove:
		if !a.clock.IsPaused() {
			a.game.Input(intent.Direction)
		}
	case input.IntentTogglePause:
		paused := a.clock.Toggle()
		log.Printf("paused=%v at %v", paused, a.clock.Elapsed())
	case input.IntentToggleMute:
		a.sound.ToggleMute()
	case input.IntentToggleDebug:
		if a.debug != nil {
			a.debug.Toggle()
		}
	case input.IntentResize:
		a.orch.Resize()
	}
	return true
}

// frame advances the simulation to the clock, dispatches its events and redraws
func (a *app) frame() {
	if !a.clock.IsPaused() {
		a.game.Advance(a.clock.Elapsed())
	}

	for _, ev := range a.game.Events() {
		switch ev.Type {
		case event.EventSound:
			if p, ok := ev.Payload.(*event.SoundPayload); ok {
				a.sound.Play(p.Sound)
			}
		case event.EventScore:
			if p, ok := ev.Payload.(*event.ScorePayload); ok {
				a.setScore(p.Score)
			}
		}
	}
	if a.score < 0 {
		a.setScore(a.game.Score())
	}

	w, h := a.orch.Size()
	ctx := render.NewRenderContext(a.game.World(), w, h)
	ctx.IsPaused = a.clock.IsPaused()
	ctx.IsMuted = a.sound.IsMuted()
	a.orch.RenderFrame(ctx)
}

func (a *app) setScore(score int) {
	if score == a.score {
		return
	}
	a.score = score
	a.screen.SetTitle(renderer.Title(int64(score)))
}
