package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/hebi/audio"
	"github.com/lixenwraith/hebi/config"
	"github.com/lixenwraith/hebi/engine"
	"github.com/lixenwraith/hebi/game"
	"github.com/lixenwraith/hebi/input"
	"github.com/lixenwraith/hebi/parameter"
	"github.com/lixenwraith/hebi/service"
)

var (
	configFlag = flag.String("config", config.DefaultPath, "Path to the TOML configuration")
	seedFlag   = flag.Uint64("seed", 0, "Override the session seed (0 keeps the configured one)")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/hebi.log")
	muteFlag   = flag.Bool("mute", false, "Start with audio muted")
)

var errQuit = errors.New("quit")

func main() {
	flag.Parse()

	if f := setupLogging(*debugFlag); f != nil {
		defer f.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "hebi: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}

	keys, err := input.MergeControls(input.DefaultKeyTable(), cfg.Controls)
	if err != nil {
		return fmt.Errorf("controls: %w", err)
	}

	g, err := game.New(cfg)
	if err != nil {
		return err
	}

	audioSvc := audio.NewService(audio.NewAudioConfig(cfg, *muteFlag))
	services := []service.Service{audioSvc}
	for _, s := range services {
		if err := s.Init(*muteFlag); err != nil {
			return fmt.Errorf("%s init: %w", s.Name(), err)
		}
	}
	for _, s := range services {
		if err := s.Start(); err != nil {
			return fmt.Errorf("%s start: %w", s.Name(), err)
		}
		defer s.Stop()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}

	defer crashGuard(screen, "HEBI")

	clock := engine.NewPausableClock(engine.NewMonotonicTimeProvider())
	a := newApp(screen, g, audioSvc, clock, input.NewMachine(keys))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	events := make(chan tcell.Event, parameter.InputPollBuffer)
	eg, ctx := errgroup.WithContext(ctx)

	// PollEvent returns nil once the screen is finalized
	eg.Go(func() error {
		defer crashGuard(screen, "EVENT POLLER")
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	eg.Go(func() error {
		defer crashGuard(screen, "GAME LOOP")
		defer screen.Fini()
		return loop(ctx, a, events)
	})

	err = eg.Wait()
	log.Printf("session ended: %d ticks, score %d", g.TickCount(), g.Score())
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}

// loop renders at the frame rate and applies input as it arrives
func loop(ctx context.Context, a *app, events <-chan tcell.Event) error {
	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	a.frame()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !a.handle(ev) {
				return errQuit
			}
		case <-ticker.C:
			a.frame()
		}
	}
}

// crashGuard restores the terminal before printing the panic and its trace
// Must be deferred directly so recover sees the panic
func crashGuard(screen tcell.Screen, who string) {
	if r := recover(); r != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31m%s CRASHED: %v\x1b[0m\r\n", who, r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	}
}
