package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/hebi/config"
	"github.com/lixenwraith/hebi/maps"
)

type options struct {
	configPath string
	seed       uint64
	count      int
	quiet      bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", config.DefaultPath, "Path to the TOML configuration")
	flag.Uint64Var(&opts.seed, "seed", 0, "Override the map seed (0 keeps the configured one)")
	flag.IntVar(&opts.count, "n", 1, "Number of consecutive seeds to render")
	flag.BoolVar(&opts.quiet, "q", false, "Print only the map")
	watchMode := flag.Bool("watch", false, "Re-render whenever the configuration file changes")
	flag.Parse()

	if err := preview(os.Stdout, opts); err != nil {
		fmt.Fprintf(os.Stderr, "map-preview: %v\n", err)
		if !*watchMode {
			os.Exit(1)
		}
	}
	if !*watchMode {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := watch(ctx, opts.configPath, func() {
		fmt.Printf("\n--- %s changed at %s ---\n", opts.configPath, time.Now().Format(time.TimeOnly))
		if err := preview(os.Stdout, opts); err != nil {
			fmt.Fprintf(os.Stderr, "map-preview: %v\n", err)
		}
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "map-preview: %v\n", err)
		os.Exit(1)
	}
}

// preview renders opts.count maps for consecutive seeds starting at the configured one
func preview(w io.Writer, opts options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.seed != 0 {
		cfg.Seed = opts.seed
	}

	for i := 0; i < max(opts.count, 1); i++ {
		s := cfg.Seed + uint64(i)

		startT := time.Now()
		m, err := maps.Generate(cfg.Map, rand.New(rand.NewSource(s)))
		dur := time.Since(startT)
		if err != nil {
			return fmt.Errorf("%s map: %w", cfg.Map.Kind, err)
		}

		if !opts.quiet {
			fmt.Fprintf(w, "=== %s seed %d ===\n", cfg.Map.Kind, s)
			fmt.Fprintf(w, "Grid Dimensions: %dx%d\n", m.Width, m.Height)
			fmt.Fprintf(w, "Walls: %d  Spawns: %d  Generated in %v\n",
				m.Count(maps.CellWall), len(maps.ScanSpawnPositions(m)), dur)
		}
		fmt.Fprint(w, maps.Format(m))
		if !opts.quiet {
			fmt.Fprintln(w)
		}
	}
	return nil
}
