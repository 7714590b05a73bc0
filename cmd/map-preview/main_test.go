package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/hebi/maps"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestPreviewDefaultBox(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "seed = 5\n")

	var out bytes.Buffer
	if err := preview(&out, options{configPath: path, count: 2}); err != nil {
		t.Fatalf("preview: %v", err)
	}

	got := out.String()
	for _, want := range []string{"=== box seed 5 ===", "=== box seed 6 ===", "Grid Dimensions: 17x13"} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected %q in output", want)
		}
	}
	box := maps.Format(maps.GenerateBox(maps.DefaultBoxParams()))
	if !strings.Contains(got, box) {
		t.Errorf("Expected the default box map in output, got %q", got)
	}
}

func TestPreviewQuietPrintsOnlyMap(t *testing.T) {
	data := "###\n#>#\n###\n"
	path := writeConfig(t, t.TempDir(), "[map]\ntype = \"custom\"\ndata = \"\"\"\n"+data+"\"\"\"\n")

	var out bytes.Buffer
	if err := preview(&out, options{configPath: path, quiet: true}); err != nil {
		t.Fatalf("preview: %v", err)
	}
	if out.String() != data {
		t.Errorf("Expected %q, got %q", data, out.String())
	}
}

func TestPreviewReportsMapErrors(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[map]\ntype = \"box\"\nwidth = 2\n")

	if err := preview(&bytes.Buffer{}, options{configPath: path}); err == nil {
		t.Error("Expected error for an undersized box")
	}
}

func TestWatchFiresOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "seed = 1\n")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	changed := make(chan struct{}, 1)
	done := make(chan error, 1)
	go func() {
		done <- watch(ctx, path, func() {
			select {
			case changed <- struct{}{}:
			default:
			}
		})
	}()

	// Give the watcher time to register before writing
	time.Sleep(200 * time.Millisecond)
	writeConfig(t, dir, "seed = 2\n")
	os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x"), 0o644)

	select {
	case <-changed:
	case <-ctx.Done():
		t.Fatal("Expected change notification")
	}
	cancel()
	if err := <-done; err != nil {
		t.Errorf("Expected clean shutdown, got %v", err)
	}
}
