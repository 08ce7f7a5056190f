package main

import (
	"os"
	"path/filepath"
	"testing"

	"pkt.systems/termling"
)

func TestGridSizeFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("terminal:\n  cols: 132\n  rows: 43\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	loader := termling.NewLoader()
	cmd := NewRootCommand(loader)
	loader.SetConfigFile(path)
	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	cols, rows := gridSize(cmd.Flags(), cfg)
	if cols != 132 || rows != 43 {
		t.Fatalf("gridSize = %dx%d, want 132x43", cols, rows)
	}
}

func TestGridSizeFlagBeatsConfig(t *testing.T) {
	loader := termling.NewLoader()
	cmd := NewRootCommand(loader)
	if err := cmd.Flags().Set("cols", "100"); err != nil {
		t.Fatalf("set cols: %v", err)
	}

	cfg := termling.DefaultConfig()
	cfg.Terminal.Cols = 132
	cfg.Terminal.Rows = 43

	cols, rows := gridSize(cmd.Flags(), cfg)
	if cols != 100 {
		t.Fatalf("cols = %d, want flag value 100", cols)
	}
	if rows != 43 {
		t.Fatalf("rows = %d, want config value 43", rows)
	}
}

func TestGridSizeDefaultsToHostSize(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	if err := os.Chdir(home); err != nil {
		t.Fatalf("chdir: %v", err)
	}

	loader := termling.NewLoader()
	cmd := NewRootCommand(loader)
	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	cols, rows := gridSize(cmd.Flags(), cfg)
	if cols != 0 || rows != 0 {
		t.Fatalf("gridSize = %dx%d, want 0x0 (host size)", cols, rows)
	}
}
