package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoaderReadsYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("terminal:\n  cols: 132\n  rows: 43\n  term: vt100\nsession:\n  shell: /bin/dash\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	l := NewLoader()
	l.SetConfigFile(path)
	cfg, err := l.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Terminal.Cols != 132 || cfg.Terminal.Rows != 43 {
		t.Fatalf("terminal = %dx%d", cfg.Terminal.Cols, cfg.Terminal.Rows)
	}
	if cfg.Terminal.Term != "vt100" {
		t.Fatalf("term = %q", cfg.Terminal.Term)
	}
	if cfg.Session.Shell != "/bin/dash" {
		t.Fatalf("shell = %q", cfg.Session.Shell)
	}
}

func TestLoaderMissingFileIsNotAnError(t *testing.T) {
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

	l := NewLoader()
	if _, err := l.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
}

func TestLoaderExplicitMissingFileFails(t *testing.T) {
	l := NewLoader()
	l.SetConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if _, err := l.Load(); err == nil {
		t.Fatalf("expected error for explicit missing file")
	}
}

func TestLoaderEnvOverride(t *testing.T) {
	t.Setenv("TERMLING_TERMINAL_COLS", "100")
	l := NewLoader()
	l.Viper().SetDefault("terminal.cols", DefaultTerminalCols)
	cfg, err := l.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Terminal.Cols != 100 {
		t.Fatalf("cols = %d, want 100", cfg.Terminal.Cols)
	}
}
