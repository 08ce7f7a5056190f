package termling

import (
	"os"
	"strings"
	"testing"
)

func TestInitConfigWritesAndRefusesOverwrite(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := InitConfig(DefaultConfig())
	if err != nil {
		t.Fatalf("InitConfig: %v", err)
	}
	if path != DefaultConfigPath() {
		t.Fatalf("path = %q, want %q", path, DefaultConfigPath())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if !strings.Contains(string(data), "terminal:") {
		t.Fatalf("config missing terminal section: %q", data)
	}

	if _, err := InitConfig(DefaultConfig()); err == nil {
		t.Fatalf("second InitConfig succeeded")
	}
}

func TestExportConfigRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Terminal.Cols = 120
	cfg.Session.Shell = "/bin/dash"
	out, err := ExportConfig(cfg)
	if err != nil {
		t.Fatalf("ExportConfig: %v", err)
	}
	text := string(out)
	for _, want := range []string{"cols: 120", "shell: /bin/dash", "term: " + DefaultTerminalTerm} {
		if !strings.Contains(text, want) {
			t.Fatalf("export missing %q:\n%s", want, text)
		}
	}
}
