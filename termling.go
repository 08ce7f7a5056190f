// Package termling emulates a character terminal: it runs a shell
// under a pseudo-terminal, decodes the child's output stream into a
// styled cell grid, and translates keyboard input back into the byte
// sequences a real terminal would send.
package termling

import (
	"context"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"pkt.systems/pslog"
	"pkt.systems/termling/internal/config"
	"pkt.systems/termling/internal/session"
)

// Config mirrors the termling configuration.
type Config = config.Config

// TerminalConfig configures the emulated terminal.
type TerminalConfig = config.TerminalConfig

// SessionConfig configures the child process side.
type SessionConfig = config.SessionConfig

// LogConfig configures diagnostics output.
type LogConfig = config.LogConfig

// Loader wraps configuration loading via Viper.
type Loader = config.Loader

const (
	// DefaultTerminalCols is the default terminal column count.
	DefaultTerminalCols = config.DefaultTerminalCols
	// DefaultTerminalRows is the default terminal row count.
	DefaultTerminalRows = config.DefaultTerminalRows
	// DefaultTerminalTerm is the TERM exported to the child process.
	DefaultTerminalTerm = config.DefaultTerminalTerm
)

// NewLoader returns a config loader with defaults wired.
func NewLoader() *config.Loader {
	return config.NewLoader()
}

// DefaultConfig returns default termling configuration.
func DefaultConfig() Config {
	return config.DefaultConfig()
}

// DefaultConfigPath returns the default config path.
func DefaultConfigPath() string {
	return config.DefaultConfigPath()
}

// DefaultLogPath returns the default log path.
func DefaultLogPath() string {
	return config.DefaultLogPath()
}

// Options configures an interactive termling session.
type Options struct {
	Shell      string
	Term       string
	Cols       int
	Rows       int
	Stdin      *os.File
	Stdout     *os.File
	DisableRaw bool
	Logger     pslog.Logger
}

// Run starts an interactive session on the calling terminal and blocks
// until the shell exits.
func Run(ctx context.Context, opts Options) error {
	return session.Interactive(ctx, session.InteractiveOptions{
		Shell:      opts.Shell,
		Term:       opts.Term,
		Cols:       opts.Cols,
		Rows:       opts.Rows,
		Stdin:      opts.Stdin,
		Stdout:     opts.Stdout,
		DisableRaw: opts.DisableRaw,
		Logger:     opts.Logger,
	})
}

// InitConfig writes the default configuration to the default path and
// returns that path. It refuses to overwrite an existing file.
func InitConfig(cfg Config) (string, error) {
	path := DefaultConfigPath()
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config already exists at %s", path)
	} else if !os.IsNotExist(err) {
		return "", err
	}
	if err := os.MkdirAll(config.DefaultConfigDir(), 0o700); err != nil {
		return "", err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// ExportConfig renders a configuration as YAML.
func ExportConfig(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}
