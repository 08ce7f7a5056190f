// Package session owns the pseudo-terminal and the child process: it
// pumps PTY output into the emulator, pumps translated key bytes back,
// keeps the kernel window size in step with the grid, and forwards
// termination signals to the child.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"os/user"
	"sync"
	"sync/atomic"
	"syscall"

	"pkt.systems/pslog"

	"pkt.systems/termling/internal/config"
	"pkt.systems/termling/internal/keymap"
	"pkt.systems/termling/internal/pty"
	"pkt.systems/termling/internal/terminal"
	"pkt.systems/termling/internal/terminal/emu"
)

// Options configures a Session.
type Options struct {
	Shell string
	Term  string
	Cols  int
	Rows  int

	// Output mirrors raw PTY bytes, e.g. to the host terminal. Nil
	// disables mirroring.
	Output io.Writer

	// OnDirty receives the dirty row set after each processed chunk.
	OnDirty func([]int)

	// DisplaySize re-queries the front end's size when a SIGWINCH is
	// consumed. Nil disables host-driven resizes.
	DisplaySize func() (cols, rows int)

	Logger pslog.Logger
}

// Session runs one shell under a PTY. Lifecycle: New, Start, Run (or
// repeated Pump calls), Stop. All emulator access happens on the loop
// goroutine; Write, ProcessKey and Resize may be called from a front
// end thread.
type Session struct {
	opts   Options
	logger pslog.Logger

	ptyFile *os.File
	ttyFile *os.File
	cmd     *exec.Cmd

	emulator terminal.Emulator
	emuMu    sync.Mutex
	writeMu  sync.Mutex

	resizePending atomic.Bool
	stopOnce      sync.Once
	exited        atomic.Bool
}

// New constructs a Session. Call Start before Run.
func New(opts Options) *Session {
	if opts.Logger == nil {
		opts.Logger = pslog.LoggerFromEnv()
	}
	if opts.Cols <= 0 {
		opts.Cols = config.DefaultTerminalCols
	}
	if opts.Rows <= 0 {
		opts.Rows = config.DefaultTerminalRows
	}
	return &Session{opts: opts, logger: opts.Logger}
}

// Start allocates the PTY, launches the shell on the slave side and
// sizes the kernel pty layer to match the grid.
func (s *Session) Start() error {
	if s.cmd != nil {
		return fmt.Errorf("session already started")
	}
	shell := resolveShell(s.opts.Shell)
	cmd := exec.Command(shell)
	term := s.opts.Term
	if term == "" {
		term = config.DefaultTerminalTerm
	}
	cmd.Env = append(os.Environ(), "TERM="+term)

	ptyFile, ttyFile, err := pty.Start(cmd)
	if err != nil {
		return fmt.Errorf("start %s: %w", shell, err)
	}
	if err := pty.AdjustTermios(ttyFile); err != nil {
		s.logger.Debug("adjust termios", "err", err)
	}
	if err := syscall.SetNonblock(int(ptyFile.Fd()), true); err != nil {
		_ = ptyFile.Close()
		_ = ttyFile.Close()
		_ = cmd.Process.Kill()
		return fmt.Errorf("set nonblock: %w", err)
	}

	s.cmd = cmd
	s.ptyFile = ptyFile
	s.ttyFile = ttyFile
	s.emulator = emu.New(s.opts.Cols, s.opts.Rows)
	if err := pty.Resize(ptyFile, s.opts.Cols, s.opts.Rows); err != nil {
		s.logger.Debug("initial pty resize", "err", err)
	}
	s.logger.Debug("session started", "shell", shell, "pid", cmd.Process.Pid,
		"cols", s.opts.Cols, "rows", s.opts.Rows)
	return nil
}

// Run drives the session until the child exits, the context is
// canceled, or the PTY fails. One loop iteration drains pending
// signals, applies a deferred resize, checks for child exit and pumps
// at most one PTY read; the poll timeout inside readPTY keeps the loop
// responsive. Everything runs on the calling goroutine.
func (s *Session) Run(ctx context.Context) error {
	if s.cmd == nil {
		return fmt.Errorf("session not started")
	}

	forward := make(chan os.Signal, 4)
	signal.Notify(forward, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer signal.Stop(forward)

	winch := make(chan os.Signal, 1)
	signal.Notify(winch, syscall.SIGWINCH)
	defer signal.Stop(winch)

	buf := make([]byte, 4096)
	for {
		if ctx.Err() != nil {
			s.Stop()
			return nil
		}

	drain:
		for {
			select {
			case sig := <-forward:
				s.forwardSignal(sig)
			case <-winch:
				s.resizePending.Store(true)
			default:
				break drain
			}
		}

		if s.resizePending.Swap(false) && s.opts.DisplaySize != nil {
			cols, rows := s.opts.DisplaySize()
			if cols > 0 && rows > 0 {
				s.Resize(cols, rows)
			}
		}

		if s.reapChild() {
			s.Stop()
			return nil
		}

		n, err := readPTY(ctx, s.ptyFile, buf)
		if err != nil {
			if errors.Is(err, syscall.EAGAIN) || errors.Is(err, syscall.EWOULDBLOCK) {
				continue
			}
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				s.Stop()
				return nil
			}
			if !errors.Is(err, io.EOF) {
				s.logger.Debug("pty read error", "err", err)
			}
			s.Stop()
			return nil
		}
		if n == 0 {
			continue
		}

		s.emuMu.Lock()
		dirty := s.emulator.Process(buf[:n])
		s.emuMu.Unlock()
		if s.opts.Output != nil {
			if _, err := s.opts.Output.Write(buf[:n]); err != nil {
				s.logger.Debug("output write error", "err", err)
			}
		}
		if s.opts.OnDirty != nil && len(dirty) > 0 {
			s.opts.OnDirty(dirty)
		}
	}
}

// Write sends already-encoded bytes to the child. Failures are logged
// and reported but not fatal; the user can retry by typing again.
func (s *Session) Write(p []byte) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if s.ptyFile == nil {
		return fmt.Errorf("pty not initialized")
	}
	if _, err := s.ptyFile.Write(p); err != nil {
		s.logger.Warn("pty write failed", "err", err)
		return err
	}
	return nil
}

// ProcessKey translates one key event and writes the resulting bytes
// to the child. Keys that translate to nothing are dropped silently.
func (s *Session) ProcessKey(ev keymap.Event) error {
	seq := keymap.Translate(ev)
	if len(seq) == 0 {
		return nil
	}
	return s.Write(seq)
}

// Resize grows or shrinks the grid, pushes the new size to the kernel
// pty layer and notifies the child so line-discipline-aware programs
// re-query and reflow. The grid itself is the authoritative size;
// opts.Cols/Rows are only read before Start.
func (s *Session) Resize(cols, rows int) {
	if cols <= 0 || rows <= 0 {
		return
	}
	s.emuMu.Lock()
	s.emulator.Resize(cols, rows)
	s.emuMu.Unlock()
	if err := pty.Resize(s.ptyFile, cols, rows); err != nil {
		s.logger.Debug("pty resize", "err", err)
	}
	if s.cmd != nil && s.cmd.Process != nil {
		_ = s.cmd.Process.Signal(syscall.SIGWINCH)
	}
}

// Snapshot returns a copy of the grid and cursor.
func (s *Session) Snapshot() terminal.Snapshot {
	s.emuMu.Lock()
	defer s.emuMu.Unlock()
	return s.emulator.Snapshot()
}

// Stop terminates the child and closes the PTY. Safe to call more
// than once and after the child already exited.
func (s *Session) Stop() {
	s.stopOnce.Do(func() {
		if s.cmd != nil && s.cmd.Process != nil && !s.exited.Load() {
			_ = s.cmd.Process.Signal(syscall.SIGTERM)
			_, _ = s.cmd.Process.Wait()
			s.exited.Store(true)
		}
		if s.ptyFile != nil {
			_ = s.ptyFile.Close()
		}
		if s.ttyFile != nil {
			_ = s.ttyFile.Close()
		}
		s.logger.Debug("session stopped")
	})
}

// forwardSignal relays a termination signal to the child; the child's
// exit is then observed by the loop's reap check.
func (s *Session) forwardSignal(sig os.Signal) {
	if s.cmd == nil || s.cmd.Process == nil || s.exited.Load() {
		return
	}
	s.logger.Debug("forwarding signal", "signal", sig.String())
	_ = s.cmd.Process.Signal(sig)
}

// reapChild performs a non-blocking check for child exit.
func (s *Session) reapChild() bool {
	if s.exited.Load() {
		return true
	}
	if s.cmd == nil || s.cmd.Process == nil {
		return true
	}
	var status syscall.WaitStatus
	pid, err := syscall.Wait4(s.cmd.Process.Pid, &status, syscall.WNOHANG, nil)
	if err != nil {
		if errors.Is(err, syscall.ECHILD) {
			s.exited.Store(true)
			return true
		}
		return false
	}
	if pid == s.cmd.Process.Pid {
		s.logger.Debug("child exited", "pid", pid, "status", status.ExitStatus())
		s.exited.Store(true)
		return true
	}
	return false
}

// resolveShell picks the shell to run: explicit override, then the
// user's passwd entry, then $SHELL, then /bin/sh.
func resolveShell(override string) string {
	if override != "" {
		return override
	}
	if u, err := user.Current(); err == nil && u != nil && u.Uid != "" {
		if shell, err := shellFromPasswd(u.Uid); err == nil && shell != "" {
			return shell
		}
	}
	if shell := os.Getenv("SHELL"); shell != "" {
		return shell
	}
	return "/bin/sh"
}
