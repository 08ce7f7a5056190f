package session

import (
	"context"
	"errors"
	"io"
	"os"
	"syscall"
	"time"

	"golang.org/x/term"

	"pkt.systems/pslog"
)

// InteractiveOptions configures Interactive.
type InteractiveOptions struct {
	Shell      string
	Term       string
	Cols       int
	Rows       int
	Stdin      *os.File
	Stdout     *os.File
	DisableRaw bool
	Logger     pslog.Logger
}

// Interactive attaches a Session to the calling terminal: stdin bytes
// are forwarded to the child verbatim, PTY output is mirrored to
// stdout, and SIGWINCH tracks the host terminal size. It blocks until
// the shell exits or the context is canceled.
func Interactive(ctx context.Context, opts InteractiveOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = pslog.LoggerFromEnv()
	}
	stdin := opts.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	cols, rows := opts.Cols, opts.Rows
	if cols <= 0 || rows <= 0 {
		if c, r, err := term.GetSize(int(stdout.Fd())); err == nil {
			cols, rows = c, r
		}
	}

	sess := New(Options{
		Shell:  opts.Shell,
		Term:   opts.Term,
		Cols:   cols,
		Rows:   rows,
		Output: stdout,
		DisplaySize: func() (int, int) {
			c, r, err := term.GetSize(int(stdout.Fd()))
			if err != nil {
				return 0, 0
			}
			return c, r
		},
		Logger: logger,
	})
	if err := sess.Start(); err != nil {
		return err
	}
	defer sess.Stop()

	if !opts.DisableRaw {
		state, err := term.MakeRaw(int(stdin.Fd()))
		if err == nil {
			defer func() {
				_ = term.Restore(int(stdin.Fd()), state)
			}()
		} else {
			logger.Debug("raw mode unavailable", "err", err)
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	_ = syscall.SetNonblock(int(stdin.Fd()), true)
	defer func() {
		_ = syscall.SetNonblock(int(stdin.Fd()), false)
	}()

	// Keyboard -> PTY.
	go func() {
		buf := make([]byte, 4096)
		for {
			if ctx.Err() != nil {
				return
			}
			n, err := stdin.Read(buf)
			if err != nil {
				if errors.Is(err, syscall.EAGAIN) || errors.Is(err, syscall.EWOULDBLOCK) {
					time.Sleep(10 * time.Millisecond)
					continue
				}
				if !errors.Is(err, io.EOF) {
					logger.Debug("stdin read error", "err", err)
				}
				return
			}
			if n > 0 {
				if err := sess.Write(buf[:n]); err != nil {
					return
				}
			}
		}
	}()

	return sess.Run(ctx)
}
