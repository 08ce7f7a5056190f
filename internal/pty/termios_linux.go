//go:build linux

package pty

import (
	"os"

	"golang.org/x/sys/unix"
)

// AdjustTermios makes the slave side behave like a login terminal:
// signal generation on, CR translated to NL on input, output
// post-processing on.
func AdjustTermios(tty *os.File) error {
	if tty == nil {
		return nil
	}
	fd := int(tty.Fd())
	termios, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return err
	}
	termios.Lflag |= unix.ISIG
	termios.Iflag |= unix.ICRNL
	termios.Oflag |= unix.OPOST
	return unix.IoctlSetTermios(fd, unix.TCSETS, termios)
}
