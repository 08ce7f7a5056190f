//go:build linux

package session

import (
	"context"
	"io"
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// pollTimeoutMs bounds how long one loop iteration may block waiting
// for PTY output.
const pollTimeoutMs = 50

func readPTY(ctx context.Context, file *os.File, buf []byte) (int, error) {
	if file == nil {
		return 0, io.EOF
	}
	fd := int(file.Fd())
	pollfds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
	for {
		if ctx != nil && ctx.Err() != nil {
			return 0, ctx.Err()
		}
		_, err := unix.Poll(pollfds, pollTimeoutMs)
		if err != nil {
			if err == syscall.EINTR {
				continue
			}
			return 0, err
		}
		revents := pollfds[0].Revents
		if revents&(unix.POLLERR|unix.POLLHUP) != 0 {
			return file.Read(buf)
		}
		if revents&unix.POLLIN == 0 {
			return 0, syscall.EAGAIN
		}
		return file.Read(buf)
	}
}
