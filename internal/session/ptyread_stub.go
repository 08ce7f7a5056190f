//go:build !linux

package session

import (
	"context"
	"io"
	"os"
)

func readPTY(_ context.Context, file *os.File, buf []byte) (int, error) {
	if file == nil {
		return 0, io.EOF
	}
	return file.Read(buf)
}
