//go:build windows

package godbg

import (
	"io"
	"os"
)

// SignalTrace is not supported on windows
func SignalTrace(_ io.Writer, _ ...os.Signal) (stop func()) {
	return func() {}
}
