//go:build !windows

// Package godbg dumps goroutine stacks on request to debug a hung command
package godbg

import (
	"io"
	"os"
	"os/signal"
	"runtime/pprof"
	"syscall"
)

// SignalTrace writes every goroutine stack to out each time a signal is received, SIGUSR1 by default
func SignalTrace(out io.Writer, sigs ...os.Signal) (stop func()) {
	if len(sigs) == 0 {
		sigs = append(sigs, syscall.SIGUSR1)
	}
	sig := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sig, sigs...)
	go func() {
		for {
			select {
			case <-sig:
				_ = pprof.Lookup("goroutine").WriteTo(out, 1)
			case <-done:
				return
			}
		}
	}()
	return func() {
		signal.Stop(sig)
		close(done)
	}
}
