// Package interrupt turns SIGINT/SIGTERM into a flag the frame loop polls.
// The flag is installed once at startup and read-and-cleared exactly once
// per frame, so a signal arriving mid-frame takes effect on the next one.
package interrupt

import (
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
)

var pending atomic.Bool

// Install starts routing interrupt signals to the flag. Call once at
// startup, before the UI takes over the terminal.
func Install() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	go func() {
		for range ch {
			pending.Store(true)
		}
	}()
}

// Poll reports whether an interrupt arrived since the last call, clearing
// the flag in the same step.
func Poll() bool {
	return pending.Swap(false)
}
